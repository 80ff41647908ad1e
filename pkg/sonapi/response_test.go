package sonapi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseResult(t *testing.T) { // nolint:funlen // test
	testCases := map[string]struct {
		body      string
		word      string
		isEnglish bool
		expected  *Result
		errPath   string
	}{
		"estonian lookup": {
			body: koerResponse,
			word: "koer",
			expected: &Result{
				EstonianWord: "koer",
				EnglishWord:  "dog",
				WordForms:    []string{"koer", "koera", "koera"},
			},
		},
		"english lookup echoes word": {
			body:      `{"estonianWord":"koer","searchResult":[{"wordForms":[{"value":"koer"},{"value":"koera"},{"value":"koera"}]}],"translations":[{"translations":["hound"]}]}`,
			word:      "Dog ",
			isEnglish: true,
			expected: &Result{
				EstonianWord: "koer",
				EnglishWord:  "Dog ",
				WordForms:    []string{"koer", "koera", "koera"},
			},
		},
		"forms keep service order": {
			body: `{"estonianWord":"maja","searchResult":[{"wordForms":[{"value":"c"},{"value":"a"},{"value":"b"},{"value":"d"}]}],"translations":[{"translations":["house"]}]}`,
			word: "maja",
			expected: &Result{
				EstonianWord: "maja",
				EnglishWord:  "house",
				WordForms:    []string{"c", "a", "b"},
			},
		},
		"missing estonian word": {
			body: `{"searchResult":[{"wordForms":[{"value":"a"},{"value":"b"},{"value":"c"}]}],"translations":[{"translations":["x"]}]}`,
			word: "a",
			expected: &Result{
				EstonianWord: "",
				EnglishWord:  "x",
				WordForms:    []string{"a", "b", "c"},
			},
		},
		"empty search result": {
			body:    `{"estonianWord":"koer","searchResult":[],"translations":[{"translations":["dog"]}]}`,
			word:    "koer",
			errPath: "searchResult[0]",
		},
		"missing search result": {
			body:    `{"estonianWord":"koer","translations":[{"translations":["dog"]}]}`,
			word:    "koer",
			errPath: "searchResult[0]",
		},
		"too few forms": {
			body:    `{"estonianWord":"koer","searchResult":[{"wordForms":[{"value":"koer"}]}],"translations":[{"translations":["dog"]}]}`,
			word:    "koer",
			errPath: "searchResult[0].wordForms",
		},
		"form without value": {
			body:    `{"estonianWord":"koer","searchResult":[{"wordForms":[{"value":"koer"},{"code":"SgG"},{"value":"koera"}]}],"translations":[{"translations":["dog"]}]}`,
			word:    "koer",
			errPath: "searchResult[0].wordForms[1].value",
		},
		"no translations": {
			body:    `{"estonianWord":"koer","searchResult":[{"wordForms":[{"value":"a"},{"value":"b"},{"value":"c"}]}],"translations":[]}`,
			word:    "koer",
			errPath: "translations[0]",
		},
		"empty translation group": {
			body:      `{"estonianWord":"koer","searchResult":[{"wordForms":[{"value":"a"},{"value":"b"},{"value":"c"}]}],"translations":[{"translations":[]}]}`,
			word:      "dog",
			isEnglish: true,
			errPath:   "translations[0].translations[0]",
		},
	}
	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			response, err := decodeResponse([]byte(tc.body))
			require.NoError(t, err)

			result, err := response.Result(tc.word, tc.isEnglish)
			if tc.errPath != "" {
				var shapeErr *DataShapeError
				require.True(t, errors.As(err, &shapeErr), "expected DataShapeError, got %v", err)
				assert.Equal(t, tc.errPath, shapeErr.Path)
				assert.True(t, errors.Is(err, ErrDataShape))
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
			assert.LessOrEqual(t, len(result.WordForms), formsCount)
		})
	}
}

func TestDecodeResponseMalformed(t *testing.T) {
	_, err := decodeResponse([]byte(`[1, 2`))
	var shapeErr *DataShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, "$", shapeErr.Path)
	assert.Error(t, shapeErr.Unwrap())
}

func TestErrorKinds(t *testing.T) {
	assert.False(t, errors.Is(&DataShapeError{Path: "$"}, ErrTransport))
	assert.False(t, errors.Is(&TransportError{URL: "u", StatusCode: 500}, ErrDataShape))
	assert.EqualError(t,
		&TransportError{URL: "http://h/v2/koer", StatusCode: 404},
		"request to http://h/v2/koer: unexpected response code: 404",
	)
	assert.EqualError(t,
		&DataShapeError{Path: "searchResult[0]", Reason: "no search results"},
		"unexpected response shape at searchResult[0]: no search results",
	)
}
