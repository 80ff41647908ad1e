package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/darkclainer/sonago/pkg/actions"
	"github.com/darkclainer/sonago/pkg/ankiweb"
	"github.com/darkclainer/sonago/pkg/mocks"
	"github.com/darkclainer/sonago/pkg/sonapi"
)

var koer = &sonapi.Result{
	EstonianWord: "koer",
	EnglishWord:  "dog",
	WordForms:    []string{"koer", "koera", "koera"},
}

func newTestServer(l *mocks.Lookuper, c *mocks.Cards) *Server {
	return newServer(zap.NewNop(), "", l, actions.New(l, c, nil, nil))
}

func TestHandleWord(t *testing.T) { // nolint:funlen // test
	testCases := map[string]struct {
		target   string
		method   string
		setup    func(l *mocks.Lookuper)
		code     int
		status   ResponseStatus
		expected *sonapi.Result
	}{
		"estonian": {
			target: "/word?q=koer",
			setup: func(l *mocks.Lookuper) {
				l.On("Lookup", mock.Anything, "koer", false).Return(koer, nil)
			},
			code:     http.StatusOK,
			status:   ResponseOK,
			expected: koer,
		},
		"english": {
			target: "/word?q=dog&english=true",
			setup: func(l *mocks.Lookuper) {
				l.On("Lookup", mock.Anything, "dog", true).Return(koer, nil)
			},
			code:     http.StatusOK,
			status:   ResponseOK,
			expected: koer,
		},
		"missing word": {
			target: "/word",
			code:   http.StatusBadRequest,
			status: ResponseBadRequest,
		},
		"bad english flag": {
			target: "/word?q=dog&english=maybe",
			code:   http.StatusBadRequest,
			status: ResponseBadRequest,
		},
		"data shape": {
			target: "/word?q=xyz",
			setup: func(l *mocks.Lookuper) {
				l.On("Lookup", mock.Anything, "xyz", false).
					Return(nil, &sonapi.DataShapeError{Path: "searchResult[0]", Reason: "missing"})
			},
			code:   http.StatusBadGateway,
			status: ResponseDataShape,
		},
		"transport": {
			target: "/word?q=koer",
			setup: func(l *mocks.Lookuper) {
				l.On("Lookup", mock.Anything, "koer", false).
					Return(nil, &sonapi.TransportError{URL: "https://api.sonapi.ee/v2/koer", StatusCode: 503})
			},
			code:   http.StatusBadGateway,
			status: ResponseTransport,
		},
		"unexpected": {
			target: "/word?q=koer",
			setup: func(l *mocks.Lookuper) {
				l.On("Lookup", mock.Anything, "koer", false).Return(nil, errors.New("boom"))
			},
			code:   http.StatusInternalServerError,
			status: ResponseError,
		},
	}
	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			l := &mocks.Lookuper{}
			if tc.setup != nil {
				tc.setup(l)
			}
			s := newTestServer(l, &mocks.Cards{})

			w := httptest.NewRecorder()
			s.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.target, nil))
			l.AssertExpectations(t)

			assert.Equal(t, tc.code, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			var response ResponseWord
			require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
			assert.Equal(t, tc.status, response.Status)
			assert.Equal(t, tc.expected, response.Result)
			if tc.status != ResponseOK {
				assert.NotEmpty(t, response.Error)
			}
		})
	}
}

func TestHandleWordMethod(t *testing.T) {
	s := newTestServer(&mocks.Lookuper{}, &mocks.Cards{})
	w := httptest.NewRecorder()
	s.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/word?q=koer", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleActionList(t *testing.T) {
	s := newTestServer(&mocks.Lookuper{}, &mocks.Cards{})
	w := httptest.NewRecorder()
	s.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/actions", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var response ResponseActionList
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, actions.Names(), response.Actions)
}

func TestHandleAction(t *testing.T) { // nolint:funlen // test
	creds := ankiweb.Credentials{
		Email:    ankiweb.NewSecret("a@b.c"),
		Password: ankiweb.NewSecret("pw"),
	}
	testCases := map[string]struct {
		action   string
		body     string
		setup    func(l *mocks.Lookuper, c *mocks.Cards)
		code     int
		status   ResponseStatus
		expected string
	}{
		"get word": {
			action: actions.GetWordAction,
			body:   `{"word": "koer"}`,
			setup: func(l *mocks.Lookuper, c *mocks.Cards) {
				l.On("Lookup", mock.Anything, "koer", false).Return(koer, nil)
			},
			code:     http.StatusOK,
			status:   ResponseOK,
			expected: `{"estonian_word": "koer", "english_word": "dog", "word_forms": ["koer", "koera", "koera"]}`,
		},
		"add card": {
			action: actions.AddCardAction,
			body:   `{"user_email": "a@b.c", "user_password": "pw", "front_value": "koer", "back_value": "dog"}`,
			setup: func(l *mocks.Lookuper, c *mocks.Cards) {
				c.On("AddCard", mock.Anything, creds, "koer", "dog").Return(nil)
			},
			code:     http.StatusOK,
			status:   ResponseOK,
			expected: `"` + actions.MsgCardSaved + `"`,
		},
		"card in deck": {
			action: actions.IsCardInCurrentDeckAction,
			body:   `{"user_email": "a@b.c", "user_password": "pw", "search": "koer"}`,
			setup: func(l *mocks.Lookuper, c *mocks.Cards) {
				c.On("HasCard", mock.Anything, creds, "koer").Return(true, nil)
			},
			code:     http.StatusOK,
			status:   ResponseOK,
			expected: `"` + actions.MsgCardInDeck + `"`,
		},
		"missing credentials": {
			action: actions.FindCardsAction,
			body:   `{"search": "koer"}`,
			setup: func(l *mocks.Lookuper, c *mocks.Cards) {
				c.On("FindCards", mock.Anything, ankiweb.Credentials{}, "koer").
					Return(nil, ankiweb.ErrMissingCredentials)
			},
			code:   http.StatusBadRequest,
			status: ResponseBadRequest,
		},
		"unknown action": {
			action: "delete_deck",
			body:   `{}`,
			code:   http.StatusNotFound,
			status: ResponseBadRequest,
		},
		"bad arguments": {
			action: actions.GetWordAction,
			body:   `{"word": 42}`,
			code:   http.StatusBadRequest,
			status: ResponseBadRequest,
		},
	}
	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			l := &mocks.Lookuper{}
			c := &mocks.Cards{}
			if tc.setup != nil {
				tc.setup(l, c)
			}
			s := newTestServer(l, c)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/actions/"+tc.action, strings.NewReader(tc.body))
			s.Handler.ServeHTTP(w, r)
			l.AssertExpectations(t)
			c.AssertExpectations(t)

			assert.Equal(t, tc.code, w.Code)
			var response struct {
				Result json.RawMessage `json:"result"`
				Error  string          `json:"error"`
				Status ResponseStatus  `json:"status"`
			}
			require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
			assert.Equal(t, tc.status, response.Status)
			if tc.expected != "" {
				assert.JSONEq(t, tc.expected, string(response.Result))
			} else {
				assert.NotEmpty(t, response.Error)
			}
		})
	}
}

func TestServerClose(t *testing.T) {
	l := &mocks.Lookuper{}
	l.On("Close", mock.Anything).Return(errors.New("storage busy"))
	s := newTestServer(l, &mocks.Cards{})

	err := s.Close(context.TODO())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lookuper close failed: storage busy")
	l.AssertExpectations(t)
}
