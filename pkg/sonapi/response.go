package sonapi

import (
	"encoding/json"
	"fmt"
)

// formsCount is how many word forms a result carries:
// nimetav, omastav and osastav.
const formsCount = 3

// Result is the flattened lookup answer.
type Result struct {
	EstonianWord string   `json:"estonian_word"`
	EnglishWord  string   `json:"english_word"`
	WordForms    []string `json:"word_forms"`
}

// Response is the subset of the api.sonapi.ee v2 document that lookup reads.
type Response struct {
	EstonianWord string         `json:"estonianWord"`
	SearchResult []SearchResult `json:"searchResult"`
	Translations []Translation  `json:"translations"`
}

type SearchResult struct {
	WordForms []WordForm `json:"wordForms"`
}

type WordForm struct {
	// Value is a pointer so that a missing "value" key is distinguishable
	// from an empty form.
	Value *string `json:"value"`
}

type Translation struct {
	Translations []string `json:"translations"`
}

func decodeResponse(body []byte) (*Response, error) {
	var response Response
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, &DataShapeError{Path: "$", Reason: "body is not a JSON document", Err: err}
	}
	return &response, nil
}

// Result validates the document and assembles the lookup result for word.
func (r *Response) Result(word string, isEnglish bool) (*Result, error) {
	forms, err := r.wordForms()
	if err != nil {
		return nil, err
	}
	translation, err := r.primaryTranslation()
	if err != nil {
		return nil, err
	}
	result := &Result{
		EstonianWord: r.EstonianWord,
		EnglishWord:  translation,
		WordForms:    forms,
	}
	if isEnglish {
		result.EnglishWord = word
	}
	return result, nil
}

func (r *Response) wordForms() ([]string, error) {
	if len(r.SearchResult) == 0 {
		return nil, &DataShapeError{Path: "searchResult[0]", Reason: "no search results"}
	}
	wordForms := r.SearchResult[0].WordForms
	if len(wordForms) < formsCount {
		return nil, &DataShapeError{
			Path:   "searchResult[0].wordForms",
			Reason: fmt.Sprintf("expected at least %d forms, got %d", formsCount, len(wordForms)),
		}
	}
	forms := make([]string, 0, formsCount)
	for i, wf := range wordForms[:formsCount] {
		if wf.Value == nil {
			return nil, &DataShapeError{
				Path:   fmt.Sprintf("searchResult[0].wordForms[%d].value", i),
				Reason: "missing value",
			}
		}
		forms = append(forms, *wf.Value)
	}
	return forms, nil
}

func (r *Response) primaryTranslation() (string, error) {
	if len(r.Translations) == 0 {
		return "", &DataShapeError{Path: "translations[0]", Reason: "no translation groups"}
	}
	if len(r.Translations[0].Translations) == 0 {
		return "", &DataShapeError{Path: "translations[0].translations[0]", Reason: "empty translation group"}
	}
	return r.Translations[0].Translations[0], nil
}
