// Package cardtpl turns a lookup result into the two sides of a flashcard
// using a small tengo script.
//
// The script sees estonian_word, english_word and word_forms and must set
// front and back to strings.
package cardtpl

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/d5/tengo/script"

	"github.com/darkclainer/sonago/pkg/sonapi"
)

// DefaultScript puts the Estonian word on the front and the translation with
// the word forms on the back.
const DefaultScript = `
front := estonian_word
forms := ""
for i, f in word_forms {
	if i > 0 {
		forms += ", "
	}
	forms += f
}
back := english_word
if forms != "" {
	back += " (" + forms + ")"
}
`

var ErrMissingSide = errors.New("script must set front and back to strings")

// Card is a rendered flashcard.
type Card struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

type Template struct {
	source []byte
}

// New checks that source compiles.
func New(source string) (*Template, error) {
	t := &Template{source: []byte(source)}
	s, err := t.script(&sonapi.Result{})
	if err != nil {
		return nil, err
	}
	if _, err := s.Compile(); err != nil {
		return nil, fmt.Errorf("can not compile card template: %w", err)
	}
	return t, nil
}

func Default() *Template {
	return &Template{source: []byte(DefaultScript)}
}

// Load reads a template from path, an empty path gives the default one.
func Load(path string) (*Template, error) {
	if path == "" {
		return Default(), nil
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can not read card template: %w", err)
	}
	return New(string(source))
}

func (t *Template) Render(ctx context.Context, result *sonapi.Result) (*Card, error) {
	s, err := t.script(result)
	if err != nil {
		return nil, err
	}
	compiled, err := s.RunContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("card template failed: %w", err)
	}
	front, ok := compiled.Get("front").Value().(string)
	if !ok {
		return nil, ErrMissingSide
	}
	back, ok := compiled.Get("back").Value().(string)
	if !ok {
		return nil, ErrMissingSide
	}
	return &Card{Front: front, Back: back}, nil
}

func (t *Template) script(result *sonapi.Result) (*script.Script, error) {
	s := script.New(t.source)
	forms := make([]interface{}, 0, len(result.WordForms))
	for _, form := range result.WordForms {
		forms = append(forms, form)
	}
	vars := map[string]interface{}{
		"estonian_word": result.EstonianWord,
		"english_word":  result.EnglishWord,
		"word_forms":    forms,
	}
	for name, value := range vars {
		if err := s.Add(name, value); err != nil {
			return nil, fmt.Errorf("can not pass %s to card template: %w", name, err)
		}
	}
	return s, nil
}
