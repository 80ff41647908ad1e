// Package actions exposes the callable actions: word lookup and the AnkiWeb
// card actions, both as typed methods and through name based JSON dispatch.
package actions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/darkclainer/sonago/pkg/ankiweb"
	"github.com/darkclainer/sonago/pkg/cardtpl"
	"github.com/darkclainer/sonago/pkg/sonapi"
)

const (
	GetWordAction             = "get_word"
	AddCardAction             = "add_card_to_current_deck"
	IsCardInCurrentDeckAction = "is_card_in_current_deck"
	FindCardsAction           = "find_cards_in_current_deck"
	AddWordCardAction         = "add_word_card"
)

const (
	MsgCardSaved     = "The card was successfully saved"
	MsgCardInDeck    = "The card is already in the deck"
	MsgCardNotInDeck = "The card is not in the deck"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrBadArguments  = errors.New("bad action arguments")
)

//go:generate go run github.com/vektra/mockery/cmd/mockery -name Cards -output ../mocks/

// Cards is the part of ankiweb.Client the actions use.
type Cards interface {
	AddCard(ctx context.Context, creds ankiweb.Credentials, front, back string) error
	HasCard(ctx context.Context, creds ankiweb.Credentials, search string) (bool, error)
	FindCards(ctx context.Context, creds ankiweb.Credentials, search string) ([]*ankiweb.Card, error)
}

type Actions struct {
	lookuper sonapi.Lookuper
	cards    Cards
	template *cardtpl.Template
	logger   *zap.Logger
}

func New(lookuper sonapi.Lookuper, cards Cards, template *cardtpl.Template, logger *zap.Logger) *Actions {
	if template == nil {
		template = cardtpl.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Actions{
		lookuper: lookuper,
		cards:    cards,
		template: template,
		logger:   logger,
	}
}

// GetWord looks up a word, either in Estonian or in English.
func (a *Actions) GetWord(ctx context.Context, word string, isEnglishWord bool) (*sonapi.Result, error) {
	return a.lookuper.Lookup(ctx, word, isEnglishWord)
}

// AddCardToCurrentDeck adds a card to the current Anki deck.
func (a *Actions) AddCardToCurrentDeck(ctx context.Context, email, password ankiweb.Secret, front, back string) (string, error) {
	creds := ankiweb.Credentials{Email: email, Password: password}
	if err := a.cards.AddCard(ctx, creds, front, back); err != nil {
		return "", err
	}
	return MsgCardSaved, nil
}

func (a *Actions) IsCardInCurrentDeck(ctx context.Context, email, password ankiweb.Secret, search string) (string, error) {
	creds := ankiweb.Credentials{Email: email, Password: password}
	found, err := a.cards.HasCard(ctx, creds, search)
	if err != nil {
		return "", err
	}
	if found {
		return MsgCardInDeck, nil
	}
	return MsgCardNotInDeck, nil
}

func (a *Actions) FindCardsInCurrentDeck(ctx context.Context, email, password ankiweb.Secret, search string) ([]*ankiweb.Card, error) {
	return a.cards.FindCards(ctx, ankiweb.Credentials{Email: email, Password: password}, search)
}

// AddWordCard looks word up, renders the card template and adds the card.
func (a *Actions) AddWordCard(ctx context.Context, email, password ankiweb.Secret, word string, isEnglishWord bool) (*cardtpl.Card, error) {
	result, err := a.GetWord(ctx, word, isEnglishWord)
	if err != nil {
		return nil, err
	}
	card, err := a.template.Render(ctx, result)
	if err != nil {
		return nil, err
	}
	if _, err := a.AddCardToCurrentDeck(ctx, email, password, card.Front, card.Back); err != nil {
		return nil, err
	}
	return card, nil
}

type wordArgs struct {
	Word          string `json:"word"`
	IsEnglishWord bool   `json:"is_english_word"`
}

type addCardArgs struct {
	ankiweb.Credentials
	FrontValue string `json:"front_value"`
	BackValue  string `json:"back_value"`
}

type searchArgs struct {
	ankiweb.Credentials
	Search string `json:"search"`
}

type wordCardArgs struct {
	ankiweb.Credentials
	wordArgs
}

type handler func(ctx context.Context, a *Actions, args json.RawMessage) (interface{}, error)

var handlers = map[string]handler{
	GetWordAction: func(ctx context.Context, a *Actions, raw json.RawMessage) (interface{}, error) {
		var args wordArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return a.GetWord(ctx, args.Word, args.IsEnglishWord)
	},
	AddCardAction: func(ctx context.Context, a *Actions, raw json.RawMessage) (interface{}, error) {
		var args addCardArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return a.AddCardToCurrentDeck(ctx, args.Email, args.Password, args.FrontValue, args.BackValue)
	},
	IsCardInCurrentDeckAction: func(ctx context.Context, a *Actions, raw json.RawMessage) (interface{}, error) {
		var args searchArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return a.IsCardInCurrentDeck(ctx, args.Email, args.Password, args.Search)
	},
	FindCardsAction: func(ctx context.Context, a *Actions, raw json.RawMessage) (interface{}, error) {
		var args searchArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return a.FindCardsInCurrentDeck(ctx, args.Email, args.Password, args.Search)
	},
	AddWordCardAction: func(ctx context.Context, a *Actions, raw json.RawMessage) (interface{}, error) {
		var args wordCardArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return a.AddWordCard(ctx, args.Email, args.Password, args.Word, args.IsEnglishWord)
	},
}

// Names lists the actions Invoke accepts.
func Names() []string {
	names := make([]string, 0, len(handlers))
	for name := range handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke runs the action called name with JSON encoded arguments.
func (a *Actions) Invoke(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	h, ok := handlers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}
	a.logger.Debug("Invoking action", zap.String("action", name))
	return h(ctx, a, args)
}

func decodeArgs(raw json.RawMessage, v interface{}) error {
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %s", ErrBadArguments, err)
	}
	return nil
}
