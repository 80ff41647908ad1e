// Package ankiweb scripts the AnkiWeb site: log in, add a card to the current
// deck and search the current deck.
package ankiweb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/darkclainer/sonago/pkg/browser"
)

const (
	defaultLoginURL      = "https://ankiweb.net/account/login"
	defaultSearchTimeout = 500 * time.Millisecond
	currentDeckQuery     = "deck:current"
)

var ErrMissingCredentials = errors.New("email and password are required")

// Selectors locate the page elements. Values are CSS selectors or XPath.
type Selectors struct {
	Email        string
	Password     string
	LoginButton  string
	AddLink      string
	FrontField   string
	BackField    string
	AddButton    string
	SearchLink   string
	SearchInput  string
	SearchButton string
	ResultCell   string
}

func DefaultSelectors() Selectors {
	return Selectors{
		Email:        `input[placeholder='Email']`,
		Password:     `input[placeholder='Password']`,
		LoginButton:  `//button[normalize-space()='Log In']`,
		AddLink:      `//a[normalize-space()='Add']`,
		FrontField:   `//div[span[normalize-space()='Front']]/div/div`,
		BackField:    `//div[span[normalize-space()='Back']]/div/div`,
		AddButton:    `//button[normalize-space()='Add']`,
		SearchLink:   `//a[normalize-space()='Search']`,
		SearchInput:  `input[placeholder='Search']`,
		SearchButton: `//button[normalize-space()='Search']`,
		ResultCell:   `table tr td`,
	}
}

type Config struct {
	LoginURL string
	// SearchTimeout is how long a search waits for the first result cell
	SearchTimeout time.Duration
	// Selectors overrides DefaultSelectors when set
	Selectors *Selectors
}

type Client struct {
	open   browser.Opener
	config *Config
	logger *zap.Logger
}

func NewClient(open browser.Opener, config *Config, logger *zap.Logger) *Client {
	if config == nil {
		config = &Config{}
	}
	if config.LoginURL == "" {
		config.LoginURL = defaultLoginURL
	}
	if config.SearchTimeout <= 0 {
		config.SearchTimeout = defaultSearchTimeout
	}
	if config.Selectors == nil {
		selectors := DefaultSelectors()
		config.Selectors = &selectors
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		open:   open,
		config: config,
		logger: logger,
	}
}

// AddCard adds a card with the given sides to the current deck.
func (c *Client) AddCard(ctx context.Context, creds Credentials, front, back string) error {
	sel := c.config.Selectors
	steps := append(c.login(creds),
		click("open add page", sel.AddLink),
		fill("fill front", sel.FrontField, front),
		fill("fill back", sel.BackField, back),
		click("submit card", sel.AddButton),
	)
	return c.withPage(ctx, creds, "add card", func(page browser.Browser) error {
		return runSteps(ctx, page, steps)
	})
}

// HasCard reports whether searching the current deck for search yields any card.
func (c *Client) HasCard(ctx context.Context, creds Credentials, search string) (bool, error) {
	var found bool
	err := c.withPage(ctx, creds, "check card", func(page browser.Browser) error {
		var err error
		found, err = c.search(ctx, page, creds, search)
		return err
	})
	return found, err
}

// FindCards returns the rows the current deck search yields for search.
func (c *Client) FindCards(ctx context.Context, creds Credentials, search string) ([]*Card, error) {
	cards := make([]*Card, 0)
	err := c.withPage(ctx, creds, "find cards", func(page browser.Browser) error {
		found, err := c.search(ctx, page, creds, search)
		if err != nil || !found {
			return err
		}
		html, err := page.HTML(ctx)
		if err != nil {
			return fmt.Errorf("read results: %w", err)
		}
		cards, err = ParseCardsHTML(strings.NewReader(html))
		return err
	})
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (c *Client) search(ctx context.Context, page browser.Browser, creds Credentials, search string) (bool, error) {
	sel := c.config.Selectors
	steps := append(c.login(creds),
		click("open search page", sel.SearchLink),
		fill("fill search", sel.SearchInput, currentDeckQuery+" "+search),
		click("submit search", sel.SearchButton),
	)
	if err := runSteps(ctx, page, steps); err != nil {
		return false, err
	}
	err := page.WaitFor(ctx, sel.ResultCell, c.config.SearchTimeout)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, browser.ErrTimeout):
		return false, nil
	default:
		return false, fmt.Errorf("wait for results: %w", err)
	}
}

func (c *Client) login(creds Credentials) []step {
	sel := c.config.Selectors
	return []step{
		navigate("open login page", c.config.LoginURL),
		fill("fill email", sel.Email, creds.Email.Value()),
		fill("fill password", sel.Password, creds.Password.Value()),
		click("log in", sel.LoginButton),
	}
}

// withPage opens a page for a single action and always closes it.
func (c *Client) withPage(ctx context.Context, creds Credentials, action string, fn func(page browser.Browser) error) error {
	if creds.Email.IsZero() || creds.Password.IsZero() {
		return ErrMissingCredentials
	}
	logger := c.logger.With(zap.String("action", action))
	logger.Debug("Opening page")
	page, err := c.open(ctx)
	if err != nil {
		return fmt.Errorf("can not open browser: %w", err)
	}
	defer func() {
		if closeErr := page.Close(); closeErr != nil {
			logger.Warn("Page close failed", zap.Error(closeErr))
		}
	}()
	if err := fn(page); err != nil {
		logger.Debug("Action failed", zap.Error(err))
		return fmt.Errorf("%s: %w", action, err)
	}
	logger.Debug("Action done")
	return nil
}

type step struct {
	name string
	do   func(ctx context.Context, page browser.Browser) error
}

func navigate(name, url string) step {
	return step{name: name, do: func(ctx context.Context, page browser.Browser) error {
		return page.Navigate(ctx, url)
	}}
}

func fill(name, selector, value string) step {
	return step{name: name, do: func(ctx context.Context, page browser.Browser) error {
		return page.Fill(ctx, selector, value)
	}}
}

func click(name, selector string) step {
	return step{name: name, do: func(ctx context.Context, page browser.Browser) error {
		return page.Click(ctx, selector)
	}}
}

func runSteps(ctx context.Context, page browser.Browser, steps []step) error {
	for _, s := range steps {
		if err := s.do(ctx, page); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return nil
}
