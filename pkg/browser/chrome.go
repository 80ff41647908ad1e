package browser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

type Config struct {
	// Headless runs chromium without a window
	Headless bool
	// ExecPath overrides the chromium binary lookup
	ExecPath string
	// UserAgent is sent instead of the chromium default when not empty
	UserAgent string
	// NoSandbox is needed to run chromium as root, e.g. in containers
	NoSandbox bool
}

// Chrome drives one chromium tab through the DevTools protocol.
type Chrome struct {
	ctx         context.Context
	cancelTab   context.CancelFunc
	cancelAlloc context.CancelFunc
	logger      *zap.Logger
}

// NewChromeOpener returns an Opener that launches a new chromium process per page.
func NewChromeOpener(conf Config, logger *zap.Logger) Opener {
	return func(ctx context.Context) (Browser, error) {
		return NewChrome(ctx, conf, logger)
	}
}

func NewChrome(ctx context.Context, conf Config, logger *zap.Logger) (*Chrome, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	opts = append(opts, chromedp.Flag("headless", conf.Headless))
	if conf.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(conf.ExecPath))
	}
	if conf.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(conf.UserAgent))
	}
	if conf.NoSandbox {
		opts = append(opts, chromedp.NoSandbox)
	}
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(logger.Sugar().Debugf),
		chromedp.WithErrorf(logger.Sugar().Errorf),
	)
	c := &Chrome{
		ctx:         tabCtx,
		cancelTab:   cancelTab,
		cancelAlloc: cancelAlloc,
		logger:      logger,
	}
	if err := ctx.Err(); err != nil {
		_ = c.Close()
		return nil, err
	}
	// The first Run allocates the browser and must not use a derived context,
	// cancelling one would stop the whole process.
	if err := chromedp.Run(tabCtx); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("can not start browser: %w", err)
	}
	return c, nil
}

func (c *Chrome) Navigate(ctx context.Context, url string) error {
	c.logger.Debug("navigate", zap.String("url", url))
	return c.run(ctx, chromedp.Navigate(url))
}

// Fill replaces the content of the element with value. The element is
// cleared first, then focused and typed into, which works for inputs and
// contenteditable blocks alike.
func (c *Chrome) Fill(ctx context.Context, selector, value string) error {
	c.logger.Debug("fill", zap.String("selector", selector))
	return c.run(ctx,
		chromedp.WaitVisible(selector, chromedp.BySearch),
		chromedp.SetValue(selector, "", chromedp.BySearch),
		chromedp.SetJavascriptAttribute(selector, "textContent", "", chromedp.BySearch),
		chromedp.Focus(selector, chromedp.BySearch),
		chromedp.SendKeys(selector, value, chromedp.BySearch),
	)
}

func (c *Chrome) Click(ctx context.Context, selector string) error {
	c.logger.Debug("click", zap.String("selector", selector))
	return c.run(ctx, chromedp.Click(selector, chromedp.BySearch))
}

func (c *Chrome) WaitFor(ctx context.Context, selector string, timeout time.Duration) error {
	c.logger.Debug("wait", zap.String("selector", selector), zap.Duration("timeout", timeout))
	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	err := c.run(waitCtx, chromedp.WaitVisible(selector, chromedp.BySearch))
	if err != nil && ctx.Err() == nil && errors.Is(waitCtx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", ErrTimeout, selector)
	}
	return err
}

func (c *Chrome) HTML(ctx context.Context) (string, error) {
	var html string
	if err := c.run(ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", err
	}
	return html, nil
}

// run executes actions on the tab while honoring cancellation of ctx.
func (c *Chrome) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithCancel(c.ctx)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()
	if err := chromedp.Run(runCtx, actions...); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	return nil
}

func (c *Chrome) Close() error {
	c.cancelTab()
	c.cancelAlloc()
	return nil
}
