package browser

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os/exec"
	"testing"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChromeCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c, err := NewChrome(ctx, Config{Headless: true}, nil)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Nil(t, c)
}

func findChromium(t *testing.T) string {
	t.Helper()
	for _, name := range []string{"chromium", "chromium-browser", "google-chrome", "headless-shell"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	t.Skip("no chromium binary available")
	return ""
}

const loginPage = `<html><body>
<form>
<input id="email" type="text" value="old@b.c">
<div id="front" contenteditable="true">old front</div>
<button type="button" onclick="document.getElementById('done').style.display='block'">Log In</button>
</form>
<div id="done" style="display:none">ok</div>
</body></html>`

func TestChromePage(t *testing.T) {
	execPath := findChromium(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, loginPage)
	}))
	defer server.Close()

	ctx := context.Background()
	c, err := NewChrome(ctx, Config{Headless: true, ExecPath: execPath, NoSandbox: true}, nil)
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Navigate(ctx, server.URL))
	require.NoError(t, c.Fill(ctx, "#email", "a@b.c"))
	require.NoError(t, c.Fill(ctx, "#front", "koer"))

	var email, front string
	require.NoError(t, chromedp.Run(c.ctx,
		chromedp.Value("#email", &email, chromedp.ByQuery),
		chromedp.Text("#front", &front, chromedp.ByQuery),
	))
	assert.Equal(t, "a@b.c", email)
	assert.Equal(t, "koer", front)

	err = c.WaitFor(ctx, "#done", 200*time.Millisecond)
	assert.True(t, errors.Is(err, ErrTimeout), "expected timeout, got %v", err)

	require.NoError(t, c.Click(ctx, "//button[normalize-space()='Log In']"))
	require.NoError(t, c.WaitFor(ctx, "#done", 5*time.Second))

	html, err := c.HTML(ctx)
	require.NoError(t, err)
	assert.Contains(t, html, `id="done"`)
}
