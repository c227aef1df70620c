package fetch

import (
	"context"
	"fmt"
	"time"

	"fwmatrix/internal/browser"

	"github.com/go-rod/rod/lib/proto"
)

// Browser is the browser-automation strategy: navigate with a stealth
// page, wait a fixed settle delay for client-side rendering, then read the
// rendered DOM. The browser process is released on every exit path.
type Browser struct {
	proxyURL string
}

// NewBrowser creates the browser-automation strategy.
func NewBrowser(proxyURL string) *Browser {
	return &Browser{proxyURL: proxyURL}
}

func (b *Browser) Name() string { return "browser" }

func (b *Browser) Fetch(ctx context.Context, url string, opts Options) (string, error) {
	br, err := browser.New(browser.Config{
		Headless: !opts.ShowUI,
		ProxyURL: b.proxyURL,
	})
	if err != nil {
		return "", err
	}
	defer br.Close()

	page, err := br.NewPage()
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)
	if opts.Timeout > 0 {
		page = page.Timeout(opts.Timeout)
	}

	if opts.UserAgent != "" {
		_ = page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
			UserAgent: opts.UserAgent,
		})
	}

	if err := page.Navigate(url); err != nil {
		return "", fmt.Errorf("failed to navigate: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("failed to wait for page load: %w", err)
	}

	// Fixed settle delay so client-side rendering of the matrix table
	// completes before the DOM is read.
	if opts.Settle > 0 {
		time.Sleep(opts.Settle)
	}

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("failed to read page HTML: %w", err)
	}
	return html, nil
}
