// Package browser wraps a rod-controlled Chromium instance used by the
// browser-automation fetch strategy. Launch failures are ordinary errors:
// a machine without Chromium disables the strategy, it does not crash the
// run.
package browser

import (
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"
)

// Config controls how the browser is launched.
type Config struct {
	Headless bool
	ProxyURL string
}

// Browser owns a launched Chromium process and its rod connection.
type Browser struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
}

// New launches Chromium and connects to it.
func New(cfg Config) (*Browser, error) {
	l := launcher.New().Headless(cfg.Headless)
	if cfg.ProxyURL != "" {
		l = l.Proxy(cfg.ProxyURL)
	}

	url, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	b := rod.New().ControlURL(url)
	if err := b.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	return &Browser{browser: b, launcher: l}, nil
}

// NewPage creates a page with the stealth patches applied, so vendor pages
// behind bot detection see an ordinary browser.
func (b *Browser) NewPage() (*rod.Page, error) {
	page, err := stealth.Page(b.browser)
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	return page, nil
}

// Close shuts the browser down and kills the launched process. Safe to
// defer on every path that obtained a Browser.
func (b *Browser) Close() error {
	if b.browser != nil {
		if err := b.browser.Close(); err != nil {
			return err
		}
	}
	if b.launcher != nil {
		b.launcher.Kill()
	}
	return nil
}
