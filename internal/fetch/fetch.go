// Package fetch retrieves raw vendor page HTML. Retrieval is a pluggable
// Strategy; a vendor either uses plain HTTP directly or a browser
// automation primary with a plain-HTTP fallback. Each strategy is tried at
// most once — there is no retry loop, a failed fetch for a vendor is
// terminal for that vendor's run.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// DefaultUserAgent mirrors a current desktop Chrome; vendor support pages
// serve interstitials to obvious non-browser agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Options carries per-fetch parameters shared by all strategies.
type Options struct {
	UserAgent string
	Headers   map[string]string
	Timeout   time.Duration
	// Settle is how long the browser strategy waits after navigation for
	// client-side rendering to finish before reading the DOM.
	Settle time.Duration
	ShowUI bool
}

// Strategy retrieves the raw HTML of a URL or fails.
type Strategy interface {
	Name() string
	Fetch(ctx context.Context, url string, opts Options) (string, error)
}

// Chain tries strategies in order and returns the first success. Later
// strategies are only consulted when earlier ones fail; every strategy is
// attempted at most once.
type Chain struct {
	strategies []Strategy
}

// NewChain builds a fallback chain.
func NewChain(strategies ...Strategy) *Chain {
	return &Chain{strategies: strategies}
}

func (c *Chain) Name() string {
	names := make([]string, 0, len(c.strategies))
	for _, s := range c.strategies {
		names = append(names, s.Name())
	}
	return strings.Join(names, "+")
}

func (c *Chain) Fetch(ctx context.Context, url string, opts Options) (string, error) {
	var errs []error
	for i, s := range c.strategies {
		if i > 0 {
			slog.Warn("falling back to secondary fetch strategy", "strategy", s.Name(), "url", url)
		}
		html, err := s.Fetch(ctx, url, opts)
		if err == nil {
			return html, nil
		}
		slog.Warn("fetch strategy failed", "strategy", s.Name(), "url", url, "error", err)
		errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
	}
	if len(errs) == 0 {
		return "", errors.New("no fetch strategies configured")
	}
	return "", fmt.Errorf("all fetch strategies failed: %w", errors.Join(errs...))
}

// WithMarker wraps a strategy so its result is only accepted when the HTML
// contains marker. Vendor pages behind bot detection return plausible
// 200-status interstitials; a missing marker means the body is not real
// data and is discarded rather than parsed.
func WithMarker(s Strategy, marker string) Strategy {
	if marker == "" {
		return s
	}
	return &markerStrategy{inner: s, marker: marker}
}

type markerStrategy struct {
	inner  Strategy
	marker string
}

func (m *markerStrategy) Name() string { return m.inner.Name() }

func (m *markerStrategy) Fetch(ctx context.Context, url string, opts Options) (string, error) {
	html, err := m.inner.Fetch(ctx, url, opts)
	if err != nil {
		return "", err
	}
	if !strings.Contains(html, m.marker) {
		return "", fmt.Errorf("response is missing expected content %q, likely bot-blocked", m.marker)
	}
	return html, nil
}
