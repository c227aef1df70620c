package fetch

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// HTTP is the plain GET strategy: one request, browser-like headers, no
// JavaScript execution.
type HTTP struct {
	client *resty.Client
}

// NewHTTP creates the plain-HTTP strategy.
func NewHTTP() *HTTP {
	return &HTTP{client: resty.New()}
}

func (h *HTTP) Name() string { return "http" }

func (h *HTTP) Fetch(ctx context.Context, url string, opts Options) (string, error) {
	// Timeout rides on the request context; the shared client is never
	// mutated per fetch.
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	ua := opts.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader("User-Agent", ua).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8").
		SetHeader("Accept-Language", "en-US,en;q=0.5")
	for k, v := range opts.Headers {
		req.SetHeader(k, v)
	}

	resp, err := req.Get(url)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("unexpected status: %s", resp.Status())
	}
	return resp.String(), nil
}
