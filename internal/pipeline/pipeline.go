// Package pipeline runs one vendor end to end: fetch the page, locate and
// classify its tables, parse and normalize the rows, build the snapshot.
// Vendor runs are fully isolated; a failure here never affects another
// vendor.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fwmatrix/internal/fetch"
	"fwmatrix/internal/snapshot"
	"fwmatrix/internal/vendors"
)

// Run executes the vendor pipeline. It returns nil without error when the
// page fetched fine but no table passed classification or no row survived
// normalization — a changed vendor page degrades to "no data", and the
// caller leaves any previous snapshot file untouched.
func Run(ctx context.Context, v vendors.Rules, strategy fetch.Strategy, opts fetch.Options) (*snapshot.Snapshot, error) {
	html, err := strategy.Fetch(ctx, v.SourceURL, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s page: %w", v.Name, err)
	}

	records := v.Extract(html)
	if len(records) == 0 {
		slog.Warn("no firmware matrix found, page structure may have changed",
			"vendor", v.Name, "url", v.SourceURL)
		return nil, nil
	}

	snap := snapshot.Build(v.Name, v.SourceURL, records, time.Now())
	slog.Info("extracted firmware matrix",
		"vendor", v.Name, "records", snap.RecordCount)
	return &snap, nil
}

// RunAll runs every vendor pipeline in sequence and persists each
// non-empty snapshot under outputDir. skip filters vendors by name (nil
// skips nothing); strategyFor supplies the fetch strategy per vendor.
// Vendors stay isolated, a failure in one never stops the next. The
// returned error is non-nil only when no vendor produced any records,
// the one condition that flips the process exit code.
func RunAll(ctx context.Context, vs []vendors.Rules, strategyFor func(vendors.Rules) fetch.Strategy, skip func(name string) bool, outputDir string, opts fetch.Options) error {
	succeeded := 0
	for _, v := range vs {
		if skip != nil && skip(v.Name) {
			slog.Info("vendor skipped", "vendor", v.Name)
			continue
		}

		snap, err := Run(ctx, v, strategyFor(v), opts)
		if err != nil {
			slog.Warn("vendor pipeline failed", "vendor", v.Name, "error", err)
			continue
		}
		if snap == nil {
			continue
		}

		path, err := snapshot.Write(outputDir, *snap)
		if err != nil {
			slog.Warn("failed to persist snapshot", "vendor", v.Name, "error", err)
			continue
		}
		slog.Info("snapshot written", "vendor", v.Name, "path", path, "records", snap.RecordCount)
		succeeded++
	}

	if succeeded == 0 {
		return errors.New("no vendor produced any records")
	}
	return nil
}

// Strategy builds the fetch strategy a vendor's rules call for: plain HTTP
// alone, or browser automation falling back once to marker-validated plain
// HTTP.
func Strategy(v vendors.Rules, proxyURL string) fetch.Strategy {
	if !v.UseBrowser {
		return fetch.NewHTTP()
	}
	return fetch.NewChain(
		fetch.NewBrowser(proxyURL),
		fetch.WithMarker(fetch.NewHTTP(), v.ContentMarker),
	)
}
