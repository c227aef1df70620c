// Package vendors holds the per-vendor extraction rules and their registry.
// A vendor is data, not code: source URL, fetch plan, classifier gates and
// column mappings live in a Rules value, so supporting a new vendor is a
// new Rules definition rather than a new code path.
package vendors

import "strings"

// FieldRule maps an ordered list of header-name aliases onto one canonical
// field, with a synthesized positional key as last resort. Aliases are
// tried in priority order; the first one present in a row with a non-empty
// trimmed value wins. Fallback is consulted only when no alias matched.
type FieldRule struct {
	Aliases  []string
	Fallback string
}

// Rules describes everything vendor-specific about one pipeline run.
type Rules struct {
	Name      string
	SourceURL string

	// UseBrowser selects the browser-automation primary fetch strategy
	// with a plain-HTTP fallback; otherwise plain HTTP is the only
	// strategy.
	UseBrowser bool

	// ContentMarker must appear in HTML obtained via the plain-HTTP
	// fallback; its absence means the page is likely a bot-detection
	// interstitial and the body is discarded. Empty disables the check.
	ContentMarker string

	// MinRows is the classifier density gate: fragments with fewer <tr>
	// occurrences are rejected as layout or navigation tables.
	MinRows int

	// AllKeywords must every one appear in the fragment text (AND);
	// AnyKeywords requires at least one (OR). An empty list disables the
	// corresponding gate.
	AllKeywords []string
	AnyKeywords []string

	Model            FieldRule
	Version          FieldRule
	VersionSentinels []string
}

var (
	registry = map[string]Rules{}
	order    []string
)

// Register adds a vendor definition. Lookup is case-insensitive.
func Register(r Rules) {
	key := strings.ToLower(r.Name)
	if _, exists := registry[key]; !exists {
		order = append(order, key)
	}
	registry[key] = r
}

// Get returns the rules registered under name.
func Get(name string) (Rules, bool) {
	r, ok := registry[strings.ToLower(name)]
	return r, ok
}

// All returns every registered vendor in registration order.
func All() []Rules {
	out := make([]Rules, 0, len(order))
	for _, key := range order {
		out = append(out, registry[key])
	}
	return out
}
