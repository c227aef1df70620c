package vendors

import (
	"strings"

	"fwmatrix/internal/htmltable"
	"fwmatrix/internal/snapshot"
)

// Classify reports whether a table fragment looks like this vendor's
// firmware matrix. Two independent gates must both pass: the fragment must
// carry at least MinRows <tr> occurrences, and its text must satisfy the
// keyword policy. An ambiguous table is skipped; under-extraction beats
// ingesting rows from a navigation or legal table.
func (r Rules) Classify(frag htmltable.Fragment) bool {
	if frag.RowCount < r.MinRows {
		return false
	}
	for _, kw := range r.AllKeywords {
		if !strings.Contains(frag.HTML, kw) {
			return false
		}
	}
	if len(r.AnyKeywords) > 0 {
		found := false
		for _, kw := range r.AnyKeywords {
			if strings.Contains(frag.HTML, kw) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// pick resolves one canonical field from a row: first matching alias wins,
// then the positional fallback key.
func (fr FieldRule) pick(row htmltable.Row) string {
	for _, alias := range fr.Aliases {
		if v := strings.TrimSpace(row[alias]); v != "" {
			return v
		}
	}
	return strings.TrimSpace(row[fr.Fallback])
}

// Normalize maps the parsed rows of one classified table onto canonical
// records. A record is emitted only when both fields resolved non-empty;
// partial rows are expected noise and dropped silently. Rows whose version
// equals a sentinel ("not yet published" placeholders such as TBD) are
// excluded. Output order follows input order and duplicates are kept.
func (r Rules) Normalize(rows []htmltable.Row) []snapshot.Record {
	var records []snapshot.Record
	for _, row := range rows {
		model := r.Model.pick(row)
		version := r.Version.pick(row)
		if model == "" || version == "" {
			continue
		}
		if r.isSentinel(version) {
			continue
		}
		records = append(records, snapshot.Record{
			Model:              model,
			MinFirmwareVersion: version,
		})
	}
	return records
}

func (r Rules) isSentinel(version string) bool {
	for _, s := range r.VersionSentinels {
		if version == s {
			return true
		}
	}
	return false
}

// Extract runs the full chain over a whole document: locate the tables,
// classify each, parse and normalize the ones that match. Every table that
// passes Classify contributes its records in document order.
func (r Rules) Extract(doc string) []snapshot.Record {
	var records []snapshot.Record
	for _, frag := range htmltable.Fragments(doc) {
		if !r.Classify(frag) {
			continue
		}
		records = append(records, r.Normalize(htmltable.Rows(frag))...)
	}
	return records
}
