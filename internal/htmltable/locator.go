// Package htmltable extracts tabular data from raw HTML with regex text
// scanning. Vendor support pages are machine-generated and well-formed in
// practice, so the scanner does not attempt to recover from unbalanced
// markup; a malformed document degrades to fewer (or zero) tables rather
// than an error.
package htmltable

import "regexp"

var (
	tableRe  = regexp.MustCompile(`(?is)<table[^>]*>.*?</table>`)
	trOpenRe = regexp.MustCompile(`(?i)<tr[\s>]`)
)

// Fragment is one <table>...</table> region of a document, kept verbatim
// including any nested markup. RowCount is the number of <tr> occurrences
// in the raw text, a cheap pre-classification signal rather than a parse
// result.
type Fragment struct {
	HTML     string
	RowCount int
}

// Fragments scans a document and returns one Fragment per table region, in
// document order. A page without tables yields an empty slice.
func Fragments(doc string) []Fragment {
	matches := tableRe.FindAllString(doc, -1)
	frags := make([]Fragment, 0, len(matches))
	for _, m := range matches {
		frags = append(frags, Fragment{
			HTML:     m,
			RowCount: len(trOpenRe.FindAllString(m, -1)),
		})
	}
	return frags
}
