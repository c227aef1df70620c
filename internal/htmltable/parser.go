package htmltable

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

var (
	trRe  = regexp.MustCompile(`(?is)<tr[^>]*>(.*?)</tr>`)
	thRe  = regexp.MustCompile(`(?is)<th[^>]*>(.*?)</th>`)
	tdRe  = regexp.MustCompile(`(?is)<td[^>]*>(.*?)</td>`)
	tagRe = regexp.MustCompile(`(?s)<[^>]*>`)
)

// Row maps a header label (or a synthesized ColumnN key) to the decoded,
// trimmed text of the cell at that position.
type Row map[string]string

// cellText flattens nested markup inside a cell, decodes HTML entities and
// trims surrounding whitespace (including NBSP).
func cellText(inner string) string {
	return strings.TrimSpace(html.UnescapeString(tagRe.ReplaceAllString(inner, "")))
}

// headerLabels extracts the column labels for a fragment. Labels come from
// <th> cells anywhere in the fragment; when the fragment has none at all,
// the first <tr>'s <td> cells serve as the header row instead. Empty
// decoded labels are dropped without a placeholder. fromFirstRow reports
// whether the fallback was taken, i.e. whether the first data-bearing row
// has already been consumed.
func headerLabels(fragment string) (labels []string, fromFirstRow bool) {
	ths := thRe.FindAllStringSubmatch(fragment, -1)
	for _, m := range ths {
		if label := cellText(m[1]); label != "" {
			labels = append(labels, label)
		}
	}
	if len(ths) > 0 {
		return labels, false
	}

	for _, tr := range trRe.FindAllStringSubmatch(fragment, -1) {
		cells := tdRe.FindAllStringSubmatch(tr[1], -1)
		if len(cells) == 0 {
			continue
		}
		for _, c := range cells {
			if label := cellText(c[1]); label != "" {
				labels = append(labels, label)
			}
		}
		return labels, true
	}
	return nil, false
}

// Rows converts one table fragment into its data rows, in document order.
// Rows containing a <th> cell are treated as header rows and skipped; when
// the header was inferred from the first <td> row, exactly that row is
// skipped as well. Empty <td> cells are kept as empty strings so column
// alignment survives; rows with no <td> cells at all are dropped. Cells
// without a header label at their position (missing, empty or duplicate
// labels, or surplus cells beyond the header) are keyed Column{N} by
// 1-indexed position. Parsing is deterministic: the same fragment always
// yields the same sequence.
func Rows(frag Fragment) []Row {
	labels, fromFirstRow := headerLabels(frag.HTML)

	headerConsumed := !fromFirstRow
	var rows []Row
	for _, tr := range trRe.FindAllStringSubmatch(frag.HTML, -1) {
		if thRe.MatchString(tr[1]) {
			continue
		}
		cells := tdRe.FindAllStringSubmatch(tr[1], -1)
		if len(cells) == 0 {
			continue
		}
		if !headerConsumed {
			headerConsumed = true
			continue
		}

		row := make(Row, len(cells))
		for i, c := range cells {
			key := ""
			if i < len(labels) {
				key = labels[i]
			}
			if key == "" {
				key = fmt.Sprintf("Column%d", i+1)
			}
			if _, taken := row[key]; taken {
				key = fmt.Sprintf("Column%d", i+1)
			}
			row[key] = cellText(c[1])
		}
		rows = append(rows, row)
	}
	return rows
}
