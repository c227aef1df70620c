// Package report renders the candidate tables of a vendor page for human
// inspection. When a vendor reshapes its page and the classifier starts
// missing, this is the surface for diagnosing which table looked like what
// and which gate rejected it.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"

	"fwmatrix/internal/htmltable"
	"fwmatrix/internal/vendors"
)

// Candidate is one table found on the page with its classifier verdict.
type Candidate struct {
	Index    int    `json:"Index"`
	RowCount int    `json:"RowCount"`
	Relevant bool   `json:"Relevant"`
	Records  int    `json:"Records"`
	Markdown string `json:"Markdown"`
}

// Candidates locates every table in doc, classifies each against the
// vendor rules and renders it as markdown.
func Candidates(v vendors.Rules, doc string) ([]Candidate, error) {
	conv := md.NewConverter("", true, nil)

	frags := htmltable.Fragments(doc)
	out := make([]Candidate, 0, len(frags))
	for i, frag := range frags {
		rendered, err := conv.ConvertString(frag.HTML)
		if err != nil {
			return nil, fmt.Errorf("failed to render table %d: %w", i+1, err)
		}
		relevant := v.Classify(frag)
		records := 0
		if relevant {
			records = len(v.Normalize(htmltable.Rows(frag)))
		}
		out = append(out, Candidate{
			Index:    i + 1,
			RowCount: frag.RowCount,
			Relevant: relevant,
			Records:  records,
			Markdown: rendered,
		})
	}
	return out, nil
}

// RenderMarkdown formats candidates as a readable markdown report.
func RenderMarkdown(vendorName string, candidates []Candidate) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s: %d candidate tables\n\n", vendorName, len(candidates)))
	for _, c := range candidates {
		verdict := "rejected"
		if c.Relevant {
			verdict = fmt.Sprintf("relevant, %d records", c.Records)
		}
		sb.WriteString(fmt.Sprintf("## Table %d (%d rows, %s)\n\n", c.Index, c.RowCount, verdict))
		sb.WriteString(strings.TrimSpace(c.Markdown))
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// RenderJSON formats candidates as indented JSON.
func RenderJSON(candidates []Candidate) (string, error) {
	b, err := json.MarshalIndent(candidates, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
