// Package pdftext wraps the PDF text-extraction library behind a small,
// page-indexed document model that the insurer parsers consume.
package pdftext

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"polisched/internal/domain"
)

// Document holds the extracted content of one PDF, indexed by 1-based page
// number. Rows preserves the word grouping the extractor reports per text row
// and stands in for table structures on pages that carry them.
type Document struct {
	Pages map[int]string
	Rows  map[int][][]string
}

// Extract opens the PDF bytes and extracts text and rows from every page
// eagerly. A reader failure is the only hard error; pages that fail row
// extraction contribute an empty entry.
func Extract(data []byte) (doc *Document, err error) {
	// The pdf library panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("%w: %v", domain.ErrUnreadableDocument, r)
		}
	}()

	reader, rErr := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if rErr != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnreadableDocument, rErr)
	}

	doc = &Document{
		Pages: make(map[int]string),
		Rows:  make(map[int][][]string),
	}

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			doc.Pages[i] = ""
			continue
		}
		rows, rowErr := page.GetTextByRow()
		if rowErr != nil {
			doc.Pages[i] = ""
			continue
		}

		var sb strings.Builder
		pageRows := make([][]string, 0, len(rows))
		for _, row := range rows {
			words := make([]string, 0, len(row.Content))
			for _, word := range row.Content {
				if word.S == "" {
					continue
				}
				words = append(words, word.S)
			}
			if len(words) == 0 {
				continue
			}
			pageRows = append(pageRows, words)
			sb.WriteString(strings.Join(words, " "))
			sb.WriteString("\n")
		}
		doc.Pages[i] = sb.String()
		if len(pageRows) > 0 {
			doc.Rows[i] = pageRows
		}
	}

	return doc, nil
}

// Limit drops pages beyond max, keeping the lowest-numbered pages. A max of
// zero or less leaves the document unchanged.
func (d *Document) Limit(max int) {
	if max <= 0 || len(d.Pages) <= max {
		return
	}
	for _, n := range d.PageNumbers()[max:] {
		delete(d.Pages, n)
		delete(d.Rows, n)
	}
}

// PageCount returns the number of extracted pages.
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// PageNumbers returns the page numbers in ascending order.
func (d *Document) PageNumbers() []int {
	nums := make([]int, 0, len(d.Pages))
	for n := range d.Pages {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// AllText returns the text of every page joined in page order.
func (d *Document) AllText() string {
	var parts []string
	for _, n := range d.PageNumbers() {
		parts = append(parts, d.Pages[n])
	}
	return strings.Join(parts, "\n")
}

// PageContaining returns the text of the first page containing every keyword,
// or the empty string when no page matches.
func (d *Document) PageContaining(keywords ...string) string {
	for _, n := range d.PageNumbers() {
		text := d.Pages[n]
		all := true
		for _, kw := range keywords {
			if !strings.Contains(text, kw) {
				all = false
				break
			}
		}
		if all {
			return text
		}
	}
	return ""
}
