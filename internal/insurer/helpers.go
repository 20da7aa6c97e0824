package insurer

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"polisched/internal/pdftext"
)

// CleanAmount converts a currency string like "R 1,234.56" to a float.
// Returns nil when the string does not contain a parseable number.
func CleanAmount(s string) *float64 {
	if s == "" {
		return nil
	}
	cleaned := strings.NewReplacer("R", "", "r", "", ",", "", " ", "", " ", "").Replace(s)
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return nil
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &v
}

// FirstSubmatch runs the patterns in order against text and returns the
// submatches of the first one that matches, or nil when none do.
func FirstSubmatch(text string, patterns ...*regexp.Regexp) []string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return m
		}
	}
	return nil
}

// FirstGroup is FirstSubmatch reduced to the first capture group, trimmed.
// Returns nil when no pattern matches or the group is empty.
func FirstGroup(text string, patterns ...*regexp.Regexp) *string {
	m := FirstSubmatch(text, patterns...)
	if m == nil || len(m) < 2 {
		return nil
	}
	g := strings.TrimSpace(m[1])
	if g == "" {
		return nil
	}
	return &g
}

// String returns a pointer to s, or nil when s trims to empty. Pointer fields
// keep unextracted values as JSON null rather than "".
func String(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Float returns a pointer to f.
func Float(f float64) *float64 {
	return &f
}

// CollapseSpaces folds runs of whitespace into single spaces.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

const previewLimit = 500

// Preview returns up to maxPages of raw page text keyed by "pageN", truncated
// to 500 characters with a trailing ellipsis. Used by parsers that cannot
// interpret a layout but still want to hand back something inspectable. With
// markEmpty set, blank pages are labelled instead of left empty.
func Preview(doc *pdftext.Document, maxPages int, markEmpty bool) map[string]string {
	out := make(map[string]string)
	nums := doc.PageNumbers()
	sort.Ints(nums)
	for i, n := range nums {
		if i >= maxPages {
			break
		}
		text := doc.Pages[n]
		if len(text) > previewLimit {
			text = text[:previewLimit] + "..."
		} else if text == "" && markEmpty {
			text = "(empty page)"
		}
		out["page"+strconv.Itoa(n)] = text
	}
	return out
}
