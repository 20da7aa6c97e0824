// Package insurer defines the contract shared by all policy schedule parsers
// and the registry that resolves and auto-detects them.
package insurer

import (
	"polisched/internal/pdftext"
)

// Parser extracts a structured record from one extracted document. A parser is
// stateless and pure over its input: absent fields stay null and partial
// extraction is not an error.
type Parser interface {
	// DocumentName is the human-readable name of the document type handled.
	DocumentName() string
	// SupportedFields lists the top-level fields the parser can extract.
	SupportedFields() []string
	// Identify reports whether this parser can handle the document.
	Identify(doc *pdftext.Document) bool
	// Parse assembles the insurer-specific record. The returned value
	// marshals to the JSON shape documented per insurer.
	Parse(doc *pdftext.Document) (any, error)
}
