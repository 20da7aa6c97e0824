// Package generic is the fallback for documents no insurer parser claims. It
// hands back raw text from the first pages so a new layout can be inspected
// and a dedicated parser written.
package generic

import (
	"polisched/internal/insurer"
	"polisched/internal/pdftext"
)

func init() {
	insurer.Register(insurer.NameGeneric, func() insurer.Parser { return &Parser{} })
}

type Parser struct{}

// Result carries the unrecognized-document payload.
type Result struct {
	Insurer   string            `json:"insurer"`
	Status    string            `json:"status"`
	RawText   map[string]string `json:"rawText"`
	PageCount int               `json:"pageCount"`
	Message   string            `json:"message"`
}

func (p *Parser) DocumentName() string { return "Unknown Document Type" }

func (p *Parser) SupportedFields() []string { return []string{"rawText"} }

// Identify always accepts; the registry only consults the fallback after
// every specific parser has declined.
func (p *Parser) Identify(doc *pdftext.Document) bool { return true }

func (p *Parser) Parse(doc *pdftext.Document) (any, error) {
	return &Result{
		Insurer:   "Unknown",
		Status:    "unrecognized",
		RawText:   insurer.Preview(doc, 3, true),
		PageCount: doc.PageCount(),
		Message: "Document type not recognized. " +
			"Returning raw text from first 3 pages. " +
			"Please check if a parser exists for this document type.",
	}, nil
}
