// Package santam recognizes Santam policy schedules. Extraction is not built
// out yet; parsing returns a status payload with a raw text preview.
package santam

import (
	"strings"

	"polisched/internal/insurer"
	"polisched/internal/pdftext"
)

func init() {
	insurer.Register(insurer.NameSantam, func() insurer.Parser { return &Parser{} })
}

type Parser struct{}

// Result is the placeholder payload returned until field extraction lands.
type Result struct {
	Insurer string            `json:"insurer"`
	Status  string            `json:"status"`
	Message string            `json:"message"`
	RawText map[string]string `json:"rawText"`
}

func (p *Parser) DocumentName() string { return "Santam Policy Schedule" }

func (p *Parser) SupportedFields() []string {
	return []string{
		"policyNumber",
		"policyholder",
		"vehicles",
		"buildings",
		"contents",
		"liability",
	}
}

func (p *Parser) Identify(doc *pdftext.Document) bool {
	return strings.Contains(doc.AllText(), "Santam")
}

func (p *Parser) Parse(doc *pdftext.Document) (any, error) {
	return &Result{
		Insurer: "Santam",
		Status:  "not_implemented",
		Message: "Santam parser is currently a stub. Full implementation pending.",
		RawText: insurer.Preview(doc, 3, false),
	}, nil
}
