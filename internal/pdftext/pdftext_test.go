package pdftext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"polisched/internal/domain"
	"polisched/internal/pdftext"
)

func testDoc() *pdftext.Document {
	return &pdftext.Document{
		Pages: map[int]string{
			3: "third page\n",
			1: "first page with Santam\n",
			2: "second page\n",
		},
	}
}

func TestDocument_PageCount(t *testing.T) {
	assert.Equal(t, 3, testDoc().PageCount())
	assert.Equal(t, 0, (&pdftext.Document{Pages: map[int]string{}}).PageCount())
}

func TestDocument_PageNumbers(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, testDoc().PageNumbers())
}

func TestDocument_AllText(t *testing.T) {
	assert.Equal(t, "first page with Santam\n\nsecond page\n\nthird page\n", testDoc().AllText())
}

func TestDocument_PageContaining(t *testing.T) {
	doc := testDoc()
	assert.Equal(t, "first page with Santam\n", doc.PageContaining("Santam"))
	assert.Equal(t, "second page\n", doc.PageContaining("second", "page"))
	assert.Empty(t, doc.PageContaining("second", "Santam"))
	assert.Empty(t, doc.PageContaining("missing"))
}

func TestDocument_Limit(t *testing.T) {
	doc := testDoc()
	doc.Rows = map[int][][]string{3: {{"third", "page"}}}

	doc.Limit(2)
	assert.Equal(t, []int{1, 2}, doc.PageNumbers())
	assert.Empty(t, doc.Rows)

	// Zero and under-limit calls leave the document untouched.
	doc.Limit(0)
	doc.Limit(5)
	assert.Equal(t, 2, doc.PageCount())
}

func TestExtract_RejectsGarbage(t *testing.T) {
	_, err := pdftext.Extract([]byte("%PDF-1.4 but not really a pdf"))
	assert.ErrorIs(t, err, domain.ErrUnreadableDocument)
}
