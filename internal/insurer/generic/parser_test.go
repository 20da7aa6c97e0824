package generic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polisched/internal/insurer/generic"
	"polisched/internal/pdftext"
)

func TestParser_IdentifyAcceptsAnything(t *testing.T) {
	p := &generic.Parser{}
	assert.True(t, p.Identify(&pdftext.Document{Pages: map[int]string{1: ""}}))
}

func TestParser_Parse(t *testing.T) {
	p := &generic.Parser{}
	doc := &pdftext.Document{Pages: map[int]string{
		1: "some unknown layout",
		2: "",
		3: "more text",
		4: "not previewed",
	}}

	out, err := p.Parse(doc)
	require.NoError(t, err)

	result, ok := out.(*generic.Result)
	require.True(t, ok)
	assert.Equal(t, "Unknown", result.Insurer)
	assert.Equal(t, "unrecognized", result.Status)
	assert.Equal(t, 4, result.PageCount)
	assert.Equal(t, "some unknown layout", result.RawText["page1"])
	assert.Equal(t, "(empty page)", result.RawText["page2"])
	assert.Len(t, result.RawText, 3)
	assert.Contains(t, result.Message, "not recognized")
}
