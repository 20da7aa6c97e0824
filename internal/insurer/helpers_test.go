package insurer_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"polisched/internal/insurer"
	"polisched/internal/pdftext"
)

func re(pattern string) *regexp.Regexp { return regexp.MustCompile(pattern) }

func TestCleanAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *float64
	}{
		{"plain", "123.45", insurer.Float(123.45)},
		{"rand prefix", "R123.45", insurer.Float(123.45)},
		{"lowercase rand", "r 99.00", insurer.Float(99)},
		{"thousands commas", "1,234,567.89", insurer.Float(1234567.89)},
		{"embedded spaces", "12 345.00", insurer.Float(12345)},
		{"non-breaking space", "12 345.00", insurer.Float(12345)},
		{"integer", "500", insurer.Float(500)},
		{"garbage", "abc", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := insurer.CleanAmount(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			if assert.NotNil(t, got) {
				assert.InDelta(t, *tt.want, *got, 0.001)
			}
		})
	}
}

func TestFirstGroup(t *testing.T) {
	text := "Plan number 12345678\nPlan type: Classic"

	got := insurer.FirstGroup(text, re(`Plan number\s+(\d+)`))
	if assert.NotNil(t, got) {
		assert.Equal(t, "12345678", *got)
	}

	assert.Nil(t, insurer.FirstGroup(text, re(`Policy number\s+(\d+)`)))

	// First matching pattern wins
	got = insurer.FirstGroup(text,
		re(`Plan type:\s*(\w+)`),
		re(`Plan number\s+(\d+)`))
	if assert.NotNil(t, got) {
		assert.Equal(t, "Classic", *got)
	}
}

func TestCollapseSpaces(t *testing.T) {
	assert.Equal(t, "a b c", insurer.CollapseSpaces("a   b\t c"))
	assert.Equal(t, "", insurer.CollapseSpaces("   "))
}

func TestPreview(t *testing.T) {
	long := strings.Repeat("x", 600)
	doc := &pdftext.Document{Pages: map[int]string{
		1: "short page",
		2: long,
		3: "",
		4: "never included",
	}}

	preview := insurer.Preview(doc, 3, true)

	assert.Len(t, preview, 3)
	assert.Equal(t, "short page", preview["page1"])
	assert.Equal(t, long[:500]+"...", preview["page2"])
	assert.Equal(t, "(empty page)", preview["page3"])
	assert.NotContains(t, preview, "page4")

	// Without empty-page marking the page stays blank
	plain := insurer.Preview(doc, 3, false)
	assert.Equal(t, "", plain["page3"])
}
