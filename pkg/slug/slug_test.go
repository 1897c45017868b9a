package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/lipsum/pkg/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		opts     []slug.Option
		expected string
	}{
		{name: "simple text", input: "Lorem Ipsum", expected: "lorem-ipsum"},
		{name: "punctuation", input: "Lorem, ipsum; dolor - sit.", expected: "lorem-ipsum-dolor-sit"},
		{name: "multiple spaces", input: "  lorem    ipsum  ", expected: "lorem-ipsum"},
		{name: "digits kept", input: "Testing 123", expected: "testing-123"},
		{name: "empty", input: "", expected: ""},
		{name: "only separators", input: " ,.;- ", expected: ""},
		{name: "unicode letters", input: "café résumé", expected: "café-résumé"},
		{name: "custom separator", input: "lorem ipsum dolor", opts: []slug.Option{slug.Separator("_")}, expected: "lorem_ipsum_dolor"},
		{name: "empty separator ignored", input: "lorem ipsum", opts: []slug.Option{slug.Separator("")}, expected: "lorem-ipsum"},
		{name: "multi-rune separator", input: "lorem ipsum", opts: []slug.Option{slug.Separator("--")}, expected: "lorem--ipsum"},
		{name: "keep case", input: "Lorem Ipsum", opts: []slug.Option{slug.Lowercase(false)}, expected: "Lorem-Ipsum"},
		{name: "max length at word boundary", input: "lorem ipsum dolor", opts: []slug.Option{slug.MaxLength(13)}, expected: "lorem-ipsum"},
		{name: "max length exact", input: "lorem ipsum dolor", opts: []slug.Option{slug.MaxLength(11)}, expected: "lorem-ipsum"},
		{name: "max length truncates single word", input: "consectetur", opts: []slug.Option{slug.MaxLength(5)}, expected: "conse"},
		{name: "zero max length ignored", input: "lorem ipsum", opts: []slug.Option{slug.MaxLength(0)}, expected: "lorem-ipsum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, slug.Make(tt.input, tt.opts...))
		})
	}
}

func BenchmarkMake(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = slug.Make("lorem ipsum dolor sit amet consectetur")
	}
}
