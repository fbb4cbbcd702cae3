package slug_test

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fundkit/pkg/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		opts     []slug.Option
		expected string
	}{
		{name: "simple text", input: "Hello World", expected: "hello-world"},
		{name: "with punctuation", input: "Hello, World!", expected: "hello-world"},
		{name: "with numbers", input: "Product 123", expected: "product-123"},
		{name: "multiple spaces", input: "Too    Many     Spaces", expected: "too-many-spaces"},
		{name: "leading and trailing noise", input: "  --Hello--  ", expected: "hello"},
		{name: "diacritics", input: "Café Crème Brûlée", expected: "cafe-creme-brulee"},
		{name: "non latin dropped", input: "Привет world", expected: "world"},
		{name: "empty", input: "", expected: ""},
		{name: "only symbols", input: "!!!", expected: ""},
		{name: "custom separator", input: "Hello World", opts: []slug.Option{slug.Separator("_")}, expected: "hello_world"},
		{name: "max length cuts at word boundary", input: "Clean Water Well", opts: []slug.Option{slug.MaxLength(11)}, expected: "clean-water"},
		{name: "max length mid word", input: "Fundraising", opts: []slug.Option{slug.MaxLength(4)}, expected: "fund"},
		{name: "template id unchanged", input: "story-progress-update", expected: "story-progress-update"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, slug.Make(tt.input, tt.opts...))
		})
	}
}

func TestMake_WithSuffix(t *testing.T) {
	t.Parallel()

	s := slug.Make("Monthly Digest", slug.WithSuffix(6))
	assert.Regexp(t, `^monthly-digest-[a-z0-9]{6}$`, s)
	assert.NotEqual(t, s, slug.Make("Monthly Digest", slug.WithSuffix(6)))

	assert.Regexp(t, `^[a-z0-9]{6}$`, slug.Make("???", slug.WithSuffix(6)))
}

func TestMake_WithSuffixRespectsMaxLength(t *testing.T) {
	t.Parallel()

	s := slug.Make("story progress update", slug.WithSuffix(6), slug.MaxLength(16))
	assert.LessOrEqual(t, utf8.RuneCountInString(s), 16)
	assert.Regexp(t, `^story-pro-[a-z0-9]{6}$`, s)

	assert.Len(t, slug.Make("anything", slug.WithSuffix(10), slug.MaxLength(4)), 4)
}
