package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: []string{}},
		{name: "only whitespace", in: " \t\n ", want: []string{}},
		{name: "stopword and punctuation", in: "The Quick, Fox!", want: []string{"quick", "fox"}},
		{
			name: "sentence",
			in:   "We're looking for a Data Scientist with experience in Python, pandas, and SQL.",
			want: []string{"looking", "data", "scientist", "experience", "python", "pandas", "sql"},
		},
		{name: "keeps digits and underscores", in: "snake_case v2.0 C#", want: []string{"snake_case", "v20", "c"}},
		{name: "duplicates and order kept", in: "go Go GO rust go", want: []string{"go", "go", "go", "rust", "go"}},
		{name: "collapses whitespace", in: "  senior \t\n  engineer  ", want: []string{"senior", "engineer"}},
		{name: "unicode letters", in: "Café — Müller", want: []string{"café", "müller"}},
		{name: "numeric symbols are word runes", in: "level² ½ Ⅻ", want: []string{"level²", "½", "ⅻ"}},
		{name: "only punctuation", in: "!!! ... ???", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizerCustomStopwords(t *testing.T) {
	n := NewNormalizer([]string{"Quick", " ", "fox"})
	assert.Equal(t, []string{"the", "brown"}, n.Normalize("The quick brown fox"))
	assert.True(t, n.IsStopword("quick"))
	assert.False(t, n.IsStopword("the"))
}

func TestNormalizerEmptyStopwordList(t *testing.T) {
	n := NewNormalizer([]string{})
	assert.Equal(t, []string{"the", "fox", "is", "quick"}, n.Normalize("The fox is quick"))
}

func TestStripPunctuation(t *testing.T) {
	assert.Equal(t, "hello world_1", StripPunctuation("hello, world_1!"))
	assert.Equal(t, "a\tb\nc", StripPunctuation("a\tb\nc"))
}

func TestTokenSetAndOverlaps(t *testing.T) {
	a := TokenSet([]string{"data", "scientist", "data", ""})
	assert.Len(t, a, 2)

	assert.True(t, Overlaps(a, TokenSet([]string{"senior", "data", "engineer"})))
	assert.False(t, Overlaps(a, TokenSet([]string{"frontend"})))
	assert.False(t, Overlaps(a, TokenSet(nil)))
}
