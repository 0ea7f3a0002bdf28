package nlp

import (
	"strings"
	"unicode"
)

// DefaultStopwords: компактный набор английских стоп-слов.
var DefaultStopwords = []string{
	"a", "an", "and", "are", "as", "at", "be", "by", "for", "from",
	"has", "he", "in", "is", "it", "its", "of", "on", "that", "the",
	"to", "was", "were", "will", "with",
}

// Normalizer разбивает текст на токены и отбрасывает стоп-слова.
// Значение неизменяемо после создания и безопасно для конкурентного использования.
type Normalizer struct {
	stopwords map[string]struct{}
}

// NewNormalizer builds a normalizer over the given stopword list.
// A nil list means DefaultStopwords; an empty non-nil list disables stopword removal.
func NewNormalizer(stopwords []string) Normalizer {
	if stopwords == nil {
		stopwords = DefaultStopwords
	}
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return Normalizer{stopwords: set}
}

var defaultNormalizer = NewNormalizer(nil)

// Normalize tokenizes text with the default stopword set.
func Normalize(text string) []string {
	return defaultNormalizer.Normalize(text)
}

// Normalize приводит текст к списку токенов:
// - нижний регистр
// - удаляет всё, кроме букв, цифр, '_' и пробельных символов
// - режет по пробелам и выбрасывает стоп-слова
// Порядок и повторы сохраняются.
func (n Normalizer) Normalize(text string) []string {
	fields := strings.Fields(StripPunctuation(strings.ToLower(text)))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if n.IsStopword(f) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// IsStopword reports whether the lowercased token is in the stopword set.
func (n Normalizer) IsStopword(token string) bool {
	_, ok := n.stopwords[token]
	return ok
}

// isWordRune: буква, любой числовой символ (включая ², ½, Ⅻ) или '_'.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

// StripPunctuation drops every rune that is neither a word character
// (letter, number, underscore) nor whitespace.
func StripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if isWordRune(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s)
}
