package nlp

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultSkills: словарь навыков по умолчанию.
var DefaultSkills = []string{
	"python",
	"machine learning",
	"pandas",
	"sql",
	"javascript",
	"react",
	"css",
	"communication",
	"stakeholder",
	"roadmapping",
}

type skillPattern struct {
	skill string
	re    *regexp.Regexp
}

// SkillCounter считает, в скольких документах встречается каждый навык словаря.
// Фраза ищется как литерал, целыми словами, без учёта регистра.
type SkillCounter struct {
	patterns []skillPattern
}

// NewSkillCounter compiles one pattern per vocabulary phrase.
// A nil vocabulary means DefaultSkills. Blank and repeated phrases are skipped.
func NewSkillCounter(vocabulary []string) SkillCounter {
	if vocabulary == nil {
		vocabulary = DefaultSkills
	}
	seen := make(map[string]struct{}, len(vocabulary))
	patterns := make([]skillPattern, 0, len(vocabulary))
	for _, skill := range vocabulary {
		if strings.TrimSpace(skill) == "" {
			continue
		}
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		patterns = append(patterns, skillPattern{
			skill: skill,
			re:    regexp.MustCompile(phrasePattern(skill)),
		})
	}
	return SkillCounter{patterns: patterns}
}

const (
	wordClass    = `[\p{L}\p{N}_]`
	nonWordClass = `[^\p{L}\p{N}_]`
)

// phrasePattern matches skill case-insensitively between word boundaries.
// RE2 \b only knows ASCII word runes, so the boundary is spelled out with
// Unicode classes: a word rune at the phrase edge needs a non-word rune or the
// text edge beside it, a non-word rune at the edge needs a word rune beside it.
func phrasePattern(skill string) string {
	first, _ := utf8.DecodeRuneInString(skill)
	last, _ := utf8.DecodeLastRuneInString(skill)

	before := wordClass
	if isWordRune(first) {
		before = `(?:^|` + nonWordClass + `)`
	}
	after := wordClass
	if isWordRune(last) {
		after = `(?:` + nonWordClass + `|$)`
	}
	return before + `(?i:` + regexp.QuoteMeta(skill) + `)` + after
}

// Vocabulary returns the phrases the counter searches for, in order.
func (c SkillCounter) Vocabulary() []string {
	out := make([]string, 0, len(c.patterns))
	for _, p := range c.patterns {
		out = append(out, p.skill)
	}
	return out
}

// Count returns skill -> number of texts containing it. Each text adds at most
// one per skill; skills with no hits are left out.
func (c SkillCounter) Count(texts []string) map[string]int {
	counts := make(map[string]int)
	for _, text := range texts {
		for _, p := range c.patterns {
			if p.re.MatchString(text) {
				counts[p.skill]++
			}
		}
	}
	return counts
}

// CountSkills is a one-shot Count over an ad-hoc vocabulary.
func CountSkills(texts []string, vocabulary []string) map[string]int {
	return NewSkillCounter(vocabulary).Count(texts)
}
