// Package rules holds the deterministic extractors that turn colloquial
// Indonesian text into transaction fields. Every table and pattern in this
// package is built once at init and only read afterwards, so all functions
// are safe for concurrent use.
package rules

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize lower-cases text with Indonesian casing rules, applies NFC and
// collapses runs of whitespace. All extractors call it first.
func Normalize(text string) string {
	// Casers are stateful, so one per call.
	lower := cases.Lower(language.Indonesian).String(norm.NFC.String(text))
	return strings.Join(strings.Fields(lower), " ")
}

// unitWords are the single digits.
var unitWords = map[string]int64{
	"satu":     1,
	"dua":      2,
	"tiga":     3,
	"empat":    4,
	"lima":     5,
	"enam":     6,
	"tujuh":    7,
	"delapan":  8,
	"sembilan": 9,
}

// fixedWords carry their own value and take no multiplier in front.
var fixedWords = map[string]int64{
	"sepuluh": 10,
	"sebelas": 11,
	"seratus": 100,
	"seribu":  1000,
}

// numberWordAlt is a regexp alternation of every token a spelled-out
// number may be built from.
var numberWordAlt = buildNumberWordAlt()

func buildNumberWordAlt() string {
	words := []string{"belas", "puluh", "ratus"}
	for w := range unitWords {
		words = append(words, w)
	}
	for w := range fixedWords {
		words = append(words, w)
	}
	return alternation(words)
}

// numberPhrase matches one or more consecutive number words.
var numberPhrase = `(?:(?:` + numberWordAlt + `)\s+)*(?:` + numberWordAlt + `)`

// parseNumberWords evaluates a spelled-out number such as
// "dua puluh lima" (25) or "tiga ratus" (300). It reports false for
// sequences that are not a well-formed number ("belas", "dua tiga").
func parseNumberWords(phrase string) (int64, bool) {
	var total, pending int64
	hasPending := false
	for _, w := range strings.Fields(phrase) {
		if v, ok := unitWords[w]; ok {
			if hasPending {
				return 0, false
			}
			pending, hasPending = v, true
			continue
		}
		if v, ok := fixedWords[w]; ok {
			if hasPending {
				return 0, false
			}
			total += v
			continue
		}
		if !hasPending {
			return 0, false
		}
		switch w {
		case "belas":
			total += pending + 10
		case "puluh":
			total += pending * 10
		case "ratus":
			total += pending * 100
		default:
			return 0, false
		}
		pending, hasPending = 0, false
	}
	if hasPending {
		total += pending
	}
	return total, total > 0
}

// parseTrailingNumberWords evaluates the longest suffix of phrase that is a
// well-formed number. A quantity spoken before the price is dropped:
// "satu lima" (one, five thousand) reads as 5.
func parseTrailingNumberWords(phrase string) (int64, bool) {
	words := strings.Fields(phrase)
	for i := range words {
		if n, ok := parseNumberWords(strings.Join(words[i:], " ")); ok {
			return n, true
		}
	}
	return 0, false
}

// keywordPattern compiles a case-insensitive whole-word matcher for words.
// Multi-word keywords match across any whitespace, and the possessive
// suffix "-nya" is tolerated ("kopinya").
func keywordPattern(words []string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b(?:` + alternation(words) + `)(?:nya)?\b`)
}

// alternation joins words longest first so longer keywords win over their
// prefixes.
func alternation(words []string) string {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})
	quoted := make([]string, len(sorted))
	for i, w := range sorted {
		quoted[i] = strings.ReplaceAll(regexp.QuoteMeta(w), " ", `\s+`)
	}
	return strings.Join(quoted, "|")
}
