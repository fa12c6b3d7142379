package rules

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// minContentRunes is the shortest residue, after date vocabulary and
// numbers are removed, that still counts as describing something.
const minContentRunes = 3

// dateVocabulary is every word that can appear in a pure date expression.
var dateVocabulary = func() *regexp.Regexp {
	words := []string{
		"hari ini", "kemarin", "today", "yesterday",
		"hari", "lalu", "yang", "tanggal", "bulan", "di",
		"satu", "dua", "tiga", "empat", "lima", "enam", "tujuh", "delapan",
		"sembilan", "sepuluh", "sebelas", "belas", "puluh",
	}
	for m := range monthNames {
		words = append(words, m)
	}
	return regexp.MustCompile(`\b(?:` + alternation(words) + `)\b`)
}()

var (
	digitRunRe  = regexp.MustCompile(`\d+`)
	separatorRe = regexp.MustCompile(`[-/,.]`)
)

// actionKeywords are verbs and items that only show up when the user is
// describing a transaction.
var actionKeywords = keywordPattern([]string{
	"beli", "membeli", "dibeli", "bayar", "membayar", "dibayar", "belanja",
	"makan", "minum", "jajan", "dapat", "dapet", "terima", "menerima",
	"mendapatkan", "mendapat", "kopi", "nasi", "bensin", "pulsa", "token",
	"listrik", "air", "gaji", "bonus", "ojek", "grab", "gojek", "taxi",
	"taksi", "bus", "senilai", "sebesar", "nominal", "transfer", "isi",
})

// HasTransactionContent reports whether text describes anything beyond a
// date. A sentence such as "kemarin" or "2 hari lalu" is well formed but
// carries nothing to record.
func HasTransactionContent(text string) bool {
	lower := Normalize(text)
	if actionKeywords.MatchString(lower) {
		return true
	}

	residue := dateVocabulary.ReplaceAllString(lower, " ")
	residue = digitRunRe.ReplaceAllString(residue, "")
	residue = separatorRe.ReplaceAllString(residue, " ")
	residue = strings.Join(strings.Fields(residue), " ")

	return utf8.RuneCountInString(residue) >= minContentRunes
}
