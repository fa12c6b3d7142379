package rules

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxTitleRunes caps every derived title.
const MaxTitleRunes = 50

var titleVerbs = map[string]bool{
	"beli": true, "membeli": true, "bayar": true, "membayar": true,
	"belanja": true, "makan": true, "minum": true, "jajan": true,
	"isi": true, "sewa": true, "terima": true, "menerima": true,
	"dapat": true, "mendapat": true, "mendapatkan": true, "nonton": true,
	"transfer": true, "topup": true,
}

// titleStops end a verb phrase: price markers and date words.
var titleStops = map[string]bool{
	"seharga": true, "senilai": true, "sebesar": true, "nominal": true,
	"harga": true, "rp": true, "idr": true, "total": true,
	"hari": true, "kemarin": true, "today": true, "yesterday": true,
	"tanggal": true, "bulan": true, "tadi": true, "pada": true,
}

// DeriveTitle picks the verb phrase that names the transaction, e.g.
// "Beli kopi" from "beli kopi 15rb kemarin". It reports false when no verb
// with an object is found.
func DeriveTitle(text string) (string, bool) {
	tokens := strings.Fields(Normalize(text))
	start := -1
	for i, tok := range tokens {
		if titleVerbs[trimPunct(tok)] {
			start = i
			break
		}
	}
	if start < 0 {
		return "", false
	}

	phrase := []string{trimPunct(tokens[start])}
	for _, tok := range tokens[start+1:] {
		word := trimPunct(tok)
		if word == "" || titleStops[word] || hasDigit(word) || isAmountWord(word) {
			break
		}
		phrase = append(phrase, word)
		if tok != word && strings.ContainsAny(tok[len(tok)-1:], ",;.") {
			break
		}
	}
	if len(phrase) < 2 {
		return "", false
	}

	title := truncateRunes(strings.Join(phrase, " "), MaxTitleRunes)
	return capitalizeFirst(title), true
}

// TruncateTitle cuts text to at most n runes. It is also the fallback title
// when no verb phrase is found.
func TruncateTitle(text string, n int) string {
	return truncateRunes(strings.TrimSpace(text), n)
}

func capitalizeFirst(s string) string {
	first, rest, _ := strings.Cut(s, " ")
	first = cases.Title(language.Indonesian).String(first)
	if rest == "" {
		return first
	}
	return first + " " + rest
}

func isAmountWord(w string) bool {
	if _, ok := unitMultipliers[w]; ok {
		return true
	}
	if _, ok := unitWords[w]; ok {
		return true
	}
	_, ok := fixedWords[w]
	return ok
}

func trimPunct(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) && r != '-'
	})
}

func hasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:n]))
}
