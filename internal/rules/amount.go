package rules

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// SmallAmountThreshold is the heuristic for a bare number after
// "senilai", "sebesar" or "nominal": below it the number is read as
// thousands ("sebesar 50" is Rp50.000), at or above it the number is taken
// literally. The original product was inconsistent here; this value is
// pending product clarification.
//
// Cents are not recognised: every separator in a currency numeral is a
// thousands separator, so "Rp 15.000,00" reads as 1500000.
const SmallAmountThreshold = 100

const (
	thousand = 1_000
	million  = 1_000_000
)

var unitMultipliers = map[string]int64{
	"rb":   thousand,
	"ribu": thousand,
	"k":    thousand,
	"jt":   million,
	"juta": million,
}

var maxAmount = decimal.NewFromInt(math.MaxInt64)

var (
	spelledAmountRe   = regexp.MustCompile(`\b(` + numberPhrase + `)\s+(juta|ribu)\b`)
	currencyAmountRe  = regexp.MustCompile(`\b(?:rp|idr)\.?\s*(\d+(?:[.,]\d+)*)(?:\s*(rb|ribu|k|jt|juta)\b)?`)
	shorthandAmountRe = regexp.MustCompile(`\b(\d+(?:[.,]\d+)?)\s*(rb|ribu|k|jt|juta)\b`)
	keywordAmountRe   = regexp.MustCompile(`\b(?:senilai|sebesar|nominal)\s+(\d+(?:[.,]\d+)*)\s*(rb|ribu|k|jt|juta)?\b`)
	groupedAmountRe   = regexp.MustCompile(`\b(\d{1,3}(?:\.\d{3})+)\b`)
	bareAmountRe      = regexp.MustCompile(`\b(\d{3,})\b`)
	groupedLiteralRe  = regexp.MustCompile(`^\d{1,3}(?:\.\d{3})+$`)
)

// amountRule is one (pattern, resolver) pair of the amount extractor.
type amountRule struct {
	name    string
	re      *regexp.Regexp
	resolve func(m []string) (int64, bool)
}

// amountRules is the canonical priority order; the first rule whose first
// match resolves to a positive amount wins.
var amountRules = []amountRule{
	{name: "spelled", re: spelledAmountRe, resolve: func(m []string) (int64, bool) {
		n, ok := parseTrailingNumberWords(m[1])
		if !ok {
			return 0, false
		}
		return multiply(decimal.NewFromInt(n), unitMultipliers[m[2]])
	}},
	{name: "currency", re: currencyAmountRe, resolve: func(m []string) (int64, bool) {
		if m[2] != "" {
			return scaleNumeral(m[1], unitMultipliers[m[2]])
		}
		return parseLiteral(stripSeparators(m[1]))
	}},
	{name: "shorthand", re: shorthandAmountRe, resolve: func(m []string) (int64, bool) {
		return scaleNumeral(m[1], unitMultipliers[m[2]])
	}},
	{name: "keyword", re: keywordAmountRe, resolve: func(m []string) (int64, bool) {
		if m[2] != "" {
			return scaleNumeral(m[1], unitMultipliers[m[2]])
		}
		if groupedLiteralRe.MatchString(m[1]) {
			return parseLiteral(stripSeparators(m[1]))
		}
		d, err := decimal.NewFromString(strings.Replace(m[1], ",", ".", 1))
		if err != nil {
			return 0, false
		}
		if d.LessThan(decimal.NewFromInt(SmallAmountThreshold)) {
			return multiply(d, thousand)
		}
		return multiply(d, 1)
	}},
	{name: "grouped", re: groupedAmountRe, resolve: func(m []string) (int64, bool) {
		return parseLiteral(strings.ReplaceAll(m[1], ".", ""))
	}},
	{name: "bare", re: bareAmountRe, resolve: func(m []string) (int64, bool) {
		return parseLiteral(m[1])
	}},
}

// ExtractAmount returns the first monetary quantity in text in whole
// rupiah. Shorthand units (rb, ribu, k, jt, juta) and spelled-out numbers
// are expanded; digits that belong to a date expression are ignored.
func ExtractAmount(text string) (int64, bool) {
	v, _, ok := MatchAmount(text)
	return v, ok
}

// MatchAmount is ExtractAmount that also names the rule that fired.
func MatchAmount(text string) (int64, string, bool) {
	lower := maskDates(Normalize(text))
	for _, r := range amountRules {
		m := r.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		if v, ok := r.resolve(m); ok {
			return v, r.name, true
		}
	}
	return 0, "", false
}

// scaleNumeral multiplies a numeral that may use a comma or a point as the
// decimal separator ("1,5", "1.5").
func scaleNumeral(num string, unit int64) (int64, bool) {
	d, err := decimal.NewFromString(strings.Replace(num, ",", ".", 1))
	if err != nil {
		return 0, false
	}
	return multiply(d, unit)
}

// multiply keeps the arithmetic exact and truncates to whole rupiah.
func multiply(d decimal.Decimal, unit int64) (int64, bool) {
	v := d.Mul(decimal.NewFromInt(unit)).Truncate(0)
	if !v.IsPositive() || v.GreaterThan(maxAmount) {
		return 0, false
	}
	return v.IntPart(), true
}

func stripSeparators(s string) string {
	return strings.NewReplacer(".", "", ",", "").Replace(s)
}

func parseLiteral(digits string) (int64, bool) {
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
