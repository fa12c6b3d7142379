package rules

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/dvloznov/dompet/internal/domain"
)

// monthNames maps Indonesian month names, their common abbreviations and the
// English three-letter fallbacks to month numbers.
var monthNames = map[string]time.Month{
	"januari": time.January, "jan": time.January,
	"februari": time.February, "feb": time.February, "pebruari": time.February,
	"maret": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"mei": time.May, "may": time.May,
	"juni": time.June, "jun": time.June,
	"juli": time.July, "jul": time.July,
	"agustus": time.August, "agu": time.August, "agt": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"oktober": time.October, "okt": time.October, "oct": time.October,
	"november": time.November, "nov": time.November, "nop": time.November,
	"desember": time.December, "des": time.December, "dec": time.December,
}

var monthAlt = buildMonthAlt()

func buildMonthAlt() string {
	names := make([]string, 0, len(monthNames))
	for n := range monthNames {
		names = append(names, n)
	}
	return alternation(names)
}

var (
	todayRe          = regexp.MustCompile(`\b(?:hari ini|today)\b`)
	yesterdayRe      = regexp.MustCompile(`\b(?:kemarin|yesterday)\b`)
	spelledOffsetRe  = regexp.MustCompile(`\b(` + numberPhrase + `)\s+hari\s*(?:yang\s*)?lalu\b`)
	digitOffsetRe    = regexp.MustCompile(`\b(\d+)\s*hari\s*(?:yang\s*)?lalu\b`)
	numericMonthRe   = regexp.MustCompile(`(?:\btanggal\s+)?\b(\d{1,2})\s+bulan\s+(\d{1,2})\s+(\d{4})\b`)
	monthThenDayRe   = regexp.MustCompile(`(?:\bdi\s+)?\bbulan\s+(` + monthAlt + `)\s+tanggal\s+(\d{1,2})\b`)
	dayThenMonthRe   = regexp.MustCompile(`\btanggal\s+(\d{1,2})\s+(?:di\s+)?bulan\s+(` + monthAlt + `)\b`)
	namedMonthYearRe = regexp.MustCompile(`\b(\d{1,2})\s+(` + monthAlt + `)\s+(\d{4})\b`)
	namedMonthDayRe  = regexp.MustCompile(`\b(\d{1,2})\s+(` + monthAlt + `)\b`)
	isoDateRe        = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	slashedDateRe    = regexp.MustCompile(`\b(\d{1,2})[-/](\d{1,2})[-/](\d{4})\b`)
)

// dateRule is one (pattern, resolver) pair. resolve receives every match of
// re in order and returns the first one that yields a real calendar date.
type dateRule struct {
	name    string
	re      *regexp.Regexp
	resolve func(m []string, anchor civil.Date) (civil.Date, bool)
}

// dateRules is the canonical priority order; the first rule that resolves
// wins.
var dateRules = []dateRule{
	{name: "today", re: todayRe, resolve: func(_ []string, anchor civil.Date) (civil.Date, bool) {
		return anchor, true
	}},
	{name: "yesterday", re: yesterdayRe, resolve: func(_ []string, anchor civil.Date) (civil.Date, bool) {
		return anchor.AddDays(-1), true
	}},
	{name: "spelled_offset", re: spelledOffsetRe, resolve: func(m []string, anchor civil.Date) (civil.Date, bool) {
		n, ok := parseNumberWords(m[1])
		if !ok {
			return civil.Date{}, false
		}
		return anchor.AddDays(-int(n)), true
	}},
	{name: "digit_offset", re: digitOffsetRe, resolve: func(m []string, anchor civil.Date) (civil.Date, bool) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return civil.Date{}, false
		}
		return anchor.AddDays(-n), true
	}},
	{name: "numeric_month", re: numericMonthRe, resolve: func(m []string, _ civil.Date) (civil.Date, bool) {
		return makeDate(m[3], m[2], m[1])
	}},
	{name: "month_then_day", re: monthThenDayRe, resolve: func(m []string, anchor civil.Date) (civil.Date, bool) {
		return nextOccurrence(anchor, monthNames[m[1]], m[2])
	}},
	{name: "day_then_month", re: dayThenMonthRe, resolve: func(m []string, anchor civil.Date) (civil.Date, bool) {
		return nextOccurrence(anchor, monthNames[m[2]], m[1])
	}},
	{name: "named_month_year", re: namedMonthYearRe, resolve: func(m []string, _ civil.Date) (civil.Date, bool) {
		d := civil.Date{Year: atoi(m[3]), Month: monthNames[m[2]], Day: atoi(m[1])}
		return d, d.IsValid()
	}},
	{name: "named_month_day", re: namedMonthDayRe, resolve: func(m []string, anchor civil.Date) (civil.Date, bool) {
		return nextOccurrence(anchor, monthNames[m[2]], m[1])
	}},
	{name: "iso", re: isoDateRe, resolve: func(m []string, _ civil.Date) (civil.Date, bool) {
		return makeDate(m[1], m[2], m[3])
	}},
	{name: "slashed", re: slashedDateRe, resolve: func(m []string, _ civil.Date) (civil.Date, bool) {
		return makeDate(m[3], m[2], m[1])
	}},
}

// ExtractDate resolves the first date expression in text against anchor,
// the reference "today". It reports false when no rule produced a valid
// date with a four-digit year; callers then fall back to anchor themselves.
func ExtractDate(text string, anchor civil.Date) (civil.Date, bool) {
	d, _, ok := MatchDate(text, anchor)
	return d, ok
}

// MatchDate is ExtractDate that also names the rule that fired.
func MatchDate(text string, anchor civil.Date) (civil.Date, string, bool) {
	lower := Normalize(text)
	for _, r := range dateRules {
		for _, m := range r.re.FindAllStringSubmatch(lower, -1) {
			if d, ok := r.resolve(m, anchor); ok && domain.IsRecordableDate(d) {
				return d, r.name, true
			}
		}
	}
	return civil.Date{}, "", false
}

// datePatterns are the expressions whose digits must never be read as an
// amount.
var datePatterns = []*regexp.Regexp{
	isoDateRe,
	slashedDateRe,
	numericMonthRe,
	monthThenDayRe,
	dayThenMonthRe,
	namedMonthYearRe,
	namedMonthDayRe,
	digitOffsetRe,
}

// maskDates blanks out every date expression in an already-normalized text.
func maskDates(lower string) string {
	for _, re := range datePatterns {
		lower = re.ReplaceAllStringFunc(lower, func(s string) string {
			return strings.Repeat(" ", len(s))
		})
	}
	return lower
}

// nextOccurrence builds day/month in the anchor's year and rolls one year
// forward when that date has already passed.
func nextOccurrence(anchor civil.Date, month time.Month, day string) (civil.Date, bool) {
	d := civil.Date{Year: anchor.Year, Month: month, Day: atoi(day)}
	if !d.IsValid() {
		return civil.Date{}, false
	}
	if d.Before(anchor) {
		d.Year++
		if !d.IsValid() {
			return civil.Date{}, false
		}
	}
	return d, true
}

func makeDate(year, month, day string) (civil.Date, bool) {
	d := civil.Date{Year: atoi(year), Month: time.Month(atoi(month)), Day: atoi(day)}
	return d, d.IsValid()
}

// atoi is only used on regexp groups of 1–4 digits.
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n
}
