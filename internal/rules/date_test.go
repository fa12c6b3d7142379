package rules

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
)

var anchor = civil.Date{Year: 2024, Month: time.June, Day: 10}

func date(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		want     civil.Date
		wantRule string
		wantOK   bool
	}{
		{name: "hari ini", text: "terima gaji 5jt hari ini", want: anchor, wantRule: "today", wantOK: true},
		{name: "today", text: "lunch 50rb today", want: anchor, wantRule: "today", wantOK: true},
		{name: "kemarin", text: "beli kopi 15rb kemarin", want: date(2024, time.June, 9), wantRule: "yesterday", wantOK: true},
		{name: "yesterday mixed case", text: "Yesterday bensin 30rb", want: date(2024, time.June, 9), wantRule: "yesterday", wantOK: true},
		{name: "spelled offset", text: "tiga hari yang lalu makan 20rb", want: date(2024, time.June, 7), wantRule: "spelled_offset", wantOK: true},
		{name: "spelled belas offset", text: "dua belas hari lalu", want: date(2024, time.May, 29), wantRule: "spelled_offset", wantOK: true},
		{name: "digit offset", text: "3 hari lalu makan 20rb", want: date(2024, time.June, 7), wantRule: "digit_offset", wantOK: true},
		{name: "digit offset yang", text: "10 hari yang lalu", want: date(2024, time.May, 31), wantRule: "digit_offset", wantOK: true},
		{name: "numeric month", text: "tanggal 1 bulan 2 2025, bayar listrik 150000", want: date(2025, time.February, 1), wantRule: "numeric_month", wantOK: true},
		{name: "numeric month without tanggal", text: "15 bulan 8 2023 beli sepatu", want: date(2023, time.August, 15), wantRule: "numeric_month", wantOK: true},
		{name: "numeric month invalid falls through", text: "tanggal 31 bulan 4 2024", wantOK: false},
		{name: "month then day", text: "bulan juli tanggal 5 bayar kos 1jt", want: date(2024, time.July, 5), wantRule: "month_then_day", wantOK: true},
		{name: "day then month past rolls forward", text: "tanggal 3 bulan maret bayar pajak", want: date(2025, time.March, 3), wantRule: "day_then_month", wantOK: true},
		{name: "day di bulan", text: "tanggal 20 di bulan juni", want: date(2024, time.June, 20), wantRule: "day_then_month", wantOK: true},
		{name: "named month with year", text: "17 agustus 2023 beli bendera", want: date(2023, time.August, 17), wantRule: "named_month_year", wantOK: true},
		{name: "named month abbreviation", text: "5 okt 2024", want: date(2024, time.October, 5), wantRule: "named_month_year", wantOK: true},
		{name: "named month day future", text: "25 des beli kado", want: date(2024, time.December, 25), wantRule: "named_month_day", wantOK: true},
		{name: "named month day same as anchor", text: "10 juni", want: anchor, wantRule: "named_month_day", wantOK: true},
		{name: "named month day past rolls forward", text: "1 jan", want: date(2025, time.January, 1), wantRule: "named_month_day", wantOK: true},
		{name: "named month invalid day", text: "31 februari", wantOK: false},
		{name: "english month", text: "3 may 2024", want: date(2024, time.May, 3), wantRule: "named_month_year", wantOK: true},
		{name: "iso", text: "2024-6-1 beli pulsa", want: date(2024, time.June, 1), wantRule: "iso", wantOK: true},
		{name: "slashed", text: "1/6/2024 beli pulsa", want: date(2024, time.June, 1), wantRule: "slashed", wantOK: true},
		{name: "dashed", text: "01-06-2024", want: date(2024, time.June, 1), wantRule: "slashed", wantOK: true},
		{name: "invalid iso", text: "2024-13-40", wantOK: false},
		{name: "digit offset before year one", text: "beli kopi 15rb 1000000 hari lalu", wantOK: false},
		{name: "digit offset at year one", text: "739046 hari lalu", want: date(1, time.January, 1), wantRule: "digit_offset", wantOK: true},
		{name: "digit offset at year zero", text: "739047 hari lalu", wantOK: false},
		{name: "out of range offset falls through", text: "1000000 hari lalu, 17 agustus 2023", want: date(2023, time.August, 17), wantRule: "named_month_year", wantOK: true},
		{name: "no date", text: "beli kopi 15rb", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rule, ok := MatchDate(tt.text, anchor)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantRule, rule)
		})
	}
}

func TestExtractDate_SpelledAndDigitOffsetsAgree(t *testing.T) {
	spelled, ok := ExtractDate("tiga hari yang lalu", anchor)
	assert.True(t, ok)
	digits, ok := ExtractDate("3 hari lalu", anchor)
	assert.True(t, ok)

	assert.Equal(t, anchor.AddDays(-3), spelled)
	assert.Equal(t, spelled, digits)
}

func TestExtractDate_NamedMonthNeverBeforeAnchor(t *testing.T) {
	for name := range monthNames {
		for day := 1; day <= 31; day++ {
			text := civil.Date{Year: 2000, Month: 1, Day: day}.String()[8:] + " " + name
			got, ok := ExtractDate(text, anchor)
			if !ok {
				continue
			}
			assert.False(t, got.Before(anchor), text)
		}
	}
}
