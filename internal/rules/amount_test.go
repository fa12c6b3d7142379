package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		want     int64
		wantRule string
		wantOK   bool
	}{
		{name: "shorthand rb", text: "beli kopi 15rb kemarin", want: 15000, wantRule: "shorthand", wantOK: true},
		{name: "shorthand with space", text: "makan siang 25 ribu", want: 25000, wantRule: "shorthand", wantOK: true},
		{name: "shorthand k", text: "parkir 5k", want: 5000, wantRule: "shorthand", wantOK: true},
		{name: "shorthand decimal comma", text: "servis motor 1,5jt", want: 1500000, wantRule: "shorthand", wantOK: true},
		{name: "shorthand decimal point", text: "laptop 2.5 juta", want: 2500000, wantRule: "shorthand", wantOK: true},
		{name: "shorthand leftmost wins", text: "terima gaji 5jt dan bonus 500rb", want: 5000000, wantRule: "shorthand", wantOK: true},
		{name: "spelled ribu", text: "bayar parkir lima ribu", want: 5000, wantRule: "spelled", wantOK: true},
		{name: "spelled juta", text: "dapat bonus dua juta", want: 2000000, wantRule: "spelled", wantOK: true},
		{name: "spelled belasan", text: "jajan lima belas ribu", want: 15000, wantRule: "spelled", wantOK: true},
		{name: "spelled compound", text: "makan dua puluh lima ribu", want: 25000, wantRule: "spelled", wantOK: true},
		{name: "spelled seratus", text: "belanja seratus ribu", want: 100000, wantRule: "spelled", wantOK: true},
		{name: "spelled quantity before price", text: "es teh satu lima ribu", want: 5000, wantRule: "spelled", wantOK: true},
		{name: "spelled quantity before compound", text: "beli kopi dua dua puluh lima ribu", want: 25000, wantRule: "spelled", wantOK: true},
		{name: "currency cents group read as thousands", text: "bayar Rp 15.000,00", want: 1500000, wantRule: "currency", wantOK: true},
		{name: "currency grouped", text: "beli kopi Rp15.000", want: 15000, wantRule: "currency", wantOK: true},
		{name: "currency comma grouped", text: "bayar IDR 1,250,000", want: 1250000, wantRule: "currency", wantOK: true},
		{name: "currency with unit", text: "bayar sewa Rp1,5jt", want: 1500000, wantRule: "currency", wantOK: true},
		{name: "keyword small number", text: "transfer senilai 50", want: 50000, wantRule: "keyword", wantOK: true},
		{name: "keyword at threshold", text: "donasi sebesar 100", want: 100, wantRule: "keyword", wantOK: true},
		{name: "keyword grouped", text: "cicilan nominal 1.200.000", want: 1200000, wantRule: "keyword", wantOK: true},
		{name: "grouped literal", text: "beli buku 45.000", want: 45000, wantRule: "grouped", wantOK: true},
		{name: "bare numeral", text: "bayar listrik 150000", want: 150000, wantRule: "bare", wantOK: true},
		{name: "date digits ignored", text: "tanggal 1 bulan 2 2025, bayar listrik 150000", want: 150000, wantRule: "bare", wantOK: true},
		{name: "iso date ignored", text: "2024-06-01 beli pulsa 50rb", want: 50000, wantRule: "shorthand", wantOK: true},
		{name: "two digits only", text: "beli 12 telur", wantOK: false},
		{name: "no amount", text: "beli baju baru", wantOK: false},
		{name: "zero", text: "bayar 0rb", wantOK: false},
		{name: "empty", text: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rule, ok := MatchAmount(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantRule, rule)
		})
	}
}

func TestExtractAmount_UnitConsistency(t *testing.T) {
	for _, text := range []string{"15rb", "15000", "Rp15.000", "15 ribu", "15k", "lima belas ribu"} {
		got, ok := ExtractAmount(text)
		assert.True(t, ok, text)
		assert.Equal(t, int64(15000), got, text)
	}
}

func TestExtractAmount_LargeValuesStayExact(t *testing.T) {
	got, ok := ExtractAmount("jual rumah 1234567,891jt")
	assert.True(t, ok)
	assert.Equal(t, int64(1234567891000), got)
}
