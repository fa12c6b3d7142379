package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dvloznov/dompet/internal/domain"
)

func TestClassifyCategory(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   domain.Category
		wantOK bool
	}{
		{name: "food", text: "makan nasi padang 25rb", want: domain.CategoryMakan, wantOK: true},
		{name: "food beats shopping verb", text: "beli bakso 15rb", want: domain.CategoryMakan, wantOK: true},
		{name: "drink", text: "beli kopi 15rb kemarin", want: domain.CategoryMinuman, wantOK: true},
		{name: "drink with nya suffix", text: "kopinya 20rb", want: domain.CategoryMinuman, wantOK: true},
		{name: "es as a word", text: "es teh manis 5rb", want: domain.CategoryMinuman, wantOK: true},
		{name: "es inside a word", text: "beli kemeja pesta 200rb", want: domain.CategoryBelanja, wantOK: true},
		{name: "transport", text: "isi bensin 30rb", want: domain.CategoryTransport, wantOK: true},
		{name: "transport ride hailing", text: "Gojek ke kantor 18rb", want: domain.CategoryTransport, wantOK: true},
		{name: "shopping", text: "belanja bulanan 500rb", want: domain.CategoryBelanja, wantOK: true},
		{name: "bills", text: "tanggal 1 bulan 2 2025, bayar listrik 150000", want: domain.CategoryTagihan, wantOK: true},
		{name: "bills token", text: "token listrik 100rb", want: domain.CategoryTagihan, wantOK: true},
		{name: "entertainment", text: "nonton bioskop 50rb", want: domain.CategoryHiburan, wantOK: true},
		{name: "health", text: "obat batuk di apotek 40rb", want: domain.CategoryKesehatan, wantOK: true},
		{name: "salary", text: "terima gaji 5jt hari ini", want: domain.CategoryGaji, wantOK: true},
		{name: "no keyword", text: "transfer ke adik 200rb", want: domain.CategoryOther, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClassifyCategory(tt.text)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
