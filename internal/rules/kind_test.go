package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dvloznov/dompet/internal/domain"
)

func TestClassifyType(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   domain.TransactionType
		wantOK bool
	}{
		{name: "salary", text: "terima gaji 5jt hari ini", want: domain.TypeIncome, wantOK: true},
		{name: "bonus", text: "dapat bonus 1jt", want: domain.TypeIncome, wantOK: true},
		{name: "thr", text: "THR 3jt", want: domain.TypeIncome, wantOK: true},
		{name: "purchase", text: "beli kopi 15rb", want: domain.TypeExpense, wantOK: true},
		{name: "bill", text: "bayar listrik 150000", want: domain.TypeExpense, wantOK: true},
		{name: "income wins over expense", text: "beli makan pakai uang bonus 50rb", want: domain.TypeIncome, wantOK: true},
		{name: "income wins over expense reversed", text: "terima uang lalu bayar utang", want: domain.TypeIncome, wantOK: true},
		{name: "no keyword defaults to expense", text: "kado ulang tahun 100rb", want: domain.TypeExpense, wantOK: false},
		{name: "masuk inside a word", text: "beli bumbu masukan 10rb", want: domain.TypeExpense, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClassifyType(tt.text)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestClassifyType_IncomePrecedence(t *testing.T) {
	income := []string{"gaji", "salary", "pendapatan", "terima", "penerimaan", "penghasilan", "masuk", "bonus", "thr", "fee", "honor", "hadiah", "dapat", "untung", "profit"}
	expense := []string{"beli", "bayar", "belanja", "makan", "minum", "bensin", "kopi", "sewa"}

	for _, in := range income {
		for _, ex := range expense {
			got, _ := ClassifyType(ex + " " + in + " 10rb")
			assert.Equal(t, domain.TypeIncome, got, "%s + %s", ex, in)
		}
	}
}
