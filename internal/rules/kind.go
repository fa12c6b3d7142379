package rules

import (
	"github.com/dvloznov/dompet/internal/domain"
)

// incomeKeywords are checked before expenseKeywords: income phrasing is the
// rarer and more specific signal.
var incomeKeywords = keywordPattern([]string{
	"gaji", "gajian", "salary", "pendapatan", "terima", "menerima",
	"diterima", "penerimaan", "penghasilan", "masuk", "pemasukan", "bonus",
	"thr", "fee", "honor", "honorarium", "hadiah", "dapat", "dapet",
	"mendapat", "mendapatkan", "untung", "keuntungan", "profit", "income",
	"komisi", "dividen", "cashback",
})

var expenseKeywords = keywordPattern([]string{
	"beli", "membeli", "bayar", "membayar", "belanja", "makan", "minum",
	"jajan", "bensin", "kopi", "isi", "top up", "topup", "sewa", "cicilan",
	"keluar", "pengeluaran", "expense", "transfer ke",
})

// ClassifyType decides between income and expense. Any income keyword
// wins, even when expense keywords are present too. It reports false, with
// TypeExpense, when neither set matched.
func ClassifyType(text string) (domain.TransactionType, bool) {
	lower := Normalize(text)
	if incomeKeywords.MatchString(lower) {
		return domain.TypeIncome, true
	}
	if expenseKeywords.MatchString(lower) {
		return domain.TypeExpense, true
	}
	return domain.TypeExpense, false
}
