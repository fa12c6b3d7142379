package domain

import (
	"cloud.google.com/go/civil"
)

// TransactionType is the direction of money for a parsed transaction.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// ParseTransactionType normalizes s into a TransactionType.
// It reports false for anything other than "income" or "expense".
func ParseTransactionType(s string) (TransactionType, bool) {
	switch TransactionType(normalizeLabel(s)) {
	case TypeIncome:
		return TypeIncome, true
	case TypeExpense:
		return TypeExpense, true
	}
	return "", false
}

// ParsedTransaction is the validated record produced from one utterance.
// It is a domain struct, not a storage row; the caller maps Category onto its
// own category identifiers before persisting.
type ParsedTransaction struct {
	Title    string          `json:"title"`
	Amount   int64           `json:"amount"`   // whole rupiah, always > 0
	Date     civil.Date      `json:"date"`     // serialized as YYYY-MM-DD
	Category Category        `json:"category"` // one of Categories()
	Type     TransactionType `json:"type"`
}

// Years outside this range have no YYYY-MM-DD form.
const (
	MinYear = 1
	MaxYear = 9999
)

// IsRecordableDate reports whether d is a calendar date with a four-digit
// year, the only dates a ParsedTransaction may carry.
func IsRecordableDate(d civil.Date) bool {
	return d.IsValid() && d.Year >= MinYear && d.Year <= MaxYear
}

// Draft is the unvalidated guess returned by a text model. Every field is
// optional; nil means the model did not supply it.
type Draft struct {
	Title    *string
	Amount   *int64
	Date     *string // raw model value, validated later
	Category *string
	Type     *string
}

// IsEmpty reports whether the draft carries no field at all.
func (d *Draft) IsEmpty() bool {
	return d == nil || (d.Title == nil && d.Amount == nil && d.Date == nil && d.Category == nil && d.Type == nil)
}
