package domain

import (
	"strings"

	"cloud.google.com/go/civil"
)

// Overrides are caller-supplied values that win over every extracted field.
// A nil field, or one that is not well-formed, is ignored.
type Overrides struct {
	Title    *string
	Amount   *int64
	Date     *string // YYYY-MM-DD
	Category *string
	Type     *string
}

// Apply copies every well-formed override onto tx.
func (o Overrides) Apply(tx *ParsedTransaction) {
	if o.Title != nil {
		if t := strings.TrimSpace(*o.Title); t != "" {
			tx.Title = t
		}
	}
	if o.Amount != nil && *o.Amount > 0 {
		tx.Amount = *o.Amount
	}
	if o.Date != nil {
		if d, err := civil.ParseDate(strings.TrimSpace(*o.Date)); err == nil && IsRecordableDate(d) {
			tx.Date = d
		}
	}
	if o.Category != nil {
		if c, ok := ParseCategory(*o.Category); ok {
			tx.Category = c
		}
	}
	if o.Type != nil {
		if t, ok := ParseTransactionType(*o.Type); ok {
			tx.Type = t
		}
	}
}
