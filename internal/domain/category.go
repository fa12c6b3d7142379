package domain

import (
	"strings"
)

// Category is a label from the fixed category set.
type Category string

const (
	CategoryMakan      Category = "makan"
	CategoryMinuman    Category = "minuman"
	CategoryTransport  Category = "transport"
	CategoryBelanja    Category = "belanja"
	CategoryTagihan    Category = "tagihan"
	CategoryHiburan    Category = "hiburan"
	CategoryKesehatan  Category = "kesehatan"
	CategoryGaji       Category = "gaji"
	CategoryPendapatan Category = "pendapatan"
	CategoryOther      Category = "other"
)

var categories = []Category{
	CategoryMakan,
	CategoryMinuman,
	CategoryTransport,
	CategoryBelanja,
	CategoryTagihan,
	CategoryHiburan,
	CategoryKesehatan,
	CategoryGaji,
	CategoryPendapatan,
	CategoryOther,
}

// incomeCategories are category names that always mean money coming in,
// whatever the wording of the sentence.
var incomeCategories = map[string]bool{
	"income":     true,
	"incom":      true,
	"gaji":       true,
	"penerimaan": true,
	"salary":     true,
	"pendapatan": true,
	"terima":     true,
}

// Categories returns the closed label set in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory normalizes s and reports whether it is a known label.
func ParseCategory(s string) (Category, bool) {
	norm := Category(normalizeLabel(s))
	for _, c := range categories {
		if c == norm {
			return c, true
		}
	}
	return "", false
}

// IsIncomeCategory reports whether name is one of the income synonyms
// (gaji, pendapatan, salary, ...).
func IsIncomeCategory(name string) bool {
	return incomeCategories[normalizeLabel(name)]
}

func normalizeLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
