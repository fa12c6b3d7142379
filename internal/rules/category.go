package rules

import (
	"regexp"

	"github.com/dvloznov/dompet/internal/domain"
)

// categoryRule ties a label to its keyword evidence.
type categoryRule struct {
	category domain.Category
	keywords *regexp.Regexp
}

// categoryRules is scanned top-down. Specific food and service nouns come
// before "belanja", whose "beli" would otherwise shadow them.
var categoryRules = []categoryRule{
	{domain.CategoryMakan, keywordPattern([]string{
		"nasi", "ayam", "soto", "bakso", "mie", "bubur", "sate", "rendang",
		"gudeg", "pecel", "gado", "warteg", "padang", "resto", "restoran",
		"makanan", "makan", "sarapan", "makan siang", "makan malam",
		"martabak", "nasgor", "roti", "seblak", "siomay",
	})},
	{domain.CategoryMinuman, keywordPattern([]string{
		"kopi", "teh", "jus", "susu", "air mineral", "aqua", "minuman",
		"minum", "es", "cappuccino", "latte", "espresso", "americano", "boba",
		"milkshake", "smoothie",
	})},
	{domain.CategoryTransport, keywordPattern([]string{
		"bensin", "ojek", "ojol", "gojek", "grab", "taxi", "taksi", "bus",
		"kereta", "krl", "mrt", "transportasi", "parkir", "tol", "angkot",
		"angkutan", "bbm", "pertamax", "pertalite",
	})},
	{domain.CategoryBelanja, keywordPattern([]string{
		"beli", "membeli", "belanja", "shopping", "supermarket", "indomaret",
		"alfamart", "pasar", "toko",
	})},
	{domain.CategoryTagihan, keywordPattern([]string{
		"listrik", "air", "pdam", "wifi", "internet", "pulsa", "token",
		"tagihan", "bayar cicilan", "cicilan",
	})},
	{domain.CategoryHiburan, keywordPattern([]string{
		"nonton", "bioskop", "cinema", "karaoke", "game", "netflix",
		"spotify", "youtube premium", "hiburan",
	})},
	{domain.CategoryKesehatan, keywordPattern([]string{
		"obat", "dokter", "rumah sakit", "rs", "klinik", "apotek", "vitamin",
		"kesehatan",
	})},
	{domain.CategoryGaji, keywordPattern([]string{
		"gaji", "salary", "penghasilan", "pendapatan", "income",
	})},
}

// ClassifyCategory returns the first category in priority order whose
// keywords occur in text. It reports false, with CategoryOther, when no
// keyword matched.
func ClassifyCategory(text string) (domain.Category, bool) {
	lower := Normalize(text)
	for _, r := range categoryRules {
		if r.keywords.MatchString(lower) {
			return r.category, true
		}
	}
	return domain.CategoryOther, false
}
