package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dvloznov/dompet/internal/domain"
)

// decodeDraft turns the model's reply into a Draft. Unknown keys are
// ignored; a key with the wrong type fails the whole decode.
func decodeDraft(raw string) (*domain.Draft, error) {
	clean := cleanModelJSON(raw)

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(clean), &obj); err != nil {
		return nil, fmt.Errorf("decodeDraft: unmarshal JSON: %w", err)
	}

	draft := &domain.Draft{}
	var err error
	if draft.Title, err = getOptionalStringField(obj, "title"); err != nil {
		return nil, fmt.Errorf("decodeDraft: %w", err)
	}
	if draft.Amount, err = getOptionalAmountField(obj, "amount"); err != nil {
		return nil, fmt.Errorf("decodeDraft: %w", err)
	}
	if draft.Date, err = getOptionalStringField(obj, "date"); err != nil {
		return nil, fmt.Errorf("decodeDraft: %w", err)
	}
	if draft.Category, err = getOptionalStringField(obj, "category"); err != nil {
		return nil, fmt.Errorf("decodeDraft: %w", err)
	}
	if draft.Type, err = getOptionalStringField(obj, "type"); err != nil {
		return nil, fmt.Errorf("decodeDraft: %w", err)
	}
	return draft, nil
}

// cleanModelJSON strips Markdown fences and any chatter around the first
// JSON object in raw.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.Index(s[start:], "}"); end != -1 {
			s = s[start : start+end+1]
		}
	}
	return strings.TrimSpace(s)
}

func getOptionalStringField(m map[string]interface{}, key string) (*string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch val := v.(type) {
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return nil, nil
		}
		return &s, nil
	default:
		return nil, fmt.Errorf("field %q has type %T, want string or null", key, v)
	}
}

// getOptionalAmountField accepts a JSON number or a numeric string and
// truncates it to whole rupiah.
func getOptionalAmountField(m map[string]interface{}, key string) (*int64, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}

	var d decimal.Decimal
	switch val := v.(type) {
	case float64:
		d = decimal.NewFromFloat(val)
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return nil, nil
		}
		parsed, err := decimal.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("field %q is not a number: %w", key, err)
		}
		d = parsed
	default:
		return nil, fmt.Errorf("field %q has type %T, want number", key, v)
	}

	n := d.Truncate(0).IntPart()
	return &n, nil
}
