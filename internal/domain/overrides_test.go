package domain

import (
	"encoding/json"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func baseTransaction() ParsedTransaction {
	return ParsedTransaction{
		Title:    "Beli kopi",
		Amount:   15000,
		Date:     civil.Date{Year: 2024, Month: time.June, Day: 9},
		Category: CategoryMinuman,
		Type:     TypeExpense,
	}
}

func TestOverrides_Apply(t *testing.T) {
	tests := []struct {
		name      string
		overrides Overrides
		want      func(tx *ParsedTransaction)
	}{
		{
			name:      "none",
			overrides: Overrides{},
			want:      func(tx *ParsedTransaction) {},
		},
		{
			name: "all well formed",
			overrides: Overrides{
				Title:    ptr("  Kopi susu  "),
				Amount:   ptr(int64(20000)),
				Date:     ptr("2024-06-01"),
				Category: ptr("Makan"),
				Type:     ptr("INCOME"),
			},
			want: func(tx *ParsedTransaction) {
				tx.Title = "Kopi susu"
				tx.Amount = 20000
				tx.Date = civil.Date{Year: 2024, Month: time.June, Day: 1}
				tx.Category = CategoryMakan
				tx.Type = TypeIncome
			},
		},
		{
			name: "malformed values ignored",
			overrides: Overrides{
				Title:    ptr("   "),
				Amount:   ptr(int64(0)),
				Date:     ptr("2024-02-30"),
				Category: ptr("groceries"),
				Type:     ptr("transfer"),
			},
			want: func(tx *ParsedTransaction) {},
		},
		{
			name:      "year zero date ignored",
			overrides: Overrides{Date: ptr("0000-01-01")},
			want:      func(tx *ParsedTransaction) {},
		},
		{
			name:      "negative amount ignored",
			overrides: Overrides{Amount: ptr(int64(-5))},
			want:      func(tx *ParsedTransaction) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := baseTransaction()
			tt.overrides.Apply(&got)

			want := baseTransaction()
			tt.want(&want)
			assert.Equal(t, want, got)
		})
	}
}

func TestParsedTransaction_JSON(t *testing.T) {
	b, err := json.Marshal(baseTransaction())
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Beli kopi","amount":15000,"date":"2024-06-09","category":"minuman","type":"expense"}`, string(b))
}

func TestCategoryHelpers(t *testing.T) {
	c, ok := ParseCategory(" Tagihan ")
	assert.True(t, ok)
	assert.Equal(t, CategoryTagihan, c)

	_, ok = ParseCategory("groceries")
	assert.False(t, ok)

	assert.Len(t, Categories(), 10)
	assert.True(t, IsIncomeCategory("Salary"))
	assert.True(t, IsIncomeCategory("gaji"))
	assert.False(t, IsIncomeCategory("belanja"))
}

func TestDraft_IsEmpty(t *testing.T) {
	var nilDraft *Draft
	assert.True(t, nilDraft.IsEmpty())
	assert.True(t, (&Draft{}).IsEmpty())
	assert.False(t, (&Draft{Title: ptr("x")}).IsEmpty())
}

func TestIsRecordableDate(t *testing.T) {
	assert.True(t, IsRecordableDate(civil.Date{Year: 2024, Month: time.June, Day: 10}))
	assert.True(t, IsRecordableDate(civil.Date{Year: MinYear, Month: time.January, Day: 1}))
	assert.True(t, IsRecordableDate(civil.Date{Year: MaxYear, Month: time.December, Day: 31}))
	assert.False(t, IsRecordableDate(civil.Date{Year: 0, Month: time.January, Day: 1}))
	assert.False(t, IsRecordableDate(civil.Date{Year: -714, Month: time.July, Day: 14}))
	assert.False(t, IsRecordableDate(civil.Date{Year: 10000, Month: time.January, Day: 1}))
	assert.False(t, IsRecordableDate(civil.Date{Year: 2024, Month: time.February, Day: 30}))
}
