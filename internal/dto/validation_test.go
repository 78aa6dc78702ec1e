package dto

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalValidators(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterDecimalValidators(v))

	type amounts struct {
		Positive    decimal.Decimal `validate:"decimal_gt0"`
		NonNegative decimal.Decimal `validate:"decimal_gte0"`
	}

	assert.NoError(t, v.Struct(amounts{Positive: decimal.RequireFromString("0.01"), NonNegative: decimal.Zero}))
	assert.Error(t, v.Struct(amounts{Positive: decimal.Zero, NonNegative: decimal.Zero}))
	assert.Error(t, v.Struct(amounts{Positive: decimal.NewFromInt(1), NonNegative: decimal.RequireFromString("-0.01")}))
}

func TestCreateJournalEntryRequest_ToNewEntry(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	req := CreateJournalEntryRequest{
		EntryDate:   "2026-03-01",
		Description: "Owner capital",
		Lines: []JournalLineRequest{
			{AccountCode: "1010", Debit: decimal.NewFromInt(100)},
			{AccountCode: "3000", Credit: decimal.NewFromInt(100)},
		},
	}
	entry, err := req.ToNewEntry(loc)
	require.NoError(t, err)
	assert.Equal(t, loc, entry.EntryDate.Location())
	assert.Equal(t, 1, entry.EntryDate.Day())
	assert.Len(t, entry.Lines, 2)
	assert.Equal(t, "manual", string(entry.ReferenceType))

	req.EntryDate = "01/03/2026"
	_, err = req.ToNewEntry(loc)
	assert.Error(t, err)
}

func TestDateRangeQuery_ToFilter(t *testing.T) {
	f, err := DateRangeQuery{From: "2026-01-01", Limit: 10}.ToFilter(time.UTC)
	require.NoError(t, err)
	require.NotNil(t, f.From)
	assert.Nil(t, f.To)
	assert.Equal(t, 10, f.Limit)
}
