package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestJournalEntry_IsBalanced(t *testing.T) {
	tests := []struct {
		name  string
		lines []domain.JournalLine
		want  bool
	}{
		{
			name: "two line balanced entry",
			lines: []domain.JournalLine{
				{Debit: dec("1200.00"), Credit: decimal.Zero},
				{Debit: decimal.Zero, Credit: dec("1200.00")},
			},
			want: true,
		},
		{
			name: "scale differences still compare exactly",
			lines: []domain.JournalLine{
				{Debit: dec("10.5"), Credit: decimal.Zero},
				{Debit: decimal.Zero, Credit: dec("10.50")},
			},
			want: true,
		},
		{
			name: "off by one cent",
			lines: []domain.JournalLine{
				{Debit: dec("100.00"), Credit: decimal.Zero},
				{Debit: decimal.Zero, Credit: dec("99.99")},
			},
			want: false,
		},
		{
			name: "three lines split credit",
			lines: []domain.JournalLine{
				{Debit: dec("0.30"), Credit: decimal.Zero},
				{Debit: decimal.Zero, Credit: dec("0.10")},
				{Debit: decimal.Zero, Credit: dec("0.20")},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := domain.JournalEntry{Lines: tt.lines}
			assert.Equal(t, tt.want, entry.IsBalanced())
		})
	}
}

func TestNetSalary(t *testing.T) {
	assert.True(t, dec("5300.00").Equal(domain.NetSalary(dec("5000.00"), dec("500.00"), dec("200.00"))))
	// no floor: deductions larger than earnings yield a negative net
	assert.True(t, dec("-100").Equal(domain.NetSalary(dec("100"), decimal.Zero, dec("200"))))
}

func TestPaymentAccountCode(t *testing.T) {
	assert.Equal(t, domain.CodeCash, domain.PaymentAccountCode("cash"))
	assert.Equal(t, domain.CodeBank, domain.PaymentAccountCode("bank_transfer"))
	assert.Equal(t, domain.CodeBank, domain.PaymentAccountCode("card"))
}

func TestMonthBounds(t *testing.T) {
	start, end := domain.MonthBounds(time.Date(2024, 2, 17, 15, 4, 5, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), end)
}

func TestInvoice_IsOverdue(t *testing.T) {
	today := time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)
	open := domain.Invoice{DueDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), Status: domain.InvoiceOpen}
	paid := open
	paid.Status = domain.InvoicePaid
	dueToday := open
	dueToday.DueDate = time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)

	assert.True(t, open.IsOverdue(today))
	assert.False(t, paid.IsOverdue(today))
	assert.False(t, dueToday.IsOverdue(today))
}

func TestDefaultChart_UniqueCodesAndValidTypes(t *testing.T) {
	seen := map[domain.AccountCode]bool{}
	for _, acc := range domain.DefaultChart() {
		assert.False(t, seen[acc.Code], "duplicate code %s", acc.Code)
		seen[acc.Code] = true
		assert.True(t, acc.AccountType.IsValid(), "invalid type for %s", acc.Code)
	}
	assert.Len(t, seen, 11)
}

func TestCountsInCashflow(t *testing.T) {
	tests := []struct {
		direction domain.CashDirection
		ref       domain.CashReferenceType
		want      bool
	}{
		{domain.Inflow, domain.CashRefIncome, true},
		{domain.Inflow, domain.CashRefOrder, true},
		{domain.Inflow, domain.CashRefPayroll, true},
		{domain.Outflow, domain.CashRefExpense, true},
		{domain.Outflow, domain.CashRefPayroll, true},
		{domain.Inflow, domain.CashRefExpense, false},
		{domain.Outflow, domain.CashRefIncome, false},
		{domain.CashDirection("sideways"), domain.CashRefIncome, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.CountsInCashflow(tt.direction, tt.ref), "%s/%s", tt.direction, tt.ref)
	}
}
