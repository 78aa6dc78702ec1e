package dto

import (
	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CashflowResponse represents the cashflow report response
type CashflowResponse struct {
	StartDate         string          `json:"startDate"`
	EndDate           string          `json:"endDate"`
	OperatingCashflow decimal.Decimal `json:"operatingCashflow" swaggertype:"string"`
	InvestingCashflow decimal.Decimal `json:"investingCashflow" swaggertype:"string"`
	FinancingCashflow decimal.Decimal `json:"financingCashflow" swaggertype:"string"`
	NetCashflow       decimal.Decimal `json:"netCashflow" swaggertype:"string"`
}

func ToCashflowResponse(r *domain.CashflowReport) CashflowResponse {
	return CashflowResponse{
		StartDate:         formatDate(r.StartDate),
		EndDate:           formatDate(r.EndDate),
		OperatingCashflow: r.OperatingCashflow,
		InvestingCashflow: r.InvestingCashflow,
		FinancingCashflow: r.FinancingCashflow,
		NetCashflow:       r.NetCashflow,
	}
}

// ProfitAndLossResponse represents the profit and loss report response
type ProfitAndLossResponse struct {
	StartDate         string          `json:"startDate"`
	EndDate           string          `json:"endDate"`
	Revenue           decimal.Decimal `json:"revenue" swaggertype:"string"`
	COGS              decimal.Decimal `json:"cogs" swaggertype:"string"`
	OperatingExpenses decimal.Decimal `json:"operatingExpenses" swaggertype:"string"`
	SalaryExpense     decimal.Decimal `json:"salaryExpense" swaggertype:"string"`
	NetProfit         decimal.Decimal `json:"netProfit" swaggertype:"string"`
}

func ToProfitAndLossResponse(r *domain.ProfitAndLossReport) ProfitAndLossResponse {
	return ProfitAndLossResponse{
		StartDate:         formatDate(r.StartDate),
		EndDate:           formatDate(r.EndDate),
		Revenue:           r.Revenue,
		COGS:              r.COGS,
		OperatingExpenses: r.OperatingExpenses,
		SalaryExpense:     r.SalaryExpense,
		NetProfit:         r.NetProfit,
	}
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	AsOf        string          `json:"asOf"`
	Assets      decimal.Decimal `json:"assets" swaggertype:"string"`
	Liabilities decimal.Decimal `json:"liabilities" swaggertype:"string"`
	Equity      decimal.Decimal `json:"equity" swaggertype:"string"`
}

func ToBalanceSheetResponse(r *domain.BalanceSheetReport) BalanceSheetResponse {
	return BalanceSheetResponse{
		AsOf:        formatDate(r.AsOf),
		Assets:      r.Assets,
		Liabilities: r.Liabilities,
		Equity:      r.Equity,
	}
}

// OverdueInvoiceResponse is one receivable past its due date.
type OverdueInvoiceResponse struct {
	InvoiceID     string          `json:"invoiceID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	CustomerID    string          `json:"customerID"`
	DueDate       string          `json:"dueDate"`
	Outstanding   decimal.Decimal `json:"outstanding" swaggertype:"string"`
}

func ToListOverdueInvoiceResponse(invoices []domain.OverdueInvoice) []OverdueInvoiceResponse {
	out := make([]OverdueInvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, OverdueInvoiceResponse{
			InvoiceID:     inv.InvoiceID,
			InvoiceNumber: inv.InvoiceNumber,
			CustomerID:    inv.CustomerID,
			DueDate:       formatDate(inv.DueDate),
			Outstanding:   inv.Outstanding,
		})
	}
	return out
}
