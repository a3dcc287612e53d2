package domain

import "github.com/shopspring/decimal"

// Totals counts the rows of each table.
type Totals struct {
	Members int64 `json:"members"`
	Items   int64 `json:"items"`
	Loans   int64 `json:"loans"`
}

// LoanCounts splits loans by status.
type LoanCounts struct {
	Open   int64 `json:"open"`
	Closed int64 `json:"closed"`
}

// StatsOverview is the catalog-wide rollup.
type StatsOverview struct {
	Totals          Totals          `json:"totals"`
	Loans           LoanCounts      `json:"loans"`
	AvailableCopies int64           `json:"availableCopies"`
	UtilizationRate decimal.Decimal `json:"utilizationRate"` // Percent, one decimal
}

// MemberLoanCount ranks a member by total loans taken.
type MemberLoanCount struct {
	MemberID  int64  `json:"memberID"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	LoanCount int64  `json:"loanCount"`
}

// ItemLoanCount ranks an item by total times lent.
type ItemLoanCount struct {
	ItemID    string `json:"itemID"`
	Title     string `json:"title"`
	Publisher string `json:"publisher"`
	LoanCount int64  `json:"loanCount"`
}

// UtilizationRate is 100 * open / available, 0 when nothing is available.
func UtilizationRate(openLoans, availableCopies int64) decimal.Decimal {
	if availableCopies <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(openLoans).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(availableCopies)).
		Round(1)
}
