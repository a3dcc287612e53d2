package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus is derived from ReturnDate; it is never stored.
type LoanStatus string

const (
	LoanOpen   LoanStatus = "OPEN"
	LoanClosed LoanStatus = "CLOSED"
)

// Loan links a member to a borrowed item.
type Loan struct {
	LoanID     int64           `json:"loanID"`
	MemberID   int64           `json:"memberID"`
	ItemID     string          `json:"itemID"`
	LoanDate   time.Time       `json:"loanDate"`
	ReturnDate *time.Time      `json:"returnDate,omitempty"` // nil while the loan is open
	Fine       decimal.Decimal `json:"fine"`                 // Frozen at return time
}

// Status returns OPEN until a return date is recorded.
func (l Loan) Status() LoanStatus {
	if l.ReturnDate == nil {
		return LoanOpen
	}
	return LoanClosed
}

// IsOpen reports whether the loan has not been returned yet.
func (l Loan) IsOpen() bool {
	return l.ReturnDate == nil
}

// LoanDetail is a loan joined with the display fields of its member and item.
type LoanDetail struct {
	Loan
	MemberFirstName string `json:"memberFirstName"`
	MemberLastName  string `json:"memberLastName"`
	ItemTitle       string `json:"itemTitle"`
	ItemPublisher   string `json:"itemPublisher"`
}

// AnnotatedLoan carries the values derived by a LoanPolicy at query time.
type AnnotatedLoan struct {
	LoanDetail
	OverdueDays int             `json:"overdueDays"`
	AccruedFine decimal.Decimal `json:"accruedFine"`
}

// ReturnReceipt is the outcome of settling a loan.
type ReturnReceipt struct {
	LoanID      int64           `json:"loanID"`
	ReturnDate  time.Time       `json:"returnDate"`
	OverdueDays int             `json:"overdueDays"`
	Fine        decimal.Decimal `json:"fine"`
}

const (
	DefaultLoanPeriodDays = 14
	DefaultMaxActiveLoans = 5
)

// DefaultFinePerDay is 0.50 currency units per day late.
var DefaultFinePerDay = decimal.NewFromFloat(0.50)

// LoanPolicy holds the lending rules: how long a loan lasts, what each late
// day costs and how many loans a member may hold at once.
type LoanPolicy struct {
	LoanPeriodDays int
	FinePerDay     decimal.Decimal
	MaxActiveLoans int
}

// DefaultLoanPolicy returns the 14 days / 0.50 per day / 5 loans policy.
func DefaultLoanPolicy() LoanPolicy {
	return LoanPolicy{
		LoanPeriodDays: DefaultLoanPeriodDays,
		FinePerDay:     DefaultFinePerDay,
		MaxActiveLoans: DefaultMaxActiveLoans,
	}
}

// OverdueDays is 0 for closed loans; for open loans it is the number of days
// past the loan period as of today, never negative.
func (p LoanPolicy) OverdueDays(loan Loan, today time.Time) int {
	if !loan.IsOpen() {
		return 0
	}
	days := DaysBetween(loan.LoanDate, today) - p.LoanPeriodDays
	if days < 0 {
		return 0
	}
	return days
}

// Fine is OverdueDays times FinePerDay. It is always zero for closed loans;
// use EffectiveFine when displaying a loan.
func (p LoanPolicy) Fine(loan Loan, today time.Time) decimal.Decimal {
	return p.FinePerDay.Mul(decimal.NewFromInt(int64(p.OverdueDays(loan, today))))
}

// EffectiveFine returns the stored fine for closed loans and the accruing
// fine for open ones.
func (p LoanPolicy) EffectiveFine(loan Loan, today time.Time) decimal.Decimal {
	if !loan.IsOpen() {
		return loan.Fine
	}
	return p.Fine(loan, today)
}

// OverdueCutoff is the date before which an open loan is overdue.
func (p LoanPolicy) OverdueCutoff(today time.Time) time.Time {
	return DateOf(today).AddDate(0, 0, -p.LoanPeriodDays)
}

// CanBorrow reports whether a member holding activeLoans may take another.
func (p LoanPolicy) CanBorrow(activeLoans int) bool {
	return activeLoans < p.MaxActiveLoans
}

// Annotate attaches overdue days and the effective fine to a loan detail.
func (p LoanPolicy) Annotate(detail LoanDetail, today time.Time) AnnotatedLoan {
	return AnnotatedLoan{
		LoanDetail:  detail,
		OverdueDays: p.OverdueDays(detail.Loan, today),
		AccruedFine: p.EffectiveFine(detail.Loan, today),
	}
}
