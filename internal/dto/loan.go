package dto

import (
	"github.com/SscSPs/lending_catalog/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLoanRequest defines the data needed to lend an item to a member.
type CreateLoanRequest struct {
	MemberID int64  `json:"memberID" validate:"required,gt=0"`
	ItemID   string `json:"itemID" validate:"notblank"`
}

// LoanResponse is the API representation of a loan with its derived values.
// Fine is the stored fine for returned loans and the accruing fine otherwise.
type LoanResponse struct {
	LoanID          int64           `json:"loanID"`
	MemberID        int64           `json:"memberID"`
	MemberFirstName string          `json:"memberFirstName"`
	MemberLastName  string          `json:"memberLastName"`
	ItemID          string          `json:"itemID"`
	ItemTitle       string          `json:"itemTitle"`
	ItemPublisher   string          `json:"itemPublisher"`
	LoanDate        string          `json:"loanDate"`
	ReturnDate      *string         `json:"returnDate"`
	Status          string          `json:"status"`
	OverdueDays     int             `json:"overdueDays"`
	Fine            decimal.Decimal `json:"fine"`
}

// ToLoanResponse converts an annotated loan to its response DTO
func ToLoanResponse(l *domain.AnnotatedLoan) LoanResponse {
	return LoanResponse{
		LoanID:          l.LoanID,
		MemberID:        l.MemberID,
		MemberFirstName: l.MemberFirstName,
		MemberLastName:  l.MemberLastName,
		ItemID:          l.ItemID,
		ItemTitle:       l.ItemTitle,
		ItemPublisher:   l.ItemPublisher,
		LoanDate:        formatDate(l.LoanDate),
		ReturnDate:      formatDatePtr(l.ReturnDate),
		Status:          string(l.Status()),
		OverdueDays:     l.OverdueDays,
		Fine:            l.AccruedFine,
	}
}

// ToLoanResponses converts a slice of annotated loans
func ToLoanResponses(loans []domain.AnnotatedLoan) []LoanResponse {
	resp := make([]LoanResponse, len(loans))
	for i := range loans {
		resp[i] = ToLoanResponse(&loans[i])
	}
	return resp
}

// CreatedLoanResponse acknowledges a new loan.
type CreatedLoanResponse struct {
	LoanID   int64  `json:"loanID"`
	LoanDate string `json:"loanDate"`
	Message  string `json:"message"`
}

// ToCreatedLoanResponse converts a freshly opened loan
func ToCreatedLoanResponse(l *domain.Loan) CreatedLoanResponse {
	return CreatedLoanResponse{
		LoanID:   l.LoanID,
		LoanDate: formatDate(l.LoanDate),
		Message:  "loan created",
	}
}

// ReturnLoanResponse reports the outcome of a return.
type ReturnLoanResponse struct {
	LoanID      int64           `json:"loanID"`
	ReturnDate  string          `json:"returnDate"`
	OverdueDays int             `json:"overdueDays"`
	Fine        decimal.Decimal `json:"fine"`
	Message     string          `json:"message"`
}

// ToReturnLoanResponse converts a return receipt
func ToReturnLoanResponse(r *domain.ReturnReceipt) ReturnLoanResponse {
	return ReturnLoanResponse{
		LoanID:      r.LoanID,
		ReturnDate:  formatDate(r.ReturnDate),
		OverdueDays: r.OverdueDays,
		Fine:        r.Fine,
		Message:     "item returned",
	}
}
