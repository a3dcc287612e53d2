package services

import (
	"context"

	"github.com/SscSPs/lending_catalog/internal/core/domain"
	"github.com/SscSPs/lending_catalog/internal/dto"
	"github.com/shopspring/decimal"
)

// LoanReaderSvc defines read operations for loans. Every loan is annotated
// with its overdue days and effective fine as of today.
type LoanReaderSvc interface {
	GetLoanByID(ctx context.Context, loanID int64) (*domain.AnnotatedLoan, error)
	ListLoans(ctx context.Context) ([]domain.AnnotatedLoan, error)
	ListOpenLoans(ctx context.Context) ([]domain.AnnotatedLoan, error)
	ListOverdueLoans(ctx context.Context) ([]domain.AnnotatedLoan, error)
	ListMemberLoans(ctx context.Context, memberID int64) ([]domain.AnnotatedLoan, error)
}

// LoanLifecycleSvc defines the loan state transitions
type LoanLifecycleSvc interface {
	// CreateLoan checks, in order: member exists, item exists, item
	// available, member below the active loan limit.
	CreateLoan(ctx context.Context, req dto.CreateLoanRequest) (*domain.Loan, error)

	// ReturnLoan settles an open loan and reports the overdue days and fine.
	ReturnLoan(ctx context.Context, loanID int64) (*domain.ReturnReceipt, error)

	DeleteLoan(ctx context.Context, loanID int64) error
}

// LoanPolicySvc exposes the overdue and fine rules
type LoanPolicySvc interface {
	Policy() domain.LoanPolicy
	OverdueDays(loan domain.Loan) int
	Fine(loan domain.Loan) decimal.Decimal
}

// LoanSvcFacade combines all loan-related service interfaces
type LoanSvcFacade interface {
	LoanReaderSvc
	LoanLifecycleSvc
	LoanPolicySvc
}
