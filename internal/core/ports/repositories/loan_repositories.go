package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/lending_catalog/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LoanReader defines read operations for loans
type LoanReader interface {
	// FindLoanByID retrieves a loan with member and item details; apperrors.ErrLoanNotFound if absent.
	FindLoanByID(ctx context.Context, loanID int64) (*domain.LoanDetail, error)

	// ListLoans returns all loans, newest first.
	ListLoans(ctx context.Context) ([]domain.LoanDetail, error)

	// ListOpenLoans returns loans without a return date, oldest first.
	ListOpenLoans(ctx context.Context) ([]domain.LoanDetail, error)

	// ListOverdueLoans returns open loans dated strictly before cutoff, oldest first.
	ListOverdueLoans(ctx context.Context, cutoff time.Time) ([]domain.LoanDetail, error)

	// ListLoansByMember returns the member's loans, newest first.
	ListLoansByMember(ctx context.Context, memberID int64) ([]domain.LoanDetail, error)
}

// LoanLifecycleManager defines the transactional state changes of a loan.
// Each method is one committed unit; on any error nothing is persisted.
type LoanLifecycleManager interface {
	// OpenLoan inserts the loan and takes one copy of the item. The member row
	// is locked and its active loans recounted against activeLimit; the copy is
	// taken with a conditional decrement. Returns the new loan id.
	OpenLoan(ctx context.Context, loan domain.Loan, activeLimit int) (int64, error)

	// SettleReturn closes an open loan: records the return date and fine,
	// gives the copy back and adds the fine to the member's balance.
	// Returns apperrors.ErrAlreadyReturned if the loan was closed concurrently.
	SettleReturn(ctx context.Context, loanID int64, returnDate time.Time, fine decimal.Decimal) error

	// DeleteLoan removes the loan; an open loan's copy is given back.
	DeleteLoan(ctx context.Context, loanID int64) error
}

// LoanRepositoryFacade combines all loan-related repository interfaces
type LoanRepositoryFacade interface {
	LoanReader
	LoanLifecycleManager
}
