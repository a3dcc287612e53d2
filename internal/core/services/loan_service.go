package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/lending_catalog/internal/apperrors"
	"github.com/SscSPs/lending_catalog/internal/core/domain"
	portsrepo "github.com/SscSPs/lending_catalog/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/lending_catalog/internal/core/ports/services"
	"github.com/SscSPs/lending_catalog/internal/dto"
	"github.com/SscSPs/lending_catalog/internal/validation"
	"github.com/shopspring/decimal"
)

// loanService is the loan engine: it owns the OPEN -> CLOSED lifecycle and
// every change to item availability and member balances.
type loanService struct {
	BaseService
	loanRepo portsrepo.LoanRepositoryFacade
	members  portssvc.MembershipCheckerSvc
	items    portssvc.AvailabilityCheckerSvc
	policy   domain.LoanPolicy
	now      func() time.Time
}

// LoanServiceOption is a functional option for configuring the loan service
type LoanServiceOption func(*loanService)

// WithLoanPolicy overrides the default lending rules
func WithLoanPolicy(policy domain.LoanPolicy) LoanServiceOption {
	return func(s *loanService) {
		s.policy = policy
	}
}

// WithClock sets the source of "today"
func WithClock(now func() time.Time) LoanServiceOption {
	return func(s *loanService) {
		s.now = now
	}
}

// NewLoanService creates the loan engine
func NewLoanService(
	loanRepo portsrepo.LoanRepositoryFacade,
	members portssvc.MembershipCheckerSvc,
	items portssvc.AvailabilityCheckerSvc,
	options ...LoanServiceOption,
) portssvc.LoanSvcFacade {
	svc := &loanService{
		loanRepo: loanRepo,
		members:  members,
		items:    items,
		policy:   domain.DefaultLoanPolicy(),
		now:      time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LoanSvcFacade = (*loanService)(nil)

func (s *loanService) today() time.Time {
	return domain.DateOf(s.now())
}

func (s *loanService) Policy() domain.LoanPolicy {
	return s.policy
}

func (s *loanService) OverdueDays(loan domain.Loan) int {
	return s.policy.OverdueDays(loan, s.today())
}

func (s *loanService) Fine(loan domain.Loan) decimal.Decimal {
	return s.policy.Fine(loan, s.today())
}

// CreateLoan checks the borrowing preconditions in order and opens the loan.
// The repository re-checks availability and the loan limit inside its
// transaction, so a concurrent borrow cannot overdraw either.
func (s *loanService) CreateLoan(ctx context.Context, req dto.CreateLoanRequest) (*domain.Loan, error) {
	if err := validation.Struct(req); err != nil {
		s.LogFailure(ctx, err, "Invalid loan request")
		return nil, err
	}
	itemID := strings.TrimSpace(req.ItemID)
	logAttrs := []any{slog.Int64("member_id", req.MemberID), slog.String("item_id", itemID)}

	if err := s.checkBorrowPreconditions(ctx, req.MemberID, itemID); err != nil {
		s.LogFailure(ctx, err, "Loan refused", logAttrs...)
		return nil, err
	}

	loan := domain.Loan{
		MemberID: req.MemberID,
		ItemID:   itemID,
		LoanDate: s.today(),
		Fine:     decimal.Zero,
	}

	id, err := s.loanRepo.OpenLoan(ctx, loan, s.policy.MaxActiveLoans)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to open loan", logAttrs...)
		return nil, err
	}
	loan.LoanID = id

	s.LogInfo(ctx, "Loan opened", append(logAttrs, slog.Int64("loan_id", id))...)
	return &loan, nil
}

func (s *loanService) checkBorrowPreconditions(ctx context.Context, memberID int64, itemID string) error {
	memberExists, err := s.members.MemberExists(ctx, memberID)
	if err != nil {
		return err
	}
	if !memberExists {
		return apperrors.Wrap(apperrors.ErrMemberNotFound, fmt.Sprintf("member %d not found", memberID))
	}

	itemExists, err := s.items.ItemExists(ctx, itemID)
	if err != nil {
		return err
	}
	if !itemExists {
		return apperrors.Wrap(apperrors.ErrItemNotFound, fmt.Sprintf("item %s not found", itemID))
	}

	available, err := s.items.IsItemAvailable(ctx, itemID)
	if err != nil {
		return err
	}
	if !available {
		return apperrors.Wrap(apperrors.ErrItemUnavailable, fmt.Sprintf("item %s has no copy available", itemID))
	}

	active, err := s.members.CountActiveLoans(ctx, memberID)
	if err != nil {
		return err
	}
	if !s.policy.CanBorrow(active) {
		return apperrors.Wrap(apperrors.ErrLoanLimitExceeded,
			fmt.Sprintf("member %d already has %d active loans (limit %d)", memberID, active, s.policy.MaxActiveLoans))
	}
	return nil
}

// ReturnLoan computes the overdue days and fine as of today, then settles
// the loan. A returned loan is never settled twice.
func (s *loanService) ReturnLoan(ctx context.Context, loanID int64) (*domain.ReturnReceipt, error) {
	detail, err := s.loanRepo.FindLoanByID(ctx, loanID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to find loan for return", slog.Int64("loan_id", loanID))
		return nil, err
	}
	if !detail.IsOpen() {
		err := apperrors.Wrap(apperrors.ErrAlreadyReturned, fmt.Sprintf("loan %d is already returned", loanID))
		s.LogFailure(ctx, err, "Loan already returned", slog.Int64("loan_id", loanID))
		return nil, err
	}

	today := s.today()
	receipt := &domain.ReturnReceipt{
		LoanID:      loanID,
		ReturnDate:  today,
		OverdueDays: s.policy.OverdueDays(detail.Loan, today),
		Fine:        s.policy.Fine(detail.Loan, today),
	}

	if err := s.loanRepo.SettleReturn(ctx, loanID, today, receipt.Fine); err != nil {
		s.LogFailure(ctx, err, "Failed to settle return", slog.Int64("loan_id", loanID))
		return nil, err
	}

	s.LogInfo(ctx, "Loan returned",
		slog.Int64("loan_id", loanID),
		slog.Int("overdue_days", receipt.OverdueDays),
		slog.String("fine", receipt.Fine.StringFixed(2)))
	return receipt, nil
}

// DeleteLoan removes a loan; an open loan's copy goes back on the shelf.
func (s *loanService) DeleteLoan(ctx context.Context, loanID int64) error {
	if err := s.loanRepo.DeleteLoan(ctx, loanID); err != nil {
		s.LogFailure(ctx, err, "Failed to delete loan", slog.Int64("loan_id", loanID))
		return err
	}
	s.LogInfo(ctx, "Loan deleted", slog.Int64("loan_id", loanID))
	return nil
}

func (s *loanService) GetLoanByID(ctx context.Context, loanID int64) (*domain.AnnotatedLoan, error) {
	detail, err := s.loanRepo.FindLoanByID(ctx, loanID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to get loan", slog.Int64("loan_id", loanID))
		return nil, err
	}
	annotated := s.policy.Annotate(*detail, s.today())
	return &annotated, nil
}

func (s *loanService) ListLoans(ctx context.Context) ([]domain.AnnotatedLoan, error) {
	loans, err := s.loanRepo.ListLoans(ctx)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to list loans")
		return nil, err
	}
	return s.annotate(loans), nil
}

func (s *loanService) ListOpenLoans(ctx context.Context) ([]domain.AnnotatedLoan, error) {
	loans, err := s.loanRepo.ListOpenLoans(ctx)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to list open loans")
		return nil, err
	}
	return s.annotate(loans), nil
}

// ListOverdueLoans returns open loans older than the loan period, oldest first.
func (s *loanService) ListOverdueLoans(ctx context.Context) ([]domain.AnnotatedLoan, error) {
	loans, err := s.loanRepo.ListOverdueLoans(ctx, s.policy.OverdueCutoff(s.today()))
	if err != nil {
		s.LogFailure(ctx, err, "Failed to list overdue loans")
		return nil, err
	}
	return s.annotate(loans), nil
}

func (s *loanService) ListMemberLoans(ctx context.Context, memberID int64) ([]domain.AnnotatedLoan, error) {
	exists, err := s.members.MemberExists(ctx, memberID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to check member", slog.Int64("member_id", memberID))
		return nil, err
	}
	if !exists {
		return nil, apperrors.Wrap(apperrors.ErrMemberNotFound, fmt.Sprintf("member %d not found", memberID))
	}

	loans, err := s.loanRepo.ListLoansByMember(ctx, memberID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to list member loans", slog.Int64("member_id", memberID))
		return nil, err
	}
	return s.annotate(loans), nil
}

func (s *loanService) annotate(loans []domain.LoanDetail) []domain.AnnotatedLoan {
	today := s.today()
	annotated := make([]domain.AnnotatedLoan, len(loans))
	for i, l := range loans {
		annotated[i] = s.policy.Annotate(l, today)
	}
	return annotated
}
