package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/lending_catalog/internal/core/domain"
	portsrepo "github.com/SscSPs/lending_catalog/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/lending_catalog/internal/core/ports/services"
	"github.com/SscSPs/lending_catalog/internal/validation"
)

const (
	DefaultTopLimit = 5
	MaxTopLimit     = 50
)

var topLimitRule = fmt.Sprintf("min=1,max=%d", MaxTopLimit)

// reportingService computes the catalog statistics on demand
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	loans         portssvc.LoanReaderSvc
}

// NewReportingService creates a new reporting service. Overdue figures are
// taken from the loan engine so they share its policy and clock.
func NewReportingService(repo portsrepo.ReportingRepository, loans portssvc.LoanReaderSvc) portssvc.ReportingService {
	return &reportingService{
		reportingRepo: repo,
		loans:         loans,
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// Overview returns totals, open/closed loan counts, available copies and
// the utilization rate.
func (s *reportingService) Overview(ctx context.Context) (*domain.StatsOverview, error) {
	totals, err := s.reportingRepo.GetTotals(ctx)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to get totals")
		return nil, err
	}

	counts, err := s.reportingRepo.GetLoanCounts(ctx)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to get loan counts")
		return nil, err
	}

	available, err := s.reportingRepo.SumAvailableCopies(ctx)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to sum available copies")
		return nil, err
	}

	return &domain.StatsOverview{
		Totals:          totals,
		Loans:           counts,
		AvailableCopies: available,
		UtilizationRate: domain.UtilizationRate(counts.Open, available),
	}, nil
}

func (s *reportingService) TopMembers(ctx context.Context, limit int) ([]domain.MemberLoanCount, error) {
	if err := validation.Var("limit", limit, topLimitRule); err != nil {
		s.LogFailure(ctx, err, "Invalid top members limit", slog.Int("limit", limit))
		return nil, err
	}

	members, err := s.reportingRepo.TopMembers(ctx, limit)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to rank members", slog.Int("limit", limit))
		return nil, err
	}
	return members, nil
}

func (s *reportingService) TopItems(ctx context.Context, limit int) ([]domain.ItemLoanCount, error) {
	if err := validation.Var("limit", limit, topLimitRule); err != nil {
		s.LogFailure(ctx, err, "Invalid top items limit", slog.Int("limit", limit))
		return nil, err
	}

	items, err := s.reportingRepo.TopItems(ctx, limit)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to rank items", slog.Int("limit", limit))
		return nil, err
	}
	return items, nil
}

func (s *reportingService) OverdueReport(ctx context.Context) ([]domain.AnnotatedLoan, error) {
	return s.loans.ListOverdueLoans(ctx)
}
