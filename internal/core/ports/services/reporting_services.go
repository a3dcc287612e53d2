package services

import (
	"context"

	"github.com/SscSPs/lending_catalog/internal/core/domain"
)

// ReportingService defines the read-only statistics. Nothing is cached.
type ReportingService interface {
	Overview(ctx context.Context) (*domain.StatsOverview, error)
	TopMembers(ctx context.Context, limit int) ([]domain.MemberLoanCount, error)
	TopItems(ctx context.Context, limit int) ([]domain.ItemLoanCount, error)
	// OverdueReport lists overdue loans with their accrued fines, oldest first.
	OverdueReport(ctx context.Context) ([]domain.AnnotatedLoan, error)
}
