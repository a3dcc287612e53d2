package repositories

import (
	"context"

	"github.com/SscSPs/lending_catalog/internal/core/domain"
)

// ReportingRepository defines the read-only rollup queries
type ReportingRepository interface {
	// GetTotals counts members, items and loans.
	GetTotals(ctx context.Context) (domain.Totals, error)

	// GetLoanCounts splits loans into open and closed.
	GetLoanCounts(ctx context.Context) (domain.LoanCounts, error)

	// SumAvailableCopies sums available copies over all items, 0 if there are none.
	SumAvailableCopies(ctx context.Context) (int64, error)

	// TopMembers ranks members with at least one loan by loan count desc, id asc.
	TopMembers(ctx context.Context, limit int) ([]domain.MemberLoanCount, error)

	// TopItems ranks items with at least one loan by loan count desc, id asc.
	TopItems(ctx context.Context, limit int) ([]domain.ItemLoanCount, error)
}
