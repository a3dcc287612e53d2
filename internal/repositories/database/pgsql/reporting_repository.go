package pgsql

import (
	"context"

	"github.com/SscSPs/lending_catalog/internal/apperrors"
	"github.com/SscSPs/lending_catalog/internal/core/domain"
	portsrepo "github.com/SscSPs/lending_catalog/internal/core/ports/repositories"
	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetTotals counts members, items and loans
func (r *reportingRepository) GetTotals(ctx context.Context) (domain.Totals, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM members),
			(SELECT COUNT(*) FROM items),
			(SELECT COUNT(*) FROM loans);
	`
	var totals domain.Totals
	if err := r.Pool.QueryRow(ctx, query).Scan(&totals.Members, &totals.Items, &totals.Loans); err != nil {
		return domain.Totals{}, apperrors.NewStorageError("error querying totals", err)
	}
	return totals, nil
}

// GetLoanCounts splits loans into open and closed
func (r *reportingRepository) GetLoanCounts(ctx context.Context) (domain.LoanCounts, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE return_date IS NULL),
			COUNT(*) FILTER (WHERE return_date IS NOT NULL)
		FROM loans;
	`
	var counts domain.LoanCounts
	if err := r.Pool.QueryRow(ctx, query).Scan(&counts.Open, &counts.Closed); err != nil {
		return domain.LoanCounts{}, apperrors.NewStorageError("error querying loan counts", err)
	}
	return counts, nil
}

// SumAvailableCopies sums available copies across the catalog
func (r *reportingRepository) SumAvailableCopies(ctx context.Context) (int64, error) {
	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COALESCE(SUM(available_copies), 0) FROM items;`).Scan(&total); err != nil {
		return 0, apperrors.NewStorageError("error summing available copies", err)
	}
	return total, nil
}

// TopMembers ranks borrowers by total loans. The inner join drops members
// who never borrowed.
func (r *reportingRepository) TopMembers(ctx context.Context, limit int) ([]domain.MemberLoanCount, error) {
	query, args, err := dialect.From(goqu.T("loans").As("l")).
		Join(goqu.T("members").As("m"), goqu.On(goqu.I("m.member_id").Eq(goqu.I("l.member_id")))).
		Select(goqu.I("m.member_id"), goqu.I("m.first_name"), goqu.I("m.last_name"), goqu.COUNT(goqu.I("l.loan_id")).As("loan_count")).
		GroupBy(goqu.I("m.member_id"), goqu.I("m.first_name"), goqu.I("m.last_name")).
		Order(goqu.C("loan_count").Desc(), goqu.I("m.member_id").Asc()).
		Limit(uint(limit)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewStorageError("error building top members query", err)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStorageError("error querying top members", err)
	}
	defer rows.Close()

	result := []domain.MemberLoanCount{}
	for rows.Next() {
		var row domain.MemberLoanCount
		if err := rows.Scan(&row.MemberID, &row.FirstName, &row.LastName, &row.LoanCount); err != nil {
			return nil, apperrors.NewStorageError("error scanning top members row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("error iterating top members rows", err)
	}
	return result, nil
}

// TopItems ranks items by how often they were lent.
func (r *reportingRepository) TopItems(ctx context.Context, limit int) ([]domain.ItemLoanCount, error) {
	query, args, err := dialect.From(goqu.T("loans").As("l")).
		Join(goqu.T("items").As("i"), goqu.On(goqu.I("i.item_id").Eq(goqu.I("l.item_id")))).
		Select(goqu.I("i.item_id"), goqu.I("i.title"), goqu.I("i.publisher"), goqu.COUNT(goqu.I("l.loan_id")).As("loan_count")).
		GroupBy(goqu.I("i.item_id"), goqu.I("i.title"), goqu.I("i.publisher")).
		Order(goqu.C("loan_count").Desc(), goqu.I("i.item_id").Asc()).
		Limit(uint(limit)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewStorageError("error building top items query", err)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStorageError("error querying top items", err)
	}
	defer rows.Close()

	result := []domain.ItemLoanCount{}
	for rows.Next() {
		var row domain.ItemLoanCount
		if err := rows.Scan(&row.ItemID, &row.Title, &row.Publisher, &row.LoanCount); err != nil {
			return nil, apperrors.NewStorageError("error scanning top items row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("error iterating top items rows", err)
	}
	return result, nil
}
