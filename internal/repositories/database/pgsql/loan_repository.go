package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/lending_catalog/internal/apperrors"
	"github.com/SscSPs/lending_catalog/internal/core/domain"
	portsrepo "github.com/SscSPs/lending_catalog/internal/core/ports/repositories"
	"github.com/SscSPs/lending_catalog/internal/models"
	"github.com/SscSPs/lending_catalog/internal/utils/mapping"
	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxLoanRepository struct {
	BaseRepository
}

// newPgxLoanRepository creates a new repository for loans.
func newPgxLoanRepository(pool *pgxpool.Pool) *PgxLoanRepository {
	return &PgxLoanRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LoanRepositoryFacade = (*PgxLoanRepository)(nil)

// loanDetails selects loans joined with the member and item they reference.
func loanDetails() *goqu.SelectDataset {
	return dialect.From(goqu.T("loans").As("l")).
		Join(goqu.T("members").As("m"), goqu.On(goqu.I("m.member_id").Eq(goqu.I("l.member_id")))).
		Join(goqu.T("items").As("i"), goqu.On(goqu.I("i.item_id").Eq(goqu.I("l.item_id")))).
		Select(
			goqu.I("l.loan_id"), goqu.I("l.member_id"), goqu.I("l.item_id"),
			goqu.I("l.loan_date"), goqu.I("l.return_date"), goqu.I("l.fine"),
			goqu.I("m.first_name"), goqu.I("m.last_name"),
			goqu.I("i.title"), goqu.I("i.publisher"),
		)
}

var (
	newestFirst = []exp.OrderedExpression{goqu.I("l.loan_date").Desc(), goqu.I("l.loan_id").Desc()}
	oldestFirst = []exp.OrderedExpression{goqu.I("l.loan_date").Asc(), goqu.I("l.loan_id").Asc()}
)

func scanLoanDetail(row scanner) (models.LoanDetail, error) {
	var m models.LoanDetail
	err := row.Scan(
		&m.LoanID, &m.MemberID, &m.ItemID,
		&m.LoanDate, &m.ReturnDate, &m.Fine,
		&m.MemberFirstName, &m.MemberLastName,
		&m.ItemTitle, &m.ItemPublisher,
	)
	return m, err
}

// FindLoanByID retrieves one loan with its member and item details.
func (r *PgxLoanRepository) FindLoanByID(ctx context.Context, loanID int64) (*domain.LoanDetail, error) {
	query, args, err := loanDetails().Where(goqu.I("l.loan_id").Eq(loanID)).Prepared(true).ToSQL()
	if err != nil {
		return nil, apperrors.NewStorageError("failed to build loan query", err)
	}

	m, err := scanLoanDetail(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(apperrors.ErrLoanNotFound, fmt.Sprintf("loan %d not found", loanID))
		}
		return nil, apperrors.NewStorageError(fmt.Sprintf("failed to find loan %d", loanID), err)
	}
	detail := mapping.ToDomainLoanDetail(m)
	return &detail, nil
}

// ListLoans returns every loan, newest first.
func (r *PgxLoanRepository) ListLoans(ctx context.Context) ([]domain.LoanDetail, error) {
	return r.queryLoans(ctx, loanDetails().Order(newestFirst...), "failed to list loans")
}

// ListOpenLoans returns loans not yet returned, oldest first.
func (r *PgxLoanRepository) ListOpenLoans(ctx context.Context) ([]domain.LoanDetail, error) {
	ds := loanDetails().
		Where(goqu.I("l.return_date").IsNull()).
		Order(oldestFirst...)
	return r.queryLoans(ctx, ds, "failed to list open loans")
}

// ListOverdueLoans returns open loans dated before cutoff, oldest first.
func (r *PgxLoanRepository) ListOverdueLoans(ctx context.Context, cutoff time.Time) ([]domain.LoanDetail, error) {
	ds := loanDetails().
		Where(
			goqu.I("l.return_date").IsNull(),
			goqu.I("l.loan_date").Lt(domain.DateOf(cutoff)),
		).
		Order(oldestFirst...)
	return r.queryLoans(ctx, ds, "failed to list overdue loans")
}

// ListLoansByMember returns the member's loans, newest first.
func (r *PgxLoanRepository) ListLoansByMember(ctx context.Context, memberID int64) ([]domain.LoanDetail, error) {
	ds := loanDetails().
		Where(goqu.I("l.member_id").Eq(memberID)).
		Order(newestFirst...)
	return r.queryLoans(ctx, ds, fmt.Sprintf("failed to list loans of member %d", memberID))
}

func (r *PgxLoanRepository) queryLoans(ctx context.Context, ds *goqu.SelectDataset, errMsg string) ([]domain.LoanDetail, error) {
	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, apperrors.NewStorageError(errMsg, err)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStorageError(errMsg, err)
	}
	defer rows.Close()

	loans := []models.LoanDetail{}
	for rows.Next() {
		m, err := scanLoanDetail(rows)
		if err != nil {
			return nil, apperrors.NewStorageError(errMsg, err)
		}
		loans = append(loans, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError(errMsg, err)
	}
	return mapping.ToDomainLoanDetailSlice(loans), nil
}

// OpenLoan records a new loan in one transaction. The member row is locked so
// concurrent borrows by the same member serialise on the active loan recount.
func (r *PgxLoanRepository) OpenLoan(ctx context.Context, loan domain.Loan, activeLimit int) (int64, error) {
	m := mapping.ToModelLoan(loan)

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	var lockedID int64
	err = tx.QueryRow(ctx, `SELECT member_id FROM members WHERE member_id = $1 FOR UPDATE;`, m.MemberID).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.Wrap(apperrors.ErrMemberNotFound, fmt.Sprintf("member %d not found", m.MemberID))
		}
		return 0, apperrors.NewStorageError(fmt.Sprintf("failed to lock member %d", m.MemberID), err)
	}

	cmdTag, err := tx.Exec(ctx, `
		UPDATE items
		SET available_copies = available_copies - 1
		WHERE item_id = $1 AND available_copies > 0;
	`, m.ItemID)
	if err != nil {
		return 0, apperrors.NewStorageError(fmt.Sprintf("failed to take a copy of item %s", m.ItemID), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return 0, r.unavailableOrMissing(ctx, tx, m.ItemID)
	}

	active, err := countWhere(ctx, tx, "loans", goqu.C("member_id").Eq(m.MemberID), goqu.C("return_date").IsNull())
	if err != nil {
		return 0, err
	}
	if active >= activeLimit {
		return 0, apperrors.Wrap(apperrors.ErrLoanLimitExceeded,
			fmt.Sprintf("member %d already has %d active loans (limit %d)", m.MemberID, active, activeLimit))
	}

	var loanID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO loans (member_id, item_id, loan_date, return_date, fine)
		VALUES ($1, $2, $3, NULL, $4)
		RETURNING loan_id;
	`, m.MemberID, m.ItemID, m.LoanDate, m.Fine).Scan(&loanID)
	if err != nil {
		return 0, mapWriteError(err, "failed to insert loan")
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return loanID, nil
}

func (r *PgxLoanRepository) unavailableOrMissing(ctx context.Context, tx pgx.Tx, itemID string) error {
	count, err := countWhere(ctx, tx, "items", goqu.C("item_id").Eq(itemID))
	if err != nil {
		return err
	}
	if count == 0 {
		return apperrors.Wrap(apperrors.ErrItemNotFound, fmt.Sprintf("item %s not found", itemID))
	}
	return apperrors.Wrap(apperrors.ErrItemUnavailable, fmt.Sprintf("item %s has no copy available", itemID))
}

// SettleReturn closes the loan, gives the copy back and charges the fine, all
// in one transaction. Only the first of two concurrent returns succeeds.
func (r *PgxLoanRepository) SettleReturn(ctx context.Context, loanID int64, returnDate time.Time, fine decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var memberID int64
	var itemID string
	err = tx.QueryRow(ctx, `
		UPDATE loans
		SET return_date = $2, fine = $3
		WHERE loan_id = $1 AND return_date IS NULL
		RETURNING member_id, item_id;
	`, loanID, domain.DateOf(returnDate), fine).Scan(&memberID, &itemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return r.closedOrMissing(ctx, tx, loanID)
		}
		return apperrors.NewStorageError(fmt.Sprintf("failed to close loan %d", loanID), err)
	}

	if _, err := tx.Exec(ctx, `UPDATE items SET available_copies = available_copies + 1 WHERE item_id = $1;`, itemID); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to return a copy of item %s", itemID), err)
	}

	if fine.IsPositive() {
		if _, err := tx.Exec(ctx, `UPDATE members SET fine_balance = fine_balance + $2 WHERE member_id = $1;`, memberID, fine); err != nil {
			return apperrors.NewStorageError(fmt.Sprintf("failed to charge fine to member %d", memberID), err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxLoanRepository) closedOrMissing(ctx context.Context, tx pgx.Tx, loanID int64) error {
	count, err := countWhere(ctx, tx, "loans", goqu.C("loan_id").Eq(loanID))
	if err != nil {
		return err
	}
	if count == 0 {
		return apperrors.Wrap(apperrors.ErrLoanNotFound, fmt.Sprintf("loan %d not found", loanID))
	}
	return apperrors.Wrap(apperrors.ErrAlreadyReturned, fmt.Sprintf("loan %d is already returned", loanID))
}

// DeleteLoan removes the loan. Deleting an open loan puts its copy back;
// the fine of a closed loan stays on the member's balance.
func (r *PgxLoanRepository) DeleteLoan(ctx context.Context, loanID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var itemID string
	var wasOpen bool
	err = tx.QueryRow(ctx, `
		DELETE FROM loans
		WHERE loan_id = $1
		RETURNING item_id, return_date IS NULL;
	`, loanID).Scan(&itemID, &wasOpen)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.Wrap(apperrors.ErrLoanNotFound, fmt.Sprintf("loan %d not found", loanID))
		}
		return apperrors.NewStorageError(fmt.Sprintf("failed to delete loan %d", loanID), err)
	}

	if wasOpen {
		if _, err := tx.Exec(ctx, `UPDATE items SET available_copies = available_copies + 1 WHERE item_id = $1;`, itemID); err != nil {
			return apperrors.NewStorageError(fmt.Sprintf("failed to return a copy of item %s", itemID), err)
		}
	}

	return r.Commit(ctx, tx)
}
