package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/lending_catalog/internal/apperrors"
	"github.com/SscSPs/lending_catalog/internal/core/domain"
	portsrepo "github.com/SscSPs/lending_catalog/internal/core/ports/repositories"
	"github.com/SscSPs/lending_catalog/internal/models"
	"github.com/SscSPs/lending_catalog/internal/utils/mapping"
	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var memberColumns = []any{"member_id", "first_name", "last_name", "email", "registered_on", "fine_balance"}

type PgxMemberRepository struct {
	BaseRepository
}

// newPgxMemberRepository creates a new repository for member data.
func newPgxMemberRepository(pool *pgxpool.Pool) *PgxMemberRepository {
	return &PgxMemberRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxMemberRepository implements portsrepo.MemberRepositoryFacade
var _ portsrepo.MemberRepositoryFacade = (*PgxMemberRepository)(nil)

func scanMember(row scanner) (models.Member, error) {
	var m models.Member
	err := row.Scan(&m.MemberID, &m.FirstName, &m.LastName, &m.Email, &m.RegisteredOn, &m.FineBalance)
	return m, err
}

// SaveMember inserts a new member and returns the generated id.
func (r *PgxMemberRepository) SaveMember(ctx context.Context, member domain.Member) (int64, error) {
	m := mapping.ToModelMember(member)

	query := `
		INSERT INTO members (first_name, last_name, email, registered_on, fine_balance)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING member_id;
	`
	var id int64
	if err := r.Pool.QueryRow(ctx, query, m.FirstName, m.LastName, m.Email, m.RegisteredOn, m.FineBalance).Scan(&id); err != nil {
		return 0, mapWriteError(err, "failed to save member")
	}
	return id, nil
}

// FindMemberByID retrieves a member by its ID.
func (r *PgxMemberRepository) FindMemberByID(ctx context.Context, memberID int64) (*domain.Member, error) {
	query := `
		SELECT member_id, first_name, last_name, email, registered_on, fine_balance
		FROM members
		WHERE member_id = $1;
	`
	m, err := scanMember(r.Pool.QueryRow(ctx, query, memberID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(apperrors.ErrMemberNotFound, fmt.Sprintf("member %d not found", memberID))
		}
		return nil, apperrors.NewStorageError(fmt.Sprintf("failed to find member %d", memberID), err)
	}
	member := mapping.ToDomainMember(m)
	return &member, nil
}

// ListMembers returns all members ordered by name.
func (r *PgxMemberRepository) ListMembers(ctx context.Context) ([]domain.Member, error) {
	ds := dialect.From("members").
		Select(memberColumns...).
		Order(goqu.C("last_name").Asc(), goqu.C("first_name").Asc(), goqu.C("member_id").Asc())
	return r.queryMembers(ctx, ds, "failed to list members")
}

// SearchMembers matches first name, last name or email.
func (r *PgxMemberRepository) SearchMembers(ctx context.Context, term string) ([]domain.Member, error) {
	ds := dialect.From("members").
		Select(memberColumns...).
		Where(matchAny(term, goqu.C("first_name"), goqu.C("last_name"), goqu.C("email"))).
		Order(goqu.C("last_name").Asc(), goqu.C("first_name").Asc(), goqu.C("member_id").Asc())
	return r.queryMembers(ctx, ds, "failed to search members")
}

func (r *PgxMemberRepository) queryMembers(ctx context.Context, ds *goqu.SelectDataset, errMsg string) ([]domain.Member, error) {
	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, apperrors.NewStorageError(errMsg, err)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStorageError(errMsg, err)
	}
	defer rows.Close()

	members := []models.Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, apperrors.NewStorageError(errMsg, err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError(errMsg, err)
	}
	return mapping.ToDomainMemberSlice(members), nil
}

// MemberExists reports whether the member row exists.
func (r *PgxMemberRepository) MemberExists(ctx context.Context, memberID int64) (bool, error) {
	count, err := countWhere(ctx, r.Pool, "members", goqu.C("member_id").Eq(memberID))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateMember changes name and email; registration date and balance are untouched.
func (r *PgxMemberRepository) UpdateMember(ctx context.Context, member domain.Member) error {
	query := `
		UPDATE members
		SET first_name = $2, last_name = $3, email = $4
		WHERE member_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, member.MemberID, member.FirstName, member.LastName, member.Email)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("failed to update member %d", member.MemberID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.Wrap(apperrors.ErrMemberNotFound, fmt.Sprintf("member %d not found", member.MemberID))
	}
	return nil
}

// DeleteMember removes the member if no loan, open or closed, references it.
func (r *PgxMemberRepository) DeleteMember(ctx context.Context, memberID int64) error {
	query := `
		DELETE FROM members m
		WHERE m.member_id = $1
		  AND NOT EXISTS (SELECT 1 FROM loans l WHERE l.member_id = m.member_id);
	`
	cmdTag, err := r.Pool.Exec(ctx, query, memberID)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("failed to delete member %d", memberID))
	}
	if cmdTag.RowsAffected() > 0 {
		return nil
	}

	loans, err := r.CountLoansByMember(ctx, memberID)
	if err != nil {
		return err
	}
	if loans > 0 {
		return apperrors.NewReferentialConflict("member", loans)
	}
	return apperrors.Wrap(apperrors.ErrMemberNotFound, fmt.Sprintf("member %d not found", memberID))
}

// CountActiveLoans counts the member's loans that have not been returned.
func (r *PgxMemberRepository) CountActiveLoans(ctx context.Context, memberID int64) (int, error) {
	return countWhere(ctx, r.Pool, "loans", goqu.C("member_id").Eq(memberID), goqu.C("return_date").IsNull())
}

// CountLoansByMember counts every loan of the member.
func (r *PgxMemberRepository) CountLoansByMember(ctx context.Context, memberID int64) (int, error) {
	return countWhere(ctx, r.Pool, "loans", goqu.C("member_id").Eq(memberID))
}
