package repositories

import (
	"context"

	"github.com/SscSPs/lending_catalog/internal/core/domain"
)

// MemberReader defines read operations for member data
type MemberReader interface {
	// FindMemberByID retrieves a member; apperrors.ErrMemberNotFound if absent.
	FindMemberByID(ctx context.Context, memberID int64) (*domain.Member, error)

	// ListMembers returns every member ordered by last name, first name, id.
	ListMembers(ctx context.Context) ([]domain.Member, error)

	// SearchMembers matches term case-insensitively against first name, last name and email.
	SearchMembers(ctx context.Context, term string) ([]domain.Member, error)

	// MemberExists reports whether a member row exists.
	MemberExists(ctx context.Context, memberID int64) (bool, error)
}

// MemberWriter defines write operations for member data
type MemberWriter interface {
	// SaveMember inserts a new member and returns its generated id.
	SaveMember(ctx context.Context, member domain.Member) (int64, error)

	// UpdateMember changes the name and email of an existing member.
	UpdateMember(ctx context.Context, member domain.Member) error

	// DeleteMember removes a member only if no loan references it.
	// Returns a referential conflict carrying the loan count otherwise.
	DeleteMember(ctx context.Context, memberID int64) error
}

// MemberLoanCounter defines the loan counts used by the borrowing rules
type MemberLoanCounter interface {
	// CountActiveLoans counts the member's loans with no return date.
	CountActiveLoans(ctx context.Context, memberID int64) (int, error)

	// CountLoansByMember counts all loans, open or closed, of the member.
	CountLoansByMember(ctx context.Context, memberID int64) (int, error)
}

// MemberRepositoryFacade combines all member-related repository interfaces
type MemberRepositoryFacade interface {
	MemberReader
	MemberWriter
	MemberLoanCounter
}
