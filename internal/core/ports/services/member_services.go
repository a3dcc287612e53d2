package services

import (
	"context"

	"github.com/SscSPs/lending_catalog/internal/core/domain"
	"github.com/SscSPs/lending_catalog/internal/dto"
)

// MemberReaderSvc defines read operations for members
type MemberReaderSvc interface {
	GetMemberByID(ctx context.Context, memberID int64) (*domain.Member, error)
	ListMembers(ctx context.Context) ([]domain.Member, error)
	SearchMembers(ctx context.Context, term string) ([]domain.Member, error)
}

// MemberWriterSvc defines write operations for members
type MemberWriterSvc interface {
	CreateMember(ctx context.Context, req dto.CreateMemberRequest) (*domain.Member, error)
	UpdateMember(ctx context.Context, memberID int64, req dto.UpdateMemberRequest) (*domain.Member, error)
	DeleteMember(ctx context.Context, memberID int64) error
}

// MembershipCheckerSvc exposes the membership queries the loan engine relies on
type MembershipCheckerSvc interface {
	MemberExists(ctx context.Context, memberID int64) (bool, error)
	CountActiveLoans(ctx context.Context, memberID int64) (int, error)
}

// MemberSvcFacade combines all member-related service interfaces
type MemberSvcFacade interface {
	MemberReaderSvc
	MemberWriterSvc
	MembershipCheckerSvc
}
