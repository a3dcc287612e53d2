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

// memberService implements the MemberSvcFacade interface
type memberService struct {
	BaseService
	memberRepo portsrepo.MemberRepositoryFacade
	now        func() time.Time
}

// MemberServiceOption is a functional option for configuring the member service
type MemberServiceOption func(*memberService)

// WithMemberClock sets the clock used for registration dates
func WithMemberClock(now func() time.Time) MemberServiceOption {
	return func(s *memberService) {
		s.now = now
	}
}

// NewMemberService creates a new member service with the provided options
func NewMemberService(repo portsrepo.MemberRepositoryFacade, options ...MemberServiceOption) portssvc.MemberSvcFacade {
	svc := &memberService{
		memberRepo: repo,
		now:        time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.MemberSvcFacade = (*memberService)(nil)

func (s *memberService) CreateMember(ctx context.Context, req dto.CreateMemberRequest) (*domain.Member, error) {
	if err := validation.Struct(req); err != nil {
		s.LogFailure(ctx, err, "Invalid member creation request")
		return nil, err
	}

	member := domain.Member{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        strings.TrimSpace(req.Email),
		RegisteredOn: domain.DateOf(s.now()),
		FineBalance:  decimal.Zero,
	}

	id, err := s.memberRepo.SaveMember(ctx, member)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to save member", slog.String("email", member.Email))
		return nil, err
	}
	member.MemberID = id

	s.LogInfo(ctx, "Member registered", slog.Int64("member_id", id))
	return &member, nil
}

func (s *memberService) GetMemberByID(ctx context.Context, memberID int64) (*domain.Member, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to get member", slog.Int64("member_id", memberID))
		return nil, err
	}
	return member, nil
}

func (s *memberService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	members, err := s.memberRepo.ListMembers(ctx)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to list members")
		return nil, err
	}
	return members, nil
}

func (s *memberService) SearchMembers(ctx context.Context, term string) ([]domain.Member, error) {
	members, err := s.memberRepo.SearchMembers(ctx, strings.TrimSpace(term))
	if err != nil {
		s.LogFailure(ctx, err, "Failed to search members", slog.String("term", term))
		return nil, err
	}
	return members, nil
}

func (s *memberService) UpdateMember(ctx context.Context, memberID int64, req dto.UpdateMemberRequest) (*domain.Member, error) {
	if err := validation.Struct(req); err != nil {
		s.LogFailure(ctx, err, "Invalid member update request", slog.Int64("member_id", memberID))
		return nil, err
	}

	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to find member for update", slog.Int64("member_id", memberID))
		return nil, err
	}

	member.FirstName = strings.TrimSpace(req.FirstName)
	member.LastName = strings.TrimSpace(req.LastName)
	member.Email = strings.TrimSpace(req.Email)

	if err := s.memberRepo.UpdateMember(ctx, *member); err != nil {
		s.LogFailure(ctx, err, "Failed to update member", slog.Int64("member_id", memberID))
		return nil, err
	}

	s.LogInfo(ctx, "Member updated", slog.Int64("member_id", memberID))
	return member, nil
}

// DeleteMember refuses to delete a member referenced by any loan, open or closed.
func (s *memberService) DeleteMember(ctx context.Context, memberID int64) error {
	exists, err := s.memberRepo.MemberExists(ctx, memberID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to check member", slog.Int64("member_id", memberID))
		return err
	}
	if !exists {
		return apperrors.Wrap(apperrors.ErrMemberNotFound, fmt.Sprintf("member %d not found", memberID))
	}

	loans, err := s.memberRepo.CountLoansByMember(ctx, memberID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to count member loans", slog.Int64("member_id", memberID))
		return err
	}
	if loans > 0 {
		err := apperrors.NewReferentialConflict("member", loans)
		s.LogFailure(ctx, err, "Member still has loans", slog.Int64("member_id", memberID))
		return err
	}

	if err := s.memberRepo.DeleteMember(ctx, memberID); err != nil {
		s.LogFailure(ctx, err, "Failed to delete member", slog.Int64("member_id", memberID))
		return err
	}

	s.LogInfo(ctx, "Member deleted", slog.Int64("member_id", memberID))
	return nil
}

func (s *memberService) MemberExists(ctx context.Context, memberID int64) (bool, error) {
	return s.memberRepo.MemberExists(ctx, memberID)
}

func (s *memberService) CountActiveLoans(ctx context.Context, memberID int64) (int, error) {
	return s.memberRepo.CountActiveLoans(ctx, memberID)
}
