package dto

import (
	"github.com/SscSPs/lending_catalog/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMemberRequest defines the data needed to register a member.
type CreateMemberRequest struct {
	FirstName string `json:"firstName" validate:"notblank,max=100"`
	LastName  string `json:"lastName" validate:"notblank,max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
}

// UpdateMemberRequest replaces the editable fields of a member.
// Registration date and fine balance cannot be changed.
type UpdateMemberRequest struct {
	FirstName string `json:"firstName" validate:"notblank,max=100"`
	LastName  string `json:"lastName" validate:"notblank,max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
}

// MemberResponse is the API representation of a member.
type MemberResponse struct {
	MemberID     int64           `json:"memberID"`
	FirstName    string          `json:"firstName"`
	LastName     string          `json:"lastName"`
	Email        string          `json:"email"`
	RegisteredOn string          `json:"registeredOn"`
	FineBalance  decimal.Decimal `json:"fineBalance"`
}

// ToMemberResponse converts a domain.Member to its response DTO
func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		MemberID:     m.MemberID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		RegisteredOn: formatDate(m.RegisteredOn),
		FineBalance:  m.FineBalance,
	}
}

// ToMemberResponses converts a slice of domain.Member
func ToMemberResponses(members []domain.Member) []MemberResponse {
	resp := make([]MemberResponse, len(members))
	for i := range members {
		resp[i] = ToMemberResponse(&members[i])
	}
	return resp
}

// CreatedMemberResponse acknowledges a member creation.
type CreatedMemberResponse struct {
	MemberID int64  `json:"memberID"`
	Message  string `json:"message"`
}
