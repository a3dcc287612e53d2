package mapping

import (
	"github.com/SscSPs/lending_catalog/internal/core/domain"
	"github.com/SscSPs/lending_catalog/internal/models"
)

// ToModelMember converts a domain Member to a model Member
func ToModelMember(d domain.Member) models.Member {
	return models.Member{
		MemberID:     d.MemberID,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Email:        d.Email,
		RegisteredOn: d.RegisteredOn,
		FineBalance:  d.FineBalance,
	}
}

// ToDomainMember converts a model Member to a domain Member
func ToDomainMember(m models.Member) domain.Member {
	return domain.Member{
		MemberID:     m.MemberID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		RegisteredOn: m.RegisteredOn,
		FineBalance:  m.FineBalance,
	}
}

// ToDomainMemberSlice converts a slice of model Members
func ToDomainMemberSlice(ms []models.Member) []domain.Member {
	ds := make([]domain.Member, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMember(m)
	}
	return ds
}
