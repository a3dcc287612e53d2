package mapping

import (
	"database/sql"

	"github.com/SscSPs/lending_catalog/internal/core/domain"
	"github.com/SscSPs/lending_catalog/internal/models"
)

// ToModelLoan converts a domain Loan to a model Loan
func ToModelLoan(d domain.Loan) models.Loan {
	m := models.Loan{
		LoanID:   d.LoanID,
		MemberID: d.MemberID,
		ItemID:   d.ItemID,
		LoanDate: d.LoanDate,
		Fine:     d.Fine,
	}
	if d.ReturnDate != nil {
		m.ReturnDate = sql.NullTime{Time: *d.ReturnDate, Valid: true}
	}
	return m
}

// ToDomainLoan converts a model Loan to a domain Loan
func ToDomainLoan(m models.Loan) domain.Loan {
	d := domain.Loan{
		LoanID:   m.LoanID,
		MemberID: m.MemberID,
		ItemID:   m.ItemID,
		LoanDate: domain.DateOf(m.LoanDate),
		Fine:     m.Fine,
	}
	if m.ReturnDate.Valid {
		returned := domain.DateOf(m.ReturnDate.Time)
		d.ReturnDate = &returned
	}
	return d
}

// ToDomainLoanDetail converts a joined loan row
func ToDomainLoanDetail(m models.LoanDetail) domain.LoanDetail {
	return domain.LoanDetail{
		Loan:            ToDomainLoan(m.Loan),
		MemberFirstName: m.MemberFirstName,
		MemberLastName:  m.MemberLastName,
		ItemTitle:       m.ItemTitle,
		ItemPublisher:   m.ItemPublisher,
	}
}

// ToDomainLoanDetailSlice converts a slice of joined loan rows
func ToDomainLoanDetailSlice(ms []models.LoanDetail) []domain.LoanDetail {
	ds := make([]domain.LoanDetail, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLoanDetail(m)
	}
	return ds
}
