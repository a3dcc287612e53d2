package pgsql

import (
	portsrepo "github.com/SscSPs/lending_catalog/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	memberRepo := newPgxMemberRepository(dbPool)
	itemRepo := newPgxItemRepository(dbPool)
	loanRepo := newPgxLoanRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		MemberRepo:    memberRepo,
		ItemRepo:      itemRepo,
		LoanRepo:      loanRepo,
		ReportingRepo: reportingRepo,
		Health:        &BaseRepository{Pool: dbPool},
	}
}
