package services

import (
	portsrepo "github.com/SscSPs/lending_catalog/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/lending_catalog/internal/core/ports/services"
	"github.com/SscSPs/lending_catalog/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Member = NewMemberService(repos.MemberRepo)
	container.Item = NewItemService(repos.ItemRepo)

	// The loan engine depends on the membership and catalog checks
	container.Loan = NewLoanService(
		repos.LoanRepo,
		container.Member,
		container.Item,
		WithLoanPolicy(cfg.LoanPolicy()),
	)

	container.Reporting = NewReportingService(repos.ReportingRepo, container.Loan)

	return container
}
