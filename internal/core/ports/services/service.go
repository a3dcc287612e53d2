package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used by both front-ends: the HTTP handlers and the text menu.
type ServiceContainer struct {
	Member    MemberSvcFacade
	Item      ItemSvcFacade
	Loan      LoanSvcFacade
	Reporting ReportingService
}
