package dto

import "github.com/SscSPs/lending_catalog/internal/core/domain"

// TopListParams defines the query parameters of the top-N endpoints.
type TopListParams struct {
	Limit int `form:"limit,default=5" validate:"min=1,max=50"`
}

// StatsOverviewResponse is the catalog-wide rollup.
type StatsOverviewResponse struct {
	Totals          domain.Totals     `json:"totals"`
	Loans           domain.LoanCounts `json:"loans"`
	AvailableCopies int64             `json:"availableCopies"`
	UtilizationRate float64           `json:"utilizationRate"`
}

// ToStatsOverviewResponse converts a domain.StatsOverview
func ToStatsOverviewResponse(o *domain.StatsOverview) StatsOverviewResponse {
	return StatsOverviewResponse{
		Totals:          o.Totals,
		Loans:           o.Loans,
		AvailableCopies: o.AvailableCopies,
		UtilizationRate: o.UtilizationRate.InexactFloat64(),
	}
}

// TopMembersResponse wraps the member ranking.
type TopMembersResponse struct {
	Members []domain.MemberLoanCount `json:"members"`
}

// TopItemsResponse wraps the item ranking.
type TopItemsResponse struct {
	Items []domain.ItemLoanCount `json:"items"`
}
