package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/lending_catalog/internal/core/ports/services"
	"github.com/SscSPs/lending_catalog/internal/dto"
	"github.com/SscSPs/lending_catalog/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles the statistics endpoints.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the statistics routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	stats := rg.Group("/stats")
	{
		stats.GET("/overview", h.overview)
		stats.GET("/top-members", h.topMembers)
		stats.GET("/top-items", h.topItems)
	}
}

// overview godoc
// @Summary Catalog overview
// @Description Totals, open and closed loans, available copies and utilization rate (percent, one decimal)
// @Tags stats
// @Produce json
// @Success 200 {object} dto.StatsOverviewResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stats/overview [get]
func (h *reportingHandler) overview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	overview, err := h.reportingService.Overview(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to compute overview")
		return
	}

	c.JSON(http.StatusOK, dto.ToStatsOverviewResponse(overview))
}

// topMembers godoc
// @Summary Most active members
// @Description Members ranked by total loans; members without loans are left out
// @Tags stats
// @Produce json
// @Param limit query int false "Number of members (1-50)" default(5)
// @Success 200 {object} dto.TopMembersResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stats/top-members [get]
func (h *reportingHandler) topMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.TopListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "limit")
		return
	}

	members, err := h.reportingService.TopMembers(c.Request.Context(), params.Limit)
	if err != nil {
		respondError(c, logger, err, "Failed to rank members")
		return
	}

	c.JSON(http.StatusOK, dto.TopMembersResponse{Members: members})
}

// topItems godoc
// @Summary Most borrowed items
// @Description Items ranked by total loans; items never lent are left out
// @Tags stats
// @Produce json
// @Param limit query int false "Number of items (1-50)" default(5)
// @Success 200 {object} dto.TopItemsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stats/top-items [get]
func (h *reportingHandler) topItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.TopListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "limit")
		return
	}

	items, err := h.reportingService.TopItems(c.Request.Context(), params.Limit)
	if err != nil {
		respondError(c, logger, err, "Failed to rank items")
		return
	}

	c.JSON(http.StatusOK, dto.TopItemsResponse{Items: items})
}
