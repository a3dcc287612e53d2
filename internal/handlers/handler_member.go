package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/lending_catalog/internal/core/ports/services"
	"github.com/SscSPs/lending_catalog/internal/dto"
	"github.com/SscSPs/lending_catalog/internal/middleware"
	"github.com/gin-gonic/gin"
)

// memberHandler handles HTTP requests related to members.
type memberHandler struct {
	memberService portssvc.MemberSvcFacade
	loanService   portssvc.LoanReaderSvc
}

// newMemberHandler creates a new memberHandler.
func newMemberHandler(ms portssvc.MemberSvcFacade, ls portssvc.LoanReaderSvc) *memberHandler {
	return &memberHandler{
		memberService: ms,
		loanService:   ls,
	}
}

// registerMemberRoutes registers routes related to members.
func registerMemberRoutes(rg *gin.RouterGroup, memberService portssvc.MemberSvcFacade, loanService portssvc.LoanReaderSvc) {
	h := newMemberHandler(memberService, loanService)

	members := rg.Group("/members")
	{
		members.GET("", h.listMembers)
		members.GET("/search", h.searchMembers)
		members.POST("", h.createMember)
		members.GET("/:id", h.getMember)
		members.GET("/:id/loans", h.listMemberLoans)
		members.PUT("/:id", h.updateMember)
		members.DELETE("/:id", h.deleteMember)
	}
}

// listMembers godoc
// @Summary List members
// @Description Lists every member ordered by last name, first name
// @Tags members
// @Produce json
// @Success 200 {array} dto.MemberResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /members [get]
func (h *memberHandler) listMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	members, err := h.memberService.ListMembers(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list members")
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberResponses(members))
}

// searchMembers godoc
// @Summary Search members
// @Description Case-insensitive substring search on first name, last name and email
// @Tags members
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {array} dto.MemberResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /members/search [get]
func (h *memberHandler) searchMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	term := c.Query("q")

	members, err := h.memberService.SearchMembers(c.Request.Context(), term)
	if err != nil {
		respondError(c, logger, err, "Failed to search members")
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberResponses(members))
}

// getMember godoc
// @Summary Get a member
// @Tags members
// @Produce json
// @Param id path int true "Member ID"
// @Success 200 {object} dto.MemberResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /members/{id} [get]
func (h *memberHandler) getMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	memberID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, logger, err, "Invalid member ID")
		return
	}

	member, err := h.memberService.GetMemberByID(c.Request.Context(), memberID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve member")
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

// listMemberLoans godoc
// @Summary List a member's loans
// @Description Lists the member's loans, newest first, with overdue days and fines
// @Tags members
// @Produce json
// @Param id path int true "Member ID"
// @Success 200 {array} dto.LoanResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /members/{id}/loans [get]
func (h *memberHandler) listMemberLoans(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	memberID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, logger, err, "Invalid member ID")
		return
	}

	loans, err := h.loanService.ListMemberLoans(c.Request.Context(), memberID)
	if err != nil {
		respondError(c, logger, err, "Failed to list member loans")
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanResponses(loans))
}

// createMember godoc
// @Summary Register a member
// @Description Registers a member; the registration date is today and the fine balance starts at zero
// @Tags members
// @Accept json
// @Produce json
// @Param member body dto.CreateMemberRequest true "Member details"
// @Success 201 {object} dto.MemberResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /members [post]
func (h *memberHandler) createMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "body")
		return
	}

	member, err := h.memberService.CreateMember(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create member")
		return
	}

	logger.Info("Member created", slog.Int64("member_id", member.MemberID))
	c.JSON(http.StatusCreated, dto.ToMemberResponse(member))
}

// updateMember godoc
// @Summary Update a member
// @Description Replaces name and email. Registration date and balance are kept.
// @Tags members
// @Accept json
// @Produce json
// @Param id path int true "Member ID"
// @Param member body dto.UpdateMemberRequest true "Member details"
// @Success 200 {object} dto.MemberResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /members/{id} [put]
func (h *memberHandler) updateMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	memberID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, logger, err, "Invalid member ID")
		return
	}

	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "body")
		return
	}

	member, err := h.memberService.UpdateMember(c.Request.Context(), memberID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update member")
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

// deleteMember godoc
// @Summary Delete a member
// @Description Deletes a member that has never borrowed anything
// @Tags members
// @Produce json
// @Param id path int true "Member ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Member still referenced by loans"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /members/{id} [delete]
func (h *memberHandler) deleteMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	memberID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, logger, err, "Invalid member ID")
		return
	}

	if err := h.memberService.DeleteMember(c.Request.Context(), memberID); err != nil {
		respondError(c, logger, err, "Failed to delete member")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "member deleted"})
}
