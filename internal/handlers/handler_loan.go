package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/lending_catalog/internal/core/ports/services"
	"github.com/SscSPs/lending_catalog/internal/dto"
	"github.com/SscSPs/lending_catalog/internal/middleware"
	"github.com/gin-gonic/gin"
)

// loanHandler handles HTTP requests related to loans.
type loanHandler struct {
	loanService portssvc.LoanSvcFacade
}

// newLoanHandler creates a new loanHandler.
func newLoanHandler(ls portssvc.LoanSvcFacade) *loanHandler {
	return &loanHandler{loanService: ls}
}

// registerLoanRoutes registers routes related to loans.
func registerLoanRoutes(rg *gin.RouterGroup, loanService portssvc.LoanSvcFacade) {
	h := newLoanHandler(loanService)

	loans := rg.Group("/loans")
	{
		loans.GET("", h.listLoans)
		loans.GET("/open", h.listOpenLoans)
		loans.GET("/overdue", h.listOverdueLoans)
		loans.POST("", h.createLoan)
		loans.GET("/:id", h.getLoan)
		loans.POST("/:id/return", h.returnLoan)
		loans.DELETE("/:id", h.deleteLoan)
	}
}

// listLoans godoc
// @Summary List all loans
// @Description Lists every loan, newest first, with overdue days and fines
// @Tags loans
// @Produce json
// @Success 200 {array} dto.LoanResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /loans [get]
func (h *loanHandler) listLoans(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	loans, err := h.loanService.ListLoans(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list loans")
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanResponses(loans))
}

// listOpenLoans godoc
// @Summary List open loans
// @Description Lists loans not yet returned, oldest first
// @Tags loans
// @Produce json
// @Success 200 {array} dto.LoanResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /loans/open [get]
func (h *loanHandler) listOpenLoans(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	loans, err := h.loanService.ListOpenLoans(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list open loans")
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanResponses(loans))
}

// listOverdueLoans godoc
// @Summary List overdue loans
// @Description Lists open loans past the loan period, oldest first, with accrued fines
// @Tags loans
// @Produce json
// @Success 200 {array} dto.LoanResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /loans/overdue [get]
func (h *loanHandler) listOverdueLoans(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	loans, err := h.loanService.ListOverdueLoans(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list overdue loans")
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanResponses(loans))
}

// getLoan godoc
// @Summary Get a loan
// @Tags loans
// @Produce json
// @Param id path int true "Loan ID"
// @Success 200 {object} dto.LoanResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /loans/{id} [get]
func (h *loanHandler) getLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loanID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, logger, err, "Invalid loan ID")
		return
	}

	loan, err := h.loanService.GetLoanByID(c.Request.Context(), loanID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve loan")
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}

// createLoan godoc
// @Summary Lend an item
// @Description Opens a loan dated today. Fails if the member or item is unknown, the item has no copy available, or the member holds the maximum number of active loans.
// @Tags loans
// @Accept json
// @Produce json
// @Param loan body dto.CreateLoanRequest true "Member and item"
// @Success 201 {object} dto.CreatedLoanResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error, item unavailable or loan limit reached"
// @Failure 404 {object} dto.ErrorResponse "Member or item not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /loans [post]
func (h *loanHandler) createLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "body")
		return
	}

	loan, err := h.loanService.CreateLoan(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create loan")
		return
	}

	logger.Info("Loan created", slog.Int64("loan_id", loan.LoanID))
	c.JSON(http.StatusCreated, dto.ToCreatedLoanResponse(loan))
}

// returnLoan godoc
// @Summary Return a loan
// @Description Closes the loan, puts the copy back and charges any overdue fine to the member
// @Tags loans
// @Produce json
// @Param id path int true "Loan ID"
// @Success 200 {object} dto.ReturnLoanResponse
// @Failure 400 {object} dto.ErrorResponse "Loan already returned"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /loans/{id}/return [post]
func (h *loanHandler) returnLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loanID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, logger, err, "Invalid loan ID")
		return
	}

	receipt, err := h.loanService.ReturnLoan(c.Request.Context(), loanID)
	if err != nil {
		respondError(c, logger, err, "Failed to return loan")
		return
	}

	c.JSON(http.StatusOK, dto.ToReturnLoanResponse(receipt))
}

// deleteLoan godoc
// @Summary Delete a loan
// @Description Deletes a loan record. An open loan's copy is put back; a settled fine stays on the balance.
// @Tags loans
// @Produce json
// @Param id path int true "Loan ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /loans/{id} [delete]
func (h *loanHandler) deleteLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loanID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, logger, err, "Invalid loan ID")
		return
	}

	if err := h.loanService.DeleteLoan(c.Request.Context(), loanID); err != nil {
		respondError(c, logger, err, "Failed to delete loan")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "loan deleted"})
}
