package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/lending_catalog/internal/apperrors"
	"github.com/SscSPs/lending_catalog/internal/dto"
	"github.com/gin-gonic/gin"
)

// statusFor maps an error kind to its HTTP status.
func statusFor(kind apperrors.Kind) int {
	switch {
	case kind.IsNotFound():
		return http.StatusNotFound
	case kind.IsClientError():
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error body for err. Storage failures are logged
// with their detail and answered with a generic message.
func respondError(c *gin.Context, logger *slog.Logger, err error, failureMsg string) {
	kind := apperrors.KindOf(err)
	status := statusFor(kind)

	if status == http.StatusInternalServerError {
		logger.Error(failureMsg, slog.String("error", err.Error()))
		c.JSON(status, dto.ErrorResponse{Error: failureMsg, Kind: string(apperrors.KindStorage)})
		return
	}

	body := dto.ErrorResponse{Error: err.Error(), Kind: string(kind)}
	if appErr, ok := apperrors.As(err); ok {
		body.Error = appErr.Message
		body.Field = appErr.Field
		body.Count = appErr.Count
	}
	logger.Warn(failureMsg, slog.String("error", err.Error()), slog.String("kind", string(kind)))
	c.JSON(status, body)
}

// respondBindError answers a request whose body or query could not be decoded.
func respondBindError(c *gin.Context, logger *slog.Logger, err error, field string) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "invalid request format: " + err.Error(),
		Kind:  string(apperrors.KindValidation),
		Field: field,
	})
}

// parseIDParam reads a positive numeric path parameter.
func parseIDParam(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError(name, "must be a positive integer, got "+strconv.Quote(raw))
	}
	return id, nil
}
