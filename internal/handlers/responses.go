package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/gin-gonic/gin"
)

// bindJSON decodes the request body into req and answers 400 on failure.
func bindJSON(c *gin.Context, logger *slog.Logger, op string, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		logger.Warn("Failed to bind JSON for "+op, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request format: " + err.Error(),
			Kind:  apperrors.Kind(apperrors.ErrValidation),
		})
		return false
	}
	return true
}

// respondError writes the error envelope for err. Internal failures are
// logged in full and reported without detail.
func respondError(c *gin.Context, logger *slog.Logger, msg string, err error) {
	status := apperrors.HTTPStatus(err)
	kind := apperrors.Kind(err)
	if status >= http.StatusInternalServerError {
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(status, dto.ErrorResponse{Error: msg, Kind: kind})
		return
	}
	logger.Warn(msg, slog.String("error", err.Error()), slog.String("kind", kind))
	c.JSON(status, dto.ErrorResponse{Error: err.Error(), Kind: kind})
}

// respondDeleted answers a successful delete.
func respondDeleted(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
