package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/SscSPs/ledger_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to ledger currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currency")
	{
		currencies.POST("/add", h.addCurrency)
		currencies.POST("/get", h.getCurrency)
		currencies.POST("/update", h.updateCurrency)
		currencies.POST("/delete", h.deleteCurrency)
	}
}

// addCurrency godoc
// @Summary Add a currency
// @Description Adds an ISO 4217 currency to the ledger
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currency body dto.AddCurrencyRequest true "Currency details"
// @Success 201 {object} dto.CurrencyEnvelope
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Currency code already exists"
// @Failure 500 {object} dto.ErrorResponse "Failed to add currency"
// @Security BearerAuth
// @Router /currency/add [post]
func (h *currencyHandler) addCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.AddCurrencyRequest
	if !bindJSON(c, logger, "AddCurrency", &req) {
		return
	}

	currency, err := h.currencyService.AddCurrency(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, "Failed to add currency", err)
		return
	}

	logger.Info("Currency added successfully", slog.String("code", currency.Code))
	c.JSON(http.StatusCreated, dto.CurrencyEnvelope{Currency: dto.ToCurrencyResponse(currency)})
}

// getCurrency godoc
// @Summary Get a currency
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currency body dto.GetCurrencyRequest true "Currency code"
// @Success 200 {object} dto.CurrencyEnvelope
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Currency not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve currency"
// @Security BearerAuth
// @Router /currency/get [post]
func (h *currencyHandler) getCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.GetCurrencyRequest
	if !bindJSON(c, logger, "GetCurrency", &req) {
		return
	}

	currency, err := h.currencyService.GetCurrency(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, "Failed to retrieve currency", err)
		return
	}

	c.JSON(http.StatusOK, dto.CurrencyEnvelope{Currency: dto.ToCurrencyResponse(currency)})
}

// updateCurrency godoc
// @Summary Update a currency
// @Description Changes the number of decimals a currency carries
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currency body dto.UpdateCurrencyRequest true "Changes with the current revision"
// @Success 200 {object} dto.CurrencyEnvelope
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Currency not found"
// @Failure 412 {object} dto.ErrorResponse "Stale revision"
// @Failure 500 {object} dto.ErrorResponse "Failed to update currency"
// @Security BearerAuth
// @Router /currency/update [post]
func (h *currencyHandler) updateCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.UpdateCurrencyRequest
	if !bindJSON(c, logger, "UpdateCurrency", &req) {
		return
	}

	currency, err := h.currencyService.UpdateCurrency(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, "Failed to update currency", err)
		return
	}

	c.JSON(http.StatusOK, dto.CurrencyEnvelope{Currency: dto.ToCurrencyResponse(currency)})
}

// deleteCurrency godoc
// @Summary Delete a currency
// @Description Removes a currency no domain uses
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currency body dto.DeleteCurrencyRequest true "Currency code and revision"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Currency not found"
// @Failure 409 {object} dto.ErrorResponse "Currency is in use"
// @Failure 412 {object} dto.ErrorResponse "Stale revision"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete currency"
// @Security BearerAuth
// @Router /currency/delete [post]
func (h *currencyHandler) deleteCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.DeleteCurrencyRequest
	if !bindJSON(c, logger, "DeleteCurrency", &req) {
		return
	}

	if err := h.currencyService.DeleteCurrency(c.Request.Context(), req); err != nil {
		respondError(c, logger, "Failed to delete currency", err)
		return
	}

	logger.Info("Currency deleted successfully", slog.String("code", req.Code))
	respondDeleted(c)
}
