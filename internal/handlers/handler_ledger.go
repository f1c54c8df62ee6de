package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/SscSPs/ledger_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests for the ledger root.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ls,
	}
}

// registerLedgerRoutes registers routes for the ledger root.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	root := rg.Group("/root")
	{
		root.POST("/create", h.createLedger)
		root.POST("/get", h.getLedger)
	}
}

// createLedger godoc
// @Summary Create the ledger
// @Description Creates the ledger with its currencies, domains, accounts and sub-journals in one transaction. An optional chart template seeds the accounts.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   ledger body dto.CreateLedgerRequest true "Ledger definition"
// @Success 201 {object} dto.LedgerEnvelope
// @Failure 400 {object} dto.ErrorResponse "Invalid input or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Ledger already exists or duplicate code/name"
// @Failure 500 {object} dto.ErrorResponse "Failed to create ledger"
// @Security BearerAuth
// @Router /root/create [post]
func (h *ledgerHandler) createLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateLedgerRequest
	if !bindJSON(c, logger, "CreateLedger", &req) {
		return
	}

	logger.Info("Received request to create ledger",
		slog.String("template", req.Template),
		slog.Int("currencies", len(req.Currencies)),
		slog.Int("accounts", len(req.Accounts)))

	ledger, err := h.ledgerService.CreateLedger(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, "Failed to create ledger", err)
		return
	}

	_, currencies, err := h.ledgerService.GetLedger(c.Request.Context())
	if err != nil {
		respondError(c, logger, "Failed to read created ledger", err)
		return
	}

	logger.Info("Ledger created successfully", slog.String("ledger_uuid", ledger.UUID))
	c.JSON(http.StatusCreated, dto.LedgerEnvelope{Ledger: dto.ToLedgerResponse(ledger, currencies)})
}

// getLedger godoc
// @Summary Get the ledger
// @Description Returns the ledger rules, default domain and currencies
// @Tags ledger
// @Produce  json
// @Success 200 {object} dto.LedgerEnvelope
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Ledger has not been created"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve ledger"
// @Security BearerAuth
// @Router /root/get [post]
func (h *ledgerHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	ledger, currencies, err := h.ledgerService.GetLedger(c.Request.Context())
	if err != nil {
		respondError(c, logger, "Failed to retrieve ledger", err)
		return
	}

	c.JSON(http.StatusOK, dto.LedgerEnvelope{Ledger: dto.ToLedgerResponse(ledger, currencies)})
}
