package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/SscSPs/ledger_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/account")
	{
		accounts.POST("/query", h.queryAccounts)
		accounts.POST("/add", h.addAccount)
		accounts.POST("/get", h.getAccount)
		accounts.POST("/update", h.updateAccount)
		accounts.POST("/delete", h.deleteAccount)
	}
}

// queryAccounts godoc
// @Summary Query accounts
// @Description Lists accounts in code order. Filters are combined; pages continue from nextToken or after.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   query body dto.AccountQueryRequest true "Filters and paging"
// @Success 200 {object} dto.AccountQueryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid filter or page token"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Ledger has not been created"
// @Failure 500 {object} dto.ErrorResponse "Failed to query accounts"
// @Security BearerAuth
// @Router /account/query [post]
func (h *accountHandler) queryAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.AccountQueryRequest
	if !bindJSON(c, logger, "QueryAccounts", &req) {
		return
	}

	page, err := h.accountService.QueryAccounts(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, "Failed to query accounts", err)
		return
	}

	c.JSON(http.StatusOK, dto.AccountQueryResponse{
		Accounts:  dto.ToListAccountResponse(page.Items),
		More:      page.More,
		NextToken: page.NextToken,
	})
}

// addAccount godoc
// @Summary Add an account
// @Description Creates an account beneath an existing parent, or at top level
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.AddAccountRequest true "Account details"
// @Success 201 {object} dto.AccountEnvelope
// @Failure 400 {object} dto.ErrorResponse "Invalid code, missing parent or missing default-language name"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Duplicate code or name"
// @Failure 500 {object} dto.ErrorResponse "Failed to add account"
// @Security BearerAuth
// @Router /account/add [post]
func (h *accountHandler) addAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.AddAccountRequest
	if !bindJSON(c, logger, "AddAccount", &req) {
		return
	}

	logger.Info("Received request to add account", slog.String("code", req.Code))

	account, err := h.accountService.AddAccount(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, "Failed to add account", err)
		return
	}

	logger.Info("Account added successfully", slog.String("account_uuid", account.UUID), slog.String("code", account.Code))
	c.JSON(http.StatusCreated, dto.AccountEnvelope{Account: dto.ToAccountResponse(account)})
}

// getAccount godoc
// @Summary Get an account
// @Description Retrieves an account by code
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.GetAccountRequest true "Account code"
// @Success 200 {object} dto.AccountEnvelope
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve account"
// @Security BearerAuth
// @Router /account/get [post]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.GetAccountRequest
	if !bindJSON(c, logger, "GetAccount", &req) {
		return
	}

	account, err := h.accountService.GetAccount(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, "Failed to retrieve account", err)
		return
	}

	c.JSON(http.StatusOK, dto.AccountEnvelope{Account: dto.ToAccountResponse(account)})
}

// updateAccount godoc
// @Summary Update an account
// @Description Edits, renames or moves an account. Descendants follow a code change.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.UpdateAccountRequest true "Changes with the current revision"
// @Success 200 {object} dto.AccountEnvelope
// @Failure 400 {object} dto.ErrorResponse "Invalid input, orphan or cycle"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 409 {object} dto.ErrorResponse "Duplicate code or name"
// @Failure 412 {object} dto.ErrorResponse "Stale revision"
// @Failure 500 {object} dto.ErrorResponse "Failed to update account"
// @Security BearerAuth
// @Router /account/update [post]
func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.UpdateAccountRequest
	if !bindJSON(c, logger, "UpdateAccount", &req) {
		return
	}

	logger = logger.With(slog.String("code", req.Code))
	logger.Info("Received request to update account", slog.String("to_code", req.ToCode))

	account, err := h.accountService.UpdateAccount(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, "Failed to update account", err)
		return
	}

	logger.Info("Account updated successfully", slog.String("new_code", account.Code))
	c.JSON(http.StatusOK, dto.AccountEnvelope{Account: dto.ToAccountResponse(account)})
}

// deleteAccount godoc
// @Summary Delete an account
// @Description Removes an account that has no children and no journal references
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.DeleteAccountRequest true "Account code and revision"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 409 {object} dto.ErrorResponse "Account has dependents"
// @Failure 412 {object} dto.ErrorResponse "Stale revision"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete account"
// @Security BearerAuth
// @Router /account/delete [post]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.DeleteAccountRequest
	if !bindJSON(c, logger, "DeleteAccount", &req) {
		return
	}

	if err := h.accountService.DeleteAccount(c.Request.Context(), req); err != nil {
		respondError(c, logger, "Failed to delete account", err)
		return
	}

	logger.Info("Account deleted successfully", slog.String("code", req.Code))
	respondDeleted(c)
}
