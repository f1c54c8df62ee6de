package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/SscSPs/ledger_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// domainHandler handles HTTP requests related to ledger domains.
type domainHandler struct {
	domainService portssvc.DomainSvcFacade
}

// newDomainHandler creates a new domainHandler.
func newDomainHandler(ds portssvc.DomainSvcFacade) *domainHandler {
	return &domainHandler{
		domainService: ds,
	}
}

// registerDomainRoutes registers routes related to ledger domains.
func registerDomainRoutes(rg *gin.RouterGroup, domainService portssvc.DomainSvcFacade) {
	h := newDomainHandler(domainService)

	domains := rg.Group("/domain")
	{
		domains.POST("/query", h.queryDomains)
		domains.POST("/add", h.addDomain)
		domains.POST("/get", h.getDomain)
		domains.POST("/update", h.updateDomain)
		domains.POST("/delete", h.deleteDomain)
	}
}

// queryDomains godoc
// @Summary Query domains
// @Description Lists ledger domains in code order
// @Tags domains
// @Accept  json
// @Produce  json
// @Param   query body dto.DomainQueryRequest true "Filters and paging"
// @Success 200 {object} dto.DomainQueryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid filter or page token"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to query domains"
// @Security BearerAuth
// @Router /domain/query [post]
func (h *domainHandler) queryDomains(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.DomainQueryRequest
	if !bindJSON(c, logger, "QueryDomains", &req) {
		return
	}

	page, err := h.domainService.QueryDomains(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, "Failed to query domains", err)
		return
	}

	c.JSON(http.StatusOK, dto.DomainQueryResponse{
		Domains:   dto.ToListDomainResponse(page.Items),
		More:      page.More,
		NextToken: page.NextToken,
	})
}

// addDomain godoc
// @Summary Add a domain
// @Description Creates a ledger domain in one of the ledger currencies
// @Tags domains
// @Accept  json
// @Produce  json
// @Param   domain body dto.AddDomainRequest true "Domain details"
// @Success 201 {object} dto.DomainEnvelope
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Duplicate code or name"
// @Failure 500 {object} dto.ErrorResponse "Failed to add domain"
// @Security BearerAuth
// @Router /domain/add [post]
func (h *domainHandler) addDomain(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.AddDomainRequest
	if !bindJSON(c, logger, "AddDomain", &req) {
		return
	}

	logger.Info("Received request to add domain", slog.String("code", req.Code), slog.String("currency", req.Currency))

	d, err := h.domainService.AddDomain(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, "Failed to add domain", err)
		return
	}

	logger.Info("Domain added successfully", slog.String("domain_uuid", d.UUID), slog.String("code", d.Code))
	c.JSON(http.StatusCreated, dto.DomainEnvelope{Domain: dto.ToDomainResponse(d)})
}

// getDomain godoc
// @Summary Get a domain
// @Description Retrieves a ledger domain by code
// @Tags domains
// @Accept  json
// @Produce  json
// @Param   domain body dto.GetDomainRequest true "Domain code"
// @Success 200 {object} dto.DomainEnvelope
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Domain not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve domain"
// @Security BearerAuth
// @Router /domain/get [post]
func (h *domainHandler) getDomain(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.GetDomainRequest
	if !bindJSON(c, logger, "GetDomain", &req) {
		return
	}

	d, err := h.domainService.GetDomain(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, "Failed to retrieve domain", err)
		return
	}

	c.JSON(http.StatusOK, dto.DomainEnvelope{Domain: dto.ToDomainResponse(d)})
}

// updateDomain godoc
// @Summary Update a domain
// @Description Edits a domain's code, names, currency or default flag
// @Tags domains
// @Accept  json
// @Produce  json
// @Param   domain body dto.UpdateDomainRequest true "Changes with the current revision"
// @Success 200 {object} dto.DomainEnvelope
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Domain not found"
// @Failure 409 {object} dto.ErrorResponse "Duplicate code or name, or currency in use"
// @Failure 412 {object} dto.ErrorResponse "Stale revision"
// @Failure 500 {object} dto.ErrorResponse "Failed to update domain"
// @Security BearerAuth
// @Router /domain/update [post]
func (h *domainHandler) updateDomain(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.UpdateDomainRequest
	if !bindJSON(c, logger, "UpdateDomain", &req) {
		return
	}

	logger = logger.With(slog.String("code", req.Code))
	logger.Info("Received request to update domain")

	d, err := h.domainService.UpdateDomain(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, "Failed to update domain", err)
		return
	}

	logger.Info("Domain updated successfully", slog.String("new_code", d.Code))
	c.JSON(http.StatusOK, dto.DomainEnvelope{Domain: dto.ToDomainResponse(d)})
}

// deleteDomain godoc
// @Summary Delete a domain
// @Description Removes an unreferenced domain. Deleting the default domain requires newDefault.
// @Tags domains
// @Accept  json
// @Produce  json
// @Param   domain body dto.DeleteDomainRequest true "Domain code and revision"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Domain not found"
// @Failure 409 {object} dto.ErrorResponse "Domain has dependents"
// @Failure 412 {object} dto.ErrorResponse "Stale revision"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete domain"
// @Security BearerAuth
// @Router /domain/delete [post]
func (h *domainHandler) deleteDomain(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.DeleteDomainRequest
	if !bindJSON(c, logger, "DeleteDomain", &req) {
		return
	}

	if err := h.domainService.DeleteDomain(c.Request.Context(), req); err != nil {
		respondError(c, logger, "Failed to delete domain", err)
		return
	}

	logger.Info("Domain deleted successfully", slog.String("code", req.Code))
	respondDeleted(c)
}
