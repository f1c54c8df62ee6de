package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/SscSPs/ledger_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to sub-journals.
type journalHandler struct {
	journalService portssvc.SubJournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(js portssvc.SubJournalSvcFacade) *journalHandler {
	return &journalHandler{
		journalService: js,
	}
}

// registerJournalRoutes registers routes related to sub-journals.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.SubJournalSvcFacade) {
	h := newJournalHandler(journalService)

	journals := rg.Group("/journal")
	{
		journals.POST("/query", h.queryJournals)
		journals.POST("/add", h.addJournal)
		journals.POST("/get", h.getJournal)
		journals.POST("/update", h.updateJournal)
		journals.POST("/delete", h.deleteJournal)
	}
}

// queryJournals godoc
// @Summary Query sub-journals
// @Description Lists sub-journals in code order
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   query body dto.SubJournalQueryRequest true "Filters and paging"
// @Success 200 {object} dto.SubJournalQueryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid filter or page token"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to query sub-journals"
// @Security BearerAuth
// @Router /journal/query [post]
func (h *journalHandler) queryJournals(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.SubJournalQueryRequest
	if !bindJSON(c, logger, "QuerySubJournals", &req) {
		return
	}

	page, err := h.journalService.QuerySubJournals(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, "Failed to query sub-journals", err)
		return
	}

	c.JSON(http.StatusOK, dto.SubJournalQueryResponse{
		Journals:  dto.ToListSubJournalResponse(page.Items),
		More:      page.More,
		NextToken: page.NextToken,
	})
}

// addJournal godoc
// @Summary Add a sub-journal
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   journal body dto.AddSubJournalRequest true "Sub-journal details"
// @Success 201 {object} dto.SubJournalEnvelope
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Duplicate code or name"
// @Failure 500 {object} dto.ErrorResponse "Failed to add sub-journal"
// @Security BearerAuth
// @Router /journal/add [post]
func (h *journalHandler) addJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.AddSubJournalRequest
	if !bindJSON(c, logger, "AddSubJournal", &req) {
		return
	}

	j, err := h.journalService.AddSubJournal(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, "Failed to add sub-journal", err)
		return
	}

	logger.Info("Sub-journal added successfully", slog.String("journal_uuid", j.UUID), slog.String("code", j.Code))
	c.JSON(http.StatusCreated, dto.SubJournalEnvelope{Journal: dto.ToSubJournalResponse(j)})
}

// getJournal godoc
// @Summary Get a sub-journal
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   journal body dto.GetSubJournalRequest true "Sub-journal code"
// @Success 200 {object} dto.SubJournalEnvelope
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Sub-journal not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve sub-journal"
// @Security BearerAuth
// @Router /journal/get [post]
func (h *journalHandler) getJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.GetSubJournalRequest
	if !bindJSON(c, logger, "GetSubJournal", &req) {
		return
	}

	j, err := h.journalService.GetSubJournal(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, "Failed to retrieve sub-journal", err)
		return
	}

	c.JSON(http.StatusOK, dto.SubJournalEnvelope{Journal: dto.ToSubJournalResponse(j)})
}

// updateJournal godoc
// @Summary Update a sub-journal
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   journal body dto.UpdateSubJournalRequest true "Changes with the current revision"
// @Success 200 {object} dto.SubJournalEnvelope
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Sub-journal not found"
// @Failure 409 {object} dto.ErrorResponse "Duplicate code or name"
// @Failure 412 {object} dto.ErrorResponse "Stale revision"
// @Failure 500 {object} dto.ErrorResponse "Failed to update sub-journal"
// @Security BearerAuth
// @Router /journal/update [post]
func (h *journalHandler) updateJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.UpdateSubJournalRequest
	if !bindJSON(c, logger, "UpdateSubJournal", &req) {
		return
	}

	j, err := h.journalService.UpdateSubJournal(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, "Failed to update sub-journal", err)
		return
	}

	logger.Info("Sub-journal updated successfully", slog.String("code", req.Code), slog.String("new_code", j.Code))
	c.JSON(http.StatusOK, dto.SubJournalEnvelope{Journal: dto.ToSubJournalResponse(j)})
}

// deleteJournal godoc
// @Summary Delete a sub-journal
// @Description Removes a sub-journal that no journal entry references
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   journal body dto.DeleteSubJournalRequest true "Sub-journal code and revision"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Sub-journal not found"
// @Failure 409 {object} dto.ErrorResponse "Sub-journal has dependents"
// @Failure 412 {object} dto.ErrorResponse "Stale revision"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete sub-journal"
// @Security BearerAuth
// @Router /journal/delete [post]
func (h *journalHandler) deleteJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.DeleteSubJournalRequest
	if !bindJSON(c, logger, "DeleteSubJournal", &req) {
		return
	}

	if err := h.journalService.DeleteSubJournal(c.Request.Context(), req); err != nil {
		respondError(c, logger, "Failed to delete sub-journal", err)
		return
	}

	logger.Info("Sub-journal deleted successfully", slog.String("code", req.Code))
	respondDeleted(c)
}
