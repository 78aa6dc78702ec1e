package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/retail_finance_core/internal/core/ports/services"
	"github.com/SscSPs/retail_finance_core/internal/dto"
	"github.com/SscSPs/retail_finance_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	ledgerService portssvc.LedgerSvcFacade
	loc           *time.Location
}

// registerJournalRoutes registers journal specific routes
func registerJournalRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, loc *time.Location) {
	h := &journalHandler{ledgerService: ledgerService, loc: loc}

	entries := rg.Group("/journal-entries")
	{
		entries.POST("", h.createJournalEntry)
		entries.GET("", h.listJournalEntries)
		entries.GET("/:entryID", h.getJournalEntry)
		entries.POST("/:entryID/reverse", h.reverseJournalEntry)
	}
}

// createJournalEntry godoc
// @Summary Post a manual journal entry
// @Description Creates a balanced journal entry addressed by account codes
// @Tags journal-entries
// @Accept json
// @Produce json
// @Param entry body dto.CreateJournalEntryRequest true "Journal entry"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid input or unbalanced entry"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Account not configured"
// @Failure 503 {object} map[string]string "Temporarily unavailable"
// @Security BearerAuth
// @Router /finance/journal-entries [post]
func (h *journalHandler) createJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}
	newEntry, err := req.ToNewEntry(h.loc)
	if err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	entry, err := h.ledgerService.CreateBalancedEntry(c.Request.Context(), actor, newEntry)
	if err != nil {
		respondWithError(c, err, "Failed to create journal entry")
		return
	}

	logger.Info("Journal entry created", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// getJournalEntry godoc
// @Summary Get a journal entry
// @Description Retrieves a journal entry with its lines
// @Tags journal-entries
// @Produce json
// @Param entryID path string true "Journal entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Security BearerAuth
// @Router /finance/journal-entries/{entryID} [get]
func (h *journalHandler) getJournalEntry(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	entry, err := h.ledgerService.GetEntry(c.Request.Context(), actor, c.Param("entryID"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// listJournalEntries godoc
// @Summary List journal entries
// @Description Lists journal entries newest first using token-based pagination
// @Tags journal-entries
// @Produce json
// @Param limit query int false "Page size (max 100)" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} map[string]string "Invalid query or token"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /finance/journal-entries [get]
func (h *journalHandler) listJournalEntries(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}
	var token *string
	if params.NextToken != "" {
		token = &params.NextToken
	}

	entries, next, err := h.ledgerService.ListEntries(c.Request.Context(), actor, params.Limit, token)
	if err != nil {
		respondWithError(c, err, "Failed to list journal entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToListJournalEntriesResponse(entries, next))
}

// reverseJournalEntry godoc
// @Summary Reverse a journal entry
// @Description Posts the mirror image of an entry. An entry can be reversed once and reversals cannot be reversed.
// @Tags journal-entries
// @Produce json
// @Param entryID path string true "Journal entry ID"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Failure 409 {object} map[string]string "Already reversed"
// @Security BearerAuth
// @Router /finance/journal-entries/{entryID}/reverse [post]
func (h *journalHandler) reverseJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	entryID := c.Param("entryID")

	reversal, err := h.ledgerService.Reverse(c.Request.Context(), actor, entryID)
	if err != nil {
		respondWithError(c, err, "Failed to reverse journal entry")
		return
	}

	logger.Info("Journal entry reversed", slog.String("entry_id", entryID), slog.String("reversal_id", reversal.EntryID))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(reversal))
}
