package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/autoquote/backend/internal/domain"
	"github.com/autoquote/backend/internal/infrastructure/export"
	"github.com/autoquote/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	quotes *usecase.QuoteService
}

// NewHandler creates a new HTTP handler
func NewHandler(quotes *usecase.QuoteService) *Handler {
	return &Handler{quotes: quotes}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "autoquote-backend",
		"version": "1.0.0",
	})
}

// extractTextRequest is the body of an extraction request.
type extractTextRequest struct {
	Text string `json:"text" binding:"required"`
}

// ExtractQuotes sends raw quotation text to the extraction service and
// appends the recognized items to the session.
func (h *Handler) ExtractQuotes(c *gin.Context) {
	var req extractTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	items, err := h.quotes.ExtractFromText(c.Request.Context(), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// ListItems returns the flat annotated item collection.
func (h *Handler) ListItems(c *gin.Context) {
	items, err := h.quotes.Items(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// AddItems appends already-structured records to the session.
func (h *Handler) AddItems(c *gin.Context) {
	var raw []domain.RawQuote
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	items, err := h.quotes.AddItems(c.Request.Context(), raw)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"items": items})
}

// RemoveItem deletes one item from the session.
func (h *Handler) RemoveItem(c *gin.Context) {
	if err := h.quotes.RemoveItem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ToggleSelection flips the selected flag of one item.
func (h *Handler) ToggleSelection(c *gin.Context) {
	item, err := h.quotes.ToggleSelection(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// SelectWinners rewrites the selection so the cheapest quote per
// normalized product key wins.
func (h *Handler) SelectWinners(c *gin.Context) {
	items, err := h.quotes.SelectWinners(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// ClearSession drops every item in the session.
func (h *Handler) ClearSession(c *gin.Context) {
	if err := h.quotes.ClearSession(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Comparison returns the tiered family -> offer group -> best offer view.
func (h *Handler) Comparison(c *gin.Context) {
	families, err := h.quotes.Comparison(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"families": families})
}

// Summary returns the aggregate session metrics.
func (h *Handler) Summary(c *gin.Context) {
	summary, err := h.quotes.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ExportWorkbook streams the two-sheet quote workbook as a download.
func (h *Handler) ExportWorkbook(c *gin.Context) {
	ctx := c.Request.Context()
	items, err := h.quotes.Items(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(items) == 0 {
		respondError(c, domain.ErrNoItems)
		return
	}
	summary, err := h.quotes.Summary(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	workbook, err := export.BuildWorkbook(items, summary)
	if err != nil {
		respondError(c, err)
		return
	}
	writeWorkbook(c, workbook, export.Filename())
}

// ExportSupplierOrder streams a purchase order workbook holding the
// selected items of one supplier.
func (h *Handler) ExportSupplierOrder(c *gin.Context) {
	supplier := c.Param("supplier")
	items, err := h.quotes.Items(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	var selected []domain.QuoteItem
	for _, item := range items {
		if item.Selected && item.SupplierName == supplier {
			selected = append(selected, item)
		}
	}
	if len(selected) == 0 {
		respondError(c, domain.ErrNoItems)
		return
	}

	workbook, err := export.BuildSupplierOrder(supplier, selected)
	if err != nil {
		respondError(c, err)
		return
	}
	writeWorkbook(c, workbook, export.SupplierFilename(supplier))
}

// writeWorkbook streams an xlsx file to the client.
func writeWorkbook(c *gin.Context, workbook *excelize.File, filename string) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if _, err := workbook.WriteTo(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}

// respondError maps domain errors onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidRequest),
		errors.Is(err, domain.ErrDuplicateID),
		errors.Is(err, domain.ErrNoItems):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrExtractionFailure):
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
