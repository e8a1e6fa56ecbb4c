package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"airquote/internal/quote"
	"airquote/internal/service"
)

// QuoteHandler handles quotation session endpoints.
type QuoteHandler struct {
	quoteService service.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(quoteService service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// Create handles POST /api/v1/quotes
func (h *QuoteHandler) Create(c *gin.Context) {
	view, err := h.quoteService.Create(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, view)
}

// Get handles GET /api/v1/quotes/:id
func (h *QuoteHandler) Get(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	view, err := h.quoteService.Get(id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, view)
}

// Delete handles DELETE /api/v1/quotes/:id
func (h *QuoteHandler) Delete(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	if err := h.quoteService.Delete(id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}

// UpdateDetails handles PATCH /api/v1/quotes/:id
func (h *QuoteHandler) UpdateDetails(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var input service.UpdateSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	view, err := h.quoteService.UpdateDetails(id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, view)
}

// SetCatalogLine handles PUT /api/v1/quotes/:id/catalog-lines/:productID
// Quantity, unit price, and the revert escape all travel through this one
// endpoint; absent fields are untouched.
func (h *QuoteHandler) SetCatalogLine(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid product ID")
		return
	}

	var body struct {
		Quantity  *int    `json:"quantity"`
		UnitPrice *string `json:"unit_price"`
		Revert    bool    `json:"revert"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	var view *service.SessionView
	switch {
	case body.Revert:
		view, err = h.quoteService.RevertCatalogUnitPrice(id, productID)
	case body.Quantity != nil:
		view, err = h.quoteService.SetCatalogQuantity(id, productID, *body.Quantity)
	case body.UnitPrice != nil:
		view, err = h.quoteService.SetCatalogUnitPrice(id, productID, *body.UnitPrice)
	default:
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "one of quantity, unit_price, or revert is required")
		return
	}
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, view)
}

// AddCustomLine handles POST /api/v1/quotes/:id/custom-lines
func (h *QuoteHandler) AddCustomLine(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	view, err := h.quoteService.AddCustomLine(id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, view)
}

// UpdateCustomLine handles PUT /api/v1/quotes/:id/custom-lines/:index
func (h *QuoteHandler) UpdateCustomLine(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	index, ok := h.lineIndex(c)
	if !ok {
		return
	}

	var input service.UpdateCustomLineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	view, err := h.quoteService.UpdateCustomLine(id, index, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, view)
}

// RemoveCustomLine handles DELETE /api/v1/quotes/:id/custom-lines/:index
func (h *QuoteHandler) RemoveCustomLine(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	index, ok := h.lineIndex(c)
	if !ok {
		return
	}

	view, err := h.quoteService.RemoveCustomLine(id, index)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, view)
}

// ApplyTemplate handles PUT /api/v1/quotes/:id/custom-lines/:index/template
func (h *QuoteHandler) ApplyTemplate(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	index, ok := h.lineIndex(c)
	if !ok {
		return
	}

	var body struct {
		Template string `json:"template"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	view, err := h.quoteService.ApplyTemplate(id, index, body.Template)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, view)
}

// Focus handles PUT /api/v1/quotes/:id/focus. It drives the two inline edit
// registers: begin opens an editor, commit keeps the value, cancel restores
// the caller-supplied original.
func (h *QuoteHandler) Focus(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var body struct {
		Kind          quote.FocusKind `json:"kind" binding:"required"`
		Action        string          `json:"action" binding:"required"`
		LineID        uuid.UUID       `json:"line_id"`
		OriginalValue string          `json:"original_value"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if body.Kind != quote.FocusQuantity && body.Kind != quote.FocusPrice {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "kind must be quantity or price")
		return
	}

	var (
		view *service.SessionView
		err  error
	)
	switch body.Action {
	case "begin":
		view, err = h.quoteService.BeginEdit(id, body.Kind, body.LineID)
	case "commit":
		view, err = h.quoteService.CommitEdit(id, body.Kind)
	case "cancel":
		view, err = h.quoteService.CancelEdit(id, body.Kind, body.OriginalValue)
	default:
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "action must be begin, commit, or cancel")
		return
	}
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, view)
}

// TitleFocus handles PUT /api/v1/quotes/:id/title
func (h *QuoteHandler) TitleFocus(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var body struct {
		Action string `json:"action" binding:"required"`
		Title  string `json:"title"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	var (
		view *service.SessionView
		err  error
	)
	switch body.Action {
	case "begin":
		view, err = h.quoteService.BeginTitleEdit(id)
	case "commit":
		view, err = h.quoteService.CommitTitleEdit(id, body.Title)
	case "cancel":
		view, err = h.quoteService.CancelTitleEdit(id)
	default:
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "action must be begin, commit, or cancel")
		return
	}
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, view)
}

// Templates handles GET /api/v1/quotes/templates
func (h *QuoteHandler) Templates(c *gin.Context) {
	RespondOK(c, h.quoteService.Templates())
}

// ExportPDF handles GET /api/v1/quotes/:id/export/pdf
func (h *QuoteHandler) ExportPDF(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	data, err := h.quoteService.ExportPDF(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("quotation_%s.pdf", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *QuoteHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid session ID")
		return uuid.Nil, false
	}
	return id, true
}

func (h *QuoteHandler) lineIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		RespondError(c, http.StatusBadRequest, "INVALID_INDEX", "invalid custom line index")
		return 0, false
	}
	return index, true
}
