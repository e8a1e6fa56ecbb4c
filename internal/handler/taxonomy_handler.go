package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"airquote/internal/domain"
	"airquote/internal/service"
)

// TaxonomyHandler handles taxonomy option endpoints.
type TaxonomyHandler struct {
	taxonomyService service.TaxonomyService
}

// NewTaxonomyHandler creates a new TaxonomyHandler.
func NewTaxonomyHandler(taxonomyService service.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{taxonomyService: taxonomyService}
}

// Create handles POST /api/v1/taxonomy
func (h *TaxonomyHandler) Create(c *gin.Context) {
	var input service.CreateOptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	opt, err := h.taxonomyService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, opt)
}

// ListAll handles GET /api/v1/taxonomy
func (h *TaxonomyHandler) ListAll(c *gin.Context) {
	grouped, err := h.taxonomyService.ListAll(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, grouped)
}

// ListByCategory handles GET /api/v1/taxonomy/:category
func (h *TaxonomyHandler) ListByCategory(c *gin.Context) {
	category := domain.TaxonomyCategory(c.Param("category"))

	opts, err := h.taxonomyService.ListByCategory(c.Request.Context(), category)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, opts)
}

// Update handles PUT /api/v1/taxonomy/:category/:id
func (h *TaxonomyHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid option ID")
		return
	}

	var input service.UpdateOptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	opt, err := h.taxonomyService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, opt)
}

// Delete handles DELETE /api/v1/taxonomy/:category/:id
func (h *TaxonomyHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid option ID")
		return
	}

	if err := h.taxonomyService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}
