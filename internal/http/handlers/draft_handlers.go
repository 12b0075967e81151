package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you/padelsvc/domain"
	"github.com/you/padelsvc/internal/services"
)

// DraftHandlers handles draft cache HTTP requests. Drafts are per-identity,
// keyed by kind, and expire on their own; the cache is never authoritative.
type DraftHandlers struct {
	draftSvc *services.DraftService
}

// NewDraftHandlers creates new draft handlers
func NewDraftHandlers(draftSvc *services.DraftService) *DraftHandlers {
	return &DraftHandlers{draftSvc: draftSvc}
}

// Get handles loading a draft
func (h *DraftHandlers) Get(c *gin.Context) {
	identityID, exists := c.Get("identity_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identity not found in context"})
		return
	}

	payload, err := h.draftSvc.Load(c.Request.Context(), identityID.(string), domain.DraftKind(c.Param("kind")))
	if err != nil {
		h.renderDraftError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"payload": payload}})
}

// Put handles saving a draft. The body is stored verbatim.
func (h *DraftHandlers) Put(c *gin.Context) {
	identityID, exists := c.Get("identity_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identity not found in context"})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read draft payload"})
		return
	}

	if err := h.draftSvc.Save(c.Request.Context(), identityID.(string), domain.DraftKind(c.Param("kind")), string(body)); err != nil {
		h.renderDraftError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Draft saved"}})
}

// Delete handles discarding a draft
func (h *DraftHandlers) Delete(c *gin.Context) {
	identityID, exists := c.Get("identity_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identity not found in context"})
		return
	}

	if err := h.draftSvc.Discard(c.Request.Context(), identityID.(string), domain.DraftKind(c.Param("kind"))); err != nil {
		h.renderDraftError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Draft discarded"}})
}

func (h *DraftHandlers) renderDraftError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownDraftKind):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown draft kind"})
	case errors.Is(err, domain.ErrDraftPayloadLimit):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Draft payload too large"})
	case errors.Is(err, domain.ErrDraftNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Draft not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Draft operation failed"})
	}
}
