package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/you/padelsvc/domain"
	"github.com/you/padelsvc/internal/services"
)

// TournamentHandlers handles tournament HTTP requests
type TournamentHandlers struct {
	tournamentSvc *services.TournamentService
}

// NewTournamentHandlers creates new tournament handlers
func NewTournamentHandlers(tournamentSvc *services.TournamentService) *TournamentHandlers {
	return &TournamentHandlers{tournamentSvc: tournamentSvc}
}

// TournamentRequest carries a create or update submission
type TournamentRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description,omitempty"`
	Venue       string   `json:"venue" binding:"required"`
	City        string   `json:"city,omitempty"`
	State       string   `json:"state,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	Status      string   `json:"status,omitempty"`
}

func (r *TournamentRequest) toTournament() (*domain.Tournament, error) {
	t := &domain.Tournament{
		Name:        r.Name,
		Description: r.Description,
		Venue:       r.Venue,
		City:        r.City,
		State:       r.State,
		Categories:  r.Categories,
		Status:      domain.TournamentStatus(r.Status),
	}
	if r.StartDate != "" {
		start, err := time.Parse("2006-01-02", r.StartDate)
		if err != nil {
			return nil, err
		}
		t.StartDate = start
	}
	if r.EndDate != "" {
		end, err := time.Parse("2006-01-02", r.EndDate)
		if err != nil {
			return nil, err
		}
		t.EndDate = end
	}
	return t, nil
}

func tournamentView(t *domain.Tournament) gin.H {
	return gin.H{
		"id":          t.ID,
		"club_id":     t.ClubID,
		"name":        t.Name,
		"description": t.Description,
		"venue":       t.Venue,
		"city":        t.City,
		"state":       t.State,
		"start_date":  t.StartDate,
		"end_date":    t.EndDate,
		"categories":  t.Categories,
		"status":      string(t.Status),
		"created_at":  t.CreatedAt,
		"updated_at":  t.UpdatedAt,
	}
}

// ListOpen handles the public discovery listing
func (h *TournamentHandlers) ListOpen(c *gin.Context) {
	tournaments, err := h.tournamentSvc.ListOpen(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tournaments"})
		return
	}

	views := make([]gin.H, 0, len(tournaments))
	for _, t := range tournaments {
		views = append(views, tournamentView(t))
	}
	c.JSON(http.StatusOK, gin.H{"data": views})
}

// Get handles fetching one tournament
func (h *TournamentHandlers) Get(c *gin.Context) {
	t, err := h.tournamentSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrTournamentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tournament not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get tournament"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": tournamentView(t)})
}

// ListMine handles listing the caller club's own tournaments
func (h *TournamentHandlers) ListMine(c *gin.Context) {
	identityID, exists := c.Get("identity_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identity not found in context"})
		return
	}

	tournaments, err := h.tournamentSvc.ListByClub(c.Request.Context(), identityID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tournaments"})
		return
	}

	views := make([]gin.H, 0, len(tournaments))
	for _, t := range tournaments {
		views = append(views, tournamentView(t))
	}
	c.JSON(http.StatusOK, gin.H{"data": views})
}

// Create handles a club creating a tournament listing
func (h *TournamentHandlers) Create(c *gin.Context) {
	identityID, exists := c.Get("identity_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identity not found in context"})
		return
	}

	var req TournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := req.toTournament()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
		return
	}

	created, err := h.tournamentSvc.Create(c.Request.Context(), identityID.(string), t)
	if err != nil {
		h.renderTournamentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": tournamentView(created)})
}

// Update handles a club updating one of its listings
func (h *TournamentHandlers) Update(c *gin.Context) {
	identityID, exists := c.Get("identity_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identity not found in context"})
		return
	}

	var req TournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := req.toTournament()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
		return
	}
	t.ID = c.Param("id")

	updated, err := h.tournamentSvc.Update(c.Request.Context(), identityID.(string), t)
	if err != nil {
		h.renderTournamentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": tournamentView(updated)})
}

func (h *TournamentHandlers) renderTournamentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrTournamentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Tournament not found"})
	case errors.Is(err, domain.ErrNotTournamentOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "Tournament belongs to another club"})
	case errors.Is(err, services.ErrTournamentNameRequired),
		errors.Is(err, services.ErrTournamentVenueRequired),
		errors.Is(err, services.ErrTournamentDatesInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Tournament operation failed"})
	}
}
