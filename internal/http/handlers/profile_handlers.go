package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you/padelsvc/domain"
	"github.com/you/padelsvc/internal/validation"
)

// ProfileHandlers handles profile HTTP requests
type ProfileHandlers struct {
	backend domain.AuthBackend
}

// NewProfileHandlers creates new profile handlers
func NewProfileHandlers(backend domain.AuthBackend) *ProfileHandlers {
	return &ProfileHandlers{backend: backend}
}

// UpdateProfileRequest carries a partial profile mutation. Absent fields are
// left untouched. There is no user_type field: the variant is immutable.
type UpdateProfileRequest struct {
	// athlete fields
	FirstName *string   `json:"first_name,omitempty"`
	LastName  *string   `json:"last_name,omitempty"`
	Nickname  *string   `json:"nickname,omitempty"`
	BirthDate *string   `json:"birth_date,omitempty"`
	Bio       *string   `json:"bio,omitempty"`
	Sports    *[]string `json:"sports,omitempty"`
	Rackets   *[]string `json:"rackets,omitempty"`
	Instagram *string   `json:"instagram,omitempty"`

	// club fields
	LegalName     *string `json:"legal_name,omitempty"`
	TradeName     *string `json:"trade_name,omitempty"`
	Description   *string `json:"description,omitempty"`
	Street        *string `json:"street,omitempty"`
	CEP           *string `json:"cep,omitempty"`
	CoveredCourts *bool   `json:"covered_courts,omitempty"`
	Parking       *bool   `json:"parking,omitempty"`
	Bar           *bool   `json:"bar,omitempty"`

	// shared
	Phone *string `json:"phone,omitempty"`
	City  *string `json:"city,omitempty"`
	State *string `json:"state,omitempty"`
}

// Get handles fetching a profile by identity id
func (h *ProfileHandlers) Get(c *gin.Context) {
	id := c.Param("id")
	profile, err := h.backend.GetProfile(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": profile.View()})
}

// Update handles a partial profile update. Phone and CEP are normalized to
// their masked display forms before storage. CNPJ is never updatable.
func (h *ProfileHandlers) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Phone != nil {
		masked := validation.FormatPhone(*req.Phone)
		req.Phone = &masked
	}
	if req.CEP != nil {
		masked := validation.FormatCEP(*req.CEP)
		req.CEP = &masked
	}

	update := domain.ProfileUpdate{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Nickname:      req.Nickname,
		BirthDate:     req.BirthDate,
		Bio:           req.Bio,
		Sports:        req.Sports,
		Rackets:       req.Rackets,
		Instagram:     req.Instagram,
		LegalName:     req.LegalName,
		TradeName:     req.TradeName,
		Description:   req.Description,
		Street:        req.Street,
		CEP:           req.CEP,
		CoveredCourts: req.CoveredCourts,
		Parking:       req.Parking,
		Bar:           req.Bar,
		Phone:         req.Phone,
		City:          req.City,
		State:         req.State,
	}

	profile, err := h.backend.UpdateProfile(c.Request.Context(), id, &update)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		case errors.Is(err, domain.ErrUserTypeImmutable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Profile type cannot change"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": profile.View()})
}
