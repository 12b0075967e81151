package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you/padelsvc/domain"
	"github.com/you/padelsvc/internal/logger"
	"github.com/you/padelsvc/internal/services"
)

// AuthHandlers handles authentication HTTP requests. Each submission runs
// through a fresh AuthFlow so the idle → submitting → idle lifecycle maps
// one-to-one onto a request.
type AuthHandlers struct {
	backend domain.AuthBackend
	log     *logger.Logger
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(backend domain.AuthBackend, log *logger.Logger) *AuthHandlers {
	return &AuthHandlers{backend: backend, log: log}
}

// RegisterRequest represents a sign-up submission
type RegisterRequest struct {
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	UserType        string `json:"user_type" binding:"required"`

	// club variant
	ClubName  string `json:"club_name,omitempty"`
	CNPJ      string `json:"cnpj,omitempty" binding:"omitempty,cnpj"`
	ClubPhone string `json:"club_phone,omitempty"`

	// athlete variant
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// LoginRequest represents a sign-in submission
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents a token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Register handles sign-up
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flow := services.NewAuthFlow(h.backend, nil)
	result, err := flow.SignUp(c.Request.Context(), services.SignUpInput{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		UserType:        domain.UserType(req.UserType),
		ClubName:        req.ClubName,
		CNPJ:            req.CNPJ,
		ClubPhone:       req.ClubPhone,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
	})
	if err != nil {
		h.renderFlowError(c, err, http.StatusConflict)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"message":               "Cadastro realizado. Confirme seu e-mail para entrar.",
			"identity_id":           result.Identity.ID,
			"confirmation_required": result.ConfirmationRequired,
		},
	})
}

// Login handles sign-in. The session store is refreshed before the response
// is written, so the profile in the payload is never stale.
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	store := services.NewSessionStore(h.backend)
	if err := store.Init(c.Request.Context(), ""); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}
	defer store.Close()

	flow := services.NewAuthFlow(h.backend, store)
	result, err := flow.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.renderFlowError(c, err, http.StatusUnauthorized)
		return
	}

	payload := gin.H{
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
		"token_type":    "Bearer",
		"expires_in":    result.ExpiresIn,
	}
	if profile := store.Profile(); profile != nil {
		payload["profile"] = profile.View()
	}
	c.JSON(http.StatusOK, gin.H{"data": payload})
}

// Confirm handles email confirmation links
func (h *AuthHandlers) Confirm(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Confirmation token required"})
		return
	}

	if err := h.backend.ConfirmEmail(c.Request.Context(), token); err != nil {
		if errors.Is(err, domain.ErrConfirmationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Confirmation token invalid or expired"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Confirmation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"message": "E-mail confirmado. Você já pode entrar."},
	})
}

// Refresh handles token refresh
func (h *AuthHandlers) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.backend.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenInvalid), errors.Is(err, domain.ErrTokenExpired):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
		case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrSessionExpired):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token refresh failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"access_token": result.AccessToken,
			"token_type":   "Bearer",
			"expires_in":   result.ExpiresIn,
		},
	})
}

// Me handles getting the caller's profile (requires authentication)
func (h *AuthHandlers) Me(c *gin.Context) {
	identityID, exists := c.Get("identity_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identity not found in context"})
		return
	}

	profile, err := h.backend.GetProfile(c.Request.Context(), identityID.(string))
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

// Logout handles sign-out (requires authentication)
func (h *AuthHandlers) Logout(c *gin.Context) {
	sessionID, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID not found"})
		return
	}

	store := services.NewSessionStore(h.backend)
	if err := store.Init(c.Request.Context(), sessionID.(string)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}
	defer store.Close()

	if err := store.SignOut(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"message": "Logged out successfully"},
	})
}

// renderFlowError maps an auth flow failure to an HTTP response. Local
// validation failures are 400s; backend rejections use rejectedStatus when
// they carry a known rejection code, 500 otherwise.
func (h *AuthHandlers) renderFlowError(c *gin.Context, err error, rejectedStatus int) {
	if errors.Is(err, domain.ErrSubmissionInFlight) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Submission already in progress"})
		return
	}

	var flowErr *services.FlowError
	if !errors.As(err, &flowErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Request failed"})
		return
	}

	if flowErr.Local() {
		c.JSON(http.StatusBadRequest, gin.H{"error": flowErr.Message})
		return
	}

	status := http.StatusInternalServerError
	if be, ok := domain.AsBackendError(flowErr.Err); ok {
		switch be.Code {
		case domain.BackendCodeUserAlreadyExists:
			status = http.StatusConflict
		case domain.BackendCodeInvalidCredentials, domain.BackendCodeWeakPassword, domain.BackendCodeEmailInvalid:
			status = rejectedStatus
		default:
			status = rejectedStatus
		}
	}
	c.JSON(status, gin.H{"error": flowErr.Message})
}
