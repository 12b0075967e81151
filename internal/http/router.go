package httpx

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/you/padelsvc/internal/http/handlers"
	"github.com/you/padelsvc/internal/http/middleware"
	"github.com/you/padelsvc/internal/validation"
)

// RegisterBindings installs the custom binding validators used by request
// structs. Call once before BuildRouter.
func RegisterBindings() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("cnpj", func(fl validator.FieldLevel) bool {
			return validation.ValidCNPJ(fl.Field().String())
		})
	}
}

// BuildRouter assembles the HTTP surface. Public routes cover discovery and
// the sign-up/sign-in funnel; everything else sits behind JWT auth plus
// casbin role enforcement.
func BuildRouter(
	ah *handlers.AuthHandlers,
	ph *handlers.ProfileHandlers,
	th *handlers.TournamentHandlers,
	dh *handlers.DraftHandlers,
	jwtmw *middleware.AuthMW,
	cb *middleware.CasbinMW,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)
	auth.GET("/confirm", ah.Confirm)
	auth.POST("/refresh", ah.Refresh)

	// Public discovery
	r.GET("/tournaments", th.ListOpen)
	r.GET("/tournaments/:id", th.Get)
	r.GET("/profiles/:id", ph.Get)

	v := r.Group("/").Use(jwtmw.WithJWT(), cb.Enforce())
	v.GET("/auth/me", ah.Me)
	v.POST("/auth/logout", ah.Logout)
	v.PUT("/profiles/:id", ph.Update)

	v.GET("/drafts/:kind", dh.Get)
	v.PUT("/drafts/:kind", dh.Put)
	v.DELETE("/drafts/:kind", dh.Delete)

	club := r.Group("/clubs").Use(jwtmw.WithJWT(), cb.Enforce())
	club.GET("/tournaments", th.ListMine)
	club.POST("/tournaments", th.Create)
	club.PUT("/tournaments/:id", th.Update)

	return r
}
