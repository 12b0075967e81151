package app

import (
	"context"
	"net/http"

	"github.com/you/padelsvc/domain"
	"github.com/you/padelsvc/internal/config"
	httpx "github.com/you/padelsvc/internal/http"
	"github.com/you/padelsvc/internal/http/handlers"
	"github.com/you/padelsvc/internal/http/middleware"
	"github.com/you/padelsvc/internal/infrastructure/auth"
	"github.com/you/padelsvc/internal/logger"
)

// Run builds the dependency container, wires the HTTP surface on top of it
// and blocks serving.
func Run(cfg *config.Config) error {
	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}
	cas, err := auth.NewCasbinService(c.DB, cfg.CasbinModelPath)
	if err != nil {
		return err
	}

	// Audit every auth-state broadcast for the lifetime of the process.
	c.Backend.OnAuthStateChange(func(event domain.AuthChangeEvent, session *domain.AuthSession) {
		if session != nil {
			c.Log.Info("auth state change", "event", string(event), "identity_id", session.IdentityID, "session_id", session.ID)
			return
		}
		c.Log.Info("auth state change", "event", string(event))
	})

	// Handlers
	authH := handlers.NewAuthHandlers(c.Backend, c.Log)
	profileH := handlers.NewProfileHandlers(c.Backend)
	tournamentH := handlers.NewTournamentHandlers(c.TournamentSvc)
	draftH := handlers.NewDraftHandlers(c.DraftSvc)

	// Middleware
	jwtMW := middleware.NewAuthMW(c.TokenSvc, c.SessionRepo)
	casbinMW := middleware.NewCasbinMW(cas.E, cfg.OwnershipRules)

	httpx.RegisterBindings()
	r := httpx.BuildRouter(authH, profileH, tournamentH, draftH, jwtMW, casbinMW)

	seedPolicies(cas, c.Log)

	addr := ":" + cfg.Port
	c.Log.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, r)
}

// seedPolicies installs the default role policies on an empty policy table.
// Athletes and clubs share the authenticated surface; tournament management
// is club-only; role_owner covers the ownership-gated routes.
func seedPolicies(cas *auth.CasbinService, log *logger.Logger) {
	policies, _ := cas.E.GetPolicy()
	if len(policies) > 0 {
		return
	}

	cas.E.AddPolicy("role_athlete", "/auth/me", "GET")
	cas.E.AddPolicy("role_athlete", "/auth/logout", "POST")
	cas.E.AddPolicy("role_athlete", "/drafts/*", "(GET|PUT|DELETE)")
	cas.E.AddPolicy("role_club", "/auth/me", "GET")
	cas.E.AddPolicy("role_club", "/auth/logout", "POST")
	cas.E.AddPolicy("role_club", "/drafts/*", "(GET|PUT|DELETE)")
	cas.E.AddPolicy("role_club", "/clubs/tournaments", "(GET|POST)")
	cas.E.AddPolicy("role_club", "/clubs/tournaments/*", "PUT")
	cas.E.AddPolicy("role_owner", "/profiles/*", "PUT")
	_ = cas.E.SavePolicy()
	log.Info("casbin: seeded default policies")
}
