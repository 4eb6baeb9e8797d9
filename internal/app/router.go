package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/rapidlingo-backend/internal/config"
	"github.com/heartmarshall/rapidlingo-backend/internal/transport/middleware"
	"github.com/heartmarshall/rapidlingo-backend/internal/transport/rest"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

type routerDeps struct {
	cfg       *config.Config
	logger    *slog.Logger
	practice  *rest.PracticeHandler
	health    *rest.HealthHandler
	validator tokenValidator
	limiter   *middleware.RateLimiter
	metrics   http.Handler
}

// newRouter mounts every route and wraps the mux in the global middleware
// chain. Outermost first: request id, logging, recovery, CORS, auth.
func newRouter(d routerDeps) http.Handler {
	mux := http.NewServeMux()

	d.health.Routes(mux)
	mux.Handle("GET /metrics", d.metrics)

	d.practice.Routes(mux, rest.RouteGuards{
		API:       middleware.RequireUser,
		Replenish: d.limiter.Limit("replenish", d.cfg.RateLimit.ReplenishPerMinute),
		Explain:   d.limiter.Limit("explain", d.cfg.RateLimit.ExplainPerMinute),
	})

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(d.logger),
		middleware.Recovery(d.logger),
		middleware.CORS(d.cfg.CORS),
		middleware.Auth(d.validator, d.logger),
	)(mux)
}
