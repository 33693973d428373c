package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/timetrack-backend/internal/auth"
	"github.com/heartmarshall/timetrack-backend/internal/config"
	"github.com/heartmarshall/timetrack-backend/internal/transport/middleware"
	"github.com/heartmarshall/timetrack-backend/internal/transport/rest"
)

// RouterDeps are the collaborators the HTTP surface is built from.
type RouterDeps struct {
	Logger      *slog.Logger
	Health      *rest.HealthHandler
	TimeTrack   *rest.TimeTrackHandler
	Tokens      *auth.JWTManager
	RateLimiter *middleware.RateLimiter
	CORS        config.CORSConfig
	RateLimit   config.RateLimitConfig
}

// NewRouter mounts all routes. Probes bypass auth and rate limiting; the
// active session poll bypasses rate limiting only.
func NewRouter(d RouterDeps) http.Handler {
	api := http.NewServeMux()
	d.TimeTrack.Register(api)

	apiHandler := middleware.Chain(
		middleware.CORS(d.CORS),
		middleware.Auth(d.Tokens),
		d.RateLimiter.Limit(d.RateLimit.RequestsPerMinute, middleware.ExemptPaths(rest.ActivePath)),
	)(api)

	mux := http.NewServeMux()
	d.Health.Register(mux)
	mux.Handle("/api/", apiHandler)

	return middleware.Chain(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.Logger(d.Logger),
	)(mux)
}
