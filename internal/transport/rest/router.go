package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/sitebook-backend/internal/config"
	"github.com/heartmarshall/sitebook-backend/internal/transport/middleware"
)

// Handlers groups the endpoint handlers served by the router.
type Handlers struct {
	Records *RecordsHandler
	Auth    *AuthHandler
	Health  *HealthHandler
}

// NewRouter wires the routes and the middleware chain. requireAuth guards
// /api; limitLogin guards /auth/login. Either may be nil.
func NewRouter(h Handlers, logger *slog.Logger, cors config.CORSConfig, requireAuth, limitLogin middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("POST /auth/login", middleware.Wrap(h.Auth.Login, limitLogin))

	mux.Handle("POST /api/validate/{model}/{operation}", middleware.Wrap(h.Records.Validate, requireAuth))
	mux.Handle("POST /api/{model}/{operation}", middleware.Wrap(h.Records.Execute, requireAuth))

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cors),
	)(mux)
}
