package cmd

import (
	"net/http"
	"strings"

	"vagas/internal/config"
	"vagas/internal/http/handler"
	"vagas/internal/http/handler/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Routes struct {
	Users      *handler.UserHandler
	Jobs       *handler.JobHandler
	Health     *handler.HealthHandler
	Auth       *middleware.Authenticator
	LoginLimit *middleware.RateLimiter
}

// NewRouter mounts the user and job APIs behind the global middleware chain.
// Forwarding headers only replace the peer address when cfg.TrustProxyHeaders
// is set, since the login limiter keys on it.
func NewRouter(logger *zap.SugaredLogger, cfg config.App, routes Routes) http.Handler {
	r := chi.NewRouter()

	if cfg.TrustProxyHeaders {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: strings.Split(cfg.CORSOrigin, ","),
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))
	r.Use(chimw.Timeout(cfg.RequestTimeout))

	r.Get("/healthz", routes.Health.HandleHealth)

	r.Route("/api/usuario", func(r chi.Router) {
		r.Post("/register", routes.Users.HandleRegister)
		r.With(routes.LoginLimit.Limit).Post("/login", routes.Users.HandleLogin)

		r.Group(func(r chi.Router) {
			r.Use(routes.Auth.Authenticate)
			r.Get("/", routes.Users.HandleListUsers)
			r.Get("/{id}", routes.Users.HandleGetUser)
			r.Put("/{id}", routes.Users.HandleReplaceUser)
			r.Patch("/{id}", routes.Users.HandlePatchUser)
			r.Delete("/{id}", routes.Users.HandleDeleteUser)
		})
	})

	r.Route("/api/vagas", func(r chi.Router) {
		r.Use(routes.Auth.Authenticate)
		r.Get("/", routes.Jobs.HandleListJobs)
		r.Post("/", routes.Jobs.HandleCreateJob)
		r.Get("/{id}", routes.Jobs.HandleGetJob)
		r.Put("/{id}", routes.Jobs.HandleReplaceJob)
		r.Delete("/{id}", routes.Jobs.HandleDeleteJob)
	})

	return r
}
