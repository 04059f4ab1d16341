package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"homenest/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Server is the HomeNest HTTP server.
type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

type ServerConfig struct {
	Port               string
	CORSAllowedOrigins []string
}

// NewRouter builds the route table. It is split from NewServer so tests can drive it directly.
func NewRouter(cfg ServerConfig, handlers *Handlers, baseLogger port.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)
	r.Use(SessionMiddleware(handlers.cookie, handlers.uc.ValidateSession))

	r.NotFound(handlers.NotFound)
	r.Get("/healthz", handlers.Healthz)

	// Public pages
	r.Group(func(r chi.Router) {
		r.Get("/", handlers.Home)
		r.Get("/properties", handlers.BrowseProperties)
		r.Get("/login", handlers.LoginForm)
		r.Post("/login", handlers.Login)
		r.Post("/login/google", handlers.GoogleLogin)
		r.Get("/register", handlers.RegisterForm)
		r.Post("/register", handlers.Register)
		r.Post("/logout", handlers.Logout)
	})

	// Signed-in pages. /properties/new is registered before /properties/{id}.
	r.Group(func(r chi.Router) {
		r.Use(RequireUser)
		r.Get("/properties/new", handlers.NewPropertyForm)
		r.Post("/properties", handlers.CreateProperty)
		r.Get("/properties/{id}", handlers.PropertyDetails)
		r.Get("/properties/{id}/edit", handlers.EditPropertyForm)
		r.Post("/properties/{id}/edit", handlers.UpdateProperty)
		r.Post("/properties/{id}/delete", handlers.DeleteProperty)
		r.Post("/properties/{id}/reviews", handlers.PostReview)
		r.Get("/my-properties", handlers.MyProperties)
		r.Get("/my-ratings", handlers.MyRatings)
		r.Get("/dashboard", handlers.Dashboard)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Trace-ID"},
			ExposedHeaders: []string{"X-Trace-ID"},
			MaxAge:         300,
		}))
		r.Get("/properties", handlers.APIBrowseProperties)
		r.Get("/categories", handlers.APICategories)
	})

	return r
}

// NewServer creates the server; it does not start listening.
func NewServer(cfg ServerConfig, handlers *Handlers, baseLogger port.LoggerPort) *Server {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewRouter(cfg, handlers, baseLogger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &Server{
		httpServer: srv,
		logger:     baseLogger.WithFields(port.Fields{"component": "web_server"}),
	}
}

// Start blocks until the server is stopped.
func (s *Server) Start() error {
	s.logger.Info("Starting web server", port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping web server...", nil)
	return s.httpServer.Shutdown(ctx)
}
