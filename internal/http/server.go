package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"github.com/shivanshkc/oidconnect/internal/config"
	"github.com/shivanshkc/oidconnect/internal/handler"
	"github.com/shivanshkc/oidconnect/internal/middleware"
	"github.com/shivanshkc/oidconnect/internal/utils/signals"
)

// Server is the HTTP server of this application.
type Server struct {
	Config     config.Config
	Middleware middleware.Middleware
	Handler    *handler.Handler
	httpServer *http.Server
}

// Start sets up all the dependencies and routes on the server, and calls ListenAndServe on it.
func (s *Server) Start() {
	// Create the HTTP server.
	s.httpServer = &http.Server{
		Addr:              s.Config.HTTPServer.Addr,
		ReadHeaderTimeout: time.Minute,
		Handler:           s.getHandler(),
	}

	// Gracefully shut down upon interruption.
	signals.OnSignal(func(_ os.Signal) {
		slog.Info("interruption detected, gracefully shutting down the server")
		// Graceful shutdown.
		if err := s.httpServer.Shutdown(context.Background()); err != nil {
			slog.Error("failed to gracefully shutdown the server", "err", err)
		}
	})

	slog.Info("starting http server", "name", s.Config.Application.Name, "addr", s.Config.HTTPServer.Addr)
	// Start the HTTP server.
	if err := s.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		slog.Error("error in ListenAndServe call", "err", err)
		panic(err)
	}
}

// getHandler attaches middleware and REST methods to the router.
func (s *Server) getHandler() http.Handler {
	router := mux.NewRouter()

	// Attach middleware.
	router.Use(s.Middleware.Recovery)
	router.Use(s.Middleware.CORS)
	router.Use(s.Middleware.Security)
	router.Use(s.Middleware.AccessLogger)

	// Login route. Redirects the caller to the provider's authentication page.
	router.HandleFunc("/api/oidc/login", s.Handler.Login).Methods(http.MethodGet)
	// Callback route. The provider redirects here once authentication is done.
	router.HandleFunc("/api/oidc/callback", s.Handler.Callback).Methods(http.MethodGet)
	// Logout route. Redirects the caller to the provider's logout page.
	router.HandleFunc("/api/oidc/logout", s.Handler.Logout).Methods(http.MethodGet)

	// Health check route.
	router.HandleFunc("/api/health", s.Handler.Health).Methods(http.MethodGet, http.MethodHead)

	// Handle 404.
	router.PathPrefix("/").HandlerFunc(s.Handler.NotFound)

	return router
}
