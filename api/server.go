package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/jfalcomer/devblog-backend/config"
	"github.com/jfalcomer/devblog-backend/database"
	"github.com/jfalcomer/devblog-backend/services"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(db database.Database, cfg *config.Config, storage services.Storage, notifier *services.ContactNotifier) (Server, error) {
	address := fmt.Sprintf("0.0.0.0:%s", cfg.Port)

	// Capture startup time
	startupTime := time.Now()

	router := newRouter(db, withConfig(cfg), withStartupTime(startupTime), withStorage(storage), withNotifier(notifier))

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSeconds) * time.Second,
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      *config.Config
	startupTime time.Time
	storage     services.Storage
	notifier    *services.ContactNotifier
}

func withConfig(cfg *config.Config) func(*router) {
	return func(r *router) {
		r.config = cfg
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func withStorage(storage services.Storage) func(*router) {
	return func(r *router) {
		r.storage = storage
	}
}

func withNotifier(notifier *services.ContactNotifier) func(*router) {
	return func(r *router) {
		r.notifier = notifier
	}
}

func newRouter(db database.Database, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(RequestIDMiddleware)
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(HTTPLoggingMiddleware)

	allowedOrigins := []string{"*"}
	if router.config != nil && len(router.config.CORS.AllowedOrigins) > 0 {
		allowedOrigins = router.config.CORS.AllowedOrigins
	}
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	handlers := initializeHandlers(db, router.storage, router.notifier)

	setupRoutes(chiRouter, handlers)

	startupTime := router.startupTime
	chiRouter.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		NewResponder(log.Logger).WriteJSON(w, map[string]string{
			"status": "ok",
			"uptime": time.Since(startupTime).String(),
		})
	})

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
