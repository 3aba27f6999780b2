package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"dcasim/internal/engine"
)

// Server is the HTTP boundary. It parses and validates requests into
// plans; the engine behind it assumes well-formed input.
type Server struct {
	engine *engine.Engine
	log    zerolog.Logger
	router chi.Router
}

func New(eng *engine.Engine, log zerolog.Logger) *Server {
	s := &Server{
		engine: eng,
		log:    log.With().Str("component", "server").Logger(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/simulate", s.handleSimulate)
		r.Get("/simulate/series", s.handleSeries)
		r.Get("/simulate/series.csv", s.handleSeriesCSV)
	})

	s.router = r
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe blocks serving HTTP on the given port.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	s.log.Info().Str("addr", addr).Msg("http server listening")

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}
