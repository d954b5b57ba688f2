// Package web serves the generator page, the live preview and the JSON API
// over one in-memory layout configuration.
package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phravins/pagecraft/internal/content"
	"github.com/phravins/pagecraft/internal/export"
	"github.com/phravins/pagecraft/internal/layout"
	"github.com/phravins/pagecraft/pkg/logger"
)

// maxUploadBytes bounds a whole multipart upload.
const maxUploadBytes = 32 << 20

type Server struct {
	store         *layout.Store
	gen           *content.Generator
	log           *slog.Logger
	defaultFormat export.Format
}

type ServerOption func(*Server)

// WithDefaultFormat sets the format used when a request names none.
func WithDefaultFormat(f export.Format) ServerOption {
	return func(s *Server) { s.defaultFormat = f }
}

func NewServer(store *layout.Store, gen *content.Generator, log *slog.Logger, opts ...ServerOption) *Server {
	if log == nil {
		log = logger.Discard()
	}
	s := &Server{
		store:         store,
		gen:           gen,
		log:           log.With(logger.Scope("web")),
		defaultFormat: export.FormatReact,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  slog.NewLogLogger(s.log.Handler(), slog.LevelInfo),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/preview", s.handlePreview)
	r.Get("/health", handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/config", s.handleGetConfig)
		r.Patch("/config", s.handlePatchConfig)
		r.Post("/config/reset", s.handleResetConfig)
		r.Post("/generate", s.handleGenerate)
		r.Post("/images", s.handleAddImages)
		r.Delete("/images", s.handleClearImages)
		r.Get("/export", s.handleExport)
		r.Get("/export/zip", s.handleExportZip)
	})

	return r
}

// StartServer listens on port until ctx is cancelled.
func StartServer(ctx context.Context, port string, s *Server) error {
	addr := ":" + port
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", slog.String("url", fmt.Sprintf("http://localhost%s", addr)))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info("server stopping")
		return srv.Shutdown(shutdownCtx)
	}
}
