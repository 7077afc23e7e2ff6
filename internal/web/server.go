// Package web serves the storyboard page over HTTP with gin. Every request
// builds, renders and forgets its own GenerationResult; the download button
// posts the encoded result back instead of relying on server-side sessions.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/brogergvhs/hqnews/internal/comic"
	"github.com/brogergvhs/hqnews/internal/news"
	"github.com/brogergvhs/hqnews/internal/ui"

	"github.com/gin-gonic/gin"
)

type Builder interface {
	Build(ctx context.Context, req news.Request, opts comic.Options) (*comic.GenerationResult, error)
}

type Options struct {
	// DefaultAPIKey is used when the AI box is ticked but no key was typed.
	DefaultAPIKey string
}

type Server struct {
	builder Builder
	log     *ui.Logger
	stats   *ui.Stats
	opts    Options
}

func NewServer(b Builder, log *ui.Logger, stats *ui.Stats, opts Options) *Server {
	if stats == nil {
		stats = &ui.Stats{}
	}

	return &Server{builder: b, log: log, stats: stats, opts: opts}
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/", s.Index)
	r.POST("/generate", s.Generate)
	r.POST("/download", s.Download)
	r.POST("/api/generate", s.APIGenerate)
	r.GET("/healthz", s.Health)

	return r
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.log.Slog().Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).Round(time.Millisecond),
		)
	}
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.log.Infof("Listening on %s", addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.log.Infof("Shutting down")
	return srv.Shutdown(shutdownCtx)
}
