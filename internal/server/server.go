// Package server serves the portfolio page over HTTP with gin.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/noobstar3310/aikwei-dev/internal/content"
	"github.com/noobstar3310/aikwei-dev/internal/render"
	"github.com/noobstar3310/aikwei-dev/internal/theme"
)

const shutdownTimeout = 5 * time.Second

// Deps is everything New needs.
type Deps struct {
	Addr     string
	GinMode  string
	Profile  content.Profile
	Observer theme.ObserverConfig
	Logger   zerolog.Logger
	// Registry receives the HTTP metrics and backs /metrics. A fresh one is
	// created when nil.
	Registry *prometheus.Registry
}

// Server is the HTTP surface of the site.
type Server struct {
	addr    string
	engine  *gin.Engine
	log     zerolog.Logger
	metrics *Metrics
	tmpl    *template.Template
	docs    map[theme.Mode]render.Document
}

// New renders both theme variants of the page up front and wires the
// routes.
func New(d Deps) (*Server, error) {
	if d.GinMode != "" {
		gin.SetMode(d.GinMode)
	}
	reg := d.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	tmpl, err := render.Templates()
	if err != nil {
		return nil, err
	}
	docs := make(map[theme.Mode]render.Document, 2)
	for _, m := range []theme.Mode{theme.Light, theme.Dark} {
		doc, err := render.NewDocument(d.Profile, m, d.Observer)
		if err != nil {
			return nil, fmt.Errorf("prerender %s page: %w", m, err)
		}
		docs[m] = doc
	}

	s := &Server{
		addr:    d.Addr,
		engine:  gin.New(),
		log:     d.Logger,
		metrics: NewMetrics(reg),
		tmpl:    tmpl,
		docs:    docs,
	}
	s.engine.Use(requestLogger(s.log), recovery(s.log), instrument(s.metrics))
	s.routes(reg)
	return s, nil
}

func (s *Server) routes(reg *prometheus.Registry) {
	r := s.engine

	r.StaticFS("/static", http.FS(render.Static()))

	// Home page route
	r.GET("/", s.home)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
}

// home serves the page. ?theme=dark pre-renders the dark palette; anything
// unrecognised falls back to light.
func (s *Server) home(c *gin.Context) {
	mode, err := theme.ParseMode(c.Query("theme"))
	if err != nil {
		s.log.Debug().Err(err).Msg("falling back to light theme")
		mode = theme.Light
	}
	// Render into a buffer first so a failing template never reaches the
	// client as a truncated 200.
	var buf bytes.Buffer
	if err := render.WriteDocument(&buf, s.tmpl, s.docs[mode]); err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	s.metrics.renders.WithLabelValues(mode.String()).Inc()
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// Handler exposes the engine, mainly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen %s: %w", s.addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
