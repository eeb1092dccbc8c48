// Package server serves the portfolio over HTTP: an HTML page, the content
// as JSON, and the console typewriter as a Server-Sent-Events stream.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olivier-w/folio/internal/config"
	"github.com/olivier-w/folio/internal/typewriter"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templates embed.FS

const shutdownTimeout = 5 * time.Second

// Server is the HTTP host for the portfolio.
type Server struct {
	cfg    config.Config
	log    *zap.Logger
	engine *gin.Engine
}

// New builds a server with its routes registered. cfg must already be
// validated.
func New(cfg config.Config, log *zap.Logger) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}
	tmpl, err := template.ParseFS(templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("server: templates: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	s := &Server{cfg: cfg, log: log.Named("server"), engine: gin.New()}
	s.engine.Use(gin.Recovery(), requestLogger(s.log))
	s.engine.SetHTMLTemplate(tmpl)

	s.engine.GET("/", s.index)
	s.engine.GET("/healthz", s.health)
	api := s.engine.Group("/api")
	api.GET("/portfolio", s.portfolio)
	api.GET("/console", s.console)
	return s, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.log.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	<-errc
	return nil
}

func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Content": s.cfg.Content,
		"Year":    time.Now().Year(),
	})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) portfolio(c *gin.Context) {
	c.JSON(http.StatusOK, s.cfg.Content)
}

// console streams typewriter frames until the client goes away. An
// optional frames query parameter ends the stream after that many events.
func (s *Server) console(c *gin.Context) {
	limit := 0
	if q := c.Query("frames"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "frames must be a non-negative integer"})
			return
		}
		limit = n
	}

	a := s.cfg.Animation
	anim, err := typewriter.New(s.cfg.Content.Console, a.CharDelay, a.PauseDelay)
	if err != nil {
		s.log.Error("console unavailable", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "console unavailable"})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	sent := 0
	err = typewriter.Run(c.Request.Context(), anim, func(f typewriter.Frame) bool {
		c.SSEvent("line", f)
		c.Writer.Flush()
		sent++
		return limit == 0 || sent < limit
	})
	if err != nil {
		s.log.Debug("console client gone", zap.Int("frames", sent), zap.Error(err))
	}
}
