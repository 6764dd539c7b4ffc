// Package server wires the portfolio's HTTP surface onto gin.
package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/neozi12/portfolio/internal/analytics"
	"github.com/neozi12/portfolio/internal/catalog"
	"github.com/neozi12/portfolio/internal/config"
	"github.com/neozi12/portfolio/internal/site"
	"github.com/neozi12/portfolio/web"
)

// Options are the dependencies of a Server.
type Options struct {
	Config    *config.Config
	Catalogs  *catalog.Store
	Analytics *analytics.Store
	Logger    *slog.Logger
	Registry  *prometheus.Registry
}

// Server serves the portfolio page, its JSON API and the admin area.
type Server struct {
	cfg       *config.Config
	catalogs  *catalog.Store
	analytics *analytics.Store
	logger    *slog.Logger

	renderer *site.Renderer
	tmpl     *template.Template
	metrics  *metrics
	registry *prometheus.Registry
	hasher   *analytics.Hasher
	limiter  *clientLimiter

	adminToken string

	pageMu    sync.Mutex
	pageFor   *catalog.Catalog
	pageCache *site.Page

	engine *gin.Engine
}

// New builds a Server and its routes.
func New(opts Options) (*Server, error) {
	if opts.Config == nil || opts.Catalogs == nil || opts.Analytics == nil {
		return nil, errors.New("server: config, catalogs and analytics are required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	tmpl, err := site.Templates()
	if err != nil {
		return nil, err
	}
	salt, err := analytics.NewToken()
	if err != nil {
		return nil, err
	}
	token, err := analytics.NewToken()
	if err != nil {
		return nil, err
	}

	cfg := opts.Config
	s := &Server{
		cfg:       cfg,
		catalogs:  opts.Catalogs,
		analytics: opts.Analytics,
		logger:    logger,
		renderer: site.NewRenderer(site.Hero{
			Owner:   cfg.Owner,
			Welcome: cfg.WelcomeText,
			Intro:   cfg.IntroText,
		}, int(cfg.AutoplayPeriod().Milliseconds())),
		tmpl:       tmpl,
		metrics:    newMetrics(reg),
		registry:   reg,
		hasher:     analytics.NewHasher(salt),
		limiter:    newClientLimiter(cfg.RateLimit, cfg.RateBurst),
		adminToken: token,
	}
	if err := s.routes(); err != nil {
		return nil, err
	}
	return s, nil
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes() error {
	r := gin.Default()
	r.SetHTMLTemplate(s.tmpl)
	r.Use(requestID(), s.observe(), s.trackVisitors())

	static, err := fs.Sub(web.Static, "static")
	if err != nil {
		return fmt.Errorf("static assets: %w", err)
	}
	r.StaticFS("/static", http.FS(static))
	r.Static("/screenshots", s.cfg.ScreenshotsDir)

	r.GET("/", s.index)
	r.GET("/privacy", s.privacy)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	api := r.Group("/api", s.rateLimit())
	api.GET("/health", s.health)
	api.GET("/projects", s.listProjects)
	api.GET("/projects/:key", s.getProject)

	r.GET("/go/:key/:link", s.rateLimit(), s.outbound)

	s.setupAdminRoutes(r)
	s.engine = r
	return nil
}

// Run serves until ctx is cancelled, then shuts down gracefully. Expired
// visitor records are purged on start and daily.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.cleanupLoop(ctx, 24*time.Hour)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("portfolio listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

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
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	s.logger.Info("portfolio stopped")
	return nil
}

func (s *Server) cleanupLoop(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		s.cleanupVisitors(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *Server) cleanupVisitors(ctx context.Context) {
	n, err := s.analytics.Cleanup(ctx, s.cfg.Retention())
	if err != nil {
		s.logger.Error("visitor cleanup failed", "error", err)
		return
	}
	if n > 0 {
		s.logger.Info("privacy cleanup removed expired visitor records", "rows", n, "retention_days", s.cfg.RetentionDays)
	}
}

// page renders the current catalog, reusing the last result until the
// catalog is replaced.
func (s *Server) page() (*site.Page, error) {
	cat := s.catalogs.Current()

	s.pageMu.Lock()
	defer s.pageMu.Unlock()
	if s.pageCache != nil && s.pageFor == cat {
		return s.pageCache, nil
	}
	p, err := s.renderer.Page(cat)
	if err != nil {
		return nil, err
	}
	p.TrackLinks = true
	s.pageFor, s.pageCache = cat, p
	return p, nil
}
