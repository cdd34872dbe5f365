package api

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/seoscan/api/handler"
	"github.com/use-agent/seoscan/api/middleware"
	"github.com/use-agent/seoscan/config"
	"github.com/use-agent/seoscan/web"
)

const (
	limiterSweepInterval = 5 * time.Minute
	limiterIdleTTL       = time.Hour
)

// NewRouter creates a configured Gin engine with all routes and middleware.
//
// Middleware chain:
//
//	Global:  Recovery → Logger
//	Scan:    Auth (if enabled) → RateLimit → NoCache
//
// POST /scan and POST /results both start scans and share the same guard
// chain and rate-limit buckets; /results renders rejections as the form.
// Health and the index page sit outside auth and rate limiting. The
// rate limiter's eviction loop stops when ctx is done.
func NewRouter(ctx context.Context, sc handler.Scanner, cfg *config.Config, startTime time.Time) (*gin.Engine, error) {
	gin.SetMode(cfg.Server.Mode)

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.SetHTMLTemplate(tmpl)

	r.HandleMethodNotAllowed = true
	r.NoMethod(handler.MethodNotAllowed())

	r.GET("/health", handler.Health(handler.ProviderStatus{
		AuditConfigured:     cfg.Audit.APIKey != "",
		RecommendConfigured: cfg.Recommend.APIKey != "",
	}, startTime))

	limiter := middleware.NewScanLimiter(cfg.RateLimit)
	go limiter.Run(ctx, limiterSweepInterval, limiterIdleTTL)

	pages := handler.Pages{Scanner: sc, AuthRequired: cfg.Auth.Enabled}
	r.GET("/", pages.Index())

	r.POST("/scan", scanChain(cfg.Auth, limiter, middleware.JSON, handler.Scan(sc))...)
	r.POST("/results", scanChain(cfg.Auth, limiter, pages.Reject, pages.Results())...)

	return r, nil
}

// scanChain guards a route that starts a scan.
func scanChain(auth config.AuthConfig, limiter *middleware.ScanLimiter, deny middleware.Responder, h gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, 4)
	if auth.Enabled {
		chain = append(chain, middleware.Auth(auth.APIKeys, deny))
	}
	return append(chain, limiter.Middleware(deny), middleware.NoCache(), h)
}
