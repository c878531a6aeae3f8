package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dafibh/fortuna/ledger-gateway/internal/config"
	"github.com/dafibh/fortuna/ledger-gateway/internal/handler"
	"github.com/dafibh/fortuna/ledger-gateway/internal/middleware"
	"github.com/dafibh/fortuna/ledger-gateway/internal/service"
	"github.com/dafibh/fortuna/ledger-gateway/internal/session"
	"github.com/dafibh/fortuna/ledger-gateway/internal/websocket"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title Ledger Gateway API
// @version 1.0
// @description Session-scoped gateway over the accounting backend with budget and dashboard aggregation.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the backend access token.
func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// WebSocket hub receives store refreshes and session teardowns
	hub := websocket.NewHub()

	// Session manager owns every logged-in user's stores
	sessions := session.NewManager(session.Options{
		BaseURL:   cfg.UpstreamAPIURL,
		Timeout:   cfg.UpstreamTimeout,
		JWTSecret: cfg.JWTSecret,
		IdleTTL:   cfg.SessionIdleTTL,
		Publisher: hub,
	})
	defer sessions.Stop()
	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET not set, token signatures are left to the backend")
	}
	log.Info().Str("upstream", cfg.UpstreamAPIURL).Msg("Using accounting backend")

	// Initialize services
	budgetService := service.NewBudgetService(time.Now)
	dashboardService := service.NewDashboardService(budgetService, time.Now)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(sessions)
	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	defer rateLimiter.Stop()

	// Initialize handlers
	handlers := handler.Handlers{
		Auth:         handler.NewAuthHandler(sessions),
		Account:      handler.NewAccountHandler(),
		Transaction:  handler.NewTransactionHandler(time.Now),
		Budget:       handler.NewBudgetHandler(budgetService),
		Category:     handler.NewCategoryHandler(),
		ExchangeRate: handler.NewExchangeRateHandler(),
		Dashboard:    handler.NewDashboardHandler(dashboardService),
		Refresh:      handler.NewRefreshHandler(),
		WebSocket:    handler.NewWebSocketHandler(hub, sessions, cfg.CORSOrigins),
		Health:       handler.NewHealthHandler(sessions, hub),
		OpenAPI:      handler.NewOpenAPIHandler(cfg.PublicURL),
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Security headers middleware (helmet-like)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Register API routes
	handler.RegisterRoutes(e, authMiddleware, rateLimiter, handlers)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Int("sessions", sessions.Count()).Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// zerologMiddleware returns a middleware that logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			event := log.Info()
			if res.Status >= http.StatusInternalServerError {
				event = log.Error()
			}
			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			return nil
		}
	}
}
