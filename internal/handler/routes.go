package handler

import (
	"github.com/dafibh/fortuna/ledger-gateway/internal/middleware"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers groups every handler the API routes need
type Handlers struct {
	Auth         *AuthHandler
	Account      *AccountHandler
	Transaction  *TransactionHandler
	Budget       *BudgetHandler
	Category     *CategoryHandler
	ExchangeRate *ExchangeRateHandler
	Dashboard    *DashboardHandler
	Refresh      *RefreshHandler
	WebSocket    *WebSocketHandler
	Health       *HealthHandler
	OpenAPI      *OpenAPIHandler
}

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter, h Handlers) {
	e.GET("/health", h.Health.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API version 1
	api := e.Group("/api/v1")
	api.GET("/ws", h.WebSocket.HandleWS)
	api.GET("/openapi.json", h.OpenAPI.ServeOpenAPI3Spec)

	// Auth routes (public)
	auth := api.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/login/2fa/verify", h.Auth.VerifyTwoFactor)
	auth.POST("/register", h.Auth.Register)

	// Everything below resolves the bearer token to a session first
	protected := api.Group("")
	protected.Use(authMiddleware.Authenticate())
	protected.Use(middleware.RateLimitMiddleware(rateLimiter))

	protected.GET("/auth/me", h.Auth.Me)
	protected.POST("/auth/logout", h.Auth.Logout)

	// Account routes
	accounts := protected.Group("/accounts")
	accounts.GET("", h.Account.GetAccounts)
	accounts.POST("", h.Account.CreateAccount)
	accounts.GET("/:id", h.Account.GetAccount)
	accounts.PUT("/:id", h.Account.UpdateAccount)
	accounts.DELETE("/:id", h.Account.DeleteAccount)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.GET("", h.Transaction.GetTransactions)
	transactions.POST("", h.Transaction.CreateTransaction)
	transactions.POST("/transfers", h.Transaction.CreateTransfer)
	transactions.PUT("/:id", h.Transaction.UpdateTransaction)
	transactions.DELETE("/:id", h.Transaction.DeleteTransaction)

	// Budget routes
	budgets := protected.Group("/budgets")
	budgets.GET("", h.Budget.GetBudgets)
	budgets.POST("", h.Budget.CreateBudget)
	budgets.GET("/views", h.Budget.GetBudgetViews)
	budgets.GET("/defaults", h.Budget.GetDefaults)
	budgets.PUT("/:id", h.Budget.UpdateBudget)
	budgets.DELETE("/:id", h.Budget.DeleteBudget)

	// Category routes
	categories := protected.Group("/categories")
	categories.GET("", h.Category.GetCategories)
	categories.POST("", h.Category.CreateCategory)
	categories.POST("/reorder", h.Category.ReorderCategories)
	categories.PUT("/:id", h.Category.UpdateCategory)
	categories.DELETE("/:id", h.Category.DeleteCategory)

	protected.GET("/exchange-rates", h.ExchangeRate.GetExchangeRates)
	protected.GET("/dashboard", h.Dashboard.GetSummary)
	protected.POST("/refresh", h.Refresh.Refresh)
}
