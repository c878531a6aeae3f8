package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/dafibh/fortuna/ledger-gateway/internal/middleware"
	"github.com/dafibh/fortuna/ledger-gateway/internal/service"
	"github.com/dafibh/fortuna/ledger-gateway/internal/websocket"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, f *handlerFixture, limiter *middleware.RateLimiter) *echo.Echo {
	t.Helper()
	hub := websocket.NewHub()
	budgets := service.NewBudgetService(fixedClock)

	e := echo.New()
	RegisterRoutes(e, middleware.NewAuthMiddleware(f.manager), limiter, Handlers{
		Auth:         NewAuthHandler(f.manager),
		Account:      NewAccountHandler(),
		Transaction:  NewTransactionHandler(fixedClock),
		Budget:       NewBudgetHandler(budgets),
		Category:     NewCategoryHandler(),
		ExchangeRate: NewExchangeRateHandler(),
		Dashboard:    NewDashboardHandler(service.NewDashboardService(budgets, fixedClock)),
		Refresh:      NewRefreshHandler(),
		WebSocket:    NewWebSocketHandler(hub, f.manager, nil),
		Health:       NewHealthHandler(f.manager, hub),
		OpenAPI:      NewOpenAPIHandler(""),
	})
	return e
}

func serve(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRoutes_LoginThenUseToken(t *testing.T) {
	f := newHandlerFixture(t)
	f.backend.Ledger.AddAccount(domain.Account{ID: 1, Name: "Checking", AccountType: domain.AccountTypeBank, Currency: "USD", Balance: decimal.NewFromInt(10)})
	limiter := middleware.NewRateLimiter()
	t.Cleanup(limiter.Stop)
	e := newTestServer(t, f, limiter)

	rec := serve(e, http.MethodPost, "/api/v1/auth/login", "", `{"username":"ana@example.com","password":"s3cret-pass"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	login := decodeBody[LoginResponse](t, rec)

	rec = serve(e, http.MethodGet, "/api/v1/accounts", login.AccessToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	accounts := decodeBody[ListResponse[AccountResponse]](t, rec)
	require.Len(t, accounts.Items, 1)
	assert.Equal(t, "10.00", accounts.Items[0].Balance)
	assert.Equal(t, 1, f.manager.Count(), "the token resolves to the login's session")

	rec = serve(e, http.MethodGet, "/api/v1/auth/me", login.AccessToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, login.SessionID, decodeBody[SessionResponse](t, rec).SessionID)

	rec = serve(e, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	health := decodeBody[HealthResponse](t, rec)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, 1, health.Sessions)

	rec = serve(e, http.MethodPost, "/api/v1/auth/logout", login.AccessToken, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 0, f.manager.Count())
}

func TestRoutes_RequireBearerToken(t *testing.T) {
	f := newHandlerFixture(t)
	limiter := middleware.NewRateLimiter()
	t.Cleanup(limiter.Stop)
	e := newTestServer(t, f, limiter)

	tests := []struct {
		name  string
		token string
	}{
		{"no token", ""},
		{"garbage token", "not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, target := range []string{"/api/v1/accounts", "/api/v1/dashboard", "/api/v1/budgets/views"} {
				rec := serve(e, http.MethodGet, target, tt.token, "")
				assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
			}
		})
	}
}

func TestRoutes_RevokedTokenResetsSession(t *testing.T) {
	f := newHandlerFixture(t)
	limiter := middleware.NewRateLimiter()
	t.Cleanup(limiter.Stop)
	e := newTestServer(t, f, limiter)
	sess := f.login(t)

	f.backend.Revoke(sess.Token())

	rec := serve(e, http.MethodPost, "/api/v1/refresh", sess.Token(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	status := decodeBody[StoreStatusResponse](t, rec)
	assert.Equal(t, "Could not validate credentials", status.Accounts.Error)
	assert.Equal(t, 0, f.manager.Count())

	rec = serve(e, http.MethodGet, "/api/v1/accounts", sess.Token(), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoutes_RateLimited(t *testing.T) {
	f := newHandlerFixture(t)
	limiter := middleware.NewRateLimiterWithConfig(60, 2)
	t.Cleanup(limiter.Stop)
	e := newTestServer(t, f, limiter)
	sess := f.login(t)

	var codes []int
	for i := 0; i < 3; i++ {
		codes = append(codes, serve(e, http.MethodGet, "/api/v1/categories", sess.Token(), "").Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// Auth routes are not limited
	rec := serve(e, http.MethodPost, "/api/v1/auth/login", "", `{"username":"ana@example.com","password":"s3cret-pass"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRefresh_ReloadsStores(t *testing.T) {
	f := newHandlerFixture(t)
	sess := f.login(t)
	assert.Empty(t, sess.Categories.Categories())

	f.backend.Ledger.AddCategory(domain.Category{ID: 4, Name: "Gifts"})

	c, rec := newSessionContext(sess, http.MethodPost, "/api/v1/refresh", "")
	require.NoError(t, NewRefreshHandler().Refresh(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	status := decodeBody[StoreStatusResponse](t, rec)
	assert.Empty(t, status.Categories.Error)
	assert.False(t, status.Categories.Loading)
	require.Len(t, sess.Categories.Categories(), 1)
	assert.Equal(t, "Gifts", sess.Categories.Categories()[0].Name)
}

func TestHealth(t *testing.T) {
	f := newHandlerFixture(t)
	hub := websocket.NewHub()
	c, rec := newJSONContext(http.MethodGet, "/health", "")

	require.NoError(t, NewHealthHandler(f.manager, hub).Health(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, HealthResponse{Status: "ok"}, decodeBody[HealthResponse](t, rec))
}
