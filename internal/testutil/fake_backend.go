package testutil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// FakeBackendSecret signs the tokens FakeBackend issues
const FakeBackendSecret = "fake-backend-secret"

type fakeUser struct {
	user          domain.User
	password      string
	twoFactorCode string
}

// FakeBackend serves a MockLedger over the backend's REST contract so the
// upstream client, session and handler layers can be tested end to end.
type FakeBackend struct {
	Ledger   *MockLedger
	Server   *httptest.Server
	TokenTTL time.Duration

	mu      sync.Mutex
	users   map[string]*fakeUser
	revoked map[string]bool
	nextID  int32
}

// NewFakeBackend starts a FakeBackend; it is closed when the test ends
func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()

	fb := &FakeBackend{
		Ledger:   NewMockLedger(),
		TokenTTL: time.Hour,
		users:    make(map[string]*fakeUser),
		revoked:  make(map[string]bool),
		nextID:   1,
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	fb.routes(e.Group("/api"))

	fb.Server = httptest.NewServer(e)
	t.Cleanup(fb.Server.Close)
	return fb
}

// URL returns the API base URL, including the /api prefix
func (fb *FakeBackend) URL() string {
	return fb.Server.URL + "/api"
}

// AddUser registers a user. A non-empty twoFactorCode enables 2FA for it.
func (fb *FakeBackend) AddUser(email, password, twoFactorCode string) domain.User {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	u := &fakeUser{
		user: domain.User{
			ID:               fb.nextID,
			Email:            email,
			TwoFactorEnabled: twoFactorCode != "",
			CreatedAt:        time.Now().Format("2006-01-02T15:04:05"),
		},
		password:      password,
		twoFactorCode: twoFactorCode,
	}
	fb.nextID++
	fb.users[email] = u
	return u.user
}

// IssueToken signs a token for email without a login round trip
func (fb *FakeBackend) IssueToken(email string, ttl time.Duration) string {
	claims := jwt.RegisteredClaims{
		Subject:   email,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(FakeBackendSecret))
	if err != nil {
		panic(err)
	}
	return signed
}

// Revoke makes the backend reject token with 401 from now on
func (fb *FakeBackend) Revoke(token string) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.revoked[token] = true
}

func detail(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{"detail": msg})
}

// ledgerError writes err the way the backend reports failures
func ledgerError(c echo.Context, err error) error {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) && apiErr.Status != 0 {
		return detail(c, apiErr.Status, apiErr.Detail)
	}
	return detail(c, http.StatusInternalServerError, err.Error())
}

func (fb *FakeBackend) routes(api *echo.Group) {
	api.POST("/auth/login", fb.login)
	api.POST("/auth/login/2fa/verify", fb.verify2FA)
	api.POST("/auth/register", fb.register)

	protected := api.Group("", fb.requireToken)
	protected.GET("/users/me", fb.me)

	protected.GET("/accounts/", func(c echo.Context) error {
		body, err := fb.Ledger.ListAccounts(c.Request().Context())
		return reply(c, http.StatusOK, body, err)
	})
	protected.POST("/accounts/", func(c echo.Context) error {
		var input domain.AccountCreate
		if err := c.Bind(&input); err != nil {
			return detail(c, http.StatusUnprocessableEntity, "invalid body")
		}
		body, err := fb.Ledger.CreateAccount(c.Request().Context(), &input)
		return reply(c, http.StatusCreated, body, err)
	})
	protected.PUT("/accounts/:id", func(c echo.Context) error {
		var input domain.AccountUpdate
		if err := c.Bind(&input); err != nil {
			return detail(c, http.StatusUnprocessableEntity, "invalid body")
		}
		body, err := fb.Ledger.UpdateAccount(c.Request().Context(), pathID(c), &input)
		return reply(c, http.StatusOK, body, err)
	})
	protected.DELETE("/accounts/:id", func(c echo.Context) error {
		return noContent(c, fb.Ledger.DeleteAccount(c.Request().Context(), pathID(c)))
	})

	protected.GET("/transactions/", func(c echo.Context) error {
		body, err := fb.Ledger.ListTransactions(c.Request().Context())
		return reply(c, http.StatusOK, body, err)
	})
	protected.POST("/transactions/", func(c echo.Context) error {
		var input domain.TransactionCreate
		if err := c.Bind(&input); err != nil {
			return detail(c, http.StatusUnprocessableEntity, "invalid body")
		}
		body, err := fb.Ledger.CreateTransaction(c.Request().Context(), &input)
		return reply(c, http.StatusCreated, body, err)
	})
	protected.POST("/transactions/transfer", func(c echo.Context) error {
		var input domain.TransferCreate
		if err := c.Bind(&input); err != nil {
			return detail(c, http.StatusUnprocessableEntity, "invalid body")
		}
		return noContent(c, fb.Ledger.Transfer(c.Request().Context(), &input))
	})
	protected.PUT("/transactions/:id", func(c echo.Context) error {
		var input domain.TransactionUpdate
		if err := c.Bind(&input); err != nil {
			return detail(c, http.StatusUnprocessableEntity, "invalid body")
		}
		body, err := fb.Ledger.UpdateTransaction(c.Request().Context(), pathID(c), &input)
		return reply(c, http.StatusOK, body, err)
	})
	protected.DELETE("/transactions/:id", func(c echo.Context) error {
		return noContent(c, fb.Ledger.DeleteTransaction(c.Request().Context(), pathID(c)))
	})
	protected.POST("/description-history/update", func(c echo.Context) error {
		return noContent(c, fb.Ledger.RecordDescription(c.Request().Context(), c.QueryParam("description")))
	})

	protected.GET("/budgets/", func(c echo.Context) error {
		body, err := fb.Ledger.ListBudgets(c.Request().Context())
		return reply(c, http.StatusOK, body, err)
	})
	protected.POST("/budgets/", func(c echo.Context) error {
		var input domain.BudgetCreate
		if err := c.Bind(&input); err != nil {
			return detail(c, http.StatusUnprocessableEntity, "invalid body")
		}
		body, err := fb.Ledger.CreateBudget(c.Request().Context(), &input)
		return reply(c, http.StatusCreated, body, err)
	})
	protected.PUT("/budgets/:id", func(c echo.Context) error {
		var input domain.BudgetUpdate
		if err := c.Bind(&input); err != nil {
			return detail(c, http.StatusUnprocessableEntity, "invalid body")
		}
		body, err := fb.Ledger.UpdateBudget(c.Request().Context(), pathID(c), &input)
		return reply(c, http.StatusOK, body, err)
	})
	protected.DELETE("/budgets/:id", func(c echo.Context) error {
		return noContent(c, fb.Ledger.DeleteBudget(c.Request().Context(), pathID(c)))
	})

	protected.GET("/categories/", func(c echo.Context) error {
		body, err := fb.Ledger.ListCategories(c.Request().Context())
		return reply(c, http.StatusOK, body, err)
	})
	protected.POST("/categories/", func(c echo.Context) error {
		var input domain.CategoryCreate
		if err := c.Bind(&input); err != nil {
			return detail(c, http.StatusUnprocessableEntity, "invalid body")
		}
		body, err := fb.Ledger.CreateCategory(c.Request().Context(), &input)
		return reply(c, http.StatusCreated, body, err)
	})
	protected.POST("/categories/reorder", func(c echo.Context) error {
		var orders []domain.CategoryOrder
		if err := c.Bind(&orders); err != nil {
			return detail(c, http.StatusUnprocessableEntity, "invalid body")
		}
		return noContent(c, fb.Ledger.ReorderCategories(c.Request().Context(), orders))
	})
	protected.PUT("/categories/:id", func(c echo.Context) error {
		var input domain.CategoryUpdate
		if err := c.Bind(&input); err != nil {
			return detail(c, http.StatusUnprocessableEntity, "invalid body")
		}
		body, err := fb.Ledger.UpdateCategory(c.Request().Context(), pathID(c), &input)
		return reply(c, http.StatusOK, body, err)
	})
	protected.DELETE("/categories/:id", func(c echo.Context) error {
		return noContent(c, fb.Ledger.DeleteCategory(c.Request().Context(), pathID(c)))
	})

	protected.GET("/exchange-rates/latest", func(c echo.Context) error {
		body, err := fb.Ledger.ListExchangeRates(c.Request().Context())
		return reply(c, http.StatusOK, body, err)
	})
}

func reply(c echo.Context, status int, body any, err error) error {
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(status, body)
}

func noContent(c echo.Context, err error) error {
	if err != nil {
		return ledgerError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func pathID(c echo.Context) int32 {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 32)
	return int32(id)
}

func (fb *FakeBackend) requireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw, ok := strings.CutPrefix(c.Request().Header.Get("Authorization"), "Bearer ")
		if !ok || raw == "" {
			return detail(c, http.StatusUnauthorized, "Not authenticated")
		}

		fb.mu.Lock()
		revoked := fb.revoked[raw]
		fb.mu.Unlock()
		if revoked {
			return detail(c, http.StatusUnauthorized, "Could not validate credentials")
		}

		claims := &jwt.RegisteredClaims{}
		_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
			return []byte(FakeBackendSecret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil {
			return detail(c, http.StatusUnauthorized, "Could not validate credentials")
		}
		c.Set("email", claims.Subject)
		return next(c)
	}
}

func (fb *FakeBackend) lookup(email, password string) (*fakeUser, bool) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	u, ok := fb.users[email]
	if !ok || u.password != password {
		return nil, false
	}
	return u, true
}

func (fb *FakeBackend) login(c echo.Context) error {
	u, ok := fb.lookup(c.FormValue("username"), c.FormValue("password"))
	if !ok {
		return detail(c, http.StatusUnauthorized, "Incorrect email or password")
	}
	if u.twoFactorCode != "" {
		return c.JSON(http.StatusOK, domain.Token{
			AccessToken: fb.IssueToken(u.user.Email, 5*time.Minute),
			TokenType:   "bearer",
			Requires2FA: true,
		})
	}
	return c.JSON(http.StatusOK, domain.Token{AccessToken: fb.IssueToken(u.user.Email, fb.TokenTTL), TokenType: "bearer"})
}

func (fb *FakeBackend) verify2FA(c echo.Context) error {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Token    string `json:"token"`
	}
	if err := c.Bind(&body); err != nil {
		return detail(c, http.StatusUnprocessableEntity, "invalid body")
	}
	u, ok := fb.lookup(body.Username, body.Password)
	if !ok {
		return detail(c, http.StatusUnauthorized, "Incorrect email or password")
	}
	if u.twoFactorCode == "" || body.Token != u.twoFactorCode {
		return detail(c, http.StatusBadRequest, "Invalid 2FA code")
	}
	return c.JSON(http.StatusOK, domain.Token{AccessToken: fb.IssueToken(u.user.Email, fb.TokenTTL), TokenType: "bearer"})
}

func (fb *FakeBackend) register(c echo.Context) error {
	var body domain.RegisterRequest
	if err := c.Bind(&body); err != nil {
		return detail(c, http.StatusUnprocessableEntity, "invalid body")
	}
	if body.Email == "" || len(body.Password) < 8 {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"detail": []map[string]string{{"msg": "Password must be at least 8 characters"}},
		})
	}
	fb.mu.Lock()
	_, exists := fb.users[body.Email]
	fb.mu.Unlock()
	if exists {
		return detail(c, http.StatusBadRequest, "Email already registered")
	}
	return c.JSON(http.StatusCreated, fb.AddUser(body.Email, body.Password, ""))
}

func (fb *FakeBackend) me(c echo.Context) error {
	email, _ := c.Get("email").(string)
	fb.mu.Lock()
	defer fb.mu.Unlock()
	u, ok := fb.users[email]
	if !ok {
		return detail(c, http.StatusNotFound, "User not found")
	}
	return c.JSON(http.StatusOK, u.user)
}
