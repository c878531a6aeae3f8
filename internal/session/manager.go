package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/dafibh/fortuna/ledger-gateway/internal/upstream"
	"github.com/dafibh/fortuna/ledger-gateway/internal/websocket"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultIdleTTL is how long an unused session is kept
	DefaultIdleTTL = 30 * time.Minute
	// maxSweepInterval caps how often idle sessions are looked for
	maxSweepInterval = time.Minute
)

// Options configures a Manager
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	JWTSecret string
	IdleTTL   time.Duration
	Publisher websocket.EventPublisher
	Now       func() time.Time
}

// Manager creates, resolves and tears down sessions. It is safe for
// concurrent use.
type Manager struct {
	opts Options
	anon *upstream.Client

	mu      sync.RWMutex
	byID    map[string]*Session
	byToken map[string]string
	opening singleflight.Group

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewManager creates a Manager and starts its idle sweeper
func NewManager(opts Options) *Manager {
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = DefaultIdleTTL
	}
	if opts.Publisher == nil {
		opts.Publisher = &websocket.NoOpPublisher{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	m := &Manager{
		opts:    opts,
		anon:    upstream.NewClient(opts.BaseURL, opts.Timeout),
		byID:    make(map[string]*Session),
		byToken: make(map[string]string),
		stopCh:  make(chan struct{}),
	}

	go m.sweepLoop(min(opts.IdleTTL/2, maxSweepInterval))

	return m
}

// Stop ends the idle sweeper. Sessions are left in place.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
}

// TwoFactorError is returned by Login when the backend wants a second factor.
// Token is the temporary credential the backend issued.
type TwoFactorError struct {
	Token *domain.Token
}

func (e *TwoFactorError) Error() string {
	return domain.ErrTwoFactorRequired.Error()
}

func (e *TwoFactorError) Unwrap() error {
	return domain.ErrTwoFactorRequired
}

// Login authenticates against the backend and opens a session. When the
// account has 2FA enabled no session is created and a *TwoFactorError is
// returned.
func (m *Manager) Login(ctx context.Context, creds domain.Credentials) (*Session, error) {
	token, err := m.anon.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	if token.Requires2FA {
		log.Info().Str("username", creds.Username).Msg("Login requires 2FA verification")
		return nil, &TwoFactorError{Token: token}
	}
	return m.Attach(ctx, token.AccessToken)
}

// VerifyTwoFactor completes a 2FA login and opens a session
func (m *Manager) VerifyTwoFactor(ctx context.Context, creds domain.Credentials, code string) (*Session, error) {
	token, err := m.anon.VerifyTwoFactor(ctx, creds, code)
	if err != nil {
		return nil, err
	}
	return m.Attach(ctx, token.AccessToken)
}

// Register creates a backend account. It does not log in.
func (m *Manager) Register(ctx context.Context, input *domain.RegisterRequest) (*domain.User, error) {
	return m.anon.Register(ctx, input)
}

// Attach resolves the session for a backend token, opening and loading a
// new one the first time the token is seen. Concurrent first attaches for
// the same token share one load and all see the loaded session; a session
// is registered only once its load has finished.
func (m *Manager) Attach(ctx context.Context, token string) (*Session, error) {
	now := m.opts.Now()

	if sess, ok := m.byTokenLookup(token); ok {
		if sess.Expired(now) {
			m.teardown(sess.ID, websocket.SessionExpired())
			return nil, fmt.Errorf("%w: token expired", domain.ErrUnauthorized)
		}
		sess.touch(now)
		return sess, nil
	}

	subject, expiresAt, err := m.parseToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if !expiresAt.IsZero() && !now.Before(expiresAt) {
		return nil, fmt.Errorf("%w: token expired", domain.ErrUnauthorized)
	}

	// The load outlives a caller that gives up, so the other waiters still get it
	opened := m.opening.DoChan(token, func() (any, error) {
		if sess, ok := m.byTokenLookup(token); ok {
			return sess, nil
		}
		return m.open(context.WithoutCancel(ctx), token, subject, expiresAt)
	})

	select {
	case res := <-opened:
		if res.Err != nil {
			return nil, res.Err
		}
		sess := res.Val.(*Session)
		sess.touch(m.opts.Now())
		return sess, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// open creates a session for token, loads every store and registers it.
// A session whose token the backend rejects while loading is never registered.
func (m *Manager) open(ctx context.Context, token, subject string, expiresAt time.Time) (*Session, error) {
	id := uuid.NewString()
	var rejected atomic.Bool

	client := upstream.NewClient(m.opts.BaseURL, m.opts.Timeout).WithToken(token)
	client.OnUnauthorized(func() {
		rejected.Store(true)
		m.expire(id)
	})
	sess := newSession(id, subject, expiresAt, client, func(storeName string) {
		m.opts.Publisher.Publish(id, websocket.StoreRefreshed(storeName, nil))
	}, m.opts.Now())

	if err := sess.Load(ctx); err != nil {
		return nil, err
	}
	if rejected.Load() {
		return nil, fmt.Errorf("%w: token rejected by backend", domain.ErrUnauthorized)
	}

	m.mu.Lock()
	m.byID[id] = sess
	m.byToken[token] = id
	m.mu.Unlock()

	log.Info().Str("session_id", id).Str("subject", subject).Msg("Session opened")
	return sess, nil
}

// Get returns the session with the given id and marks it used
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	sess, ok := m.byID[id]
	m.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	sess.touch(m.opts.Now())
	return sess, nil
}

func (m *Manager) byTokenLookup(token string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.byToken[token]
	if !ok {
		return nil, false
	}
	sess, ok := m.byID[id]
	return sess, ok
}

// Logout drops the session and disconnects its WebSocket clients
func (m *Manager) Logout(id string) error {
	if !m.teardown(id, websocket.SessionClosed()) {
		return domain.ErrSessionNotFound
	}
	log.Info().Str("session_id", id).Msg("Session closed")
	return nil
}

// Count returns the number of open sessions
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byID)
}

// expire runs when the backend answers 401 to a session's call
func (m *Manager) expire(id string) {
	if m.teardown(id, websocket.SessionExpired()) {
		log.Warn().Str("session_id", id).Msg("Backend rejected session token, session reset")
	}
}

func (m *Manager) teardown(id string, final websocket.Event) bool {
	m.mu.Lock()
	sess, ok := m.byID[id]
	if ok {
		delete(m.byID, id)
		delete(m.byToken, sess.token)
	}
	m.mu.Unlock()

	if ok {
		m.opts.Publisher.CloseSession(id, final)
	}
	return ok
}

func (m *Manager) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.sweep(m.opts.Now())
		case <-m.stopCh:
			return
		}
	}
}

// sweep tears down sessions idle for longer than IdleTTL or whose token expired
func (m *Manager) sweep(now time.Time) int {
	m.mu.RLock()
	var stale []string
	for id, sess := range m.byID {
		if now.Sub(sess.LastSeen()) > m.opts.IdleTTL || sess.Expired(now) {
			stale = append(stale, id)
		}
	}
	m.mu.RUnlock()

	removed := 0
	for _, id := range stale {
		if m.teardown(id, websocket.SessionExpired()) {
			removed++
		}
	}
	if removed > 0 {
		log.Debug().Int("removed", removed).Int("remaining", m.Count()).Msg("Swept idle sessions")
	}
	return removed
}

// parseToken extracts subject and expiry. The signature is checked only
// when a secret is configured; otherwise the backend stays the authority.
func (m *Manager) parseToken(raw string) (string, time.Time, error) {
	claims := &jwt.RegisteredClaims{}

	if m.opts.JWTSecret != "" {
		_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
			return []byte(m.opts.JWTSecret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(m.opts.Now))
		if err != nil {
			return "", time.Time{}, err
		}
	} else if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return "", time.Time{}, err
	}

	if claims.Subject == "" {
		return "", time.Time{}, errors.New("token has no subject")
	}
	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return claims.Subject, expiresAt, nil
}
