package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/dafibh/fortuna/ledger-gateway/internal/session"
	"github.com/dafibh/fortuna/ledger-gateway/internal/websocket"
	"github.com/spf13/viper"
)

var errNoToken = errors.New("not logged in: run 'ledgerctl login' or set LEDGER_TOKEN")

// newManager builds a session manager against the configured backend. The
// CLI has no WebSocket clients, so refresh events go nowhere.
func newManager() *session.Manager {
	return session.NewManager(session.Options{
		BaseURL:   viper.GetString("api_url"),
		Timeout:   viper.GetDuration("timeout"),
		Publisher: &websocket.NoOpPublisher{},
	})
}

// withSession opens a session for the saved token, loads every store and
// hands it to fn.
func withSession(ctx context.Context, fn func(*session.Session) error) error {
	token := viper.GetString("token")
	if token == "" {
		return errNoToken
	}

	manager := newManager()
	defer manager.Stop()

	sess, err := manager.Attach(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return fmt.Errorf("session expired, please log in again: %w", err)
		}
		return err
	}
	return fn(sess)
}

// saveToken writes the token to the config file viper read, or to the
// default location when there was none.
func saveToken(token string) (string, error) {
	viper.Set("token", token)

	path := viper.ConfigFileUsed()
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return "", err
		}
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return "", fmt.Errorf("failed to create config directory: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}

	if err := viper.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("failed to save token: %w", err)
	}
	return path, nil
}
