// Package upstream is the typed client for the accounting backend's REST API.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/rs/zerolog/log"
)

// authPaths never trigger the unauthorized hook: a 401 there means bad
// credentials, not an expired session.
var authPaths = []string{"/auth/login", "/auth/register"}

// Client calls the backend on behalf of one credential. It is safe for
// concurrent use once configured.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	token          string
	onUnauthorized func()
}

// NewClient creates an unauthenticated Client for the backend at baseURL
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// WithToken returns a copy of the client that sends token as bearer credential.
// The copy has no unauthorized hook.
func (c *Client) WithToken(token string) *Client {
	return &Client{
		baseURL:    c.baseURL,
		httpClient: c.httpClient,
		token:      token,
	}
}

// OnUnauthorized registers fn to run whenever a non-auth call gets a 401.
// Must be called before the client is shared.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// Token returns the bearer credential, empty for an anonymous client
func (c *Client) Token() string {
	return c.token
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, nil, "", out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		payload = bytes.NewReader(data)
	}
	return c.do(ctx, method, path, nil, payload, "application/json", out)
}

func (c *Client) sendForm(ctx context.Context, path string, form url.Values, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return &domain.APIError{Kind: domain.ErrorKindTransport, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("method", method).Str("path", path).Msg("Backend request failed")
		return &domain.APIError{Kind: domain.ErrorKindTransport, Err: err}
	}
	defer resp.Body.Close()

	log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("backend request")

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &domain.APIError{
			Kind:   kindForStatus(resp.StatusCode),
			Status: resp.StatusCode,
			Detail: readDetail(resp.Body),
		}
		if apiErr.Kind == domain.ErrorKindUnauthorized && c.onUnauthorized != nil && !isAuthPath(path) {
			c.onUnauthorized()
		}
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.APIError{Kind: domain.ErrorKindServer, Status: resp.StatusCode, Err: fmt.Errorf("decode %s %s: %w", method, path, err)}
	}
	return nil
}

func kindForStatus(status int) domain.ErrorKind {
	switch {
	case status == http.StatusUnauthorized:
		return domain.ErrorKindUnauthorized
	case status == http.StatusNotFound:
		return domain.ErrorKindNotFound
	case status >= http.StatusInternalServerError:
		return domain.ErrorKindServer
	default:
		return domain.ErrorKindValidation
	}
}

func isAuthPath(path string) bool {
	for _, p := range authPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// errorBody is the backend's error envelope. Detail is either a message or a
// list of field validation errors.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

type validationItem struct {
	Msg string `json:"msg"`
}

func readDetail(r io.Reader) string {
	var body errorBody
	if err := json.NewDecoder(io.LimitReader(r, 64<<10)).Decode(&body); err != nil || len(body.Detail) == 0 {
		return ""
	}

	var message string
	if err := json.Unmarshal(body.Detail, &message); err == nil {
		return message
	}

	var items []validationItem
	if err := json.Unmarshal(body.Detail, &items); err == nil && len(items) > 0 {
		return items[0].Msg
	}
	return ""
}

// IsUnauthorized reports whether err is a 401 from the backend
func IsUnauthorized(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized)
}
