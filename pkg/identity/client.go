// Package identity is a client for the external users service that owns
// OAuth login and admin sessions. Every call is a single attempt with a
// timeout; failures are returned to the caller as-is.
package identity

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

// ErrInvalidSession is returned when the users service rejects a session token.
var ErrInvalidSession = errors.New("identity: invalid session")

// Config holds users service connection details.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// User is the account behind a session as reported by the users service.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Client talks to the users service over HTTP.
type Client struct {
	baseURL string
	apiKey  string
	timeout time.Duration
}

// NewClient creates a new users service client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		timeout: timeout,
	}
}

// OAuthRedirectURL returns the provider login URL visitors are sent to.
func (c *Client) OAuthRedirectURL(ctx context.Context, provider string) (string, error) {
	var resp struct {
		RedirectURL string `json:"redirect_url"`
	}
	a := fiber.Get(c.baseURL + "/oauth/" + url.PathEscape(provider) + "/redirect_url")
	if err := c.do(ctx, a, &resp); err != nil {
		return "", fmt.Errorf("get oauth redirect url: %w", err)
	}
	return resp.RedirectURL, nil
}

// ExchangeCode trades an OAuth authorization code for a session token.
func (c *Client) ExchangeCode(ctx context.Context, code string) (string, error) {
	var resp struct {
		SessionToken string `json:"session_token"`
	}
	a := fiber.Post(c.baseURL + "/sessions").JSON(fiber.Map{"code": code})
	if err := c.do(ctx, a, &resp); err != nil {
		return "", fmt.Errorf("exchange code: %w", err)
	}
	if resp.SessionToken == "" {
		return "", fmt.Errorf("exchange code: empty session token")
	}
	return resp.SessionToken, nil
}

// CurrentUser resolves a session token to its user.
func (c *Client) CurrentUser(ctx context.Context, sessionToken string) (*User, error) {
	var user User
	a := fiber.Get(c.baseURL + "/users/me")
	a.Set(fiber.HeaderAuthorization, "Bearer "+sessionToken)
	if err := c.do(ctx, a, &user); err != nil {
		return nil, fmt.Errorf("get current user: %w", err)
	}
	if user.ID == "" {
		return nil, fmt.Errorf("get current user: %w", ErrInvalidSession)
	}
	return &user, nil
}

// DeleteSession revokes a session token.
func (c *Client) DeleteSession(ctx context.Context, sessionToken string) error {
	a := fiber.Delete(c.baseURL + "/sessions")
	a.Set(fiber.HeaderAuthorization, "Bearer "+sessionToken)
	if err := c.do(ctx, a, nil); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, a *fiber.Agent, out interface{}) error {
	if err := ctx.Err(); err != nil {
		fiber.ReleaseAgent(a)
		return err
	}
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}
	a.Set("x-api-key", c.apiKey)
	a.Timeout(timeout)

	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	switch {
	case code == fiber.StatusUnauthorized || code == fiber.StatusForbidden:
		return ErrInvalidSession
	case code < 200 || code >= 300:
		return fmt.Errorf("users service responded %d: %s", code, truncate(body, 200))
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode users service response: %w", err)
	}
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}
