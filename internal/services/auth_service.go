package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"tamrah/internal/logging"
	"tamrah/internal/metrics"
	"tamrah/internal/models"
	"tamrah/pkg/identity"
)

// errNoCredential means the authenticator's credential was not presented,
// so the next authenticator in a chain should be tried.
var errNoCredential = errors.New("credential not presented")

// Authenticator decides whether a request's credentials belong to an admin.
type Authenticator interface {
	Authenticate(ctx context.Context, creds models.Credentials) (*models.AdminIdentity, error)
}

// IdentityProvider is the external users service. *identity.Client satisfies it.
type IdentityProvider interface {
	OAuthRedirectURL(ctx context.Context, provider string) (string, error)
	ExchangeCode(ctx context.Context, code string) (string, error)
	CurrentUser(ctx context.Context, sessionToken string) (*identity.User, error)
	DeleteSession(ctx context.Context, sessionToken string) error
}

// IdentitySessionAuthenticator validates session cookies with the users service.
type IdentitySessionAuthenticator struct {
	provider IdentityProvider
}

// NewIdentitySessionAuthenticator creates a new IdentitySessionAuthenticator.
func NewIdentitySessionAuthenticator(provider IdentityProvider) *IdentitySessionAuthenticator {
	return &IdentitySessionAuthenticator{provider: provider}
}

// Authenticate makes one call to the users service per request.
func (a *IdentitySessionAuthenticator) Authenticate(ctx context.Context, creds models.Credentials) (*models.AdminIdentity, error) {
	if creds.SessionToken == "" {
		return nil, errNoCredential
	}
	user, err := a.provider.CurrentUser(ctx, creds.SessionToken)
	if err != nil {
		return nil, fmt.Errorf("session rejected: %w", err)
	}
	return &models.AdminIdentity{ID: user.ID, Email: user.Email, Name: user.Name, Source: "session"}, nil
}

// JWTAuthenticator accepts HS256 bearer tokens signed with a shared secret.
type JWTAuthenticator struct {
	secret   []byte
	tokenTTL time.Duration
}

// NewJWTAuthenticator creates a new JWTAuthenticator.
func NewJWTAuthenticator(secret string) *JWTAuthenticator {
	return &JWTAuthenticator{
		secret:   []byte(secret),
		tokenTTL: 24 * time.Hour,
	}
}

// IssueToken signs a token for subject, valid for 24 hours.
func (a *JWTAuthenticator) IssueToken(subject, email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   subject,
		"email": email,
		"exp":   time.Now().Add(a.tokenTTL).Unix(),
		"iat":   time.Now().Unix(),
	})
	tokenString, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// Authenticate parses and validates the bearer token.
func (a *JWTAuthenticator) Authenticate(ctx context.Context, creds models.Credentials) (*models.AdminIdentity, error) {
	if creds.BearerToken == "" {
		return nil, errNoCredential
	}
	token, err := jwt.Parse(creds.BearerToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, fmt.Errorf("invalid token: missing subject")
	}
	email, _ := claims["email"].(string)
	return &models.AdminIdentity{ID: sub, Email: email, Source: "jwt"}, nil
}

// APIKeyAuthenticator compares the X-Admin-Key header against a bcrypt hash.
type APIKeyAuthenticator struct {
	hash []byte
}

// NewAPIKeyAuthenticator creates a new APIKeyAuthenticator from a bcrypt hash.
func NewAPIKeyAuthenticator(hash string) *APIKeyAuthenticator {
	return &APIKeyAuthenticator{hash: []byte(hash)}
}

// HashAPIKey returns the bcrypt hash to configure for key.
func HashAPIKey(key string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash api key: %w", err)
	}
	return string(hashed), nil
}

// Authenticate checks the presented key.
func (a *APIKeyAuthenticator) Authenticate(ctx context.Context, creds models.Credentials) (*models.AdminIdentity, error) {
	if creds.APIKey == "" {
		return nil, errNoCredential
	}
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(creds.APIKey)); err != nil {
		return nil, fmt.Errorf("invalid api key")
	}
	return &models.AdminIdentity{ID: "api-key", Source: "api_key"}, nil
}

// ChainAuthenticator tries each authenticator in order; the first success wins.
type ChainAuthenticator struct {
	authenticators []Authenticator
}

// NewChainAuthenticator creates a new ChainAuthenticator.
func NewChainAuthenticator(authenticators ...Authenticator) *ChainAuthenticator {
	return &ChainAuthenticator{authenticators: authenticators}
}

// Authenticate returns models.ErrUnauthorized when no authenticator accepts creds.
func (c *ChainAuthenticator) Authenticate(ctx context.Context, creds models.Credentials) (*models.AdminIdentity, error) {
	if creds.Empty() {
		metrics.AuthFailures.WithLabelValues("missing").Inc()
		return nil, fmt.Errorf("no credentials presented: %w", models.ErrUnauthorized)
	}

	var lastErr error
	for _, a := range c.authenticators {
		id, err := a.Authenticate(ctx, creds)
		if err == nil {
			return id, nil
		}
		if errors.Is(err, errNoCredential) {
			continue
		}
		lastErr = err
	}

	if lastErr == nil {
		metrics.AuthFailures.WithLabelValues("unsupported").Inc()
		return nil, fmt.Errorf("no accepted credential presented: %w", models.ErrUnauthorized)
	}
	metrics.AuthFailures.WithLabelValues("invalid").Inc()
	logging.Debug().Err(lastErr).Msg("Admin authentication failed")
	return nil, fmt.Errorf("%v: %w", lastErr, models.ErrUnauthorized)
}

// AuthService handles the identity handoff endpoints and the admin gate.
type AuthService struct {
	provider IdentityProvider
	gate     Authenticator
}

// NewAuthService creates a new AuthService.
func NewAuthService(provider IdentityProvider, gate Authenticator) *AuthService {
	return &AuthService{provider: provider, gate: gate}
}

// Authenticate runs the admin gate.
func (s *AuthService) Authenticate(ctx context.Context, creds models.Credentials) (*models.AdminIdentity, error) {
	return s.gate.Authenticate(ctx, creds)
}

// OAuthRedirectURL returns the login URL for provider.
func (s *AuthService) OAuthRedirectURL(ctx context.Context, provider string) (string, error) {
	if s.provider == nil {
		return "", fmt.Errorf("identity provider not configured")
	}
	return s.provider.OAuthRedirectURL(ctx, provider)
}

// CreateSession exchanges an OAuth code for a session token.
func (s *AuthService) CreateSession(ctx context.Context, code string) (string, error) {
	if code == "" {
		return "", models.NewValidationError("code", "is required")
	}
	if s.provider == nil {
		return "", fmt.Errorf("identity provider not configured")
	}
	return s.provider.ExchangeCode(ctx, code)
}

// Logout revokes the session remotely. Failures are logged only; the
// caller always clears the local cookie.
func (s *AuthService) Logout(ctx context.Context, sessionToken string) {
	if sessionToken == "" || s.provider == nil {
		return
	}
	if err := s.provider.DeleteSession(ctx, sessionToken); err != nil {
		logging.Warn().Err(err).Msg("Failed to delete remote session")
	}
}
