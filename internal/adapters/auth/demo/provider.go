// Package demo is a fake identity provider. Credentials are fixed, social
// logins return canned accounts after a simulated SDK round trip, and the
// issued tokens are ordinary HS256 JWTs so the rest of the app can treat
// them like real ones.
package demo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"barabom/internal/platform/logger"
	"barabom/internal/ports/auth"
)

var (
	ErrBadCredentials  = errors.New("invalid email or password")
	ErrUnknownProvider = errors.New("unknown login provider")
	ErrInvalidToken    = errors.New("invalid token")
)

const (
	demoEmail    = "demo@repet.com"
	demoPassword = "demo1234"

	tokenTTL = 24 * time.Hour
)

// socialAccounts are the canned users behind each provider button.
var socialAccounts = map[string]auth.User{
	"kakao":  {Email: "user@kakao.com", Name: "카카오사용자", Provider: "kakao"},
	"naver":  {Email: "user@naver.com", Name: "네이버사용자", Provider: "naver"},
	"google": {Email: "user@gmail.com", Name: "Google사용자", Provider: "google"},
}

// SessionStore persists the logged-in user across restarts.
type SessionStore interface {
	SaveSession(ctx context.Context, u auth.User) error
	ClearSession(ctx context.Context) error
	Session(ctx context.Context) (auth.User, bool, error)
}

type Provider struct {
	secret   []byte
	sessions SessionStore
	log      logger.Logger
	now      func() time.Time

	// socialDelay simulates the provider SDK handshake.
	socialDelay time.Duration
}

func NewProvider(secret string, sessions SessionStore, socialDelay time.Duration, log logger.Logger) *Provider {
	return &Provider{
		secret:      []byte(secret),
		sessions:    sessions,
		log:         log,
		now:         time.Now,
		socialDelay: socialDelay,
	}
}

// Login checks the fixed demo credentials.
func (p *Provider) Login(ctx context.Context, email, password string) (auth.User, string, error) {
	if email != demoEmail || password != demoPassword {
		return auth.User{}, "", ErrBadCredentials
	}
	return p.establish(ctx, auth.User{Email: demoEmail, Name: "김철수", Provider: "email"})
}

// SocialLogin returns the canned account for the provider after the
// simulated handshake delay. The delay honors ctx cancellation.
func (p *Provider) SocialLogin(ctx context.Context, provider string) (auth.User, string, error) {
	account, ok := socialAccounts[provider]
	if !ok {
		return auth.User{}, "", ErrUnknownProvider
	}

	if p.socialDelay > 0 {
		select {
		case <-time.After(p.socialDelay):
		case <-ctx.Done():
			return auth.User{}, "", ctx.Err()
		}
	}

	return p.establish(ctx, account)
}

// DemoLogin skips credentials entirely.
func (p *Provider) DemoLogin(ctx context.Context) (auth.User, string, error) {
	return p.establish(ctx, auth.User{Email: demoEmail, Name: "체험사용자", Provider: "demo"})
}

func (p *Provider) Logout(ctx context.Context) error {
	return p.sessions.ClearSession(ctx)
}

// Session returns the persisted user, if any.
func (p *Provider) Session(ctx context.Context) (auth.User, bool, error) {
	return p.sessions.Session(ctx)
}

func (p *Provider) establish(ctx context.Context, u auth.User) (auth.User, string, error) {
	u.ID = uuid.NewString()

	token, err := p.issue(u)
	if err != nil {
		return auth.User{}, "", fmt.Errorf("issuing token: %w", err)
	}
	if err := p.sessions.SaveSession(ctx, u); err != nil {
		// The login still succeeds; only the restart restore is lost.
		p.log.Warn("auth: persisting session failed", map[string]any{"err": err.Error()})
	}
	return u, token, nil
}

func (p *Provider) issue(u auth.User) (string, error) {
	now := p.now()
	claims := jwt.MapClaims{
		"sub":      u.ID,
		"email":    u.Email,
		"name":     u.Name,
		"provider": u.Provider,
		"iat":      now.Unix(),
		"exp":      now.Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}

// Verify implements auth.Verifier.
func (p *Provider) Verify(ctx context.Context, token string) (auth.Claims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil || !parsed.Valid {
		return auth.Claims{}, ErrInvalidToken
	}

	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return auth.Claims{}, ErrInvalidToken
	}

	c := auth.Claims{}
	if sub, ok := mc["sub"].(string); ok {
		c.UserID = sub
	}
	if email, ok := mc["email"].(string); ok {
		c.Email = email
	}
	if name, ok := mc["name"].(string); ok {
		c.Name = name
	}
	if provider, ok := mc["provider"].(string); ok {
		c.Provider = provider
	}
	if c.UserID == "" {
		return auth.Claims{}, ErrInvalidToken
	}
	return c, nil
}
