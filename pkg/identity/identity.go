package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/memories-timeline/memories-backend/pkg/config"
)

var ErrNoIdentity = errors.New("no authenticated user")

// Resolver determines who sent a request
type Resolver interface {
	Resolve(r *http.Request) (string, error)
}

type key int

const userKey key = iota

// WithUser returns a copy of ctx carrying the authenticated user
func WithUser(ctx context.Context, user string) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// Get returns the user stored by the identity middleware
func Get(ctx context.Context) (string, bool) {
	user, ok := ctx.Value(userKey).(string)
	return user, ok && user != ""
}

// StaticResolver authenticates every request as the same user. Meant for local development.
type StaticResolver struct {
	User string
}

func (s StaticResolver) Resolve(_ *http.Request) (string, error) {
	if s.User == "" {
		return "", ErrNoIdentity
	}
	return s.User, nil
}

// HeaderResolver trusts an email header set by an authenticating proxy
type HeaderResolver struct {
	Header string
}

func (h HeaderResolver) Resolve(r *http.Request) (string, error) {
	user := strings.TrimSpace(r.Header.Get(h.Header))
	if user == "" {
		return "", ErrNoIdentity
	}
	return user, nil
}

// JWTResolver verifies an HS256 token from Header and returns its email claim
type JWTResolver struct {
	Header   string
	Secret   []byte
	Audience string
}

func (j JWTResolver) Resolve(r *http.Request) (string, error) {
	tokenStr := strings.TrimSpace(r.Header.Get(j.Header))
	tokenStr = strings.TrimPrefix(tokenStr, "Bearer ")
	if tokenStr == "" {
		return "", ErrNoIdentity
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if j.Audience != "" {
		opts = append(opts, jwt.WithAudience(j.Audience))
	}
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (any, error) {
		return j.Secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%w: invalid token", ErrNoIdentity)
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", fmt.Errorf("%w: token has no email claim", ErrNoIdentity)
	}
	return email, nil
}

// NewResolver picks the resolver for the configured auth mode
func NewResolver(cfg config.Auth) (Resolver, error) {
	switch cfg.Mode {
	case "", config.AuthModeStatic:
		user := cfg.StaticUser
		if user == "" {
			user = config.DefaultStaticUser
		}
		return StaticResolver{User: user}, nil
	case config.AuthModeHeader:
		if cfg.Header == "" {
			return nil, errors.New("auth.header is required in header mode")
		}
		return HeaderResolver{Header: cfg.Header}, nil
	case config.AuthModeJWT:
		if cfg.JWTSecret == "" || cfg.JWTHeader == "" {
			return nil, errors.New("auth.jwt_secret and auth.jwt_header are required in jwt mode")
		}
		return JWTResolver{Header: cfg.JWTHeader, Secret: []byte(cfg.JWTSecret), Audience: cfg.JWTAudience}, nil
	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.Mode)
	}
}
