package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/cablemart/admin-api/internal/redisx"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	ErrBadCredentials = errors.New("invalid credentials")
	ErrNoSession      = errors.New("session not found")
)

// Sessions stores opaque session tokens.
type Sessions interface {
	Save(ctx context.Context, token, email string, ttl time.Duration) error
	Lookup(ctx context.Context, token string) (string, error)
}

type RedisSessions struct{ R *redis.Client }

func (s *RedisSessions) Save(ctx context.Context, token, email string, ttl time.Duration) error {
	return s.R.Set(ctx, fmt.Sprintf(redisx.KeySession, token), email, ttl).Err()
}

func (s *RedisSessions) Lookup(ctx context.Context, token string) (string, error) {
	email, err := s.R.Get(ctx, fmt.Sprintf(redisx.KeySession, token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoSession
	}
	return email, err
}

// Service checks the single configured admin identity: email + password +
// one-time code, all from config. A match issues an opaque token with a TTL.
type Service struct {
	Email    string
	Password string
	Code     string
	TTL      time.Duration
	Sessions Sessions
}

func (s *Service) Login(ctx context.Context, email, password, code string) (string, error) {
	// refuse to run with an unconfigured identity
	if s.Email == "" || s.Password == "" || s.Code == "" {
		return "", ErrBadCredentials
	}
	ok := eq(email, s.Email) & eq(password, s.Password) & eq(code, s.Code)
	if ok != 1 {
		return "", ErrBadCredentials
	}
	token := uuid.NewString()
	if err := s.Sessions.Save(ctx, token, email, s.TTL); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return token, nil
}

// Authenticate resolves a bearer token to the logged-in email.
func (s *Service) Authenticate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrNoSession
	}
	return s.Sessions.Lookup(ctx, token)
}

func eq(a, b string) int {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b))
}
