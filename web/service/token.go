package service

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ShashankRaghuram1509/learnify-spotify/config"
	"github.com/ShashankRaghuram1509/learnify-spotify/database/model"
	"github.com/ShashankRaghuram1509/learnify-spotify/logger"
	"github.com/ShashankRaghuram1509/learnify-spotify/util/random"
)

// Token verification failure reasons. The HTTP layer collapses all of them
// into one generic unauthenticated response; the distinction exists for
// internal logging and for callers inside the process.
var (
	ErrTokenMalformed    = errors.New("token malformed")
	ErrTokenBadSignature = errors.New("token signature invalid")
	ErrTokenExpired      = errors.New("token expired")
)

type TokenClaims struct {
	Roles model.RoleList `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenService mints and validates stateless bearer tokens. There is no
// revocation list, so there is no server-side logout: a token stays valid
// until its expiry. Role and premium changes after issuance become visible
// only because the auth middleware reloads the user on every request.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

var (
	defaultTokenService *TokenService
	tokenServiceOnce    sync.Once
)

// DefaultTokenService returns the process-wide issuer/verifier. The signing
// secret is read once at first use and never rotated while the process runs.
func DefaultTokenService() *TokenService {
	tokenServiceOnce.Do(func() {
		defaultTokenService = NewTokenService()
	})
	return defaultTokenService
}

func NewTokenService() *TokenService {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = random.Seq(32)
		logger.Warning("JWT_SECRET is not set, using a generated secret; issued tokens will not survive a restart")
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    config.GetTokenTTL(),
	}
}

// NewTokenServiceWith builds a service with an explicit secret and TTL.
func NewTokenServiceWith(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue signs a token for the user. The subject is the normalized email,
// validity is [now, now+ttl). Issuing has no side effect anywhere.
func (s *TokenService) Issue(user *model.User) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		Roles: user.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and time bounds and returns the token subject.
// It never consults the database; the auth middleware resolves the current
// user separately so stale role claims cannot outlive a change.
func (s *TokenService) Verify(tokenStr string) (string, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuedAt(),
	)
	token, err := parser.ParseWithClaims(tokenStr, &TokenClaims{}, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrTokenBadSignature
		default:
			return "", ErrTokenMalformed
		}
	}
	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrTokenMalformed
	}
	return claims.Subject, nil
}
