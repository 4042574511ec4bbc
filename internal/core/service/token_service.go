package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lawwise/lawwise-api/internal/core/domain"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// TokenService mints and verifies HS256 session tokens. It is stateless: a
// token is valid iff its signature verifies against the configured secret and
// it has not expired, so rotating the secret invalidates every outstanding
// session.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying the lawyer's id, email, and display name.
func (s *TokenService) Issue(id, name, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":    id,
		"email": email,
		"name":  name,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate parses and verifies a token and returns the subject lawyer id.
// Failures are reported as domain.ErrTokenExpired, domain.ErrTokenSignature,
// or domain.ErrTokenMalformed; the caller decides how much to reveal.
func (s *TokenService) Validate(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", domain.ErrTokenSignature
		default:
			return "", domain.ErrTokenMalformed
		}
	}
	if !tkn.Valid {
		return "", domain.ErrTokenSignature
	}

	id, _ := claims["id"].(string)
	if id == "" {
		return "", domain.ErrTokenMalformed
	}
	return id, nil
}
