package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/brightsprout/childcare-api/internal/config"
	"github.com/brightsprout/childcare-api/internal/httperr"
)

// ErrInvalidToken is the single outcome for every validation failure.
// Malformed, tampered, expired and wrong-algorithm tokens are
// indistinguishable to the caller.
var ErrInvalidToken = httperr.ErrBusiness(httperr.CodeInvalidToken)

// TokenService issues and validates the bearer tokens used by the API.
// Tokens are self-contained: subject id plus absolute expiry, signed
// with a symmetric key. There is no refresh or revocation; a new token
// means a new login.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	method jwt.SigningMethod
}

func NewTokenService(cfg *config.Config) (*TokenService, error) {
	method := jwt.GetSigningMethod(cfg.JWTAlgorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown jwt algorithm %q", cfg.JWTAlgorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("jwt algorithm %q is not symmetric", cfg.JWTAlgorithm)
	}

	return &TokenService{
		secret: []byte(cfg.JWTSecret),
		ttl:    time.Duration(cfg.TokenTTLMinutes) * time.Minute,
		method: method,
	}, nil
}

func (s *TokenService) Issue(subjectID uint, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub": float64(subjectID),
		"exp": now.Add(s.ttl).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(s.method, claims)
	return token.SignedString(s.secret)
}

// Validate checks signature and expiry against now and returns the
// subject id.
func (s *TokenService) Validate(tokenString string, now time.Time) (uint, error) {
	token, err := jwt.Parse(
		tokenString,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method.Alg() != s.method.Alg() {
				return nil, jwt.ErrTokenUnverifiable
			}
			return s.secret, nil
		},
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return 0, ErrInvalidToken
	}

	return uint(sub), nil
}
