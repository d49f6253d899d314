package jwtservice

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/limbo/lifetrack/internal/api"
	errorvalues "github.com/limbo/lifetrack/internal/error_values"
)

// DefaultTokenTTL is long because tokens are minted by hand for a single user.
const DefaultTokenTTL = 30 * 24 * time.Hour

type JWTService struct {
	secret []byte
	ttl    time.Duration
}

func New(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    DefaultTokenTTL,
	}
}

func (s *JWTService) WithTTL(ttl time.Duration) *JWTService {
	s.ttl = ttl
	return s
}

func (s *JWTService) GenerateToken(userID int64) (string, error) {
	if userID <= 0 {
		return "", fmt.Errorf("%w: user id must be positive", errorvalues.ErrInvalidInput)
	}
	now := time.Now()
	claims := &api.JWTClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ParseToken(tokenString string) (*api.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &api.JWTClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("token parsing error: %w: %w", errorvalues.ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*api.JWTClaims)
	if !ok || !token.Valid || claims.UserID <= 0 {
		return nil, errorvalues.ErrInvalidToken
	}
	return claims, nil
}
