package api

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/limbo/lifetrack/internal/scheduler"
)

type JWTServiceI interface {
	GenerateToken(userID int64) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// ReminderViewerI exposes the currently armed reminder times.
type ReminderViewerI interface {
	Snapshot(userID int64) (scheduler.Snapshot, bool)
}
