package services

import (
	"context"
	"time"

	"goshop/internal/shop/domain/services"
)

// TokenService выпускает и проверяет токены сессии.
type TokenService interface {
	Issue(ctx context.Context, claims services.Claims) (*services.IssuedToken, error)

	Verify(ctx context.Context, token string) (*services.VerifiedToken, error)

	TTL() time.Duration
}

// RevocationStore хранит идентификаторы отозванных токенов до истечения их срока.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error

	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
