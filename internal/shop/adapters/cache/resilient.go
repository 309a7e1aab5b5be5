package cache

import (
	"context"
	"time"

	"goshop/internal/shop/ports/services"
	"goshop/internal/shop/resilience"
)

// ResilientRevocationStore перестает обращаться к хранилищу отзывов, пока предохранитель разомкнут.
// Сбойный вызов не повторяется. При разомкнутой цепи Authenticate отвечает ошибкой, а не пропускает токен.
type ResilientRevocationStore struct {
	next    services.RevocationStore
	breaker *resilience.CircuitBreaker
}

// NewResilientRevocationStore оборачивает next предохранителем breaker.
func NewResilientRevocationStore(next services.RevocationStore, breaker *resilience.CircuitBreaker) *ResilientRevocationStore {
	return &ResilientRevocationStore{next: next, breaker: breaker}
}

// Revoke помечает токен отозванным.
func (s *ResilientRevocationStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	return s.breaker.Execute(ctx, func() error {
		return s.next.Revoke(ctx, tokenID, expiresAt)
	})
}

// IsRevoked сообщает, был ли токен отозван.
func (s *ResilientRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return resilience.Do(ctx, s.breaker, func(ctx context.Context) (bool, error) {
		return s.next.IsRevoked(ctx, tokenID)
	})
}

var _ services.RevocationStore = (*ResilientRevocationStore)(nil)
