// Package cache содержит хранилище отозванных токенов на Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"goshop/internal/shop/ports/services"
	"goshop/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodRevoke    = "revoke"
	LogMethodIsRevoked = "is_revoked"
	LogTokenRevoked    = "token revoked"
	LogTokenExpired    = "token already expired, nothing to revoke"

	ErrorFailedToRevoke = "failed to store revoked token in redis"
	ErrorFailedToCheck  = "failed to check revoked token in redis"
	ErrorFailedToClose  = "failed to close redis connection"
)

const revokedValue = "1"

// RedisRevocationStore хранит отозванные идентификаторы токенов с TTL до их истечения.
type RedisRevocationStore struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

// NewRedisRevocationStore создает хранилище поверх готового клиента.
func NewRedisRevocationStore(client *redis.Client, prefix string) *RedisRevocationStore {
	return &RedisRevocationStore{client: client, prefix: prefix, now: time.Now}
}

func (s *RedisRevocationStore) key(tokenID string) string {
	return s.prefix + "revoked:" + tokenID
}

// Revoke помечает токен отозванным до момента expiresAt.
func (s *RedisRevocationStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodRevoke), zap.String("token_id", tokenID))

	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		log.Debug(ctx, LogTokenExpired)
		return nil
	}

	if err := s.client.Set(ctx, s.key(tokenID), revokedValue, ttl).Err(); err != nil {
		log.Error(ctx, ErrorFailedToRevoke, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToRevoke, err)
	}

	log.Debug(ctx, LogTokenRevoked, zap.Duration("ttl", ttl))
	return nil
}

// IsRevoked сообщает, был ли токен отозван.
func (s *RedisRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := s.client.Get(ctx, s.key(tokenID)).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, redis.Nil):
		return false, nil
	default:
		logger.Log(ctx).Error(ctx, ErrorFailedToCheck,
			zap.String("method", LogMethodIsRevoked),
			zap.String("token_id", tokenID),
			zap.Error(err))
		return false, fmt.Errorf("%s: %w", ErrorFailedToCheck, err)
	}
}

// Close закрывает соединение с Redis.
func (s *RedisRevocationStore) Close(_ context.Context) error {
	if err := s.client.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedToClose, err)
	}
	return nil
}

var _ services.RevocationStore = (*RedisRevocationStore)(nil)
