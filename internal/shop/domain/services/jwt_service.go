package services

import (
	"errors"
	"time"

	"goshop/internal/shop/domain/entities"
)

// Ошибки токенов.
var (
	ErrInvalidJWTToken = entities.NewError(entities.ErrUnauthorized, "invalid token")
	ErrExpiredJWTToken = entities.NewError(entities.ErrUnauthorized, "token has expired")
	ErrRevokedJWTToken = entities.NewError(entities.ErrUnauthorized, "token has been revoked")
)

// ErrGeneratingJWTToken - внутренняя ошибка подписи токена.
var ErrGeneratingJWTToken = errors.New("failed to generate token")

// JWTConfig содержит настройки для JWT сервиса.
type JWTConfig struct {
	SecretKey []byte
	TokenTTL  time.Duration
	Issuer    string
}

// Claims - данные, которые несет токен сессии.
type Claims struct {
	UserID int64         `json:"id"`
	Email  string        `json:"email"`
	Role   entities.Role `json:"role"`
}

// IssuedToken - выпущенный токен и его метаданные.
type IssuedToken struct {
	Token     string
	ID        string
	ExpiresAt time.Time
}

// VerifiedToken - результат проверки токена.
type VerifiedToken struct {
	Claims
	ID        string
	ExpiresAt time.Time
}
