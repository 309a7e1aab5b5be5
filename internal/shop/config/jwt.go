package config

import (
	"errors"
	"time"
)

// ErrEmptyJWTSecret - секрет подписи токенов не задан.
var ErrEmptyJWTSecret = errors.New("jwt secret key must not be empty")

// JWTConfig содержит настройки токенов сессии и хеширования паролей.
type JWTConfig struct {
	SecretKey  string        `yaml:"secret_key" env:"SHOP_JWT_SECRET_KEY" env-default:"super-secret-key-change-me-in-production"`
	TokenTTL   time.Duration `yaml:"token_ttl" env:"SHOP_JWT_TOKEN_TTL" env-default:"1h"`
	Issuer     string        `yaml:"issuer" env:"SHOP_JWT_ISSUER" env-default:"goshop"`
	BCryptCost int           `yaml:"bcrypt_cost" env:"SHOP_JWT_BCRYPT_COST" env-default:"10"`
}

// Validate проверяет, что токены можно подписать.
func (c *JWTConfig) Validate() error {
	if c.SecretKey == "" {
		return ErrEmptyJWTSecret
	}
	return nil
}

// GetTokenTTL возвращает время жизни токена; неположительное значение дает 1 час.
func (c *JWTConfig) GetTokenTTL() time.Duration {
	if c.TokenTTL <= 0 {
		return time.Hour
	}
	return c.TokenTTL
}
