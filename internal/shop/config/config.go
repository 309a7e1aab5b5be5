// Package config содержит конфигурацию сервиса магазина.
package config

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	pkgconfig "goshop/pkg/config"
	"goshop/pkg/logger"
)

// Константы ошибок и сообщений для конфигурации.
const (
	ServiceName         = "shop"
	LogConfigLoaded     = "shop configuration loaded"
	ErrFailedLoadConfig = "failed to load shop configuration"
)

// Config представляет полную конфигурацию сервиса.
type Config struct {
	Postgres PostgresConfig `yaml:"postgres"`
	Redis    RedisConfig    `yaml:"redis"`
	HTTP     HTTPConfig     `yaml:"http"`
	JWT      JWTConfig      `yaml:"jwt"`
	Cookie   CookieConfig   `yaml:"cookie"`
	Logging  LoggingConfig  `yaml:"logging"`
	Shutdown ShutdownConfig `yaml:"shutdown"`
}

// Load загружает конфигурацию из envFile и переменных окружения.
// Отсутствующий envFile не считается ошибкой.
func Load(ctx context.Context, envFile string) (*Config, error) {
	cfg, err := pkgconfig.Load[Config](ctx, ServiceName, envFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	if err := cfg.JWT.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	logger.Log(ctx).Info(ctx, LogConfigLoaded,
		zap.String("postgres_host", cfg.Postgres.Host),
		zap.Int("postgres_port", cfg.Postgres.Port),
		zap.String("redis_address", cfg.Redis.GetAddress()),
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.Duration("token_ttl", cfg.JWT.TokenTTL),
		zap.Int("shutdown_timeout_seconds", cfg.Shutdown.Timeout))

	return cfg, nil
}
