package config

import (
	"fmt"
	"time"
)

// RedisConfig представляет конфигурацию Redis, где хранятся отозванные токены.
type RedisConfig struct {
	Host           string        `yaml:"host" env:"SHOP_REDIS_HOST" env-default:"localhost"`
	Port           int           `yaml:"port" env:"SHOP_REDIS_PORT" env-default:"6379"`
	Password       string        `yaml:"password" env:"SHOP_REDIS_PASSWORD" env-default:""`
	DB             int           `yaml:"db" env:"SHOP_REDIS_DB" env-default:"0"`
	PoolSize       int           `yaml:"pool_size" env:"SHOP_REDIS_POOL_SIZE" env-default:"10"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"SHOP_REDIS_CONNECT_TIMEOUT" env-default:"5s"`
	ReadTimeout    time.Duration `yaml:"read_timeout" env:"SHOP_REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"SHOP_REDIS_WRITE_TIMEOUT" env-default:"3s"`
	KeyPrefix      string        `yaml:"key_prefix" env:"SHOP_REDIS_KEY_PREFIX" env-default:"shop:"`

	Resilience ResilienceConfig `yaml:"resilience"`
}

// GetAddress возвращает адрес Redis.
func (c *RedisConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ResilienceConfig задает предохранитель для обращений к Redis.
// Сбойные вызовы не повторяются.
type ResilienceConfig struct {
	BreakerThreshold int           `yaml:"breaker_threshold" env:"SHOP_REDIS_BREAKER_THRESHOLD" env-default:"5"`
	BreakerTimeout   time.Duration `yaml:"breaker_timeout" env:"SHOP_REDIS_BREAKER_TIMEOUT" env-default:"10s"`
}
