package config

import (
	"fmt"
	"time"
)

// HTTPConfig представляет конфигурацию HTTP сервера.
type HTTPConfig struct {
	Host         string        `yaml:"host" env:"SHOP_HTTP_HOST" env-default:"0.0.0.0"`
	Port         int           `yaml:"port" env:"SHOP_HTTP_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"SHOP_HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SHOP_HTTP_WRITE_TIMEOUT" env-default:"10s"`
	CORSOrigins  []string      `yaml:"cors_origins" env:"SHOP_HTTP_CORS_ORIGINS" env-separator:","`
}

// GetAddress возвращает адрес HTTP сервера.
func (c *HTTPConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CookieConfig задает параметры cookie сессии.
type CookieConfig struct {
	Name     string `yaml:"name" env:"SHOP_COOKIE_NAME" env-default:"token"`
	Secure   bool   `yaml:"secure" env:"SHOP_COOKIE_SECURE" env-default:"false"`
	SameSite string `yaml:"same_site" env:"SHOP_COOKIE_SAME_SITE" env-default:"Lax"`
	Domain   string `yaml:"domain" env:"SHOP_COOKIE_DOMAIN" env-default:""`
}
