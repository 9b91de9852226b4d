package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppPort     string `envconfig:"APP_PORT" default:"8002"`
	CorsOrigins string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     uint   `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"restaurant"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	// Empty address disables the menu cache.
	RedisAddr        string        `envconfig:"REDIS_ADDR"`
	RedisPassword    string        `envconfig:"REDIS_PASSWORD"`
	MenuCacheTTL     time.Duration `envconfig:"MENU_CACHE_TTL" default:"10m"`
	MenuCacheRefresh time.Duration `envconfig:"MENU_CACHE_REFRESH" default:"5m"`

	JWTSecret   string        `envconfig:"JWT_SECRET"`
	JWTLifetime time.Duration `envconfig:"JWT_LIFETIME" default:"12h"`

	OrderingURL string `envconfig:"ORDERING_URL" default:"http://localhost:5173/order"`
}

// Load reads .env (when present) into the process environment and then
// decodes the environment into a Config.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func (c *Config) ListenAddr() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}
	return ":" + c.AppPort
}
