package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppEnv       string `envconfig:"APP_ENV" default:"local"`
	Port         int    `envconfig:"PORT" default:"8080"`
	Debug        bool   `envconfig:"DEBUG" default:"false"`
	AllowOrigins string `envconfig:"ALLOW_ORIGINS"`
	SentryDSN    string `envconfig:"SENTRY_DSN"`

	DB struct {
		Driver   string `envconfig:"DB_DRIVER" default:"postgres"`
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD"`
		Name     string `envconfig:"DB_NAME" default:"storefront"`
		SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	}

	Broker struct {
		Kind    string `envconfig:"BROKER_KIND" default:"redis"`
		Channel string `envconfig:"BROKER_CHANNEL_PREFIX" default:"events"`
	}

	Redis struct {
		Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
		Password string `envconfig:"REDIS_PASSWORD"`
		DB       int    `envconfig:"REDIS_DB" default:"0"`
	}

	NATS struct {
		URL string `envconfig:"NATS_URL" default:"nats://localhost:4222"`
	}

	NotificationHub struct {
		Endpoint  string `envconfig:"NOTIFICATION_HUB_ENDPOINT" default:"http://localhost:8081"`
		Token     string `envconfig:"NOTIFICATION_HUB_TOKEN"`
		Sender    string `envconfig:"NOTIFICATION_HUB_SENDER" default:"no-reply@storefront.local"`
		Recipient string `envconfig:"NOTIFICATION_HUB_RECIPIENT" default:"sales@storefront.local"`
	}
}

func LoadConfig() (*Config, error) {
	// .env is optional, real environment variables win
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}

	return &cfg, nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host, c.DB.Port, c.DB.User, c.DB.Password, c.DB.Name, c.DB.SSLMode)
}
