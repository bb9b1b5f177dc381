package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP           HTTP
	Logger         Logger
	Postgres       Postgres
	Kafka          Kafka
	AuthServiceURL string `env:"AUTH_SERVICE_URL"`
	PublicBaseURL  string `env:"PUBLIC_BASE_URL"`
	Paystack       Paystack
	Flutterwave    Flutterwave
	Stripe         Stripe
	Orders         Orders
	Webhooks       Webhooks
}

type HTTP struct {
	Port          int    `env:"HTTP_PORT" envDefault:"8080"`
	APIKeyEnabled bool   `env:"HTTP_API_KEY_ENABLED" envDefault:"false"`
	APIKey        string `env:"HTTP_API_KEY" envDefault:"dev"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Brokers            []string `env:"KAFKA_BROKERS"`
	NotificationsTopic string   `env:"KAFKA_NOTIFICATIONS_TOPIC"`
}

type Paystack struct {
	BaseURL   string `env:"PAYSTACK_BASE_URL" envDefault:"https://api.paystack.co"`
	SecretKey string `env:"PAYSTACK_SECRET_KEY"`
}

type Flutterwave struct {
	BaseURL   string `env:"FLUTTERWAVE_BASE_URL" envDefault:"https://api.flutterwave.com/v3"`
	SecretKey string `env:"FLUTTERWAVE_SECRET_KEY"`
}

type Stripe struct {
	BaseURL   string `env:"STRIPE_BASE_URL" envDefault:"https://api.stripe.com/v1"`
	SecretKey string `env:"STRIPE_SECRET_KEY"`
}

type Orders struct {
	// Pending orders older than this are flipped to FAILED by a background job.
	StaleAfterHours int `env:"ORDERS_STALE_AFTER_HOURS" envDefault:"168"`
}

type Webhooks struct {
	// MembershipSecret signs identity-provider webhook payloads (HMAC-SHA256).
	MembershipSecret string `env:"WEBHOOK_MEMBERSHIP_SECRET" envDefault:"dev"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
