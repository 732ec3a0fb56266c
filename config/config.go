package config

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/gin-gonic/gin"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/payfast"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	if os.Getenv("GO_ENV") == "local" {
		if err := godotenv.Load(".env"); err != nil {
			logrus.Warn("Error can't get the environment variables by file")
		}
	}

	if err := env.Parse(&Config); err != nil {
		return nil, fmt.Errorf("error initializing config: %w", err)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Payfast
	Kafka
	Mail
}

type APP struct {
	PORT           string        `env:"APP_PORT" envDefault:"8080"`
	BaseURL        string        `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`
	TrustedProxies []string      `env:"APP_TRUSTED_PROXIES" envSeparator:"," envDefault:"127.0.0.1"`
	ITNTimeout     time.Duration `env:"APP_ITN_TIMEOUT" envDefault:"10s"`
	NotifyTimeout  time.Duration `env:"NOTIFY_TIMEOUT" envDefault:"3s"`
	RateLimitRPS   float64       `env:"APP_RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int           `env:"APP_RATE_LIMIT_BURST" envDefault:"10"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	AdminUser      string        `env:"APP_ADMIN_USER" envDefault:"admin"`
	AdminPassword  string        `env:"APP_ADMIN_PASSWORD"`
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT"`
	SSLMODE  string `env:"DB_SSLMODE" envDefault:"disable"`
}

type Payfast struct {
	MerchantID  string        `env:"PAYFAST_MERCHANT_ID"`
	MerchantKey string        `env:"PAYFAST_MERCHANT_KEY"`
	Passphrase  string        `env:"PAYFAST_PASSPHRASE"`
	Sandbox     bool          `env:"PAYFAST_SANDBOX" envDefault:"true"`
	DNSTimeout  time.Duration `env:"PAYFAST_DNS_TIMEOUT" envDefault:"3s"`
}

type Kafka struct {
	Brokers          string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	ConsumerGroup    string `env:"KAFKA_GROUP_ID" envDefault:"storefront-service"`
	PublishTopics    string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"orders.paid,orders.dlq"`
	SubscriberTopics string `env:"KAFKA_SUBSCRIBER_TOPICS" envDefault:"orders.paid"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type Mail struct {
	APIURL  string        `env:"MAIL_API_URL"`
	APIKey  string        `env:"MAIL_API_KEY"`
	From    string        `env:"MAIL_FROM" envDefault:"orders@localhost"`
	Timeout time.Duration `env:"MAIL_TIMEOUT" envDefault:"5s"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}

// Backoff returns the exponential delay before retry number attempt+1,
// capped at MaxDelay and spread by +/-15% when Jitter is set.
func (r RetryConfig) Backoff(attempt int) time.Duration {
	delay := time.Duration(math.Pow(2, float64(attempt))) * r.BaseDelay

	if delay > r.MaxDelay {
		delay = r.MaxDelay
	}

	if r.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}

	return delay
}

func (k Kafka) BrokerList() []string {
	return splitList(k.Brokers)
}

func (k Kafka) PublishTopicList() []string {
	return splitList(k.PublishTopics)
}

func (k Kafka) SubscriberTopicList() []string {
	return splitList(k.SubscriberTopics)
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// GatewayConfig collects everything the payfast package needs into the one
// struct that is injected into the payload builder and the verifier.
func (c *Config) GatewayConfig() payfast.Config {
	return payfast.Config{
		MerchantID:  c.Payfast.MerchantID,
		MerchantKey: c.Payfast.MerchantKey,
		Passphrase:  c.Payfast.Passphrase,
		Sandbox:     c.Payfast.Sandbox,
		BaseURL:     c.APP.BaseURL,
		DNSTimeout:  c.Payfast.DNSTimeout,
	}
}

// AdminAccounts returns the basic-auth credentials of the admin routes, or nil
// when no password is configured and the routes stay disabled.
func (a APP) AdminAccounts() gin.Accounts {
	if a.AdminPassword == "" || a.AdminUser == "" {
		return nil
	}
	return gin.Accounts{a.AdminUser: a.AdminPassword}
}

// Level parses LOG_LEVEL, falling back to info.
func (a APP) Level() logrus.Level {
	level, err := logrus.ParseLevel(a.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
