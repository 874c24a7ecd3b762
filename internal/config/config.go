package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config application configuration
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	// RabbitMQ
	RabbitUser string `env:"RABBITMQ_USER" envDefault:"guest"`
	RabbitPass string `env:"RABBITMQ_PASS" envDefault:"guest"`
	RabbitHost string `env:"RABBITMQ_HOST" envDefault:"localhost"`
	RabbitPort string `env:"RABBITMQ_PORT" envDefault:"5672"`

	// SMTP (outbound replies)
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPass     string `env:"SMTP_PASS"`
	SMTPFrom     string `env:"SMTP_FROM_EMAIL"`
	SMTPFromName string `env:"SMTP_FROM_NAME" envDefault:"CRM Team"`

	// IMAP intake
	IMAPEnabled      bool          `env:"IMAP_ENABLED" envDefault:"false"`
	IMAPHost         string        `env:"IMAP_HOST" envDefault:"imap.gmail.com"`
	IMAPPort         int           `env:"IMAP_PORT" envDefault:"993"`
	IMAPUser         string        `env:"IMAP_USER"`
	IMAPPass         string        `env:"IMAP_PASS"`
	IMAPMailbox      string        `env:"IMAP_MAILBOX" envDefault:"INBOX"`
	IMAPPollInterval time.Duration `env:"IMAP_POLL_INTERVAL" envDefault:"2m"`
	IMAPDialTimeout  time.Duration `env:"IMAP_DIAL_TIMEOUT" envDefault:"30s"`

	// Auth
	JWTSecret   string        `env:"JWT_SECRET,required"`
	JWTIssuer   string        `env:"JWT_ISSUER" envDefault:"inbox-crm"`
	JWTTokenTTL time.Duration `env:"JWT_TOKEN_TTL" envDefault:"12h"`

	// Reply drafting signature
	SignatureTeam string `env:"SIGNATURE_TEAM" envDefault:"Customer Support Team"`
	SignatureOrg  string `env:"SIGNATURE_ORG" envDefault:"Inbox CRM"`

	// Client promotion thresholds: a customer becomes a client when ANY of
	// these is met. Thresholds are deployment policy, not core contract.
	PromotionMinResolvedTickets int           `env:"PROMOTION_MIN_RESOLVED_TICKETS" envDefault:"2"`
	PromotionMinEnquiries       int           `env:"PROMOTION_MIN_ENQUIRIES" envDefault:"3"`
	PromotionMinCustomerAge     time.Duration `env:"PROMOTION_MIN_CUSTOMER_AGE" envDefault:"2160h"`
	PromotionSweepInterval      time.Duration `env:"PROMOTION_SWEEP_INTERVAL" envDefault:"1h"`

	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"` // "json" or "text"
}

// SMTPConfigured reports whether outbound mail can be sent.
func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPass != ""
}

// IMAPConfigured reports whether the poller has credentials to work with.
func (c *Config) IMAPConfigured() bool {
	return c.IMAPUser != "" && c.IMAPPass != ""
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
