package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

const (
	NotifierSES      = "ses"
	NotifierRabbitMQ = "rabbitmq"
)

type Config struct {
	Port       uint16 `env:"PORT" envDefault:"9090"`
	IsTestMode bool   `env:"TEST_MODE" envDefault:"false"`
	Debug      bool   `env:"DEBUG" envDefault:"false"`
	Secret     string `env:"SECRET,required"`

	PostgresqlURL  string `env:"POSTGRESQL_URL,required"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations"`
	RedisURL       string `env:"REDIS_URL,required"`

	RabbitmqURL                string `env:"RABBITMQ_URL"`
	RabbitmqPasswordResetQueue string `env:"RABBITMQ_PASSWORD_RESET_QUEUE" envDefault:"password-reset-email"`

	BcryptHasherCost int `env:"BCRYPT_HASHER_COST" envDefault:"10"`

	PasswordResetValidDurationHours uint    `env:"PASSWORD_RESET_VALID_DURATION_HOURS" envDefault:"1"`
	PasswordResetBaseURL            url.URL `env:"PASSWORD_RESET_BASE_URL,required"`
	PasswordResetNotifier           string  `env:"PASSWORD_RESET_NOTIFIER" envDefault:"ses"`

	NotifierTimeout time.Duration `env:"NOTIFIER_TIMEOUT" envDefault:"10s"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	AwsRegion                     string `env:"AWS_REGION" envDefault:"eu-central-1"`
	AwsAccessKey                  string `env:"AWS_ACCESS_KEY"`
	AwsSecretKey                  string `env:"AWS_SECRET_KEY"`
	AwsEmailSender                string `env:"AWS_EMAIL_SENDER"`
	AwsEmailPasswordResetTemplate string `env:"AWS_EMAIL_PASSWORD_RESET_TEMPLATE" envDefault:"password-reset"`

	GoogleRecaptchaSecretKey      string        `env:"GOOGLE_RECAPTCHA_SECRET_KEY"`
	GoogleRecaptchaScoreThreshold float64       `env:"GOOGLE_RECAPTCHA_SCORE_THRESHOLD" envDefault:"0.5"`
	GoogleRecaptchaRequestTimeout time.Duration `env:"GOOGLE_RECAPTCHA_REQUEST_TIMEOUT" envDefault:"5s"`

	SentryDsn *url.URL `env:"SENTRY_DSN"`
}

func (c *Config) PasswordResetValidDuration() time.Duration {
	return time.Duration(c.PasswordResetValidDurationHours) * time.Hour
}

func (c *Config) validate() error {
	if c.PasswordResetValidDurationHours == 0 {
		return fmt.Errorf("PASSWORD_RESET_VALID_DURATION_HOURS must be positive")
	}
	switch c.PasswordResetNotifier {
	case NotifierSES:
	case NotifierRabbitMQ:
		if c.RabbitmqURL == "" {
			return fmt.Errorf("RABBITMQ_URL must be set when PASSWORD_RESET_NOTIFIER is %q", NotifierRabbitMQ)
		}
	default:
		return fmt.Errorf("unknown PASSWORD_RESET_NOTIFIER %q", c.PasswordResetNotifier)
	}
	if !c.IsTestMode && c.GoogleRecaptchaSecretKey == "" {
		return fmt.Errorf("GOOGLE_RECAPTCHA_SECRET_KEY must be set outside of test mode")
	}
	return nil
}

func Load() (*Config, error) {
	return LoadFrom(env.Options{})
}

// LoadFrom parses the environment described by opts. Tests pass
// opts.Environment to avoid touching the process environment.
func LoadFrom(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg, opts); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type MigratorConfig struct {
	Debug          bool   `env:"DEBUG" envDefault:"false"`
	PostgresqlURL  string `env:"POSTGRESQL_URL,required"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations"`
}

func LoadMigrator() (*MigratorConfig, error) {
	cfg := &MigratorConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
