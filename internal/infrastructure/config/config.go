package config

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const envProduction = "production"

type Config struct {
	Port          string   `env:"PORT,            default=3000"`
	Env           string   `env:"ENV,             default=development"`
	LogLevel      string   `env:"LOG_LEVEL,       default=info"`
	APIPrefix     string   `env:"API_PREFIX,      default=/api/v1"`
	PublicBaseURL string   `env:"PUBLIC_BASE_URL, default=http://localhost:3000"`
	CORSOrigins   []string `env:"CORS_ORIGINS,    default=*"`

	Auth  AuthConfig
	Mongo MongoConfig
	Redis RedisConfig
	Mail  MailConfig
}

type AuthConfig struct {
	JWTSecret      string        `env:"JWT_SECRET"`
	SessionTTL     time.Duration `env:"SESSION_TTL,     default=24h"`
	PasswordScheme string        `env:"PASSWORD_SCHEME, default=plaintext"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=jobposting"`
}

type RedisConfig struct {
	Addr       string        `env:"REDIS_ADDR,  default=localhost:6379"`
	Password   string        `env:"REDIS_PASSWORD"`
	DB         int           `env:"REDIS_DB,    default=0"`
	ReceiptTTL time.Duration `env:"RECEIPT_TTL, default=168h"`
}

type MailConfig struct {
	// Host empty selects the log mailer, which delivers nothing.
	Host        string        `env:"MAIL_HOST"`
	Port        int           `env:"MAIL_PORT,         default=587"`
	Username    string        `env:"MAIL_USERNAME"`
	Password    string        `env:"MAIL_PASSWORD"`
	From        string        `env:"MAIL_FROM"`
	SendTimeout time.Duration `env:"MAIL_SEND_TIMEOUT, default=15s"`
	MaxParallel int           `env:"MAIL_MAX_PARALLEL, default=16"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Mail.From == "" {
		cfg.Mail.From = cfg.Mail.Username
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the process cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.IsProduction() && c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required in production"))
	}
	if c.Auth.SessionTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	if c.Mail.SendTimeout <= 0 {
		errs = append(errs, errors.New("MAIL_SEND_TIMEOUT must be positive"))
	}
	if c.Mail.MaxParallel < 0 {
		errs = append(errs, errors.New("MAIL_MAX_PARALLEL must not be negative"))
	}
	if c.Mail.Host != "" && c.Mail.From == "" {
		errs = append(errs, errors.New("MAIL_FROM or MAIL_USERNAME is required when MAIL_HOST is set"))
	}
	if !strings.HasPrefix(c.APIPrefix, "/") {
		errs = append(errs, errors.New("API_PREFIX must start with /"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, envProduction)
}

// EnsureSigningSecret fills an empty JWT_SECRET with a random per-process
// value and reports whether it did. Sessions signed with it die with the
// process. Production never gets here because Validate refuses it.
func (c *Config) EnsureSigningSecret() (bool, error) {
	if c.Auth.JWTSecret != "" {
		return false, nil
	}
	if c.IsProduction() {
		return false, errors.New("config: JWT_SECRET is required in production")
	}
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return false, fmt.Errorf("config: generate signing secret: %w", err)
	}
	c.Auth.JWTSecret = hex.EncodeToString(b)
	return true, nil
}

// VerifyURL is the link prefix a verification token is appended to.
func (c *Config) VerifyURL() string {
	return strings.TrimRight(c.PublicBaseURL, "/") + strings.TrimRight(c.APIPrefix, "/") + "/user/verify/"
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
