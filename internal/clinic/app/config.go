package app

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/aussiebroadwan/clinic/internal/clinic/service"
	"github.com/aussiebroadwan/clinic/pkg/cryptox"
	"github.com/aussiebroadwan/clinic/pkg/httpx"
	"github.com/aussiebroadwan/clinic/pkg/jwtx"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Database drivers understood by the application.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all configuration for the clinic service.
type Config struct {
	// Token signing
	JWTSecret   string   `env:"JWT_SECRET_KEY"`
	JWTIssuer   string   `env:"JWT_ISSUER" envDefault:"clinic"`
	JWTAudience []string `env:"JWT_AUDIENCE" envDefault:"clinic-users" envSeparator:","`

	// Database
	DBDriver          string        `env:"DB_DRIVER" envDefault:"sqlite"`
	DatabaseFile      string        `env:"DATABASE_FILE" envDefault:"clinic.db"`
	DatabaseURL       string        `env:"DATABASE_URL"`
	DBMaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	DBMaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	// Password hashing
	PepperFile           string `env:"PEPPER_FILE" envDefault:"pepper"`
	Argon2MemoryKiB      uint32 `env:"ARGON2_MEMORY_KIB" envDefault:"19456"`
	Argon2Iterations     uint32 `env:"ARGON2_ITERATIONS" envDefault:"2"`
	BcryptCost           int    `env:"BCRYPT_COST" envDefault:"12"`
	AdminPasswordStorage string `env:"ADMIN_PASSWORD_STORAGE" envDefault:"plaintext"`

	// HTTP
	AllowedOrigins      []string      `env:"ALLOWED_ORIGINS" envSeparator:","`
	TrustedProxies      []string      `env:"TRUSTED_PROXIES" envSeparator:","`
	StaticDir           string        `env:"STATIC_DIR"`
	Port                int           `env:"PORT" envDefault:"8080"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`

	// Logging
	Env       string `env:"ENV" envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// GeneratedSecret is set when no JWT_SECRET_KEY was supplied in a dev or
	// test environment and a random one was used instead.
	GeneratedSecret bool `env:"-"`
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.JWTSecret == "" && cfg.isDevelopment() {
		secret, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return Config{}, err
		}
		cfg.JWTSecret = secret
		cfg.GeneratedSecret = true
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first configuration problem found.
func (c Config) Validate() error {
	switch {
	case c.JWTSecret == "":
		return errors.New("config: JWT_SECRET_KEY is required")
	case len(c.JWTSecret) < jwtx.MinSecretLength && !c.isDevelopment():
		return fmt.Errorf("config: JWT_SECRET_KEY must be at least %d bytes", jwtx.MinSecretLength)
	case len(c.JWTAudience) == 0:
		return errors.New("config: JWT_AUDIENCE must name at least one audience")
	}

	switch c.DBDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			return errors.New("config: DATABASE_FILE is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("config: DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("config: unknown DB_DRIVER %q", c.DBDriver)
	}

	if _, err := service.ParseAdminPasswordStorage(c.AdminPasswordStorage); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if _, err := httpx.NewClientIP(c.TrustedProxies); err != nil {
		return fmt.Errorf("config: TRUSTED_PROXIES: %w", err)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: invalid PORT %d", c.Port)
	}
	return nil
}

// TokenConfig builds the issuer settings from the loaded values. Token
// lifetime is always jwtx.DefaultTokenTTL.
func (c Config) TokenConfig() jwtx.IssuerConfig {
	return jwtx.IssuerConfig{
		Secret:   []byte(c.JWTSecret),
		Issuer:   c.JWTIssuer,
		Audience: c.JWTAudience,
		TTL:      jwtx.DefaultTokenTTL,
	}
}

func (c Config) isDevelopment() bool {
	return c.Env == "dev" || c.Env == "test"
}
