package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"
)

const defaultJWTSecret = "dev-secret-change-in-production"

var ErrDefaultSecretInProduction = errors.New("JWT_SECRET must be set in production environment")

type Config struct {
	Port        string
	Env         string
	DatabaseDSN string
	JWTSecret   string
	JWTExpiry   time.Duration

	Limits

	RateLimitRPS       float64
	RateLimitBurst     int
	AuthRateLimitRPS   float64
	AuthRateLimitBurst int
}

// Limits bounds what a single generation request may ask for.
type Limits struct {
	MaxLength          int
	MaxAmountAnonymous int
	MaxAmountUser      int
}

// LoadLimits reads only the generation limits from the environment.
func LoadLimits() Limits {
	return Limits{
		MaxLength:          getEnvInt("MAX_LENGTH", 128),
		MaxAmountAnonymous: getEnvInt("MAX_AMOUNT_ANONYMOUS", 10),
		MaxAmountUser:      getEnvInt("MAX_AMOUNT_USER", 100),
	}
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DatabaseDSN: getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/pwgen?parseTime=true"),
		JWTSecret:   getEnv("JWT_SECRET", defaultJWTSecret),
		JWTExpiry:   getEnvDuration("JWT_EXPIRY", 24*time.Hour),

		Limits: LoadLimits(),

		RateLimitRPS:       getEnvFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 40),
		AuthRateLimitRPS:   getEnvFloat("AUTH_RATE_LIMIT_RPS", 5),
		AuthRateLimitBurst: getEnvInt("AUTH_RATE_LIMIT_BURST", 10),
	}

	if cfg.Env == "production" && cfg.JWTSecret == defaultJWTSecret {
		return Config{}, ErrDefaultSecretInProduction
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("ignoring invalid integer setting", "key", key, "value", v)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		slog.Warn("ignoring invalid number setting", "key", key, "value", v)
		return fallback
	}
	return f
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("ignoring invalid duration setting", "key", key, "value", v)
		return fallback
	}
	return d
}
