package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/shopspring/decimal"
)

// Config holds engine configuration loaded from the environment. It covers
// ambient concerns only; the points rule tables are fixed in code and not
// configurable at runtime.
type Config struct {
	AppEnv             string
	LogLevel           string
	LogFormat          string
	MetricsNamespace   string
	DefaultTaxRate     decimal.Decimal
	DefaultShippingEUR decimal.Decimal
}

// Load reads configuration from environment variables and an optional .env
// file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	taxRate, err := parseDecimal(k.String("DEFAULT_TAX_RATE"), "0.2")
	if err != nil {
		return nil, fmt.Errorf("DEFAULT_TAX_RATE: %w", err)
	}
	shipping, err := parseDecimal(k.String("DEFAULT_SHIPPING_EUR"), "0")
	if err != nil {
		return nil, fmt.Errorf("DEFAULT_SHIPPING_EUR: %w", err)
	}

	cfg := &Config{
		AppEnv:             valueOrDefault(k.String("APP_ENV"), "development"),
		LogLevel:           valueOrDefault(k.String("LOG_LEVEL"), "info"),
		LogFormat:          valueOrDefault(k.String("LOG_FORMAT"), "json"),
		MetricsNamespace:   valueOrDefault(k.String("METRICS_NAMESPACE"), "points"),
		DefaultTaxRate:     taxRate,
		DefaultShippingEUR: shipping,
	}

	if cfg.DefaultTaxRate.IsNegative() || cfg.DefaultTaxRate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("DEFAULT_TAX_RATE must be within [0, 1], got %s", cfg.DefaultTaxRate)
	}
	if cfg.DefaultShippingEUR.IsNegative() {
		return nil, fmt.Errorf("DEFAULT_SHIPPING_EUR must not be negative, got %s", cfg.DefaultShippingEUR)
	}

	return cfg, nil
}

// MustLoad behaves like Load but panics on error. Useful for command
// entrypoints.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func parseDecimal(value, fallback string) (decimal.Decimal, error) {
	base := strings.TrimSpace(value)
	if base == "" {
		base = fallback
	}
	return decimal.NewFromString(base)
}

// LoadForTests allows tests to override environment variables without
// touching the real environment.
func LoadForTests(envVars map[string]string) (*Config, error) {
	original := make(map[string]string, len(envVars))
	for key := range envVars {
		original[key] = os.Getenv(key)
		if err := setEnvVar(key, envVars[key]); err != nil {
			return nil, err
		}
	}
	cfg, err := Load()
	restoreErr := restoreEnv(original)
	if err != nil {
		return nil, err
	}
	return cfg, restoreErr
}

func setEnvVar(key, value string) error {
	if value == "" {
		return os.Unsetenv(key)
	}
	return os.Setenv(key, value)
}

func restoreEnv(values map[string]string) error {
	var errs []string
	for key, value := range values {
		if err := setEnvVar(key, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("restore env: %s", strings.Join(errs, "; "))
	}
	return nil
}
