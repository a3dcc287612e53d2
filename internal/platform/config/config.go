package config

import (
	"fmt"
	"log"
	"net"
	"net/url"
	"strings"

	"github.com/SscSPs/lending_catalog/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string
	DBMaxConns int32

	Port               string
	IsProduction       bool
	LogLevel           string
	AutoMigrate        bool
	RateLimit          string
	CORSAllowedOrigins []string

	// Lending rules
	LoanPeriodDays int
	FinePerDay     decimal.Decimal
	MaxActiveLoans int
}

// requiredDBSettings are the connection settings that have no default.
var requiredDBSettings = []string{"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD"}

// LoadConfig loads configuration from environment variables and .env file if present.
// It fails when any database connection setting is missing.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("AUTO_MIGRATE", false)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("LOAN_PERIOD_DAYS", domain.DefaultLoanPeriodDays)
	viper.SetDefault("FINE_PER_DAY", domain.DefaultFinePerDay.StringFixed(2))
	viper.SetDefault("MAX_ACTIVE_LOANS", domain.DefaultMaxActiveLoans)

	viper.AutomaticEnv()

	var missing []string
	for _, key := range requiredDBSettings {
		if strings.TrimSpace(viper.GetString(key)) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing database configuration: %s", strings.Join(missing, ", "))
	}

	cfg := &Config{
		DBHost:     viper.GetString("DB_HOST"),
		DBPort:     viper.GetString("DB_PORT"),
		DBName:     viper.GetString("DB_NAME"),
		DBUser:     viper.GetString("DB_USER"),
		DBPassword: viper.GetString("DB_PASSWORD"),
		DBSSLMode:  viper.GetString("DB_SSLMODE"),
		DBMaxConns: viper.GetInt32("DB_MAX_CONNS"),

		Port:               viper.GetString("PORT"),
		IsProduction:       viper.GetBool("IS_PRODUCTION"),
		LogLevel:           viper.GetString("LOG_LEVEL"),
		AutoMigrate:        viper.GetBool("AUTO_MIGRATE"),
		RateLimit:          viper.GetString("RATE_LIMIT"),
		CORSAllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),

		LoanPeriodDays: viper.GetInt("LOAN_PERIOD_DAYS"),
		MaxActiveLoans: viper.GetInt("MAX_ACTIVE_LOANS"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	fine, err := decimal.NewFromString(viper.GetString("FINE_PER_DAY"))
	if err != nil || fine.IsNegative() {
		return nil, fmt.Errorf("invalid FINE_PER_DAY %q: must be a non-negative amount", viper.GetString("FINE_PER_DAY"))
	}
	cfg.FinePerDay = fine

	if cfg.LoanPeriodDays < 0 {
		return nil, fmt.Errorf("invalid LOAN_PERIOD_DAYS %d: must not be negative", cfg.LoanPeriodDays)
	}
	if cfg.MaxActiveLoans < 1 {
		return nil, fmt.Errorf("invalid MAX_ACTIVE_LOANS %d: must be at least 1", cfg.MaxActiveLoans)
	}

	return cfg, nil
}

// DatabaseURL builds the postgres connection URL from the DB settings.
func (c *Config) DatabaseURL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   net.JoinHostPort(c.DBHost, c.DBPort),
		Path:   "/" + c.DBName,
	}
	if c.DBSSLMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{c.DBSSLMode}}.Encode()
	}
	return u.String()
}

// LoanPolicy returns the lending rules configured for this process.
func (c *Config) LoanPolicy() domain.LoanPolicy {
	return domain.LoanPolicy{
		LoanPeriodDays: c.LoanPeriodDays,
		FinePerDay:     c.FinePerDay,
		MaxActiveLoans: c.MaxActiveLoans,
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
