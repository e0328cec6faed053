package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// HTTP server
	Port string

	// Record source
	DataBackend  string // csv, sqlite, sheets, memory
	CSVPath      string
	SQLiteDBPath string

	// User watchlist and report output
	SettingsPath string
	ReportPath   string

	// Currency rate API
	RatesBaseURL string
	RatesAPIKey  string
	RatesTarget  string

	// Stock price API
	StocksBaseURL string
	StocksAPIKey  string

	// AMQP (optional report-event publishing)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Per-client request throttling for the HTTP API; zero disables.
	RateLimitPerMinute int
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8081"),

		DataBackend:  getEnv("DATA_BACKEND", "csv"),
		CSVPath:      getEnv("OPERATIONS_CSV_PATH", "./data/operations.csv"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/finview.db"),

		SettingsPath: getEnv("USER_SETTINGS_PATH", "./user_settings.json"),
		ReportPath:   getEnv("REPORT_FILE_PATH", "./reports.json"),

		RatesBaseURL: getEnv("CURRENCY_API_URL", "https://api.apilayer.com/exchangerates_data"),
		RatesAPIKey:  getEnv("CURRENCY_API_KEY", ""),
		RatesTarget:  getEnv("CURRENCY_TARGET", "RUB"),

		StocksBaseURL: getEnv("STOCKS_API_URL", "https://financialmodelingprep.com/api/v3/profile"),
		StocksAPIKey:  getEnv("STOCKS_API_KEY", ""),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "finview"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "report_events"),

		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
	}
}

// Validate checks the configuration and returns an error describing
// every problem found.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case "csv":
		if c.CSVPath == "" {
			problems = append(problems, "OPERATIONS_CSV_PATH cannot be empty with the csv backend")
		}
	case "sqlite":
		if c.SQLiteDBPath == "" {
			problems = append(problems, "SQLITE_DB_PATH cannot be empty with the sqlite backend")
		}
	case "sheets", "memory":
	default:
		problems = append(problems, fmt.Sprintf("invalid data backend %q: must be one of csv, sqlite, sheets, memory", c.DataBackend))
	}

	if c.SettingsPath == "" {
		problems = append(problems, "USER_SETTINGS_PATH cannot be empty")
	}
	if c.ReportPath == "" {
		problems = append(problems, "REPORT_FILE_PATH cannot be empty")
	}

	for name, raw := range map[string]string{
		"CURRENCY_API_URL": c.RatesBaseURL,
		"STOCKS_API_URL":   c.StocksBaseURL,
	} {
		if u, err := url.Parse(raw); err != nil || u.Scheme == "" || u.Host == "" {
			problems = append(problems, fmt.Sprintf("invalid %s %q", name, raw))
		}
	}

	if c.AMQPURL != "" {
		if u, err := url.Parse(c.AMQPURL); err != nil {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL %q: %v", c.AMQPURL, err))
		} else if u.Scheme != "amqp" && u.Scheme != "amqps" {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL scheme %q: must be amqp or amqps", u.Scheme))
		}
		if c.AMQPExchange == "" {
			problems = append(problems, "AMQP_EXCHANGE cannot be empty when AMQP_URL is set")
		}
		if c.AMQPQueue == "" {
			problems = append(problems, "AMQP_QUEUE cannot be empty when AMQP_URL is set")
		}
	}

	if c.RateLimitPerMinute < 0 {
		problems = append(problems, "RATE_LIMIT_PER_MINUTE cannot be negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration invalid: %s", strings.Join(problems, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
