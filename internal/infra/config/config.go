package config

import (
	"fmt"
	"os"
	"strconv"
	"strings" // For LogLevel normalization
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

const (
	defaultEndpoint       = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	defaultPollSchedule   = "@every 10m"
	defaultPollLookback   = 30 * 24 * time.Hour
	defaultRequestTimeout = 30 * time.Second
)

// Credentials are the three secrets the bot cannot start without.
type Credentials struct {
	PracticumToken string
	TelegramToken  string
	TelegramChatID int64
}

// AppConfig holds all configuration for the application
type AppConfig struct {
	Credentials

	Endpoint       string
	PollSchedule   string // robfig/cron spec, "@every 10m" by default
	PollLookback   time.Duration
	RequestTimeout time.Duration

	LogLevel    string
	Environment string
	LogFile     string // Optional; logs are mirrored to this file when set

	JournalDriver string // "", "postgres" or "sqlite"
	JournalDSN    string
}

// CredentialError is returned when a mandatory variable is absent or unusable.
type CredentialError struct {
	Missing []string
	Invalid string // Name of a variable that is set but cannot be parsed
	Err     error
}

func (e *CredentialError) Error() string {
	if e.Invalid != "" {
		return fmt.Sprintf("invalid %s: %v", e.Invalid, e.Err)
	}
	return fmt.Sprintf("missing required environment variables: %s", strings.Join(e.Missing, ", "))
}

func (e *CredentialError) Unwrap() error { return e.Err }

// LoadCredentials reads the mandatory secrets. Every missing name is reported, not just the first.
func LoadCredentials() (Credentials, error) {
	var creds Credentials
	var missing []string

	creds.PracticumToken = os.Getenv("PRACTICUM_TOKEN")
	if creds.PracticumToken == "" {
		missing = append(missing, "PRACTICUM_TOKEN")
	}
	creds.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if creds.TelegramToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	chatIDStr := os.Getenv("TELEGRAM_CHAT_ID")
	if chatIDStr == "" {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	if len(missing) > 0 {
		return Credentials{}, &CredentialError{Missing: missing}
	}

	chatID, err := strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return Credentials{}, &CredentialError{Invalid: "TELEGRAM_CHAT_ID", Err: err}
	}
	creds.TelegramChatID = chatID
	return creds, nil
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	creds, err := LoadCredentials()
	if err != nil {
		return nil, err
	}
	cfg := &AppConfig{Credentials: creds}

	cfg.Endpoint = os.Getenv("PRACTICUM_ENDPOINT")
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}

	cfg.PollSchedule = os.Getenv("POLL_SCHEDULE")
	if cfg.PollSchedule == "" {
		cfg.PollSchedule = defaultPollSchedule
	}
	if _, err := cron.ParseStandard(cfg.PollSchedule); err != nil {
		return nil, fmt.Errorf("invalid POLL_SCHEDULE: %w", err)
	}

	if cfg.PollLookback, err = durationEnv("POLL_LOOKBACK", defaultPollLookback); err != nil {
		return nil, err
	}
	if cfg.RequestTimeout, err = durationEnv("REQUEST_TIMEOUT", defaultRequestTimeout); err != nil {
		return nil, err
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	cfg.LogFile = os.Getenv("LOG_FILE")

	cfg.JournalDriver = strings.ToLower(os.Getenv("JOURNAL_DRIVER"))
	cfg.JournalDSN = os.Getenv("JOURNAL_DSN")
	switch cfg.JournalDriver {
	case "":
	case "postgres", "sqlite":
		if cfg.JournalDSN == "" {
			return nil, fmt.Errorf("JOURNAL_DSN is not set for JOURNAL_DRIVER=%s", cfg.JournalDriver)
		}
	default:
		return nil, fmt.Errorf("unsupported JOURNAL_DRIVER %q", cfg.JournalDriver)
	}

	return cfg, nil
}

func durationEnv(name string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", name)
	}
	return d, nil
}
