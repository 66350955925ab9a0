package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("PRACTICUM_TOKEN", "practicum-token")
	t.Setenv("TELEGRAM_TOKEN", "telegram-token")
	t.Setenv("TELEGRAM_CHAT_ID", "12345")
	for _, name := range []string{"PRACTICUM_ENDPOINT", "POLL_SCHEDULE", "POLL_LOOKBACK", "REQUEST_TIMEOUT",
		"LOG_LEVEL", "ENVIRONMENT", "LOG_FILE", "JOURNAL_DRIVER", "JOURNAL_DSN"} {
		t.Setenv(name, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "practicum-token", cfg.PracticumToken)
	assert.Equal(t, "telegram-token", cfg.TelegramToken)
	assert.Equal(t, int64(12345), cfg.TelegramChatID)
	assert.Equal(t, defaultEndpoint, cfg.Endpoint)
	assert.Equal(t, "@every 10m", cfg.PollSchedule)
	assert.Equal(t, 30*24*time.Hour, cfg.PollLookback)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Environment)
	assert.Empty(t, cfg.JournalDriver)
}

func TestLoadMissingMessagingToken(t *testing.T) {
	setRequired(t)
	t.Setenv("TELEGRAM_TOKEN", "")

	cfg, err := Load()
	assert.Nil(t, cfg)
	var credErr *CredentialError
	require.True(t, errors.As(err, &credErr))
	assert.Equal(t, []string{"TELEGRAM_TOKEN"}, credErr.Missing)
	assert.Contains(t, err.Error(), "TELEGRAM_TOKEN")
}

func TestLoadReportsEveryMissingCredential(t *testing.T) {
	setRequired(t)
	t.Setenv("PRACTICUM_TOKEN", "")
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")

	_, err := LoadCredentials()
	var credErr *CredentialError
	require.ErrorAs(t, err, &credErr)
	assert.Equal(t, []string{"PRACTICUM_TOKEN", "TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID"}, credErr.Missing)
}

func TestLoadInvalidChatID(t *testing.T) {
	setRequired(t)
	t.Setenv("TELEGRAM_CHAT_ID", "not-a-number")

	_, err := Load()
	var credErr *CredentialError
	require.ErrorAs(t, err, &credErr)
	assert.Equal(t, "TELEGRAM_CHAT_ID", credErr.Invalid)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("POLL_SCHEDULE", "@every 30s")
	t.Setenv("POLL_LOOKBACK", "1h")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("JOURNAL_DRIVER", "sqlite")
	t.Setenv("JOURNAL_DSN", "file:journal.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "@every 30s", cfg.PollSchedule)
	assert.Equal(t, time.Hour, cfg.PollLookback)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "sqlite", cfg.JournalDriver)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "schedule", key: "POLL_SCHEDULE", value: "every now and then"},
		{name: "lookback", key: "POLL_LOOKBACK", value: "a while"},
		{name: "negative timeout", key: "REQUEST_TIMEOUT", value: "-5s"},
		{name: "journal driver", key: "JOURNAL_DRIVER", value: "mongo"},
		{name: "journal without dsn", key: "JOURNAL_DRIVER", value: "postgres"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
