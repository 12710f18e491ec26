package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Driver:          "postgres",
		Host:            "localhost",
		Port:            5432,
		Username:        "postgres",
		Password:        "postgres",
		Database:        "transactions",
		SSLMode:         "disable",
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		QueryTimeout:    30 * time.Second,
		RetryAttempts:   3,
		RetryDelay:      5 * time.Second,
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("Valid configuration passes", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("Zero retry attempts rejected", func(t *testing.T) {
		// With zero attempts the connect loop would never run and no
		// connection would ever be made.
		cfg := validConfig()
		cfg.RetryAttempts = 0

		err := cfg.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "retry attempts")
	})

	t.Run("Negative retry attempts rejected", func(t *testing.T) {
		cfg := validConfig()
		cfg.RetryAttempts = -1

		assert.Error(t, cfg.Validate())
	})

	t.Run("Missing host rejected", func(t *testing.T) {
		cfg := validConfig()
		cfg.Host = ""

		assert.Error(t, cfg.Validate())
	})

	t.Run("Out-of-range port rejected", func(t *testing.T) {
		cfg := validConfig()
		cfg.Port = 70000

		assert.Error(t, cfg.Validate())
	})

	t.Run("Unknown SSL mode rejected", func(t *testing.T) {
		cfg := validConfig()
		cfg.SSLMode = "sometimes"

		assert.Error(t, cfg.Validate())
	})

	t.Run("Unsupported driver rejected", func(t *testing.T) {
		cfg := validConfig()
		cfg.Driver = "mysql"

		assert.Error(t, cfg.Validate())
	})
}

func TestParsePort(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "Numeric port", input: "5433", expected: 5433},
		{name: "Malformed port falls back", input: "abc", expected: 5432},
		{name: "Zero falls back", input: "0", expected: 5432},
		{name: "Negative falls back", input: "-1", expected: 5432},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParsePort(tt.input))
		})
	}
}

func TestConfigDSN(t *testing.T) {
	cfg := validConfig()

	dsn := cfg.DSN()

	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=transactions sslmode=disable", dsn)
}
