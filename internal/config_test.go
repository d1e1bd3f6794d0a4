package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Token:          "token",
		ChannelID:      "123456789",
		BadgerFilepath: "/tmp/badger",
		LogLevel:       "INFO",
		BufferSize:     64,
		StoreTimeout:   5 * time.Second,
		MetricInterval: 30 * time.Second,
		GCInterval:     5 * time.Minute,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		description string
		modify      func(c *Config)
		wantErr     bool
	}{
		{"Should accept a valid config", func(c *Config) {}, false},
		{"Should reject a non-numeric channel id", func(c *Config) { c.ChannelID = "general" }, true},
		{"Should reject a missing token", func(c *Config) { c.Token = "" }, true},
		{"Should reject an unknown log level", func(c *Config) { c.LogLevel = "VERBOSE" }, true},
		{"Should reject a zero store timeout", func(c *Config) { c.StoreTimeout = 0 }, true},
		{"Should reject a negative buffer size", func(c *Config) { c.BufferSize = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			config := validConfig()
			tt.modify(&config)

			err := config.Validate()
			if tt.wantErr {
				req.Error(err)
				return
			}
			req.NoError(err)
		})
	}
}
