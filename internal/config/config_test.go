package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	valid := Config{Username: "user", Password: "pass", Timeout: 10 * time.Second}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name string
		mut  func(*Config)
	}{
		{"missing username", func(c *Config) { c.Username = "" }},
		{"missing password", func(c *Config) { c.Password = "" }},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mut(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
