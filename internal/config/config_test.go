package config

import (
	"os"
	"path/filepath"
	"testing"

	"oficina/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	t.Setenv("OFICINA_TEST_TOKEN", "secret-token")

	content := `
app:
  name: oficina-test
  environment: test
telegram:
  bot_token: ${OFICINA_TEST_TOKEN}
exports:
  path: ` + dir + `
hotel:
  lower_rate: 100000
api:
  enabled: true
  http:
    port: 8181
  auth:
    enabled: true
    api_keys:
      - key: k1
        name: frontdesk
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "oficina-test", cfg.App.Name)
	assert.Equal(t, "secret-token", cfg.Telegram.BotToken)
	assert.Equal(t, int64(100000), cfg.Hotel.LowerRate)
	assert.Equal(t, models.DefaultHigherRate, cfg.Hotel.HigherRate)
	assert.Equal(t, 8181, cfg.API.HTTP.Port)
	assert.Equal(t, "x-api-key", cfg.API.Auth.HeaderAPIKey)
	require.Len(t, cfg.API.Auth.APIKeys, 1)
	assert.Equal(t, "frontdesk", cfg.API.Auth.APIKeys[0].Name)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app: [unterminated"), 0o600))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.applyDefaults()
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"Defaults", func(c *Config) {}, false},
		{"NegativeRate", func(c *Config) { c.Hotel.LowerRate = -1 }, true},
		{"EmptyExportPath", func(c *Config) { c.Exports.Path = "" }, true},
		{"BadPort", func(c *Config) { c.API.Enabled = true; c.API.HTTP.Port = 70000 }, true},
		{"AuthWithoutKeys", func(c *Config) { c.API.Auth.Enabled = true }, true},
		{"DuplicateKeys", func(c *Config) {
			c.API.Auth.Enabled = true
			c.API.Auth.APIKeys = []APIClientKey{{Key: "a", Name: "one"}, {Key: "a", Name: "two"}}
		}, true},
		{"EmptyKey", func(c *Config) {
			c.API.Auth.Enabled = true
			c.API.Auth.APIKeys = []APIClientKey{{Name: "one"}}
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, "oficina", cfg.App.Name)
	assert.Equal(t, "./exports", cfg.Exports.Path)
	assert.Equal(t, models.DefaultLowerRate, cfg.Hotel.LowerRate)
	assert.Equal(t, models.RateLimitMessages, cfg.Bot.RateLimitMessages)
	assert.Equal(t, models.RateLimitWindow, cfg.Bot.RateLimitWindow)
	assert.Equal(t, models.DefaultStateTTL, cfg.Bot.StateTTL)
	assert.Equal(t, 8080, cfg.API.HTTP.Port)
	assert.Equal(t, 9090, cfg.Monitoring.PrometheusPort)
}
