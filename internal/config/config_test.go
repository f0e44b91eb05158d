package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/popeskul/wa-webhook-bridge/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("ACCESS_TOKEN", "token")
	t.Setenv("APP_SECRET", "secret")
	t.Setenv("VERIFY_TOKEN", "verify")
	t.Setenv("PHONE_NUMBER_ID", "12345")
	t.Setenv("VERSION", "v19.0")
	t.Setenv("RECIPIENT_WAID", "15550001111")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("DEBUG", "true")

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
	assert.Equal(t, 10, cfg.Dispatcher.Timeout)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.True(t, cfg.App.Debug)
	assert.True(t, cfg.App.IsDevelopment())
	assert.Equal(t, "token", cfg.WhatsApp.AccessToken)
	assert.Equal(t, "secret", cfg.WhatsApp.AppSecret)
	assert.Equal(t, "15550001111", cfg.WhatsApp.RecipientWAID)
	assert.Equal(t, "https://graph.facebook.com/v19.0/12345/messages", cfg.WhatsApp.MessagesURL())
	assert.Empty(t, cfg.MissingSecrets())
}

func TestLoadConfig_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
server:
  port: "9090"
whatsapp:
  api_base_url: "http://localhost:1234/"
  phone_number_id: "from-file"
  strict_signature_prefix: true
dispatcher:
  timeout: 3
reply:
  whatsapp_formatting: true
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("PHONE_NUMBER_ID", "from-env")
	t.Setenv("PORT", "7070")

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "from-env", cfg.WhatsApp.PhoneNumberID)
	assert.Equal(t, "http://localhost:1234", cfg.WhatsApp.APIBaseURL)
	assert.True(t, cfg.WhatsApp.StrictSignaturePrefix)
	assert.True(t, cfg.Reply.WhatsAppFormatting)
	assert.Equal(t, 3, cfg.Dispatcher.Timeout)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unterminated"), 0o600))

	_, err := config.LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestConfig_MissingSecrets(t *testing.T) {
	cfg := &config.Config{
		WhatsApp: config.WhatsAppConfig{
			AccessToken: "token",
			Version:     "v18.0",
		},
	}

	assert.Equal(t,
		[]string{"APP_SECRET", "VERIFY_TOKEN", "PHONE_NUMBER_ID", "RECIPIENT_WAID"},
		cfg.MissingSecrets(),
	)
}
