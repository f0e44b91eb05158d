// Package config provides configuration management for the application.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	App        AppConfig        `mapstructure:"app"`
	WhatsApp   WhatsAppConfig   `mapstructure:"whatsapp"`
	Dispatcher DispatcherConfig `mapstructure:"dispatcher"`
	Reply      ReplyConfig      `mapstructure:"reply"`
}

type ServerConfig struct {
	Port           string `mapstructure:"port"`
	ReadTimeout    int    `mapstructure:"read_timeout"`
	WriteTimeout   int    `mapstructure:"write_timeout"`
	RequestTimeout int    `mapstructure:"request_timeout"`
	MaxBodyBytes   int64  `mapstructure:"max_body_bytes"`
}

type AppConfig struct {
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
	LogLevel    string `mapstructure:"log_level"`
}

// WhatsAppConfig holds the Cloud API credentials and identifiers.
type WhatsAppConfig struct {
	AccessToken           string `mapstructure:"access_token"`
	AppID                 string `mapstructure:"app_id"`
	AppSecret             string `mapstructure:"app_secret"`
	VerifyToken           string `mapstructure:"verify_token"`
	PhoneNumberID         string `mapstructure:"phone_number_id"`
	PhoneNumber           string `mapstructure:"phone_number"`
	Version               string `mapstructure:"version"`
	RecipientWAID         string `mapstructure:"recipient_waid"`
	APIBaseURL            string `mapstructure:"api_base_url"`
	StrictSignaturePrefix bool   `mapstructure:"strict_signature_prefix"`
}

type DispatcherConfig struct {
	Timeout        int                  `mapstructure:"timeout"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

type CircuitBreakerConfig struct {
	MaxRequests      uint32  `mapstructure:"max_requests"`
	Interval         int     `mapstructure:"interval"`
	Timeout          int     `mapstructure:"timeout"`
	FailureRatio     float64 `mapstructure:"failure_ratio"`
	ConsecutiveFails uint32  `mapstructure:"consecutive_fails"`
}

type ReplyConfig struct {
	WhatsAppFormatting bool `mapstructure:"whatsapp_formatting"`
}

// envBindings maps config keys to the environment variables that override them.
var envBindings = map[string]string{
	"whatsapp.access_token":    "ACCESS_TOKEN",
	"whatsapp.app_id":          "APP_ID",
	"whatsapp.app_secret":      "APP_SECRET",
	"whatsapp.verify_token":    "VERIFY_TOKEN",
	"whatsapp.phone_number_id": "PHONE_NUMBER_ID",
	"whatsapp.phone_number":    "YOUR_PHONE_NUMBER",
	"whatsapp.version":         "VERSION",
	"whatsapp.recipient_waid":  "RECIPIENT_WAID",
	"app.environment":          "APP_ENV",
	"app.debug":                "DEBUG",
	"app.log_level":            "LOG_LEVEL",
	"server.port":              "PORT",
}

// LoadConfig reads an optional YAML file, a local .env file and the process
// environment. A missing config file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("server.port", "8000")
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.request_timeout", 30)
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("app.environment", "production")
	v.SetDefault("app.debug", false)
	v.SetDefault("app.log_level", "info")
	v.SetDefault("whatsapp.api_base_url", "https://graph.facebook.com")
	v.SetDefault("whatsapp.version", "v18.0")
	v.SetDefault("whatsapp.strict_signature_prefix", false)
	v.SetDefault("dispatcher.timeout", 10)
	v.SetDefault("dispatcher.circuit_breaker.max_requests", 3)
	v.SetDefault("dispatcher.circuit_breaker.interval", 60)
	v.SetDefault("dispatcher.circuit_breaker.timeout", 60)
	v.SetDefault("dispatcher.circuit_breaker.failure_ratio", 0.6)
	v.SetDefault("dispatcher.circuit_breaker.consecutive_fails", 5)
	v.SetDefault("reply.whatsapp_formatting", false)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", env, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.App.LogLevel = strings.ToLower(strings.TrimSpace(config.App.LogLevel))
	config.WhatsApp.APIBaseURL = strings.TrimRight(strings.TrimSpace(config.WhatsApp.APIBaseURL), "/")
	config.WhatsApp.Version = strings.Trim(strings.TrimSpace(config.WhatsApp.Version), "/")

	return &config, nil
}

// MissingSecrets returns the environment names of unset WhatsApp settings.
func (c *Config) MissingSecrets() []string {
	required := []struct {
		env   string
		value string
	}{
		{"ACCESS_TOKEN", c.WhatsApp.AccessToken},
		{"APP_SECRET", c.WhatsApp.AppSecret},
		{"VERIFY_TOKEN", c.WhatsApp.VerifyToken},
		{"PHONE_NUMBER_ID", c.WhatsApp.PhoneNumberID},
		{"VERSION", c.WhatsApp.Version},
		{"RECIPIENT_WAID", c.WhatsApp.RecipientWAID},
	}

	var missing []string
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.env)
		}
	}
	return missing
}

// MessagesURL returns the Graph API endpoint used to send messages.
func (w *WhatsAppConfig) MessagesURL() string {
	return fmt.Sprintf("%s/%s/%s/messages", w.APIBaseURL, w.Version, url.PathEscape(w.PhoneNumberID))
}

// IsDevelopment reports whether the process runs with a non-production profile.
func (a *AppConfig) IsDevelopment() bool {
	return a.Debug || strings.EqualFold(a.Environment, "development")
}
