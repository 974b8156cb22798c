package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Backend  BackendConfig  `yaml:"backend"`
	Groq     GroqConfig     `yaml:"groq"`
	Market   MarketConfig   `yaml:"market"`
	Server   ServerConfig   `yaml:"server"`
	Telegram TelegramConfig `yaml:"telegram"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// BackendConfig points the terminal client at a running advisord.
type BackendConfig struct {
	URL            string `yaml:"url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type GroqConfig struct {
	APIKey         string `yaml:"api_key"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type MarketConfig struct {
	Enabled             bool `yaml:"enabled"`
	QuoteTimeoutSeconds int  `yaml:"quote_timeout_seconds"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type TelegramConfig struct {
	Enabled  bool   `yaml:"enabled"`
	BotToken string `yaml:"bot_token"`
	ChatID   int64  `yaml:"chat_id"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Backend.URL == "" {
		cfg.Backend.URL = "http://localhost:8080"
	}
	if cfg.Backend.TimeoutSeconds == 0 {
		// Agent pipelines are slow; the client waits well past normal HTTP timeouts.
		cfg.Backend.TimeoutSeconds = 300
	}
	if cfg.Groq.Model == "" {
		cfg.Groq.Model = "llama-3.1-8b-instant"
	}
	if cfg.Groq.TimeoutSeconds == 0 {
		cfg.Groq.TimeoutSeconds = 120
	}
	if cfg.Market.QuoteTimeoutSeconds == 0 {
		cfg.Market.QuoteTimeoutSeconds = 15
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

func (c *Config) Validate() error {
	if _, err := url.Parse(c.Backend.URL); err != nil {
		return fmt.Errorf("invalid backend.url %q: %w", c.Backend.URL, err)
	}
	if c.Telegram.Enabled {
		if c.Telegram.BotToken == "" {
			return fmt.Errorf("telegram.bot_token is required when telegram is enabled")
		}
		if c.Telegram.ChatID == 0 {
			return fmt.Errorf("telegram.chat_id is required when telegram is enabled")
		}
	}
	return nil
}

// ValidateServer checks the extra fields advisord needs; the terminal client
// does not require a Groq key.
func (c *Config) ValidateServer() error {
	if c.Groq.APIKey == "" {
		return fmt.Errorf("groq.api_key is required")
	}
	return nil
}

func (c *Config) BackendTimeout() time.Duration {
	return time.Duration(c.Backend.TimeoutSeconds) * time.Second
}

func (c *Config) GroqTimeout() time.Duration {
	return time.Duration(c.Groq.TimeoutSeconds) * time.Second
}

func (c *Config) QuoteTimeout() time.Duration {
	return time.Duration(c.Market.QuoteTimeoutSeconds) * time.Second
}
