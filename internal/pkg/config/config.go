package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Scoreboard ScoreboardConfig `yaml:"scoreboard"`
	Feed       FeedConfig       `yaml:"feed"`
	Poll       PollConfig       `yaml:"poll"`
	Telegram   TelegramConfig   `yaml:"telegram"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ScoreboardConfig configures the rendered scoreboard page source.
type ScoreboardConfig struct {
	BaseURL   string            `yaml:"base_url"`
	UserAgent string            `yaml:"user_agent"`
	Headers   map[string]string `yaml:"headers"`
	Timeout   time.Duration     `yaml:"timeout"`
	Browser   BrowserConfig     `yaml:"browser"`
}

// BrowserConfig configures the headless-browser fallback used when the
// plain HTTP client is blocked.
type BrowserConfig struct {
	Enabled bool          `yaml:"enabled"`
	Timeout time.Duration `yaml:"timeout"`
}

// FeedConfig configures the gamescores JSON feed source.
type FeedConfig struct {
	URL       string            `yaml:"url"`
	UserAgent string            `yaml:"user_agent"`
	Headers   map[string]string `yaml:"headers"`
	Timeout   time.Duration     `yaml:"timeout"`
}

type PollConfig struct {
	Interval time.Duration `yaml:"interval"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
	ChatID   int64  `yaml:"chat_id"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Default returns the configuration used when no config file is given.
// Endpoints and request headers live here rather than as package constants
// so tests and alternate deployments can swap them per instance.
func Default() *Config {
	return &Config{
		Scoreboard: ScoreboardConfig{
			BaseURL:   "https://www.footballdb.com/",
			UserAgent: defaultUserAgent,
			Headers: map[string]string{
				"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
				"Accept-Language": "en-US,en;q=0.9",
				"Referer":         "https://www.footballdb.com/",
				"Connection":      "keep-alive",
			},
			Timeout: 10 * time.Second,
			Browser: BrowserConfig{Enabled: false, Timeout: 30 * time.Second},
		},
		Feed: FeedConfig{
			URL:       "https://www.footballdb.com/data/gamescores.php",
			UserAgent: defaultUserAgent,
			Headers: map[string]string{
				"Accept":           "*/*",
				"Accept-Language":  "en-US,en;q=0.9",
				"Referer":          "https://www.footballdb.com/",
				"X-Requested-With": "XMLHttpRequest",
			},
			Timeout: 10 * time.Second,
		},
		Poll:    PollConfig{Interval: 30 * time.Second},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/142.0.0.0 Safari/537.36"
