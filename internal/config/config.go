package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Market struct {
		QuoteAsset     string  `yaml:"quote_asset"`
		MinDailyVolume float64 `yaml:"min_daily_volume"`
		CandleInterval string  `yaml:"candle_interval"`
		CandleCount    int     `yaml:"candle_count"`
		CachePath      string  `yaml:"cache_path"`
		CacheTTLHours  int     `yaml:"cache_ttl_hours"`
	} `yaml:"market"`
	Sentiment struct {
		TwitterBearerToken string `yaml:"twitter_bearer_token"`
		RedditEnabled      bool   `yaml:"reddit_enabled"`
		WindowHours        int    `yaml:"window_hours"`
		SourceTimeoutSecs  int    `yaml:"source_timeout_secs"`
	} `yaml:"sentiment"`
	Screen struct {
		Concurrency        int     `yaml:"concurrency"`
		InclusionThreshold float64 `yaml:"inclusion_threshold"`
		SymbolTimeoutSecs  int     `yaml:"symbol_timeout_secs"`
		TopResults         int     `yaml:"top_results"`
	} `yaml:"screen"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Schedule struct {
		ScreenCron string `yaml:"screen_cron"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from an optional .env file and a YAML file, then
// applies environment variable overrides and defaults.
func Load(path string) (*Config, error) {
	// .env is optional; real environment always wins.
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TWITTER_BEARER_TOKEN"); v != "" {
		cfg.Sentiment.TwitterBearerToken = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("MIN_DAILY_VOLUME"); v != "" {
		if vol, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Market.MinDailyVolume = vol
		}
	}
	if v := os.Getenv("SCREEN_CRON"); v != "" {
		cfg.Schedule.ScreenCron = v
	}
	if v := os.Getenv("CACHE_PATH"); v != "" {
		cfg.Market.CachePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Market.QuoteAsset == "" {
		cfg.Market.QuoteAsset = "USDT"
	}
	if cfg.Market.MinDailyVolume == 0 {
		cfg.Market.MinDailyVolume = 100000
	}
	if cfg.Market.CandleInterval == "" {
		cfg.Market.CandleInterval = "1d"
	}
	if cfg.Market.CandleCount == 0 {
		cfg.Market.CandleCount = 200
	}
	if cfg.Market.CacheTTLHours == 0 {
		cfg.Market.CacheTTLHours = 12
	}
	if cfg.Sentiment.WindowHours == 0 {
		cfg.Sentiment.WindowHours = 24
	}
	if cfg.Sentiment.SourceTimeoutSecs == 0 {
		cfg.Sentiment.SourceTimeoutSecs = 10
	}
	if cfg.Screen.Concurrency == 0 {
		cfg.Screen.Concurrency = 4
	}
	if cfg.Screen.InclusionThreshold == 0 {
		cfg.Screen.InclusionThreshold = 6.0
	}
	if cfg.Screen.SymbolTimeoutSecs == 0 {
		cfg.Screen.SymbolTimeoutSecs = 60
	}
	if cfg.Screen.TopResults == 0 {
		cfg.Screen.TopResults = 5
	}

	return cfg, nil
}

// Validate checks field consistency. Telegram is optional but must be
// configured completely or not at all.
func (c *Config) Validate() error {
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	if c.Market.CandleCount < 2 {
		return fmt.Errorf("market.candle_count must be at least 2")
	}
	if c.Screen.Concurrency < 1 {
		return fmt.Errorf("screen.concurrency must be positive")
	}
	if c.Screen.InclusionThreshold < 0 || c.Screen.InclusionThreshold > 10 {
		return fmt.Errorf("screen.inclusion_threshold must be within [0,10]")
	}
	return nil
}

// SentimentWindow returns the recency window as a duration.
func (c *Config) SentimentWindow() time.Duration {
	return time.Duration(c.Sentiment.WindowHours) * time.Hour
}

// CacheTTL returns the candle cache TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Market.CacheTTLHours) * time.Hour
}
