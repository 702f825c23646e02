package config

import (
	"log"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type Config struct {
	CNB        CNB
	Currencies Currencies
	HTTPServer HTTPServer
	Redis      Redis
	Fetcher    Fetcher
	Log        Log
}

type CNB struct {
	BaseURL        string        `env:"CNB_BASE_URL" env-default:"https://api.cnb.cz/cnbapi/"`
	DailyRatesPath string        `env:"CNB_DAILY_RATES_PATH" env-default:"exrates/daily"`
	Lang           string        `env:"CNB_LANG" env-default:"EN"`
	Timeout        time.Duration `env:"CNB_TIMEOUT" env-default:"10s"`
	RetryAttempts  int           `env:"CNB_RETRY_ATTEMPTS" env-default:"3"`
	RetryDelay     time.Duration `env:"CNB_RETRY_DELAY" env-default:"3s"`
}

type Currencies struct {
	Supported string `env:"CURRENCIES_SUPPORTED" env-default:"USD,EUR,CZK,JPY,KES,RUB,THB,TRY,XYZ"`
	Base      string `env:"CURRENCIES_BASE" env-default:"CZK"`
}

type HTTPServer struct {
	Port        string        `env:"HTTP_PORT" env-default:"8082"`
	Timeout     time.Duration `env:"HTTP_TIMEOUT" env-default:"2m"`
	IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// Redis is optional, an empty Host disables fetch notifications.
type Redis struct {
	Host     string `env:"REDIS_HOST" env-default:""`
	Password string `env:"REDIS_PASSWORD" env-default:""`
	DB       int    `env:"REDIS_DB" env-default:"0"`
	Channel  string `env:"REDIS_CHANNEL" env-default:"cnb_rates_fetched"`
}

type Fetcher struct {
	Interval time.Duration `env:"FETCHER_INTERVAL" env-default:"1h"`
}

type Log struct {
	Level string `env:"LOG_LEVEL" env-default:"debug"`
}

func NewConfig() *Config {
	_ = godotenv.Load(".env")

	cfg, err := Load()
	if err != nil {
		log.Fatal("Error reading env: ", err)
	}

	return cfg
}

// Load reads the configuration from the process environment only.
func Load() (*Config, error) {
	const op = "config.Load"

	cfg := &Config{}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, errors.Wrap(err, op)
	}

	if cfg.CNB.RetryAttempts < 1 {
		return nil, errors.Errorf("%s: CNB_RETRY_ATTEMPTS must be at least 1, got %d", op, cfg.CNB.RetryAttempts)
	}

	if cfg.CNB.Timeout <= 0 {
		return nil, errors.Errorf("%s: CNB_TIMEOUT must be positive", op)
	}

	if cfg.Fetcher.Interval <= 0 {
		return nil, errors.Errorf("%s: FETCHER_INTERVAL must be positive", op)
	}

	return cfg, nil
}

// SupportedCodes splits the comma separated list, dropping blanks.
func (c Currencies) SupportedCodes() []string {
	return Split(c.Supported)
}

func Split(str string) []string {
	if strings.TrimSpace(str) == "" {
		return nil
	}

	parts := strings.Split(str, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Redacted is safe to log.
func (c Config) Redacted() Config {
	if c.Redis.Password != "" {
		c.Redis.Password = "***"
	}
	return c
}
