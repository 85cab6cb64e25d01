package main

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/gabapcia/txhistory/internal/pkg/validator"
)

const envPrefix = "TXHISTORY"

type config struct {
	LedgerPath string `envconfig:"LEDGER_PATH" validate:"required"`
	PageSize   int    `envconfig:"PAGE_SIZE" default:"20" validate:"min=1"`

	LogLevel         string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED"`

	RedisAddr        string        `envconfig:"REDIS_ADDR" default:"localhost:6379" validate:"hostname_port"`
	RedisUsername    string        `envconfig:"REDIS_USERNAME"`
	RedisPassword    string        `envconfig:"REDIS_PASSWORD"`
	RedisDB          int           `envconfig:"REDIS_DB" validate:"min=0"`
	RedisKeyPrefix   string        `envconfig:"REDIS_KEY_PREFIX" default:"txhistory"`
	RedisRateTTL     time.Duration `envconfig:"REDIS_RATE_TTL"`
	RedisMetadataTTL time.Duration `envconfig:"REDIS_METADATA_TTL" default:"168h"`

	HTTPTimeout  time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
	HTTPRetryMax int           `envconfig:"HTTP_RETRY_MAX" default:"2" validate:"min=0"`

	CoingeckoURL               string  `envconfig:"COINGECKO_URL" default:"https://api.coingecko.com/api/v3" validate:"url"`
	CoingeckoAPIKey            string  `envconfig:"COINGECKO_API_KEY"`
	CoingeckoRequestsPerSecond float64 `envconfig:"COINGECKO_REQUESTS_PER_SECOND" default:"0.5"`

	OpenseaURL    string `envconfig:"OPENSEA_URL" default:"https://api.opensea.io" validate:"url"`
	OpenseaAPIKey string `envconfig:"OPENSEA_API_KEY"`

	EthereumRPCURL string        `envconfig:"ETHEREUM_RPC_URL" validate:"omitempty,url"`
	PolygonRPCURL  string        `envconfig:"POLYGON_RPC_URL" validate:"omitempty,url"`
	BlockPollEvery time.Duration `envconfig:"BLOCK_POLL_INTERVAL" default:"12s"`

	SwapStatusAPIURL  string `envconfig:"SWAP_STATUS_API_URL"`
	SwapStatusPageURL string `envconfig:"SWAP_STATUS_PAGE_URL" validate:"omitempty,url"`

	Currency      string `envconfig:"CURRENCY" default:"usd" validate:"required"`
	HideSpam      bool   `envconfig:"HIDE_SPAM" default:"true"`
	HideAmounts   bool   `envconfig:"HIDE_AMOUNTS"`
	ResendEnabled bool   `envconfig:"RESEND_ENABLED"`
}

// loadConfig reads an optional .env file, then the TXHISTORY_ environment.
func loadConfig() (config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config{}, err
	}

	var cfg config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return config{}, err
	}

	return cfg, nil
}
