package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/txhistory/internal/contactbook"
	"github.com/gabapcia/txhistory/internal/handlers/cli"
	"github.com/gabapcia/txhistory/internal/infra/blockchain"
	"github.com/gabapcia/txhistory/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/txhistory/internal/infra/gateway/coingecko"
	"github.com/gabapcia/txhistory/internal/infra/gateway/opensea"
	"github.com/gabapcia/txhistory/internal/infra/gateway/swapstatus"
	"github.com/gabapcia/txhistory/internal/infra/storage/jsonl"
	"github.com/gabapcia/txhistory/internal/infra/storage/redis"
	"github.com/gabapcia/txhistory/internal/nftmeta"
	"github.com/gabapcia/txhistory/internal/pkg/logger"
	"github.com/gabapcia/txhistory/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/txhistory/internal/pkg/transport/http"
	"github.com/gabapcia/txhistory/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/txhistory/internal/ratehistory"
	"github.com/gabapcia/txhistory/internal/txinfo"
	"github.com/gabapcia/txhistory/internal/txrecord"
	"github.com/gabapcia/txhistory/internal/txstream"
)

const serviceName = "txhistory"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, serviceName)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer shutdown(context.WithoutCancel(ctx))
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	store, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB,
		redis.WithKeyPrefix(cfg.RedisKeyPrefix),
		redis.WithRateTTL(cfg.RedisRateTTL),
		redis.WithMetadataTTL(cfg.RedisMetadataTTL),
	)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer store.Close()

	ledger, err := jsonl.Open(cfg.LedgerPath, jsonl.WithPageSize(cfg.PageSize))
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}

	httpClient := func(opts ...transporthttp.Option) *http.Client {
		opts = append([]transporthttp.Option{
			transporthttp.WithTimeout(cfg.HTTPTimeout),
			transporthttp.WithRetryMax(cfg.HTTPRetryMax),
		}, opts...)
		return transporthttp.NewClient(opts...).StandardClient()
	}

	prices := coingecko.NewClient(
		httpClient(transporthttp.WithHeader(coingecko.HeaderAPIKey, cfg.CoingeckoAPIKey)),
		coingecko.WithBaseURL(cfg.CoingeckoURL),
		coingecko.WithRequestsPerSecond(cfg.CoingeckoRequestsPerSecond),
	)
	rates := ratehistory.New(store, prices, ratehistory.WithCurrency(cfg.Currency))
	defer rates.Close()

	nfts := opensea.NewClient(httpClient(transporthttp.WithHeader(opensea.HeaderAPIKey, cfg.OpenseaAPIKey)), cfg.OpenseaURL)
	metadata := nftmeta.New(store, nfts)
	defer metadata.Close()

	contacts := contactbook.New(store)
	if err := contacts.Start(ctx); err != nil {
		return fmt.Errorf("start contact book: %w", err)
	}
	defer contacts.Close()

	var feeds []blockchain.Feed
	for blockchainType, rpcURL := range map[txrecord.BlockchainType]string{
		txrecord.BlockchainEthereum: cfg.EthereumRPCURL,
		txrecord.BlockchainPolygon:  cfg.PolygonRPCURL,
	} {
		if rpcURL == "" {
			continue
		}

		conn := jsonrpc.NewClient(httpClient(), rpcURL)
		feeds = append(feeds, ethereum.NewClient(conn,
			ethereum.WithBlockchain(blockchainType),
			ethereum.WithPollInterval(cfg.BlockPollEvery),
		))
	}
	router := blockchain.NewRouter(feeds...)

	var tracker txinfo.StatusTracker
	if cfg.SwapStatusAPIURL != "" {
		opts := []swapstatus.Option{}
		if cfg.SwapStatusPageURL != "" {
			opts = append(opts, swapstatus.WithPageURL(cfg.SwapStatusPageURL))
		}

		tracker, err = swapstatus.NewTracker(httpClient(), cfg.SwapStatusAPIURL, opts...)
		if err != nil {
			return fmt.Errorf("configure swap status tracker: %w", err)
		}
	}

	deps := cli.Dependencies{
		Ledger:        ledger,
		Contacts:      contacts,
		ResendEnabled: cfg.ResendEnabled,
		NewAggregator: func() txstream.Service {
			return txstream.New(ledger, rates, metadata, router,
				txstream.WithContactIndex(contacts),
				txstream.WithHideSpam(cfg.HideSpam),
			)
		},
		NewMonitor: func(record txrecord.Record, track bool) txinfo.Service {
			opts := []txinfo.Option{txinfo.WithHideAmount(cfg.HideAmounts)}
			if track && tracker != nil {
				opts = append(opts, txinfo.WithStatusTracker(tracker))
			}
			return txinfo.New(record, ledger, rates, metadata, router, router, opts...)
		},
		ReadRecords: func(path string) ([]txrecord.Record, error) {
			l, err := jsonl.Open(path)
			if err != nil {
				return nil, err
			}
			return l.Records(), nil
		},
	}

	logger.Debug(ctx, "starting txhistory", "ledger.path", cfg.LedgerPath, "ledger.records", len(ledger.Records()))
	return cli.Run(ctx, deps)
}
