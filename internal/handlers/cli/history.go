package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/gabapcia/txhistory/internal/pkg/validator"
	"github.com/gabapcia/txhistory/internal/txrecord"
	"github.com/gabapcia/txhistory/internal/txstream"
)

var filterTypes = []txstream.FilterType{
	txstream.FilterAll,
	txstream.FilterIncoming,
	txstream.FilterOutgoing,
	txstream.FilterSwap,
	txstream.FilterApprove,
}

// parseSource reads a "blockchain:account" pair.
func parseSource(s string) (txrecord.Source, error) {
	blockchain, account, ok := strings.Cut(s, ":")
	if !ok || blockchain == "" || account == "" {
		return txrecord.Source{}, fmt.Errorf("invalid source %q, expected blockchain:account", s)
	}

	return txrecord.Source{Blockchain: txrecord.BlockchainType(blockchain), Account: account}, nil
}

// ledgerScope covers every source the ledger has records for.
func ledgerScope(ledger Ledger) txstream.Scope {
	var scope txstream.Scope
	for _, r := range ledger.Records() {
		if source := r.Common().Source; !slices.Contains(scope.Sources, source) {
			scope.Sources = append(scope.Sources, source)
		}
	}
	return scope
}

// historyCommand returns a CLI command that aggregates the ledger records
// and prints the resulting snapshots.
//
// Usage example:
//
//	txhistory history --source ethereum:0xABC... --type incoming --pages 3
func historyCommand(deps Dependencies) *cli.Command {
	return &cli.Command{
		Name:        "history",
		Description: "Aggregate wallet records with rates, NFT metadata and block heights.",
		Usage:       "Prints the transaction list. Uses every source of the ledger unless --source is given.",
		Flags: append([]cli.Flag{
			&cli.StringSliceFlag{
				Name:  "source",
				Usage: "Wallet to include as blockchain:account, repeatable",
			},
			&cli.StringFlag{
				Name:  "coin",
				Usage: "Only list transactions moving this coin uid",
			},
			&cli.StringFlag{
				Name:  "type",
				Usage: "Transaction type (all, incoming, outgoing, swap, approve)",
				Value: string(txstream.FilterAll),
			},
			&cli.IntFlag{
				Name:  "pages",
				Usage: "Number of pages to load",
				Value: 1,
			},
		}, followFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			filter := txstream.Filter{CoinUID: c.String("coin"), Type: txstream.FilterType(c.String("type"))}
			if !slices.Contains(filterTypes, filter.Type) {
				return fmt.Errorf("unknown transaction type %q", filter.Type)
			}

			pages := c.Int("pages")
			if err := validator.Var(pages, "min=1"); err != nil {
				return fmt.Errorf("pages: %w", err)
			}

			scope := ledgerScope(deps.Ledger)
			if raw := c.StringSlice("source"); len(raw) > 0 {
				scope.Sources = nil
				for _, s := range raw {
					source, err := parseSource(s)
					if err != nil {
						return err
					}
					scope.Sources = append(scope.Sources, source)
				}
			}

			aggregator := deps.NewAggregator()
			defer aggregator.Close()

			snapshots, err := aggregator.Start(ctx, scope, filter)
			if err != nil {
				return err
			}

			// A page counts once the list grows. Snapshots caused by rates,
			// blocks or contacts leave the length unchanged, and the
			// aggregator ignores LoadNext while a page is pending.
			var loadedItems, loadedPages int
			received := func(s txstream.Snapshot) error {
				if err := requestMissingRates(ctx, aggregator, s); err != nil {
					return err
				}

				if len(s.Items) <= loadedItems {
					return nil
				}

				loadedItems = len(s.Items)
				loadedPages++
				if loadedPages >= pages {
					return nil
				}
				return aggregator.LoadNext(ctx)
			}

			printSnapshot := func(s txstream.Snapshot) error {
				return printJSON(c.Root().Writer, renderSnapshot(s))
			}

			return watch(ctx, snapshots, c.Bool("follow"), c.Duration("settle"), received, printSnapshot)
		},
	}
}

// requestMissingRates hints the aggregator about every item that is about to
// be printed without a fiat value.
func requestMissingRates(ctx context.Context, aggregator txstream.Service, s txstream.Snapshot) error {
	for _, item := range s.Items {
		if item.CurrencyValue != nil {
			continue
		}

		if err := aggregator.FetchRateIfNeeded(ctx, item.UID()); err != nil {
			return err
		}
	}
	return nil
}
