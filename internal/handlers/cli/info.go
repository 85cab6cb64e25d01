package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/gabapcia/txhistory/internal/txinfo"
)

// infoCommand returns a CLI command that follows one transaction of the
// ledger and prints its detail sections.
//
// Usage example:
//
//	txhistory info --uid 0x88df...944b --raw
func infoCommand(deps Dependencies) *cli.Command {
	return &cli.Command{
		Name:        "info",
		Description: "Show the details of a single transaction, kept up to date with block heights and rates.",
		Usage:       "Prints the detail sections of a transaction. Must provide the record uid.",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:     "uid",
				Usage:    "Record uid of the transaction",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "raw",
				Usage: "Also print the signed transaction payload",
			},
			&cli.BoolFlag{
				Name:  "track",
				Usage: "Poll the swap status service for the transaction",
			},
		}, followFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			uid := c.String("uid")

			record, err := deps.Ledger.Find(uid)
			if err != nil {
				return err
			}

			monitor := deps.NewMonitor(record, c.Bool("track"))
			defer monitor.Close()

			items, err := monitor.Start(ctx)
			if err != nil {
				return err
			}

			if c.Bool("raw") {
				raw, err := monitor.RawTransaction(ctx)
				if err != nil {
					return err
				}

				if err := printJSON(c.Root().Writer, rawTransactionJSON{UID: uid, Raw: raw}); err != nil {
					return err
				}
			}

			printSections := func(txinfo.Item) error {
				sections, err := monitor.Sections(deps.ResendEnabled, deps.Contacts)
				if err != nil {
					return err
				}
				return printJSON(c.Root().Writer, renderSections(uid, sections))
			}

			noop := func(txinfo.Item) error { return nil }
			return watch(ctx, items, c.Bool("follow"), c.Duration("settle"), noop, printSections)
		},
	}
}
