package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/gabapcia/txhistory/internal/txrecord"
	"github.com/gabapcia/txhistory/internal/txview"
)

// classifyCommand returns a CLI command that prints the detail sections of
// every record of a file. Nothing is fetched: rates, metadata and block
// heights are left unresolved.
//
// Usage example:
//
//	txhistory classify --file ledger.jsonl
func classifyCommand(deps Dependencies) *cli.Command {
	return &cli.Command{
		Name:        "classify",
		Description: "Print the detail sections of every record of a JSON lines file.",
		Usage:       "Classifies records offline. Must provide the file path.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Usage:    "Path of the JSON lines record file",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			records, err := deps.ReadRecords(c.String("file"))
			if err != nil {
				return err
			}

			for _, record := range records {
				if err := ctx.Err(); err != nil {
					return err
				}

				if err := printJSON(c.Root().Writer, classify(record, deps)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func classify(record txrecord.Record, deps Dependencies) sectionsJSON {
	b := record.Common()

	vc := txview.Context{
		Explorer:      txview.ExplorerFor(b.Source.Blockchain, b.TransactionHash),
		ResendEnabled: deps.ResendEnabled,
	}
	if deps.Contacts != nil {
		vc.Contacts = deps.Contacts
	}

	return renderSections(b.UID, txview.Classify(record, vc))
}
