// Package cli is the command-line surface of txhistory. Every command prints
// JSON documents, one per line, to the writer of the root command.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/gabapcia/txhistory/internal/contactbook"
	"github.com/gabapcia/txhistory/internal/txinfo"
	"github.com/gabapcia/txhistory/internal/txrecord"
	"github.com/gabapcia/txhistory/internal/txstream"
)

// Ledger is the record store commands read from.
type Ledger interface {
	// Records returns every record, newest first.
	Records() []txrecord.Record

	Find(uid string) (txrecord.Record, error)
}

// Dependencies wires the commands to the services. Aggregators and monitors
// are built per invocation since they own their subscriptions.
type Dependencies struct {
	Ledger   Ledger
	Contacts contactbook.Service

	NewAggregator func() txstream.Service
	NewMonitor    func(record txrecord.Record, track bool) txinfo.Service

	// ReadRecords decodes a record file for the classify command.
	ReadRecords func(path string) ([]txrecord.Record, error)

	ResendEnabled bool

	// Out receives the command output. It defaults to os.Stdout.
	Out io.Writer
}

// Run parses os.Args and executes the matching command:
//
//   - `history`: streams the aggregated transaction list of the ledger.
//   - `info`: follows a single transaction and prints its detail sections.
//   - `classify`: prints the detail sections of every record of a file.
//   - `contacts add|remove`: edits the address book.
func Run(ctx context.Context, deps Dependencies) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "txhistory",
		Description:           "Command-line interface for browsing wallet transaction history.",
		Usage:                 "txhistory [command] [flags]",
		Writer:                deps.Out,
		Commands: []*cli.Command{
			historyCommand(deps),
			infoCommand(deps),
			classifyCommand(deps),
			contactsCommand(deps.Contacts),
		},
	}

	if app.Writer == nil {
		app.Writer = os.Stdout
	}

	return app.Run(ctx, os.Args)
}
