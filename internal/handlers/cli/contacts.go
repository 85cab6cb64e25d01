package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/gabapcia/txhistory/internal/contactbook"
	"github.com/gabapcia/txhistory/internal/txrecord"
)

func contactKeyFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "blockchain",
			Usage:    "Blockchain of the address (e.g., ethereum, tron)",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "address",
			Usage:    "Address of the contact",
			Required: true,
		},
	}
}

func contactsCommand(cb contactbook.Service) *cli.Command {
	return &cli.Command{
		Name:        "contacts",
		Description: "Manage the names shown for known addresses.",
		Usage:       "Adds or removes address book entries.",
		Commands: []*cli.Command{
			addContactCommand(cb),
			removeContactCommand(cb),
		},
	}
}

// addContactCommand returns a CLI command that names an address.
//
// Usage example:
//
//	txhistory contacts add --blockchain ethereum --address 0xABC123... --name Alice
func addContactCommand(cb contactbook.Service) *cli.Command {
	return &cli.Command{
		Name:        "add",
		Description: "Name an address on a specific blockchain.",
		Usage:       "Saves a contact. Must provide blockchain, address and name.",
		Flags: append(contactKeyFlags(), &cli.StringFlag{
			Name:     "name",
			Usage:    "Name shown for the address",
			Required: true,
		}),
		Action: func(ctx context.Context, c *cli.Command) error {
			return cb.Save(ctx, contactbook.Contact{
				Blockchain: txrecord.BlockchainType(c.String("blockchain")),
				Address:    c.String("address"),
				Name:       c.String("name"),
			})
		},
	}
}

// removeContactCommand returns a CLI command that forgets an address.
//
// Usage example:
//
//	txhistory contacts remove --blockchain ethereum --address 0xABC123...
func removeContactCommand(cb contactbook.Service) *cli.Command {
	return &cli.Command{
		Name:        "remove",
		Description: "Forget the name of an address on a specific blockchain.",
		Usage:       "Deletes a contact. Must provide both blockchain and address.",
		Flags:       contactKeyFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			return cb.Delete(ctx, txrecord.BlockchainType(c.String("blockchain")), c.String("address"))
		},
	}
}
