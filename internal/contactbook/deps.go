package contactbook

import (
	"context"

	"github.com/gabapcia/txhistory/internal/txrecord"
)

// Contact is a named address on one chain.
type Contact struct {
	Blockchain txrecord.BlockchainType `json:"blockchain" validate:"required"`
	Address    string                  `json:"address" validate:"required"`
	Name       string                  `json:"name" validate:"required"`
}

// Storage persists contacts and announces changes made by any process.
type Storage interface {
	Contacts(ctx context.Context) ([]Contact, error)
	SaveContact(ctx context.Context, contact Contact) error
	DeleteContact(ctx context.Context, blockchain txrecord.BlockchainType, address string) error

	// ContactChanges streams a value after every save or delete. The channel
	// is closed when ctx is done.
	ContactChanges(ctx context.Context) (<-chan struct{}, error)
}
