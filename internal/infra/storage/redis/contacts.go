package redis

import (
	"context"
	"fmt"
	"strings"

	"github.com/gabapcia/txhistory/internal/contactbook"
	"github.com/gabapcia/txhistory/internal/txrecord"
)

// contactsKey is the hash holding every contact. Fields are
// "<blockchain>:<address>" and values are contact names.
func (c *client) contactsKey() string {
	return fmt.Sprintf("%s:contacts", c.keyPrefix)
}

// contactsChannel is the pub/sub channel announcing contact changes.
func (c *client) contactsChannel() string {
	return fmt.Sprintf("%s:contacts:changed", c.keyPrefix)
}

func contactField(blockchain txrecord.BlockchainType, address string) string {
	return fmt.Sprintf("%s:%s", blockchain, address)
}

func (c *client) Contacts(ctx context.Context) ([]contactbook.Contact, error) {
	fields, err := c.conn.HGetAll(ctx, c.contactsKey()).Result()
	if err != nil {
		return nil, err
	}

	contacts := make([]contactbook.Contact, 0, len(fields))
	for field, name := range fields {
		blockchain, address, ok := strings.Cut(field, ":")
		if !ok {
			continue
		}

		contacts = append(contacts, contactbook.Contact{
			Blockchain: txrecord.BlockchainType(blockchain),
			Address:    address,
			Name:       name,
		})
	}

	return contacts, nil
}

func (c *client) SaveContact(ctx context.Context, contact contactbook.Contact) error {
	if err := c.conn.HSet(ctx, c.contactsKey(), contactField(contact.Blockchain, contact.Address), contact.Name).Err(); err != nil {
		return err
	}

	return c.conn.Publish(ctx, c.contactsChannel(), contactField(contact.Blockchain, contact.Address)).Err()
}

func (c *client) DeleteContact(ctx context.Context, blockchain txrecord.BlockchainType, address string) error {
	if err := c.conn.HDel(ctx, c.contactsKey(), contactField(blockchain, address)).Err(); err != nil {
		return err
	}

	return c.conn.Publish(ctx, c.contactsChannel(), contactField(blockchain, address)).Err()
}

// ContactChanges subscribes to the change channel. The subscription is
// confirmed before returning so that no change published afterwards is lost.
func (c *client) ContactChanges(ctx context.Context) (<-chan struct{}, error) {
	pubsub := c.conn.Subscribe(ctx, c.contactsChannel())
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, err
	}

	changes := make(chan struct{}, 1)
	go func() {
		defer close(changes)
		defer pubsub.Close()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-messages:
				if !ok {
					return
				}

				select {
				case changes <- struct{}{}:
				default:
				}
			}
		}
	}()

	return changes, nil
}

var _ contactbook.Storage = (*client)(nil)
