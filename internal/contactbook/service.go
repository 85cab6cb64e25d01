// Package contactbook keeps the user's named addresses in memory, reloading
// them whenever the storage announces a change.
package contactbook

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gabapcia/txhistory/internal/pkg/logger"
	"github.com/gabapcia/txhistory/internal/pkg/validator"
	"github.com/gabapcia/txhistory/internal/pkg/x/broadcast"
	"github.com/gabapcia/txhistory/internal/pkg/x/chflow"
	"github.com/gabapcia/txhistory/internal/txrecord"
	"github.com/gabapcia/txhistory/internal/txstream"
	"github.com/gabapcia/txhistory/internal/txview"
)

var (
	ErrServiceAlreadyStarted = errors.New("service already started")
	ErrServiceClosed         = errors.New("service closed")
)

type Service interface {
	// Start loads every contact and follows storage changes until Close.
	Start(ctx context.Context) error

	ContactName(blockchain txrecord.BlockchainType, address string) (string, bool)

	// Changed fires after the in-memory book was reloaded.
	Changed(ctx context.Context) <-chan struct{}

	Save(ctx context.Context, contact Contact) error
	Delete(ctx context.Context, blockchain txrecord.BlockchainType, address string) error

	Close()
}

type contactKey struct {
	blockchain txrecord.BlockchainType
	address    string
}

func keyOf(blockchain txrecord.BlockchainType, address string) contactKey {
	return contactKey{blockchain: blockchain, address: txview.DisplayAddress(blockchain, address)}
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	isClosed  bool
	closeFunc closeFunc

	namesMu sync.RWMutex
	names   map[contactKey]string

	storage Storage
	changed *broadcast.Hub[struct{}]
}

var (
	_ Service               = (*service)(nil)
	_ txview.ContactBook    = (*service)(nil)
	_ txstream.ContactIndex = (*service)(nil)
)

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isClosed {
		return ErrServiceClosed
	}

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	if err := s.reload(ctx); err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	changes, err := s.storage.ContactChanges(runCtx)
	if err != nil {
		cancel()
		return fmt.Errorf("subscribe to contact changes: %w", err)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()

		for {
			if _, ok := chflow.Receive(runCtx, changes); !ok {
				return
			}

			if err := s.reload(runCtx); err != nil {
				logger.Warn(runCtx, "failed to reload contacts", "error", err)
				continue
			}

			s.changed.Publish(runCtx, struct{}{})
		}
	}()

	s.closeFunc = func() {
		cancel()
		wg.Wait()
	}

	s.isStarted = true
	return nil
}

func (s *service) reload(ctx context.Context) error {
	contacts, err := s.storage.Contacts(ctx)
	if err != nil {
		return fmt.Errorf("load contacts: %w", err)
	}

	names := make(map[contactKey]string, len(contacts))
	for _, c := range contacts {
		names[keyOf(c.Blockchain, c.Address)] = c.Name
	}

	s.namesMu.Lock()
	s.names = names
	s.namesMu.Unlock()
	return nil
}

func (s *service) ContactName(blockchain txrecord.BlockchainType, address string) (string, bool) {
	s.namesMu.RLock()
	defer s.namesMu.RUnlock()

	name, ok := s.names[keyOf(blockchain, address)]
	return name, ok
}

func (s *service) Changed(ctx context.Context) <-chan struct{} {
	return s.changed.Subscribe(ctx)
}

func (s *service) Save(ctx context.Context, contact Contact) error {
	if err := validator.Validate(contact); err != nil {
		return err
	}

	contact.Address = txview.DisplayAddress(contact.Blockchain, contact.Address)
	return s.storage.SaveContact(ctx, contact)
}

func (s *service) Delete(ctx context.Context, blockchain txrecord.BlockchainType, address string) error {
	return s.storage.DeleteContact(ctx, blockchain, txview.DisplayAddress(blockchain, address))
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.isStarted = false
	s.isClosed = true
	s.closeFunc = nil
}

func New(storage Storage) *service {
	return &service{
		names:   make(map[contactKey]string),
		storage: storage,
		changed: broadcast.New[struct{}](1),
	}
}
