// Package txstream aggregates the raw records of one wallet with historical
// rates, NFT metadata, block heights and contact changes, and publishes the
// enriched list as a stream of immutable snapshots.
//
// Every mutation runs on a single goroutine owned by the service. Producers
// never touch the list directly: their notifications are turned into messages
// and applied one at a time, and a snapshot is published only after a
// mutation has fully completed.
package txstream

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/gabapcia/txhistory/internal/pkg/logger"
	"github.com/gabapcia/txhistory/internal/pkg/validator"
	"github.com/gabapcia/txhistory/internal/pkg/x/chflow"
	"github.com/gabapcia/txhistory/internal/txrecord"
)

var (
	ErrServiceAlreadyStarted = errors.New("service already started")
	ErrServiceNotStarted     = errors.New("service not started")
	ErrServiceClosed         = errors.New("service closed")
)

const (
	inboxBufferSize            = 32
	defaultRateRefetchInterval = time.Minute
)

type Service interface {
	// Start subscribes to every producer and returns the snapshot stream.
	// Calling it again with the same filter returns the same stream; a
	// different filter drops the list and resubscribes the record source.
	Start(ctx context.Context, scope Scope, filter Filter) (<-chan Snapshot, error)

	// LoadNext requests one more page from the record source. Requests made
	// while a page is still pending are ignored.
	LoadNext(ctx context.Context) error

	// FetchRateIfNeeded hints that the item is about to be shown. A rate
	// fetch is started only when the item has no currency value yet.
	FetchRateIfNeeded(ctx context.Context, uid string) error

	// Close detaches from every producer and stops the service. Any later
	// call fails with ErrServiceClosed.
	Close()
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	isClosed  bool
	closeFunc closeFunc

	scope         Scope
	filter        Filter
	generation    uint64
	cancelRecords context.CancelFunc

	runCtx     context.Context
	inbox      chan message
	snapshotCh chan Snapshot
	wg         sync.WaitGroup

	records  RecordSource
	rates    RateCache
	metadata MetadataCache
	contacts ContactIndex
	blocks   BlockFeed

	hideSpam            bool
	rateRefetchInterval time.Duration
	now                 func() time.Time
	metrics             *metrics
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context, scope Scope, filter Filter) (<-chan Snapshot, error) {
	if err := validator.Validate(scope); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isClosed {
		return nil, ErrServiceClosed
	}

	if s.isStarted {
		if !slices.Equal(scope.Sources, s.scope.Sources) {
			return nil, ErrServiceAlreadyStarted
		}

		if filter != s.filter {
			if err := s.subscribeRecords(filter); err != nil {
				return nil, err
			}
		}
		return s.snapshotCh, nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.runCtx = runCtx
	s.inbox = make(chan message, inboxBufferSize)
	s.snapshotCh = make(chan Snapshot, 1)
	s.scope = scope

	s.closeFunc = func() {
		cancel()
		s.wg.Wait()
		close(s.snapshotCh)
	}

	if err := s.subscribeProducers(runCtx); err != nil {
		s.abortStart()
		return nil, err
	}

	if err := s.subscribeRecords(filter); err != nil {
		s.abortStart()
		return nil, err
	}

	a := newActor(s)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		a.run(runCtx)
	}()

	s.isStarted = true
	return s.snapshotCh, nil
}

// subscribeProducers attaches every producer except the record source. All
// subscriptions end when ctx is canceled.
func (s *service) subscribeProducers(ctx context.Context) error {
	forward(s, ctx, s.rates.Expired(ctx), func(struct{}) message { return ratesExpired{} })
	forward(s, ctx, s.rates.Resolved(ctx), func(r txrecord.ResolvedRate) message { return rateResolved{rate: r} })
	forward(s, ctx, s.metadata.Resolved(ctx), func(m map[txrecord.NftUID]txrecord.NftMetadata) message {
		return nftResolved{metadata: m}
	})

	if s.contacts != nil {
		forward(s, ctx, s.contacts.Changed(ctx), func(struct{}) message { return contactsChanged{} })
	}

	for _, source := range s.scope.Sources {
		ch, err := s.blocks.Subscribe(ctx, source)
		if err != nil {
			return err
		}

		forward(s, ctx, ch, func(info txrecord.LastBlockInfo) message {
			return lastBlockUpdated{source: source, info: info}
		})
	}

	return nil
}

// subscribeRecords (re)subscribes the record source with filter. Emissions
// of older subscriptions are tagged with their generation and dropped by the
// actor. It must be called with s.mu held.
func (s *service) subscribeRecords(filter Filter) error {
	ctx, cancel := context.WithCancel(s.runCtx)
	ch, err := s.records.Subscribe(ctx, s.scope, filter)
	if err != nil {
		cancel()
		return err
	}

	if s.cancelRecords != nil {
		s.cancelRecords()
	}

	s.generation++
	generation := s.generation
	s.cancelRecords = cancel
	s.filter = filter

	if generation > 1 {
		if !chflow.Send(s.runCtx, s.inbox, message(resync{generation: generation})) {
			return ErrServiceClosed
		}
	}

	forward(s, ctx, ch, func(records []txrecord.Record) message {
		return recordsUpdated{generation: generation, records: records}
	})
	return nil
}

// forward turns every value of ch into a message on the inbox until ctx is
// done or ch is closed.
// abortStart releases whatever a failed Start acquired.
func (s *service) abortStart() {
	s.closeFunc()
	s.closeFunc = nil
}

func forward[T any](s *service, ctx context.Context, ch <-chan T, toMessage func(T) message) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		for {
			v, ok := chflow.Receive(ctx, ch)
			if !ok {
				return
			}

			if !chflow.Send(ctx, s.inbox, toMessage(v)) {
				return
			}
		}
	}()
}

// send enqueues msg for the actor.
func (s *service) send(msg message) error {
	s.mu.Lock()
	isStarted, isClosed, ctx, inbox := s.isStarted, s.isClosed, s.runCtx, s.inbox
	s.mu.Unlock()

	switch {
	case isClosed:
		return ErrServiceClosed
	case !isStarted:
		return ErrServiceNotStarted
	}

	if !chflow.Send(ctx, inbox, msg) {
		return ErrServiceClosed
	}
	return nil
}

func (s *service) LoadNext(ctx context.Context) error {
	return s.send(loadNext{})
}

func (s *service) FetchRateIfNeeded(ctx context.Context, uid string) error {
	return s.send(fetchRate{uid: uid})
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
	s.cancelRecords = nil
}

// publish hands a snapshot to the consumer, replacing one it has not read yet.
func (s *service) publish(ctx context.Context, snapshot Snapshot) {
	chflow.Replace(s.snapshotCh, snapshot)
	s.metrics.snapshotPublished(ctx)
}

// requestPage forwards a page request to the record source without blocking
// the actor. A failed request is reported back so another one can be made.
func (s *service) requestPage(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		if err := s.records.LoadNext(ctx); err != nil {
			logger.Warn(ctx, "failed to request next page", "error", err)
			chflow.Send(ctx, s.inbox, message(pageFailed{}))
		}
	}()
}

type config struct {
	contacts            ContactIndex
	hideSpam            bool
	rateRefetchInterval time.Duration
	now                 func() time.Time
}

type Option func(*config)

func New(records RecordSource, rates RateCache, metadata MetadataCache, blocks BlockFeed, opts ...Option) *service {
	cfg := config{
		hideSpam:            true,
		rateRefetchInterval: defaultRateRefetchInterval,
		now:                 time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		records:             records,
		rates:               rates,
		metadata:            metadata,
		blocks:              blocks,
		contacts:            cfg.contacts,
		hideSpam:            cfg.hideSpam,
		rateRefetchInterval: cfg.rateRefetchInterval,
		now:                 cfg.now,
		metrics:             newMetrics(),
	}
}

// WithContactIndex republishes the list whenever the contact index changes.
func WithContactIndex(c ContactIndex) Option {
	return func(cfg *config) {
		cfg.contacts = c
	}
}

// WithHideSpam controls whether spam records are left out of the list.
// Enabled by default.
func WithHideSpam(hide bool) Option {
	return func(cfg *config) {
		cfg.hideSpam = hide
	}
}

// WithRateRefetchInterval sets how long a rate hint suppresses further
// fetches of the same key.
func WithRateRefetchInterval(d time.Duration) Option {
	return func(cfg *config) {
		cfg.rateRefetchInterval = d
	}
}

// WithClock replaces time.Now. Meant for tests.
func WithClock(now func() time.Time) Option {
	return func(cfg *config) {
		cfg.now = now
	}
}
