// Package txinfo follows a single transaction for its detail view. It merges
// the latest emission of the record with historical rates for every coin it
// moves, NFT metadata, block heights and, when a tracker is configured, an
// external order or bridge status.
package txinfo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/gabapcia/txhistory/internal/pkg/logger"
	"github.com/gabapcia/txhistory/internal/pkg/types"
	"github.com/gabapcia/txhistory/internal/pkg/x/chflow"
	"github.com/gabapcia/txhistory/internal/txrecord"
	"github.com/gabapcia/txhistory/internal/txstream"
	"github.com/gabapcia/txhistory/internal/txview"
)

var (
	ErrServiceAlreadyStarted = errors.New("service already started")
	ErrServiceNotStarted     = errors.New("service not started")
	ErrServiceClosed         = errors.New("service closed")
	ErrNoRawTransaction      = errors.New("raw transaction not available")
)

const (
	inboxBufferSize      = 8
	rateFetchConcurrency = 4
	tracerName           = "github.com/gabapcia/txhistory/internal/txinfo"
)

type Service interface {
	// Start publishes the initial item and then a new one after every
	// update. The channel is closed by Close.
	Start(ctx context.Context) (<-chan Item, error)

	// Item returns the latest published item.
	Item() (Item, error)

	// Sections classifies the latest published item.
	Sections(resendEnabled bool, contacts txview.ContactBook) ([]txview.Section, error)

	// RawTransaction asks the chain adapter for the signed payload. It is
	// never cached.
	RawTransaction(ctx context.Context) (string, error)

	Close()
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	isClosed  bool
	closeFunc closeFunc

	inbox  chan message
	itemCh chan Item
	latest atomic.Pointer[Item]
	wg     sync.WaitGroup

	record   txrecord.Record
	records  RecordSource
	rates    RateProvider
	metadata MetadataCache
	blocks   BlockFeed
	raw      RawTransactionSource
	tracker  StatusTracker

	hideAmount bool
	tracer     trace.Tracer
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) (<-chan Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isClosed {
		return nil, ErrServiceClosed
	}

	if s.isStarted {
		return nil, ErrServiceAlreadyStarted
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.inbox = make(chan message, inboxBufferSize)
	s.itemCh = make(chan Item, 1)

	s.closeFunc = func() {
		cancel()
		s.wg.Wait()
		close(s.itemCh)
	}

	source := s.record.Common().Source
	recordsCh, err := s.records.Subscribe(runCtx, txstream.Scope{Sources: []txrecord.Source{source}}, txstream.Filter{})
	if err != nil {
		s.abortStart()
		return nil, fmt.Errorf("subscribe to records: %w", err)
	}

	blocksCh, err := s.blocks.Subscribe(runCtx, source)
	if err != nil {
		s.abortStart()
		return nil, fmt.Errorf("subscribe to blocks: %w", err)
	}

	forward(s, runCtx, recordsCh, func(records []txrecord.Record) message { return recordsUpdated{records: records} })
	forward(s, runCtx, blocksCh, func(info txrecord.LastBlockInfo) message { return lastBlockUpdated{info: info} })
	forward(s, runCtx, s.metadata.Resolved(runCtx), func(m map[txrecord.NftUID]txrecord.NftMetadata) message {
		return nftResolved{metadata: m}
	})

	a := newActor(s, s.initialItem(runCtx))
	a.publish()

	s.fetchMissingMetadata(runCtx, a.item)
	s.fetchRates(runCtx, s.record)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		a.run(runCtx)
	}()

	s.isStarted = true
	return s.itemCh, nil
}

func (s *service) initialItem(ctx context.Context) Item {
	b := s.record.Common()

	item := Item{
		Record:        s.record,
		LastBlockInfo: s.blocks.LastBlockInfo(b.Source),
		Explorer:      txview.ExplorerFor(b.Source.Blockchain, b.TransactionHash),
		Rates:         map[string]txrecord.CurrencyValue{},
		HideAmount:    s.hideAmount,
	}

	if s.tracker != nil {
		if u, ok := s.tracker.URL(s.record); ok {
			item.StatusURL = &u
		}
	}

	if ids := txrecord.NftUIDs(s.record); len(ids) > 0 {
		item.NftMetadata = s.metadata.Cached(ctx, ids.ToSlice())
	}

	return item
}

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

func (s *service) fetchMissingMetadata(ctx context.Context, item Item) {
	ids := txrecord.NftUIDs(item.Record)
	if missing := types.Difference(ids, item.NftMetadata); len(missing) > 0 {
		s.metadata.Fetch(ctx, missing.ToSlice())
	}
}

// fetchRates resolves the rate of every coin the record needs, at the time of
// the transaction. Failed and zero rates are left out.
func (s *service) fetchRates(ctx context.Context, record txrecord.Record) {
	coinUIDs := txrecord.RateCoinUIDs(record)
	if len(coinUIDs) == 0 {
		return
	}

	timestamp := record.Common().Timestamp

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		var (
			mu    sync.Mutex
			g     errgroup.Group
			rates = make(map[string]txrecord.CurrencyValue, len(coinUIDs))
		)

		g.SetLimit(rateFetchConcurrency)
		for _, coinUID := range coinUIDs {
			g.Go(func() error {
				rate, err := s.rates.HistoricalRate(ctx, txrecord.RateKey{CoinUID: coinUID, Timestamp: timestamp})
				if err != nil {
					logger.Warn(ctx, "failed to fetch historical rate", "rate.coin_uid", coinUID, "rate.timestamp", timestamp, "error", err)
					return nil
				}

				if rate.Value.IsZero() {
					return nil
				}

				mu.Lock()
				rates[coinUID] = rate
				mu.Unlock()
				return nil
			})
		}
		_ = g.Wait()

		chflow.Send(ctx, s.inbox, message(ratesFetched{rates: rates}))
	}()
}

// pollStatus asks the tracker for the external status of record. The result
// is always delivered to the actor, with a nil status when the poll failed.
func (s *service) pollStatus(ctx context.Context, record txrecord.Record) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		b := record.Common()
		ctx, span := s.tracer.Start(ctx, "txinfo.PollStatus", trace.WithAttributes(
			attribute.String("record.uid", b.UID),
			attribute.String("record.blockchain", string(b.Source.Blockchain)),
		))
		defer span.End()

		status, err := s.tracker.Status(ctx, record)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			logger.Warn(ctx, "failed to poll external status", "record.uid", b.UID, "error", err)
		}

		var polled *txrecord.Status
		if err == nil && status != nil {
			span.SetAttributes(attribute.String("status.kind", string(status.Kind)))
			v := *status
			polled = &v
		}
		chflow.Send(ctx, s.inbox, message(statusPolled{status: polled}))
	}()
}

func (s *service) publish(item Item) {
	s.latest.Store(&item)
	chflow.Replace(s.itemCh, item)
}

func (s *service) Item() (Item, error) {
	s.mu.Lock()
	isClosed := s.isClosed
	s.mu.Unlock()

	if isClosed {
		return Item{}, ErrServiceClosed
	}

	item := s.latest.Load()
	if item == nil {
		return Item{}, ErrServiceNotStarted
	}
	return *item, nil
}

func (s *service) Sections(resendEnabled bool, contacts txview.ContactBook) ([]txview.Section, error) {
	item, err := s.Item()
	if err != nil {
		return nil, err
	}

	return txview.Classify(item.Record, item.ViewContext(resendEnabled, contacts)), nil
}

func (s *service) RawTransaction(ctx context.Context) (string, error) {
	s.mu.Lock()
	isClosed := s.isClosed
	s.mu.Unlock()

	if isClosed {
		return "", ErrServiceClosed
	}

	record := s.record
	if item := s.latest.Load(); item != nil {
		record = item.Record
	}

	b := record.Common()
	raw, ok, err := s.raw.RawTransaction(ctx, b.Source, b.TransactionHash)
	if err != nil {
		return "", fmt.Errorf("fetch raw transaction: %w", err)
	}

	if !ok {
		return "", ErrNoRawTransaction
	}
	return raw, nil
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

type config struct {
	tracker    StatusTracker
	hideAmount bool
}

type Option func(*config)

// New builds a monitor for record.
func New(
	record txrecord.Record,
	records RecordSource,
	rates RateProvider,
	metadata MetadataCache,
	blocks BlockFeed,
	raw RawTransactionSource,
	opts ...Option,
) *service {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		record:     record,
		records:    records,
		rates:      rates,
		metadata:   metadata,
		blocks:     blocks,
		raw:        raw,
		tracker:    cfg.tracker,
		hideAmount: cfg.hideAmount,
		tracer:     otel.Tracer(tracerName),
	}
}

// WithStatusTracker polls t at start and on every new block.
func WithStatusTracker(t StatusTracker) Option {
	return func(cfg *config) {
		cfg.tracker = t
	}
}

// WithHideAmount marks the item so that amounts are masked when rendered.
func WithHideAmount(hide bool) Option {
	return func(cfg *config) {
		cfg.hideAmount = hide
	}
}
