// Package nftmeta is the read-through cache of NFT display metadata.
package nftmeta

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/gabapcia/txhistory/internal/pkg/logger"
	"github.com/gabapcia/txhistory/internal/pkg/resilience/retry"
	"github.com/gabapcia/txhistory/internal/pkg/types"
	"github.com/gabapcia/txhistory/internal/pkg/x/broadcast"
	"github.com/gabapcia/txhistory/internal/txrecord"
)

const defaultFetchConcurrency = 4

type Service interface {
	// Cached returns the stored metadata of ids. Missing ids are absent from
	// the result.
	Cached(ctx context.Context, ids []txrecord.NftUID) map[txrecord.NftUID]txrecord.NftMetadata

	// Fetch resolves ids in the background. Ids already being fetched are
	// skipped.
	Fetch(ctx context.Context, ids []txrecord.NftUID)

	// Resolved delivers every batch of metadata fetched in the background.
	Resolved(ctx context.Context) <-chan map[txrecord.NftUID]txrecord.NftMetadata

	Close()
}

type service struct {
	mu       sync.Mutex
	isClosed bool
	inFlight types.Set[txrecord.NftUID]

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	storage     Storage
	provider    Provider
	retry       retry.Retry
	concurrency int

	resolved *broadcast.Hub[map[txrecord.NftUID]txrecord.NftMetadata]
}

var _ Service = (*service)(nil)

func (s *service) Cached(ctx context.Context, ids []txrecord.NftUID) map[txrecord.NftUID]txrecord.NftMetadata {
	if len(ids) == 0 {
		return map[txrecord.NftUID]txrecord.NftMetadata{}
	}

	metadata, err := s.storage.LoadNftMetadata(ctx, ids)
	if err != nil {
		logger.Warn(ctx, "failed to load stored nft metadata", "nft.count", len(ids), "error", err)
		return map[txrecord.NftUID]txrecord.NftMetadata{}
	}
	return metadata
}

func (s *service) Fetch(ctx context.Context, ids []txrecord.NftUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isClosed {
		return
	}

	missing := make([]txrecord.NftUID, 0, len(ids))
	for _, id := range ids {
		if s.inFlight.Contains(id) {
			continue
		}

		s.inFlight.Add(id)
		missing = append(missing, id)
	}

	if len(missing) == 0 {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.release(missing)

		s.fetch(ctx, missing)
	}()
}

func (s *service) release(ids []txrecord.NftUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inFlight.Delete(ids...)
}

// fetch resolves ids concurrently, stores what was found and announces it as
// a single batch. logCtx only carries the caller's log fields.
func (s *service) fetch(logCtx context.Context, ids []txrecord.NftUID) {
	var (
		mu       sync.Mutex
		g        errgroup.Group
		resolved = make(map[txrecord.NftUID]txrecord.NftMetadata, len(ids))
	)

	g.SetLimit(s.concurrency)
	for _, id := range ids {
		g.Go(func() error {
			var meta txrecord.NftMetadata
			err := s.retry.Execute(s.ctx, func() error {
				var err error
				meta, err = s.provider.NftMetadata(s.ctx, id)
				if errors.Is(err, ErrMetadataNotFound) {
					return retry.Unrecoverable(err)
				}
				return err
			})

			switch {
			case errors.Is(err, ErrMetadataNotFound):
				return nil
			case err != nil:
				logger.Warn(logCtx, "failed to fetch nft metadata", "nft.uid", id.String(), "error", err)
				return nil
			}

			mu.Lock()
			resolved[id] = meta
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if len(resolved) == 0 {
		return
	}

	if err := s.storage.SaveNftMetadata(s.ctx, resolved); err != nil {
		logger.Warn(logCtx, "failed to store nft metadata", "nft.count", len(resolved), "error", err)
	}

	s.resolved.Publish(s.ctx, resolved)
}

func (s *service) Resolved(ctx context.Context) <-chan map[txrecord.NftUID]txrecord.NftMetadata {
	return s.resolved.Subscribe(ctx)
}

func (s *service) Close() {
	s.mu.Lock()
	if s.isClosed {
		s.mu.Unlock()
		return
	}
	s.isClosed = true
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
}

type config struct {
	retry       retry.Retry
	concurrency int
}

type Option func(*config)

func New(storage Storage, provider Provider, opts ...Option) *service {
	cfg := config{
		retry:       retry.New(),
		concurrency: defaultFetchConcurrency,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &service{
		inFlight:    types.NewSet[txrecord.NftUID](),
		ctx:         ctx,
		cancel:      cancel,
		storage:     storage,
		provider:    provider,
		retry:       cfg.retry,
		concurrency: cfg.concurrency,
		resolved:    broadcast.New[map[txrecord.NftUID]txrecord.NftMetadata](0),
	}
}

func WithRetry(r retry.Retry) Option {
	return func(cfg *config) {
		cfg.retry = r
	}
}

// WithFetchConcurrency limits how many tokens are resolved at the same time.
func WithFetchConcurrency(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.concurrency = n
		}
	}
}
