// Package jsonl serves wallet records stored as JSON lines, one encoded
// txrecord per line. It stands in for the chain sync adapters when replaying
// exported ledgers.
package jsonl

import (
	"bufio"
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"github.com/gabapcia/txhistory/internal/pkg/x/chflow"
	"github.com/gabapcia/txhistory/internal/txinfo"
	"github.com/gabapcia/txhistory/internal/txrecord"
	"github.com/gabapcia/txhistory/internal/txstream"
)

const defaultPageSize = 20

// maxLineSize bounds a single encoded record.
const maxLineSize = 1 << 20

// ErrRecordNotFound is returned by Find for unknown uids.
var ErrRecordNotFound = errors.New("record not found")

type subscription struct {
	mu      sync.Mutex
	closed  bool
	records []txrecord.Record
	loaded  int
	out     chan []txrecord.Record
}

// emit sends the loaded page window. It reports false once every record was
// sent before.
func (s *subscription) emit(pageSize int, next bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	if next {
		if s.loaded >= len(s.records) {
			return false
		}
		s.loaded = min(s.loaded+pageSize, len(s.records))
	}

	chflow.Replace(s.out, slices.Clone(s.records[:s.loaded]))
	return true
}

func (s *subscription) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	close(s.out)
}

type ledger struct {
	records  []txrecord.Record
	pageSize int

	mu   sync.Mutex
	subs map[*subscription]struct{}
}

var (
	_ txstream.RecordSource = (*ledger)(nil)
	_ txinfo.RecordSource   = (*ledger)(nil)
)

type config struct {
	pageSize int
}

type Option func(*config)

// WithPageSize sets how many records every page holds.
func WithPageSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// Open reads every record of the file at path.
func Open(path string, opts ...Option) (*ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f, opts...)
}

// Read decodes every record of r. Blank lines are skipped; any other line
// that does not decode fails the whole read.
func Read(r io.Reader, opts ...Option) (*ledger, error) {
	cfg := config{pageSize: defaultPageSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	var records []txrecord.Record

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		data := scanner.Bytes()
		if len(bytes.TrimSpace(data)) == 0 {
			continue
		}

		record, err := txrecord.Unmarshal(data)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}

	slices.SortStableFunc(records, newestFirst)

	return &ledger{
		records:  records,
		pageSize: cfg.pageSize,
		subs:     make(map[*subscription]struct{}),
	}, nil
}

// newestFirst orders records by timestamp, then by position in the block,
// both descending.
func newestFirst(a, b txrecord.Record) int {
	ab, bb := a.Common(), b.Common()
	if c := cmp.Compare(bb.Timestamp, ab.Timestamp); c != 0 {
		return c
	}
	return cmp.Compare(bb.TransactionIndex, ab.TransactionIndex)
}

// Records returns every record of the ledger, newest first.
func (l *ledger) Records() []txrecord.Record {
	return slices.Clone(l.records)
}

// Find returns the record with the given uid.
func (l *ledger) Find(uid string) (txrecord.Record, error) {
	for _, r := range l.records {
		if r.Common().UID == uid {
			return r, nil
		}
	}
	return nil, ErrRecordNotFound
}

// Subscribe emits the first page of the records of scope matching filter
// right away. Every LoadNext emits the list grown by one more page.
func (l *ledger) Subscribe(ctx context.Context, scope txstream.Scope, filter txstream.Filter) (<-chan []txrecord.Record, error) {
	sources := make(map[txrecord.Source]struct{}, len(scope.Sources))
	for _, s := range scope.Sources {
		sources[s] = struct{}{}
	}

	var records []txrecord.Record
	for _, r := range l.records {
		if _, ok := sources[r.Common().Source]; !ok {
			continue
		}
		if filter.Matches(r) {
			records = append(records, r)
		}
	}

	sub := &subscription{
		records: records,
		loaded:  min(l.pageSize, len(records)),
		out:     make(chan []txrecord.Record, 1),
	}
	sub.emit(l.pageSize, false)

	l.mu.Lock()
	l.subs[sub] = struct{}{}
	l.mu.Unlock()

	go func() {
		<-ctx.Done()

		l.mu.Lock()
		delete(l.subs, sub)
		l.mu.Unlock()

		sub.close()
	}()

	return sub.out, nil
}

// LoadNext grows every open subscription by one page. Subscriptions that
// already hold all their records emit nothing.
func (l *ledger) LoadNext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for sub := range l.subs {
		sub.emit(l.pageSize, true)
	}
	return nil
}
