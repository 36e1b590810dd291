package cache

import (
	"context"
	"sync"
	"sync/atomic"
)

// completionSeq orders settled entries process-wide. Dependencies settle
// before their dependents, so descending order is a safe teardown order.
var completionSeq atomic.Uint64

// Entry is a finished or in-flight construction. It settles at most once.
type Entry struct {
	done   chan struct{}
	settle sync.Once
	value  any
	err    error
	seq    uint64
}

func newEntry() *Entry {
	return &Entry{done: make(chan struct{})}
}

func (e *Entry) Fulfill(v any) {
	e.settle.Do(func() {
		e.value = v
		e.seq = completionSeq.Add(1)
		close(e.done)
	})
}

func (e *Entry) Reject(err error) {
	e.settle.Do(func() {
		e.err = err
		e.seq = completionSeq.Add(1)
		close(e.done)
	})
}

// Await blocks until the entry settles. Cancellation abandons the wait
// only; the construction itself keeps running.
func (e *Entry) Await(ctx context.Context) (any, error) {
	select {
	case <-e.done:
		return e.value, e.err
	default:
	}

	select {
	case <-e.done:
		return e.value, e.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (e *Entry) Settled() bool {
	select {
	case <-e.done:
		return true
	default:
		return false
	}
}

// Value and Err are meaningful only after Settled reports true.
func (e *Entry) Value() any {
	return e.value
}

func (e *Entry) Err() error {
	return e.err
}

func (e *Entry) Seq() uint64 {
	return e.seq
}

type Item[K comparable] struct {
	Key   K
	Entry *Entry
}

// Store maps keys to entries. Begin is the single atomic
// check-then-install sequence required for single-flight construction.
type Store[K comparable] struct {
	mu      sync.Mutex
	entries map[K]*Entry
}

func NewStore[K comparable]() *Store[K] {
	return &Store[K]{
		entries: make(map[K]*Entry),
	}
}

// Begin returns the existing entry for key, or installs a fresh pending
// entry and reports the caller as its owner.
func (s *Store[K]) Begin(key K) (*Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		return e, false
	}

	e := newEntry()
	s.entries[key] = e
	return e, true
}

func (s *Store[K]) Get(key K) (*Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	return e, ok
}

// Evict removes key only while it still maps to e, so a stale failure
// handler cannot clobber an entry installed by a later resolution.
func (s *Store[K]) Evict(key K, e *Entry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cur, ok := s.entries[key]; !ok || cur != e {
		return false
	}
	delete(s.entries, key)
	return true
}

func (s *Store[K]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

func (s *Store[K]) Items() []Item[K] {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Item[K], 0, len(s.entries))
	for k, e := range s.entries {
		items = append(items, Item[K]{Key: k, Entry: e})
	}
	return items
}

// Reset clears the store and returns what it held. In-flight owners keep
// settling their evicted entries; waiters that already hold one still
// observe its outcome.
func (s *Store[K]) Reset() []Item[K] {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Item[K], 0, len(s.entries))
	for k, e := range s.entries {
		items = append(items, Item[K]{Key: k, Entry: e})
	}
	s.entries = make(map[K]*Entry)
	return items
}
