// Package keylock provides per-key mutual exclusion with context-bounded
// acquisition. Mutating use cases lock the entities they touch by id so two
// concurrent operations on the same batch, driver or delivery serialize while
// operations on disjoint entities proceed in parallel.
package keylock

import (
	"context"
	"sync"
	"time"

	"dispatch/internal/pkg/errs"
)

// Manager hands out mutexes keyed by entity id. Lock acquisition is bounded by
// the configured timeout; a caller that cannot acquire in time receives a
// ContentionError instead of blocking indefinitely.
type Manager struct {
	timeout time.Duration

	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	ch   chan struct{}
	refs int
}

// NewManager creates a lock manager. Acquisitions that do not succeed within
// timeout fail with a ContentionError.
func NewManager(timeout time.Duration) *Manager {
	return &Manager{
		timeout: timeout,
		locks:   make(map[string]*lockEntry),
	}
}

// Acquire takes the lock for key, waiting at most the manager's timeout or
// until ctx is done. On success it returns a release function that must be
// called exactly once, typically via defer.
//
// Keys are acquired in a caller-defined global order (driver before batch
// before delivery) so compound operations cannot deadlock.
func (m *Manager) Acquire(ctx context.Context, key string) (func(), error) {
	m.mu.Lock()
	entry, ok := m.locks[key]
	if !ok {
		entry = &lockEntry{ch: make(chan struct{}, 1)}
		m.locks[key] = entry
	}
	entry.refs++
	m.mu.Unlock()

	timer := time.NewTimer(m.timeout)
	defer timer.Stop()

	select {
	case entry.ch <- struct{}{}:
		return func() { m.release(key, entry) }, nil
	case <-timer.C:
		m.unref(key, entry)
		return nil, errs.NewContentionError(key)
	case <-ctx.Done():
		m.unref(key, entry)
		return nil, errs.NewContentionErrorWithCause(key, ctx.Err())
	}
}

func (m *Manager) release(key string, entry *lockEntry) {
	<-entry.ch
	m.unref(key, entry)
}

// unref drops one reference and deletes the map entry once nobody holds or
// waits on it, so the map does not grow with every entity ever touched.
func (m *Manager) unref(key string, entry *lockEntry) {
	m.mu.Lock()
	entry.refs--
	if entry.refs == 0 {
		delete(m.locks, key)
	}
	m.mu.Unlock()
}
