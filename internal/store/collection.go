// Package store holds the per-session entity collections. Every collection
// is fetched wholesale from the backend and re-fetched after each write;
// nothing is patched in place.
package store

import (
	"context"
	"slices"
	"sync"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// RefreshFunc is called after a store replaced its collection.
type RefreshFunc func(storeName string)

// Status is a point-in-time view of a store's bookkeeping fields.
type Status struct {
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// collection is the state shared by all stores: an ordered snapshot, an
// in-flight counter and the last error message.
//
// Fetches are numbered in the order they are issued. Only the newest issued
// fetch may replace items, so a slow response can never overwrite a newer one.
type collection[T any] struct {
	name      string
	mu        sync.RWMutex
	items     []T
	inFlight  int
	errMsg    string
	issued    uint64
	clone     func(T) T
	onRefresh RefreshFunc
}

func newCollection[T any](name string, clone func(T) T, onRefresh RefreshFunc) *collection[T] {
	return &collection[T]{name: name, clone: clone, onRefresh: onRefresh}
}

func (c *collection[T]) logger() *zerolog.Logger {
	l := log.With().Str("store", c.name).Logger()
	return &l
}

// snapshot returns a copy of the current items.
func (c *collection[T]) snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	for i, item := range c.items {
		if c.clone != nil {
			item = c.clone(item)
		}
		out[i] = item
	}
	return out
}

func (c *collection[T]) find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := slices.IndexFunc(c.items, match); i >= 0 {
		item := c.items[i]
		if c.clone != nil {
			item = c.clone(item)
		}
		return item, true
	}
	var zero T
	return zero, false
}

func (c *collection[T]) status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Status{Loading: c.inFlight > 0, Error: c.errMsg}
}

// begin marks an operation in flight and clears the previous error.
func (c *collection[T]) begin() {
	c.mu.Lock()
	c.inFlight++
	c.errMsg = ""
	c.mu.Unlock()
}

func (c *collection[T]) end() {
	c.mu.Lock()
	c.inFlight--
	c.mu.Unlock()
}

func (c *collection[T]) fail(msg string) {
	c.mu.Lock()
	c.errMsg = msg
	c.mu.Unlock()
}

// fetch replaces the collection with list's result. Failures are recorded
// and logged but not returned; the previous snapshot stays in place. A
// result or failure from any fetch but the newest issued one is dropped.
func (c *collection[T]) fetch(ctx context.Context, list func(context.Context) ([]T, error), failMsg string) {
	c.mu.Lock()
	c.issued++
	seq := c.issued
	c.inFlight++
	c.errMsg = ""
	c.mu.Unlock()
	defer c.end()

	items, err := list(ctx)

	c.mu.Lock()
	if latest := c.issued; seq != latest {
		c.mu.Unlock()
		c.logger().Debug().Err(err).Uint64("seq", seq).Uint64("latest", latest).Msg("Dropped stale fetch result")
		return
	}
	if err != nil {
		c.errMsg = domain.ErrorMessage(err, failMsg)
		c.mu.Unlock()
		c.logger().Error().Err(err).Msg(failMsg)
		return
	}
	if items == nil {
		items = []T{}
	}
	c.items = items
	c.mu.Unlock()

	if c.onRefresh != nil {
		c.onRefresh(c.name)
	}
}

// write runs call and, when it succeeds, refetch. A failing call records the
// message and returns the error; the collection is left untouched.
func (c *collection[T]) write(ctx context.Context, op, failMsg string, call func(context.Context) error, refetch func(context.Context)) error {
	c.begin()
	defer c.end()

	if err := call(ctx); err != nil {
		c.fail(domain.ErrorMessage(err, failMsg))
		c.logger().Warn().Err(err).Str("op", op).Msg(failMsg)
		return err
	}

	refetch(ctx)
	return nil
}
