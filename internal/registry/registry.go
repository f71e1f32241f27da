// Package registry implements the symbol → order book mapping (spec §4.4),
// generalized from the teacher's internal/engine.Engine (a bare
// map[AssetType]OrderBook with no synchronization) into a reader-writer
// protected registry that can be looked up concurrently with creation.
package registry

import (
	"errors"
	"sync"

	"github.com/saiputravu/portman/internal/engine"
	"github.com/saiputravu/portman/internal/moneta"
)

// ErrAlreadyExists is returned by Create when symbol already has a book.
var ErrAlreadyExists = errors.New("registry: order book already exists")

// ErrNotFound is returned by Lookup when symbol has no book.
var ErrNotFound = errors.New("registry: order book not found")

// Registry maps a Symbol to its order book. Once inserted, a book's identity
// is stable for the process lifetime — there is no delete in the core
// protocol (spec §3, §9: registry growth is unbounded by design).
type Registry struct {
	mu    sync.RWMutex
	books map[string]*engine.OrderBook
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{books: make(map[string]*engine.OrderBook)}
}

// Create inserts a fresh book for symbol at the given precision. The
// duplicate-key check and the insert happen under the same write guard, so
// two concurrent Create calls for the same symbol cannot both succeed.
func (r *Registry) Create(symbol string, precision moneta.Precision) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.books[symbol]; exists {
		return ErrAlreadyExists
	}
	r.books[symbol] = engine.New(symbol, precision)
	return nil
}

// Lookup returns the book for symbol. The read guard is held only long
// enough to clone out the shared pointer — matching and its locking happen
// entirely outside the registry's guard (spec §5: "holding the registry
// guard across matching is forbidden").
func (r *Registry) Lookup(symbol string) (*engine.OrderBook, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ob, ok := r.books[symbol]
	if !ok {
		return nil, ErrNotFound
	}
	return ob, nil
}
