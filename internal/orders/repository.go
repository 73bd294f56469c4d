// Package orders owns the persisted collection of orders and mediates every
// read and write to the record store. The whole collection is the unit of
// persistence: each mutation rewrites the entire blob.
package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"buyurtma/internal/blob"
	"buyurtma/internal/core"
)

// StorageKey is the single key the collection lives under, kept compatible
// with the original mobile app's blob.
const StorageKey = "@orders"

var ErrNotFound = errors.New("order not found")

// Repository holds the in-memory collection and persists it through an
// injected blob store. The mutex covers mutation plus persistence, so two
// saves can never interleave and the stored blob always reflects the newest
// in-memory state. On a failed save the mutation stays applied in memory —
// memory is the source of truth and Flush retries the write.
type Repository struct {
	mu     sync.Mutex
	store  blob.Store
	key    string
	orders []core.Order
}

func New(store blob.Store) *Repository {
	return NewWithKey(store, StorageKey)
}

func NewWithKey(store blob.Store, key string) *Repository {
	return &Repository{store: store, key: key}
}

// Load reads the persisted collection into memory. A missing blob, a store
// failure, and malformed JSON all yield an empty collection; the error is
// returned for reporting, but callers always receive a usable slice.
func (r *Repository) Load(ctx context.Context) ([]core.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, ok, err := r.store.Get(ctx, r.key)
	if err != nil {
		r.orders = nil
		return []core.Order{}, fmt.Errorf("load orders: %w", err)
	}
	if !ok || raw == "" {
		r.orders = nil
		return []core.Order{}, nil
	}

	var loaded []core.Order
	if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
		slog.WarnContext(ctx, "Stored orders blob is malformed, starting empty",
			"key", r.key, "error", err)
		r.orders = nil
		return []core.Order{}, fmt.Errorf("decode orders: %w", err)
	}

	r.orders = loaded
	return r.snapshot(), nil
}

// List returns a copy of the current in-memory collection.
func (r *Repository) List() []core.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

// Count returns the number of orders currently held.
func (r *Repository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders)
}

// Add appends a draft order, assigning a fresh id only when the draft has
// none, then persists the full collection. The draft's slices are copied, so
// the caller's value stays untouched whatever happens.
func (r *Repository) Add(ctx context.Context, draft core.Order) (core.Order, error) {
	if len(draft.Items) == 0 {
		return core.Order{}, core.ErrNoItems
	}

	o := draft.Clone()
	if o.ID == "" {
		o.ID = NewID()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, o)
	if err := r.persist(ctx); err != nil {
		return o, err
	}
	return o, nil
}

// Update replaces the order with the same id in place, preserving collection
// order. Matching is by id only; every other field may change but the id
// never does.
func (r *Repository) Update(ctx context.Context, o core.Order) (core.Order, error) {
	if o.ID == "" {
		return core.Order{}, core.ErrMissingID
	}
	if len(o.Items) == 0 {
		return core.Order{}, core.ErrNoItems
	}

	dup := o.Clone()
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == dup.ID {
			r.orders[i] = dup
			if err := r.persist(ctx); err != nil {
				return dup, err
			}
			return dup, nil
		}
	}
	return core.Order{}, ErrNotFound
}

// Remove deletes the order with the given id, leaving the survivors in their
// original order.
func (r *Repository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return r.persist(ctx)
		}
	}
	return ErrNotFound
}

// Clear removes the persisted blob and empties the in-memory collection.
// Not part of the everyday flow, but resets need it.
func (r *Repository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.store.Remove(ctx, r.key); err != nil {
		return fmt.Errorf("clear orders: %w", err)
	}
	r.orders = nil
	return nil
}

// Flush re-persists the in-memory collection. This is the retry path after a
// failed save: the failed mutation is still applied in memory, so flushing
// writes exactly the state the user already sees.
func (r *Repository) Flush(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.persist(ctx)
}

func (r *Repository) persist(ctx context.Context) error {
	collection := r.orders
	if collection == nil {
		collection = []core.Order{}
	}
	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}
	if err := r.store.Set(ctx, r.key, string(data)); err != nil {
		return fmt.Errorf("save orders: %w", err)
	}
	return nil
}

func (r *Repository) snapshot() []core.Order {
	out := make([]core.Order, len(r.orders))
	for i, o := range r.orders {
		out[i] = o.Clone()
	}
	return out
}
