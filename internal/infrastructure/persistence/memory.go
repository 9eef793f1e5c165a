package persistence

import (
	"context"
	"strings"
	"sync"

	"github.com/candicorner/inventory/internal/domain/inventory"
	"github.com/candicorner/inventory/internal/domain/shared"
)

// MemoryRepository is an insertion-ordered, in-memory implementation of
// inventory.BraceletRepository. It guards its state with a RWMutex so a
// concurrent caller (the HTTP server) stays safe, and hands out copies
// so callers can never alias stored records.
type MemoryRepository struct {
	mu    sync.RWMutex
	items []inventory.Bracelet
	index map[string]int // lowercased id -> position in items
}

// NewMemoryRepository creates an empty MemoryRepository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		index: make(map[string]int),
	}
}

// FindAll returns every record in insertion order
func (r *MemoryRepository) FindAll(ctx context.Context) ([]inventory.Bracelet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]inventory.Bracelet, len(r.items))
	copy(out, r.items)
	return out, nil
}

// FindByID finds a record by id, case-insensitively
func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*inventory.Bracelet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[strings.ToLower(id)]
	if !ok {
		return nil, shared.ErrNotFound
	}
	b := r.items[i]
	return &b, nil
}

// ExistsByID checks for a record with the given id, case-insensitively
func (r *MemoryRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.index[strings.ToLower(id)]
	return ok, nil
}

// Insert stores a new record at the end of the catalog
func (r *MemoryRepository) Insert(ctx context.Context, bracelet *inventory.Bracelet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(bracelet.ID)
	if _, ok := r.index[key]; ok {
		return shared.ErrAlreadyExists
	}
	r.items = append(r.items, *bracelet)
	r.index[key] = len(r.items) - 1
	return nil
}

// Update replaces the description, quantity, price and status of the
// stored record. The id and its position in the catalog never change.
func (r *MemoryRepository) Update(ctx context.Context, bracelet *inventory.Bracelet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[strings.ToLower(bracelet.ID)]
	if !ok {
		return shared.ErrNotFound
	}
	r.items[i].Description = bracelet.Description
	r.items[i].Quantity = bracelet.Quantity
	r.items[i].Price = bracelet.Price
	r.items[i].Status = bracelet.Status
	return nil
}

// Delete removes the record with the given id
func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(id)
	i, ok := r.index[key]
	if !ok {
		return shared.ErrNotFound
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	delete(r.index, key)
	for k, v := range r.index {
		if v > i {
			r.index[k] = v - 1
		}
	}
	return nil
}
