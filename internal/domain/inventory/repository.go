package inventory

import (
	"context"
)

// BraceletRepository defines the interface for bracelet persistence.
// Implementations match ids case-insensitively throughout, and FindAll
// returns records in a deterministic storage order (insertion order for
// the in-memory and text-file backends, primary-key order for SQL).
// A missing record surfaces as shared.ErrNotFound; any backend failure
// surfaces as a storage fault.
type BraceletRepository interface {
	// FindAll returns every record in storage order
	FindAll(ctx context.Context) ([]Bracelet, error)

	// FindByID finds a record by its id
	FindByID(ctx context.Context, id string) (*Bracelet, error)

	// ExistsByID checks whether a record with the given id exists
	ExistsByID(ctx context.Context, id string) (bool, error)

	// Insert stores a new record
	Insert(ctx context.Context, bracelet *Bracelet) error

	// Update replaces the description, quantity, price and status of the
	// record with the given id
	Update(ctx context.Context, bracelet *Bracelet) error

	// Delete removes the record with the given id
	Delete(ctx context.Context, id string) error
}
