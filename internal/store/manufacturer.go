package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/manufacturer-store/internal/domain"
)

// ManufacturerStore defines the interface for manufacturer persistence.
// Deletion is logical: deleted manufacturers stay in storage but are invisible
// to every read and update.
//
// All methods report failures as *StoreError.
type ManufacturerStore interface {
	// Create saves a new manufacturer. The storage-assigned ID is written into
	// the given manufacturer, which is also returned.
	// Name and country are not validated here.
	Create(ctx context.Context, m *domain.Manufacturer) (*domain.Manufacturer, error)

	// Get retrieves a non-deleted manufacturer by ID.
	// The boolean is false, with a nil error, when no such manufacturer exists.
	Get(ctx context.Context, id int64) (*domain.Manufacturer, bool, error)

	// GetAll retrieves every non-deleted manufacturer in storage order.
	// Returns an empty slice when there are none.
	GetAll(ctx context.Context) ([]*domain.Manufacturer, error)

	// Update replaces the name and country of the non-deleted manufacturer with
	// m.ID and returns m. It never creates or resurrects a row: if the ID is
	// unknown or deleted the returned StoreError wraps ErrManufacturerNotFound.
	Update(ctx context.Context, m *domain.Manufacturer) (*domain.Manufacturer, error)

	// Delete marks the manufacturer as deleted and reports whether a row was
	// affected. A missing ID is not an error.
	Delete(ctx context.Context, id int64) (bool, error)

	// WithTx returns a ManufacturerStore that runs its statements in tx.
	// The transaction is owned by the caller.
	WithTx(tx *sql.Tx) ManufacturerStore
}
