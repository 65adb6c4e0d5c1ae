package timeline

import "context"

type Repository interface {
	// Insert puts r at the head of the ledger.
	Insert(ctx context.Context, r Record) error

	// List returns a snapshot of the full ledger, most-recent-first.
	List(ctx context.Context) ([]Record, error)

	// Update replaces the record with r.ID in place.
	Update(ctx context.Context, r Record) error

	// Delete removes the record by id; ErrNotFound on a miss.
	Delete(ctx context.Context, id string) error
}
