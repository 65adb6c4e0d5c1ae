package medications

import "context"

type Repository interface {
	// Insert puts m at the head of the request list.
	Insert(ctx context.Context, m Request) error

	// List returns a snapshot, most-recent-first.
	List(ctx context.Context) ([]Request, error)

	// Update replaces the request with m.ID.
	Update(ctx context.Context, m Request) error
}
