package chat

import "context"

type Repository interface {
	// Append adds m at the tail; chat renders oldest-first.
	Append(ctx context.Context, m Message) error

	// List returns a snapshot, oldest-first.
	List(ctx context.Context) ([]Message, error)

	// Update replaces the message with m.ID.
	Update(ctx context.Context, m Message) error
}
