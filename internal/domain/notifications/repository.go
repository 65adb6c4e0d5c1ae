package notifications

import "context"

type Repository interface {
	// Insert puts n at the head of the feed.
	Insert(ctx context.Context, n Notification) error

	// List returns a snapshot of the feed, most-recent-first.
	List(ctx context.Context) ([]Notification, error)

	// Update replaces the notification with n.ID.
	Update(ctx context.Context, n Notification) error

	// Delete removes by id; ErrNotFound on a miss.
	Delete(ctx context.Context, id string) error
}

// SettingsStore persists the notification settings blob.
type SettingsStore interface {
	Settings(ctx context.Context) (Settings, error)
	SetSettings(ctx context.Context, s Settings) error
}
