package store

import (
	"context"

	"barabom/internal/domain/chat"
	"barabom/internal/domain/medications"
	"barabom/internal/domain/notifications"
	"barabom/internal/domain/timeline"
)

// Store-backed repository adapters. Each one mutates the in-memory
// collection and writes the whole collection through to its key.

// TimelineRepo implements timeline.Repository.
type TimelineRepo struct{ S *Store }

func (r TimelineRepo) Insert(ctx context.Context, rec timeline.Record) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	r.S.timeline = append([]timeline.Record{rec}, r.S.timeline...)
	return r.S.save(ctx, keyTimeline, r.S.timeline)
}

func (r TimelineRepo) List(ctx context.Context) ([]timeline.Record, error) {
	r.S.mu.RLock()
	defer r.S.mu.RUnlock()
	out := make([]timeline.Record, len(r.S.timeline))
	copy(out, r.S.timeline)
	return out, nil
}

func (r TimelineRepo) Update(ctx context.Context, rec timeline.Record) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	for i := range r.S.timeline {
		if r.S.timeline[i].ID == rec.ID {
			r.S.timeline[i] = rec
			return r.S.save(ctx, keyTimeline, r.S.timeline)
		}
	}
	return timeline.ErrNotFound
}

func (r TimelineRepo) Delete(ctx context.Context, id string) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	for i := range r.S.timeline {
		if r.S.timeline[i].ID == id {
			r.S.timeline = append(r.S.timeline[:i], r.S.timeline[i+1:]...)
			return r.S.save(ctx, keyTimeline, r.S.timeline)
		}
	}
	return timeline.ErrNotFound
}

// MedicationRepo implements medications.Repository.
type MedicationRepo struct{ S *Store }

func (r MedicationRepo) Insert(ctx context.Context, m medications.Request) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	r.S.medications = append([]medications.Request{m}, r.S.medications...)
	return r.S.save(ctx, keyMedications, r.S.medications)
}

func (r MedicationRepo) List(ctx context.Context) ([]medications.Request, error) {
	r.S.mu.RLock()
	defer r.S.mu.RUnlock()
	out := make([]medications.Request, len(r.S.medications))
	copy(out, r.S.medications)
	return out, nil
}

func (r MedicationRepo) Update(ctx context.Context, m medications.Request) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	for i := range r.S.medications {
		if r.S.medications[i].ID == m.ID {
			r.S.medications[i] = m
			return r.S.save(ctx, keyMedications, r.S.medications)
		}
	}
	return medications.ErrNotFound
}

// NotificationRepo implements notifications.Repository.
type NotificationRepo struct{ S *Store }

func (r NotificationRepo) Insert(ctx context.Context, n notifications.Notification) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	r.S.notifications = append([]notifications.Notification{n}, r.S.notifications...)
	return r.S.save(ctx, keyNotifications, r.S.notifications)
}

func (r NotificationRepo) List(ctx context.Context) ([]notifications.Notification, error) {
	r.S.mu.RLock()
	defer r.S.mu.RUnlock()
	out := make([]notifications.Notification, len(r.S.notifications))
	copy(out, r.S.notifications)
	return out, nil
}

func (r NotificationRepo) Update(ctx context.Context, n notifications.Notification) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	for i := range r.S.notifications {
		if r.S.notifications[i].ID == n.ID {
			r.S.notifications[i] = n
			return r.S.save(ctx, keyNotifications, r.S.notifications)
		}
	}
	return notifications.ErrNotFound
}

func (r NotificationRepo) Delete(ctx context.Context, id string) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	for i := range r.S.notifications {
		if r.S.notifications[i].ID == id {
			r.S.notifications = append(r.S.notifications[:i], r.S.notifications[i+1:]...)
			return r.S.save(ctx, keyNotifications, r.S.notifications)
		}
	}
	return notifications.ErrNotFound
}

// ChatRepo implements chat.Repository.
type ChatRepo struct{ S *Store }

func (r ChatRepo) Append(ctx context.Context, m chat.Message) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	r.S.chat = append(r.S.chat, m)
	return r.S.save(ctx, keyChat, r.S.chat)
}

func (r ChatRepo) List(ctx context.Context) ([]chat.Message, error) {
	r.S.mu.RLock()
	defer r.S.mu.RUnlock()
	out := make([]chat.Message, len(r.S.chat))
	copy(out, r.S.chat)
	return out, nil
}

func (r ChatRepo) Update(ctx context.Context, m chat.Message) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	for i := range r.S.chat {
		if r.S.chat[i].ID == m.ID {
			r.S.chat[i] = m
			return r.S.save(ctx, keyChat, r.S.chat)
		}
	}
	return chat.ErrNotFound
}
