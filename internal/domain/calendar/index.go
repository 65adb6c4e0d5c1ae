// Package calendar holds the derived date→records index. It is a pure
// function of the timeline ledger: rebuilt from scratch after every ledger
// mutation, never updated incrementally, never authoritative on its own.
package calendar

import (
	"sort"
	"sync"

	"barabom/internal/domain/timeline"
)

type Index struct {
	mu     sync.RWMutex
	byDate map[string][]timeline.Record
}

func NewIndex() *Index {
	return &Index{byDate: make(map[string][]timeline.Record)}
}

// Rebuild replaces the whole index from the given ledger snapshot.
// Records without a date are skipped.
func (ix *Index) Rebuild(records []timeline.Record) {
	next := make(map[string][]timeline.Record)
	for _, r := range records {
		if r.Date == "" {
			continue
		}
		next[r.Date] = append(next[r.Date], r)
	}

	ix.mu.Lock()
	ix.byDate = next
	ix.mu.Unlock()
}

// EventsByDate returns the records of one calendar day, empty list when the
// day has none.
func (ix *Index) EventsByDate(date string) []timeline.Record {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	bucket := ix.byDate[date]
	out := make([]timeline.Record, len(bucket))
	copy(out, bucket)
	return out
}

// Dates returns every day that has at least one record, sorted ascending.
func (ix *Index) Dates() []string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	out := make([]string, 0, len(ix.byDate))
	for d := range ix.byDate {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
