package calendar

import (
	"reflect"
	"testing"

	"barabom/internal/domain/timeline"
)

func rec(id, date string) timeline.Record {
	return timeline.Record{ID: id, Type: timeline.TypeWalk, Date: date}
}

func TestRebuild_GroupsByDate(t *testing.T) {
	ix := NewIndex()
	ix.Rebuild([]timeline.Record{
		rec("a", "2026-01-22"),
		rec("b", "2026-01-21"),
		rec("c", "2026-01-22"),
		rec("skip", ""),
	})

	got := ix.EventsByDate("2026-01-22")
	if len(got) != 2 {
		t.Fatalf("expected 2 records on 01-22, got %d", len(got))
	}
	if len(ix.EventsByDate("2026-01-21")) != 1 {
		t.Fatal("expected 1 record on 01-21")
	}
	if len(ix.EventsByDate("2026-01-20")) != 0 {
		t.Fatal("expected empty day to return empty slice")
	}

	dates := ix.Dates()
	if !reflect.DeepEqual(dates, []string{"2026-01-21", "2026-01-22"}) {
		t.Fatalf("expected sorted dates, got %v", dates)
	}
}

// The index never drifts: rebuilding from the same ledger twice gives the
// same answer, and a rebuild fully replaces the previous state.
func TestRebuild_ReplacesPreviousState(t *testing.T) {
	ix := NewIndex()
	ix.Rebuild([]timeline.Record{rec("a", "2026-01-22")})
	ix.Rebuild([]timeline.Record{rec("b", "2026-01-23")})

	if len(ix.EventsByDate("2026-01-22")) != 0 {
		t.Fatal("stale date survived a rebuild")
	}
	if len(ix.EventsByDate("2026-01-23")) != 1 {
		t.Fatal("new date missing after rebuild")
	}

	ix.Rebuild(nil)
	if len(ix.Dates()) != 0 {
		t.Fatal("empty ledger must empty the index")
	}
}

func TestEventsByDate_ReturnsCopy(t *testing.T) {
	ix := NewIndex()
	ix.Rebuild([]timeline.Record{rec("a", "2026-01-22")})

	got := ix.EventsByDate("2026-01-22")
	got[0].ID = "mutated"

	if ix.EventsByDate("2026-01-22")[0].ID != "a" {
		t.Fatal("caller mutation leaked into the index")
	}
}
