package timeline

// Record is one ledger entry. The ledger is ordered most-recent-first; new
// records are always inserted at the head.
//
// MedicationID links a record created by the medication workflow back to its
// originating request, so the completion rewrite can find it without
// guessing by content.
type Record struct {
	ID           string     `json:"id"`
	Type         RecordType `json:"type"`
	Author       string     `json:"author"`
	AuthorKind   AuthorKind `json:"author_kind"`
	Content      string     `json:"content"`
	Icon         string     `json:"icon"`
	Photos       []string   `json:"photos"`
	Date         string     `json:"date"` // YYYY-MM-DD
	Time         string     `json:"time"` // HH:MM display string
	MedicationID string     `json:"medication_id,omitempty"`
}

func cloneRecord(r Record) Record {
	out := r
	out.Photos = make([]string, len(r.Photos))
	copy(out.Photos, r.Photos)
	return out
}

func cloneRecords(rs []Record) []Record {
	out := make([]Record, 0, len(rs))
	for _, r := range rs {
		out = append(out, cloneRecord(r))
	}
	return out
}
