package medications

// Status of a medication request. Cancelled is defined for forward
// compatibility; no operation reaches it today.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Priority of a request.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

// Request is one medication request. PetName and PetPhoto are denormalized
// snapshots taken at creation time: a later pet-profile edit must not
// rewrite past requests.
type Request struct {
	ID              string   `json:"id"`
	PetName         string   `json:"pet_name"`
	PetPhoto        string   `json:"pet_photo"`
	Time            string   `json:"time"`   // scheduled HH:MM
	Timing          string   `json:"timing"` // human label, e.g. "점심 뒤"
	Dosage          string   `json:"dosage"`
	MedicationName  string   `json:"medication_name"`
	MedicationPhoto string   `json:"medication_photo"`
	Instructions    string   `json:"instructions"`
	SpecialNotes    string   `json:"special_notes"`
	Status          Status   `json:"status"`
	RequestedBy     string   `json:"requested_by"`
	RequestedAt     string   `json:"requested_at"` // HH:MM display string
	AssignedTo      string   `json:"assigned_to"`
	Date            string   `json:"date"` // YYYY-MM-DD
	Priority        Priority `json:"priority"`

	CompletedAt     string `json:"completed_at,omitempty"`
	CompletedBy     string `json:"completed_by,omitempty"`
	CompletionPhoto string `json:"completion_photo,omitempty"`
	CompletionNote  string `json:"completion_note,omitempty"`
}
