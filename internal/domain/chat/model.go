package chat

import "time"

// Kind of a chat message author.
type Kind string

const (
	KindFamily       Kind = "family"
	KindAI           Kind = "ai"
	KindProfessional Kind = "professional"
)

// Message is one family-chat entry. Chat lives in its own storage namespace,
// separate from the activity timeline.
type Message struct {
	ID              string    `json:"id"`
	Kind            Kind      `json:"kind"`
	Author          string    `json:"author"`
	Avatar          string    `json:"avatar"`
	Content         string    `json:"content"`
	Timestamp       time.Time `json:"timestamp"`
	Read            bool      `json:"read"`
	RelatedActivity string    `json:"related_activity,omitempty"`
}
