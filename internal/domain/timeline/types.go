package timeline

// RecordType tags a ledger entry with the kind of activity it describes.
type RecordType string

const (
	TypeMeal       RecordType = "meal"
	TypeWalk       RecordType = "walk"
	TypePlay       RecordType = "play"
	TypeHealth     RecordType = "health"
	TypeMedication RecordType = "medication"
	TypeGrooming   RecordType = "grooming"
	TypeReport     RecordType = "report"
	TypePhoto      RecordType = "photo"
)

// AuthorKind says who wrote the record.
type AuthorKind string

const (
	AuthorFamily       AuthorKind = "family"
	AuthorProfessional AuthorKind = "professional"
)

const fallbackIcon = "📝"

var typeIcons = map[RecordType]string{
	TypeMeal:       "🍚",
	TypeWalk:       "🚶",
	TypePlay:       "🎾",
	TypeHealth:     "🏥",
	TypeMedication: "💊",
	TypeGrooming:   "✂️",
	TypeReport:     "📝",
	TypePhoto:      "📷",
}

var typeLabels = map[RecordType]string{
	TypeMeal:       "식사",
	TypeWalk:       "산책",
	TypePlay:       "놀이",
	TypeHealth:     "건강",
	TypeMedication: "투약",
	TypeGrooming:   "미용",
	TypeReport:     "일지",
	TypePhoto:      "사진",
}

// IconFor returns the display glyph for a record type. Unknown types get the
// fallback glyph rather than an error.
func IconFor(t RecordType) string {
	if icon, ok := typeIcons[t]; ok {
		return icon
	}
	return fallbackIcon
}

// LabelFor returns the Korean display label for a record type.
func LabelFor(t RecordType) string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return "기록"
}
