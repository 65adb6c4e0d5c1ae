package family

// UserMode selects which surface of the app the user is on.
type UserMode string

const (
	ModeFamily       UserMode = "family"
	ModeProfessional UserMode = "professional"
)

func ValidMode(m UserMode) bool {
	return m == ModeFamily || m == ModeProfessional
}

// MemberRole within the family.
type MemberRole string

const (
	RoleAdmin  MemberRole = "admin"
	RoleMember MemberRole = "member"
)

// ProfessionalType categorizes partnered businesses.
type ProfessionalType string

const (
	ProDaycare  ProfessionalType = "daycare"
	ProHospital ProfessionalType = "hospital"
	ProGrooming ProfessionalType = "grooming"
)

// Vaccine is one vaccination record on a pet profile.
type Vaccine struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	NextDate string `json:"next_date"`
}

// Pet is the family pet profile. Age and Weight stay free-text with unit
// suffixes ("3살", "5.2kg") exactly as entered.
type Pet struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Breed     string    `json:"breed"`
	Age       string    `json:"age"`
	Birth     string    `json:"birth"`
	Photo     string    `json:"photo"`
	Gender    string    `json:"gender"`
	Weight    string    `json:"weight"`
	Allergies []string  `json:"allergies"`
	Vaccines  []Vaccine `json:"vaccines"`
}

// Member is one person in the family.
type Member struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Role   MemberRole `json:"role"`
	Avatar string     `json:"avatar"`
	Status string     `json:"status"`
	Phone  string     `json:"phone"`
}

// Professional is a partnered care business.
type Professional struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Type    ProfessionalType `json:"type"`
	Avatar  string           `json:"avatar"`
	Contact string           `json:"contact"`
	Manager string           `json:"manager"`
	Address string           `json:"address"`
}

// Stats is the professional-dashboard summary block.
type Stats struct {
	TodayCheckins  int `json:"today_checkins"`
	PendingTasks   int `json:"pending_tasks"`
	CompletedToday int `json:"completed_today"`
	TotalPets      int `json:"total_pets"`
}

// Family bundles the static seed collections.
type Family struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Pets          []Pet          `json:"pets"`
	Members       []Member       `json:"members"`
	Professionals []Professional `json:"professionals"`
}
