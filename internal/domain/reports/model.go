package reports

// Status grades one comparison axis for the UI.
type Status struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// Comparison holds one metric measured against the peer average.
type Comparison struct {
	Value      float64 `json:"value"`
	Average    float64 `json:"average"`
	Difference float64 `json:"difference"`
	Percentile int     `json:"percentile"`
	Status     Status  `json:"status"`
	Insight    string  `json:"insight"`
}

// Health is the synthetic overall health block.
type Health struct {
	VaccineStatus string `json:"vaccine_status"`
	LastCheckup   string `json:"last_checkup"`
	Score         int    `json:"score"`
}

// Recommendation is one suggested product or action.
type Recommendation struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Report compares the pet against same-breed peers.
type Report struct {
	PetName         string           `json:"pet_name"`
	Breed           string           `json:"breed"`
	Age             string           `json:"age"`
	TotalPeers      int              `json:"total_peers"`
	Weight          Comparison       `json:"weight"`
	Activity        Comparison       `json:"activity"`
	Health          Health           `json:"health"`
	Recommendations []Recommendation `json:"recommendations"`
}

// breedAverage is the synthetic per-breed baseline.
type breedAverage struct {
	weight       float64
	walkPerMonth float64
	playTime     float64
}

var breedAverages = map[string]breedAverage{
	"푸들":    {weight: 4.8, walkPerMonth: 15, playTime: 45},
	"닥스훈트":  {weight: 7.5, walkPerMonth: 12, playTime: 40},
	"시츄":    {weight: 6.0, walkPerMonth: 10, playTime: 35},
	"말티즈":   {weight: 3.5, walkPerMonth: 18, playTime: 50},
	"포메라니안": {weight: 3.0, walkPerMonth: 20, playTime: 55},
}

// defaultBreed is the fallback baseline for breeds outside the table.
const defaultBreed = "푸들"
