package reports

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"barabom/internal/domain/family"
	"barabom/internal/domain/timeline"
	"barabom/internal/platform/dates"
	"barabom/internal/platform/logger"
)

var ErrNoPet = family.ErrNoPet

// Pets resolves the pet under comparison.
type Pets interface {
	DefaultPet(ctx context.Context) (family.Pet, error)
}

// Ledger supplies the activity records the report counts.
type Ledger interface {
	List(ctx context.Context) ([]timeline.Record, error)
}

// Service builds peer comparison reports. The peer cohort is synthetic: a
// fixed per-breed baseline plus a randomized cohort size and health score,
// so two reports for the same pet differ slightly.
type Service struct {
	pets   Pets
	ledger Ledger
	log    logger.Logger
	now    func() time.Time
	randn  func(n int) int
}

func NewService(pets Pets, ledger Ledger, log logger.Logger) *Service {
	return &Service{
		pets:   pets,
		ledger: ledger,
		log:    log,
		now:    time.Now,
		randn:  rand.Intn,
	}
}

// Percentile places value on a logistic curve around the peer mean,
// clamped to [1, 99] so nobody is ever shown 0% or 100%.
func Percentile(value, mean, stdDev float64) int {
	z := (value - mean) / stdDev
	p := int(math.Round((1 - 1/(1+math.Exp(1.7*z))) * 100))
	if p < 1 {
		return 1
	}
	if p > 99 {
		return 99
	}
	return p
}

// Generate builds a fresh report for the default pet.
func (s *Service) Generate(ctx context.Context) (Report, error) {
	pet, err := s.pets.DefaultPet(ctx)
	if err != nil {
		return Report{}, err
	}

	avg, ok := breedAverages[pet.Breed]
	if !ok {
		avg = breedAverages[defaultBreed]
	}

	weight := parseWeight(pet.Weight)
	walks, _ := s.recentActivity(ctx)

	weightPct := Percentile(weight, avg.weight, 0.8)
	activityPct := Percentile(float64(walks), avg.walkPerMonth, 5)

	r := Report{
		PetName:    pet.Name,
		Breed:      pet.Breed,
		Age:        pet.Age,
		TotalPeers: 1000 + s.randn(500),
		Weight: Comparison{
			Value:      weight,
			Average:    avg.weight,
			Difference: weight - avg.weight,
			Percentile: weightPct,
			Status:     weightStatus(weight, avg.weight),
		},
		Activity: Comparison{
			Value:      float64(walks),
			Average:    avg.walkPerMonth,
			Difference: float64(walks) - avg.walkPerMonth,
			Percentile: activityPct,
			Status:     activityStatus(activityPct),
		},
		Health: Health{
			VaccineStatus: "up-to-date",
			LastCheckup:   "2주 전",
			Score:         85 + s.randn(10),
		},
	}
	r.Weight.Insight = weightInsight(pet.Name, r.Weight.Difference)
	r.Activity.Insight = activityInsight(pet.Name, activityPct)
	r.Recommendations = recommendations(r.Weight.Difference, activityPct)

	return r, nil
}

// recentActivity counts walk and play records over the last 30 days.
func (s *Service) recentActivity(ctx context.Context) (walks, plays int) {
	records, err := s.ledger.List(ctx)
	if err != nil {
		s.log.Warn("reports: listing records failed", map[string]any{"err": err.Error()})
		return 0, 0
	}

	cutoff := s.now().AddDate(0, 0, -30)
	for _, rec := range records {
		day, err := dates.ParseKey(rec.Date)
		if err != nil || day.Before(cutoff) {
			continue
		}
		switch rec.Type {
		case timeline.TypeWalk:
			walks++
		case timeline.TypePlay:
			plays++
		}
	}
	return walks, plays
}

// parseWeight reads the leading number out of a free-text weight such as
// "5.2kg"; unparseable values fall back to 5.2.
func parseWeight(s string) float64 {
	t := strings.TrimSpace(s)
	end := 0
	for end < len(t) && (t[end] == '.' || (t[end] >= '0' && t[end] <= '9')) {
		end++
	}
	w, err := strconv.ParseFloat(t[:end], 64)
	if err != nil || w <= 0 {
		return 5.2
	}
	return w
}

func weightStatus(current, average float64) Status {
	pct := (current - average) / average * 100
	switch {
	case pct > 15:
		return Status{Label: "과체중 주의", Color: "warning", Icon: "⚠️"}
	case pct > 5:
		return Status{Label: "평균보다 약간 높음", Color: "caution", Icon: "📊"}
	case pct < -15:
		return Status{Label: "저체중 주의", Color: "warning", Icon: "⚠️"}
	case pct < -5:
		return Status{Label: "평균보다 약간 낮음", Color: "caution", Icon: "📊"}
	default:
		return Status{Label: "정상 범위", Color: "good", Icon: "✅"}
	}
}

func activityStatus(percentile int) Status {
	switch {
	case percentile >= 80:
		return Status{Label: "매우 활발", Color: "excellent", Icon: "🌟"}
	case percentile >= 60:
		return Status{Label: "활발", Color: "good", Icon: "👍"}
	case percentile >= 40:
		return Status{Label: "보통", Color: "normal", Icon: "😊"}
	case percentile >= 20:
		return Status{Label: "부족", Color: "caution", Icon: "💤"}
	default:
		return Status{Label: "매우 부족", Color: "warning", Icon: "⚠️"}
	}
}

func weightInsight(name string, diff float64) string {
	switch {
	case diff > 1:
		return fmt.Sprintf("%s는 또래보다 %.1fkg 더 나가요. 관절 건강을 위해 체중 관리가 필요할 수 있어요. 수의사와 상담을 권장합니다.", name, diff)
	case diff > 0.3:
		return fmt.Sprintf("%s는 또래보다 조금 더 나가지만 정상 범위예요. 현재 체중을 유지하는 것이 좋겠어요.", name)
	case diff < -1:
		return fmt.Sprintf("%s는 또래보다 %.1fkg 덜 나가요. 영양 상태를 확인해보는 것이 좋겠어요.", name, -diff)
	default:
		return fmt.Sprintf("%s는 또래와 비슷한 체중을 유지하고 있어요. 건강한 상태입니다!", name)
	}
}

func activityInsight(name string, percentile int) string {
	switch {
	case percentile >= 80:
		return fmt.Sprintf("%s는 또래보다 훨씬 활발해요! 상위 %d%%에 속합니다. 충분한 운동으로 건강을 잘 유지하고 있어요.", name, 100-percentile)
	case percentile >= 60:
		return fmt.Sprintf("%s는 또래보다 활발한 편이에요. 이대로 꾸준히 운동시켜주세요!", name)
	case percentile >= 40:
		return fmt.Sprintf("%s는 평균적인 활동량을 보이고 있어요. 조금 더 산책을 늘리면 더 좋겠어요.", name)
	default:
		return fmt.Sprintf("%s는 또래보다 활동량이 부족해요. 하루 30분씩 산책을 늘려보는 것은 어떨까요?", name)
	}
}

func recommendations(weightDiff float64, activityPct int) []Recommendation {
	recs := make([]Recommendation, 0, 4)
	if weightDiff > 0.5 {
		recs = append(recs, Recommendation{Icon: "🥗", Title: "다이어트 사료", Description: "관절 건강을 위한 체중 관리용 사료"})
	}
	if activityPct < 50 {
		recs = append(recs, Recommendation{Icon: "🎾", Title: "실내 놀이 장난감", Description: "집에서도 충분한 활동량 보장"})
	}
	if weightDiff > 0.3 {
		recs = append(recs, Recommendation{Icon: "💊", Title: "관절 영양제", Description: "관절 건강을 위한 글루코사민 함유"})
	}
	recs = append(recs, Recommendation{Icon: "🏥", Title: "정기 건강검진", Description: "6개월마다 정기 검진 권장"})
	return recs
}
