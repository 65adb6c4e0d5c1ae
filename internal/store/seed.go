package store

import (
	"time"

	"barabom/internal/domain/medications"
	"barabom/internal/domain/notifications"
	"barabom/internal/domain/timeline"
	"barabom/internal/platform/dates"
)

// Seed data for a fresh install. Dates are relative to startup so the demo
// timeline and calendar never look stale.

func SeedTimeline(now time.Time) []timeline.Record {
	today := dates.Key(now)
	yesterday := dates.Key(now.AddDate(0, 0, -1))

	return []timeline.Record{
		{
			ID:         "seed-tl-1",
			Type:       timeline.TypeMeal,
			Author:     "김엄마",
			AuthorKind: timeline.AuthorFamily,
			Content:    "아침 사료 완밥!",
			Icon:       "🍚",
			Photos:     []string{},
			Date:       today,
			Time:       "08:30",
		},
		{
			ID:         "seed-tl-2",
			Type:       timeline.TypeReport,
			Author:     "개린이집 반포점",
			AuthorKind: timeline.AuthorProfessional,
			Content:    "오늘 사회성 교육 시간에 친구들과 잘 놀았어요! 리더십이 보이네요 🐕",
			Icon:       "📝",
			Photos:     []string{"https://images.unsplash.com/photo-1548199973-03cce0bbc87b?w=400"},
			Date:       today,
			Time:       "14:15",
		},
		{
			ID:         "seed-tl-3",
			Type:       timeline.TypeWalk,
			Author:     "김아빠",
			AuthorKind: timeline.AuthorFamily,
			Content:    "한강공원 산책 30분",
			Icon:       "🚶",
			Photos:     []string{},
			Date:       yesterday,
			Time:       "19:00",
		},
		{
			ID:         "seed-tl-4",
			Type:       timeline.TypePlay,
			Author:     "김딸",
			AuthorKind: timeline.AuthorFamily,
			Content:    "집에서 공놀이 했어요!",
			Icon:       "🎾",
			Photos:     []string{"https://images.unsplash.com/photo-1587300003388-59208cc962cb?w=400"},
			Date:       yesterday,
			Time:       "17:30",
		},
	}
}

func SeedMedications(now time.Time) []medications.Request {
	today := dates.Key(now)
	yesterday := dates.Key(now.AddDate(0, 0, -1))

	return []medications.Request{
		{
			ID:              "seed-med-1",
			PetName:         "초코",
			PetPhoto:        "https://images.unsplash.com/photo-1583511655857-d19b40a7a54e?w=400",
			Time:            "13:00",
			Timing:          "점심 뒤",
			Dosage:          "1알",
			MedicationName:  "알러지약 (세티리진)",
			MedicationPhoto: "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?w=400",
			Instructions:    "가루약은 츄르에 섞어주세요. 물을 충분히 제공해주세요.",
			SpecialNotes:    "냉장 보관 필수",
			Status:          medications.StatusPending,
			RequestedBy:     "김엄마",
			RequestedAt:     "09:00",
			AssignedTo:      "개린이집 반포점",
			Date:            today,
			Priority:        medications.PriorityHigh,
		},
		{
			ID:              "seed-med-2",
			PetName:         "초코",
			PetPhoto:        "https://images.unsplash.com/photo-1583511655857-d19b40a7a54e?w=400",
			Time:            "10:00",
			Timing:          "아침 식사 후",
			Dosage:          "2.5ml",
			MedicationName:  "영양제 (멀티비타민)",
			MedicationPhoto: "https://images.unsplash.com/photo-1471864190281-a93a3070b6de?w=400",
			Instructions:    "흔들어서 급여",
			Status:          medications.StatusCompleted,
			RequestedBy:     "김아빠",
			RequestedAt:     "08:00",
			CompletedAt:     "10:05",
			CompletedBy:     "김선생님",
			CompletionPhoto: "https://images.unsplash.com/photo-1548199973-03cce0bbc87b?w=400",
			AssignedTo:      "개린이집 반포점",
			Date:            yesterday,
			Priority:        medications.PriorityNormal,
		},
	}
}

func SeedNotifications(now time.Time) []notifications.Notification {
	at := func(daysAgo int, hhmm string) time.Time {
		day := now.AddDate(0, 0, -daysAgo)
		min, _ := dates.MinutesOfDay(hhmm)
		return time.Date(day.Year(), day.Month(), day.Day(), min/60, min%60, 0, 0, day.Location())
	}

	return []notifications.Notification{
		{
			ID:        "seed-ntf-1",
			Message:   "초코가 점심 약을 먹을 시간이에요! 💊",
			Type:      notifications.TypeMedication,
			Time:      "12:50",
			Timestamp: at(0, "12:50"),
			Read:      false,
		},
		{
			ID:        "seed-ntf-2",
			Message:   "김엄마님이 새 기록을 추가했습니다",
			Type:      notifications.TypeInfo,
			Time:      "11:30",
			Timestamp: at(0, "11:30"),
			Read:      false,
		},
		{
			ID:        "seed-ntf-3",
			Message:   "개린이집에서 새 일지를 작성했습니다",
			Type:      notifications.TypeReport,
			Time:      "14:15",
			Timestamp: at(1, "14:15"),
			Read:      true,
		},
	}
}
