package chat

import (
	"time"

	"github.com/google/uuid"
)

// Seed is the demo conversation shown on first run. Timestamps are relative
// to now so the thread always looks recent.
func Seed(now time.Time, petName string) []Message {
	if petName == "" {
		petName = "초코"
	}

	return []Message{
		{
			ID:        uuid.NewString(),
			Kind:      KindFamily,
			Author:    "김엄마",
			Avatar:    "👩",
			Content:   "오늘 아침 사료 잘 먹었어요!",
			Timestamp: now.Add(-2 * time.Hour),
			Read:      true,
		},
		{
			ID:              uuid.NewString(),
			Kind:            KindAI,
			Author:          petName,
			Avatar:          "🐶",
			Content:         "엄마~ 완밥했개! 맛있었어! 다음엔 간식도 주면 안될까? 🤤",
			Timestamp:       now.Add(-117 * time.Minute),
			Read:            true,
			RelatedActivity: "meal",
		},
		{
			ID:        uuid.NewString(),
			Kind:      KindFamily,
			Author:    "김아빠",
			Avatar:    "👨",
			Content:   "저녁에 한강공원 산책 갈게요",
			Timestamp: now.Add(-90 * time.Minute),
			Read:      true,
		},
		{
			ID:              uuid.NewString(),
			Kind:            KindAI,
			Author:          petName,
			Avatar:          "🐶",
			Content:         "아빠! 산책이라고!? 꼬리가 저절로 흔들려~ 빨리 갈까? 킁킁 🐕",
			Timestamp:       now.Add(-88 * time.Minute),
			Read:            true,
			RelatedActivity: "walk",
		},
		{
			ID:        uuid.NewString(),
			Kind:      KindProfessional,
			Author:    "개린이집 반포점",
			Avatar:    "🏫",
			Content:   "오늘 사회성 교육 시간에 친구들과 잘 놀았어요! 리더십이 보이네요 🎉",
			Timestamp: now.Add(-time.Hour),
			Read:      true,
		},
		{
			ID:              uuid.NewString(),
			Kind:            KindAI,
			Author:          petName,
			Avatar:          "🐶",
			Content:         "친구들이랑 뛰놀다가 기절했개.. 너무 재밌었어! 근데 코 고는 건 비밀이야 💤",
			Timestamp:       now.Add(-58 * time.Minute),
			Read:            true,
			RelatedActivity: "daycare",
		},
	}
}

var replyTemplates = []string{
	"그래그래! 나도 그렇게 생각해! 🐶",
	"킁킁~ 무슨 냄새 안 나? 배고파졌어 🤤",
	"나도 같이 가고 싶어! 데려가줘! 🐕",
	"엄마/아빠 최고야! 사랑해! ❤️",
	"오늘 날씨 좋네! 산책 갈까? 🌤️",
	"간식 시간 아니야? 배고프개! 🦴",
	"이제 낮잠 자야겠다.. 졸려 💤",
	"같이 놀아줘! 심심해! 🎾",
	"꼬리가 저절로 흔들려! 신나! ✨",
	"오늘 하루 재미있었어! 고마워! 🥰",
}
