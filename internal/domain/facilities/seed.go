package facilities

// Regions maps region names to their districts for the search UI.
func Regions() map[string][]string {
	return map[string][]string{
		"서울": {"강남구", "서초구", "송파구", "강동구", "마포구", "용산구", "성동구", "광진구"},
		"경기": {"수원시", "성남시", "용인시", "안양시", "부천시", "광명시", "평택시", "과천시"},
		"인천": {"남동구", "연수구", "부평구", "계양구", "서구", "중구"},
		"부산": {"해운대구", "수영구", "동래구", "부산진구", "연제구"},
	}
}

// Seed is the demo facility catalog.
func Seed() []Facility {
	return []Facility{
		{
			ID:          "facility1",
			Name:        "행복한 애견 유치원",
			Type:        TypeDaycare,
			Region:      "서울",
			District:    "강남구",
			Address:     "서울 강남구 테헤란로 123",
			Phone:       "02-1234-5678",
			Rating:      4.8,
			ReviewCount: 245,
			Photo:       "https://images.unsplash.com/photo-1548199973-03cce0bbc87b?w=600",
			Description: "전문 훈련사가 상주하는 프리미엄 애견 유치원입니다.",
			Services: []ServiceOption{
				{Name: "하루 돌봄", Price: 35000, Duration: "1일"},
				{Name: "반나절 돌봄", Price: 20000, Duration: "4시간"},
				{Name: "사회성 교육", Price: 50000, Duration: "1회"},
			},
			Amenities:      []string{"실내 놀이터", "야외 운동장", "CCTV", "1:1 케어"},
			Hours:          "09:00 - 19:00",
			AvailableTimes: []string{"09:00", "10:00", "11:00", "13:00", "14:00", "15:00", "16:00"},
		},
		{
			ID:          "facility2",
			Name:        "스위트홈 애견호텔",
			Type:        TypeHotel,
			Region:      "서울",
			District:    "강남구",
			Address:     "서울 강남구 선릉로 456",
			Phone:       "02-2345-6789",
			Rating:      4.9,
			ReviewCount: 189,
			Photo:       "https://images.unsplash.com/photo-1587300003388-59208cc962cb?w=600",
			Description: "24시간 케어 시스템으로 안심하고 맡기실 수 있습니다.",
			Services: []ServiceOption{
				{Name: "1박 2일", Price: 50000, Duration: "1박"},
				{Name: "주말 패키지", Price: 140000, Duration: "2박 3일"},
				{Name: "장기 할인", Price: 300000, Duration: "7박"},
			},
			Amenities:      []string{"개별 룸", "24시간 CCTV", "놀이시간", "산책 서비스"},
			Hours:          "24시간",
			AvailableTimes: []string{"10:00", "11:00", "14:00", "15:00", "16:00", "17:00"},
		},
		{
			ID:          "facility3",
			Name:        "프로 도그 트레이닝",
			Type:        TypeTraining,
			Region:      "서울",
			District:    "강남구",
			Address:     "서울 강남구 논현로 789",
			Phone:       "02-3456-7890",
			Rating:      4.7,
			ReviewCount: 156,
			Photo:       "https://images.unsplash.com/photo-1548199973-03cce0bbc87b?w=600",
			Description: "15년 경력의 전문 훈련사가 직접 교육합니다.",
			Services: []ServiceOption{
				{Name: "기본 훈련 (4주)", Price: 400000, Duration: "4주"},
				{Name: "문제 행동 교정", Price: 500000, Duration: "6주"},
				{Name: "1:1 개인 레슨", Price: 80000, Duration: "1회"},
			},
			Amenities:      []string{"전문 훈련장", "개별 케이지", "행동 분석"},
			Hours:          "10:00 - 18:00",
			AvailableTimes: []string{"10:00", "11:00", "14:00", "15:00", "16:00"},
		},
		{
			ID:          "facility4",
			Name:        "러블리 펫 유치원",
			Type:        TypeDaycare,
			Region:      "서울",
			District:    "서초구",
			Address:     "서울 서초구 반포대로 321",
			Phone:       "02-4567-8901",
			Rating:      4.6,
			ReviewCount: 198,
			Photo:       "https://images.unsplash.com/photo-1583511655857-d19b40a7a54e?w=600",
			Description: "소형견 전문 유치원으로 세심한 케어가 특징입니다.",
			Services: []ServiceOption{
				{Name: "하루 돌봄", Price: 30000, Duration: "1일"},
				{Name: "주 3회 패키지", Price: 80000, Duration: "주"},
				{Name: "월 정기권", Price: 280000, Duration: "월"},
			},
			Amenities:      []string{"실내 놀이방", "CCTV", "간식 제공", "목욕 서비스"},
			Hours:          "08:00 - 20:00",
			AvailableTimes: []string{"08:00", "09:00", "10:00", "13:00", "14:00", "15:00"},
		},
	}
}
