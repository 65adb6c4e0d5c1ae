package family

// Seed is the demo family. Family data is never persisted or mutated at
// runtime; every process start gets this exact dataset.
func Seed() Family {
	return Family{
		ID:   "family1",
		Name: "김씨네 가족",
		Pets: []Pet{
			{
				ID:     "pet1",
				Name:   "초코",
				Breed:  "푸들",
				Age:    "3살",
				Birth:  "2023-01-15",
				Photo:  "https://images.unsplash.com/photo-1583511655857-d19b40a7a54e?w=400",
				Gender: "남아",
				Weight: "5.2kg",
				Allergies: []string{
					"닭고기", "밀가루",
				},
				Vaccines: []Vaccine{
					{Name: "DHPPL", Date: "2025-12-01", NextDate: "2026-12-01"},
					{Name: "광견병", Date: "2025-11-15", NextDate: "2026-11-15"},
				},
			},
		},
		Members: []Member{
			{ID: "user1", Name: "김아빠", Role: RoleAdmin, Avatar: "👨", Status: "online", Phone: "010-1234-5678"},
			{ID: "user2", Name: "김엄마", Role: RoleMember, Avatar: "👩", Status: "online", Phone: "010-2345-6789"},
			{ID: "user3", Name: "김딸", Role: RoleMember, Avatar: "👧", Status: "offline", Phone: "010-3456-7890"},
		},
		Professionals: []Professional{
			{
				ID:      "pro1",
				Name:    "개린이집 반포점",
				Type:    ProDaycare,
				Avatar:  "🏫",
				Contact: "02-1234-5678",
				Manager: "김선생님",
				Address: "서울 서초구 반포동 123",
			},
			{
				ID:      "pro2",
				Name:    "24시 튼튼 동물병원",
				Type:    ProHospital,
				Avatar:  "🏥",
				Contact: "02-5678-1234",
				Manager: "박수의사",
				Address: "서울 강남구 역삼동 456",
			},
		},
	}
}

// SeedStats is the demo professional-dashboard summary.
func SeedStats() Stats {
	return Stats{
		TodayCheckins:  12,
		PendingTasks:   3,
		CompletedToday: 8,
		TotalPets:      25,
	}
}
