package store

// Factory defaults, restored on first run and after a full reset.

func defaultClasses() []string {
	return []string{"X IPA 1", "X IPA 2", "X IPS 1", "XI IPA 1", "XI IPA 2", "XII IPA 1"}
}

func defaultSettings() Settings {
	return Settings{
		TeacherName:    "Guru",
		TeacherNIP:     "",
		DarkMode:       false,
		SchoolName:     "SMA Negeri 1",
		SchoolLogo:     "",
		SchoolLogoType: LogoTypeEmoji,
		PrincipalName:  "Dr. Ahmad Suryanto, M.Pd",
		PrincipalNIP:   "196512121990031001",
	}
}

func (s *Store) sampleStudents() []Student {
	samples := []struct {
		name, nis, class string
	}{
		{"Ahmad Fauzi", "2024001", "X IPA 1"},
		{"Siti Nurhaliza", "2024002", "X IPA 1"},
		{"Budi Santoso", "2024003", "X IPA 1"},
		{"Dewi Lestari", "2024004", "X IPA 2"},
		{"Eko Prasetyo", "2024005", "X IPA 2"},
	}
	out := make([]Student, 0, len(samples))
	for _, sm := range samples {
		out = append(out, Student{ID: s.newID(), Name: sm.name, NIS: sm.nis, Class: sm.class})
	}
	return out
}
