package store

// Status is an attendance status. The four known values come from the
// school's reporting language; stored data may contain other strings and
// those are kept but never counted.
type Status string

const (
	StatusHadir Status = "hadir" // present
	StatusIzin  Status = "izin"  // excused
	StatusSakit Status = "sakit" // sick
	StatusAlfa  Status = "alfa"  // unexcused
)

func (s Status) Known() bool {
	switch s {
	case StatusHadir, StatusIzin, StatusSakit, StatusAlfa:
		return true
	}
	return false
}

// Student record. Class is a plain class name, "" when unassigned.
type Student struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	NIS   string `json:"nis"`
	Class string `json:"class"`
}

// AttendanceRecord is unique per (StudentID, Date). Class is a snapshot of
// the student's class at recording time and is never rewritten afterwards.
type AttendanceRecord struct {
	ID        string `json:"id"`
	StudentID string `json:"studentId"`
	Date      string `json:"date"` // YYYY-MM-DD
	Class     string `json:"class"`
	Status    Status `json:"status"`
	Timestamp string `json:"timestamp"` // RFC3339 recording instant
}

const (
	LogoTypeEmoji = "emoji"
	LogoTypeImage = "image"
)

// Settings is the application-wide singleton.
type Settings struct {
	TeacherName    string `json:"teacherName"`
	TeacherNIP     string `json:"teacherNIP"`
	DarkMode       bool   `json:"darkMode"`
	SchoolName     string `json:"schoolName"`
	SchoolLogo     string `json:"schoolLogo"` // data URI, "" when no image
	SchoolLogoType string `json:"schoolLogoType"`
	PrincipalName  string `json:"principalName"`
	PrincipalNIP   string `json:"principalNIP"`
}

// Snapshot is the unit of persistence: all four collections together.
// Settings is a pointer so a fresh database (key absent) is distinguishable
// from explicitly saved defaults.
type Snapshot struct {
	Students   []Student
	Classes    []string
	Attendance []AttendanceRecord
	Settings   *Settings
}
