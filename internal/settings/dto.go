package settings

// ===== Requests =====

// Blank fields keep their current value; the forms submit whatever the
// teacher filled in and nothing else is touched.
type SchoolProfileRequest struct {
	SchoolName    string `json:"schoolName"`
	PrincipalName string `json:"principalName"`
	PrincipalNIP  string `json:"principalNIP"`
}

type TeacherProfileRequest struct {
	TeacherName string `json:"teacherName"`
	TeacherNIP  string `json:"teacherNIP"`
}

type ThemeRequest struct {
	DarkMode bool `json:"darkMode"`
}

// LogoRequest carries the selected image as standard base64 (no data-URI
// prefix); the server sniffs the actual content type itself.
type LogoRequest struct {
	Data string `json:"data" binding:"required"`
}

// ===== Responses =====

type SettingsResponse struct {
	TeacherName    string `json:"teacherName"`
	TeacherNIP     string `json:"teacherNIP"`
	DarkMode       bool   `json:"darkMode"`
	SchoolName     string `json:"schoolName"`
	SchoolLogo     string `json:"schoolLogo"`
	SchoolLogoType string `json:"schoolLogoType"`
	PrincipalName  string `json:"principalName"`
	PrincipalNIP   string `json:"principalNIP"`
}
