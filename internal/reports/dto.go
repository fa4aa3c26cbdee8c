package reports

// Flat, render-ready sheet structures. Building one of these is pure data
// shaping; the same value feeds the JSON API, the CSV writer and the XLSX
// writer.

// SignatureBlock is the footer of every printable sheet. Names fall back to
// underscore placeholders so the printout always has a line to sign on.
type SignatureBlock struct {
	DateLine      string `json:"dateLine"` // formatted print date
	PrincipalRole string `json:"principalRole"`
	PrincipalName string `json:"principalName"`
	PrincipalNIP  string `json:"principalNIP"`
	TeacherRole   string `json:"teacherRole"`
	TeacherName   string `json:"teacherName"`
	TeacherNIP    string `json:"teacherNIP"`
}

type DailySheetRow struct {
	No     int    `json:"no"`
	Name   string `json:"name"`
	NIS    string `json:"nis"`
	Status string `json:"status"` // uppercased, "-" when unrecorded
}

type DailySheet struct {
	Title      string          `json:"title"`
	SchoolName string          `json:"schoolName"`
	YearLine   string          `json:"yearLine"`
	ClassLine  string          `json:"classLine"`
	DateLine   string          `json:"dateLine"`
	Columns    []string        `json:"columns"`
	Rows       []DailySheetRow `json:"rows"`
	Signature  SignatureBlock  `json:"signature"`
}

type PeriodSheetRow struct {
	No         int    `json:"no"`
	Name       string `json:"name"`
	Class      string `json:"class"`
	Hadir      int    `json:"hadir"`
	Izin       int    `json:"izin"`
	Sakit      int    `json:"sakit"`
	Alfa       int    `json:"alfa"`
	Percentage string `json:"percentage"` // "85%"
}

type PeriodSheet struct {
	Title      string           `json:"title"`
	SchoolName string           `json:"schoolName"`
	YearLine   string           `json:"yearLine"`
	ClassLine  string           `json:"classLine"`
	PeriodLine string           `json:"periodLine"`
	Columns    []string         `json:"columns"`
	Rows       []PeriodSheetRow `json:"rows"`
	Signature  SignatureBlock   `json:"signature"`
}
