package attendance

const (
	DateLayout = "2006-01-02"

	// wire value for "no record yet"
	StatusUnrecorded = "-"
)

// SheetRow: one line of the attendance-entry sheet for a class/date.
type SheetRow struct {
	No        int    `json:"no"`
	StudentID string `json:"studentId"`
	Name      string `json:"name"`
	NIS       string `json:"nis"`
	Status    string `json:"status"` // "-" when not recorded yet
	Recorded  bool   `json:"recorded"`
}

// SaveSheetRequest commits a staged sheet: status per student, one action.
type SaveSheetRequest struct {
	Class    string            `json:"class" binding:"required"`
	Date     string            `json:"date" binding:"required"`
	Statuses map[string]string `json:"statuses" binding:"required"` // studentId -> status
}

type SaveSheetResponse struct {
	Saved int `json:"saved"`
}

// PeriodSummaryRow: one line of the period recap.
type PeriodSummaryRow struct {
	No         int    `json:"no"`
	StudentID  string `json:"studentId"`
	Name       string `json:"name"`
	NIS        string `json:"nis"`
	Class      string `json:"class"`
	Hadir      int    `json:"hadir"`
	Izin       int    `json:"izin"`
	Sakit      int    `json:"sakit"`
	Alfa       int    `json:"alfa"`
	Percentage int    `json:"percentage"`
}

// DashboardResponse: today's counts across every class.
type DashboardResponse struct {
	Date       string `json:"date"`
	Hadir      int    `json:"hadir"`
	Izin       int    `json:"izin"`
	Sakit      int    `json:"sakit"`
	Alfa       int    `json:"alfa"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
}
