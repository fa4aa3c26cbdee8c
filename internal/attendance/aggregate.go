package attendance

import (
	"math"

	"absensi-backend/internal/store"
)

// Tally holds per-status counts for a set of attendance records.
type Tally struct {
	Hadir int `json:"hadir"`
	Izin  int `json:"izin"`
	Sakit int `json:"sakit"`
	Alfa  int `json:"alfa"`
}

// TallyRecords counts records by status. Statuses outside the four known
// values are skipped, not errors: stored data from older or newer versions
// must keep aggregating.
func TallyRecords(records []store.AttendanceRecord) Tally {
	var t Tally
	for _, r := range records {
		switch r.Status {
		case store.StatusHadir:
			t.Hadir++
		case store.StatusIzin:
			t.Izin++
		case store.StatusSakit:
			t.Sakit++
		case store.StatusAlfa:
			t.Alfa++
		}
	}
	return t
}

func (t Tally) Total() int {
	return t.Hadir + t.Izin + t.Sakit + t.Alfa
}

// Percentage is round(hadir/total*100). An empty tally is 0%, never a
// division by zero.
func (t Tally) Percentage() int {
	total := t.Total()
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(t.Hadir) / float64(total) * 100))
}

// DailyRow is one student's line on a daily sheet. Recorded is false when no
// record exists for (student, date); Status is meaningless in that case.
type DailyRow struct {
	Student  store.Student
	Status   store.Status
	Recorded bool
}

// DailySummary is a 1:1 lookup, not an aggregation: each student has at most
// one record per date. Records are indexed by studentID up front so the
// lookup stays O(1) per student regardless of history size.
func DailySummary(students []store.Student, records []store.AttendanceRecord, date string) []DailyRow {
	byStudent := make(map[string]store.Status, len(students))
	for _, r := range records {
		if r.Date == date {
			byStudent[r.StudentID] = r.Status
		}
	}

	rows := make([]DailyRow, 0, len(students))
	for _, st := range students {
		status, ok := byStudent[st.ID]
		rows = append(rows, DailyRow{Student: st, Status: status, Recorded: ok})
	}
	return rows
}

// PeriodRow is one student's line on a period recap.
type PeriodRow struct {
	Student    store.Student
	Tally      Tally
	Percentage int
}

// PeriodSummary tallies each student's records with start <= date <= end,
// both bounds inclusive. Dates are canonical YYYY-MM-DD strings, so the
// lexicographic comparison is calendar comparison.
func PeriodSummary(students []store.Student, records []store.AttendanceRecord, startDate, endDate string) ([]PeriodRow, error) {
	startDate, err := store.NormalizeDate(startDate)
	if err != nil {
		return nil, err
	}
	endDate, err = store.NormalizeDate(endDate)
	if err != nil {
		return nil, err
	}
	if startDate > endDate {
		return nil, store.NewInvalidArgumentError("start date must not be after end date")
	}

	byStudent := make(map[string][]store.AttendanceRecord, len(students))
	for _, r := range records {
		if r.Date < startDate || r.Date > endDate {
			continue
		}
		byStudent[r.StudentID] = append(byStudent[r.StudentID], r)
	}

	rows := make([]PeriodRow, 0, len(students))
	for _, st := range students {
		t := TallyRecords(byStudent[st.ID])
		rows = append(rows, PeriodRow{Student: st, Tally: t, Percentage: t.Percentage()})
	}
	return rows, nil
}

// DashboardTally aggregates one date across all students, system-wide.
func DashboardTally(records []store.AttendanceRecord, date string) Tally {
	var todays []store.AttendanceRecord
	for _, r := range records {
		if r.Date == date {
			todays = append(todays, r)
		}
	}
	return TallyRecords(todays)
}
