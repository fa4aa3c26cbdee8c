package attendance

import (
	"context"
	"strings"
	"time"

	"absensi-backend/internal/store"
)

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// Sheet returns the entry sheet for a class and date: every student of the
// class with their recorded status, or "-" when nothing is recorded yet.
func (s *Service) Sheet(ctx context.Context, class, date string) ([]SheetRow, error) {
	if class == "" {
		return nil, store.NewInvalidArgumentError("class is required")
	}
	date, err := store.NormalizeDate(normalizeDateString(date))
	if err != nil {
		return nil, err
	}

	students := s.store.StudentsByClass(class)
	rows := DailySummary(students, s.store.Records(), date)

	out := make([]SheetRow, 0, len(rows))
	for i, r := range rows {
		status := StatusUnrecorded
		if r.Recorded {
			status = string(r.Status)
		}
		out = append(out, SheetRow{
			No:        i + 1,
			StudentID: r.Student.ID,
			Name:      r.Student.Name,
			NIS:       r.Student.NIS,
			Status:    status,
			Recorded:  r.Recorded,
		})
	}
	return out, nil
}

// SaveSheet commits the staged statuses for one class/date in one action.
func (s *Service) SaveSheet(ctx context.Context, req SaveSheetRequest) (SaveSheetResponse, error) {
	drafts := make(map[string]store.Status, len(req.Statuses))
	for id, v := range req.Statuses {
		drafts[id] = store.Status(strings.ToLower(strings.TrimSpace(v)))
	}
	saved, err := s.store.SaveAttendanceSheet(ctx, req.Class, normalizeDateString(req.Date), drafts)
	if err != nil {
		return SaveSheetResponse{}, err
	}
	return SaveSheetResponse{Saved: saved}, nil
}

// Period returns the per-student recap over an inclusive date range,
// optionally filtered by class ("" means every class).
func (s *Service) Period(ctx context.Context, class, startDate, endDate string) ([]PeriodSummaryRow, error) {
	students := s.store.StudentsByClass(class)
	rows, err := PeriodSummary(students, s.store.Records(), startDate, endDate)
	if err != nil {
		return nil, err
	}

	out := make([]PeriodSummaryRow, 0, len(rows))
	for i, r := range rows {
		out = append(out, PeriodSummaryRow{
			No:         i + 1,
			StudentID:  r.Student.ID,
			Name:       r.Student.Name,
			NIS:        r.Student.NIS,
			Class:      r.Student.Class,
			Hadir:      r.Tally.Hadir,
			Izin:       r.Tally.Izin,
			Sakit:      r.Tally.Sakit,
			Alfa:       r.Tally.Alfa,
			Percentage: r.Percentage,
		})
	}
	return out, nil
}

// Dashboard aggregates one date (default today) across all students.
func (s *Service) Dashboard(ctx context.Context, date string) (DashboardResponse, error) {
	date, err := store.NormalizeDate(normalizeDateString(date))
	if err != nil {
		return DashboardResponse{}, err
	}

	t := DashboardTally(s.store.Records(), date)
	return DashboardResponse{
		Date:       date,
		Hadir:      t.Hadir,
		Izin:       t.Izin,
		Sakit:      t.Sakit,
		Alfa:       t.Alfa,
		Total:      t.Total(),
		Percentage: t.Percentage(),
	}, nil
}

// "today" (or empty) resolves to the current date.
func normalizeDateString(v string) string {
	v = strings.TrimSpace(strings.ToLower(v))
	if v == "" || v == "today" {
		return time.Now().UTC().Format(DateLayout)
	}
	return v
}
