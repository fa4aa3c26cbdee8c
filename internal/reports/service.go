package reports

import (
	"context"
	"time"

	"absensi-backend/internal/attendance"
	"absensi-backend/internal/store"
)

type Service struct {
	store *store.Store
	now   func() time.Time
}

func NewService(st *store.Store) *Service {
	return &Service{store: st, now: time.Now}
}

// Daily builds the printable daily sheet for one class and date.
func (s *Service) Daily(ctx context.Context, className, date string) (DailySheet, error) {
	if className == "" {
		return DailySheet{}, store.NewInvalidArgumentError("class is required")
	}
	date, err := store.NormalizeDate(date)
	if err != nil {
		return DailySheet{}, err
	}

	students := s.store.StudentsByClass(className)
	rows := attendance.DailySummary(students, s.store.Records(), date)
	return ToDailySheet(s.store.Settings(), className, date, rows, s.now()), nil
}

// Period builds the printable recap over an inclusive date range. className
// "" covers every class.
func (s *Service) Period(ctx context.Context, className, startDate, endDate string) (PeriodSheet, error) {
	students := s.store.StudentsByClass(className)
	rows, err := attendance.PeriodSummary(students, s.store.Records(), startDate, endDate)
	if err != nil {
		return PeriodSheet{}, err
	}
	return ToPeriodSheet(s.store.Settings(), className, startDate, endDate, rows, s.now()), nil
}

// ===== export artifacts =====

func (s *Service) DailyCSV(ctx context.Context, className, date string) (string, []byte, error) {
	sheet, err := s.Daily(ctx, className, date)
	if err != nil {
		return "", nil, err
	}
	data, err := WriteDailyCSV(sheet)
	if err != nil {
		return "", nil, err
	}
	return DailyCSVFilename(className, date), data, nil
}

func (s *Service) DailyXLSX(ctx context.Context, className, date string) (string, []byte, error) {
	sheet, err := s.Daily(ctx, className, date)
	if err != nil {
		return "", nil, err
	}
	f, err := BuildDailyXLSX(sheet)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()
	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", nil, err
	}
	return DailyXLSXFilename(className, date), buf.Bytes(), nil
}

func (s *Service) PeriodXLSX(ctx context.Context, className, startDate, endDate string) (string, []byte, error) {
	sheet, err := s.Period(ctx, className, startDate, endDate)
	if err != nil {
		return "", nil, err
	}
	f, err := BuildPeriodXLSX(sheet)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()
	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", nil, err
	}
	return PeriodXLSXFilename(className, startDate, endDate), buf.Bytes(), nil
}
