package reports

import (
	"fmt"
	"strings"
	"time"

	"absensi-backend/internal/attendance"
	"absensi-backend/internal/store"
)

const (
	dailyTitle  = "DAFTAR KEHADIRAN SISWA"
	periodTitle = "REKAP ABSENSI SISWA"

	principalRole = "Kepala Sekolah"
	teacherRole   = "Guru Mata Pelajaran"

	namePlaceholder = "___________________"

	defaultSchoolName = "SMA NEGERI 1"
	allClassesLabel   = "Semua Kelas"
)

// ToDailySheet shapes one class/date attendance lookup into a printable
// sheet. now supplies the year line and the signature date, keeping the
// function pure.
func ToDailySheet(settings store.Settings, className, date string, rows []attendance.DailyRow, now time.Time) DailySheet {
	out := DailySheet{
		Title:      dailyTitle,
		SchoolName: schoolName(settings),
		YearLine:   fmt.Sprintf("TAHUN %d", now.Year()),
		ClassLine:  "Kelas: " + className,
		DateLine:   "Tanggal: " + formatDateID(date, true),
		Columns:    []string{"No", "Nama Siswa", "NIS", "Status"},
		Signature:  signature(settings, now),
	}
	for i, r := range rows {
		status := attendance.StatusUnrecorded
		if r.Recorded {
			status = strings.ToUpper(string(r.Status))
		}
		out.Rows = append(out.Rows, DailySheetRow{
			No:     i + 1,
			Name:   r.Student.Name,
			NIS:    r.Student.NIS,
			Status: status,
		})
	}
	return out
}

// ToPeriodSheet shapes a period summary. className "" renders as "Semua
// Kelas". Student rows keep their stored class, which may name a class that
// no longer exists in the active list; that history is shown as recorded.
func ToPeriodSheet(settings store.Settings, className, startDate, endDate string, rows []attendance.PeriodRow, now time.Time) PeriodSheet {
	classLabel := className
	if classLabel == "" {
		classLabel = allClassesLabel
	}
	out := PeriodSheet{
		Title:      periodTitle,
		SchoolName: schoolName(settings),
		YearLine:   fmt.Sprintf("TAHUN %d", now.Year()),
		ClassLine:  "Kelas: " + classLabel,
		PeriodLine: fmt.Sprintf("Periode: %s - %s", formatDateID(startDate, false), formatDateID(endDate, false)),
		Columns:    []string{"No", "Nama Siswa", "Kelas", "Hadir", "Izin", "Sakit", "Alfa", "%"},
		Signature:  signature(settings, now),
	}
	for i, r := range rows {
		out.Rows = append(out.Rows, PeriodSheetRow{
			No:         i + 1,
			Name:       r.Student.Name,
			Class:      r.Student.Class,
			Hadir:      r.Tally.Hadir,
			Izin:       r.Tally.Izin,
			Sakit:      r.Tally.Sakit,
			Alfa:       r.Tally.Alfa,
			Percentage: fmt.Sprintf("%d%%", r.Percentage),
		})
	}
	return out
}

func schoolName(settings store.Settings) string {
	if settings.SchoolName == "" {
		return defaultSchoolName
	}
	return settings.SchoolName
}

func signature(settings store.Settings, now time.Time) SignatureBlock {
	return SignatureBlock{
		DateLine:      formatTimeID(now),
		PrincipalRole: principalRole,
		PrincipalName: orPlaceholder(settings.PrincipalName),
		PrincipalNIP:  "NIP. " + orPlaceholder(settings.PrincipalNIP),
		TeacherRole:   teacherRole,
		TeacherName:   orPlaceholder(settings.TeacherName),
		TeacherNIP:    "NIP. " + orPlaceholder(settings.TeacherNIP),
	}
}

func orPlaceholder(v string) string {
	if strings.TrimSpace(v) == "" {
		return namePlaceholder
	}
	return v
}

// ===== Indonesian date formatting =====

var dayNamesID = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

var monthNamesID = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// formatDateID renders a canonical YYYY-MM-DD string as an Indonesian date,
// with the weekday when withDay is set. Unparseable input is returned as is
// rather than breaking a report.
func formatDateID(date string, withDay bool) string {
	t, err := time.ParseInLocation(store.DateLayout, date, time.UTC)
	if err != nil {
		return date
	}
	if withDay {
		return formatTimeID(t)
	}
	return fmt.Sprintf("%d %s %d", t.Day(), monthNamesID[t.Month()-1], t.Year())
}

func formatTimeID(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d", dayNamesID[t.Weekday()], t.Day(), monthNamesID[t.Month()-1], t.Year())
}
