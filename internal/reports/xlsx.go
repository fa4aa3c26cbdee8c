package reports

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const worksheet = "Sheet1"

// BuildDailyXLSX renders a daily sheet as a workbook: header block, table,
// signature rows. Layout mirrors the printable document the school hands in.
func BuildDailyXLSX(sheet DailySheet) (*excelize.File, error) {
	f := excelize.NewFile()

	header := []string{sheet.Title, sheet.SchoolName, sheet.YearLine, "", sheet.ClassLine, sheet.DateLine, ""}
	row := 1
	for _, line := range header {
		if err := f.SetCellValue(worksheet, cell(0, row), line); err != nil {
			f.Close()
			return nil, err
		}
		row++
	}

	cols := make([]any, len(sheet.Columns))
	for i, c := range sheet.Columns {
		cols[i] = c
	}
	if err := f.SetSheetRow(worksheet, cell(0, row), &cols); err != nil {
		f.Close()
		return nil, err
	}
	row++

	for _, r := range sheet.Rows {
		values := []any{r.No, r.Name, r.NIS, r.Status}
		if err := f.SetSheetRow(worksheet, cell(0, row), &values); err != nil {
			f.Close()
			return nil, err
		}
		row++
	}

	if err := writeSignature(f, row+1, sheet.Signature); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func BuildPeriodXLSX(sheet PeriodSheet) (*excelize.File, error) {
	f := excelize.NewFile()

	header := []string{sheet.Title, sheet.SchoolName, sheet.YearLine, "", sheet.ClassLine, sheet.PeriodLine, ""}
	row := 1
	for _, line := range header {
		if err := f.SetCellValue(worksheet, cell(0, row), line); err != nil {
			f.Close()
			return nil, err
		}
		row++
	}

	cols := make([]any, len(sheet.Columns))
	for i, c := range sheet.Columns {
		cols[i] = c
	}
	if err := f.SetSheetRow(worksheet, cell(0, row), &cols); err != nil {
		f.Close()
		return nil, err
	}
	row++

	for _, r := range sheet.Rows {
		values := []any{r.No, r.Name, r.Class, r.Hadir, r.Izin, r.Sakit, r.Alfa, r.Percentage}
		if err := f.SetSheetRow(worksheet, cell(0, row), &values); err != nil {
			f.Close()
			return nil, err
		}
		row++
	}

	if err := writeSignature(f, row+1, sheet.Signature); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// writeSignature lays the two signature columns out the way the printed
// form does: roles, empty signing space, names, NIP lines.
func writeSignature(f *excelize.File, row int, sig SignatureBlock) error {
	lines := [][2]string{
		{"Mengetahui,", sig.DateLine},
		{sig.PrincipalRole, sig.TeacherRole},
		{"", ""},
		{"", ""},
		{"", ""},
		{sig.PrincipalName, sig.TeacherName},
		{sig.PrincipalNIP, sig.TeacherNIP},
	}
	for i, pair := range lines {
		if err := f.SetCellValue(worksheet, cell(0, row+i), pair[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(worksheet, cell(4, row+i), pair[1]); err != nil {
			return err
		}
	}
	return nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row)
	return name
}

func DailyXLSXFilename(className, date string) string {
	return fmt.Sprintf("Absensi_%s_%s.xlsx", className, date)
}

func PeriodXLSXFilename(className, startDate, endDate string) string {
	if className == "" {
		className = "Semua_Kelas"
	}
	return fmt.Sprintf("Rekap_Absensi_%s_%s_%s.xlsx", className, startDate, endDate)
}
