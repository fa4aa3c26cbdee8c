package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

// WriteDailyCSV renders a daily sheet with the export header
// No,Nama Siswa,NIS,Status Kehadiran. Statuses stay lowercase on this path;
// spreadsheet users filter on the raw stored value.
func WriteDailyCSV(sheet DailySheet) ([]byte, error) {
	var b bytes.Buffer
	w := csv.NewWriter(&b)

	if err := w.Write([]string{"No", "Nama Siswa", "NIS", "Status Kehadiran"}); err != nil {
		return nil, err
	}
	for _, r := range sheet.Rows {
		record := []string{strconv.Itoa(r.No), r.Name, r.NIS, csvStatus(r.Status)}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func csvStatus(status string) string {
	if status == "-" {
		return "-"
	}
	return strings.ToLower(status)
}

func DailyCSVFilename(className, date string) string {
	return fmt.Sprintf("Absensi_%s_%s.csv", className, date)
}
