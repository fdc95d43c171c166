package attendance

import (
	"bytes"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Attendance"

// RenderWorkbook writes the history rows and the statistics block into a
// single-sheet XLSX workbook.
func RenderWorkbook(records []HistoryRecord, stats Statistics) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	f.SetColWidth(exportSheet, "A", "A", 14)
	f.SetColWidth(exportSheet, "B", "B", 12)
	f.SetColWidth(exportSheet, "C", "D", 10)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(exportSheet, "A1", &[]interface{}{"Date", "Day", "Time", "Status"}); err != nil {
		return nil, err
	}
	f.SetCellStyle(exportSheet, "A1", "D1", headerStyle)

	row := 2
	for _, r := range records {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(exportSheet, cell, &[]interface{}{r.DisplayDate, r.Weekday, r.Time, r.Status}); err != nil {
			return nil, err
		}
		row++
	}

	row++
	summary := [][]interface{}{
		{"Present", stats.Present},
		{"Absent", stats.Absent},
		{"Total Days", stats.Total},
	}
	for _, line := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(exportSheet, cell, &line); err != nil {
			return nil, err
		}
		f.SetCellStyle(exportSheet, cell, cell, headerStyle)
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
