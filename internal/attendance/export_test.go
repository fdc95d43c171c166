package attendance_test

import (
	"bytes"
	"testing"

	"office-attendance/internal/attendance"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestRenderWorkbook(t *testing.T) {
	records := []attendance.HistoryRecord{
		{Date: "2024-06-03", DisplayDate: "03-06-2024", Weekday: "Monday", Time: "09:01:00", Status: "Present"},
		{Date: "2024-06-01", DisplayDate: "01-06-2024", Weekday: "Saturday", Time: "08:30:00", Status: "Present"},
	}

	data, err := attendance.RenderWorkbook(records, attendance.ComputeStatistics(records))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Attendance"}, f.GetSheetList())

	rows, err := f.GetRows("Attendance")
	require.NoError(t, err)
	require.Len(t, rows, 7)
	assert.Equal(t, []string{"Date", "Day", "Time", "Status"}, rows[0])
	assert.Equal(t, []string{"03-06-2024", "Monday", "09:01:00", "Present"}, rows[1])
	assert.Equal(t, []string{"Present", "2"}, rows[4])
	assert.Equal(t, []string{"Absent", "0"}, rows[5])
	assert.Equal(t, []string{"Total Days", "2"}, rows[6])
}
