package attendance_test

import (
	"testing"
	"time"

	"office-attendance/internal/attendance"
	attendanceerrors "office-attendance/internal/attendance/errors"

	"github.com/stretchr/testify/assert"
)

func TestParseHistoryFilter(t *testing.T) {
	tests := []struct {
		name    string
		month   string
		year    string
		want    attendance.HistoryFilter
		wantErr error
	}{
		{name: "all all", month: "All", year: "All", want: attendance.HistoryFilter{}},
		{name: "january pads", month: "January", year: "All", want: attendance.HistoryFilter{Month: "01"}},
		{name: "december", month: "December", year: "2023", want: attendance.HistoryFilter{Year: "2023", Month: "12"}},
		{name: "lowercase month", month: "june", year: "All", wantErr: attendanceerrors.ErrInvalidMonth},
		{name: "empty month", month: "", year: "All", wantErr: attendanceerrors.ErrInvalidMonth},
		{name: "short year", month: "All", year: "202", wantErr: attendanceerrors.ErrInvalidYear},
		{name: "word year", month: "All", year: "year", wantErr: attendanceerrors.ErrInvalidYear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := attendance.ParseHistoryFilter(tt.month, tt.year)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestYearOptions(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, []string{"All", "2024", "2023", "2022", "2021", "2020"}, attendance.YearOptions(now))
}

func TestMonthOptions(t *testing.T) {
	opts := attendance.MonthOptions()

	assert.Len(t, opts, 13)
	assert.Equal(t, "All", opts[0])
	assert.Equal(t, "January", opts[1])
	assert.Equal(t, "December", opts[12])
}

func TestDecorate(t *testing.T) {
	rec := attendance.Decorate(attendance.Attendance{ID: 3, Date: "2024-06-01", Time: "08:00:00", Status: "Present"})

	assert.Equal(t, "Saturday", rec.Weekday)
	assert.Equal(t, "01-06-2024", rec.DisplayDate)
	assert.Equal(t, "2024-06-01", rec.Date)
}

func TestComputeStatistics(t *testing.T) {
	records := []attendance.HistoryRecord{
		{Status: "Present"},
		{Status: "Present"},
		{Status: "Absent"},
	}

	stats := attendance.ComputeStatistics(records)

	assert.Equal(t, attendance.Statistics{Present: 2, Absent: 1, Total: 3}, stats)
	assert.Equal(t, stats.Total, stats.Present+stats.Absent)

	empty := attendance.ComputeStatistics(nil)
	assert.Equal(t, attendance.Statistics{}, empty)
}
