package attendance

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	attendanceerrors "office-attendance/internal/attendance/errors"
)

const FilterAll = "All"

var yearPattern = regexp.MustCompile(`^\d{4}$`)

// MonthOptions lists the month filter values in calendar order after "All".
func MonthOptions() []string {
	opts := make([]string, 0, 13)
	opts = append(opts, FilterAll)
	for m := time.January; m <= time.December; m++ {
		opts = append(opts, m.String())
	}
	return opts
}

// YearOptions returns "All" followed by the year of now and the four years
// before it, newest first.
func YearOptions(now time.Time) []string {
	opts := make([]string, 0, 6)
	opts = append(opts, FilterAll)
	for y := now.Year(); y > now.Year()-5; y-- {
		opts = append(opts, strconv.Itoa(y))
	}
	return opts
}

// ParseHistoryFilter turns the month and year selections into the stored-text
// prefixes the repository compares against.
func ParseHistoryFilter(month, year string) (HistoryFilter, error) {
	var f HistoryFilter

	if month != FilterAll {
		n, ok := monthNumber(month)
		if !ok {
			return HistoryFilter{}, attendanceerrors.ErrInvalidMonth
		}
		f.Month = fmt.Sprintf("%02d", n)
	}

	switch {
	case year == FilterAll:
	case yearPattern.MatchString(year):
		f.Year = year
	default:
		return HistoryFilter{}, attendanceerrors.ErrInvalidYear
	}

	return f, nil
}

func monthNumber(name string) (int, bool) {
	for m := time.January; m <= time.December; m++ {
		if m.String() == name {
			return int(m), true
		}
	}
	return 0, false
}

// Decorate derives the weekday and DD-MM-YYYY form from the stored date only.
func Decorate(a Attendance) HistoryRecord {
	rec := HistoryRecord{
		ID:          a.ID,
		Date:        a.Date,
		DisplayDate: a.Date,
		Time:        a.Time,
		Status:      a.Status,
	}
	if d, err := time.Parse(dateLayout, a.Date); err == nil {
		rec.Weekday = d.Weekday().String()
		rec.DisplayDate = d.Format("02-01-2006")
	}
	return rec
}

func DecorateAll(rows []Attendance) []HistoryRecord {
	out := make([]HistoryRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, Decorate(r))
	}
	return out
}

// ComputeStatistics counts what is in records. Days without a record are not
// counted as absent; absent is only total minus present.
func ComputeStatistics(records []HistoryRecord) Statistics {
	var present int
	for _, r := range records {
		if r.Status == StatusPresent {
			present++
		}
	}
	return Statistics{
		Present: present,
		Absent:  len(records) - present,
		Total:   len(records),
	}
}
