package attendance

type MarkAttendanceResponse struct {
	Result MarkResult `json:"result"`
	Date   string     `json:"date"`
	Time   string     `json:"time"`
}

type HistoryQuery struct {
	Month string `form:"month"`
	Year  string `form:"year"`
}

// HistoryRecord is a stored row decorated for display.
type HistoryRecord struct {
	ID          uint   `json:"id"`
	Date        string `json:"date"`
	DisplayDate string `json:"display_date"`
	Weekday     string `json:"weekday"`
	Time        string `json:"time"`
	Status      string `json:"status"`
}

type Statistics struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Total   int `json:"total"`
}

type HistoryResponse struct {
	Records    []HistoryRecord `json:"records"`
	Statistics Statistics      `json:"statistics"`
}

type YearOptionsResponse struct {
	Months []string `json:"months"`
	Years  []string `json:"years"`
}
