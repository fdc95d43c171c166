package attendance

const StatusPresent = "Present"

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

type MarkResult string

const (
	MarkResultMarked        MarkResult = "Marked"
	MarkResultAlreadyMarked MarkResult = "AlreadyMarked"
)

// Attendance is one per-day presence entry. Date and Time are kept as text
// (YYYY-MM-DD and HH:MM:SS) so period filters can slice them directly.
type Attendance struct {
	ID         uint   `gorm:"column:id;primaryKey;autoIncrement"`
	EmployeeID uint   `gorm:"column:employee_id;not null"`
	Date       string `gorm:"column:date;not null"`
	Time       string `gorm:"column:time;not null"`
	Status     string `gorm:"column:status;not null"`
}

func (Attendance) TableName() string {
	return "attendance"
}
