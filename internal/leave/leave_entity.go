package leave

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

const dateLayout = "2006-01-02"

type Leave struct {
	ID         uint   `gorm:"column:id;primaryKey;autoIncrement"`
	EmployeeID uint   `gorm:"column:employee_id;not null"`
	Date       string `gorm:"column:date;not null"`
	Reason     string `gorm:"column:reason;not null"`
	Status     string `gorm:"column:status;default:Pending"`
}

func (Leave) TableName() string {
	return "leaves"
}

// PendingLeave is a pending request joined with the requester's name.
type PendingLeave struct {
	ID           uint   `gorm:"column:id"`
	EmployeeID   uint   `gorm:"column:employee_id"`
	EmployeeName string `gorm:"column:employee_name"`
	Date         string `gorm:"column:date"`
	Reason       string `gorm:"column:reason"`
	Status       string `gorm:"column:status"`
}
