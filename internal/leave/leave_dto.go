package leave

type SubmitLeaveRequest struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// AdminSubmitLeaveRequest lets an administrator file a request on behalf of
// any employee.
type AdminSubmitLeaveRequest struct {
	EmployeeID uint   `json:"employee_id"`
	Date       string `json:"date"`
	Reason     string `json:"reason"`
}

type LeaveResponse struct {
	ID           uint   `json:"id"`
	EmployeeID   uint   `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Date         string `json:"date"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
}
