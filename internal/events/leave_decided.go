package events

import "time"

const LeaveDecidedTopic = "attendance.leave.decided.v1"

const LeaveDecidedType = "leave_decided"

type LeaveDecidedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	LeaveID    uint      `json:"leave_id"`
	EmployeeID uint      `json:"employee_id"`
	Date       string    `json:"date"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
