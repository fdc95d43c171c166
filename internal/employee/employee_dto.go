package employee

// CreateEmployeeRequest is validated by the service, not by gin binding, so
// the same rules apply whichever caller builds it.
type CreateEmployeeRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,office_email"`
	Phone  string `json:"phone" validate:"required,office_phone"`
	Gender string `json:"gender" validate:"required,oneof=Male Female Other"`
	Role   string `json:"role" validate:"required,oneof=Manager Developer HR Designer Other"`
}

type EmployeeResponse struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Gender string `json:"gender"`
	Role   string `json:"role"`
}
