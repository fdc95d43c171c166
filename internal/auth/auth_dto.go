package auth

import "time"

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type EmployeeLoginRequest struct {
	Email string `json:"email"`
}

type AuthResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	SubjectID   uint      `json:"subject_id"`
	Role        string    `json:"role"`
	Name        string    `json:"name"`
}

type MeResponse struct {
	SubjectID uint   `json:"subject_id"`
	Role      string `json:"role"`
	Name      string `json:"name"`
}
