package models

type Patient struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	EmailID string `json:"emailid"`
	Role    string `json:"role"`
}

type SignupRequest struct {
	Name    string `json:"name" binding:"required"`
	EmailID string `json:"emailid" binding:"required,email"`
	Passwd  string `json:"passwd" binding:"required"`
}

type PatientLoginRequest struct {
	EmailID string `json:"emailid" binding:"required,email"`
	Passwd  string `json:"passwd" binding:"required"`
}

type SuperadminLoginRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Passwd string `json:"passwd" binding:"required"`
}

// AuthResult is the backend's response to login and signup calls. Success is
// signalled by Status == "success" rather than by HTTP status alone.
type AuthResult struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Role    string   `json:"role,omitempty"`
	Patient *Patient `json:"patient,omitempty"`
}

type SessionResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name,omitempty"`
}
