package models

type Hospital struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Address *string `json:"address,omitempty"`
	Quote   *string `json:"quote,omitempty"`
}

type CreateHospitalRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
}

// CreateHospitalPayload is what the backend expects. The admin dashboard
// always submits an empty quote.
type CreateHospitalPayload struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Quote   string `json:"quote"`
}
