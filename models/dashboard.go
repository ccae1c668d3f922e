package models

type PatientDashboard struct {
	Patient     *Patient   `json:"patient"`
	Bids        []Bid      `json:"bids"`
	Hospitals   []Hospital `json:"hospitals"`
	Recommended []Hospital `json:"recommended,omitempty"`
}

type HospitalDashboard struct {
	Hospital *Hospital `json:"hospital"`
	Bids     []Bid     `json:"bids"`
}

type AdminDashboard struct {
	Hospitals []Hospital `json:"hospitals"`
}
