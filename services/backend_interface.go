package services

import "github.com/aarushinuvoai/Bid-For-Cure/models"

// BackendClient is the portal's view of the Bid for Cure backend API.
type BackendClient interface {
	SuperadminLogin(email, passwd string) (*models.AuthResult, error)
	PatientSignup(req models.SignupRequest) (*models.AuthResult, error)
	PatientLogin(emailid, passwd string) (*models.AuthResult, error)
	GetPatientByEmail(email string) (*models.Patient, error)

	GetHospitals() ([]models.Hospital, error)
	GetHospital(id int) (*models.Hospital, error)
	CreateHospital(payload models.CreateHospitalPayload) (*models.Hospital, error)

	GetBids() ([]models.Bid, error)
	GetBidsByEmail(email string) ([]models.Bid, error)
	CreateBid(payload models.CreateBidPayload) (*models.Bid, error)
	ApproveBid(id int) (*models.Bid, error)
	RejectBid(id int) (*models.Bid, error)

	Ping() error
}
