package handlers

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/aarushinuvoai/Bid-For-Cure/config"
	"github.com/aarushinuvoai/Bid-For-Cure/models"
	"github.com/aarushinuvoai/Bid-For-Cure/services"
)

func errNotFound() error {
	return fmt.Errorf("%w: fake", services.ErrNotFound)
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// fakeBackend is an in-memory stand-in for the Bid for Cure backend.
type fakeBackend struct {
	patients  map[string]models.Patient
	hospitals []models.Hospital
	bids      []models.Bid

	authResult *models.AuthResult
	authErr    error

	err error

	createBidCalls      int
	lastBidPayload      models.CreateBidPayload
	createHospitalCalls int
	lastHospitalPayload models.CreateHospitalPayload

	// When set, ApproveBid/RejectBid block until released. Used to hold a
	// decision in flight.
	decisionEntered chan struct{}
	decisionRelease chan struct{}
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		patients: make(map[string]models.Patient),
	}
}

func (f *fakeBackend) SuperadminLogin(email, passwd string) (*models.AuthResult, error) {
	if f.authErr != nil {
		return nil, f.authErr
	}
	return f.authResult, nil
}

func (f *fakeBackend) PatientSignup(req models.SignupRequest) (*models.AuthResult, error) {
	if f.authErr != nil {
		return nil, f.authErr
	}
	return f.authResult, nil
}

func (f *fakeBackend) PatientLogin(emailid, passwd string) (*models.AuthResult, error) {
	if f.authErr != nil {
		return nil, f.authErr
	}
	return f.authResult, nil
}

func (f *fakeBackend) GetPatientByEmail(email string) (*models.Patient, error) {
	if f.err != nil {
		return nil, f.err
	}
	patient, ok := f.patients[email]
	if !ok {
		return nil, errNotFound()
	}
	return &patient, nil
}

func (f *fakeBackend) GetHospitals() ([]models.Hospital, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.hospitals, nil
}

func (f *fakeBackend) GetHospital(id int) (*models.Hospital, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.hospitals {
		if f.hospitals[i].ID == id {
			return &f.hospitals[i], nil
		}
	}
	return nil, errNotFound()
}

func (f *fakeBackend) CreateHospital(payload models.CreateHospitalPayload) (*models.Hospital, error) {
	f.createHospitalCalls++
	f.lastHospitalPayload = payload
	if f.err != nil {
		return nil, f.err
	}
	hospital := models.Hospital{
		ID:      len(f.hospitals) + 1,
		Name:    payload.Name,
		Address: &payload.Address,
		Quote:   &payload.Quote,
	}
	f.hospitals = append(f.hospitals, hospital)
	return &hospital, nil
}

func (f *fakeBackend) GetBids() ([]models.Bid, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bids, nil
}

func (f *fakeBackend) GetBidsByEmail(email string) ([]models.Bid, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bids, nil
}

func (f *fakeBackend) CreateBid(payload models.CreateBidPayload) (*models.Bid, error) {
	f.createBidCalls++
	f.lastBidPayload = payload
	if f.err != nil {
		return nil, f.err
	}
	bid := models.Bid{
		ID:                len(f.bids) + 1,
		PatientID:         payload.PatientID,
		MedicalConditions: payload.MedicalConditions,
		SurgeryNeeded:     payload.SurgeryNeeded,
		SurgeryArea:       payload.SurgeryArea,
		SurgeryDate:       payload.SurgeryDate,
		HospitalID:        payload.HospitalID,
		Insurance:         payload.Insurance,
		InsuranceBalance:  payload.InsuranceBalance,
		Budget:            payload.Budget,
		Status:            models.BidPending,
	}
	f.bids = append(f.bids, bid)
	return &bid, nil
}

func (f *fakeBackend) ApproveBid(id int) (*models.Bid, error) {
	return f.decide(id, models.BidApproved)
}

func (f *fakeBackend) RejectBid(id int) (*models.Bid, error) {
	return f.decide(id, models.BidRejected)
}

func (f *fakeBackend) decide(id int, status string) (*models.Bid, error) {
	if f.decisionEntered != nil {
		f.decisionEntered <- struct{}{}
		<-f.decisionRelease
	}
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.bids {
		if f.bids[i].ID == id {
			f.bids[i].Status = status
			return &f.bids[i], nil
		}
	}
	return nil, errNotFound()
}

func (f *fakeBackend) Ping() error {
	return f.err
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:      "test-secret",
		AllowedOrigins: []string{"http://localhost:3000"},
	}
}

// sessionStub injects the claims the auth middleware would have set.
func sessionStub(email, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("email", email)
		c.Set("role", role)
		c.Next()
	}
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) models.Response {
	t.Helper()
	var resp models.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response body %q: %v", w.Body.String(), err)
	}
	return resp
}
