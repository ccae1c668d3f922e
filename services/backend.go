package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/aarushinuvoai/Bid-For-Cure/models"
)

// ErrNotFound marks a 404 from the backend so handlers can pass it through
// instead of reporting a gateway failure.
var ErrNotFound = errors.New("backend: not found")

// APIError carries a 4xx rejection from the backend, with the detail string
// FastAPI puts in the error body.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Detail)
}

type BidCureClient struct {
	BaseURL string
	Client  *http.Client
}

func NewBidCureClient(baseURL string) *BidCureClient {
	return &BidCureClient{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (b *BidCureClient) SuperadminLogin(email, passwd string) (*models.AuthResult, error) {
	body := map[string]string{"email": email, "passwd": passwd}

	var result models.AuthResult
	if err := b.doJSON("POST", "/superadmin/login", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (b *BidCureClient) PatientSignup(req models.SignupRequest) (*models.AuthResult, error) {
	var result models.AuthResult
	if err := b.doJSON("POST", "/patient/signup", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (b *BidCureClient) PatientLogin(emailid, passwd string) (*models.AuthResult, error) {
	body := map[string]string{"emailid": emailid, "passwd": passwd}

	var result models.AuthResult
	if err := b.doJSON("POST", "/patient/login", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (b *BidCureClient) GetPatientByEmail(email string) (*models.Patient, error) {
	var patient models.Patient
	if err := b.doJSON("GET", "/patient/by-email/"+url.PathEscape(email), nil, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (b *BidCureClient) GetHospitals() ([]models.Hospital, error) {
	var hospitals []models.Hospital
	if err := b.doJSON("GET", "/hospitals/", nil, &hospitals); err != nil {
		return nil, err
	}
	return hospitals, nil
}

func (b *BidCureClient) GetHospital(id int) (*models.Hospital, error) {
	var hospital models.Hospital
	if err := b.doJSON("GET", "/hospitals/"+strconv.Itoa(id), nil, &hospital); err != nil {
		return nil, err
	}
	return &hospital, nil
}

func (b *BidCureClient) CreateHospital(payload models.CreateHospitalPayload) (*models.Hospital, error) {
	var hospital models.Hospital
	if err := b.doJSON("POST", "/hospitals/", payload, &hospital); err != nil {
		return nil, err
	}
	return &hospital, nil
}

func (b *BidCureClient) GetBids() ([]models.Bid, error) {
	var bids []models.Bid
	if err := b.doJSON("GET", "/bids/", nil, &bids); err != nil {
		return nil, err
	}
	return bids, nil
}

func (b *BidCureClient) GetBidsByEmail(email string) ([]models.Bid, error) {
	var bids []models.Bid
	if err := b.doJSON("GET", "/bids/by-email/"+url.PathEscape(email), nil, &bids); err != nil {
		return nil, err
	}
	return bids, nil
}

func (b *BidCureClient) CreateBid(payload models.CreateBidPayload) (*models.Bid, error) {
	var bid models.Bid
	if err := b.doJSON("POST", "/patient/create-bid", payload, &bid); err != nil {
		return nil, err
	}
	return &bid, nil
}

func (b *BidCureClient) ApproveBid(id int) (*models.Bid, error) {
	var bid models.Bid
	if err := b.doJSON("PATCH", fmt.Sprintf("/bids/%d/approve", id), nil, &bid); err != nil {
		return nil, err
	}
	return &bid, nil
}

func (b *BidCureClient) RejectBid(id int) (*models.Bid, error) {
	var bid models.Bid
	if err := b.doJSON("PATCH", fmt.Sprintf("/bids/%d/reject", id), nil, &bid); err != nil {
		return nil, err
	}
	return &bid, nil
}

// Ping hits the backend root endpoint, which answers with the app banner.
func (b *BidCureClient) Ping() error {
	return b.doJSON("GET", "/", nil, nil)
}

func (b *BidCureClient) doJSON(method, path string, payload, out interface{}) error {
	var reqBody io.Reader
	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		if err != nil {
			fmt.Printf("[Backend] Failed to marshal payload for %s %s: %v\n", method, path, err)
			return err
		}
		reqBody = bytes.NewBuffer(payloadBytes)
	}

	req, err := http.NewRequest(method, b.BaseURL+path, reqBody)
	if err != nil {
		fmt.Printf("[Backend] Failed to create request %s %s: %v\n", method, path, err)
		return err
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.Client.Do(req)
	if err != nil {
		fmt.Printf("[Backend] Request failed %s %s: %v\n", method, path, err)
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Printf("[Backend] Failed to read response for %s %s: %v\n", method, path, err)
		return err
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s %s", ErrNotFound, method, path)
	}
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		fmt.Printf("[Backend] %s %s returned %d: %s\n", method, path, resp.StatusCode, string(body))
		var detail struct {
			Detail string `json:"detail"`
		}
		json.Unmarshal(body, &detail)
		return &APIError{StatusCode: resp.StatusCode, Detail: detail.Detail}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		fmt.Printf("[Backend] %s %s returned %d: %s\n", method, path, resp.StatusCode, string(body))
		return fmt.Errorf("backend %s %s returned status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		fmt.Printf("[Backend] Failed to parse response for %s %s: %v\n", method, path, err)
		return fmt.Errorf("backend %s %s returned unexpected payload: %w", method, path, err)
	}

	return nil
}
