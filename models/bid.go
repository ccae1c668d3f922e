package models

import "strconv"

const (
	BidPending  = "pending"
	BidApproved = "approved"
	BidRejected = "rejected"
)

type Bid struct {
	ID                int     `json:"id"`
	PatientID         int     `json:"patient_id"`
	MedicalConditions string  `json:"medical_conditions"`
	SurgeryNeeded     string  `json:"surgery_needed"`
	SurgeryArea       string  `json:"surgery_area"`
	SurgeryDate       string  `json:"surgery_date"`
	HospitalID        int     `json:"hospital_id"`
	Insurance         *string `json:"insurance,omitempty"`
	InsuranceBalance  *string `json:"insurance_balance,omitempty"`
	Budget            *string `json:"budget,omitempty"`
	Status            string  `json:"status"`
}

// IsPending reports whether approve/reject actions are still available.
// The backend may omit status on freshly created rows, which counts as
// pending.
func (b Bid) IsPending() bool {
	return b.Status == "" || b.Status == BidPending
}

// CreateBidRequest is the patient-facing form. HospitalID is validated in
// the handler so a missing selection can be reported without touching the
// backend.
type CreateBidRequest struct {
	MedicalConditions string   `json:"medical_conditions" binding:"required"`
	SurgeryNeeded     string   `json:"surgery_needed" binding:"required"`
	Area              string   `json:"area" binding:"required"`
	SurgeryDate       string   `json:"surgery_date" binding:"required"`
	HasInsurance      string   `json:"has_insurance" binding:"omitempty,oneof=yes no"`
	InsuranceBalance  *float64 `json:"insurance_balance,omitempty"`
	MinBudget         int      `json:"min_budget"`
	MaxBudget         int      `json:"max_budget"`
	HospitalID        int      `json:"hospital_id"`
}

// CreateBidPayload is the backend wire format. Optional fields are pointers
// so they are dropped from the JSON entirely when absent.
type CreateBidPayload struct {
	PatientID         int     `json:"patient_id"`
	MedicalConditions string  `json:"medical_conditions"`
	SurgeryNeeded     string  `json:"surgery_needed"`
	SurgeryArea       string  `json:"surgery_area"`
	SurgeryDate       string  `json:"surgery_date"`
	HospitalID        int     `json:"hospital_id"`
	Insurance         *string `json:"insurance,omitempty"`
	InsuranceBalance  *string `json:"insurance_balance,omitempty"`
	Budget            *string `json:"budget,omitempty"`
}

// EncodeBudget renders the min/max pair the way the patient form does:
// "min-max" when both are positive, the single positive bound otherwise,
// nil when neither is set.
func EncodeBudget(min, max int) *string {
	var s string
	switch {
	case min > 0 && max > 0:
		s = strconv.Itoa(min) + "-" + strconv.Itoa(max)
	case max > 0:
		s = strconv.Itoa(max)
	case min > 0:
		s = strconv.Itoa(min)
	default:
		return nil
	}
	return &s
}

// BuildBidPayload assembles the backend payload from the form and the
// resolved patient record.
func BuildBidPayload(patient Patient, req CreateBidRequest) CreateBidPayload {
	payload := CreateBidPayload{
		PatientID:         patient.ID,
		MedicalConditions: req.MedicalConditions,
		SurgeryNeeded:     req.SurgeryNeeded,
		SurgeryArea:       req.Area,
		SurgeryDate:       req.SurgeryDate,
		HospitalID:        req.HospitalID,
		Budget:            EncodeBudget(req.MinBudget, req.MaxBudget),
	}

	if req.HasInsurance != "" {
		insurance := req.HasInsurance
		payload.Insurance = &insurance
	}

	if req.InsuranceBalance != nil {
		balance := strconv.FormatFloat(*req.InsuranceBalance, 'f', -1, 64)
		payload.InsuranceBalance = &balance
	}

	return payload
}
