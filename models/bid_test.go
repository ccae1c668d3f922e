package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestEncodeBudget(t *testing.T) {
	cases := []struct {
		min, max int
		want     string
		omitted  bool
	}{
		{100, 500, "100-500", false},
		{0, 500, "500", false},
		{100, 0, "100", false},
		{0, 0, "", true},
	}

	for _, tc := range cases {
		got := EncodeBudget(tc.min, tc.max)
		if tc.omitted {
			if got != nil {
				t.Errorf("EncodeBudget(%d, %d) = %q, want omitted", tc.min, tc.max, *got)
			}
			continue
		}
		if got == nil {
			t.Errorf("EncodeBudget(%d, %d) = nil, want %q", tc.min, tc.max, tc.want)
			continue
		}
		if *got != tc.want {
			t.Errorf("EncodeBudget(%d, %d) = %q, want %q", tc.min, tc.max, *got, tc.want)
		}
	}
}

func TestBuildBidPayloadOptionalFields(t *testing.T) {
	patient := Patient{ID: 12, Name: "Pat", EmailID: "pat@example.com"}
	balance := 25000.0

	payload := BuildBidPayload(patient, CreateBidRequest{
		MedicalConditions: "condition",
		SurgeryNeeded:     "surgery",
		Area:              "area",
		SurgeryDate:       "2026-10-01",
		HasInsurance:      "yes",
		InsuranceBalance:  &balance,
		MinBudget:         0,
		MaxBudget:         0,
		HospitalID:        4,
	})

	if payload.PatientID != 12 || payload.HospitalID != 4 {
		t.Fatalf("unexpected ids in payload: %+v", payload)
	}
	if payload.Insurance == nil || *payload.Insurance != "yes" {
		t.Errorf("expected insurance \"yes\", got %v", payload.Insurance)
	}
	if payload.InsuranceBalance == nil || *payload.InsuranceBalance != "25000" {
		t.Errorf("expected insurance balance \"25000\", got %v", payload.InsuranceBalance)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "budget") {
		t.Errorf("budget should be absent from the wire payload, got %s", data)
	}
}

func TestBidIsPending(t *testing.T) {
	if !(Bid{Status: BidPending}).IsPending() {
		t.Error("pending bid should be pending")
	}
	if !(Bid{}).IsPending() {
		t.Error("bid with empty status should count as pending")
	}
	if (Bid{Status: BidApproved}).IsPending() {
		t.Error("approved bid should not be pending")
	}
	if (Bid{Status: BidRejected}).IsPending() {
		t.Error("rejected bid should not be pending")
	}
}
