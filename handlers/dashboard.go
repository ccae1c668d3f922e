package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aarushinuvoai/Bid-For-Cure/config"
	"github.com/aarushinuvoai/Bid-For-Cure/models"
	"github.com/aarushinuvoai/Bid-For-Cure/services"
)

type DashboardHandler struct {
	backend services.BackendClient
	config  *config.Config
}

func NewDashboardHandler(backend services.BackendClient, cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{
		backend: backend,
		config:  cfg,
	}
}

// GetPatientDashboard aggregates everything the patient page renders.
// Sub-fetch failures degrade to empty lists rather than failing the page.
func (h *DashboardHandler) GetPatientDashboard(c *gin.Context) {
	email, _ := c.Get("email")

	dashboard := models.PatientDashboard{
		Bids:      []models.Bid{},
		Hospitals: []models.Hospital{},
	}

	patient, err := h.backend.GetPatientByEmail(email.(string))
	if err != nil {
		fmt.Printf("[Dashboard] Patient lookup error: %v\n", err)
	} else {
		dashboard.Patient = patient
	}

	bids, err := h.backend.GetBidsByEmail(email.(string))
	if err != nil {
		fmt.Printf("[Dashboard] Bids fetch error: %v\n", err)
	} else if bids != nil {
		dashboard.Bids = bids
	}

	hospitals, err := h.backend.GetHospitals()
	if err != nil {
		fmt.Printf("[Dashboard] Hospitals fetch error: %v\n", err)
	} else if hospitals != nil {
		dashboard.Hospitals = hospitals
	}

	// Recommendations are shown only once the patient has at least one bid.
	if len(dashboard.Bids) > 0 {
		limit := 3
		if len(dashboard.Hospitals) < limit {
			limit = len(dashboard.Hospitals)
		}
		dashboard.Recommended = dashboard.Hospitals[:limit]
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    dashboard,
	})
}

// GetHospitalDashboard returns the operator's directory identity and the
// bids awaiting review.
func (h *DashboardHandler) GetHospitalDashboard(c *gin.Context) {
	dashboard := models.HospitalDashboard{
		Bids: []models.Bid{},
	}

	hospitals, err := h.backend.GetHospitals()
	if err != nil {
		fmt.Printf("[Dashboard] Hospitals fetch error: %v\n", err)
	} else {
		dashboard.Hospital = h.resolveHospital(hospitals)
	}

	bids, err := h.backend.GetBids()
	if err != nil {
		fmt.Printf("[Dashboard] Bids fetch error: %v\n", err)
	} else if bids != nil {
		dashboard.Bids = h.scopeBids(bids)
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    dashboard,
	})
}

func (h *DashboardHandler) GetAdminDashboard(c *gin.Context) {
	hospitals, err := h.backend.GetHospitals()
	if err != nil {
		fmt.Printf("[Dashboard] Hospitals fetch error: %v\n", err)
		hospitals = []models.Hospital{}
	}
	if hospitals == nil {
		hospitals = []models.Hospital{}
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data: models.AdminDashboard{
			Hospitals: hospitals,
		},
	})
}

// resolveHospital picks the operator's directory entry: the configured one
// when scoping is on, otherwise the first entry (single-hospital
// deployment).
func (h *DashboardHandler) resolveHospital(hospitals []models.Hospital) *models.Hospital {
	if len(hospitals) == 0 {
		return nil
	}

	if h.config.ScopeBidsToHospital && h.config.HospitalID != 0 {
		for i := range hospitals {
			if hospitals[i].ID == h.config.HospitalID {
				return &hospitals[i]
			}
		}
		return nil
	}

	return &hospitals[0]
}

func (h *DashboardHandler) scopeBids(bids []models.Bid) []models.Bid {
	if !h.config.ScopeBidsToHospital || h.config.HospitalID == 0 {
		return bids
	}

	scoped := make([]models.Bid, 0, len(bids))
	for _, bid := range bids {
		if bid.HospitalID == h.config.HospitalID {
			scoped = append(scoped, bid)
		}
	}
	return scoped
}
