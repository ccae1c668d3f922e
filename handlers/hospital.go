package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aarushinuvoai/Bid-For-Cure/config"
	"github.com/aarushinuvoai/Bid-For-Cure/models"
	"github.com/aarushinuvoai/Bid-For-Cure/services"
)

type HospitalHandler struct {
	backend services.BackendClient
	config  *config.Config
}

func NewHospitalHandler(backend services.BackendClient, cfg *config.Config) *HospitalHandler {
	return &HospitalHandler{
		backend: backend,
		config:  cfg,
	}
}

func (h *HospitalHandler) GetHospitals(c *gin.Context) {
	hospitals, err := h.backend.GetHospitals()
	if err != nil {
		fmt.Printf("[Hospital] List backend error: %v\n", err)
		c.JSON(http.StatusBadGateway, models.Response{
			Success: false,
			Error:   "Could not load hospitals",
		})
		return
	}

	if hospitals == nil {
		hospitals = []models.Hospital{}
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    hospitals,
	})
}

func (h *HospitalHandler) GetHospitalByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid hospital id",
		})
		return
	}

	hospital, err := h.backend.GetHospital(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.Response{
				Success: false,
				Error:   "Hospital not found",
			})
			return
		}
		fmt.Printf("[Hospital] Get backend error: %v\n", err)
		c.JSON(http.StatusBadGateway, models.Response{
			Success: false,
			Error:   "Could not load hospital",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    hospital,
	})
}

// CreateHospital adds a directory entry. Name and address are required;
// quote is always forwarded empty, matching the admin dashboard form.
func (h *HospitalHandler) CreateHospital(c *gin.Context) {
	var req models.CreateHospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Hospital name and address are required",
		})
		return
	}

	hospital, err := h.backend.CreateHospital(models.CreateHospitalPayload{
		Name:    req.Name,
		Address: req.Address,
		Quote:   "",
	})
	if err != nil {
		fmt.Printf("[Hospital] Create backend error: %v\n", err)
		c.JSON(http.StatusBadGateway, models.Response{
			Success: false,
			Error:   "Failed to create hospital",
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Hospital created successfully",
		Data:    hospital,
	})
}
