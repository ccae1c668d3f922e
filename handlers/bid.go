package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/aarushinuvoai/Bid-For-Cure/config"
	"github.com/aarushinuvoai/Bid-For-Cure/models"
	"github.com/aarushinuvoai/Bid-For-Cure/services"
)

type BidHandler struct {
	backend services.BackendClient
	config  *config.Config

	// Bids with a decision in flight. Guards against a double-click firing
	// two approve/reject calls for the same bid; other bids stay actionable.
	mu         sync.Mutex
	processing map[int]bool
}

func NewBidHandler(backend services.BackendClient, cfg *config.Config) *BidHandler {
	return &BidHandler{
		backend:    backend,
		config:     cfg,
		processing: make(map[int]bool),
	}
}

// CreateBid validates the patient's form and forwards it to the backend.
// A missing hospital selection is rejected before any backend call.
func (h *BidHandler) CreateBid(c *gin.Context) {
	email, _ := c.Get("email")

	var req models.CreateBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "All medical and surgery fields are required",
		})
		return
	}

	if req.HospitalID <= 0 {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Please choose a hospital",
		})
		return
	}

	patient, err := h.backend.GetPatientByEmail(email.(string))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.Response{
				Success: false,
				Error:   "Patient information not loaded yet",
			})
			return
		}
		fmt.Printf("[Bid] Patient lookup error: %v\n", err)
		c.JSON(http.StatusBadGateway, models.Response{
			Success: false,
			Error:   "Could not load patient profile",
		})
		return
	}

	bid, err := h.backend.CreateBid(models.BuildBidPayload(*patient, req))
	if err != nil {
		fmt.Printf("[Bid] Create backend error: %v\n", err)
		c.JSON(http.StatusBadGateway, models.Response{
			Success: false,
			Error:   "Failed to create bid",
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Bid created successfully",
		Data:    bid,
	})
}

// GetMyBids lists the session patient's bids.
func (h *BidHandler) GetMyBids(c *gin.Context) {
	email, _ := c.Get("email")

	bids, err := h.backend.GetBidsByEmail(email.(string))
	if err != nil {
		fmt.Printf("[Bid] List by email error: %v\n", err)
		c.JSON(http.StatusBadGateway, models.Response{
			Success: false,
			Error:   "Could not load bids",
		})
		return
	}

	if bids == nil {
		bids = []models.Bid{}
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    bids,
	})
}

// GetBids lists bids for hospital review. The backend endpoint is
// unscoped; scoping is applied here only when configured.
func (h *BidHandler) GetBids(c *gin.Context) {
	bids, err := h.backend.GetBids()
	if err != nil {
		fmt.Printf("[Bid] List backend error: %v\n", err)
		c.JSON(http.StatusBadGateway, models.Response{
			Success: false,
			Error:   "Could not load bids",
		})
		return
	}

	bids = h.scopeBids(bids)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    bids,
	})
}

func (h *BidHandler) ApproveBid(c *gin.Context) {
	h.decideBid(c, models.BidApproved)
}

func (h *BidHandler) RejectBid(c *gin.Context) {
	h.decideBid(c, models.BidRejected)
}

func (h *BidHandler) decideBid(c *gin.Context, decision string) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid bid id",
		})
		return
	}

	if !h.tryLock(id) {
		c.JSON(http.StatusConflict, models.Response{
			Success: false,
			Error:   "A decision for this bid is already being processed",
		})
		return
	}
	defer h.unlock(id)

	var bid *models.Bid
	if decision == models.BidApproved {
		bid, err = h.backend.ApproveBid(id)
	} else {
		bid, err = h.backend.RejectBid(id)
	}

	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.Response{
				Success: false,
				Error:   "Bid not found",
			})
			return
		}
		fmt.Printf("[Bid] %s backend error: %v\n", decision, err)
		c.JSON(http.StatusBadGateway, models.Response{
			Success: false,
			Error:   fmt.Sprintf("Failed to %s bid", decisionVerb(decision)),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: fmt.Sprintf("Bid %s successfully", decision),
		Data:    bid,
	})
}

func (h *BidHandler) tryLock(id int) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.processing[id] {
		return false
	}
	h.processing[id] = true
	return true
}

func (h *BidHandler) unlock(id int) {
	h.mu.Lock()
	delete(h.processing, id)
	h.mu.Unlock()
}

func (h *BidHandler) scopeBids(bids []models.Bid) []models.Bid {
	if bids == nil {
		return []models.Bid{}
	}
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

func decisionVerb(decision string) string {
	if decision == models.BidApproved {
		return "approve"
	}
	return "reject"
}
