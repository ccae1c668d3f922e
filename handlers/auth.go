package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/aarushinuvoai/Bid-For-Cure/config"
	"github.com/aarushinuvoai/Bid-For-Cure/middleware"
	"github.com/aarushinuvoai/Bid-For-Cure/models"
	"github.com/aarushinuvoai/Bid-For-Cure/services"
)

const (
	RoleSuperadmin = "superadmin"
	RolePatient    = "patient"
	RoleHospital   = "hospital"

	sessionMaxAge = 86400
)

type AuthHandler struct {
	backend services.BackendClient
	config  *config.Config
}

func NewAuthHandler(backend services.BackendClient, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		backend: backend,
		config:  cfg,
	}
}

// SuperadminLogin proxies credentials to the backend and opens a session
// only when it answers status "success".
func (h *AuthHandler) SuperadminLogin(c *gin.Context) {
	var req models.SuperadminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	result, err := h.backend.SuperadminLogin(req.Email, req.Passwd)
	if err != nil {
		var apiErr *services.APIError
		if errors.As(err, &apiErr) {
			c.JSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Error:   "Invalid superadmin credentials",
			})
			return
		}
		fmt.Printf("[Auth] Superadmin login backend error: %v\n", err)
		c.JSON(http.StatusBadGateway, models.Response{
			Success: false,
			Error:   "Login service unavailable",
		})
		return
	}

	if result.Status != "success" {
		c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Error:   "Invalid superadmin credentials",
		})
		return
	}

	h.openSession(c, req.Email, RoleSuperadmin, "SuperAdmin")
}

// PatientSignup registers the patient upstream and opens their session, the
// way the signup page stored the email and went straight to the dashboard.
func (h *AuthHandler) PatientSignup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	result, err := h.backend.PatientSignup(req)
	if err != nil {
		var apiErr *services.APIError
		if errors.As(err, &apiErr) {
			msg := apiErr.Detail
			if msg == "" {
				msg = "Signup failed"
			}
			c.JSON(http.StatusBadRequest, models.Response{
				Success: false,
				Error:   msg,
			})
			return
		}
		fmt.Printf("[Auth] Signup backend error: %v\n", err)
		c.JSON(http.StatusBadGateway, models.Response{
			Success: false,
			Error:   "Signup service unavailable",
		})
		return
	}

	if result.Status != "success" {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   result.Message,
		})
		return
	}

	name := req.Name
	if result.Patient != nil {
		name = result.Patient.Name
	}
	h.openSession(c, req.EmailID, RolePatient, name)
}

func (h *AuthHandler) PatientLogin(c *gin.Context) {
	var req models.PatientLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	result, err := h.backend.PatientLogin(req.EmailID, req.Passwd)
	if err != nil {
		var apiErr *services.APIError
		if errors.As(err, &apiErr) {
			c.JSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Error:   "Invalid email or password",
			})
			return
		}
		fmt.Printf("[Auth] Patient login backend error: %v\n", err)
		c.JSON(http.StatusBadGateway, models.Response{
			Success: false,
			Error:   "Login service unavailable",
		})
		return
	}

	if result.Status != "success" {
		c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Error:   "Invalid email or password",
		})
		return
	}

	name := ""
	if result.Patient != nil {
		name = result.Patient.Name
	}
	h.openSession(c, req.EmailID, RolePatient, name)
}

// HospitalLogin opens a hospital operator session. The backend keeps no
// hospital credentials; the operator's identity is the hospital directory
// entry shown on their dashboard.
func (h *AuthHandler) HospitalLogin(c *gin.Context) {
	var req models.SuperadminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	h.openSession(c, req.Email, RoleHospital, "")
}

// Logout clears the session cookie. The backend keeps no session state, so
// there is nothing to invalidate upstream.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Logged out successfully",
	})
}

// GetMe resolves the session email to the patient record.
func (h *AuthHandler) GetMe(c *gin.Context) {
	email, _ := c.Get("email")

	patient, err := h.backend.GetPatientByEmail(email.(string))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.Response{
				Success: false,
				Error:   "Patient not found",
			})
			return
		}
		fmt.Printf("[Auth] GetMe backend error: %v\n", err)
		c.JSON(http.StatusBadGateway, models.Response{
			Success: false,
			Error:   "Could not load patient profile",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    patient,
	})
}

func (h *AuthHandler) openSession(c *gin.Context, email, role, name string) {
	token, err := h.generateToken(email, role, name)
	if err != nil {
		fmt.Printf("[Auth] JWT generation error: %v\n", err)
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to generate token",
		})
		return
	}

	c.SetCookie("token", token, sessionMaxAge, "/", "", false, true)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Login successful",
		Data: models.SessionResponse{
			Token: token,
			Email: email,
			Role:  role,
			Name:  name,
		},
	})
}

func (h *AuthHandler) generateToken(email, role, name string) (string, error) {
	claims := middleware.Claims{
		Email: email,
		Role:  role,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
