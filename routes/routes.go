package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/aarushinuvoai/Bid-For-Cure/config"
	"github.com/aarushinuvoai/Bid-For-Cure/handlers"
	"github.com/aarushinuvoai/Bid-For-Cure/middleware"
	"github.com/aarushinuvoai/Bid-For-Cure/services"
)

func SetupRoutes(router *gin.Engine, backend services.BackendClient, cfg *config.Config, monitor *services.BackendMonitor) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(backend, cfg)
	hospitalHandler := handlers.NewHospitalHandler(backend, cfg)
	bidHandler := handlers.NewBidHandler(backend, cfg)
	dashboardHandler := handlers.NewDashboardHandler(backend, cfg)
	chatHandler := handlers.NewChatHandler()

	// Health check, including the last backend probe result
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"success": true,
			"message": "Server is running",
			"backend": monitor.Status(),
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", authHandler.PatientSignup)
			auth.POST("/login", authHandler.PatientLogin)
			auth.POST("/superadmin/login", authHandler.SuperadminLogin)
			auth.POST("/hospital/login", authHandler.HospitalLogin)
			auth.POST("/logout", authHandler.Logout)
		}

		// Public routes - hospital directory browsing needs no session
		v1.GET("/hospitals", hospitalHandler.GetHospitals)
		v1.GET("/hospitals/:id", hospitalHandler.GetHospitalByID)

		// Protected routes
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.GET("/auth/me", authHandler.GetMe)

			// Chat assistant (any signed-in role)
			chat := protected.Group("/chat")
			{
				chat.GET("/messages", chatHandler.GetMessages)
				chat.POST("/messages", chatHandler.SendMessage)
				chat.DELETE("/messages", chatHandler.ResetConversation)
			}

			// Patient routes
			patient := protected.Group("")
			patient.Use(middleware.RoleMiddleware(handlers.RolePatient))
			{
				patient.POST("/bids", bidHandler.CreateBid)
				patient.GET("/bids/my", bidHandler.GetMyBids)
				patient.GET("/patient/dashboard", dashboardHandler.GetPatientDashboard)
			}

			// Hospital routes
			hospital := protected.Group("")
			hospital.Use(middleware.RoleMiddleware(handlers.RoleHospital, handlers.RoleSuperadmin))
			{
				hospital.GET("/bids", bidHandler.GetBids)
				hospital.PATCH("/bids/:id/approve", bidHandler.ApproveBid)
				hospital.PATCH("/bids/:id/reject", bidHandler.RejectBid)
				hospital.GET("/hospital/dashboard", dashboardHandler.GetHospitalDashboard)
			}

			// Superadmin routes
			admin := protected.Group("")
			admin.Use(middleware.RoleMiddleware(handlers.RoleSuperadmin))
			{
				admin.POST("/hospitals", hospitalHandler.CreateHospital)
				admin.GET("/admin/dashboard", dashboardHandler.GetAdminDashboard)
			}
		}
	}
}
