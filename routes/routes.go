package routes

import (
	"salonbook-backend/config"
	"salonbook-backend/controllers"
	"salonbook-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Catalog and directory (read-only collaborators)
		salons := api.Group("/salons")
		{
			salons.GET("/:id/services", controllers.GetSalonServices)
			salons.GET("/:id/employees", controllers.GetSalonEmployees)
		}

		// Availability
		employees := api.Group("/employees")
		{
			employees.GET("/:id/availability", controllers.GetEmployeeAvailability)
			employees.GET("/:id/available-times", controllers.GetAvailableTimes)
			employees.POST("/:id/availability", controllers.CreateAvailabilityRule)
		}
		api.POST("/time-blocks", controllers.CreateTimeBlock)

		// Cart and checkout
		cart := api.Group("/cart")
		{
			cart.POST("/add-service", controllers.AddServiceToCart)
		}
		api.POST("/checkout", controllers.Checkout)

		// Booking lifecycle
		api.POST("/bookings", controllers.CreateBooking)
		appointments := api.Group("/appointments")
		{
			appointments.PUT("/:id/cancel", controllers.CancelAppointment)
			appointments.PUT("/:id/no-show", controllers.MarkNoShow)
			appointments.PUT("/:id/complete", controllers.CompleteAppointment)
			appointments.GET("/customer/:id/upcoming", controllers.GetUpcomingAppointments)
			appointments.GET("/customer/:id/previous", controllers.GetPreviousAppointments)
		}

		// Loyalty and audit (read-only)
		api.GET("/loyalty/balance", controllers.GetLoyaltyBalance)
		api.GET("/audit", controllers.GetAuditTrail)
	}

	return r
}
