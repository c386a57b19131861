package main

import (
	"fmt"
	"log"
	"os"

	"salonbook-backend/config"
	"salonbook-backend/controllers"
	"salonbook-backend/models"
	"salonbook-backend/routes"
	"salonbook-backend/services"

	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Salon{},
		&models.User{},
		&models.Customer{},
		&models.Employee{},
		&models.AvailabilityRule{},
		&models.TimeBlock{},
		&models.Service{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Booking{},
		&models.Appointment{},
		&models.CancelPolicy{},
		&models.NoShowPolicy{},
		&models.LoyaltyProgram{},
		&models.LoyaltyAccount{},
		&models.AuditLog{},
	)

	controllers.InitServices(config.DB)
}

func main() {

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	sweeper := services.NewNoShowSweeper(config.DB, controllers.BookingService())
	sweeper.StartScheduler()

	r := routes.SetupRouter()

	fmt.Printf("Server running on port %s\n", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
