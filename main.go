package main

import (
	"log"

	"staffmis_backend/config"
	"staffmis_backend/middleware"
	"staffmis_backend/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if middleware.ConnectDB() {
		log.Fatal("Database connection failed:", middleware.DBErr)
	}
	if err := middleware.SeedDefaults(); err != nil {
		log.Fatal("Database seeding failed:", err)
	}

	config.InitializeFirebase()

	app := fiber.New(fiber.Config{
		AppName: middleware.GetEnv("PROJ_NAME", "Staff MIS API"),
	})
	app.Use(logger.New())
	app.Use(cors.New())

	routes.AppRoutes(app)

	port := middleware.GetEnv("API_PORT", "3000")
	log.Fatal(app.Listen(":" + port))
}
