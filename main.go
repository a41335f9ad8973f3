package main

import (
	"log"

	"court_manager/config"
	"court_manager/database"
	"court_manager/handler"
	"court_manager/repository"
	"court_manager/router"
	"court_manager/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:3000",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Authorization, Accept",
	}))

	db, err := database.Connect()
	if err != nil {
		log.Fatal(err)
	}

	customerSvc := service.NewCustomerSvc(repository.NewCustomerRepo(db))
	courtSvc := service.NewCourtSvc(repository.NewCourtRepo(db))
	rentalSvc := service.NewRentalSvc(repository.NewRentalRepo(db))

	router.SetupRoutes(
		app,
		handler.NewCustomerHandler(customerSvc),
		handler.NewCourtHandler(courtSvc),
		handler.NewRentalHandler(rentalSvc),
	)

	port := config.Config("APP_PORT")
	if port == "" {
		port = "4567"
	}
	log.Fatal(app.Listen(":" + port))
}
