package router

import (
	"court_manager/handler"
	"court_manager/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App, customerHandler *handler.CustomerHandler, courtHandler *handler.CourtHandler, rentalHandler *handler.RentalHandler) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")

	customer := v1.Group("/customer")
	customer.Get("/", customerHandler.GetCustomers)
	customer.Get("/:customerId", validate.GetById("customerId"), customerHandler.GetCustomerById)
	customer.Post("/", validate.CreateCustomer(), customerHandler.CreateCustomer)
	customer.Put("/:customerId", validate.GetById("customerId"), validate.EditCustomer(), customerHandler.EditCustomer)
	customer.Delete("/:customerId", validate.GetById("customerId"), customerHandler.DeleteCustomer)

	court := v1.Group("/court")
	court.Get("/", courtHandler.GetCourts)
	court.Get("/:courtId", validate.GetById("courtId"), courtHandler.GetCourtById)
	court.Post("/", validate.CreateCourt(), courtHandler.CreateCourt)
	court.Put("/:courtId", validate.GetById("courtId"), validate.EditCourt(), courtHandler.EditCourt)
	court.Delete("/:courtId", validate.GetById("courtId"), courtHandler.DeleteCourt)

	rental := v1.Group("/rental")
	rental.Get("/", rentalHandler.GetRentals)
	rental.Get("/court/:courtId", validate.GetById("courtId"), rentalHandler.GetRentalsByCourtId)
	rental.Get("/:rentalId", validate.GetById("rentalId"), rentalHandler.GetRentalById)
	rental.Post("/", validate.CreateRental(), rentalHandler.CreateRental)
	rental.Put("/:rentalId", validate.GetById("rentalId"), validate.EditRental(), rentalHandler.EditRental)
	rental.Delete("/:rentalId", validate.GetById("rentalId"), rentalHandler.DeleteRental)
}
