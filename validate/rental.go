package validate

import (
	"fmt"

	"court_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateRental() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateRentalInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("cannot parse request body: %s", err.Error()),
			})
		}
		if err := validate.Struct(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		c.Locals("CreateRental", input)
		return c.Next()
	}
}

func EditRental() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditRentalInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("cannot parse request body: %s", err.Error()),
			})
		}
		if err := validate.Struct(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		c.Locals("EditRental", input)
		return c.Next()
	}
}
