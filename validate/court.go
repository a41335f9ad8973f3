package validate

import (
	"fmt"

	"court_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateCourt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCourtInput
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
		c.Locals("CreateCourt", input)
		return c.Next()
	}
}

func EditCourt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditCourtInput
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
		c.Locals("EditCourt", input)
		return c.Next()
	}
}
