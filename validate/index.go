package validate

import (
	"errors"
	"strconv"

	"court_manager/constants"
	"court_manager/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// GetById rejects non-numeric path ids before the handler runs.
func GetById(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := strconv.ParseUint(c.Params(param), 10, 64); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_ID, errors.New("id must be a positive integer"))
		}
		return c.Next()
	}
}
