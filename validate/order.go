package validate

import (
	"fsdine_restaurant/helper"
	"fsdine_restaurant/model"
	"fsdine_restaurant/utils"

	"github.com/gofiber/fiber/v2"
)

func PlaceOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.PlaceOrderInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ValidationErrorResponse(c, BodyErrors(err))
		}
		helper.TrimOrderInput(&input)

		if errs := Struct(input); errs != nil {
			return utils.ValidationErrorResponse(c, errs)
		}

		c.Locals("inputPlaceOrder", input)

		return c.Next()
	}
}

// ValidateTable answers missing table numbers itself because the endpoint
// reports validity in its own shape rather than a field error map.
func ValidateTable() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ValidateTableInput

		if err := c.BodyParser(&input); err != nil || Struct(input) != nil {
			return utils.TableValidationResponse(c, fiber.StatusUnprocessableEntity, false, false)
		}

		c.Locals("inputValidateTable", input)

		return c.Next()
	}
}
