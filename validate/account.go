package validate

import (
	"fsdine_restaurant/model"
	"fsdine_restaurant/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func AdminLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AdminLoginInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ValidationErrorResponse(c, BodyErrors(err))
		}
		input.Email = strings.ToLower(strings.TrimSpace(input.Email))

		if errs := Struct(input); errs != nil {
			return utils.ValidationErrorResponse(c, errs)
		}

		c.Locals("inputAdminLogin", input)

		return c.Next()
	}
}
