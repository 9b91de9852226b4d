package middleware

import (
	"errors"
	"fsdine_restaurant/constants"
	"fsdine_restaurant/helper"
	"fsdine_restaurant/logger"
	"fsdine_restaurant/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// Protected accepts a staff token from the access_token cookie or an
// Authorization bearer header and stores its claim in Locals("admin").
func Protected(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			auth := c.Get(fiber.HeaderAuthorization)
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, errors.New("no token"))
		}

		jwtToken, err := helper.ParseToken(token, secret)
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
		}

		claim, err := helper.ClaimFromToken(jwtToken)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
		}

		c.Locals("admin", claim)
		return c.Next()
	}
}

// RequestContext copies the request id issued by the requestid middleware
// into the user context so stores and services can log it.
func RequestContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
		if id == "" {
			id = c.GetRespHeader(fiber.HeaderXRequestID)
		}
		c.SetUserContext(logger.WithRequestID(c.UserContext(), id))
		return c.Next()
	}
}
