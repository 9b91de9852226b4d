package handler

import (
	"errors"
	"fsdine_restaurant/constants"
	"fsdine_restaurant/helper"
	"fsdine_restaurant/logger"
	"fsdine_restaurant/model"
	"fsdine_restaurant/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) AdminLogin(c *fiber.Ctx) error {
	input, ok := c.Locals("inputAdminLogin").(model.AdminLoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse inputAdminLogin fail"))
	}

	admin, err := h.staff.FindActiveByEmail(c.UserContext(), input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	// unknown email and wrong password answer the same
	if admin == nil || !helper.CheckPasswordHash(input.Password, admin.Password) {
		logger.FromContext(c.UserContext()).WithField("email", input.Email).Warn("admin login rejected")
		return utils.FailResponse(c, fiber.StatusUnauthorized, constants.LOGIN_FAILED)
	}

	tokenClaim := model.TokenClaim{
		AdminId: admin.ID,
		Email:   admin.Email,
		Role:    admin.Role,
	}
	token, expiresAt, err := helper.GenerateAccessToken(tokenClaim, h.jwtSecret, h.jwtLifetime)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return utils.SuccessResponse(c, fiber.StatusOK, constants.LOGIN_SUCCESS, model.TokenData{
		AccessToken: token,
		ExpiresAt:   expiresAt.UTC().Format(time.RFC3339),
	})
}
