package handler

import (
	"errors"
	"fsdine_restaurant/constants"
	"fsdine_restaurant/helper"
	"fsdine_restaurant/model"
	"fsdine_restaurant/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetNotifications(c *fiber.Ctx) error {
	claim, ok := helper.GetAdminClaim(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, errors.New("no admin claim"))
	}

	filterInput := new(model.FilterNotification)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	notifications, totalCount, err := h.notifications.ListForAdmin(c.UserContext(), claim.AdminId, *filterInput)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.NOTIFICATION_LOAD_FAILED, err)
	}

	response := &model.ResponseCustom{
		Rows:       notifications,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "", response)
}
