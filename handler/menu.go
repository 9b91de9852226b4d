package handler

import (
	"errors"
	"fsdine_restaurant/constants"
	"fsdine_restaurant/model"
	"fsdine_restaurant/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetMenuCategories(c *fiber.Ctx) error {
	categories, err := h.menu.ListCategories(c.UserContext())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.MENU_LOAD_FAILED, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "", categories)
}

func (h *Handler) GetMenuCategoryBySlug(c *fiber.Ctx) error {
	category, err := h.menu.FindCategoryBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.MENU_LOAD_FAILED, err)
	}
	if category == nil {
		return utils.FailResponse(c, fiber.StatusNotFound, constants.MENU_CATEGORY_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "", category)
}

func (h *Handler) GetMenuItems(c *fiber.Ctx) error {
	filterInput := new(model.FilterMenuItem)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	items, err := h.menu.ListItems(c.UserContext(), *filterInput)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.MENU_LOAD_FAILED, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "", items)
}

func (h *Handler) GetMenuItemById(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse inputId fail"))
	}

	item, err := h.menu.FindItem(c.UserContext(), id)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.MENU_LOAD_FAILED, err)
	}
	if item == nil {
		return utils.FailResponse(c, fiber.StatusNotFound, constants.MENU_ITEM_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "", item)
}
