package handler

import (
	"errors"
	"fsdine_restaurant/constants"
	"fsdine_restaurant/helper"
	"fsdine_restaurant/model"
	"fsdine_restaurant/service"
	"fsdine_restaurant/utils"
	"net/url"

	"github.com/gofiber/fiber/v2"
)

const tableQRSize = 256

func (h *Handler) PlaceOrder(c *fiber.Ctx) error {
	input, ok := c.Locals("inputPlaceOrder").(model.PlaceOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse inputPlaceOrder fail"))
	}

	result, err := h.orders.PlaceOrder(c.UserContext(), input)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return utils.ValidationErrorResponse(c, validationErr.Errors)
		case errors.Is(err, service.ErrDuplicateOrder):
			return utils.FailResponse(c, fiber.StatusConflict, constants.ORDER_DUPLICATE)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ORDER_PLACE_FAILED, err)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, constants.ORDER_PLACED, result)
}

func (h *Handler) GetOrder(c *fiber.Ctx) error {
	orderNumber, err := url.PathUnescape(c.Params("orderNumber"))
	if err != nil {
		return utils.FailResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND)
	}

	detail, err := h.orders.GetWebOrder(c.UserContext(), orderNumber)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if detail == nil {
		return utils.FailResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "", detail)
}

func (h *Handler) ValidateTableNumber(c *fiber.Ctx) error {
	input, ok := c.Locals("inputValidateTable").(model.ValidateTableInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse inputValidateTable fail"))
	}
	return utils.TableValidationResponse(c, fiber.StatusOK, true, helper.IsValidTableIdentifier(input.TableNumber))
}

// TableQRCode renders a PNG that opens the web ordering page for the table.
func (h *Handler) TableQRCode(c *fiber.Ctx) error {
	raw, err := url.PathUnescape(c.Params("table"))
	if err != nil || !helper.IsValidTableIdentifier(raw) {
		return utils.TableValidationResponse(c, fiber.StatusUnprocessableEntity, true, false)
	}

	png, err := utils.TableQRCode(h.orderingURL, helper.NormalizeTable(raw), tableQRSize)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.QR_GENERATE_FAILED, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Status(fiber.StatusOK).Send(png)
}
