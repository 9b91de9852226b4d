package utils

import (
	"fsdine_restaurant/constants"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"error":   errMsg,
	})
}

// FailResponse is an error answer that carries no diagnostic detail.
func FailResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errs map[string][]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"success": false,
		"message": constants.VALIDATION_FAILED,
		"errors":  errs,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, message string, data any) error {
	body := fiber.Map{
		"success": true,
		"data":    data,
	}
	if message != "" {
		body["message"] = message
	}
	return c.Status(status).JSON(body)
}

func TableValidationResponse(c *fiber.Ctx, status int, success, valid bool) error {
	message := constants.TABLE_NUMBER_REQUIRED
	if success {
		message = constants.TABLE_NUMBER_INVALID
		if valid {
			message = constants.TABLE_NUMBER_VALID
		}
	}
	return c.Status(status).JSON(fiber.Map{
		"success": success,
		"valid":   valid,
		"message": message,
	})
}

func ApplyPagination(query *gorm.DB, limit, page *int) *gorm.DB {
	if limit != nil && *limit > 0 && page != nil && *page >= 1 {
		query = query.Limit(*limit)
		offset := *limit * (*page - 1)
		query = query.Offset(offset)
	}

	return query
}

func Ptr[T any](v T) *T {
	return &v
}
