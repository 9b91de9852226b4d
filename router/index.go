package router

import (
	"fsdine_restaurant/handler"
	"fsdine_restaurant/middleware"
	"fsdine_restaurant/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App, h *handler.Handler, jwtSecret string) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")

	customer := v1.Group("/customer")
	customer.Post("/orders", validate.PlaceOrder(), h.PlaceOrder)
	customer.Get("/orders/:orderNumber", h.GetOrder)
	customer.Post("/validate-table", validate.ValidateTable(), h.ValidateTableNumber)

	tables := v1.Group("/tables")
	tables.Get("/:table/qr", h.TableQRCode)

	menu := v1.Group("/menu")
	menu.Get("/categories", h.GetMenuCategories)
	menu.Get("/categories/:slug", h.GetMenuCategoryBySlug)
	menu.Get("/items", h.GetMenuItems)
	menu.Get("/items/:itemId", validate.GetById("itemId"), h.GetMenuItemById)

	admin := v1.Group("/admin")
	admin.Post("/login", validate.AdminLogin(), h.AdminLogin)
	admin.Get("/notifications", middleware.Protected(jwtSecret), h.GetNotifications)
}
