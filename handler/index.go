package handler

import (
	"fsdine_restaurant/config"
	"fsdine_restaurant/database"
	"fsdine_restaurant/service"
	"time"

	"gorm.io/gorm"
)

type Handler struct {
	orders        *service.OrderService
	menu          *database.MenuStore
	notifications *database.NotificationStore
	staff         *database.StaffStore

	jwtSecret   string
	jwtLifetime time.Duration
	orderingURL string
}

func New(db *gorm.DB, orders *service.OrderService, cfg *config.Config) *Handler {
	return &Handler{
		orders:        orders,
		menu:          database.NewMenuStore(db),
		notifications: database.NewNotificationStore(db),
		staff:         database.NewStaffStore(db),
		jwtSecret:     cfg.JWTSecret,
		jwtLifetime:   cfg.JWTLifetime,
		orderingURL:   cfg.OrderingURL,
	}
}
