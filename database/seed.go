package database

import (
	"fsdine_restaurant/constants"
	"fsdine_restaurant/helper"
	"fsdine_restaurant/logger"
	"fsdine_restaurant/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type seedCategory struct {
	name  string
	items []seedItem
}

type seedItem struct {
	name  string
	price string
}

var demoMenu = []seedCategory{
	{name: "Starters", items: []seedItem{
		{name: "Garlic Bread", price: "4.50"},
		{name: "Chicken Wings", price: "8.95"},
	}},
	{name: "Mains", items: []seedItem{
		{name: "Classic Burger", price: "12.50"},
		{name: "Grilled Salmon", price: "18.00"},
		{name: "Margherita Pizza", price: "11.00"},
	}},
	{name: "Sides", items: []seedItem{
		{name: "Fries", price: "3.50"},
		{name: "Side Salad", price: "4.00"},
	}},
	{name: "Drinks & Desserts", items: []seedItem{
		{name: "Soda", price: "2.50"},
		{name: "Chocolate Cake", price: "6.50"},
	}},
}

// SeedData creates a demo menu and an expo admin. Existing rows are kept.
func SeedData(db *gorm.DB, adminEmail, adminPassword string) error {
	hash, err := helper.HashPassword(adminPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash admin password")
	}

	admin := model.Admin{
		Name:                 "Expo Station",
		Email:                adminEmail,
		Password:             hash,
		Role:                 constants.ROLE_EXPO,
		Status:               constants.ADMIN_STATUS_ACTIVE,
		NotificationsEnabled: true,
	}
	if err := db.Where(model.Admin{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
		return errors.Wrapf(err, "failed to seed admin %s", admin.Email)
	}

	for i, category := range demoMenu {
		err := db.Transaction(func(tx *gorm.DB) error {
			var existing model.MenuCategory
			err := tx.Where("name = ?", category.name).First(&existing).Error
			if err == nil {
				return nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			slug, err := helper.GenerateUniqueCategorySlug(tx, category.name)
			if err != nil {
				return err
			}
			newCategory := model.MenuCategory{Name: category.name, Slug: slug, DisplayOrder: i + 1}
			if err := tx.Create(&newCategory).Error; err != nil {
				return err
			}

			for j, item := range category.items {
				menuItem := model.MenuItem{
					CategoryID:   newCategory.ID,
					Name:         item.name,
					Price:        decimal.RequireFromString(item.price),
					DisplayOrder: j + 1,
					IsAvailable:  true,
				}
				if err := tx.Create(&menuItem).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return errors.Wrapf(err, "failed to seed menu category %s", category.name)
		}
	}

	logger.Get().Info("seed data ready")
	return nil
}
