package model

import "github.com/shopspring/decimal"

type MenuCategory struct {
	DTO
	Name         string     `gorm:"size:100;not null" json:"name"`
	Slug         string     `gorm:"size:120;not null;uniqueIndex" json:"slug"`
	Description  *string    `gorm:"type:text" json:"description"`
	DisplayOrder int        `gorm:"not null;default:0" json:"display_order"`
	Items        []MenuItem `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items,omitempty"`
}

type MenuItem struct {
	DTO
	CategoryID   uint            `gorm:"not null;index" json:"category_id"`
	Category     *MenuCategory   `json:"category,omitempty"`
	Name         string          `gorm:"size:150;not null" json:"name"`
	Description  *string         `gorm:"type:text" json:"description"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Image        *string         `json:"image"`
	DisplayOrder int             `gorm:"not null;default:0" json:"display_order"`
	IsAvailable  bool            `gorm:"not null;index" json:"is_available"`
}

type FilterMenuItem struct {
	CategoryID *uint `query:"category_id" json:"category_id"`
	Available  *bool `query:"available" json:"available"`
}
