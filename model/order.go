package model

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// TableOrder is one placed order. (order_number, submission_source) is
// unique so a retried submission can never create a second row.
type TableOrder struct {
	DTO
	OrderNumber      string                         `gorm:"size:50;not null;uniqueIndex:ux_table_orders_number_source,priority:1" json:"order_number"`
	SubmissionSource string                         `gorm:"size:50;not null;default:'admin_manual';uniqueIndex:ux_table_orders_number_source,priority:2" json:"submission_source"`
	UniqueIdentifier string                         `gorm:"size:191;index" json:"unique_identifier"`
	MappingID        uint                           `gorm:"not null;uniqueIndex" json:"mapping_id"`
	Mapping          *TableMapping                  `gorm:"foreignKey:MappingID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"mapping,omitempty"`
	TableNumber      string                         `gorm:"size:50;not null;index" json:"table_number"`
	Area             string                         `gorm:"size:20" json:"area"`
	CustomerName     string                         `gorm:"size:100" json:"customer_name"`
	Status           string                         `gorm:"size:20;not null;index" json:"status"`
	OrderItems       datatypes.JSONSlice[OrderItem] `json:"order_items"`
	OrderNotes       *string                        `gorm:"type:text" json:"order_notes"`
	TotalAmount      decimal.Decimal                `gorm:"type:decimal(10,2);not null" json:"total_amount"`
}

// OrderItem is the line item snapshot stored with the order; name and price
// are copied at submission time so later menu edits do not rewrite history.
type OrderItem struct {
	MenuItemID int     `json:"menu_item_id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	Notes      *string `json:"notes,omitempty"`
}

type OrderItemInput struct {
	MenuItemID *int     `json:"menu_item_id" validate:"required"`
	Name       string   `json:"name" validate:"required,notblank"`
	Quantity   *int     `json:"quantity" validate:"required,min=1"`
	Price      *float64 `json:"price" validate:"required,min=0"`
	Notes      *string  `json:"notes"`
}

type PlaceOrderInput struct {
	TableNumber string           `json:"table_number" validate:"required,notblank,max=50"`
	OrderNumber string           `json:"order_number" validate:"required,notblank,max=50"`
	Items       []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	Notes       *string          `json:"notes" validate:"omitempty,max=1000"`
	TotalAmount *float64         `json:"total_amount" validate:"required,min=0"`
}

type PlaceOrderResult struct {
	OrderID     uint   `json:"order_id"`
	OrderNumber string `json:"order_number"`
	TableNumber string `json:"table_number"`
	Status      string `json:"status"`
	ItemsCount  int    `json:"items_count"`
	TotalAmount string `json:"total_amount"`
	CreatedAt   string `json:"created_at"`
}

type OrderDetail struct {
	PlaceOrderResult
	Area  string      `json:"area"`
	Notes *string     `json:"notes"`
	Items []OrderItem `json:"items"`
}

type ValidateTableInput struct {
	TableNumber string `json:"table_number" validate:"required,notblank"`
}
