package model

import "gorm.io/datatypes"

type NotificationData struct {
	OrderID     uint   `json:"order_id"`
	ItemsCount  int    `json:"items_count"`
	TotalAmount string `json:"total_amount"`
	Source      string `json:"source"`
}

type TableNotification struct {
	DTO
	Type          string                               `gorm:"size:30;not null;index" json:"type"`
	Title         string                               `gorm:"size:191;not null" json:"title"`
	Message       string                               `gorm:"type:text" json:"message"`
	OrderNumber   string                               `gorm:"size:50;index" json:"order_number"`
	TableNumber   string                               `gorm:"size:50" json:"table_number"`
	CustomerName  string                               `gorm:"size:100" json:"customer_name"`
	Location      string                               `gorm:"size:20" json:"location"`
	Priority      string                               `gorm:"size:10" json:"priority"`
	RecipientType string                               `gorm:"size:20;index:idx_notifications_recipient,priority:1" json:"recipient_type"`
	RecipientID   uint                                 `gorm:"index:idx_notifications_recipient,priority:2" json:"recipient_id"`
	Data          datatypes.JSONType[NotificationData] `json:"data"`
	IsRead        bool                                 `gorm:"not null;default:false" json:"is_read"`
}

type FilterNotification struct {
	Pagination
	Unread *bool                                `query:"unread" json:"unread"`
}
