package model

import "time"

// TableMapping records where an order was seated at submission time. Its
// status and update count are driven by the table management workflow.
type TableMapping struct {
	DTO
	OrderNumber  string    `gorm:"size:50;not null;index" json:"order_number"`
	TableNumber  string    `gorm:"size:50;not null;index" json:"table_number"`
	SubmissionID string    `gorm:"size:191;index" json:"submission_id"`
	SubmittedAt  time.Time `json:"submitted_at"`
	Source       string    `gorm:"size:50;default:'customer'" json:"source"`
	Area         string    `gorm:"size:20" json:"area"`
	Status       string    `gorm:"size:20;not null;index" json:"status"`
	Notes        *string   `gorm:"type:text" json:"notes"`
	UpdateCount  uint      `gorm:"not null;default:0" json:"update_count"`
}
