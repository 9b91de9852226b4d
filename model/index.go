package model

import "time"

type DTO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TokenClaim struct {
	AdminId uint   `json:"adminId"`
	Email   string `json:"email"`
	Role    string `json:"role"`
}

type ResponseCustom struct {
	Rows       any   `json:"rows"`
	Limit      *int  `json:"limit"`
	Page       *int  `json:"page"`
	TotalCount int64 `json:"total_count"`
}

type Pagination struct {
	Limit *int `query:"limit" json:"limit"`
	Page  *int `query:"page" json:"page"`
}
