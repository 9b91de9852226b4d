package model

// Admin is a staff member in the directory. Expo staff with notifications
// enabled receive new order notifications.
type Admin struct {
	DTO
	Name                 string `gorm:"size:100;not null" json:"name"`
	Email                string `gorm:"size:191;not null;uniqueIndex" json:"email"`
	Password             string `gorm:"not null" json:"-"`
	Role                 string `gorm:"size:20;not null;index" json:"role"`
	Status               string `gorm:"size:20;not null;index" json:"status"`
	NotificationsEnabled bool   `gorm:"not null" json:"notifications_enabled"`
}

type AdminLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenData struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   string `json:"expires_at"`
}
