package database

import (
	"context"
	"fsdine_restaurant/constants"
	"fsdine_restaurant/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type StaffStore struct {
	db *gorm.DB
}

func NewStaffStore(db *gorm.DB) *StaffStore {
	return &StaffStore{db: db}
}

// FindNotifiableExpoStaff returns active expo staff who have notifications
// switched on.
func (s *StaffStore) FindNotifiableExpoStaff(ctx context.Context) ([]model.Admin, error) {
	var admins []model.Admin
	err := s.db.WithContext(ctx).
		Where("role = ? AND status = ? AND notifications_enabled = ?", constants.ROLE_EXPO, constants.ADMIN_STATUS_ACTIVE, true).
		Order("id ASC").
		Find(&admins).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load expo staff")
	}
	return admins, nil
}

func (s *StaffStore) FindActiveByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var admin model.Admin
	err := s.db.WithContext(ctx).
		Where("email = ? AND status = ?", email, constants.ADMIN_STATUS_ACTIVE).
		First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find admin")
	}
	return &admin, nil
}
