package database

import (
	"context"
	"fsdine_restaurant/constants"
	"fsdine_restaurant/model"
	"fsdine_restaurant/utils"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type NotificationStore struct {
	db *gorm.DB
}

func NewNotificationStore(db *gorm.DB) *NotificationStore {
	return &NotificationStore{db: db}
}

func (s *NotificationStore) InsertNotification(ctx context.Context, notification *model.TableNotification) error {
	if err := s.db.WithContext(ctx).Create(notification).Error; err != nil {
		return errors.Wrap(err, "failed to create notification")
	}
	return nil
}

// ListForAdmin returns an admin's notifications, newest first.
func (s *NotificationStore) ListForAdmin(ctx context.Context, adminId uint, filter model.FilterNotification) ([]model.TableNotification, int64, error) {
	condition := s.db.WithContext(ctx).Model(&model.TableNotification{}).
		Where("recipient_type = ? AND recipient_id = ?", constants.RECIPIENT_ADMIN, adminId)
	if filter.Unread != nil && *filter.Unread {
		condition = condition.Where("is_read = ?", false)
	}

	var totalCount int64
	if err := condition.Count(&totalCount).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count notifications")
	}

	var notifications []model.TableNotification
	err := utils.ApplyPagination(condition, filter.Limit, filter.Page).
		Order("created_at DESC, id DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list notifications")
	}
	return notifications, totalCount, nil
}
