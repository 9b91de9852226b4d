package service

import (
	"context"
	"fmt"
	"fsdine_restaurant/constants"
	"fsdine_restaurant/helper"
	"fsdine_restaurant/logger"
	"fsdine_restaurant/model"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// Notifier writes one inbox record per expo staff member for every new web
// order. Nothing it does can fail the order that triggered it.
type Notifier struct {
	staff         model.StaffDirectory
	notifications model.NotificationRepository
}

func NewNotifier(staff model.StaffDirectory, notifications model.NotificationRepository) *Notifier {
	return &Notifier{staff: staff, notifications: notifications}
}

func (n *Notifier) NotifyNewOrder(ctx context.Context, order *model.TableOrder, items []model.OrderItem) {
	log := logger.FromContext(ctx).WithFields(logrus.Fields{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"table_number": order.TableNumber,
	})

	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("expo notification fan-out panicked")
		}
	}()

	admins, err := n.staff.FindNotifiableExpoStaff(ctx)
	if err != nil {
		log.WithError(err).Error("failed to load expo staff for notification")
		return
	}

	title := fmt.Sprintf("New Web Order - Table %s", order.TableNumber)
	message := fmt.Sprintf("Order #%s - %s", order.OrderNumber, helper.ItemsSummary(items))
	data := model.NotificationData{
		OrderID:     order.ID,
		ItemsCount:  len(items),
		TotalAmount: helper.FormatAmount(order.TotalAmount),
		Source:      order.SubmissionSource,
	}

	sent := 0
	for _, admin := range admins {
		notification := &model.TableNotification{
			Type:          constants.NOTIFICATION_TYPE_NEW_ORDER,
			Title:         title,
			Message:       message,
			OrderNumber:   order.OrderNumber,
			TableNumber:   order.TableNumber,
			CustomerName:  order.CustomerName,
			Location:      order.Area,
			Priority:      constants.PRIORITY_HIGH,
			RecipientType: constants.RECIPIENT_ADMIN,
			RecipientID:   admin.ID,
			Data:          datatypes.NewJSONType(data),
		}
		if n.deliver(ctx, log.WithField("admin_id", admin.ID), notification) {
			sent++
		}
	}

	log.WithFields(logrus.Fields{
		"expo_admins_count":  len(admins),
		"notifications_sent": sent,
	}).Info("expo admins notified of new web order")
}

// deliver stores one recipient's record. A failure, panics included, only
// costs that recipient.
func (n *Notifier) deliver(ctx context.Context, log *logrus.Entry, notification *model.TableNotification) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("expo admin notification panicked")
			ok = false
		}
	}()

	if err := n.notifications.InsertNotification(ctx, notification); err != nil {
		log.WithError(err).Error("failed to notify expo admin")
		return false
	}
	return true
}
