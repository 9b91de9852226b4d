package service

import (
	"context"
	"fmt"
	"fsdine_restaurant/constants"
	"fsdine_restaurant/helper"
	"fsdine_restaurant/logger"
	"fsdine_restaurant/model"
	"fsdine_restaurant/validate"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// NewOrderNotifier is told about every committed order. It has no error
// result: delivery problems are its own to log and never reach the caller.
type NewOrderNotifier interface {
	NotifyNewOrder(ctx context.Context, order *model.TableOrder, items []model.OrderItem)
}

type OrderService struct {
	orders   model.OrderRepository
	catalog  model.MenuCatalog
	notifier NewOrderNotifier
	now      func() time.Time
}

// NewOrderService wires the placement workflow. catalog may be nil, in which
// case menu item references are not checked.
func NewOrderService(orders model.OrderRepository, catalog model.MenuCatalog, notifier NewOrderNotifier) *OrderService {
	return &OrderService{
		orders:   orders,
		catalog:  catalog,
		notifier: notifier,
		now:      time.Now,
	}
}

// PlaceOrder records a customer web order together with its table mapping.
// It returns a *ValidationError for bad input, ErrDuplicateOrder when the
// order number was already used, and a *PersistenceError when storage fails.
func (s *OrderService) PlaceOrder(ctx context.Context, input model.PlaceOrderInput) (*model.PlaceOrderResult, error) {
	input.Items = append([]model.OrderItemInput(nil), input.Items...)
	helper.TrimOrderInput(&input)

	if errs := validate.Struct(input); errs != nil {
		return nil, &ValidationError{Errors: errs}
	}

	tableNumber := helper.NormalizeTable(input.TableNumber)
	orderNumber := input.OrderNumber
	totalAmount := decimal.NewFromFloat(*input.TotalAmount)

	log := logger.FromContext(ctx).WithFields(logrus.Fields{
		"order_number": orderNumber,
		"table_number": tableNumber,
	})

	var items []model.OrderItem
	if err := copier.Copy(&items, &input.Items); err != nil {
		return nil, &PersistenceError{Err: errors.Wrap(err, "failed to copy order items")}
	}
	if err := s.checkMenuItems(ctx, log, items); err != nil {
		return nil, err
	}

	var order *model.TableOrder
	err := s.orders.WithinTransaction(ctx, func(repo model.OrderRepository) error {
		existing, err := repo.FindByOrderNumberAndSource(ctx, orderNumber, constants.SOURCE_CUSTOMER_WEB_ORDER)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrDuplicateOrder
		}

		now := s.now()
		area := helper.ResolveArea(tableNumber)
		submissionID := helper.SubmissionID(orderNumber, tableNumber, now)

		mapping := &model.TableMapping{
			OrderNumber:  orderNumber,
			TableNumber:  tableNumber,
			SubmissionID: submissionID,
			SubmittedAt:  now,
			Source:       constants.SOURCE_CUSTOMER_WEB_ORDER,
			Area:         area,
			Status:       constants.MAPPING_STATUS_ACTIVE,
		}
		order = &model.TableOrder{
			DTO:              model.DTO{CreatedAt: now, UpdatedAt: now},
			OrderNumber:      orderNumber,
			SubmissionSource: constants.SOURCE_CUSTOMER_WEB_ORDER,
			UniqueIdentifier: submissionID,
			TableNumber:      tableNumber,
			Area:             area,
			CustomerName:     constants.WALK_IN_CUSTOMER,
			Status:           constants.ORDER_STATUS_PENDING,
			OrderItems:       datatypes.NewJSONSlice(items),
			OrderNotes:       input.Notes,
			TotalAmount:      totalAmount,
		}
		return repo.InsertOrderWithMapping(ctx, mapping, order)
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateOrder) {
			log.Warn("duplicate customer web order rejected")
			return nil, ErrDuplicateOrder
		}
		log.WithError(err).WithFields(logrus.Fields{
			"items_count":  len(items),
			"total_amount": helper.FormatAmount(totalAmount),
		}).Error("failed to place customer web order")
		return nil, &PersistenceError{Err: err}
	}

	s.notifier.NotifyNewOrder(ctx, order, items)

	log.WithFields(logrus.Fields{
		"order_id":     order.ID,
		"items_count":  len(items),
		"total_amount": helper.FormatAmount(order.TotalAmount),
	}).Info("customer web order placed")

	result := helper.OrderResult(order)
	return &result, nil
}

// GetWebOrder looks up a customer web order by its number. It returns nil,
// nil when there is none.
func (s *OrderService) GetWebOrder(ctx context.Context, orderNumber string) (*model.OrderDetail, error) {
	order, err := s.orders.FindByOrderNumberAndSource(ctx, strings.TrimSpace(orderNumber), constants.SOURCE_CUSTOMER_WEB_ORDER)
	if err != nil {
		return nil, &PersistenceError{Err: err}
	}
	if order == nil {
		return nil, nil
	}

	return &model.OrderDetail{
		PlaceOrderResult: helper.OrderResult(order),
		Area:             order.Area,
		Notes:            order.OrderNotes,
		Items:            order.OrderItems,
	}, nil
}

// checkMenuItems rejects item references the menu does not know. An
// unreachable catalog skips the check rather than blocking orders.
func (s *OrderService) checkMenuItems(ctx context.Context, log *logrus.Entry, items []model.OrderItem) error {
	if s.catalog == nil {
		return nil
	}

	ids := make([]int, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.MenuItemID)
	}

	known, err := s.catalog.KnownItems(ctx, ids)
	if err != nil {
		log.WithError(err).Warn("menu catalog unavailable, skipping menu item check")
		return nil
	}

	errs := map[string][]string{}
	for i, item := range items {
		if !known[item.MenuItemID] {
			key := fmt.Sprintf("items.%d.menu_item_id", i)
			errs[key] = append(errs[key], fmt.Sprintf("The selected %s is invalid.", strings.ReplaceAll(key, "_", " ")))
		}
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
