package model

import (
	"context"
	"errors"
)

var (
	ErrDuplicateOrder = errors.New("duplicate order")
)

type OrderRepository interface {
	// FindByOrderNumberAndSource returns nil, nil when no order matches.
	FindByOrderNumberAndSource(ctx context.Context, orderNumber, source string) (*TableOrder, error)
	// InsertOrderWithMapping creates the mapping, points the order at it and
	// creates the order, all or nothing. A clash on (order_number,
	// submission_source) is reported as ErrDuplicateOrder.
	InsertOrderWithMapping(ctx context.Context, mapping *TableMapping, order *TableOrder) error
	WithinTransaction(ctx context.Context, fn func(repo OrderRepository) error) error
}

type NotificationRepository interface {
	InsertNotification(ctx context.Context, notification *TableNotification) error
}

type StaffDirectory interface {
	FindNotifiableExpoStaff(ctx context.Context) ([]Admin, error)
}

type MenuCatalog interface {
	KnownItems(ctx context.Context, ids []int) (map[int]bool, error)
}
