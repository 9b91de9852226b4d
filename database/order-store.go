package database

import (
	"context"
	"fsdine_restaurant/model"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

type OrderStore struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db}
}

func (s *OrderStore) FindByOrderNumberAndSource(ctx context.Context, orderNumber, source string) (*model.TableOrder, error) {
	var order model.TableOrder
	err := s.db.WithContext(ctx).
		Where("order_number = ? AND submission_source = ?", orderNumber, source).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find order")
	}
	return &order, nil
}

func (s *OrderStore) InsertOrderWithMapping(ctx context.Context, mapping *model.TableMapping, order *model.TableOrder) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(mapping).Error; err != nil {
			return errors.Wrap(err, "failed to create table mapping")
		}

		order.MappingID = mapping.ID
		if err := tx.Create(order).Error; err != nil {
			return errors.Wrap(err, "failed to create table order")
		}
		return nil
	})
	return translateError(err)
}

func (s *OrderStore) WithinTransaction(ctx context.Context, fn func(repo model.OrderRepository) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&OrderStore{db: tx})
	})
	return translateError(err)
}

func translateError(err error) error {
	if err == nil || errors.Is(err, model.ErrDuplicateOrder) {
		return err
	}
	if isUniqueViolation(err) {
		return model.ErrDuplicateOrder
	}
	return err
}

// isUniqueViolation covers dialects whose errors gorm translates, raw
// postgres errors and sqlite drivers without error translation.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
