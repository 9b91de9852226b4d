package database

import (
	"context"
	"fsdine_restaurant/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type MenuStore struct {
	db *gorm.DB
}

func NewMenuStore(db *gorm.DB) *MenuStore {
	return &MenuStore{db: db}
}

func availableItems(db *gorm.DB) *gorm.DB {
	return db.Where("is_available = ?", true).Order("display_order ASC, id ASC")
}

func (s *MenuStore) ListCategories(ctx context.Context) ([]model.MenuCategory, error) {
	var categories []model.MenuCategory
	err := s.db.WithContext(ctx).
		Preload("Items", availableItems).
		Order("display_order ASC, id ASC").
		Find(&categories).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu categories")
	}
	return categories, nil
}

func (s *MenuStore) FindCategoryBySlug(ctx context.Context, slug string) (*model.MenuCategory, error) {
	var category model.MenuCategory
	err := s.db.WithContext(ctx).
		Preload("Items", availableItems).
		Where("slug = ?", slug).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find menu category")
	}
	return &category, nil
}

func (s *MenuStore) ListItems(ctx context.Context, filter model.FilterMenuItem) ([]model.MenuItem, error) {
	condition := s.db.WithContext(ctx).Model(&model.MenuItem{})
	if filter.CategoryID != nil {
		condition = condition.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Available != nil {
		condition = condition.Where("is_available = ?", *filter.Available)
	}

	var items []model.MenuItem
	if err := condition.Order("display_order ASC, id ASC").Find(&items).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}
	return items, nil
}

func (s *MenuStore) FindItem(ctx context.Context, id uint) (*model.MenuItem, error) {
	var item model.MenuItem
	if err := s.db.WithContext(ctx).Preload("Category").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find menu item")
	}
	return &item, nil
}

func (s *MenuStore) AllMenuItemIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	if err := s.db.WithContext(ctx).Model(&model.MenuItem{}).Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load menu item ids")
	}
	return ids, nil
}

// KnownItems answers item existence straight from the database; it is used
// when no redis cache is configured.
func (s *MenuStore) KnownItems(ctx context.Context, ids []int) (map[int]bool, error) {
	known := make(map[int]bool, len(ids))
	if len(ids) == 0 {
		return known, nil
	}

	var found []int
	err := s.db.WithContext(ctx).Model(&model.MenuItem{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to check menu items")
	}

	for _, id := range ids {
		known[id] = false
	}
	for _, id := range found {
		known[id] = true
	}
	return known, nil
}
