package postgres

import (
	"context"

	customErrors "github.com/plateful/backend/internal/auth/errors"
	"github.com/plateful/backend/internal/menu/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MenuRepo struct {
	db *gorm.DB
}

func NewMenuRepo(db *gorm.DB) *MenuRepo {
	return &MenuRepo{db: db}
}

func (r *MenuRepo) CreateItem(ctx context.Context, item model.Item) (uuid.UUID, error) {
	res := r.db.WithContext(ctx).Create(&item)
	if err := res.Error; err != nil {
		return uuid.Nil, customErrors.WrapInternal(err, "CreateItem")
	}
	return item.ID, nil
}

func (r *MenuRepo) ListItemsByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Item, error) {
	var items []model.Item
	res := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at").
		Find(&items)
	if err := res.Error; err != nil {
		return nil, customErrors.WrapInternal(err, "ListItemsByOwner")
	}
	return items, nil
}

func (r *MenuRepo) DeleteItem(ctx context.Context, id, ownerID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.Item{})
	if err := res.Error; err != nil {
		return customErrors.WrapInternal(err, "DeleteItem")
	}
	if res.RowsAffected == 0 {
		return customErrors.ErrNotFound
	}
	return nil
}
