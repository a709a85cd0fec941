package repo

import (
	"context"

	"github.com/plateful/backend/internal/menu/model"

	"github.com/google/uuid"
)

type MenuRepo interface {
	CreateItem(ctx context.Context, item model.Item) (uuid.UUID, error)

	ListItemsByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Item, error)

	// DeleteItem removes the item only if it belongs to ownerID.
	DeleteItem(ctx context.Context, id, ownerID uuid.UUID) error
}
