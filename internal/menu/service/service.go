package service

import (
	"context"
	"encoding/base64"
	"io"
	"time"

	customErrors "github.com/plateful/backend/internal/auth/errors"
	"github.com/plateful/backend/internal/menu/model"
	"github.com/plateful/backend/internal/repo"
	"github.com/plateful/backend/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ImageUpload is an incoming multipart image.
type ImageUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

type AddItemInput struct {
	Name        string
	Description string
	Price       float64
	Image       *ImageUpload
}

type Service interface {
	Add(ctx context.Context, ownerID uuid.UUID, in AddItemInput) (model.Item, error)

	// List returns the owner's items with image bodies base64-encoded.
	// A failed image fetch leaves ImageBase64 nil, it never fails the list.
	List(ctx context.Context, ownerID uuid.UUID) ([]model.ItemView, error)

	Remove(ctx context.Context, ownerID, itemID uuid.UUID) error
}

type menuService struct {
	items repo.MenuRepo
	store storage.ObjectStore
	log   *zap.Logger
}

func New(items repo.MenuRepo, store storage.ObjectStore, log *zap.Logger) Service {
	return &menuService{items: items, store: store, log: log}
}

func (m *menuService) Add(ctx context.Context, ownerID uuid.UUID, in AddItemInput) (model.Item, error) {
	if in.Name == "" {
		return model.Item{}, customErrors.NewInvalidArgument("name is required")
	}
	if in.Price < 0 {
		return model.Item{}, customErrors.NewInvalidArgument("price must not be negative")
	}

	var imageURL *string
	if in.Image != nil {
		url, err := m.store.Upload(ctx, ownerID.String(), in.Image.Filename, in.Image.ContentType, in.Image.Body)
		if err != nil {
			return model.Item{}, customErrors.WrapInternal(err, "UploadImage")
		}
		imageURL = &url
	}

	item := model.Item{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    imageURL,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := m.items.CreateItem(ctx, item); err != nil {
		return model.Item{}, err
	}
	return item, nil
}

func (m *menuService) List(ctx context.Context, ownerID uuid.UUID) ([]model.ItemView, error) {
	items, err := m.items.ListItemsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	views := make([]model.ItemView, 0, len(items))
	for _, item := range items {
		view := model.ItemView{Item: item}
		if item.ImageURL != nil {
			data, err := m.store.Download(ctx, *item.ImageURL)
			if err != nil {
				m.log.Warn("menu image fetch failed",
					zap.String("item_id", item.ID.String()),
					zap.Error(err),
				)
			} else {
				encoded := base64.StdEncoding.EncodeToString(data)
				view.ImageBase64 = &encoded
			}
		}
		views = append(views, view)
	}
	return views, nil
}

func (m *menuService) Remove(ctx context.Context, ownerID, itemID uuid.UUID) error {
	return m.items.DeleteItem(ctx, itemID, ownerID)
}
