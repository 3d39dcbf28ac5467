package repository

import (
	"context"
	"errors"

	"lendhub/internal/models"

	"gorm.io/gorm"
)

// ItemRepository defines the interface for item data operations.
// Limit <= 0 means an unpaginated listing.
type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, id uint) (*models.Item, error)
	Update(ctx context.Context, item *models.Item) error
	ListByOwner(ctx context.Context, ownerID uint, limit, offset int) ([]models.Item, error)
	Search(ctx context.Context, text string, limit, offset int) ([]models.Item, error)
	ListByRequestIDs(ctx context.Context, requestIDs []uint) ([]models.Item, error)
}

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) GetByID(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	err := r.db.WithContext(ctx).Preload("Owner").First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("item", id)
		}
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) Update(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemRepository) ListByOwner(ctx context.Context, ownerID uint, limit, offset int) ([]models.Item, error) {
	var items []models.Item
	q := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	err := q.Find(&items).Error
	return items, err
}

func (r *itemRepository) Search(ctx context.Context, text string, limit, offset int) ([]models.Item, error) {
	var items []models.Item
	pattern := "%" + text + "%"
	q := r.db.WithContext(ctx).
		Where("available = ?", true).
		Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern).
		Order("id")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	err := q.Find(&items).Error
	return items, err
}

func (r *itemRepository) ListByRequestIDs(ctx context.Context, requestIDs []uint) ([]models.Item, error) {
	if len(requestIDs) == 0 {
		return nil, nil
	}
	var items []models.Item
	err := r.db.WithContext(ctx).
		Where("request_id IN ?", requestIDs).
		Find(&items).Error
	return items, err
}
