package repository

import (
	"context"
	"errors"

	"lendhub/internal/models"

	"gorm.io/gorm"
)

// RequestRepository defines the interface for item-request data
// operations. Limit <= 0 means an unpaginated listing.
type RequestRepository interface {
	Create(ctx context.Context, request *models.Request) error
	GetByID(ctx context.Context, id uint) (*models.Request, error)
	ListByRequester(ctx context.Context, requesterID uint) ([]models.Request, error)
	ListByOtherRequesters(ctx context.Context, userID uint, limit, offset int) ([]models.Request, error)
}

type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository creates a new request repository.
func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, request *models.Request) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *requestRepository) GetByID(ctx context.Context, id uint) (*models.Request, error) {
	var request models.Request
	if err := r.db.WithContext(ctx).First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("request", id)
		}
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) ListByRequester(ctx context.Context, requesterID uint) ([]models.Request, error) {
	var requests []models.Request
	err := r.db.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Order("created ASC").
		Find(&requests).Error
	return requests, err
}

func (r *requestRepository) ListByOtherRequesters(ctx context.Context, userID uint, limit, offset int) ([]models.Request, error) {
	var requests []models.Request
	q := r.db.WithContext(ctx).
		Where("requester_id <> ?", userID).
		Order("created ASC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	err := q.Find(&requests).Error
	return requests, err
}
