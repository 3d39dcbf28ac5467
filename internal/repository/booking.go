package repository

import (
	"context"
	"errors"
	"time"

	"lendhub/internal/models"

	"gorm.io/gorm"
)

// BookingRepository defines the interface for booking data operations.
// Listing methods preload the booking's item and booker; limit <= 0
// means an unpaginated listing.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id uint) (*models.Booking, error)
	Update(ctx context.Context, booking *models.Booking) error
	ListByBooker(ctx context.Context, bookerID uint, state models.BookingState, limit, offset int) ([]models.Booking, error)
	ListByItemOwner(ctx context.Context, ownerID uint, state models.BookingState, limit, offset int) ([]models.Booking, error)
	ApprovedByItemOwner(ctx context.Context, ownerID uint) ([]models.Booking, error)
	ApprovedByItemIDs(ctx context.Context, itemIDs []uint) ([]models.Booking, error)
	LastAndNext(ctx context.Context, itemID uint, now time.Time) (last, next *models.Booking, err error)
	FinishedByItemAndBooker(ctx context.Context, itemID, bookerID uint, now time.Time) ([]models.Booking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository.
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) GetByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Item.Owner").
		Preload("Booker").
		First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("booking", id)
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

// applyStateFilter narrows a booking query per the requested state.
// ALL adds nothing; CURRENT/PAST/FUTURE filter by date window only;
// WAITING/REJECTED filter by status. APPROVED is deliberately not a
// queryable state.
func applyStateFilter(q *gorm.DB, state models.BookingState, now time.Time) *gorm.DB {
	switch state {
	case models.StateCurrent:
		return q.Where("start_date < ? AND end_date > ?", now, now)
	case models.StatePast:
		return q.Where("end_date < ?", now)
	case models.StateFuture:
		return q.Where("start_date > ?", now)
	case models.StateWaiting:
		return q.Where("status = ?", models.StatusWaiting)
	case models.StateRejected:
		return q.Where("status = ?", models.StatusRejected)
	default:
		return q
	}
}

func (r *bookingRepository) ListByBooker(ctx context.Context, bookerID uint, state models.BookingState, limit, offset int) ([]models.Booking, error) {
	q := r.db.WithContext(ctx).Where("booker_id = ?", bookerID)
	return r.listFiltered(q, state, limit, offset)
}

func (r *bookingRepository) ListByItemOwner(ctx context.Context, ownerID uint, state models.BookingState, limit, offset int) ([]models.Booking, error) {
	q := r.db.WithContext(ctx).
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ?", ownerID)
	return r.listFiltered(q, state, limit, offset)
}

func (r *bookingRepository) listFiltered(q *gorm.DB, state models.BookingState, limit, offset int) ([]models.Booking, error) {
	var bookings []models.Booking
	q = applyStateFilter(q, state, time.Now()).
		Preload("Item").
		Preload("Booker").
		Order("start_date DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	err := q.Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) ApprovedByItemOwner(ctx context.Context, ownerID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ? AND status = ?", ownerID, models.StatusApproved).
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) ApprovedByItemIDs(ctx context.Context, itemIDs []uint) ([]models.Booking, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Where("item_id IN ? AND status = ?", itemIDs, models.StatusApproved).
		Find(&bookings).Error
	return bookings, err
}

// LastAndNext returns the approved booking with the greatest start not
// after now and the approved booking with the smallest start not
// before now, either of which may be nil.
func (r *bookingRepository) LastAndNext(ctx context.Context, itemID uint, now time.Time) (*models.Booking, *models.Booking, error) {
	var last, next models.Booking

	err := r.db.WithContext(ctx).
		Where("item_id = ? AND status = ? AND start_date <= ?", itemID, models.StatusApproved, now).
		Order("start_date DESC").
		First(&last).Error
	lastPtr := &last
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, err
		}
		lastPtr = nil
	}

	err = r.db.WithContext(ctx).
		Where("item_id = ? AND status = ? AND start_date >= ?", itemID, models.StatusApproved, now).
		Order("start_date ASC").
		First(&next).Error
	nextPtr := &next
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, err
		}
		nextPtr = nil
	}

	return lastPtr, nextPtr, nil
}

func (r *bookingRepository) FinishedByItemAndBooker(ctx context.Context, itemID, bookerID uint, now time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Where("item_id = ? AND booker_id = ? AND status = ? AND end_date < ?",
			itemID, bookerID, models.StatusApproved, now).
		Order("start_date DESC").
		Find(&bookings).Error
	return bookings, err
}
