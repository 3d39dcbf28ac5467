package service

import (
	"context"
	"time"

	"lendhub/internal/models"
	"lendhub/internal/repository"
)

// BookingService implements the booking lifecycle and the filtered
// booking listings.
type BookingService struct {
	bookingRepo repository.BookingRepository
	userRepo    repository.UserRepository
	itemRepo    repository.ItemRepository
}

// CreateBookingInput carries the fields accepted when requesting a
// booking. Date validation (presence, ordering, start not in the past)
// happens at the HTTP boundary before this input is built.
type CreateBookingInput struct {
	ItemID uint
	Start  time.Time
	End    time.Time
}

// NewBookingService creates a new booking service.
func NewBookingService(
	bookingRepo repository.BookingRepository,
	userRepo repository.UserRepository,
	itemRepo repository.ItemRepository,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		itemRepo:    itemRepo,
	}
}

func (s *BookingService) Create(ctx context.Context, bookerID uint, in CreateBookingInput) (*models.BookingResponse, error) {
	booker, err := s.userRepo.GetByID(ctx, bookerID)
	if err != nil {
		return nil, err
	}
	item, err := s.itemRepo.GetByID(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}
	if !item.Available {
		return nil, models.NewNotAvailableError(item.ID)
	}
	if booker.ID == item.OwnerID {
		return nil, models.NewSelfBookingError()
	}

	booking := &models.Booking{
		Start:    in.Start,
		End:      in.End,
		ItemID:   item.ID,
		BookerID: booker.ID,
		Status:   models.StatusWaiting,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	booking.Item = *item
	booking.Booker = *booker
	resp := models.ToBookingResponse(booking)
	return &resp, nil
}

// Approve moves a WAITING booking to APPROVED or REJECTED. Only the
// item's owner may decide, and only once; any further attempt fails
// with a status-change error.
func (s *BookingService) Approve(ctx context.Context, bookingID, actingUserID uint, approved bool) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, actingUserID)
	if err != nil {
		return nil, err
	}
	if user.ID != booking.Item.OwnerID {
		return nil, models.NewUnauthorizedChangeError("booking", bookingID)
	}
	if booking.Status != models.StatusWaiting {
		return nil, models.NewStatusChangeError(bookingID)
	}

	if approved {
		booking.Status = models.StatusApproved
	} else {
		booking.Status = models.StatusRejected
	}
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	resp := models.ToBookingResponse(booking)
	return &resp, nil
}

// GetByID returns a booking to its booker or the item's owner. Anyone
// else gets NotFound so the booking's existence stays hidden.
func (s *BookingService) GetByID(ctx context.Context, bookingID, viewerID uint) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, viewerID); err != nil {
		return nil, err
	}
	if viewerID != booking.BookerID && viewerID != booking.Item.OwnerID {
		return nil, models.NewNotFoundError("booking", bookingID)
	}

	resp := models.ToBookingResponse(booking)
	return &resp, nil
}

// ListByBooker returns the user's bookings filtered by state, most
// recent start first.
func (s *BookingService) ListByBooker(ctx context.Context, bookerID uint, state models.BookingState, from, size *int) ([]models.BookingResponse, error) {
	if _, err := s.userRepo.GetByID(ctx, bookerID); err != nil {
		return nil, err
	}
	limit, offset, err := pageWindow(from, size)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookingRepo.ListByBooker(ctx, bookerID, state, limit, offset)
	if err != nil {
		return nil, err
	}
	return models.ToBookingResponses(bookings), nil
}

// ListByOwner returns bookings of the owner's items filtered by state,
// most recent start first.
func (s *BookingService) ListByOwner(ctx context.Context, ownerID uint, state models.BookingState, from, size *int) ([]models.BookingResponse, error) {
	if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}
	limit, offset, err := pageWindow(from, size)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookingRepo.ListByItemOwner(ctx, ownerID, state, limit, offset)
	if err != nil {
		return nil, err
	}
	return models.ToBookingResponses(bookings), nil
}
