package service

import (
	"context"
	"strings"
	"time"

	"lendhub/internal/models"
	"lendhub/internal/repository"
)

// ItemService implements the item catalog: listing, patching, search,
// booking annotations and comments.
type ItemService struct {
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	requestRepo repository.RequestRepository
	bookingRepo repository.BookingRepository
	commentRepo repository.CommentRepository
}

// CreateItemInput carries the fields accepted when listing an item.
type CreateItemInput struct {
	Name        string
	Description string
	Available   bool
	RequestID   *uint
}

// ItemPatch is the explicit partial-update payload for items. Nil
// fields are left untouched.
type ItemPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
	RequestID   *uint   `json:"requestId"`
}

// NewItemService creates a new item service.
func NewItemService(
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	requestRepo repository.RequestRepository,
	bookingRepo repository.BookingRepository,
	commentRepo repository.CommentRepository,
) *ItemService {
	return &ItemService{
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		requestRepo: requestRepo,
		bookingRepo: bookingRepo,
		commentRepo: commentRepo,
	}
}

func (s *ItemService) Create(ctx context.Context, ownerID uint, in CreateItemInput) (*models.Item, error) {
	owner, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	item := &models.Item{
		Name:        in.Name,
		Description: in.Description,
		Available:   in.Available,
		OwnerID:     owner.ID,
	}
	if in.RequestID != nil {
		request, err := s.requestRepo.GetByID(ctx, *in.RequestID)
		if err != nil {
			return nil, err
		}
		item.RequestID = &request.ID
	}
	if err := validateItem(item); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Patch applies an owner-only partial update.
func (s *ItemService) Patch(ctx context.Context, itemID, userID uint, patch ItemPatch) (*models.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != user.ID {
		return nil, models.NewUnauthorizedChangeError("item", itemID)
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Available != nil {
		item.Available = *patch.Available
	}
	if patch.RequestID != nil {
		request, err := s.requestRepo.GetByID(ctx, *patch.RequestID)
		if err != nil {
			return nil, err
		}
		item.RequestID = &request.ID
	}
	if err := validateItem(item); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetByID returns the item with its comments, and with the last/next
// approved booking when the viewer is the owner.
func (s *ItemService) GetByID(ctx context.Context, itemID, viewerID uint) (*models.ItemDetailResponse, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	detail := models.ToItemDetailResponse(item)
	detail.Comments = models.ToCommentResponses(comments)

	if item.OwnerID == viewerID {
		last, next, err := s.bookingRepo.LastAndNext(ctx, itemID, time.Now())
		if err != nil {
			return nil, err
		}
		detail.LastBooking = models.ToBookingShort(last)
		detail.NextBooking = models.ToBookingShort(next)
	}

	return &detail, nil
}

// ListByOwner returns the owner's items ordered by id, each annotated
// with its last and next approved booking. Bookings are fetched in one
// pass and grouped per item to avoid an N+1 query.
func (s *ItemService) ListByOwner(ctx context.Context, ownerID uint, from, size *int) ([]models.ItemDetailResponse, error) {
	if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}
	limit, offset, err := pageWindow(from, size)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.ListByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}

	var bookings []models.Booking
	if limit > 0 {
		itemIDs := make([]uint, 0, len(items))
		for i := range items {
			itemIDs = append(itemIDs, items[i].ID)
		}
		bookings, err = s.bookingRepo.ApprovedByItemIDs(ctx, itemIDs)
	} else {
		bookings, err = s.bookingRepo.ApprovedByItemOwner(ctx, ownerID)
	}
	if err != nil {
		return nil, err
	}

	byItem := make(map[uint][]models.Booking)
	for _, b := range bookings {
		byItem[b.ItemID] = append(byItem[b.ItemID], b)
	}

	now := time.Now()
	out := make([]models.ItemDetailResponse, 0, len(items))
	for i := range items {
		detail := models.ToItemDetailResponse(&items[i])
		last, next := pickLastAndNext(byItem[items[i].ID], now)
		detail.LastBooking = models.ToBookingShort(last)
		detail.NextBooking = models.ToBookingShort(next)
		out = append(out, detail)
	}
	return out, nil
}

// pickLastAndNext selects the booking with the greatest start before
// now and the one with the smallest start after now.
func pickLastAndNext(bookings []models.Booking, now time.Time) (last, next *models.Booking) {
	for i := range bookings {
		b := &bookings[i]
		if b.Start.Before(now) {
			if last == nil || b.Start.After(last.Start) {
				last = b
			}
		} else if b.Start.After(now) {
			if next == nil || b.Start.Before(next.Start) {
				next = b
			}
		}
	}
	return last, next
}

// Search finds available items matching text in name or description.
// Blank text short-circuits to an empty result without a query.
func (s *ItemService) Search(ctx context.Context, text string, from, size *int) ([]models.ItemResponse, error) {
	if strings.TrimSpace(text) == "" {
		return []models.ItemResponse{}, nil
	}
	limit, offset, err := pageWindow(from, size)
	if err != nil {
		return nil, err
	}
	items, err := s.itemRepo.Search(ctx, text, limit, offset)
	if err != nil {
		return nil, err
	}
	return models.ToItemResponses(items), nil
}

// AddComment persists a comment if the author has at least one
// approved booking of the item that has already finished.
func (s *ItemService) AddComment(ctx context.Context, itemID, authorID uint, text string) (*models.CommentResponse, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	finished, err := s.bookingRepo.FinishedByItemAndBooker(ctx, item.ID, author.ID, time.Now())
	if err != nil {
		return nil, err
	}
	if len(finished) == 0 {
		return nil, models.NewCommentNotAllowedError(itemID)
	}

	comment := &models.Comment{
		Text:     text,
		ItemID:   item.ID,
		AuthorID: author.ID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	comment.Author = *author
	resp := models.ToCommentResponse(comment)
	return &resp, nil
}
