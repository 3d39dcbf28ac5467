package service

import (
	"context"
	"strings"
	"time"

	"lendhub/internal/models"
	"lendhub/internal/repository"
)

// RequestService implements open item requests and their fulfillment
// listings.
type RequestService struct {
	requestRepo repository.RequestRepository
	userRepo    repository.UserRepository
	itemRepo    repository.ItemRepository
}

// NewRequestService creates a new request service.
func NewRequestService(
	requestRepo repository.RequestRepository,
	userRepo repository.UserRepository,
	itemRepo repository.ItemRepository,
) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		itemRepo:    itemRepo,
	}
}

func (s *RequestService) Create(ctx context.Context, requesterID uint, description string) (*models.RequestResponse, error) {
	if strings.TrimSpace(description) == "" {
		return nil, models.NewValidationError("description must not be blank")
	}
	requester, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	request := &models.Request{
		Description: description,
		RequesterID: requester.ID,
		Created:     time.Now(),
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	resp := models.ToRequestResponse(request, nil)
	return &resp, nil
}

func (s *RequestService) GetByID(ctx context.Context, requestID, viewerID uint) (*models.RequestResponse, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, viewerID); err != nil {
		return nil, err
	}

	items, err := s.itemRepo.ListByRequestIDs(ctx, []uint{request.ID})
	if err != nil {
		return nil, err
	}

	resp := models.ToRequestResponse(request, items)
	return &resp, nil
}

// ListOwn returns the requester's requests in creation order, each
// with its fulfilling items resolved in one pass.
func (s *RequestService) ListOwn(ctx context.Context, requesterID uint) ([]models.RequestResponse, error) {
	if _, err := s.userRepo.GetByID(ctx, requesterID); err != nil {
		return nil, err
	}
	requests, err := s.requestRepo.ListByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, requests)
}

// ListOthers returns requests created by other users in creation
// order. The unpaginated form resolves fulfilling items for all of
// them; the paginated form for exactly the page's requests.
func (s *RequestService) ListOthers(ctx context.Context, userID uint, from, size *int) ([]models.RequestResponse, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	limit, offset, err := pageWindow(from, size)
	if err != nil {
		return nil, err
	}
	requests, err := s.requestRepo.ListByOtherRequesters(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, requests)
}

func (s *RequestService) withItems(ctx context.Context, requests []models.Request) ([]models.RequestResponse, error) {
	requestIDs := make([]uint, 0, len(requests))
	for i := range requests {
		requestIDs = append(requestIDs, requests[i].ID)
	}
	items, err := s.itemRepo.ListByRequestIDs(ctx, requestIDs)
	if err != nil {
		return nil, err
	}

	byRequest := make(map[uint][]models.Item)
	for _, item := range items {
		if item.RequestID != nil {
			byRequest[*item.RequestID] = append(byRequest[*item.RequestID], item)
		}
	}

	out := make([]models.RequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, models.ToRequestResponse(&requests[i], byRequest[requests[i].ID]))
	}
	return out, nil
}
