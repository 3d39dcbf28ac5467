package server

import (
	"strings"

	"lendhub/internal/models"
	"lendhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
	RequestID   *uint  `json:"requestId"`
}

type createCommentRequest struct {
	Text string `json:"text"`
}

// CreateItem handles POST /items.
func (s *Server) CreateItem(c *fiber.Ctx) error {
	ownerID, err := actingUserID(c)
	if err != nil {
		return nil
	}

	var req createItemRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("invalid request body"))
	}
	if req.Available == nil {
		return models.RespondWithError(c, models.NewValidationError("available must be provided"))
	}

	item, err := s.items.Create(c.Context(), ownerID, service.CreateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		RequestID:   req.RequestID,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.ToItemResponse(item))
}

// PatchItem handles PATCH /items/:id. Only the owner may change an
// item.
func (s *Server) PatchItem(c *fiber.Ctx) error {
	userID, err := actingUserID(c)
	if err != nil {
		return nil
	}
	itemID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	var patch service.ItemPatch
	if err := c.BodyParser(&patch); err != nil {
		return models.RespondWithError(c, models.NewValidationError("invalid request body"))
	}

	item, err := s.items.Patch(c.Context(), itemID, userID, patch)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(models.ToItemResponse(item))
}

// GetItem handles GET /items/:id. Booking annotations only show up
// for the owner.
func (s *Server) GetItem(c *fiber.Ctx) error {
	viewerID, err := actingUserID(c)
	if err != nil {
		return nil
	}
	itemID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	item, err := s.items.GetByID(c.Context(), itemID, viewerID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(item)
}

// GetItems handles GET /items, listing the acting user's items.
func (s *Server) GetItems(c *fiber.Ctx) error {
	ownerID, err := actingUserID(c)
	if err != nil {
		return nil
	}
	from, size, err := pagingParams(c)
	if err != nil {
		return nil
	}

	items, err := s.items.ListByOwner(c.Context(), ownerID, from, size)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(items)
}

// SearchItems handles GET /items/search.
func (s *Server) SearchItems(c *fiber.Ctx) error {
	if _, err := actingUserID(c); err != nil {
		return nil
	}
	from, size, err := pagingParams(c)
	if err != nil {
		return nil
	}

	items, err := s.items.Search(c.Context(), c.Query("text"), from, size)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(items)
}

// CreateComment handles POST /items/:id/comment.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	authorID, err := actingUserID(c)
	if err != nil {
		return nil
	}
	itemID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	var req createCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("invalid request body"))
	}
	if strings.TrimSpace(req.Text) == "" {
		return models.RespondWithError(c, models.NewValidationError("comment text must not be blank"))
	}

	comment, err := s.items.AddComment(c.Context(), itemID, authorID, req.Text)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(comment)
}
