package server

import (
	"lendhub/internal/models"

	"github.com/gofiber/fiber/v2"
)

type createRequestRequest struct {
	Description string `json:"description"`
}

// CreateRequest handles POST /requests.
func (s *Server) CreateRequest(c *fiber.Ctx) error {
	requesterID, err := actingUserID(c)
	if err != nil {
		return nil
	}

	var req createRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("invalid request body"))
	}

	request, err := s.requests.Create(c.Context(), requesterID, req.Description)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(request)
}

// GetOwnRequests handles GET /requests, listing the acting user's
// requests with their responses.
func (s *Server) GetOwnRequests(c *fiber.Ctx) error {
	requesterID, err := actingUserID(c)
	if err != nil {
		return nil
	}

	requests, err := s.requests.ListOwn(c.Context(), requesterID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(requests)
}

// GetOthersRequests handles GET /requests/all.
func (s *Server) GetOthersRequests(c *fiber.Ctx) error {
	userID, err := actingUserID(c)
	if err != nil {
		return nil
	}
	from, size, err := pagingParams(c)
	if err != nil {
		return nil
	}

	requests, err := s.requests.ListOthers(c.Context(), userID, from, size)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(requests)
}

// GetRequest handles GET /requests/:id.
func (s *Server) GetRequest(c *fiber.Ctx) error {
	viewerID, err := actingUserID(c)
	if err != nil {
		return nil
	}
	requestID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	request, err := s.requests.GetByID(c.Context(), requestID, viewerID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(request)
}
