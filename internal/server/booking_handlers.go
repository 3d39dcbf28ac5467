package server

import (
	"strconv"
	"time"

	"lendhub/internal/models"
	"lendhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createBookingRequest struct {
	ItemID *uint      `json:"itemId"`
	Start  *time.Time `json:"start"`
	End    *time.Time `json:"end"`
}

// CreateBooking handles POST /bookings.
func (s *Server) CreateBooking(c *fiber.Ctx) error {
	bookerID, err := actingUserID(c)
	if err != nil {
		return nil
	}

	var req createBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("invalid request body"))
	}
	if req.ItemID == nil || req.Start == nil || req.End == nil {
		return models.RespondWithError(c, models.NewValidationError("itemId, start and end must be provided"))
	}
	now := time.Now()
	if req.Start.Before(now) {
		return models.RespondWithError(c, models.NewValidationError("start must not be in the past"))
	}
	if !req.Start.Before(*req.End) {
		return models.RespondWithError(c, models.NewValidationError("start must be before end"))
	}

	booking, err := s.bookings.Create(c.Context(), bookerID, service.CreateBookingInput{
		ItemID: *req.ItemID,
		Start:  *req.Start,
		End:    *req.End,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// ApproveBooking handles PATCH /bookings/:id?approved=. Only the item
// owner may decide, and only while the booking is waiting.
func (s *Server) ApproveBooking(c *fiber.Ctx) error {
	userID, err := actingUserID(c)
	if err != nil {
		return nil
	}
	bookingID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		return models.RespondWithError(c, models.NewValidationError("approved must be true or false"))
	}

	booking, err := s.bookings.Approve(c.Context(), bookingID, userID, approved)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(booking)
}

// GetBooking handles GET /bookings/:id. Visible to the booker and the
// item owner only.
func (s *Server) GetBooking(c *fiber.Ctx) error {
	viewerID, err := actingUserID(c)
	if err != nil {
		return nil
	}
	bookingID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	booking, err := s.bookings.GetByID(c.Context(), bookingID, viewerID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(booking)
}

// GetBookersBookings handles GET /bookings?state=.
func (s *Server) GetBookersBookings(c *fiber.Ctx) error {
	bookerID, err := actingUserID(c)
	if err != nil {
		return nil
	}
	state, err := models.ParseBookingState(c.Query("state"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	from, size, err := pagingParams(c)
	if err != nil {
		return nil
	}

	bookings, err := s.bookings.ListByBooker(c.Context(), bookerID, state, from, size)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(bookings)
}

// GetOwnersBookings handles GET /bookings/owner?state=.
func (s *Server) GetOwnersBookings(c *fiber.Ctx) error {
	ownerID, err := actingUserID(c)
	if err != nil {
		return nil
	}
	state, err := models.ParseBookingState(c.Query("state"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	from, size, err := pagingParams(c)
	if err != nil {
		return nil
	}

	bookings, err := s.bookings.ListByOwner(c.Context(), ownerID, state, from, size)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(bookings)
}
