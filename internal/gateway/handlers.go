package gateway

import (
	"strconv"
	"strings"
	"time"

	"lendhub/internal/models"

	"github.com/gofiber/fiber/v2"
)

type userBody struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type itemBody struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type commentBody struct {
	Text string `json:"text"`
}

type requestBody struct {
	Description string `json:"description"`
}

type bookingBody struct {
	ItemID *uint      `json:"itemId"`
	Start  *time.Time `json:"start"`
	End    *time.Time `json:"end"`
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// CreateUser validates POST /users and forwards it.
func (g *Gateway) CreateUser(c *fiber.Ctx) error {
	var body userBody
	if err := c.BodyParser(&body); err != nil {
		return models.RespondWithError(c, models.NewValidationError("invalid request body"))
	}
	if blank(body.Name) {
		return models.RespondWithError(c, models.NewValidationError("name must not be blank"))
	}
	if body.Email == nil || !emailRegex.MatchString(*body.Email) {
		return models.RespondWithError(c, models.NewValidationError("email must be a well-formed address"))
	}
	return g.forward(c)
}

// PatchUser validates PATCH /users/:id and forwards it.
func (g *Gateway) PatchUser(c *fiber.Ctx) error {
	if err := requireID(c); err != nil {
		return nil
	}
	var body userBody
	if err := c.BodyParser(&body); err != nil {
		return models.RespondWithError(c, models.NewValidationError("invalid request body"))
	}
	if body.Email != nil && !emailRegex.MatchString(*body.Email) {
		return models.RespondWithError(c, models.NewValidationError("email must be a well-formed address"))
	}
	return g.forward(c)
}

// DeleteUser validates DELETE /users/:id and forwards it.
func (g *Gateway) DeleteUser(c *fiber.Ctx) error {
	if err := requireID(c); err != nil {
		return nil
	}
	return g.forward(c)
}

// GetByPathID validates the path id and forwards.
func (g *Gateway) GetByPathID(c *fiber.Ctx) error {
	if err := requireID(c); err != nil {
		return nil
	}
	return g.forward(c)
}

// GetWithUserAndPathID validates the user header and path id, then
// forwards.
func (g *Gateway) GetWithUserAndPathID(c *fiber.Ctx) error {
	if err := requireUser(c); err != nil {
		return nil
	}
	if err := requireID(c); err != nil {
		return nil
	}
	return g.forward(c)
}

// ListForUser validates the user header and forwards.
func (g *Gateway) ListForUser(c *fiber.Ctx) error {
	if err := requireUser(c); err != nil {
		return nil
	}
	return g.forward(c)
}

// ListWithPaging validates the user header and paging parameters,
// then forwards.
func (g *Gateway) ListWithPaging(c *fiber.Ctx) error {
	if err := requireUser(c); err != nil {
		return nil
	}
	if err := checkPaging(c); err != nil {
		return nil
	}
	return g.forward(c)
}

// CreateItem validates POST /items and forwards it.
func (g *Gateway) CreateItem(c *fiber.Ctx) error {
	if err := requireUser(c); err != nil {
		return nil
	}
	var body itemBody
	if err := c.BodyParser(&body); err != nil {
		return models.RespondWithError(c, models.NewValidationError("invalid request body"))
	}
	if blank(body.Name) {
		return models.RespondWithError(c, models.NewValidationError("name must not be blank"))
	}
	if blank(body.Description) {
		return models.RespondWithError(c, models.NewValidationError("description must not be blank"))
	}
	if body.Available == nil {
		return models.RespondWithError(c, models.NewValidationError("available must be provided"))
	}
	return g.forward(c)
}

// PatchItem validates PATCH /items/:id and forwards it.
func (g *Gateway) PatchItem(c *fiber.Ctx) error {
	if err := requireUser(c); err != nil {
		return nil
	}
	if err := requireID(c); err != nil {
		return nil
	}
	return g.forward(c)
}

// SearchItems validates GET /items/search and forwards it. Blank
// search text is answered here with an empty list, without an
// upstream call.
func (g *Gateway) SearchItems(c *fiber.Ctx) error {
	if err := requireUser(c); err != nil {
		return nil
	}
	if err := checkPaging(c); err != nil {
		return nil
	}
	if strings.TrimSpace(c.Query("text")) == "" {
		return c.JSON([]models.ItemResponse{})
	}
	return g.forward(c)
}

// CreateComment validates POST /items/:id/comment and forwards it.
func (g *Gateway) CreateComment(c *fiber.Ctx) error {
	if err := requireUser(c); err != nil {
		return nil
	}
	if err := requireID(c); err != nil {
		return nil
	}
	var body commentBody
	if err := c.BodyParser(&body); err != nil {
		return models.RespondWithError(c, models.NewValidationError("invalid request body"))
	}
	if strings.TrimSpace(body.Text) == "" {
		return models.RespondWithError(c, models.NewValidationError("comment text must not be blank"))
	}
	return g.forward(c)
}

// CreateRequest validates POST /requests and forwards it.
func (g *Gateway) CreateRequest(c *fiber.Ctx) error {
	if err := requireUser(c); err != nil {
		return nil
	}
	var body requestBody
	if err := c.BodyParser(&body); err != nil {
		return models.RespondWithError(c, models.NewValidationError("invalid request body"))
	}
	if strings.TrimSpace(body.Description) == "" {
		return models.RespondWithError(c, models.NewValidationError("description must not be blank"))
	}
	return g.forward(c)
}

// CreateBooking validates POST /bookings and forwards it.
func (g *Gateway) CreateBooking(c *fiber.Ctx) error {
	if err := requireUser(c); err != nil {
		return nil
	}
	var body bookingBody
	if err := c.BodyParser(&body); err != nil {
		return models.RespondWithError(c, models.NewValidationError("invalid request body"))
	}
	if body.ItemID == nil || body.Start == nil || body.End == nil {
		return models.RespondWithError(c, models.NewValidationError("itemId, start and end must be provided"))
	}
	if body.Start.Before(time.Now()) {
		return models.RespondWithError(c, models.NewValidationError("start must not be in the past"))
	}
	if !body.Start.Before(*body.End) {
		return models.RespondWithError(c, models.NewValidationError("start must be before end"))
	}
	return g.forward(c)
}

// ApproveBooking validates PATCH /bookings/:id and forwards it.
func (g *Gateway) ApproveBooking(c *fiber.Ctx) error {
	if err := requireUser(c); err != nil {
		return nil
	}
	if err := requireID(c); err != nil {
		return nil
	}
	if _, err := strconv.ParseBool(c.Query("approved")); err != nil {
		return models.RespondWithError(c, models.NewValidationError("approved must be true or false"))
	}
	return g.forward(c)
}

// ListBookings validates GET /bookings and GET /bookings/owner,
// rejecting unknown state values before they reach the server.
func (g *Gateway) ListBookings(c *fiber.Ctx) error {
	if err := requireUser(c); err != nil {
		return nil
	}
	if _, err := models.ParseBookingState(c.Query("state")); err != nil {
		return models.RespondWithError(c, err)
	}
	if err := checkPaging(c); err != nil {
		return nil
	}
	return g.forward(c)
}
