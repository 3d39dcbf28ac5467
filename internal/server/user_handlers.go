package server

import (
	"lendhub/internal/cache"
	"lendhub/internal/models"
	"lendhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateUser handles POST /users.
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var in service.CreateUserInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, models.NewValidationError("invalid request body"))
	}

	user, err := s.users.Create(c.Context(), in)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// GetUsers handles GET /users.
func (s *Server) GetUsers(c *fiber.Ctx) error {
	users, err := s.users.List(c.Context())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(users)
}

// GetUser handles GET /users/:id, serving through the cache when it
// is available.
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	var user models.User
	err = cache.CacheAside(c.Context(), cache.UserKey(id), &user, cache.UserTTL, func() error {
		found, ferr := s.users.GetByID(c.Context(), id)
		if ferr != nil {
			return ferr
		}
		user = *found
		return nil
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(user)
}

// PatchUser handles PATCH /users/:id.
func (s *Server) PatchUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	var patch service.UserPatch
	if err := c.BodyParser(&patch); err != nil {
		return models.RespondWithError(c, models.NewValidationError("invalid request body"))
	}

	user, err := s.users.Patch(c.Context(), id, patch)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	cache.InvalidateUser(c.Context(), id)
	return c.JSON(user)
}

// DeleteUser handles DELETE /users/:id.
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.users.Delete(c.Context(), id); err != nil {
		return models.RespondWithError(c, err)
	}

	cache.InvalidateUser(c.Context(), id)
	return c.SendStatus(fiber.StatusOK)
}
