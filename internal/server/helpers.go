package server

import (
	"errors"
	"strconv"

	"lendhub/internal/models"

	"github.com/gofiber/fiber/v2"
)

// userHeader carries the id of the acting user on every request.
const userHeader = "X-Sharer-User-Id"

// errResponseWritten signals that the handler already wrote an error
// response to the client.
var errResponseWritten = errors.New("response already written")

// actingUserID reads the acting user id from the request header. On a
// missing or malformed header it writes a 400 and returns
// errResponseWritten.
func actingUserID(c *fiber.Ctx) (uint, error) {
	raw := c.Get(userHeader)
	if raw == "" {
		_ = models.RespondWithError(c, models.NewValidationError("missing "+userHeader+" header"))
		return 0, errResponseWritten
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		_ = models.RespondWithError(c, models.NewValidationError("invalid "+userHeader+" header"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// parseID parses a positive numeric path parameter. On failure it
// writes a 400 and returns errResponseWritten.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		_ = models.RespondWithError(c, models.NewValidationError("invalid "+name))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// pagingParams reads the optional from and size query parameters.
// Absent parameters come back as nil; range checks happen in the
// service layer.
func pagingParams(c *fiber.Ctx) (from, size *int, err error) {
	if raw := c.Query("from"); raw != "" {
		v, perr := strconv.Atoi(raw)
		if perr != nil {
			_ = models.RespondWithError(c, models.NewValidationError("invalid from parameter"))
			return nil, nil, errResponseWritten
		}
		from = &v
	}
	if raw := c.Query("size"); raw != "" {
		v, perr := strconv.Atoi(raw)
		if perr != nil {
			_ = models.RespondWithError(c, models.NewValidationError("invalid size parameter"))
			return nil, nil, errResponseWritten
		}
		size = &v
	}
	return from, size, nil
}
