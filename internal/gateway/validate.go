package gateway

import (
	"errors"
	"regexp"
	"strconv"

	"lendhub/internal/models"

	"github.com/gofiber/fiber/v2"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// errResponseWritten signals that the handler already wrote an error
// response to the client.
var errResponseWritten = errors.New("response already written")

func requireUser(c *fiber.Ctx) error {
	raw := c.Get(userHeader)
	if raw == "" {
		_ = models.RespondWithError(c, models.NewValidationError("missing "+userHeader+" header"))
		return errResponseWritten
	}
	if id, err := strconv.ParseUint(raw, 10, 32); err != nil || id == 0 {
		_ = models.RespondWithError(c, models.NewValidationError("invalid "+userHeader+" header"))
		return errResponseWritten
	}
	return nil
}

func requireID(c *fiber.Ctx) error {
	if id, err := strconv.ParseUint(c.Params("id"), 10, 32); err != nil || id == 0 {
		_ = models.RespondWithError(c, models.NewValidationError("invalid id"))
		return errResponseWritten
	}
	return nil
}

// checkPaging validates the optional from and size query parameters.
// from must come with size; from must be zero or positive, size
// strictly positive.
func checkPaging(c *fiber.Ctx) error {
	rawFrom, rawSize := c.Query("from"), c.Query("size")
	if rawFrom != "" {
		from, err := strconv.Atoi(rawFrom)
		if err != nil || from < 0 {
			_ = models.RespondWithError(c, models.NewValidationError("from must be zero or positive"))
			return errResponseWritten
		}
		if rawSize == "" {
			_ = models.RespondWithError(c, models.NewValidationError("size must accompany from"))
			return errResponseWritten
		}
	}
	if rawSize != "" {
		size, err := strconv.Atoi(rawSize)
		if err != nil || size <= 0 {
			_ = models.RespondWithError(c, models.NewValidationError("size must be positive"))
			return errResponseWritten
		}
	}
	return nil
}
