// Package service implements the business logic of the marketplace on
// top of the repository layer.
package service

import (
	"regexp"
	"strings"

	"lendhub/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// validateUser checks user fields after creation or patch merging.
func validateUser(user *models.User) error {
	if strings.TrimSpace(user.Name) == "" {
		return models.NewValidationError("name must not be blank")
	}
	if !emailRegex.MatchString(user.Email) {
		return models.NewValidationError("email is not well-formed")
	}
	return nil
}

// validateItem checks item fields after creation or patch merging.
func validateItem(item *models.Item) error {
	if strings.TrimSpace(item.Name) == "" {
		return models.NewValidationError("name must not be blank")
	}
	if strings.TrimSpace(item.Description) == "" {
		return models.NewValidationError("description must not be blank")
	}
	return nil
}

// pageWindow converts from/size query values into a limit/offset pair.
// A nil from means the full unpaginated result (limit 0). Offset is
// computed page-wise: page = from/size, offset = page*size.
func pageWindow(from, size *int) (limit, offset int, err error) {
	if from == nil {
		return 0, 0, nil
	}
	if *from < 0 {
		return 0, 0, models.NewValidationError("from must not be negative")
	}
	if size == nil || *size <= 0 {
		return 0, 0, models.NewValidationError("size must be positive when from is set")
	}
	return *size, (*from / *size) * *size, nil
}
