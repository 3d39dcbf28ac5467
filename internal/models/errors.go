package models

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Error codes for the application's error taxonomy. Handlers never
// branch on message text, only on these codes.
const (
	CodeNotFound          = "NOT_FOUND"
	CodeValidation        = "VALIDATION_ERROR"
	CodeUnauthorized      = "UNAUTHORIZED_CHANGE"
	CodeSelfBooking       = "SELF_BOOKING"
	CodeNotAvailable      = "NOT_AVAILABLE"
	CodeStatusChange      = "STATUS_CHANGE"
	CodeCommentNotAllowed = "COMMENT_NOT_ALLOWED"
	CodeConflict          = "CONFLICT"
	CodeUnknownState      = "UNKNOWN_STATE"
	CodeInternal          = "INTERNAL_ERROR"
)

// ErrorResponse is the wire shape of every error body.
type ErrorResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Error       string    `json:"error"`
	Description string    `json:"description"`
}

// AppError is a typed application error carrying a taxonomy code.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError reports a missing resource, or a resource whose
// existence is deliberately hidden from the requesting user.
func NewNotFoundError(resource string, id uint) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with id %d not found", resource, id),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

// NewUnauthorizedChangeError reports an owner-only mutation attempted
// by somebody else.
func NewUnauthorizedChangeError(resource string, id uint) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: fmt.Sprintf("change of %s with id %d is not permitted", resource, id),
	}
}

func NewSelfBookingError() *AppError {
	return &AppError{Code: CodeSelfBooking, Message: "booking your own item is not allowed"}
}

func NewNotAvailableError(itemID uint) *AppError {
	return &AppError{
		Code:    CodeNotAvailable,
		Message: fmt.Sprintf("item with id %d is not available", itemID),
	}
}

// NewStatusChangeError reports an approve/reject attempt on a booking
// that already left the WAITING state.
func NewStatusChangeError(bookingID uint) *AppError {
	return &AppError{
		Code:    CodeStatusChange,
		Message: fmt.Sprintf("booking with id %d is not waiting for approval", bookingID),
	}
}

func NewCommentNotAllowedError(itemID uint) *AppError {
	return &AppError{
		Code:    CodeCommentNotAllowed,
		Message: fmt.Sprintf("comment for item %d is not legal", itemID),
	}
}

func NewConflictError(message string, err error) *AppError {
	return &AppError{Code: CodeConflict, Message: message, Err: err}
}

func NewUnknownStateError(state string) *AppError {
	return &AppError{Code: CodeUnknownState, Message: "Unknown state: " + state}
}

func NewInternalError(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "internal server error", Err: err}
}

// httpStatus maps an error code to the HTTP status of the response.
func httpStatus(code string) int {
	switch code {
	case CodeNotFound, CodeUnauthorized, CodeSelfBooking:
		return fiber.StatusNotFound
	case CodeValidation, CodeNotAvailable, CodeStatusChange, CodeCommentNotAllowed, CodeUnknownState:
		return fiber.StatusBadRequest
	case CodeConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// category maps an error code to the short error category of the body.
func category(code string) string {
	switch code {
	case CodeNotFound:
		return "Resource not found"
	case CodeUnauthorized, CodeSelfBooking, CodeStatusChange, CodeCommentNotAllowed:
		return "Forbidden operation"
	case CodeValidation, CodeUnknownState:
		return "Validation error"
	case CodeNotAvailable:
		return "Conflict operation"
	case CodeConflict:
		return "Data integrity violation"
	default:
		return "Unexpected error"
	}
}

// RespondWithError renders err as the structured error body, deriving
// the HTTP status and category from the error's taxonomy code.
// Non-AppError values fall through to a 500.
func RespondWithError(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = NewInternalError(err)
	}
	status := httpStatus(appErr.Code)
	return c.Status(status).JSON(ErrorResponse{
		Status:      strconv.Itoa(status),
		Timestamp:   time.Now(),
		Error:       category(appErr.Code),
		Description: appErr.Message,
	})
}
