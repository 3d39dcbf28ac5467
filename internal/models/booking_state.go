package models

import "strings"

// BookingState is the query filter for booking listings. It is distinct
// from BookingStatus: the time-window states (CURRENT, PAST, FUTURE)
// filter by date range only, and APPROVED is intentionally not a
// queryable state.
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

// ParseBookingState converts a query-parameter value into a
// BookingState. An empty value defaults to ALL. Unknown values return
// an UnknownState error so the request is rejected before it reaches
// the service layer.
func ParseBookingState(s string) (BookingState, error) {
	if s == "" {
		return StateAll, nil
	}
	switch BookingState(strings.ToUpper(s)) {
	case StateAll:
		return StateAll, nil
	case StateCurrent:
		return StateCurrent, nil
	case StatePast:
		return StatePast, nil
	case StateFuture:
		return StateFuture, nil
	case StateWaiting:
		return StateWaiting, nil
	case StateRejected:
		return StateRejected, nil
	default:
		return "", NewUnknownStateError(s)
	}
}
