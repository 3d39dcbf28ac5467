package models

import "time"

// Response DTOs. Entities are flattened for the wire so that nested
// users and items only expose the fields the API contract names.

// UserShort identifies a user inside a nested payload.
type UserShort struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ItemShort identifies an item inside a booking payload.
type ItemShort struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// BookingShort is the owner-only last/next booking annotation on items.
type BookingShort struct {
	ID       uint `json:"id"`
	BookerID uint `json:"bookerId"`
}

// BookingResponse is the full booking payload.
type BookingResponse struct {
	ID     uint          `json:"id"`
	Item   ItemShort     `json:"item"`
	Start  time.Time     `json:"start"`
	End    time.Time     `json:"end"`
	Status BookingStatus `json:"status"`
	Booker UserShort     `json:"booker"`
}

// CommentResponse is a comment as shown on an item.
type CommentResponse struct {
	ID         uint      `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

// ItemResponse is the plain item payload used by create, patch, search
// and request fulfillment listings.
type ItemResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *uint  `json:"requestId,omitempty"`
}

// ItemDetailResponse is the item payload with booking annotations and
// comments. LastBooking and NextBooking are set only for the owner.
type ItemDetailResponse struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Available   bool              `json:"available"`
	RequestID   *uint             `json:"requestId,omitempty"`
	LastBooking *BookingShort     `json:"lastBooking"`
	NextBooking *BookingShort     `json:"nextBooking"`
	Comments    []CommentResponse `json:"comments"`
}

// RequestResponse is a request with its fulfilling items.
type RequestResponse struct {
	ID          uint           `json:"id"`
	Description string         `json:"description"`
	Created     time.Time      `json:"created"`
	Items       []ItemResponse `json:"items"`
}

func ToBookingResponse(b *Booking) BookingResponse {
	return BookingResponse{
		ID:     b.ID,
		Item:   ItemShort{ID: b.Item.ID, Name: b.Item.Name},
		Start:  b.Start,
		End:    b.End,
		Status: b.Status,
		Booker: UserShort{ID: b.Booker.ID, Name: b.Booker.Name},
	}
}

func ToBookingResponses(bookings []Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, ToBookingResponse(&bookings[i]))
	}
	return out
}

func ToBookingShort(b *Booking) *BookingShort {
	if b == nil {
		return nil
	}
	return &BookingShort{ID: b.ID, BookerID: b.BookerID}
}

func ToCommentResponse(c *Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.Author.Name,
		Created:    c.Created,
	}
}

func ToCommentResponses(comments []Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, ToCommentResponse(&comments[i]))
	}
	return out
}

func ToItemResponse(item *Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Available:   item.Available,
		RequestID:   item.RequestID,
	}
}

func ToItemResponses(items []Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for i := range items {
		out = append(out, ToItemResponse(&items[i]))
	}
	return out
}

func ToItemDetailResponse(item *Item) ItemDetailResponse {
	return ItemDetailResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Available:   item.Available,
		RequestID:   item.RequestID,
		Comments:    []CommentResponse{},
	}
}

func ToRequestResponse(r *Request, items []Item) RequestResponse {
	return RequestResponse{
		ID:          r.ID,
		Description: r.Description,
		Created:     r.Created,
		Items:       ToItemResponses(items),
	}
}
