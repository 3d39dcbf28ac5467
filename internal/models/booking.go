package models

import "time"

// BookingStatus is the lifecycle state of a booking. A booking starts
// WAITING and is moved exactly once to APPROVED or REJECTED by the
// item's owner.
type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
)

// Booking is a reservation of an item by a non-owner for a date range.
type Booking struct {
	ID       uint          `gorm:"primaryKey" json:"id"`
	Start    time.Time     `gorm:"column:start_date;not null" json:"start"`
	End      time.Time     `gorm:"column:end_date;not null" json:"end"`
	ItemID   uint          `gorm:"not null;index" json:"-"`
	Item     Item          `gorm:"foreignKey:ItemID" json:"-"`
	BookerID uint          `gorm:"not null;index" json:"-"`
	Booker   User          `gorm:"foreignKey:BookerID" json:"-"`
	Status   BookingStatus `gorm:"not null" json:"status"`
}
