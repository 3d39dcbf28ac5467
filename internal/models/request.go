package models

import "time"

// Request is an open ask for an item that does not exist in the catalog
// yet. It is read-only after creation and can accumulate fulfilling items.
type Request struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"not null" json:"description"`
	RequesterID uint      `gorm:"not null;index" json:"-"`
	Requester   User      `gorm:"foreignKey:RequesterID" json:"-"`
	Created     time.Time `gorm:"not null" json:"created"`
}
