package models

import "time"

// Comment is feedback left on an item by a user who has completed an
// approved booking of it. Comments are immutable.
type Comment struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Text     string    `gorm:"not null" json:"text"`
	ItemID   uint      `gorm:"not null;index" json:"-"`
	Item     Item      `gorm:"foreignKey:ItemID" json:"-"`
	AuthorID uint      `gorm:"not null" json:"-"`
	Author   User      `gorm:"foreignKey:AuthorID" json:"-"`
	Created  time.Time `gorm:"autoCreateTime" json:"created"`
}
