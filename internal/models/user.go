// Package models contains data structures for the application's domain models.
package models

// User represents an account that can own items, book items and post requests.
type User struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`
}
