package models

// Item is a shareable good listed by its owner. An item may optionally
// fulfill an open request, in which case RequestID links back to it.
type Item struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Name        string   `gorm:"not null" json:"name"`
	Description string   `gorm:"not null" json:"description"`
	Available   bool     `gorm:"not null" json:"available"`
	OwnerID     uint     `gorm:"not null;index" json:"-"`
	Owner       User     `gorm:"foreignKey:OwnerID" json:"-"`
	RequestID   *uint    `gorm:"index" json:"requestId,omitempty"`
	Request     *Request `gorm:"foreignKey:RequestID" json:"-"`
}
