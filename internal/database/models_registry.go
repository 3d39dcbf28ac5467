package database

import "lendhub/internal/models"

// PersistentModels returns the authoritative set of schema-managed
// GORM models. Migration order matters: referenced tables come before
// the tables holding their foreign keys.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Request{},
		&models.Item{},
		&models.Booking{},
		&models.Comment{},
	}
}
