package database

import (
	"gorm.io/gorm"
)

// InInsertionOrder sorts snapshot rows by their saved position
func InInsertionOrder() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}
}
