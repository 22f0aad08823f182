package migration

import (
	"github.com/inkwell/inkwell-backend/internal/domain"
	"gorm.io/gorm"
)

// Run creates or updates the owned tables
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Post{},
		&domain.ContactMessage{},
	)
}
