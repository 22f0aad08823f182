package repository

import (
	"github.com/inkwell/inkwell-backend/internal/domain"
	"gorm.io/gorm"
)

// ContactRepository is the contact message store interface.
// Messages are append-only.
type ContactRepository interface {
	Create(msg *domain.ContactMessage) error
}

// contactRepository GORM implementation
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

// Create inserts a new contact message
func (r *contactRepository) Create(msg *domain.ContactMessage) error {
	return r.db.Create(msg).Error
}
