package domain

import (
	"time"
)

// ContactMessage stores a message submitted via the public contact
// form. Insert-only: never updated, never deleted.
type ContactMessage struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(80)" json:"name"`
	Email       string    `gorm:"column:email;type:varchar(120)" json:"email"`
	Phone       string    `gorm:"column:phone;type:varchar(20)" json:"phone"`
	Message     string    `gorm:"column:message;type:text" json:"message"`
	SubmittedAt time.Time `gorm:"column:submitted_at" json:"submitted_at"`
}

func (ContactMessage) TableName() string { return "contact_messages" }

// ContactRequest carries the contact form fields. The capitalized
// Phone form key is part of the public surface and kept as-is.
// Fields are free text; absent values are stored empty.
type ContactRequest struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Phone   string `form:"Phone" json:"phone"`
	Message string `form:"message" json:"message"`
}
