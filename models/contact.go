// File: models/contact.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactSubmission is a message from the public contact form. Rows are
// never updated, only deleted by an admin.
type ContactSubmission struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Phone     string    `gorm:"size:20;not null" json:"phone"`
	Email     string    `gorm:"size:254;not null" json:"email"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

// BeforeCreate assigns a UUID when the caller did not.
func (s *ContactSubmission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
