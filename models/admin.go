// Package models defines the persisted entities used across the application.
// File: models/admin.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ----------------------- admin model -----------------------

// Admin is the single site administrator. The bcrypt hash never leaves the
// server: it is excluded from JSON.
type Admin struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Username     string    `gorm:"size:150;not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"column:password;size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a UUID when the caller did not.
func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
