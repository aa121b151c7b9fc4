// File: models/brochure.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ----------------------- brochure model -----------------------

// Brochure is a PDF stored on the asset host. At most one row is active;
// the public site links to it.
type Brochure struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	FileURL   string    `gorm:"size:500;not null" json:"fileUrl"`
	PublicID  string    `gorm:"size:300;not null" json:"publicId"` // asset host key, used for deletion
	IsActive  bool      `gorm:"not null;default:false;uniqueIndex:idx_brochures_single_active,where:is_active = true" json:"isActive"`
	FileSize  int64     `gorm:"not null" json:"fileSize"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a UUID when the caller did not.
func (b *Brochure) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// PublicBrochure is the subset exposed by the public active-brochure endpoint.
type PublicBrochure struct {
	Name    string `json:"name"`
	FileURL string `json:"fileUrl"`
}

// Public strips storage details from b.
func (b *Brochure) Public() PublicBrochure {
	return PublicBrochure{Name: b.Name, FileURL: b.FileURL}
}
