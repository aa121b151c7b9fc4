// File: models/competition.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CompetitionType marks whether a competition is the promoted "current" one.
type CompetitionType string

const (
	CompetitionCurrent  CompetitionType = "current"
	CompetitionUpcoming CompetitionType = "upcoming"
)

// CompetitionStatus controls public visibility.
type CompetitionStatus string

const (
	CompetitionActive   CompetitionStatus = "active"
	CompetitionInactive CompetitionStatus = "inactive"
)

// ----------------------- competition model -----------------------

// Competition is an inter-school competition listed on the site.
// At most one row may have Type == CompetitionCurrent; the partial unique
// index enforces it in the database.
type Competition struct {
	ID       string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name     string `gorm:"size:200;not null" json:"name"`
	Badge    string `gorm:"size:100;not null" json:"badge"`
	Date     string `gorm:"size:100;not null" json:"date"` // display label, not a parsed date
	Image    string `gorm:"size:500;not null" json:"image"`
	Category string `gorm:"size:100;not null" json:"category"`
	MinClass int    `gorm:"not null" json:"minClass"`
	MaxClass int    `gorm:"not null" json:"maxClass"`

	// first entry is conventionally a header line
	Prizes datatypes.JSONSlice[string] `gorm:"not null" json:"prizes"`

	Type      CompetitionType   `gorm:"size:20;not null;uniqueIndex:idx_competitions_single_current,where:type = 'current'" json:"type"`
	Status    CompetitionStatus `gorm:"size:20;not null;default:active;index" json:"status"`
	Order     int               `gorm:"column:sort_order;not null;default:0" json:"order"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// BeforeCreate assigns a UUID when the caller did not.
func (c *Competition) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// IsCurrent reports whether c holds the single "current" slot.
func (c *Competition) IsCurrent() bool {
	return c.Type == CompetitionCurrent
}
