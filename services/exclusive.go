// File: services/exclusive.go
package services

import (
	"gorm.io/gorm"

	"xtrnia/apperr"
	"xtrnia/models"
)

// exclusiveFlag describes a column where at most one row may hold the
// "on" value.
type exclusiveFlag struct {
	entity   string
	column   string
	on, off  any
	newModel func() any
}

var (
	currentCompetition = exclusiveFlag{
		entity:   "Competition",
		column:   "type",
		on:       models.CompetitionCurrent,
		off:      models.CompetitionUpcoming,
		newModel: func() any { return &models.Competition{} },
	}
	activeBrochure = exclusiveFlag{
		entity:   "Brochure",
		column:   "is_active",
		on:       true,
		off:      false,
		newModel: func() any { return &models.Brochure{} },
	}
)

// clearHolders resets every holder of the flag except the row with id
// exceptID. An empty exceptID clears all holders.
func (f exclusiveFlag) clearHolders(tx *gorm.DB, exceptID string) error {
	q := tx.Model(f.newModel()).Where(f.column+" = ?", f.on)
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}
	return q.Update(f.column, f.off).Error
}

// setExclusive gives the flag to the row with id and takes it from every
// other row. It must run inside a transaction so readers never observe
// two holders.
func setExclusive(tx *gorm.DB, f exclusiveFlag, id string) error {
	var count int64
	if err := tx.Model(f.newModel()).Where("id = ?", id).Count(&count).Error; err != nil {
		return dbError(err, f.entity)
	}
	if count == 0 {
		return apperr.NotFoundf(f.entity)
	}

	if err := f.clearHolders(tx, id); err != nil {
		return dbError(err, f.entity)
	}
	if err := tx.Model(f.newModel()).Where("id = ?", id).Update(f.column, f.on).Error; err != nil {
		return dbError(err, f.entity)
	}
	return nil
}
