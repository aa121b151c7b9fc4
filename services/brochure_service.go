// File: services/brochure_service.go
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"xtrnia/apperr"
	"xtrnia/assets"
	"xtrnia/logger"
	"xtrnia/models"
	"xtrnia/validation"
)

// BrochureInput registers a PDF that was already uploaded to the asset host.
type BrochureInput struct {
	Name     string `json:"name" validate:"required"`
	FileURL  string `json:"fileUrl" validate:"required,url"`
	PublicID string `json:"publicId" validate:"required"`
	FileSize int64  `json:"fileSize" validate:"required,gt=0"`
}

// BrochureUpdate changes the name and/or the active flag. Nil fields are
// left alone.
type BrochureUpdate struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"isActive"`
}

// BrochureService manages brochures and the single active slot.
type BrochureService struct {
	db   *gorm.DB
	host assets.Host
}

func NewBrochureService(db *gorm.DB, host assets.Host) *BrochureService {
	return &BrochureService{db: db, host: host}
}

// List returns all brochures, the active one first, then newest first.
func (s *BrochureService) List(ctx context.Context) ([]models.Brochure, error) {
	brochures := []models.Brochure{}
	err := s.db.WithContext(ctx).Order("is_active DESC").Order("created_at DESC").Find(&brochures).Error
	if err != nil {
		return nil, dbError(err, "Brochure")
	}
	return brochures, nil
}

// Active returns the brochure the public site links to.
func (s *BrochureService) Active(ctx context.Context) (*models.Brochure, error) {
	var b models.Brochure
	err := s.db.WithContext(ctx).Where("is_active = ?", true).Order("updated_at DESC").First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "No active brochure found")
	}
	if err != nil {
		return nil, dbError(err, "Brochure")
	}
	return &b, nil
}

// Create stores a new, inactive brochure.
func (s *BrochureService) Create(ctx context.Context, in BrochureInput) (*models.Brochure, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.FileURL = strings.TrimSpace(in.FileURL)
	in.PublicID = strings.TrimSpace(in.PublicID)
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	b := models.Brochure{
		Name:     in.Name,
		FileURL:  in.FileURL,
		PublicID: in.PublicID,
		FileSize: in.FileSize,
	}
	if err := s.db.WithContext(ctx).Create(&b).Error; err != nil {
		return nil, dbError(err, "Brochure")
	}
	logger.Info.Printf("[BrochureService.Create] created %s (%s)", b.ID, b.Name)
	return &b, nil
}

// Update renames and/or (de)activates brochure id. Activating deactivates
// every other brochure in the same transaction.
func (s *BrochureService) Update(ctx context.Context, id string, in BrochureUpdate) (*models.Brochure, error) {
	var name string
	if in.Name != nil {
		name = strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, apperr.Required("name")
		}
	}

	var b models.Brochure
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&b, "id = ?", id).Error; err != nil {
			return err
		}
		if in.Name != nil {
			if err := tx.Model(&b).Update("name", name).Error; err != nil {
				return err
			}
		}
		if in.IsActive != nil {
			if *in.IsActive {
				if err := setExclusive(tx, activeBrochure, b.ID); err != nil {
					return err
				}
			} else if err := tx.Model(&b).Update("is_active", false).Error; err != nil {
				return err
			}
		}
		return tx.First(&b, "id = ?", id).Error
	})
	if err != nil {
		return nil, dbError(err, "Brochure")
	}
	return &b, nil
}

// SetActive makes brochure id the only active one.
func (s *BrochureService) SetActive(ctx context.Context, id string) (*models.Brochure, error) {
	active := true
	return s.Update(ctx, id, BrochureUpdate{IsActive: &active})
}

// Delete removes brochure id. The stored PDF is removed best-effort; a
// failure there is logged and does not keep the record.
func (s *BrochureService) Delete(ctx context.Context, id string) error {
	var b models.Brochure
	if err := s.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return dbError(err, "Brochure")
	}

	if b.PublicID != "" && s.host != nil {
		if err := s.host.Delete(ctx, assets.KindPDF, b.PublicID); err != nil {
			logger.Warn.Printf("[BrochureService.Delete] could not delete asset %s: %v", b.PublicID, err)
		}
	}

	res := s.db.WithContext(ctx).Delete(&models.Brochure{}, "id = ?", b.ID)
	if res.Error != nil {
		return dbError(res.Error, "Brochure")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("Brochure")
	}
	logger.Info.Printf("[BrochureService.Delete] deleted %s", b.ID)
	return nil
}
