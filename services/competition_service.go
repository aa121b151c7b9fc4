// File: services/competition_service.go
package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"xtrnia/apperr"
	"xtrnia/logger"
	"xtrnia/models"
	"xtrnia/validation"
)

const (
	MsgCompetitionCurrent  = "Competition set as current"
	MsgCompetitionUpcoming = "Competition moved to upcoming only"
)

// CompetitionFilter narrows List. Empty fields match everything.
type CompetitionFilter struct {
	Type   string
	Status string
}

// CompetitionInput is the editable part of a competition.
type CompetitionInput struct {
	Name     string   `json:"name" validate:"required"`
	Badge    string   `json:"badge" validate:"required"`
	Date     string   `json:"date" validate:"required"`
	Image    string   `json:"image" validate:"required"`
	Category string   `json:"category" validate:"required"`
	MinClass int      `json:"minClass" validate:"required,min=1,max=12"`
	MaxClass int      `json:"maxClass" validate:"required,min=1,max=12,gtefield=MinClass"`
	Prizes   []string `json:"prizes" validate:"required,min=1,dive,required"`
	Type     string   `json:"type" validate:"required,oneof=current upcoming"`
	Status   string   `json:"status" validate:"omitempty,oneof=active inactive"`
	Order    int      `json:"order" validate:"gte=0"`
}

func (in *CompetitionInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Badge = strings.TrimSpace(in.Badge)
	in.Date = strings.TrimSpace(in.Date)
	in.Image = strings.TrimSpace(in.Image)
	in.Category = strings.TrimSpace(in.Category)
	in.Type = strings.TrimSpace(in.Type)
	in.Status = strings.TrimSpace(in.Status)
	for i, p := range in.Prizes {
		in.Prizes[i] = strings.TrimSpace(p)
	}
}

// apply copies the input onto c. An empty status keeps c's status, or
// defaults to active for new records.
func (in *CompetitionInput) apply(c *models.Competition) {
	c.Name = in.Name
	c.Badge = in.Badge
	c.Date = in.Date
	c.Image = in.Image
	c.Category = in.Category
	c.MinClass = in.MinClass
	c.MaxClass = in.MaxClass
	c.Prizes = append([]string(nil), in.Prizes...)
	c.Type = models.CompetitionType(in.Type)
	switch {
	case in.Status != "":
		c.Status = models.CompetitionStatus(in.Status)
	case c.Status == "":
		c.Status = models.CompetitionActive
	}
	c.Order = in.Order
}

// CompetitionService manages competitions and the single "current" slot.
type CompetitionService struct {
	db *gorm.DB
}

func NewCompetitionService(db *gorm.DB) *CompetitionService {
	return &CompetitionService{db: db}
}

// List returns competitions matching f, current first, then by display
// order, then newest first.
func (s *CompetitionService) List(ctx context.Context, f CompetitionFilter) ([]models.Competition, error) {
	q := s.db.WithContext(ctx).Model(&models.Competition{})

	switch t := strings.TrimSpace(f.Type); t {
	case "":
	case string(models.CompetitionCurrent), string(models.CompetitionUpcoming):
		q = q.Where("type = ?", t)
	default:
		return nil, apperr.Validationf("type", "field type must be one of: current, upcoming")
	}
	switch st := strings.TrimSpace(f.Status); st {
	case "":
	case string(models.CompetitionActive), string(models.CompetitionInactive):
		q = q.Where("status = ?", st)
	default:
		return nil, apperr.Validationf("status", "field status must be one of: active, inactive")
	}

	competitions := []models.Competition{}
	// "current" sorts before "upcoming" alphabetically
	err := q.Order("type ASC").Order("sort_order ASC").Order("created_at DESC").Find(&competitions).Error
	if err != nil {
		return nil, dbError(err, "Competition")
	}
	return competitions, nil
}

// Get returns one competition by id.
func (s *CompetitionService) Get(ctx context.Context, id string) (*models.Competition, error) {
	var c models.Competition
	if err := s.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, dbError(err, "Competition")
	}
	return &c, nil
}

// Create validates in and stores a new competition. Creating a current
// competition demotes the previous one in the same transaction.
func (s *CompetitionService) Create(ctx context.Context, in CompetitionInput) (*models.Competition, error) {
	in.normalize()
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	var c models.Competition
	in.apply(&c)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if c.IsCurrent() {
			if err := currentCompetition.clearHolders(tx, ""); err != nil {
				return err
			}
		}
		return tx.Create(&c).Error
	})
	if err != nil {
		return nil, dbError(err, "Competition")
	}

	logger.Info.Printf("[CompetitionService.Create] created %s (%s, type=%s)", c.ID, c.Name, c.Type)
	return &c, nil
}

// Update replaces the editable fields of competition id.
func (s *CompetitionService) Update(ctx context.Context, id string, in CompetitionInput) (*models.Competition, error) {
	in.normalize()
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	var c models.Competition
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&c, "id = ?", id).Error; err != nil {
			return err
		}
		in.apply(&c)
		if c.IsCurrent() {
			if err := currentCompetition.clearHolders(tx, c.ID); err != nil {
				return err
			}
		}
		return tx.Save(&c).Error
	})
	if err != nil {
		return nil, dbError(err, "Competition")
	}

	logger.Info.Printf("[CompetitionService.Update] updated %s (type=%s)", c.ID, c.Type)
	return &c, nil
}

// Delete removes competition id.
func (s *CompetitionService) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Competition{}, "id = ?", id)
	if res.Error != nil {
		return dbError(res.Error, "Competition")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("Competition")
	}
	logger.Info.Printf("[CompetitionService.Delete] deleted %s", id)
	return nil
}

// ToggleType flips competition id between current and upcoming. Promoting
// demotes whichever competition held the slot. The returned message
// describes the new state.
func (s *CompetitionService) ToggleType(ctx context.Context, id string) (*models.Competition, string, error) {
	var c models.Competition
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&c, "id = ?", id).Error; err != nil {
			return err
		}
		if c.IsCurrent() {
			if err := tx.Model(&c).Update("type", models.CompetitionUpcoming).Error; err != nil {
				return err
			}
		} else if err := setExclusive(tx, currentCompetition, c.ID); err != nil {
			return err
		}
		return tx.First(&c, "id = ?", id).Error
	})
	if err != nil {
		return nil, "", dbError(err, "Competition")
	}

	msg := MsgCompetitionUpcoming
	if c.IsCurrent() {
		msg = MsgCompetitionCurrent
	}
	logger.Info.Printf("[CompetitionService.ToggleType] %s is now %s", c.ID, c.Type)
	return &c, msg, nil
}

// SetCurrent makes competition id the current one regardless of its
// present type.
func (s *CompetitionService) SetCurrent(ctx context.Context, id string) (*models.Competition, error) {
	var c models.Competition
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := setExclusive(tx, currentCompetition, id); err != nil {
			return err
		}
		return tx.First(&c, "id = ?", id).Error
	})
	if err != nil {
		return nil, dbError(err, "Competition")
	}
	return &c, nil
}

// ResetAllToUpcoming demotes every competition and reports how many
// changed.
func (s *CompetitionService) ResetAllToUpcoming(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).Model(&models.Competition{}).
		Where("type <> ?", models.CompetitionUpcoming).
		Update("type", models.CompetitionUpcoming)
	if res.Error != nil {
		return 0, dbError(res.Error, "Competition")
	}
	return res.RowsAffected, nil
}

// ReplaceAll deletes every competition and stores inputs instead, all or
// nothing. Used by the seed command.
func (s *CompetitionService) ReplaceAll(ctx context.Context, inputs []CompetitionInput) ([]models.Competition, error) {
	created := make([]models.Competition, 0, len(inputs))
	current := 0
	for i := range inputs {
		inputs[i].normalize()
		if err := validation.Struct(&inputs[i]); err != nil {
			return nil, err
		}
		if inputs[i].Type == string(models.CompetitionCurrent) {
			current++
		}
	}
	if current > 1 {
		return nil, apperr.Validationf("type", "at most one competition may be current, got %d", current)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Competition{}).Error; err != nil {
			return err
		}
		for i := range inputs {
			var c models.Competition
			inputs[i].apply(&c)
			if err := tx.Create(&c).Error; err != nil {
				return err
			}
			created = append(created, c)
		}
		return nil
	})
	if err != nil {
		return nil, dbError(err, "Competition")
	}
	return created, nil
}
