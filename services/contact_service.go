// File: services/contact_service.go
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

const MsgContactThanks = "Thank you for contacting us! We will get back to you soon."

// ContactInput is a public contact form submission.
type ContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,basic_email"`
	Phone   string `json:"phone" validate:"required,in_mobile"`
	Message string `json:"message" validate:"required"`
}

// normalize trims every field, strips all whitespace from the phone number
// and lowercases the email.
func (in *ContactInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.Join(strings.Fields(in.Phone), "")
	in.Message = strings.TrimSpace(in.Message)
}

// ContactService stores contact submissions.
type ContactService struct {
	db *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

// Submit validates and stores a submission.
func (s *ContactService) Submit(ctx context.Context, in ContactInput) (*models.ContactSubmission, error) {
	in.normalize()
	if in.Name == "" || in.Email == "" || in.Phone == "" || in.Message == "" {
		return nil, apperr.Validationf("", "All fields are required")
	}
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	sub := models.ContactSubmission{
		Name:    in.Name,
		Phone:   in.Phone,
		Email:   in.Email,
		Message: in.Message,
	}
	if err := s.db.WithContext(ctx).Create(&sub).Error; err != nil {
		return nil, dbError(err, "Contact submission")
	}
	logger.Info.Printf("[ContactService.Submit] stored submission %s", sub.ID)
	return &sub, nil
}

// List returns all submissions, newest first.
func (s *ContactService) List(ctx context.Context) ([]models.ContactSubmission, error) {
	subs := []models.ContactSubmission{}
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&subs).Error; err != nil {
		return nil, dbError(err, "Contact submission")
	}
	return subs, nil
}

// Delete removes submission id.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.ContactSubmission{}, "id = ?", id)
	if res.Error != nil {
		return dbError(res.Error, "Contact submission")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("Contact submission")
	}
	return nil
}
