// File: services/admin_service.go
package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"xtrnia/apperr"
	"xtrnia/logger"
	"xtrnia/models"
)

const (
	MinPasswordLength = 8

	msgInvalidCredentials = "Invalid username or password"
)

// ComparePasswords checks if the given password matches the hashed password
func ComparePasswords(hashedPassword, plainPassword string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
	return err == nil
}

// AdminService authenticates and maintains administrator accounts.
type AdminService struct {
	db   *gorm.DB
	cost int
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db, cost: bcrypt.DefaultCost}
}

// HashPassword hashes plain with the service's bcrypt cost.
func (s *AdminService) HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), s.cost)
	if err != nil {
		return "", apperr.Wrap(apperr.Unexpected, "failed to hash password", err)
	}
	return string(hash), nil
}

// Authenticate returns the admin whose credentials match. Unknown users and
// wrong passwords produce the same error.
func (s *AdminService) Authenticate(ctx context.Context, username, password string) (*models.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperr.Validationf("", "Username and password are required")
	}

	var admin models.Admin
	err := s.db.WithContext(ctx).First(&admin, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.InvalidCredentials, msgInvalidCredentials)
	}
	if err != nil {
		return nil, dbError(err, "Admin")
	}
	if !ComparePasswords(admin.PasswordHash, password) {
		return nil, apperr.New(apperr.InvalidCredentials, msgInvalidCredentials)
	}
	return &admin, nil
}

// Get returns admin id.
func (s *AdminService) Get(ctx context.Context, id string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.WithContext(ctx).First(&admin, "id = ?", id).Error; err != nil {
		return nil, dbError(err, "Admin")
	}
	return &admin, nil
}

// ChangePassword replaces admin id's password after checking the current one.
func (s *AdminService) ChangePassword(ctx context.Context, id, current, next string) error {
	if current == "" {
		return apperr.Required("currentPassword")
	}
	if next == "" {
		return apperr.Required("newPassword")
	}
	if len(next) < MinPasswordLength {
		return apperr.Validationf("newPassword", "New password must be at least %d characters long", MinPasswordLength)
	}
	if next == current {
		return apperr.Validationf("newPassword", "New password must be different from current password")
	}

	admin, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !ComparePasswords(admin.PasswordHash, current) {
		return apperr.Validationf("currentPassword", "Current password is incorrect")
	}

	hash, err := s.HashPassword(next)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Model(admin).Update("password", hash).Error; err != nil {
		return dbError(err, "Admin")
	}
	logger.Info.Printf("[AdminService.ChangePassword] password changed for %s", admin.Username)
	return nil
}

// Provision creates an admin, or resets the password of an existing one when
// overwrite is set. created reports whether a new row was inserted.
func (s *AdminService) Provision(ctx context.Context, username, password string, overwrite bool) (admin *models.Admin, created bool, err error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, false, apperr.Required("username")
	}
	if len(password) < MinPasswordLength {
		return nil, false, apperr.Validationf("password", "Password must be at least %d characters long", MinPasswordLength)
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		return nil, false, err
	}

	var existing models.Admin
	err = s.db.WithContext(ctx).First(&existing, "username = ?", username).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		admin = &models.Admin{Username: username, PasswordHash: hash}
		if err := s.db.WithContext(ctx).Create(admin).Error; err != nil {
			return nil, false, dbError(err, "Admin")
		}
		return admin, true, nil
	case err != nil:
		return nil, false, dbError(err, "Admin")
	case !overwrite:
		return nil, false, apperr.Conflictf("admin %q already exists", username)
	}

	if err := s.db.WithContext(ctx).Model(&existing).Update("password", hash).Error; err != nil {
		return nil, false, dbError(err, "Admin")
	}
	return &existing, false, nil
}

// List returns every admin ordered by username.
func (s *AdminService) List(ctx context.Context) ([]models.Admin, error) {
	admins := []models.Admin{}
	if err := s.db.WithContext(ctx).Order("username ASC").Find(&admins).Error; err != nil {
		return nil, dbError(err, "Admin")
	}
	return admins, nil
}
