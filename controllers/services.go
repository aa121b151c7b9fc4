// File: controllers/services.go
package controllers

import (
	"context"

	"xtrnia/assets"
	"xtrnia/models"
	"xtrnia/services"
)

// The interfaces below are the slices of the service layer each controller
// depends on. The services package provides the implementations.

type AdminServiceInterface interface {
	Authenticate(ctx context.Context, username, password string) (*models.Admin, error)
	Get(ctx context.Context, id string) (*models.Admin, error)
	ChangePassword(ctx context.Context, id, current, next string) error
}

type CompetitionServiceInterface interface {
	List(ctx context.Context, f services.CompetitionFilter) ([]models.Competition, error)
	Get(ctx context.Context, id string) (*models.Competition, error)
	Create(ctx context.Context, in services.CompetitionInput) (*models.Competition, error)
	Update(ctx context.Context, id string, in services.CompetitionInput) (*models.Competition, error)
	Delete(ctx context.Context, id string) error
	ToggleType(ctx context.Context, id string) (*models.Competition, string, error)
}

type BrochureServiceInterface interface {
	List(ctx context.Context) ([]models.Brochure, error)
	Active(ctx context.Context) (*models.Brochure, error)
	Create(ctx context.Context, in services.BrochureInput) (*models.Brochure, error)
	Update(ctx context.Context, id string, in services.BrochureUpdate) (*models.Brochure, error)
	Delete(ctx context.Context, id string) error
}

type ContactServiceInterface interface {
	Submit(ctx context.Context, in services.ContactInput) (*models.ContactSubmission, error)
	List(ctx context.Context) ([]models.ContactSubmission, error)
	Delete(ctx context.Context, id string) error
}

type UploadServiceInterface interface {
	Accept(ctx context.Context, kind assets.Kind, f services.UploadFile) (*assets.Asset, error)
}

var (
	_ AdminServiceInterface       = (*services.AdminService)(nil)
	_ CompetitionServiceInterface = (*services.CompetitionService)(nil)
	_ BrochureServiceInterface    = (*services.BrochureService)(nil)
	_ ContactServiceInterface     = (*services.ContactService)(nil)
	_ UploadServiceInterface      = (*services.UploadService)(nil)
)
