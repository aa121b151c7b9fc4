// file: controllers/mocks_test.go
package controllers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"xtrnia/assets"
	"xtrnia/models"
	"xtrnia/services"
)

type MockAdminService struct{ mock.Mock }

func (m *MockAdminService) Authenticate(ctx context.Context, username, password string) (*models.Admin, error) {
	args := m.Called(ctx, username, password)
	admin, _ := args.Get(0).(*models.Admin)
	return admin, args.Error(1)
}

func (m *MockAdminService) Get(ctx context.Context, id string) (*models.Admin, error) {
	args := m.Called(ctx, id)
	admin, _ := args.Get(0).(*models.Admin)
	return admin, args.Error(1)
}

func (m *MockAdminService) ChangePassword(ctx context.Context, id, current, next string) error {
	return m.Called(ctx, id, current, next).Error(0)
}

type MockCompetitionService struct{ mock.Mock }

func (m *MockCompetitionService) List(ctx context.Context, f services.CompetitionFilter) ([]models.Competition, error) {
	args := m.Called(ctx, f)
	list, _ := args.Get(0).([]models.Competition)
	return list, args.Error(1)
}

func (m *MockCompetitionService) Get(ctx context.Context, id string) (*models.Competition, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*models.Competition)
	return c, args.Error(1)
}

func (m *MockCompetitionService) Create(ctx context.Context, in services.CompetitionInput) (*models.Competition, error) {
	args := m.Called(ctx, in)
	c, _ := args.Get(0).(*models.Competition)
	return c, args.Error(1)
}

func (m *MockCompetitionService) Update(ctx context.Context, id string, in services.CompetitionInput) (*models.Competition, error) {
	args := m.Called(ctx, id, in)
	c, _ := args.Get(0).(*models.Competition)
	return c, args.Error(1)
}

func (m *MockCompetitionService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCompetitionService) ToggleType(ctx context.Context, id string) (*models.Competition, string, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*models.Competition)
	return c, args.String(1), args.Error(2)
}

type MockBrochureService struct{ mock.Mock }

func (m *MockBrochureService) List(ctx context.Context) ([]models.Brochure, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.Brochure)
	return list, args.Error(1)
}

func (m *MockBrochureService) Active(ctx context.Context) (*models.Brochure, error) {
	args := m.Called(ctx)
	b, _ := args.Get(0).(*models.Brochure)
	return b, args.Error(1)
}

func (m *MockBrochureService) Create(ctx context.Context, in services.BrochureInput) (*models.Brochure, error) {
	args := m.Called(ctx, in)
	b, _ := args.Get(0).(*models.Brochure)
	return b, args.Error(1)
}

func (m *MockBrochureService) Update(ctx context.Context, id string, in services.BrochureUpdate) (*models.Brochure, error) {
	args := m.Called(ctx, id, in)
	b, _ := args.Get(0).(*models.Brochure)
	return b, args.Error(1)
}

func (m *MockBrochureService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockContactService struct{ mock.Mock }

func (m *MockContactService) Submit(ctx context.Context, in services.ContactInput) (*models.ContactSubmission, error) {
	args := m.Called(ctx, in)
	s, _ := args.Get(0).(*models.ContactSubmission)
	return s, args.Error(1)
}

func (m *MockContactService) List(ctx context.Context) ([]models.ContactSubmission, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.ContactSubmission)
	return list, args.Error(1)
}

func (m *MockContactService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockUploadService struct{ mock.Mock }

func (m *MockUploadService) Accept(ctx context.Context, kind assets.Kind, f services.UploadFile) (*assets.Asset, error) {
	args := m.Called(ctx, kind, f)
	a, _ := args.Get(0).(*assets.Asset)
	return a, args.Error(1)
}
