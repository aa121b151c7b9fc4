// File: assets/mock_host.go
package assets

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// ensure MockHost implements Host
var _ Host = (*MockHost)(nil)

// MockHost is a testify mock of Host used by service and handler tests.
type MockHost struct {
	mock.Mock
}

// Upload (Mocked)
func (m *MockHost) Upload(ctx context.Context, kind Kind, data []byte) (*Asset, error) {
	args := m.Called(ctx, kind, data)
	asset, _ := args.Get(0).(*Asset)
	return asset, args.Error(1)
}

// Delete (Mocked)
func (m *MockHost) Delete(ctx context.Context, kind Kind, externalID string) error {
	args := m.Called(ctx, kind, externalID)
	return args.Error(0)
}
