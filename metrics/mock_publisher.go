// file: metrics/mock_publisher.go
package metrics

import "github.com/stretchr/testify/mock"

// ensure MockPublisher implements Publisher
var _ Publisher = (*MockPublisher)(nil)

// MockPublisher is a testify mock of Publisher.
type MockPublisher struct {
	mock.Mock
}

// UploadAccepted (Mocked)
func (m *MockPublisher) UploadAccepted(kind string, bytes int64) {
	m.Called(kind, bytes)
}

// UploadRejected (Mocked)
func (m *MockPublisher) UploadRejected(kind, reason string) {
	m.Called(kind, reason)
}

// LoginFailed (Mocked)
func (m *MockPublisher) LoginFailed() {
	m.Called()
}
