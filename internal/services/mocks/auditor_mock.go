// filepath: internal/services/mocks/auditor_mock.go
package mocks

import (
	"context"

	"dentahub/internal/services"

	"github.com/stretchr/testify/mock"
)

type MockAuditor struct {
	mock.Mock
}

var _ services.Auditor = (*MockAuditor)(nil)

func (m *MockAuditor) Log(ctx context.Context, userID int64, action, entityType string, entityID *int64, oldValues, newValues interface{}) {
	m.Called(ctx, userID, action, entityType, entityID, oldValues, newValues)
}
