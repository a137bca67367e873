package testutil

import (
	"github.com/stretchr/testify/mock"

	"shipctl/internal/ports"
)

// Compile-time interface compliance check
var _ ports.ServiceController = (*MockServiceController)(nil)

type MockServiceController struct {
	mock.Mock
}

func (m *MockServiceController) IsActive(unit string) (bool, error) {
	args := m.Called(unit)
	return args.Bool(0), args.Error(1)
}

func (m *MockServiceController) Restart(unit string) error {
	args := m.Called(unit)
	return args.Error(0)
}
