package testutil

import (
	"github.com/stretchr/testify/mock"

	"shipctl/internal/core"
	"shipctl/internal/core/domain"
)

// Compile-time interface compliance check
var _ core.ConfigRepository = (*MockConfigRepository)(nil)

type MockConfigRepository struct {
	mock.Mock
}

func (m *MockConfigRepository) LoadConfig() (*domain.Config, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Config), args.Error(1)
}

func (m *MockConfigRepository) SaveConfig(config *domain.Config) error {
	args := m.Called(config)
	return args.Error(0)
}

func (m *MockConfigRepository) ConfigExists() (bool, error) {
	args := m.Called()
	return args.Bool(0), args.Error(1)
}

func (m *MockConfigRepository) LoadCurrentDeployTarget() (*domain.DeployTarget, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeployTarget), args.Error(1)
}

func (m *MockConfigRepository) LoadCurrentTargetName() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockConfigRepository) SaveCurrentTargetName(name string) error {
	args := m.Called(name)
	return args.Error(0)
}
