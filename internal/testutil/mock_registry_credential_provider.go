package testutil

import (
	"github.com/stretchr/testify/mock"

	"shipctl/internal/core/domain"
	"shipctl/internal/ports"
)

// Compile-time interface compliance checks
var _ ports.EcrCredentialProvider = (*MockRegistryCredentialProvider)(nil)
var _ ports.StaticCredentialProvider = (*MockStaticCredentialProvider)(nil)

type MockRegistryCredentialProvider struct {
	mock.Mock
}

func (m *MockRegistryCredentialProvider) Credentials(registry domain.Registry) (ports.Credential, error) {
	args := m.Called(registry)
	return args.Get(0).(ports.Credential), args.Error(1)
}

type MockStaticCredentialProvider struct {
	mock.Mock
}

func (m *MockStaticCredentialProvider) Credentials(registry domain.Registry) (ports.Credential, error) {
	args := m.Called(registry)
	return args.Get(0).(ports.Credential), args.Error(1)
}

func (m *MockStaticCredentialProvider) StorePassword(registryHost string, password string) error {
	args := m.Called(registryHost, password)
	return args.Error(0)
}
