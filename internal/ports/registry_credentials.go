package ports

import (
	"shipctl/internal/core/domain"
)

// Credential is a short-lived username/password pair for a registry login.
type Credential struct {
	Username string
	Password string
}

// RegistryCredentialProvider obtains login credentials for a registry.
type RegistryCredentialProvider interface {
	Credentials(registry domain.Registry) (Credential, error)
}

// EcrCredentialProvider exchanges AWS credentials for a short-lived token.
type EcrCredentialProvider interface {
	RegistryCredentialProvider
}

// StaticCredentialProvider serves a fixed password kept in the OS keyring.
type StaticCredentialProvider interface {
	RegistryCredentialProvider
	StorePassword(registryHost string, password string) error
}
