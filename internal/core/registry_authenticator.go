package core

import (
	"fmt"
	"strings"

	"shipctl/internal/core/domain"
	"shipctl/internal/ports"
)

// RegistryAuthenticator logs the container runtime in to a target's registry,
// picking the credential provider that matches the registry's auth mode.
type RegistryAuthenticator struct {
	ecrProvider    ports.EcrCredentialProvider
	staticProvider ports.StaticCredentialProvider
	runtime        ports.ContainerRuntime
}

func ProvideRegistryAuthenticator(
	ecrProvider ports.EcrCredentialProvider,
	staticProvider ports.StaticCredentialProvider,
	runtime ports.ContainerRuntime,
) *RegistryAuthenticator {
	return &RegistryAuthenticator{
		ecrProvider:    ecrProvider,
		staticProvider: staticProvider,
		runtime:        runtime,
	}
}

func (a *RegistryAuthenticator) Login(registry domain.Registry) error {
	var provider ports.RegistryCredentialProvider
	switch registry.Auth {
	case domain.RegistryAuthEcr:
		provider = a.ecrProvider
	case domain.RegistryAuthStatic:
		provider = a.staticProvider
	default:
		return fmt.Errorf("registry %s has unknown auth mode '%s'", registry.Host, registry.Auth)
	}

	credential, err := provider.Credentials(registry)
	if err != nil {
		return err
	}

	return a.runtime.Login(registry.Host, credential.Username, strings.NewReader(credential.Password))
}
