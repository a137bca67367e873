package registry_credentials

import (
	"fmt"

	"shipctl/internal/core/domain"
	"shipctl/internal/ports"
)

// StaticKeyringProvider serves registries that use a fixed password instead
// of a credential exchange. The password is stored in the OS keyring, keyed
// by registry host; see the 'registry set-credentials' operation.
type StaticKeyringProvider struct {
	keyring ports.Keyring
}

func ProvideStaticKeyringProvider(keyring ports.Keyring) *StaticKeyringProvider {
	return &StaticKeyringProvider{keyring: keyring}
}

// PasswordKeyName is the keyring entry name for a registry's stored password.
func PasswordKeyName(registryHost string) string {
	return fmt.Sprintf("%s-registry-password", registryHost)
}

// StorePassword saves the registry's password in the OS keyring, replacing
// any previously stored value.
func (p *StaticKeyringProvider) StorePassword(registryHost string, password string) error {
	return p.keyring.SetKey(PasswordKeyName(registryHost), password)
}

func (p *StaticKeyringProvider) Credentials(registry domain.Registry) (ports.Credential, error) {
	keyName := PasswordKeyName(registry.Host)
	hasKey, err := p.keyring.HasKey(keyName)
	if err != nil {
		return ports.Credential{}, err
	}
	if !hasKey {
		return ports.Credential{}, fmt.Errorf(
			"no stored password for registry %s, see operation 'registry set-credentials'",
			registry.Host,
		)
	}

	password, err := p.keyring.GetKey(keyName)
	if err != nil {
		return ports.Credential{}, err
	}

	return ports.Credential{Username: registry.Username, Password: password}, nil
}

var _ ports.StaticCredentialProvider = (*StaticKeyringProvider)(nil)
