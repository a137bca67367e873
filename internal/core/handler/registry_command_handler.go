package handler

import (
	"fmt"

	"shipctl/internal/cli/output"
	"shipctl/internal/core"
	"shipctl/internal/core/domain"
	"shipctl/internal/ports"
)

type RegistryCommandHandler struct {
	configRepository core.ConfigRepository
	staticProvider   ports.StaticCredentialProvider
	terminalInput    ports.TerminalInput
}

func ProvideRegistryCommandHandler(
	configRepository core.ConfigRepository,
	staticProvider ports.StaticCredentialProvider,
	terminalInput ports.TerminalInput,
) RegistryCommandHandler {
	return RegistryCommandHandler{
		configRepository: configRepository,
		staticProvider:   staticProvider,
		terminalInput:    terminalInput,
	}
}

// HandleSetCredentials prompts for the current target's registry password
// and stores it in the OS keyring. Only registries with static auth keep a
// stored password; ECR targets obtain short-lived tokens instead.
func (h *RegistryCommandHandler) HandleSetCredentials() error {
	target, err := h.configRepository.LoadCurrentDeployTarget()
	if err != nil {
		return err
	}

	if target.Registry.Auth != domain.RegistryAuthStatic {
		return fmt.Errorf(
			"registry %s uses %s auth and does not take a stored password",
			target.Registry.Host,
			target.Registry.Auth,
		)
	}

	if !h.terminalInput.IsTerminal() {
		return fmt.Errorf("setting registry credentials requires an interactive terminal")
	}

	password, err := h.terminalInput.ReadPassword(
		fmt.Sprintf("Password for %s@%s: ", target.Registry.Username, target.Registry.Host),
	)
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if err := h.staticProvider.StorePassword(target.Registry.Host, password); err != nil {
		return err
	}

	output.PrintSuccess(fmt.Sprintf("Stored password for registry %s", target.Registry.Host))
	return nil
}
