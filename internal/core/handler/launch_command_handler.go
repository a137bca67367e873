package handler

import (
	"fmt"

	"shipctl/internal/cli/output"
	"shipctl/internal/core"
	"shipctl/internal/ports"
)

type LaunchCommandHandler struct {
	configRepository      core.ConfigRepository
	registryAuthenticator *core.RegistryAuthenticator
	containerRuntime      ports.ContainerRuntime
}

func ProvideLaunchCommandHandler(
	configRepository core.ConfigRepository,
	registryAuthenticator *core.RegistryAuthenticator,
	containerRuntime ports.ContainerRuntime,
) LaunchCommandHandler {
	return LaunchCommandHandler{
		configRepository:      configRepository,
		registryAuthenticator: registryAuthenticator,
		containerRuntime:      containerRuntime,
	}
}

// Handle authenticates, pulls the published image, and runs it detached with
// the target's port mapping. Success is the run command returning zero; the
// launched application is not health-checked.
func (h *LaunchCommandHandler) Handle() error {
	target, err := h.configRepository.LoadCurrentDeployTarget()
	if err != nil {
		return err
	}

	remoteRef := target.Image.URI(target.Registry.Host)

	output.PrintHeader(fmt.Sprintf("Launching %s", target.Container.Name))

	output.PrintStep(fmt.Sprintf("Logging in to %s", output.Bold(target.Registry.Host)))
	if err := h.registryAuthenticator.Login(target.Registry); err != nil {
		return err
	}

	output.PrintStep(fmt.Sprintf("Pulling %s", output.Bold(remoteRef)))
	if err := h.containerRuntime.PullImage(remoteRef); err != nil {
		return err
	}

	output.PrintStep(fmt.Sprintf(
		"Running %s on port %s",
		output.Bold(target.Container.Name),
		output.Bold(target.Container.PortMapping()),
	))
	if err := h.containerRuntime.RunContainer(target.Container, remoteRef); err != nil {
		return err
	}

	output.PrintSuccess(fmt.Sprintf("Container %s started", target.Container.Name))
	return nil
}
