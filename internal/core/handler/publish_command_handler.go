package handler

import (
	"fmt"

	"shipctl/internal/cli/output"
	"shipctl/internal/core"
	"shipctl/internal/ports"
)

type PublishCommandHandler struct {
	configRepository      core.ConfigRepository
	registryAuthenticator *core.RegistryAuthenticator
	containerRuntime      ports.ContainerRuntime
}

func ProvidePublishCommandHandler(
	configRepository core.ConfigRepository,
	registryAuthenticator *core.RegistryAuthenticator,
	containerRuntime ports.ContainerRuntime,
) PublishCommandHandler {
	return PublishCommandHandler{
		configRepository:      configRepository,
		registryAuthenticator: registryAuthenticator,
		containerRuntime:      containerRuntime,
	}
}

// Handle authenticates, builds the target's image, applies the
// registry-qualified tag, and pushes it. Each step is fatal on failure and
// push is never attempted before tag.
func (h *PublishCommandHandler) Handle() error {
	target, err := h.configRepository.LoadCurrentDeployTarget()
	if err != nil {
		return err
	}

	localRef := target.Image.LocalRef()
	remoteRef := target.Image.URI(target.Registry.Host)

	output.PrintHeader(fmt.Sprintf("Publishing %s", remoteRef))

	output.PrintStep(fmt.Sprintf("Logging in to %s", output.Bold(target.Registry.Host)))
	if err := h.registryAuthenticator.Login(target.Registry); err != nil {
		return err
	}

	output.PrintStep(fmt.Sprintf("Building %s", output.Bold(localRef)))
	if err := h.containerRuntime.BuildImage(target.Image); err != nil {
		return err
	}

	output.PrintStep(fmt.Sprintf("Tagging %s as %s", output.Bold(localRef), output.Bold(remoteRef)))
	if err := h.containerRuntime.TagImage(localRef, remoteRef); err != nil {
		return err
	}

	output.PrintStep(fmt.Sprintf("Pushing %s", output.Bold(remoteRef)))
	if err := h.containerRuntime.PushImage(remoteRef); err != nil {
		return err
	}

	output.PrintSuccess(fmt.Sprintf("Published %s", remoteRef))
	return nil
}
