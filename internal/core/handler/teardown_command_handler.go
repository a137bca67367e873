package handler

import (
	"fmt"

	"shipctl/internal/cli/output"
	"shipctl/internal/core"
	"shipctl/internal/ports"
)

type TeardownCommandHandler struct {
	configRepository core.ConfigRepository
	containerRuntime ports.ContainerRuntime
}

func ProvideTeardownCommandHandler(
	configRepository core.ConfigRepository,
	containerRuntime ports.ContainerRuntime,
) TeardownCommandHandler {
	return TeardownCommandHandler{
		configRepository: configRepository,
		containerRuntime: containerRuntime,
	}
}

// Handle stops and removes the target's container, then force-removes its
// image. Every step tolerates an already-absent resource, so teardown is
// safe to run repeatedly.
func (h *TeardownCommandHandler) Handle() error {
	target, err := h.configRepository.LoadCurrentDeployTarget()
	if err != nil {
		return err
	}

	containerName := target.Container.Name
	imageRef := target.Image.URI(target.Registry.Host)

	output.PrintHeader(fmt.Sprintf("Tearing down %s", target.Name))

	output.PrintStep(fmt.Sprintf("Stopping container %s", output.Bold(containerName)))
	if err := h.containerRuntime.StopContainer(containerName); err != nil {
		output.PrintSecondary(fmt.Sprintf("container %s is not running", containerName))
	}

	output.PrintStep(fmt.Sprintf("Removing container %s", output.Bold(containerName)))
	if err := h.containerRuntime.RemoveContainer(containerName); err != nil {
		output.PrintSecondary(fmt.Sprintf("container %s is already absent", containerName))
	}

	output.PrintStep(fmt.Sprintf("Removing image %s", output.Bold(imageRef)))
	if err := h.containerRuntime.RemoveImage(imageRef); err != nil {
		output.PrintSecondary(fmt.Sprintf("image %s is already absent", imageRef))
	}

	output.PrintSuccess(fmt.Sprintf("Teardown of %s complete", target.Name))
	return nil
}
