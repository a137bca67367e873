package handler

import (
	"fmt"

	"shipctl/internal/cli/output"
	"shipctl/internal/core"
	"shipctl/internal/ports"
)

type WatchdogCommandHandler struct {
	configRepository  core.ConfigRepository
	serviceController ports.ServiceController
}

func ProvideWatchdogCommandHandler(
	configRepository core.ConfigRepository,
	serviceController ports.ServiceController,
) WatchdogCommandHandler {
	return WatchdogCommandHandler{
		configRepository:  configRepository,
		serviceController: serviceController,
	}
}

// Handle confirms the target's service unit is running, restarting it once
// if it is not. A running service is left untouched.
func (h *WatchdogCommandHandler) Handle() error {
	target, err := h.configRepository.LoadCurrentDeployTarget()
	if err != nil {
		return err
	}
	unit := target.ServiceUnit

	active, err := h.serviceController.IsActive(unit)
	if err != nil {
		return err
	}
	if active {
		output.PrintSuccess(fmt.Sprintf("Service %s is running", unit))
		return nil
	}

	output.PrintStep(fmt.Sprintf("Service %s is not running, restarting", output.Bold(unit)))
	if err := h.serviceController.Restart(unit); err != nil {
		return fmt.Errorf("service %s failed to restart: %v", unit, err)
	}

	active, err = h.serviceController.IsActive(unit)
	if err != nil {
		return err
	}
	if !active {
		return fmt.Errorf("service %s is not running after restart", unit)
	}

	output.PrintSuccess(fmt.Sprintf("Service %s restarted", unit))
	return nil
}
