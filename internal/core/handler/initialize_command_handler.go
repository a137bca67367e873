package handler

import (
	"fmt"

	"shipctl/internal/core"
	"shipctl/internal/core/domain"
)

type InitializeCommandHandler struct {
	configRepository core.ConfigRepository
}

func ProvideInitializeCommandHandler(
	configRepository core.ConfigRepository,
) InitializeCommandHandler {
	return InitializeCommandHandler{
		configRepository: configRepository,
	}
}

func (h *InitializeCommandHandler) Handle() error {
	configExists, err := h.configRepository.ConfigExists()
	if err != nil {
		return err
	}
	if configExists {
		return fmt.Errorf("configuration file already exists")
	}

	config := domain.CreateDefaultConfig()
	if err := h.configRepository.SaveConfig(&config); err != nil {
		return err
	}

	// The sample config has at least one target; make it current so commands
	// work right after initialization.
	return h.configRepository.SaveCurrentTargetName(config.Targets[0].Name)
}
