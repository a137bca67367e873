package handler

import (
	"encoding/json"
	"fmt"

	"shipctl/internal/core"
)

type TargetCommandHandler struct {
	configRepository core.ConfigRepository
}

func ProvideTargetCommandHandler(
	configRepository core.ConfigRepository,
) TargetCommandHandler {
	return TargetCommandHandler{
		configRepository: configRepository,
	}
}

func (h *TargetCommandHandler) HandleSet(targetName string) error {
	config, err := h.configRepository.LoadConfig()
	if err != nil {
		return err
	}
	if !config.TargetExists(targetName) {
		return fmt.Errorf("target not found: %s", targetName)
	}
	return h.configRepository.SaveCurrentTargetName(targetName)
}

func (h *TargetCommandHandler) HandleList() error {
	config, err := h.configRepository.LoadConfig()
	if err != nil {
		return err
	}
	for _, target := range config.Targets {
		fmt.Println(target.Name)
	}
	return nil
}

func (h *TargetCommandHandler) HandlePrint() error {
	target, err := h.configRepository.LoadCurrentDeployTarget()
	if err != nil {
		return err
	}
	return prettyPrint(target)
}

func prettyPrint(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
