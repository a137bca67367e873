package service_controller

import (
	"fmt"
	"strings"

	"shipctl/internal/ports"
)

// Systemctl controls host services through the systemctl command line.
type Systemctl struct {
	commandRunner ports.CommandRunner
}

func ProvideSystemctl(commandRunner ports.CommandRunner) *Systemctl {
	return &Systemctl{commandRunner: commandRunner}
}

// IsActive queries the unit's run state. systemctl exits non-zero for any
// state other than "active", so the exit status alone cannot distinguish
// "stopped" from "no such unit"; the printed state is what matters.
func (s *Systemctl) IsActive(unit string) (bool, error) {
	output, _ := s.commandRunner.Run("systemctl", "is-active", unit)
	state := strings.TrimSpace(string(output))
	return state == "active", nil
}

func (s *Systemctl) Restart(unit string) error {
	output, err := s.commandRunner.Run("systemctl", "restart", unit)
	if err != nil {
		return fmt.Errorf("failed to restart service %s: %v\n%s", unit, err, string(output))
	}
	return nil
}

var _ ports.ServiceController = (*Systemctl)(nil)
