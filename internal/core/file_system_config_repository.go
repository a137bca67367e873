package core

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"shipctl/internal/core/domain"
	"shipctl/internal/ports"
)

var configFilePath = filepath.Join("~", ".shipctl-config.yaml")
var currentTargetPath = filepath.Join("~", ".shipctl", "current-target")

type ConfigRepository interface {
	LoadConfig() (*domain.Config, error)
	SaveConfig(*domain.Config) error
	ConfigExists() (bool, error)
	LoadCurrentDeployTarget() (*domain.DeployTarget, error)
	LoadCurrentTargetName() (string, error)
	SaveCurrentTargetName(string) error
}

type FileSystemConfigRepository struct {
	fileService ports.FileSystem
	config      *domain.Config
}

func ProvideFileSystemConfigRepository(fileService ports.FileSystem) *FileSystemConfigRepository {
	return &FileSystemConfigRepository{fileService: fileService}
}

// CreateTemplatingValues exposes the current deploy target to templated
// build args and buildspec commands.
func CreateTemplatingValues(configRepository ConfigRepository) (map[string]interface{}, error) {
	target, err := configRepository.LoadCurrentDeployTarget()
	if err != nil {
		return nil, err
	}

	values := map[string]interface{}{
		"Target":  target.Name,
		"Service": target.ServiceUnit,
		"Registry": map[string]interface{}{
			"Host": target.Registry.Host,
		},
		"Image": map[string]interface{}{
			"Name":     target.Image.Name,
			"Tag":      target.Image.Tag,
			"LocalRef": target.Image.LocalRef(),
			"URI":      target.Image.URI(target.Registry.Host),
		},
		"Container": map[string]interface{}{
			"Name":          target.Container.Name,
			"HostPort":      target.Container.HostPort,
			"ContainerPort": target.Container.ContainerPort,
			"PortMapping":   target.Container.PortMapping(),
		},
	}
	return values, nil
}

func (c *FileSystemConfigRepository) LoadConfig() (*domain.Config, error) {
	if c.config != nil {
		return c.config, nil
	}

	data, err := c.fileService.ReadFile(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var config domain.Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	for i := range config.Targets {
		target := &config.Targets[i]
		if target.Registry.Auth == "" {
			target.Registry.Auth = domain.RegistryAuthEcr
		}
		if target.Image.Tag == "" {
			target.Image.Tag = "latest"
		}
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %v", err)
	}

	c.config = &config

	return &config, nil
}

func (c *FileSystemConfigRepository) SaveConfig(config *domain.Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %v", err)
	}

	return c.fileService.WriteFile(configFilePath, data, ports.ReadWrite)
}

func (c *FileSystemConfigRepository) ConfigExists() (bool, error) {
	return c.fileService.FileExists(configFilePath)
}

func (c *FileSystemConfigRepository) LoadCurrentTargetName() (string, error) {
	data, err := c.fileService.ReadFile(currentTargetPath)
	if err != nil {
		return "", fmt.Errorf("failed to read current target file: %v", err)
	}
	targetName := strings.TrimSpace(string(data))
	if err := validateTargetName(targetName); err != nil {
		return "", fmt.Errorf("invalid target name in current-target file: %w", err)
	}
	return targetName, nil
}

func (c *FileSystemConfigRepository) SaveCurrentTargetName(currentTargetName string) error {
	if err := validateTargetName(currentTargetName); err != nil {
		return fmt.Errorf("invalid target name: %w", err)
	}
	return c.fileService.WriteFile(currentTargetPath, []byte(currentTargetName), ports.ReadWrite)
}

func (c *FileSystemConfigRepository) LoadCurrentDeployTarget() (*domain.DeployTarget, error) {
	currentTargetName, err := c.LoadCurrentTargetName()
	if err != nil {
		return nil, err
	}

	config, err := c.LoadConfig()
	if err != nil {
		return nil, err
	}

	for _, target := range config.Targets {
		if target.Name == currentTargetName {
			return &target, nil
		}
	}

	return nil, fmt.Errorf("current target '%s' not found in config", currentTargetName)
}

// validateTargetName checks that a target name doesn't contain path traversal characters.
func validateTargetName(name string) error {
	if name == "" {
		return fmt.Errorf("target name cannot be empty")
	}
	if strings.Contains(name, "..") ||
		strings.Contains(name, "/") ||
		strings.Contains(name, "\\") ||
		strings.Contains(name, "\x00") {
		return fmt.Errorf("target name contains invalid characters")
	}
	return nil
}
