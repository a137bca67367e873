package domain

import (
	"fmt"
	"strings"
)

// Registry auth modes. ECR registries exchange AWS credentials for a
// short-lived token; static registries use a password stored in the OS
// keyring.
const (
	RegistryAuthEcr    = "ecr"
	RegistryAuthStatic = "static"
)

// Registry identifies the remote image store a target publishes to.
type Registry struct {
	Host     string `yaml:"host"`
	Auth     string `yaml:"auth"`
	Region   string `yaml:"region,omitempty"`
	Username string `yaml:"username,omitempty"`
}

// Image describes the local build of a container image.
type Image struct {
	Name             string   `yaml:"name"`
	Tag              string   `yaml:"tag"`
	DockerfilePath   string   `yaml:"dockerfilePath,omitempty"`
	BuildContextPath string   `yaml:"buildContextPath"`
	BuildArgs        []string `yaml:"buildArgs,omitempty"`
}

// LocalRef returns the registry-less name:tag reference produced by a build.
func (i Image) LocalRef() string {
	return fmt.Sprintf("%s:%s", i.Name, i.Tag)
}

// URI returns the registry-qualified reference used for push and pull.
func (i Image) URI(registryHost string) string {
	return fmt.Sprintf("%s/%s:%s", registryHost, i.Name, i.Tag)
}

// Container describes the single named container slot a target occupies on
// the host.
type Container struct {
	Name          string `yaml:"name"`
	HostPort      int    `yaml:"hostPort"`
	ContainerPort int    `yaml:"containerPort"`
}

// PortMapping formats the host:container publish argument.
func (c Container) PortMapping() string {
	return fmt.Sprintf("%d:%d", c.HostPort, c.ContainerPort)
}

// DeployTarget is one deployable application: its watchdog service unit, the
// registry it publishes to, the image it builds, and the container it runs.
type DeployTarget struct {
	Name          string    `yaml:"name"`
	ServiceUnit   string    `yaml:"serviceUnit"`
	Registry      Registry  `yaml:"registry"`
	Image         Image     `yaml:"image"`
	Container     Container `yaml:"container"`
	BuildSpecPath string    `yaml:"buildSpecPath,omitempty"`
}

// Config holds the application configuration including available deploy targets
type Config struct {
	Targets []DeployTarget `yaml:"targets"`
}

func CreateDefaultConfig() Config {
	return Config{
		Targets: []DeployTarget{
			{
				Name:        "infraoutput",
				ServiceUnit: "codedeploy-agent",
				Registry: Registry{
					Host:   "aws_account_id.dkr.ecr.us-east-1.amazonaws.com",
					Auth:   RegistryAuthEcr,
					Region: "us-east-1",
				},
				Image: Image{
					Name:             "infraoutput_vcloud",
					Tag:              "latest",
					DockerfilePath:   "Dockerfile",
					BuildContextPath: ".",
				},
				Container: Container{
					Name:          "my-Infraoutputppapplication",
					HostPort:      5000,
					ContainerPort: 5000,
				},
				BuildSpecPath: "buildspec.yml",
			},
			{
				Name:        "mallapp",
				ServiceUnit: "codedeploy-agent",
				Registry: Registry{
					Host:   "aws_account_id.dkr.ecr.us-east-1.amazonaws.com",
					Auth:   RegistryAuthEcr,
					Region: "us-east-1",
				},
				Image: Image{
					Name:             "mallapp_vcloud",
					Tag:              "latest",
					DockerfilePath:   "Dockerfile",
					BuildContextPath: ".",
				},
				Container: Container{
					Name:          "my-Mallappapplication",
					HostPort:      5000,
					ContainerPort: 5000,
				},
				BuildSpecPath: "buildspec.yml",
			},
		},
	}
}

func (c *Config) TargetExists(name string) bool {
	for _, target := range c.Targets {
		if target.Name == name {
			return true
		}
	}
	return false
}

func (c *Config) GetTarget(name string) (*DeployTarget, error) {
	for _, target := range c.Targets {
		if target.Name == name {
			return &target, nil
		}
	}
	return nil, fmt.Errorf("target '%s' not found", name)
}

func (c *Config) Validate() error {
	for i, target := range c.Targets {
		if target.Name == "" {
			return fmt.Errorf("target at index %d has empty name", i)
		}
		if target.ServiceUnit == "" {
			return fmt.Errorf("target '%s' has empty serviceUnit", target.Name)
		}
		if target.Registry.Host == "" {
			return fmt.Errorf("target '%s' has empty registry host", target.Name)
		}
		switch target.Registry.Auth {
		case RegistryAuthEcr:
			if target.Registry.Region == "" {
				return fmt.Errorf("target '%s' uses ecr auth but has empty registry region", target.Name)
			}
		case RegistryAuthStatic:
			if target.Registry.Username == "" {
				return fmt.Errorf("target '%s' uses static auth but has empty registry username", target.Name)
			}
		default:
			return fmt.Errorf(
				"target '%s' has unknown registry auth '%s' (expected '%s' or '%s')",
				target.Name,
				target.Registry.Auth,
				RegistryAuthEcr,
				RegistryAuthStatic,
			)
		}
		if target.Image.Name == "" {
			return fmt.Errorf("target '%s' has empty image name", target.Name)
		}
		if strings.Contains(target.Image.Name, ":") {
			return fmt.Errorf("target '%s' image name '%s' must not contain a tag", target.Name, target.Image.Name)
		}
		if target.Image.Tag == "" {
			return fmt.Errorf("target '%s' has empty image tag", target.Name)
		}
		if target.Image.BuildContextPath == "" {
			return fmt.Errorf("target '%s' has empty image buildContextPath", target.Name)
		}
		if target.Container.Name == "" {
			return fmt.Errorf("target '%s' has empty container name", target.Name)
		}
		if target.Container.HostPort <= 0 || target.Container.ContainerPort <= 0 {
			return fmt.Errorf(
				"target '%s' has invalid port mapping %d:%d",
				target.Name,
				target.Container.HostPort,
				target.Container.ContainerPort,
			)
		}
	}
	return nil
}
