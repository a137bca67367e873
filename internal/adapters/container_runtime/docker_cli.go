package container_runtime

import (
	"fmt"
	"io"
	"path/filepath"

	"shipctl/internal/core"
	"shipctl/internal/core/domain"
	"shipctl/internal/ports"
)

// DockerCli drives the docker command line. All operations shell out through
// the command runner so the adapter stays testable without a docker daemon.
type DockerCli struct {
	configRepository core.ConfigRepository
	templater        ports.Templater
	commandRunner    ports.CommandRunner
}

func ProvideDockerCli(
	configRepository core.ConfigRepository,
	templater ports.Templater,
	commandRunner ports.CommandRunner,
) *DockerCli {
	return &DockerCli{
		configRepository: configRepository,
		templater:        templater,
		commandRunner:    commandRunner,
	}
}

// Login authenticates against the registry host, piping the password via
// stdin so it never shows up in the host's process list.
func (d *DockerCli) Login(host string, username string, password io.Reader) error {
	output, err := d.commandRunner.RunWithStdin(
		password,
		"docker", "login", "--username", username, "--password-stdin", host,
	)
	if err != nil {
		return fmt.Errorf("failed to log in to registry %s: %v\n%s", host, err, string(output))
	}
	return nil
}

func (d *DockerCli) BuildImage(image domain.Image) error {
	args := []string{"build", "-t", image.LocalRef()}
	if image.DockerfilePath != "" {
		args = append(args, "-f", filepath.Join(image.BuildContextPath, image.DockerfilePath))
	}

	templateValues, err := core.CreateTemplatingValues(d.configRepository)
	if err != nil {
		return err
	}

	for i, arg := range image.BuildArgs {
		renderedArg, err := d.templater.Render(arg, fmt.Sprintf("build-args.%d", i), templateValues)
		if err != nil {
			return err
		}
		args = append(args, renderedArg)
	}

	// Context path is the last argument
	args = append(args, image.BuildContextPath)

	output, err := d.commandRunner.Run("docker", args...)
	if err != nil {
		return fmt.Errorf("failed to build image: %v\n%s", err, string(output))
	}
	return nil
}

func (d *DockerCli) TagImage(source string, target string) error {
	output, err := d.commandRunner.Run("docker", "tag", source, target)
	if err != nil {
		return fmt.Errorf("failed to tag image %s as %s: %v\n%s", source, target, err, string(output))
	}
	return nil
}

func (d *DockerCli) PushImage(ref string) error {
	output, err := d.commandRunner.Run("docker", "push", ref)
	if err != nil {
		return fmt.Errorf("failed to push image: %v\n%s", err, string(output))
	}
	return nil
}

// PullImage pulls a Docker image from a registry
func (d *DockerCli) PullImage(ref string) error {
	output, err := d.commandRunner.Run("docker", "pull", ref)
	if err != nil {
		return fmt.Errorf("failed to pull image: %v\n%s", err, string(output))
	}
	return nil
}

// RunContainer launches the image detached with the container's published
// port mapping. Success is the run command returning zero; no health check
// is performed.
func (d *DockerCli) RunContainer(container domain.Container, ref string) error {
	output, err := d.commandRunner.Run(
		"docker", "run", "-d",
		"-p", container.PortMapping(),
		"--name", container.Name,
		ref,
	)
	if err != nil {
		return fmt.Errorf("failed to run container %s: %v\n%s", container.Name, err, string(output))
	}
	return nil
}

func (d *DockerCli) StopContainer(name string) error {
	output, err := d.commandRunner.Run("docker", "stop", name)
	if err != nil {
		return fmt.Errorf("failed to stop container %s: %v\n%s", name, err, string(output))
	}
	return nil
}

func (d *DockerCli) RemoveContainer(name string) error {
	output, err := d.commandRunner.Run("docker", "rm", name)
	if err != nil {
		return fmt.Errorf("failed to remove container %s: %v\n%s", name, err, string(output))
	}
	return nil
}

func (d *DockerCli) RemoveImage(ref string) error {
	output, err := d.commandRunner.Run("docker", "rmi", "-f", ref)
	if err != nil {
		return fmt.Errorf("failed to remove image %s: %v\n%s", ref, err, string(output))
	}
	return nil
}

var _ ports.ContainerRuntime = (*DockerCli)(nil)
