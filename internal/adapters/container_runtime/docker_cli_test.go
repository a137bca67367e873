package container_runtime

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shipctl/internal/core/domain"
	"shipctl/internal/testutil"
)

func setupMocks() (*testutil.MockConfigRepository, *testutil.MockTemplater, *testutil.MockCommandRunner) {
	configRepo := new(testutil.MockConfigRepository)
	templater := new(testutil.MockTemplater)
	commandRunner := new(testutil.MockCommandRunner)

	// Default mock setup for CreateTemplatingValues
	configRepo.On("LoadCurrentDeployTarget").Return(&domain.DeployTarget{
		Name:        "test-target",
		ServiceUnit: "codedeploy-agent",
		Registry: domain.Registry{
			Host:     "registry.example.com",
			Auth:     domain.RegistryAuthStatic,
			Username: "deployer",
		},
		Image: domain.Image{
			Name:             "my-image",
			Tag:              "latest",
			BuildContextPath: ".",
		},
		Container: domain.Container{Name: "app", HostPort: 80, ContainerPort: 5000},
	}, nil)

	return configRepo, templater, commandRunner
}

func TestDockerCli_BuildImage_Success(t *testing.T) {
	configRepo, templater, commandRunner := setupMocks()

	commandRunner.On("Run", "docker", []string{
		"build", "-t", "my-image:latest", "-f", "/path/to/repo/Dockerfile", "/path/to/repo",
	}).Return([]byte("Successfully built abc123"), nil)

	sut := ProvideDockerCli(configRepo, templater, commandRunner)

	image := domain.Image{
		Name:             "my-image",
		Tag:              "latest",
		DockerfilePath:   "Dockerfile",
		BuildContextPath: "/path/to/repo",
	}

	err := sut.BuildImage(image)

	require.NoError(t, err)
	commandRunner.AssertExpectations(t)
}

func TestDockerCli_BuildImage_WithBuildArgs(t *testing.T) {
	configRepo, templater, commandRunner := setupMocks()

	templater.On("Render", "--build-arg=VERSION=1.0", "build-args.0", mock.Anything).
		Return("--build-arg=VERSION=1.0", nil)
	templater.On("Render", "--build-arg=IMAGE={{.Image.LocalRef}}", "build-args.1", mock.Anything).
		Return("--build-arg=IMAGE=my-image:latest", nil)

	commandRunner.On("Run", "docker", []string{
		"build", "-t", "my-image:latest", "-f", "/path/to/repo/Dockerfile",
		"--build-arg=VERSION=1.0", "--build-arg=IMAGE=my-image:latest", "/path/to/repo",
	}).Return([]byte("Successfully built"), nil)

	sut := ProvideDockerCli(configRepo, templater, commandRunner)

	image := domain.Image{
		Name:             "my-image",
		Tag:              "latest",
		DockerfilePath:   "Dockerfile",
		BuildContextPath: "/path/to/repo",
		BuildArgs:        []string{"--build-arg=VERSION=1.0", "--build-arg=IMAGE={{.Image.LocalRef}}"},
	}

	err := sut.BuildImage(image)

	require.NoError(t, err)
	templater.AssertExpectations(t)
	commandRunner.AssertExpectations(t)
}

func TestDockerCli_BuildImage_DockerCommandFails(t *testing.T) {
	configRepo, templater, commandRunner := setupMocks()

	commandRunner.On("Run", "docker", mock.Anything).
		Return([]byte("error: unable to prepare context"), errors.New("exit status 1"))

	sut := ProvideDockerCli(configRepo, templater, commandRunner)

	image := domain.Image{
		Name:             "my-image",
		Tag:              "latest",
		DockerfilePath:   "Dockerfile",
		BuildContextPath: "/path/to/repo",
	}

	err := sut.BuildImage(image)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to build image")
	assert.Contains(t, err.Error(), "unable to prepare context")
}

func TestDockerCli_Login_PipesPasswordViaStdin(t *testing.T) {
	configRepo, templater, commandRunner := setupMocks()

	commandRunner.On("RunWithStdin", mock.Anything, "docker", []string{
		"login", "--username", "AWS", "--password-stdin", "registry.example.com",
	}).Return([]byte("Login Succeeded"), nil)

	sut := ProvideDockerCli(configRepo, templater, commandRunner)

	err := sut.Login("registry.example.com", "AWS", strings.NewReader("token"))

	require.NoError(t, err)
	commandRunner.AssertExpectations(t)

	call := commandRunner.Calls[0]
	stdin := call.Arguments.Get(0).(io.Reader)
	content, _ := io.ReadAll(stdin)
	assert.Equal(t, "token", string(content))
}

func TestDockerCli_Login_Fails(t *testing.T) {
	configRepo, templater, commandRunner := setupMocks()

	commandRunner.On("RunWithStdin", mock.Anything, "docker", mock.Anything).
		Return([]byte("Error: unauthorized"), errors.New("exit status 1"))

	sut := ProvideDockerCli(configRepo, templater, commandRunner)

	err := sut.Login("registry.example.com", "AWS", strings.NewReader("bad"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to log in to registry")
	assert.Contains(t, err.Error(), "unauthorized")
}

func TestDockerCli_TagImage(t *testing.T) {
	configRepo, templater, commandRunner := setupMocks()

	commandRunner.On("Run", "docker", []string{
		"tag", "my-image:latest", "registry.example.com/my-image:latest",
	}).Return([]byte{}, nil)

	sut := ProvideDockerCli(configRepo, templater, commandRunner)

	err := sut.TagImage("my-image:latest", "registry.example.com/my-image:latest")

	require.NoError(t, err)
	commandRunner.AssertExpectations(t)
}

func TestDockerCli_PushImage(t *testing.T) {
	configRepo, templater, commandRunner := setupMocks()

	commandRunner.On("Run", "docker", []string{"push", "registry.example.com/my-image:latest"}).
		Return([]byte("latest: digest: sha256:abc"), nil)

	sut := ProvideDockerCli(configRepo, templater, commandRunner)

	err := sut.PushImage("registry.example.com/my-image:latest")

	require.NoError(t, err)
	commandRunner.AssertExpectations(t)
}

func TestDockerCli_PullImage_Success(t *testing.T) {
	configRepo, templater, commandRunner := setupMocks()

	commandRunner.On("Run", "docker", []string{"pull", "nginx:latest"}).
		Return([]byte("Status: Downloaded newer image for nginx:latest"), nil)

	sut := ProvideDockerCli(configRepo, templater, commandRunner)

	err := sut.PullImage("nginx:latest")

	require.NoError(t, err)
	commandRunner.AssertExpectations(t)
}

func TestDockerCli_PullImage_Fails(t *testing.T) {
	configRepo, templater, commandRunner := setupMocks()

	commandRunner.On("Run", "docker", []string{"pull", "nonexistent:image"}).
		Return([]byte("Error: pull access denied"), errors.New("exit status 1"))

	sut := ProvideDockerCli(configRepo, templater, commandRunner)

	err := sut.PullImage("nonexistent:image")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to pull image")
	assert.Contains(t, err.Error(), "pull access denied")
}

func TestDockerCli_RunContainer_PublishesPortMapping(t *testing.T) {
	configRepo, templater, commandRunner := setupMocks()

	commandRunner.On("Run", "docker", []string{
		"run", "-d", "-p", "80:5000", "--name", "app", "registry.example.com/my-image:latest",
	}).Return([]byte("f3a9"), nil)

	sut := ProvideDockerCli(configRepo, templater, commandRunner)

	container := domain.Container{Name: "app", HostPort: 80, ContainerPort: 5000}

	err := sut.RunContainer(container, "registry.example.com/my-image:latest")

	require.NoError(t, err)
	commandRunner.AssertExpectations(t)
}

func TestDockerCli_StopAndRemove(t *testing.T) {
	configRepo, templater, commandRunner := setupMocks()

	commandRunner.On("Run", "docker", []string{"stop", "app"}).Return([]byte("app"), nil)
	commandRunner.On("Run", "docker", []string{"rm", "app"}).Return([]byte("app"), nil)
	commandRunner.On("Run", "docker", []string{"rmi", "-f", "my-image:latest"}).Return([]byte{}, nil)

	sut := ProvideDockerCli(configRepo, templater, commandRunner)

	require.NoError(t, sut.StopContainer("app"))
	require.NoError(t, sut.RemoveContainer("app"))
	require.NoError(t, sut.RemoveImage("my-image:latest"))
	commandRunner.AssertExpectations(t)
}

func TestDockerCli_StopContainer_FailsWhenAbsent(t *testing.T) {
	configRepo, templater, commandRunner := setupMocks()

	commandRunner.On("Run", "docker", []string{"stop", "ghost"}).
		Return([]byte("Error: No such container: ghost"), errors.New("exit status 1"))

	sut := ProvideDockerCli(configRepo, templater, commandRunner)

	err := sut.StopContainer("ghost")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "No such container")
}
