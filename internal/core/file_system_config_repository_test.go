package core_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shipctl/internal/core"
	"shipctl/internal/core/domain"
	"shipctl/internal/ports"
	"shipctl/internal/testutil"
)

var testConfigYaml = []byte(`
targets:
  - name: infraoutput
    serviceUnit: codedeploy-agent
    registry:
      host: 123456789012.dkr.ecr.us-east-1.amazonaws.com
      auth: ecr
      region: us-east-1
    image:
      name: infraoutput_vcloud
      tag: latest
      dockerfilePath: Dockerfile
      buildContextPath: .
    container:
      name: my-Infraoutputppapplication
      hostPort: 5000
      containerPort: 5000
  - name: mallapp
    serviceUnit: codedeploy-agent
    registry:
      host: registry.example.com
      auth: static
      username: deployer
    image:
      name: mallapp_vcloud
      buildContextPath: .
    container:
      name: my-Mallappapplication
      hostPort: 5000
      containerPort: 5000
`)

func TestFileSystemConfigRepository_LoadConfig(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	fileSystem.On("ReadFile", filepath.Join("~", ".shipctl-config.yaml")).Return(testConfigYaml, nil)

	sut := core.ProvideFileSystemConfigRepository(fileSystem)

	config, err := sut.LoadConfig()

	require.NoError(t, err)
	require.Len(t, config.Targets, 2)
	assert.Equal(t, "infraoutput", config.Targets[0].Name)
	assert.Equal(t, "codedeploy-agent", config.Targets[0].ServiceUnit)
	assert.Equal(t, domain.RegistryAuthStatic, config.Targets[1].Registry.Auth)
	// tag defaults to latest when omitted
	assert.Equal(t, "latest", config.Targets[1].Image.Tag)
}

func TestFileSystemConfigRepository_LoadConfig_CachesResult(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	fileSystem.On("ReadFile", mock.Anything).Return(testConfigYaml, nil).Once()

	sut := core.ProvideFileSystemConfigRepository(fileSystem)

	_, err := sut.LoadConfig()
	require.NoError(t, err)
	_, err = sut.LoadConfig()
	require.NoError(t, err)

	fileSystem.AssertNumberOfCalls(t, "ReadFile", 1)
}

func TestFileSystemConfigRepository_LoadConfig_FailsOnUnreadableFile(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	fileSystem.On("ReadFile", mock.Anything).Return(nil, errors.New("no such file"))

	sut := core.ProvideFileSystemConfigRepository(fileSystem)

	_, err := sut.LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestFileSystemConfigRepository_LoadConfig_FailsOnInvalidConfig(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	fileSystem.On("ReadFile", mock.Anything).Return([]byte("targets:\n  - name: broken\n"), nil)

	sut := core.ProvideFileSystemConfigRepository(fileSystem)

	_, err := sut.LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestFileSystemConfigRepository_LoadCurrentDeployTarget(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	fileSystem.On("ReadFile", filepath.Join("~", ".shipctl", "current-target")).Return([]byte("mallapp\n"), nil)
	fileSystem.On("ReadFile", filepath.Join("~", ".shipctl-config.yaml")).Return(testConfigYaml, nil)

	sut := core.ProvideFileSystemConfigRepository(fileSystem)

	target, err := sut.LoadCurrentDeployTarget()

	require.NoError(t, err)
	assert.Equal(t, "mallapp", target.Name)
	assert.Equal(t, "my-Mallappapplication", target.Container.Name)
}

func TestFileSystemConfigRepository_LoadCurrentDeployTarget_FailsWhenTargetMissing(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	fileSystem.On("ReadFile", filepath.Join("~", ".shipctl", "current-target")).Return([]byte("ghost"), nil)
	fileSystem.On("ReadFile", filepath.Join("~", ".shipctl-config.yaml")).Return(testConfigYaml, nil)

	sut := core.ProvideFileSystemConfigRepository(fileSystem)

	_, err := sut.LoadCurrentDeployTarget()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found in config")
}

func TestFileSystemConfigRepository_SaveCurrentTargetName_RejectsTraversal(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)

	sut := core.ProvideFileSystemConfigRepository(fileSystem)

	err := sut.SaveCurrentTargetName("../evil")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid target name")
	fileSystem.AssertNotCalled(t, "WriteFile", mock.Anything, mock.Anything, mock.Anything)
}

func TestFileSystemConfigRepository_SaveCurrentTargetName(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	fileSystem.On(
		"WriteFile",
		filepath.Join("~", ".shipctl", "current-target"),
		[]byte("infraoutput"),
		ports.AccessMode(ports.ReadWrite),
	).Return(nil)

	sut := core.ProvideFileSystemConfigRepository(fileSystem)

	err := sut.SaveCurrentTargetName("infraoutput")

	require.NoError(t, err)
	fileSystem.AssertExpectations(t)
}

func TestCreateTemplatingValues(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	fileSystem.On("ReadFile", filepath.Join("~", ".shipctl", "current-target")).Return([]byte("infraoutput"), nil)
	fileSystem.On("ReadFile", filepath.Join("~", ".shipctl-config.yaml")).Return(testConfigYaml, nil)

	sut := core.ProvideFileSystemConfigRepository(fileSystem)

	values, err := core.CreateTemplatingValues(sut)

	require.NoError(t, err)
	assert.Equal(t, "infraoutput", values["Target"])
	imageValues := values["Image"].(map[string]interface{})
	assert.Equal(
		t,
		"123456789012.dkr.ecr.us-east-1.amazonaws.com/infraoutput_vcloud:latest",
		imageValues["URI"],
	)
	containerValues := values["Container"].(map[string]interface{})
	assert.Equal(t, "5000:5000", containerValues["PortMapping"])
}
