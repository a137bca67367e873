package handler

import (
	"errors"
	"testing"

	"shipctl/internal/ports"
	"shipctl/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLaunchCommandHandler_Handle_Success(t *testing.T) {
	configRepository := new(testutil.MockConfigRepository)
	containerRuntime := new(testutil.MockContainerRuntime)
	authenticator, ecrProvider := authenticatorWithMocks(containerRuntime)

	target := testTarget()
	configRepository.On("LoadCurrentDeployTarget").Return(target, nil)
	ecrProvider.On("Credentials", target.Registry).Return(ports.Credential{Username: "AWS", Password: "token"}, nil)
	containerRuntime.On("Login", testRegistryHost, "AWS", mock.Anything).Return(nil)
	containerRuntime.On("PullImage", testRemoteRef).Return(nil)
	containerRuntime.On("RunContainer", target.Container, testRemoteRef).Return(nil)

	sut := ProvideLaunchCommandHandler(configRepository, authenticator, containerRuntime)

	err := sut.Handle()

	assert.NoError(t, err)
	containerRuntime.AssertExpectations(t)

	// The image must be pulled before the container is run.
	var methods []string
	for _, call := range containerRuntime.Calls {
		methods = append(methods, call.Method)
	}
	assert.Equal(t, []string{"Login", "PullImage", "RunContainer"}, methods)
}

func TestLaunchCommandHandler_Handle_LoginFailureIsFatal(t *testing.T) {
	configRepository := new(testutil.MockConfigRepository)
	containerRuntime := new(testutil.MockContainerRuntime)
	authenticator, ecrProvider := authenticatorWithMocks(containerRuntime)

	target := testTarget()
	expectedErr := errors.New("token request failed")
	configRepository.On("LoadCurrentDeployTarget").Return(target, nil)
	ecrProvider.On("Credentials", target.Registry).Return(ports.Credential{}, expectedErr)

	sut := ProvideLaunchCommandHandler(configRepository, authenticator, containerRuntime)

	err := sut.Handle()

	assert.Equal(t, expectedErr, err)
	containerRuntime.AssertNotCalled(t, "PullImage", testRemoteRef)
	containerRuntime.AssertNotCalled(t, "RunContainer", target.Container, testRemoteRef)
}

func TestLaunchCommandHandler_Handle_PullFailureSkipsRun(t *testing.T) {
	configRepository := new(testutil.MockConfigRepository)
	containerRuntime := new(testutil.MockContainerRuntime)
	authenticator, ecrProvider := authenticatorWithMocks(containerRuntime)

	target := testTarget()
	expectedErr := errors.New("manifest unknown")
	configRepository.On("LoadCurrentDeployTarget").Return(target, nil)
	ecrProvider.On("Credentials", target.Registry).Return(ports.Credential{Username: "AWS", Password: "token"}, nil)
	containerRuntime.On("Login", testRegistryHost, "AWS", mock.Anything).Return(nil)
	containerRuntime.On("PullImage", testRemoteRef).Return(expectedErr)

	sut := ProvideLaunchCommandHandler(configRepository, authenticator, containerRuntime)

	err := sut.Handle()

	assert.Equal(t, expectedErr, err)
	containerRuntime.AssertNotCalled(t, "RunContainer", target.Container, testRemoteRef)
}

func TestLaunchCommandHandler_Handle_RunFailureIsFatal(t *testing.T) {
	configRepository := new(testutil.MockConfigRepository)
	containerRuntime := new(testutil.MockContainerRuntime)
	authenticator, ecrProvider := authenticatorWithMocks(containerRuntime)

	target := testTarget()
	expectedErr := errors.New("port is already allocated")
	configRepository.On("LoadCurrentDeployTarget").Return(target, nil)
	ecrProvider.On("Credentials", target.Registry).Return(ports.Credential{Username: "AWS", Password: "token"}, nil)
	containerRuntime.On("Login", testRegistryHost, "AWS", mock.Anything).Return(nil)
	containerRuntime.On("PullImage", testRemoteRef).Return(nil)
	containerRuntime.On("RunContainer", target.Container, testRemoteRef).Return(expectedErr)

	sut := ProvideLaunchCommandHandler(configRepository, authenticator, containerRuntime)

	err := sut.Handle()

	assert.Equal(t, expectedErr, err)
	containerRuntime.AssertExpectations(t)
}
