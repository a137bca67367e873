package testutil

import (
	"io"

	"github.com/stretchr/testify/mock"

	"shipctl/internal/core/domain"
	"shipctl/internal/ports"
)

// Compile-time interface compliance check
var _ ports.ContainerRuntime = (*MockContainerRuntime)(nil)

type MockContainerRuntime struct {
	mock.Mock
}

func (m *MockContainerRuntime) Login(host string, username string, password io.Reader) error {
	args := m.Called(host, username, password)
	return args.Error(0)
}

func (m *MockContainerRuntime) BuildImage(image domain.Image) error {
	args := m.Called(image)
	return args.Error(0)
}

func (m *MockContainerRuntime) TagImage(source string, target string) error {
	args := m.Called(source, target)
	return args.Error(0)
}

func (m *MockContainerRuntime) PushImage(ref string) error {
	args := m.Called(ref)
	return args.Error(0)
}

func (m *MockContainerRuntime) PullImage(ref string) error {
	args := m.Called(ref)
	return args.Error(0)
}

func (m *MockContainerRuntime) RunContainer(container domain.Container, ref string) error {
	args := m.Called(container, ref)
	return args.Error(0)
}

func (m *MockContainerRuntime) StopContainer(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockContainerRuntime) RemoveContainer(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockContainerRuntime) RemoveImage(ref string) error {
	args := m.Called(ref)
	return args.Error(0)
}
