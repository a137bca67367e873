package ports

import (
	"io"

	"shipctl/internal/core/domain"
)

type ContainerRuntime interface {
	// Login authenticates against a registry host. The password is read from
	// stdin so it never appears in the process argument list.
	Login(host string, username string, password io.Reader) error
	BuildImage(image domain.Image) error
	TagImage(source string, target string) error
	PushImage(ref string) error
	PullImage(ref string) error
	// RunContainer starts the image detached with the container's name and
	// published port mapping.
	RunContainer(container domain.Container, ref string) error
	StopContainer(name string) error
	RemoveContainer(name string) error
	// RemoveImage force-removes the image reference.
	RemoveImage(ref string) error
}
