//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"shipctl/internal/adapters/command_runner"
	"shipctl/internal/adapters/container_runtime"
	"shipctl/internal/adapters/filesystem"
	"shipctl/internal/adapters/keyring"
	"shipctl/internal/adapters/registry_credentials"
	"shipctl/internal/adapters/service_controller"
	"shipctl/internal/adapters/templater"
	"shipctl/internal/adapters/terminal"
	"shipctl/internal/core"
	"shipctl/internal/core/handler"
	"shipctl/internal/ports"
)

var Adapter = wire.NewSet(
	command_runner.ProvideOsCommandRunner,
	wire.Bind(new(ports.CommandRunner), new(*command_runner.OsCommandRunner)),
	container_runtime.ProvideDockerCli,
	wire.Bind(new(ports.ContainerRuntime), new(*container_runtime.DockerCli)),
	service_controller.ProvideSystemctl,
	wire.Bind(new(ports.ServiceController), new(*service_controller.Systemctl)),
	registry_credentials.ProvideEcrProvider,
	wire.Bind(new(ports.EcrCredentialProvider), new(*registry_credentials.EcrProvider)),
	registry_credentials.ProvideStaticKeyringProvider,
	wire.Bind(new(ports.StaticCredentialProvider), new(*registry_credentials.StaticKeyringProvider)),
	filesystem.ProvideOsFileSystem,
	wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
	keyring.ProvideZalandoKeyring,
	templater.ProvideTextTemplater,
	terminal.ProvideTerminalInput,
	wire.Bind(new(ports.TerminalInput), new(*terminal.TerminalInput)),
)

// CoreSet provides domain/core dependencies
var CoreSet = wire.NewSet(
	core.ProvideFileSystemConfigRepository,
	wire.Bind(new(core.ConfigRepository), new(*core.FileSystemConfigRepository)),
	core.ProvideBuildSpecRepository,
	core.ProvideRegistryAuthenticator,
)

// CommandHandlerSet combines all sets needed for command handlers
var CommandHandlerSet = wire.NewSet(
	Adapter,
	CoreSet,
)

func InjectConfigRepo() (core.ConfigRepository, error) {
	wire.Build(
		filesystem.ProvideOsFileSystem,
		wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
		core.ProvideFileSystemConfigRepository,
		wire.Bind(new(core.ConfigRepository), new(*core.FileSystemConfigRepository)),
	)
	return &core.FileSystemConfigRepository{}, nil
}

func InjectWatchdogCommandHandler() (handler.WatchdogCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideWatchdogCommandHandler,
	)
	return handler.WatchdogCommandHandler{}, nil
}

func InjectTeardownCommandHandler() (handler.TeardownCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideTeardownCommandHandler,
	)
	return handler.TeardownCommandHandler{}, nil
}

func InjectPublishCommandHandler() (handler.PublishCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvidePublishCommandHandler,
	)
	return handler.PublishCommandHandler{}, nil
}

func InjectLaunchCommandHandler() (handler.LaunchCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideLaunchCommandHandler,
	)
	return handler.LaunchCommandHandler{}, nil
}

func InjectDeployCommandHandler() (handler.DeployCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideWatchdogCommandHandler,
		handler.ProvideTeardownCommandHandler,
		handler.ProvidePublishCommandHandler,
		handler.ProvideLaunchCommandHandler,
		handler.ProvideDeployCommandHandler,
	)
	return handler.DeployCommandHandler{}, nil
}

func InjectPipelineCommandHandler() (handler.PipelineCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvidePipelineCommandHandler,
	)
	return handler.PipelineCommandHandler{}, nil
}

func InjectTargetCommandHandler() (handler.TargetCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideTargetCommandHandler,
	)
	return handler.TargetCommandHandler{}, nil
}

func InjectInitializeCommandHandler() (handler.InitializeCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideInitializeCommandHandler,
	)
	return handler.InitializeCommandHandler{}, nil
}

func InjectRegistryCommandHandler() (handler.RegistryCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideRegistryCommandHandler,
	)
	return handler.RegistryCommandHandler{}, nil
}
