package handler

import (
	"fmt"

	"shipctl/internal/cli/output"
	"shipctl/internal/cli/progress"
	"shipctl/internal/core"
)

// DeployCommandHandler runs the full deployment lifecycle in order:
// watchdog, teardown, publish, launch. Steps run strictly sequentially and
// the first fatal step halts the deployment.
type DeployCommandHandler struct {
	configRepository core.ConfigRepository
	watchdog         WatchdogCommandHandler
	teardown         TeardownCommandHandler
	publish          PublishCommandHandler
	launch           LaunchCommandHandler
}

func ProvideDeployCommandHandler(
	configRepository core.ConfigRepository,
	watchdog WatchdogCommandHandler,
	teardown TeardownCommandHandler,
	publish PublishCommandHandler,
	launch LaunchCommandHandler,
) DeployCommandHandler {
	return DeployCommandHandler{
		configRepository: configRepository,
		watchdog:         watchdog,
		teardown:         teardown,
		publish:          publish,
		launch:           launch,
	}
}

func (h *DeployCommandHandler) Handle() error {
	target, err := h.configRepository.LoadCurrentDeployTarget()
	if err != nil {
		return err
	}

	output.PrintHeader(fmt.Sprintf("Deploying %s", target.Name))
	fmt.Println()

	steps := progress.NewSteps("Deploy step")
	lifecycle := []struct {
		name   string
		handle func() error
	}{
		{"watchdog", h.watchdog.Handle},
		{"teardown", h.teardown.Handle},
		{"publish", h.publish.Handle},
		{"launch", h.launch.Handle},
	}

	for _, step := range lifecycle {
		steps.Start(step.name)
		err := step.handle()
		steps.Complete(step.name, err)
		if err != nil {
			return fmt.Errorf("deploy step '%s' failed: %v", step.name, err)
		}
		fmt.Println()
	}

	output.PrintSuccess(fmt.Sprintf("Deployed %s: %s", target.Name, steps.Summary()))
	return nil
}
