package handler

import (
	"fmt"
	"path/filepath"

	"shipctl/internal/cli/output"
	"shipctl/internal/core"
	"shipctl/internal/ports"
)

type PipelineCommandHandler struct {
	configRepository    core.ConfigRepository
	buildSpecRepository *core.BuildSpecRepository
	templater           ports.Templater
	commandRunner       ports.CommandRunner
	fileSystem          ports.FileSystem
}

func ProvidePipelineCommandHandler(
	configRepository core.ConfigRepository,
	buildSpecRepository *core.BuildSpecRepository,
	templater ports.Templater,
	commandRunner ports.CommandRunner,
	fileSystem ports.FileSystem,
) PipelineCommandHandler {
	return PipelineCommandHandler{
		configRepository:    configRepository,
		buildSpecRepository: buildSpecRepository,
		templater:           templater,
		commandRunner:       commandRunner,
		fileSystem:          fileSystem,
	}
}

// Handle executes the target's buildspec: install, build, and post_build
// phase commands run sequentially in the build context directory, then the
// declared artifact files are verified and reported. A failing command halts
// the pipeline.
func (h *PipelineCommandHandler) Handle() error {
	target, err := h.configRepository.LoadCurrentDeployTarget()
	if err != nil {
		return err
	}

	spec, err := h.buildSpecRepository.Load(target.BuildSpecPath)
	if err != nil {
		return err
	}

	renderValues, err := core.CreateTemplatingValues(h.configRepository)
	if err != nil {
		return err
	}

	for runtime, version := range spec.RuntimeVersions {
		output.PrintInfo(fmt.Sprintf("Runtime: %s %s", runtime, version))
	}

	workDir := target.Image.BuildContextPath
	for _, phase := range spec.OrderedPhases() {
		if len(phase.Phase.Commands) == 0 {
			continue
		}

		output.PrintHeader(fmt.Sprintf("Phase: %s", phase.Name))

		for i, command := range phase.Phase.Commands {
			renderedCommand, err := h.templater.Render(
				command,
				fmt.Sprintf("%s.%d", phase.Name, i),
				renderValues,
			)
			if err != nil {
				return err
			}

			output.PrintStep(output.Bold(renderedCommand))
			if err := h.commandRunner.RunInteractiveInDir(workDir, "bash", "-c", renderedCommand); err != nil {
				return fmt.Errorf("phase '%s' command '%s' failed: %v", phase.Name, renderedCommand, err)
			}
		}
		fmt.Println()
	}

	if len(spec.Artifacts.Files) > 0 {
		output.PrintHeader("Artifacts")
		for _, file := range spec.Artifacts.Files {
			artifactPath := filepath.Join(workDir, file)
			exists, err := h.fileSystem.FileExists(artifactPath)
			if err != nil {
				return err
			}
			if !exists {
				return fmt.Errorf("declared artifact '%s' was not produced", file)
			}
			output.PrintStep(file)
		}
	}

	output.PrintSuccess(fmt.Sprintf("Pipeline for %s complete", target.Name))
	return nil
}
