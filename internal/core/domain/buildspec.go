package domain

import "fmt"

// BuildSpec is the declarative pipeline definition for a deploy target:
// runtime versions to announce, three sequential phases, and the files
// retained as pipeline artifacts.
type BuildSpec struct {
	Version         string            `yaml:"version"`
	RuntimeVersions map[string]string `yaml:"runtimeVersions,omitempty"`
	Phases          Phases            `yaml:"phases"`
	Artifacts       Artifacts         `yaml:"artifacts,omitempty"`
}

type Phases struct {
	Install   Phase `yaml:"install,omitempty"`
	Build     Phase `yaml:"build,omitempty"`
	PostBuild Phase `yaml:"post_build,omitempty"`
}

type Phase struct {
	Commands []string `yaml:"commands,omitempty"`
}

type Artifacts struct {
	Files []string `yaml:"files,omitempty"`
}

// OrderedPhases returns the phases in their fixed execution order, paired
// with their names for reporting.
func (s *BuildSpec) OrderedPhases() []NamedPhase {
	return []NamedPhase{
		{Name: "install", Phase: s.Phases.Install},
		{Name: "build", Phase: s.Phases.Build},
		{Name: "post_build", Phase: s.Phases.PostBuild},
	}
}

type NamedPhase struct {
	Name  string
	Phase Phase
}

func (s *BuildSpec) Validate() error {
	if s.Version == "" {
		return fmt.Errorf("buildspec has empty version")
	}
	if len(s.Phases.Install.Commands) == 0 &&
		len(s.Phases.Build.Commands) == 0 &&
		len(s.Phases.PostBuild.Commands) == 0 {
		return fmt.Errorf("buildspec declares no commands in any phase")
	}
	return nil
}
