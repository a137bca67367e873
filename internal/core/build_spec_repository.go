package core

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"shipctl/internal/core/domain"
	"shipctl/internal/ports"
)

// BuildSpecRepository loads the declarative pipeline definition of a target.
type BuildSpecRepository struct {
	fileService ports.FileSystem
}

func ProvideBuildSpecRepository(fileService ports.FileSystem) *BuildSpecRepository {
	return &BuildSpecRepository{fileService: fileService}
}

func (r *BuildSpecRepository) Load(path string) (*domain.BuildSpec, error) {
	if path == "" {
		return nil, fmt.Errorf("target declares no buildSpecPath")
	}

	data, err := r.fileService.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read buildspec file: %v", err)
	}

	var spec domain.BuildSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse buildspec file: %v", err)
	}

	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("buildspec validation failed: %v", err)
	}

	return &spec, nil
}
