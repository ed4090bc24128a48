package floorplan

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Room orders accepted by report configuration and flags.
const (
	SortPlan = "plan" // first-appearance order
	SortName = "name" // legacy name-sorted order
)

// Load reads and parses a floor-plan file.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}
	return Parse(string(data))
}

// ProjectConfig is the survey.yaml file of a project directory.
type ProjectConfig struct {
	Plan string `yaml:"plan" json:"plan"`
	Sort string `yaml:"sort" json:"sort,omitempty"`
}

// LoadProject loads a floor plan from a project directory containing
// survey.yaml. The config's plan path is resolved relative to the directory.
func LoadProject(dir string) (*Plan, *ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, "survey.yaml"))
	if err != nil {
		return nil, nil, fmt.Errorf("reading project config: %w", err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing survey.yaml: %w", err)
	}
	if cfg.Plan == "" {
		return nil, nil, fmt.Errorf("survey.yaml: missing plan entry")
	}
	switch cfg.Sort {
	case "", SortPlan, SortName:
	default:
		return nil, nil, fmt.Errorf("survey.yaml: unknown sort %q (want %q or %q)", cfg.Sort, SortPlan, SortName)
	}

	plan, err := Load(filepath.Join(dir, cfg.Plan))
	if err != nil {
		return nil, nil, err
	}
	return plan, &cfg, nil
}
