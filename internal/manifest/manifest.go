package manifest

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest is one declared slice of the binding graph: a module's bindings
// plus any components it defines.
type Manifest struct {
	Module     string      `yaml:"module"`
	Bindings   []Binding   `yaml:"bindings"`
	Components []Component `yaml:"components"`
	SourceFile string      `yaml:"-"`
}

type Binding struct {
	Key          string       `yaml:"key"`
	Qualifier    string       `yaml:"qualifier"`
	Kind         string       `yaml:"kind"`
	Dependencies []Dependency `yaml:"dependencies"`
}

type Dependency struct {
	Key       string `yaml:"key"`
	Qualifier string `yaml:"qualifier"`
	Request   string `yaml:"request"`
}

type Component struct {
	Name          string       `yaml:"name"`
	EntryPoints   []Dependency `yaml:"entry_points"`
	Subcomponents []string     `yaml:"subcomponents"`
}

var (
	ErrInvalidYAML      = errors.New("invalid YAML in manifest")
	ErrMissingModule    = errors.New("manifest missing required 'module' field")
	ErrMissingKey       = errors.New("binding missing required 'key' field")
	ErrMissingComponent = errors.New("component missing required 'name' field")
)

func ParseFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	m.SourceFile = path
	return m, nil
}

func Parse(content []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(content, &m); err != nil {
		return nil, ErrInvalidYAML
	}

	if strings.TrimSpace(m.Module) == "" {
		return nil, ErrMissingModule
	}

	for i, binding := range m.Bindings {
		if strings.TrimSpace(binding.Key) == "" {
			return nil, fmt.Errorf("binding %d: %w", i, ErrMissingKey)
		}
		for j, dep := range binding.Dependencies {
			if strings.TrimSpace(dep.Key) == "" {
				return nil, fmt.Errorf("binding %s dependency %d: %w", binding.Key, j, ErrMissingKey)
			}
		}
	}

	for i, component := range m.Components {
		if strings.TrimSpace(component.Name) == "" {
			return nil, fmt.Errorf("component %d: %w", i, ErrMissingComponent)
		}
		for j, entry := range component.EntryPoints {
			if strings.TrimSpace(entry.Key) == "" {
				return nil, fmt.Errorf("component %s entry point %d: %w", component.Name, j, ErrMissingKey)
			}
		}
	}

	return &m, nil
}
