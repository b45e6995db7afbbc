// Package taxonomy loads the departments, risk categories, and value-chain
// steps that a user may select on the assessment form.
package taxonomy

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"risk-demo/internal/domain"
)

//go:embed default.yaml
var defaultYAML []byte

var _ domain.SelectionCatalog = (*Taxonomy)(nil)

// Taxonomy holds the selectable lists in display order.
type Taxonomy struct {
	Departments     []string `yaml:"departments" json:"departments"`
	Risks           []string `yaml:"risks" json:"risks"`
	ValueChainSteps []string `yaml:"valueChainSteps" json:"valueChainSteps"`
}

// Default returns the built-in taxonomy.
func Default() *Taxonomy {
	t, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("taxonomy: embedded default is invalid: %v", err))
	}
	return t
}

// Load reads a taxonomy from a YAML file. An empty path returns the default.
func Load(path string) (*Taxonomy, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("read taxonomy %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("taxonomy %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes and validates a YAML taxonomy document.
func Parse(data []byte) (*Taxonomy, error) {
	var t Taxonomy
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	t.Departments = trimAll(t.Departments)
	t.Risks = trimAll(t.Risks)
	t.ValueChainSteps = trimAll(t.ValueChainSteps)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks that every list is non-empty and free of blanks and
// duplicates.
func (t *Taxonomy) Validate() error {
	lists := []struct {
		name   string
		values []string
	}{
		{"departments", t.Departments},
		{"risks", t.Risks},
		{"valueChainSteps", t.ValueChainSteps},
	}
	for _, l := range lists {
		if len(l.values) == 0 {
			return domain.ErrValidation("%s must not be empty", l.name)
		}
		seen := make(map[string]struct{}, len(l.values))
		for _, v := range l.values {
			if v == "" {
				return domain.ErrValidation("%s contains a blank entry", l.name)
			}
			if _, dup := seen[v]; dup {
				return domain.ErrValidation("%s contains duplicate %q", l.name, v)
			}
			seen[v] = struct{}{}
		}
	}
	return nil
}

// HasDepartment reports whether name is a known department.
func (t *Taxonomy) HasDepartment(name string) bool { return contains(t.Departments, name) }

// HasRisk reports whether name is a known risk category.
func (t *Taxonomy) HasRisk(name string) bool { return contains(t.Risks, name) }

// HasValueChainStep reports whether name is a known value-chain step.
func (t *Taxonomy) HasValueChainStep(name string) bool { return contains(t.ValueChainSteps, name) }

func contains(values []string, name string) bool {
	for _, v := range values {
		if v == name {
			return true
		}
	}
	return false
}

func trimAll(values []string) []string {
	for i := range values {
		values[i] = strings.TrimSpace(values[i])
	}
	return values
}
