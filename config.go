package agency

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/atomind-ai/agency/atomspace"
	"github.com/atomind-ai/agency/inference"
)

// Config represents an agency.yaml configuration file: the atomspace
// capacity and a declarative list of inference rules registered at
// construction. Environment variables override file values.
type Config struct {
	Atomspace AtomspaceConfig `yaml:"atomspace"`
	Rules     []RuleConfig    `yaml:"rules,omitempty"`
}

// AtomspaceConfig configures the shared atomspace.
type AtomspaceConfig struct {
	// Capacity is the maximum number of atoms the space may hold.
	// Zero selects the default (10000).
	Capacity int `yaml:"capacity,omitempty" env:"AGENCY_ATOMSPACE_CAPACITY"`
}

// RuleConfig declares one forward-chaining inference rule.
type RuleConfig struct {
	// Name identifies the rule.
	Name string `yaml:"name"`

	// Condition is the belief atom type the rule matches, by lowercase
	// name (e.g. "belief").
	Condition string `yaml:"condition"`

	// Conclusion is the atom type the rule produces (e.g. "action").
	Conclusion string `yaml:"conclusion"`

	// Threshold is the minimum belief confidence for the rule to fire.
	Threshold float64 `yaml:"threshold"`
}

// LoadConfig reads and parses an agency configuration file. If path is a
// directory, agency.yaml or agency.yml in that directory is used.
// Environment overrides (AGENCY_*) are applied after parsing.
func LoadConfig(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	configPath := path
	if info.IsDir() {
		yamlPath := filepath.Join(path, "agency.yaml")
		if _, err := os.Stat(yamlPath); err == nil {
			configPath = yamlPath
		} else {
			ymlPath := filepath.Join(path, "agency.yml")
			if _, err := os.Stat(ymlPath); err != nil {
				return nil, fmt.Errorf("%w: no agency.yaml or agency.yml in %s", ErrInvalidConfig, path)
			}
			configPath = ymlPath
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for out-of-range or unparseable values.
func (c *Config) Validate() error {
	if c.Atomspace.Capacity < 0 {
		return fmt.Errorf("%w: negative capacity %d", ErrInvalidConfig, c.Atomspace.Capacity)
	}
	for _, rc := range c.Rules {
		if _, err := rc.build(); err != nil {
			return err
		}
	}
	return nil
}

// BuildRules constructs inference rules from the declarative rule list, in
// file order.
func (c *Config) BuildRules() ([]*inference.Rule, error) {
	rules := make([]*inference.Rule, 0, len(c.Rules))
	for _, rc := range c.Rules {
		rule, err := rc.build()
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func (rc *RuleConfig) build() (*inference.Rule, error) {
	condition, err := atomspace.ParseType(rc.Condition)
	if err != nil {
		return nil, fmt.Errorf("%w: rule %q: %v", ErrInvalidConfig, rc.Name, err)
	}
	conclusion, err := atomspace.ParseType(rc.Conclusion)
	if err != nil {
		return nil, fmt.Errorf("%w: rule %q: %v", ErrInvalidConfig, rc.Name, err)
	}
	rule, err := inference.NewRule(rc.Name, condition, conclusion, rc.Threshold)
	if err != nil {
		return nil, fmt.Errorf("%w: rule %q: %v", ErrInvalidConfig, rc.Name, err)
	}
	return rule, nil
}
