// Package profile defines named scoring profiles: the weight table,
// thresholds, tier cut points, and metric parameters that configure one run
// of the scoring engine. Profiles are data, not code — the historical
// hard-coded threshold variants become selectable profiles against a single
// engine.
package profile

import (
	"fmt"
	"os"
	"sort"

	"github.com/banglastudy/dataqc/internal/metrics"
	"github.com/banglastudy/dataqc/internal/scoring"
	"gopkg.in/yaml.v3"
)

// Profile is a complete scoring configuration. Validate must pass before a
// profile is used; every validation failure here is fatal by design since it
// would make a whole run's results meaningless.
type Profile struct {
	Name string `yaml:"name" json:"name"`

	Weights    scoring.Weights              `yaml:"weights" json:"weights"`
	Thresholds map[string]scoring.Threshold `yaml:"thresholds" json:"thresholds"`

	// MinOverall warns on records whose composite score falls below it.
	MinOverall float64 `yaml:"min_overall,omitempty" json:"min_overall,omitempty"`

	Tiers scoring.TierCuts `yaml:"tiers" json:"tiers"`

	// Seed drives the uniqueness metric's optional score jitter; zero keeps
	// scoring fully deterministic.
	Seed int64 `yaml:"seed,omitempty" json:"seed,omitempty"`

	// FlaggedLimit caps how many rejected records the analysis retains in
	// full; zero means uncapped.
	FlaggedLimit int `yaml:"flagged_limit,omitempty" json:"flagged_limit,omitempty"`

	// MetricParams holds per-metric tuning knobs, decoded by each metric's
	// constructor.
	MetricParams map[string]map[string]any `yaml:"metric_params,omitempty" json:"metric_params,omitempty"`
}

// Validate checks the profile is internally consistent: weights sum to 1.0,
// every referenced metric name exists, thresholds and tier cuts are sane.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile: name is required")
	}
	if err := p.Weights.Validate(); err != nil {
		return fmt.Errorf("profile %q: %w", p.Name, err)
	}
	for _, name := range sortedKeys(p.Weights) {
		if !metrics.IsKnown(name) {
			return fmt.Errorf("profile %q: weight table references unknown metric %q", p.Name, name)
		}
	}
	for name := range p.Thresholds {
		if !metrics.IsKnown(name) {
			return fmt.Errorf("profile %q: threshold table references unknown metric %q", p.Name, name)
		}
	}
	for name := range p.MetricParams {
		if !metrics.IsKnown(name) {
			return fmt.Errorf("profile %q: metric_params references unknown metric %q", p.Name, name)
		}
	}
	if err := p.Tiers.Validate(); err != nil {
		return fmt.Errorf("profile %q: %w", p.Name, err)
	}
	if err := p.Gate().Validate(); err != nil {
		return fmt.Errorf("profile %q: %w", p.Name, err)
	}
	if p.FlaggedLimit < 0 {
		return fmt.Errorf("profile %q: flagged_limit must be >= 0", p.Name)
	}
	return nil
}

// Gate builds the admission gate configured by this profile.
func (p *Profile) Gate() *scoring.Gate {
	return &scoring.Gate{Thresholds: p.Thresholds, MinOverall: p.MinOverall}
}

// Calculators constructs every known metric calculator with this profile's
// parameters.
func (p *Profile) Calculators() ([]metrics.Calculator, error) {
	var calcs []metrics.Calculator
	for _, name := range metrics.Known() {
		calc, err := metrics.Build(name, p.MetricParams[name])
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", p.Name, err)
		}
		calcs = append(calcs, calc)
	}
	return calcs, nil
}

// Load reads a profile from a YAML file, validates it against the embedded
// JSON schema and then semantically. Any failure is fatal for the run.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse validates and decodes raw YAML profile bytes.
func Parse(data []byte) (*Profile, error) {
	if errs := validateSchema(data); len(errs) > 0 {
		return nil, fmt.Errorf("profile: schema validation failed: %s", errs[0])
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("profile: parsing yaml: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Resolve returns the builtin profile with the given name, or loads a
// profile file when name points at an existing path.
func Resolve(nameOrPath string) (*Profile, error) {
	if p, err := Builtin(nameOrPath); err == nil {
		return p, nil
	}
	if _, err := os.Stat(nameOrPath); err == nil {
		return Load(nameOrPath)
	}
	return nil, fmt.Errorf("profile: %q is neither a builtin profile (%v) nor a file", nameOrPath, Names())
}

func sortedKeys(w scoring.Weights) []string {
	keys := make([]string, 0, len(w))
	for k := range w {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
