// SPDX-License-Identifier: MIT
// Package config loads the isolator configuration from YAML.
//
// Decoding is strict: an unknown key is an error, so a typo never silently
// falls back to a default. Missing keys keep the values of Default().
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/isolator/isolation"
	"github.com/katalvlaran/isolator/mis"
)

// ErrInvalid is returned when a decoded value is out of range.
var ErrInvalid = errors.New("config: invalid value")

// Config is the complete configuration.
type Config struct {
	Solver  SolverConfig  `yaml:"solver"`
	Plan    PlanConfig    `yaml:"plan"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
	Profile ProfileConfig `yaml:"profile"`
}

// SolverConfig tunes the searches.
type SolverConfig struct {
	// SizeKernel is "basic" or "full".
	SizeKernel string `yaml:"size_kernel"`
	// PollInterval is the number of search nodes between context polls.
	PollInterval int `yaml:"poll_interval"`
}

// PlanConfig tunes the per-component planner.
type PlanConfig struct {
	// Order is "edges" or "vertices".
	Order string `yaml:"order"`
}

// LogConfig sets the klog verbosity.
type LogConfig struct {
	Verbosity int `yaml:"verbosity"`
}

// MetricsConfig names the Prometheus text file written after a run.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// ProfileConfig enables CPU profiling into CPUDir.
type ProfileConfig struct {
	CPUDir string `yaml:"cpu_dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Solver: SolverConfig{
			SizeKernel:   mis.KernelBasic.String(),
			PollInterval: mis.DefaultPollInterval,
		},
		Plan: PlanConfig{
			Order: isolation.OrderEdges.String(),
		},
	}
}

// Load reads path over Default(). An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "config: open")
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: %s", path)
	}

	return cfg, nil
}

// Decode reads YAML from r over Default() and validates the result.
// An empty document yields Default().
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "config: decode")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every enumerated and numeric field.
func (c Config) Validate() error {
	if _, err := c.SizeKernel(); err != nil {
		return err
	}
	if c.Solver.PollInterval <= 0 {
		return errors.Wrapf(ErrInvalid, "solver.poll_interval must be positive (%d)", c.Solver.PollInterval)
	}
	if _, err := c.Order(); err != nil {
		return err
	}
	if c.Log.Verbosity < 0 {
		return errors.Wrapf(ErrInvalid, "log.verbosity must not be negative (%d)", c.Log.Verbosity)
	}

	return nil
}

// SizeKernel parses Solver.SizeKernel.
func (c Config) SizeKernel() (mis.KernelProfile, error) {
	p, err := mis.ParseKernelProfile(c.Solver.SizeKernel)
	if err != nil {
		return p, errors.Wrapf(ErrInvalid, "solver.size_kernel: %v", err)
	}

	return p, nil
}

// Order parses Plan.Order.
func (c Config) Order() (isolation.Order, error) {
	o, err := isolation.ParseOrder(c.Plan.Order)
	if err != nil {
		return o, errors.Wrapf(ErrInvalid, "plan.order: %v", err)
	}

	return o, nil
}

// PlanOptions translates the configuration into isolation options.
// The caller adds runtime-only options such as a context or a recorder.
func (c Config) PlanOptions() ([]isolation.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	kernel, _ := c.SizeKernel()
	order, _ := c.Order()

	return []isolation.Option{
		isolation.WithOrder(order),
		isolation.WithSolverOptions(
			mis.WithKernel(kernel),
			mis.WithPollInterval(c.Solver.PollInterval),
		),
	}, nil
}
