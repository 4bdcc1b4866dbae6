package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wjlewis/lagrangian/internal/mechanics"
	"github.com/wjlewis/lagrangian/internal/optim"
	"github.com/wjlewis/lagrangian/internal/quad"
)

const (
	DefaultProblem     = "bowl"
	DefaultRule        = "simpson"
	DefaultSimplexSize = 0.5
	DefaultLagrangian  = "oscillator"
	DefaultKnots       = 3
)

type Config struct {
	Problem   string          `yaml:"problem"`
	Rule      string          `yaml:"rule"`
	Step      float64         `yaml:"step"`
	Optimizer OptimizerConfig `yaml:"optimizer"`
	Start     StartConfig     `yaml:"start"`
	Mechanics MechanicsConfig `yaml:"mechanics"`
}

type OptimizerConfig struct {
	Alpha   float64 `yaml:"alpha"`
	Gamma   float64 `yaml:"gamma"`
	Rho     float64 `yaml:"rho"`
	Sigma   float64 `yaml:"sigma"`
	Epsilon float64 `yaml:"epsilon"`
	MaxIter int     `yaml:"max_iter"`
}

// StartConfig places the initial simplex. An empty Center means the
// problem's own starting point.
type StartConfig struct {
	Center []float64 `yaml:"center"`
	Size   float64   `yaml:"size"`
}

type MechanicsConfig struct {
	Lagrangian string  `yaml:"lagrangian"`
	Mass       float64 `yaml:"mass"`
	Stiffness  float64 `yaml:"stiffness"`
	T0         float64 `yaml:"t0"`
	Q0         float64 `yaml:"q0"`
	T1         float64 `yaml:"t1"`
	Q1         float64 `yaml:"q1"`
	Knots      int     `yaml:"knots"`
	Flat       bool    `yaml:"flat"`
}

func DefaultConfig() *Config {
	return &Config{
		Problem: DefaultProblem,
		Rule:    DefaultRule,
		Step:    quad.DefaultStep,
		Optimizer: OptimizerConfig{
			Alpha:   optim.DefaultAlpha,
			Gamma:   optim.DefaultGamma,
			Rho:     optim.DefaultRho,
			Sigma:   optim.DefaultSigma,
			Epsilon: optim.DefaultEpsilon,
			MaxIter: optim.DefaultMaxIter,
		},
		Start: StartConfig{Size: DefaultSimplexSize},
		Mechanics: MechanicsConfig{
			Lagrangian: DefaultLagrangian,
			Mass:       1,
			Stiffness:  1,
			T1:         1.5707963267948966,
			Q1:         1,
			Knots:      DefaultKnots,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Options converts the optimizer section. Zero fields fall back to the
// optimizer defaults.
func (c *Config) Options() optim.Options {
	return optim.Options{
		Alpha:   c.Optimizer.Alpha,
		Gamma:   c.Optimizer.Gamma,
		Rho:     c.Optimizer.Rho,
		Sigma:   c.Optimizer.Sigma,
		Epsilon: c.Optimizer.Epsilon,
		MaxIter: c.Optimizer.MaxIter,
	}
}

// MechanicsProblem builds the least-action problem described by the mechanics
// section around an already resolved Lagrangian.
func (c *Config) MechanicsProblem(L mechanics.Lagrangian) *mechanics.Problem {
	m := c.Mechanics
	return &mechanics.Problem{
		L:     L,
		T0:    m.T0,
		Q0:    m.Q0,
		T1:    m.T1,
		Q1:    m.Q1,
		Knots: m.Knots,
		Step:  c.Step,
		Flat:  m.Flat,
	}
}

// Overlay returns a copy of c with every non-zero field of p applied on top.
// Presets are partial configs and are applied this way.
func (c *Config) Overlay(p *Config) *Config {
	out := *c
	if p == nil {
		return &out
	}
	if p.Problem != "" {
		out.Problem = p.Problem
	}
	if p.Rule != "" {
		out.Rule = p.Rule
	}
	if p.Step != 0 {
		out.Step = p.Step
	}

	o := &out.Optimizer
	setFloat(&o.Alpha, p.Optimizer.Alpha)
	setFloat(&o.Gamma, p.Optimizer.Gamma)
	setFloat(&o.Rho, p.Optimizer.Rho)
	setFloat(&o.Sigma, p.Optimizer.Sigma)
	setFloat(&o.Epsilon, p.Optimizer.Epsilon)
	if p.Optimizer.MaxIter != 0 {
		o.MaxIter = p.Optimizer.MaxIter
	}

	if len(p.Start.Center) > 0 {
		out.Start.Center = append([]float64(nil), p.Start.Center...)
	}
	setFloat(&out.Start.Size, p.Start.Size)

	if p.Mechanics != (MechanicsConfig{}) {
		out.Mechanics = p.Mechanics
	}
	return &out
}

func setFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}
