package optim

import (
	"io"
	"log/slog"
)

const (
	DefaultAlpha   = 1.0
	DefaultGamma   = 2.0
	DefaultRho     = 0.5
	DefaultSigma   = 0.5
	DefaultEpsilon = 1e-12
	DefaultMaxIter = 10_000
)

// Options configures Nelder-Mead. Zero numeric fields take their defaults.
type Options struct {
	// Reflection coefficient.
	Alpha float64
	// Expansion coefficient.
	Gamma float64
	// Contraction coefficient.
	Rho float64
	// Shrink coefficient.
	Sigma float64
	// The run converges once the standard deviation of the vertex values
	// drops below Epsilon.
	Epsilon float64
	MaxIter int

	// Logger receives a debug record per run. Nil disables logging.
	Logger *slog.Logger
	// Observer is notified after every iteration. Nil disables tracing.
	Observer Observer
}

func DefaultOptions() Options {
	return Options{
		Alpha:   DefaultAlpha,
		Gamma:   DefaultGamma,
		Rho:     DefaultRho,
		Sigma:   DefaultSigma,
		Epsilon: DefaultEpsilon,
		MaxIter: DefaultMaxIter,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Alpha == 0 {
		o.Alpha = d.Alpha
	}
	if o.Gamma == 0 {
		o.Gamma = d.Gamma
	}
	if o.Rho == 0 {
		o.Rho = d.Rho
	}
	if o.Sigma == 0 {
		o.Sigma = d.Sigma
	}
	if o.Epsilon == 0 {
		o.Epsilon = d.Epsilon
	}
	if o.MaxIter == 0 {
		o.MaxIter = d.MaxIter
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}
