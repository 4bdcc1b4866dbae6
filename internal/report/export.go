// Package report renders optimizer runs as JSON, tables and ASCII plots.
package report

import (
	"encoding/json"
	"io"

	"github.com/wjlewis/lagrangian/internal/optim"
)

type Run struct {
	Problem     string       `json:"problem"`
	Options     OptionsData  `json:"options"`
	Point       []float64    `json:"point"`
	Value       float64      `json:"value"`
	Iterations  int          `json:"iterations"`
	Evaluations int          `json:"evaluations"`
	Status      string       `json:"status"`
	Trace       []TracePoint `json:"trace,omitempty"`
}

type OptionsData struct {
	Alpha   float64 `json:"alpha"`
	Gamma   float64 `json:"gamma"`
	Rho     float64 `json:"rho"`
	Sigma   float64 `json:"sigma"`
	Epsilon float64 `json:"epsilon"`
	MaxIter int     `json:"max_iter"`
}

type TracePoint struct {
	Iteration int       `json:"iteration"`
	Step      string    `json:"step"`
	Best      []float64 `json:"best"`
	Value     float64   `json:"value"`
	Spread    float64   `json:"spread"`
}

// NewRun collects a result and, when rec is non-nil, its trace.
func NewRun(problem string, opts optim.Options, res *optim.Result, rec *Recorder) *Run {
	run := &Run{
		Problem: problem,
		Options: OptionsData{
			Alpha:   opts.Alpha,
			Gamma:   opts.Gamma,
			Rho:     opts.Rho,
			Sigma:   opts.Sigma,
			Epsilon: opts.Epsilon,
			MaxIter: opts.MaxIter,
		},
		Point:       res.Point,
		Value:       res.Value,
		Iterations:  res.Iterations,
		Evaluations: res.Evaluations,
		Status:      res.Status.String(),
	}

	if rec != nil {
		run.Trace = make([]TracePoint, len(rec.Iterations))
		for i, it := range rec.Iterations {
			run.Trace[i] = TracePoint{
				Iteration: it.Index,
				Step:      it.Step.String(),
				Best:      it.Best.Point,
				Value:     it.Best.Value,
				Spread:    it.Spread,
			}
		}
	}
	return run
}

func WriteJSON(w io.Writer, run *Run) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(run)
}
