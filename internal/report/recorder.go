package report

import "github.com/wjlewis/lagrangian/internal/optim"

// Recorder is an optim.Observer that keeps every iteration.
type Recorder struct {
	Iterations []optim.Iteration
}

func NewRecorder() *Recorder {
	return &Recorder{Iterations: make([]optim.Iteration, 0)}
}

func (r *Recorder) OnIteration(it optim.Iteration) {
	r.Iterations = append(r.Iterations, it)
}

// BestValues is the best objective value after each iteration.
func (r *Recorder) BestValues() []float64 {
	out := make([]float64, len(r.Iterations))
	for i, it := range r.Iterations {
		out[i] = it.Best.Value
	}
	return out
}

// StepCounts tallies how often each move was taken.
func (r *Recorder) StepCounts() map[optim.Step]int {
	counts := make(map[optim.Step]int)
	for _, it := range r.Iterations {
		counts[it.Step]++
	}
	return counts
}
