package optim

import (
	"bytes"
	"log/slog"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/wjlewis/lagrangian/internal/vec"
)

func bowl(x []float64) float64 {
	return (x[0]-1)*(x[0]-1) + (x[1]-2)*(x[1]-2)
}

func rosenbrock(x []float64) float64 {
	a := 1 - x[0]
	b := x[1] - x[0]*x[0]
	return a*a + 100*b*b
}

type recorder struct {
	its []Iteration
}

func (r *recorder) OnIteration(it Iteration) { r.its = append(r.its, it) }

var _ = Describe("NelderMead", func() {
	var start []vec.Vector

	BeforeEach(func() {
		start = []vec.Vector{{0, 0}, {3, 0}, {0, 4}}
	})

	Context("on a quadratic bowl", func() {
		It("converges to the minimum", func() {
			x, err := Minimize(bowl, start, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(x).To(HaveLen(2))
			Expect(x[0]).To(BeNumerically("~", 1, 1e-4))
			Expect(x[1]).To(BeNumerically("~", 2, 1e-4))
		})

		It("converges from other non-degenerate simplices", func() {
			for _, s := range [][]vec.Vector{
				{{-5, -5}, {-4, -5}, {-5, -4}},
				{{10, 10}, {12, 9}, {9, 13}},
				SimplexAround(vec.Vector{1, 2}, 0.5),
			} {
				x, err := Minimize(bowl, s, nil)
				Expect(err).NotTo(HaveOccurred())
				Expect(x[0]).To(BeNumerically("~", 1, 1e-4))
				Expect(x[1]).To(BeNumerically("~", 2, 1e-4))
			}
		})

		It("never returns a value worse than any initial vertex", func() {
			res, err := NewNelderMead(DefaultOptions()).Run(bowl, start)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Status).To(Equal(Converged))
			for _, p := range start {
				Expect(res.Value).To(BeNumerically("<=", bowl(p)))
			}
			Expect(res.Value).To(BeNumerically("~", bowl(res.Point), 0))
		})

		It("reports a monotonically non-increasing best value", func() {
			rec := &recorder{}
			_, err := NewNelderMead(Options{Observer: rec}).Run(bowl, start)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.its).NotTo(BeEmpty())

			prev := math.Inf(1)
			for i, it := range rec.its {
				Expect(it.Index).To(Equal(i))
				Expect(it.Simplex).To(HaveLen(3))
				Expect(it.Best.Value).To(BeNumerically("<=", prev))
				prev = it.Best.Value
			}
		})

		It("does not mutate the caller's simplex", func() {
			_, err := Minimize(bowl, start, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(start[1]).To(Equal(vec.Vector{3, 0}))
		})
	})

	Context("on the Rosenbrock valley", func() {
		It("finds (1, 1)", func() {
			res, err := NewNelderMead(DefaultOptions()).Run(rosenbrock, SimplexAround(vec.Vector{-1.2, 1}, 0.5))
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Point[0]).To(BeNumerically("~", 1, 1e-3))
			Expect(res.Point[1]).To(BeNumerically("~", 1, 1e-3))
			Expect(res.Evaluations).To(BeNumerically(">", res.Iterations))
		})
	})

	Context("in three dimensions", func() {
		It("minimizes a shifted sphere", func() {
			sphere := func(x []float64) float64 {
				return x[0]*x[0] + (x[1]+1)*(x[1]+1) + (x[2]-3)*(x[2]-3)
			}
			x, err := Minimize(sphere, SimplexAround(vec.Vector{0, 0, 0}, 1), nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(x[0]).To(BeNumerically("~", 0, 1e-4))
			Expect(x[1]).To(BeNumerically("~", -1, 1e-4))
			Expect(x[2]).To(BeNumerically("~", 3, 1e-4))
		})
	})

	Context("preconditions and limits", func() {
		It("rejects a simplex with fewer than 3 points", func() {
			_, err := Minimize(bowl, []vec.Vector{{0, 0}, {1, 1}}, nil)
			Expect(err).To(MatchError(ErrDimensionTooSmall))
		})

		It("stops at the iteration cap", func() {
			res, err := NewNelderMead(Options{MaxIter: 5}).Run(rosenbrock, start)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Status).To(Equal(IterationLimit))
			Expect(res.Iterations).To(Equal(5))
		})

		It("converges immediately on a flat objective", func() {
			flat := func([]float64) float64 { return 4 }
			res, err := NewNelderMead(DefaultOptions()).Run(flat, start)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Status).To(Equal(Converged))
			Expect(res.Iterations).To(Equal(0))
			Expect(res.Evaluations).To(Equal(3))
		})
	})

	It("fills zero options with defaults", func() {
		o := Options{Alpha: 1.5}.withDefaults()
		Expect(o.Alpha).To(Equal(1.5))
		Expect(o.Gamma).To(Equal(DefaultGamma))
		Expect(o.Rho).To(Equal(DefaultRho))
		Expect(o.Sigma).To(Equal(DefaultSigma))
		Expect(o.Epsilon).To(Equal(DefaultEpsilon))
		Expect(o.MaxIter).To(Equal(DefaultMaxIter))
		Expect(o.Logger).NotTo(BeNil())
	})

	It("logs a summary at debug level", func() {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		_, err := NewNelderMead(Options{Logger: logger}).Run(bowl, start)
		Expect(err).NotTo(HaveOccurred())
		Expect(buf.String()).To(ContainSubstring("nelder-mead finished"))
		Expect(buf.String()).To(ContainSubstring("status=converged"))
	})

	It("names its statuses and steps", func() {
		Expect(Converged.String()).To(Equal("converged"))
		Expect(IterationLimit.String()).To(Equal("iteration_limit"))
		Expect(StepShrink.String()).To(Equal("shrink"))
		Expect(StepContractInside.String()).To(Equal("contract_inside"))
	})
})
