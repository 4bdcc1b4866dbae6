package optim

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/wjlewis/lagrangian/internal/vec"
)

func himmelblau(x []float64) float64 {
	a := x[0]*x[0] + x[1] - 11
	b := x[0] + x[1]*x[1] - 7
	return a*a + b*b
}

var _ = Describe("MultiStart", func() {
	It("returns the best of several runs", func() {
		starts := [][]vec.Vector{
			SimplexAround(vec.Vector{-4, -4}, 0.5),
			SimplexAround(vec.Vector{3, 3}, 0.5),
			SimplexAround(vec.Vector{-3, 3}, 0.5),
		}
		res, err := MultiStart(context.Background(), himmelblau, starts, DefaultOptions())
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Value).To(BeNumerically("<", 1e-8))
	})

	It("reports which start failed", func() {
		starts := [][]vec.Vector{
			SimplexAround(vec.Vector{0, 0}, 1),
			{{0, 0}, {1, 0}},
		}
		_, err := MultiStart(context.Background(), bowl, starts, DefaultOptions())
		Expect(err).To(HaveOccurred())

		var runErr *RunError
		Expect(errors.As(err, &runErr)).To(BeTrue())
		Expect(runErr.Start).To(Equal(1))
		Expect(errors.Is(err, ErrDimensionTooSmall)).To(BeTrue())
	})

	It("requires at least one start", func() {
		_, err := MultiStart(context.Background(), bowl, nil, DefaultOptions())
		Expect(err).To(MatchError(ErrNoStarts))
	})

	It("honours a canceled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := MultiStart(ctx, bowl, [][]vec.Vector{SimplexAround(vec.Vector{0, 0}, 1)}, DefaultOptions())
		Expect(errors.Is(err, context.Canceled)).To(BeTrue())
	})
})
