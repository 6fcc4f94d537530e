package homology

import (
	"github.com/katalvlaran/cubhom/assembler"
	"github.com/katalvlaran/cubhom/snf"
)

// Solver computes, for each dimension k in [0, d], the invariant-factor
// list of H_k: the first β_k entries are 0 (the free rank), the remainder
// are torsion coefficients t_1 | t_2 | ... | t_r, each >= 2. It is the
// external collaborator treated as a black box; the core
// never inspects a Solver's internal representation.
type Solver interface {
	Solve(matrices []*assembler.IntMatrix) ([][]int64, error)
}

// Option mutates ComputeHomology's configuration.
type Option func(*config)

type config struct {
	solver Solver
}

// WithSolver overrides the default Solver (snf.Solver{}) with an external
// collaborator.
func WithSolver(s Solver) Option {
	return func(c *config) { c.solver = s }
}

func gatherOptions(opts ...Option) config {
	c := config{solver: snf.Solver{}}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
