package snf

import "github.com/katalvlaran/cubhom/assembler"

// Solver computes homology invariant-factor lists from boundary matrices via
// SmithNormalForm. It implements homology.Solver by structural typing: no
// import of that package is needed here.
type Solver struct{}

// Solve implements homology.Solver. Given (M_1, ..., M_d), it returns, for
// each k in [0, d], a slice whose first β_k entries are 0 (the free rank)
// followed by the torsion coefficients t_1 | ... | t_r (each >= 2, each
// dividing the next) of H_k.
func (Solver) Solve(matrices []*assembler.IntMatrix) ([][]int64, error) {
	d := len(matrices)
	ranks := make([]int, d+1) // ranks[k] = rank(∂_k); ranks[0] = 0 by convention
	diags := make([][]int64, d)

	for idx, m := range matrices {
		diag, rank, err := SmithNormalForm(m)
		if err != nil {
			return nil, err
		}
		diags[idx] = diag
		ranks[idx+1] = rank
	}

	dims := make([]int, d+1)
	if d > 0 {
		dims[0] = matrices[0].Rows()
		for k := 1; k <= d; k++ {
			dims[k] = matrices[k-1].Cols()
		}
	}

	result := make([][]int64, d+1)
	for k := 0; k <= d; k++ {
		rankK := ranks[k]
		rankNext := 0
		if k+1 <= d {
			rankNext = ranks[k+1]
		}
		beta := dims[k] - rankK - rankNext

		var torsion []int64
		if k+1 <= d {
			for _, v := range diags[k] {
				if v > 1 {
					torsion = append(torsion, v)
				}
			}
		}

		seq := make([]int64, 0, beta+len(torsion))
		for i := 0; i < beta; i++ {
			seq = append(seq, 0)
		}
		seq = append(seq, torsion...)
		result[k] = seq
	}

	return result, nil
}
