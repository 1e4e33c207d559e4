package splu

import "gonum.org/v1/gonum/floats"

// Residual computes the Euclidean norm of A*x - b, a standard diagnostic
// for how well a solve satisfied the original system.
func Residual(a *Csc, x, b []F) float64 {
	if len(x) != a.NCols() || len(b) != a.NRows() {
		panic(ErrShape)
	}
	ax := make([]F, a.NRows())
	a.MulVec(x, ax)

	diff := make([]float64, len(b))
	for i := range diff {
		diff[i] = float64(ax[i])
	}
	bf := make([]float64, len(b))
	for i := range bf {
		bf[i] = float64(b[i])
	}
	floats.Sub(diff, bf)
	return floats.Norm(diff, 2)
}
