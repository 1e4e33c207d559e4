package splu

import (
	"fmt"
	"math"
)

// LeftLookingLUFactorization is a left-looking LU factorization with
// partial (row) pivoting, P*A = L*U. A single Csc (LU) stores both L
// (strictly below the diagonal, unit diagonal implicit and never stored)
// and U (on and above the diagonal). Pivot is a length-n permutation
// where Pivot[i] is the original row now occupying position i.
type LeftLookingLUFactorization struct {
	lu    *Csc
	pivot []int
}

// LU returns the combined L\U factor.
func (f *LeftLookingLUFactorization) LU() *Csc {
	return f.lu
}

// Pivot returns the row permutation chosen during factorization: Pivot[i]
// names the original row now occupying position i.
func (f *LeftLookingLUFactorization) Pivot() []int {
	return f.pivot
}

// Factorize computes the left-looking LU factorization, with partial row
// pivoting, of the square matrix a. Factorize panics with ErrSingular if
// any column's selected pivot is exactly zero: a rank-deficient input is
// a programmer-fault precondition violation, not a recoverable condition.
func Factorize(a *Csc) *LeftLookingLUFactorization {
	if a.NRows() != a.NCols() {
		panic(ErrShape)
	}
	n := a.NRows()

	pivot := make([]int, n)
	for i := range pivot {
		pivot[i] = i
	}

	workingA := a.clone()
	lub := NewCscBuilder(n, n)

	var valBuf []F
	patBuf := make([]int, 0, n)
	patContains := make([]bool, n)
	var stack []int

	for ci := 0; ci < n; ci++ {
		lu := lub.Build()
		colVals, colRows := workingA.Col(ci)

		lu.Pattern().reachLowerBool(colRows, patContains, &stack)
		patBuf = patBuf[:0]
		for i, has := range patContains {
			if has {
				patBuf = append(patBuf, i)
			}
		}

		if cap(valBuf) < len(patBuf) {
			valBuf = make([]F, len(patBuf))
		} else {
			valBuf = valBuf[:len(patBuf)]
		}
		lu.SparseLowerTriangularSolveSorted(colRows, colVals, patBuf, valBuf, true)

		bestK := -1
		var bestAbs F
		for k, row := range patBuf {
			if row < ci {
				continue
			}
			av := absF(valBuf[k])
			if bestK == -1 || av > bestAbs {
				bestK, bestAbs = k, av
			}
		}
		if bestK == -1 || valBuf[bestK] == 0 {
			panic(fmt.Errorf("splu: column %d: %w", ci, ErrSingular))
		}
		ukk := valBuf[bestK]
		bestRow := patBuf[bestK]

		if bestRow != ci {
			pivot[ci], pivot[bestRow] = pivot[bestRow], pivot[ci]
			relabelAndResort(patBuf, valBuf, ci, bestRow)
			lu.SwapRows(ci, bestRow)
			workingA.SwapRows(ci, bestRow)
		}

		lub = cscBuilderFromMat(lu)
		if !lub.RevertToCol(ci) {
			panic(ErrShape)
		}

		for k, row := range patBuf {
			v := valBuf[k]
			if row > ci {
				v = v / ukk
			}
			if !isFiniteF(v) {
				panic(fmt.Errorf("splu: non-finite value produced at row %d col %d", row, ci))
			}
			if err := lub.Insert(row, ci, v); err != nil {
				panic(err)
			}
		}
	}

	luFinal := lub.Build()
	return &LeftLookingLUFactorization{lu: &luFinal, pivot: pivot}
}

// relabelAndResort swaps occurrences of a and b within pat (keeping val
// aligned by position) and restores ascending order with one forward and
// one reverse adjacent-swap pass -- sufficient because only the relabelled
// entries are out of place, the larger label moving right in the forward
// pass and the smaller moving left in the reverse pass.
func relabelAndResort(pat []int, val []F, a, b int) {
	for k, row := range pat {
		switch row {
		case a:
			pat[k] = b
		case b:
			pat[k] = a
		}
	}
	for k := 1; k < len(pat); k++ {
		if pat[k-1] > pat[k] {
			pat[k-1], pat[k] = pat[k], pat[k-1]
			val[k-1], val[k] = val[k], val[k-1]
		}
	}
	for k := len(pat) - 1; k > 0; k-- {
		if pat[k-1] > pat[k] {
			pat[k-1], pat[k] = pat[k], pat[k-1]
			val[k-1], val[k] = val[k], val[k-1]
		}
	}
}

// Solve computes x in P*A*x = P*b for the dense right-hand side b,
// overwriting b with the result. buf is scratch space and must have the
// same length as b; its contents on return are unspecified.
func (f *LeftLookingLUFactorization) Solve(b []F, buf []F) {
	n := len(f.pivot)
	if len(b) != n || len(buf) != n {
		panic(ErrShape)
	}
	for i, p := range f.pivot {
		buf[i] = b[p]
	}
	f.lu.DenseLowerTriangularSolve(buf, b, true)
	f.lu.DenseUpperTriangularSolve(b, buf)
	copy(b, buf)
}

// SolveArr is the batched counterpart of Solve: b and buf each hold n
// rows of width columns, row i occupying b[i*width:(i+1)*width].
func (f *LeftLookingLUFactorization) SolveArr(b []F, buf []F, width int) {
	n := len(f.pivot)
	if width <= 0 || len(b) != n*width || len(buf) != len(b) {
		panic(ErrShape)
	}
	for i, p := range f.pivot {
		copy(buf[i*width:(i+1)*width], b[p*width:(p+1)*width])
	}
	DenseLowerTriangularSolveArr(f.lu, buf, b, width, true)
	DenseUpperTriangularSolveArr(f.lu, b, buf, width)
	copy(b, buf)
}

func absF(v F) F {
	if v < 0 {
		return -v
	}
	return v
}

func isFiniteF(v F) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
