package splu

import "gonum.org/v1/gonum/mat"

// Dims, At, and T let Csc participate in gonum's mat.Matrix interface, so
// a factored or unfactored Csc can be passed to any gonum routine
// expecting a mat.Matrix.
var _ mat.Matrix = (*Csc)(nil)

// Dims returns the number of rows and columns.
func (c *Csc) Dims() (r, ccols int) {
	return c.NRows(), c.NCols()
}

// At returns the element at row i, column j. At will panic if i or j
// falls outside the dimensions of the matrix.
func (c *Csc) At(i, j int) float64 {
	if uint(i) >= uint(c.NRows()) || uint(j) >= uint(c.NCols()) {
		panic(ErrIndexRange)
	}
	var result float64
	vals, rows := c.Col(j)
	for k, row := range rows {
		if row == i {
			result = float64(vals[k])
			break
		}
		if row > i {
			break
		}
	}
	return result
}

// T returns the transpose of the matrix as a mat.Transpose view of a dense
// copy, since Csc has no cheap transposed representation of its own.
func (c *Csc) T() mat.Matrix {
	r, cc := c.Dims()
	d := mat.NewDense(r, cc, nil)
	for j := 0; j < cc; j++ {
		c.ColIter(j, func(row int, v F) {
			d.Set(row, j, float64(v))
		})
	}
	return d.T()
}
