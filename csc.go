package splu

import "sort"

// Csc is a column-oriented facade over CsMatrix: for Csc, "major" means
// column and "minor" means row.
type Csc struct {
	mat CsMatrix
}

// NewCsc wraps an already-built CsMatrix as a Csc.
func NewCsc(m CsMatrix) *Csc {
	return &Csc{mat: m}
}

// IdentityCsc returns the n x n identity matrix.
func IdentityCsc(n int) *Csc {
	return &Csc{mat: IdentityMatrix(n)}
}

// NRows returns the number of rows.
func (c *Csc) NRows() int {
	return c.mat.pattern.MinorDim()
}

// NCols returns the number of columns.
func (c *Csc) NCols() int {
	return c.mat.pattern.MajorDim()
}

// Nnz returns the number of stored entries.
func (c *Csc) Nnz() int {
	return c.mat.pattern.Nnz()
}

// Pattern returns the matrix's sparsity pattern.
func (c *Csc) Pattern() *SparsityPattern {
	return c.mat.Pattern()
}

// Values returns the backing value slice in column-major storage order.
func (c *Csc) Values() []F {
	return c.mat.Values()
}

// ValuesMut returns a mutable view of the backing value slice.
func (c *Csc) ValuesMut() []F {
	return c.mat.ValuesMut()
}

// Col returns the stored values and row indices of column i.
func (c *Csc) Col(i int) ([]F, []int) {
	return c.mat.Lane(i)
}

// ColIter calls fn for every (row, value) pair stored in column i, in
// ascending row order.
func (c *Csc) ColIter(i int, fn func(row int, v F)) {
	c.mat.LaneIter(i, fn)
}

// SwapRows swaps rows a and b in place, rewriting the stored row indices
// and re-sorting each affected column lane.
func (c *Csc) SwapRows(a, b int) {
	c.mat.SwapMinor(a, b)
}

// clone returns a deep copy of the receiver, used by the left-looking LU
// driver to keep a mutable working copy of A that row swaps can be
// applied to without disturbing the caller's matrix.
func (c *Csc) clone() *Csc {
	majorOffsets := make([]int, len(c.mat.pattern.majorOffsets))
	copy(majorOffsets, c.mat.pattern.majorOffsets)
	minorIndices := make([]int, len(c.mat.pattern.minorIndices))
	copy(minorIndices, c.mat.pattern.minorIndices)
	values := make([]F, len(c.mat.values))
	copy(values, c.mat.values)

	return &Csc{mat: CsMatrix{
		pattern: SparsityPattern{
			majorOffsets: majorOffsets,
			minorIndices: minorIndices,
			minorDim:     c.mat.pattern.minorDim,
		},
		values: values,
	}}
}

// MulVec computes dst = A * x for dense x, overwriting dst. MulVec panics
// if len(x) != NCols() or len(dst) != NRows().
func (c *Csc) MulVec(x []F, dst []F) {
	if len(x) != c.NCols() || len(dst) != c.NRows() {
		panic(ErrShape)
	}
	for i := range dst {
		dst[i] = 0
	}
	for j := 0; j < c.NCols(); j++ {
		xj := x[j]
		c.ColIter(j, func(row int, v F) {
			dst[row] += v * xj
		})
	}
}

// sortTripletsColMajor sorts a slice of (row, col) index pairs and a parallel
// value slice into ascending (col, row) order: CSC storage is column
// major, so ingestion must feed the builder columns in order even though
// callers naturally supply triplets keyed by (row, col).
func sortTripletsColMajor(rows, cols []int, data []F) {
	n := len(data)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool {
		a, b := idx[i], idx[j]
		if cols[a] != cols[b] {
			return cols[a] < cols[b]
		}
		return rows[a] < rows[b]
	})

	newRows := make([]int, n)
	newCols := make([]int, n)
	newData := make([]F, n)
	for i, k := range idx {
		newRows[i] = rows[k]
		newCols[i] = cols[k]
		newData[i] = data[k]
	}
	copy(rows, newRows)
	copy(cols, newCols)
	copy(data, newData)
}

// FromTriplets builds a Csc of size nrows x ncols from (row, col, value)
// triples. The triples slice is sorted in place into column-major
// order before being fed to the ordered-insertion builder. Duplicate
// (row, col) entries are not deduplicated here and will surface as a
// *BuilderError (MinorTooLow) from the underlying builder.
func FromTriplets(nrows, ncols int, rows, cols []int, data []F) (*Csc, error) {
	if len(rows) != len(cols) || len(rows) != len(data) {
		panic(ErrShape)
	}
	sortTripletsColMajor(rows, cols, data)

	b := NewCscBuilder(nrows, ncols)
	for i := range data {
		if err := b.Insert(rows[i], cols[i], data[i]); err != nil {
			return nil, err
		}
	}
	m := b.Build()
	return &m, nil
}

// FromBTreeMap builds a Csc from an already (col, row)-ordered mapping,
// such as would be produced by iterating a Go map keyed by [2]int in
// sorted key order. keys must be sorted ascending by (col, row).
func FromBTreeMap(nrows, ncols int, keys [][2]int, values []F) (*Csc, error) {
	if len(keys) != len(values) {
		panic(ErrShape)
	}
	b := NewCscBuilder(nrows, ncols)
	for i, k := range keys {
		col, row := k[0], k[1]
		if err := b.Insert(row, col, values[i]); err != nil {
			return nil, err
		}
	}
	m := b.Build()
	return &m, nil
}

// DenseLowerTriangularSolve solves L*x = b where L is the lower
// triangular part of the receiver (rows < the column index are ignored,
// and the row == column entry is treated as the diagonal unless
// unitDiagonal is true, in which case it is assumed to be 1 and any
// stored diagonal entry is ignored). b and out must each have length
// NRows() == NCols(); out may alias b.
func (c *Csc) DenseLowerTriangularSolve(b []F, out []F, unitDiagonal bool) {
	if c.NRows() != c.NCols() || len(b) != c.NCols() || len(out) != len(b) {
		panic(ErrShape)
	}
	copy(out, b)
	n := len(b)

	for i := 0; i < n; i++ {
		if !unitDiagonal {
			vals, rows := c.Col(i)
			for k, row := range rows {
				if row == i {
					out[i] /= vals[k]
					break
				}
				if row > i {
					break
				}
			}
		}
		mul := out[i]
		vals, rows := c.Col(i)
		for k, row := range rows {
			if row > i {
				out[row] -= vals[k] * mul
			}
		}
	}
}

// DenseUpperTriangularSolve solves U*x = b where U is the upper
// triangular part of the receiver (rows > the column index are ignored,
// row == column is the diagonal). b and out must each have length
// NRows() == NCols(); out may alias b.
func (c *Csc) DenseUpperTriangularSolve(b []F, out []F) {
	if c.NRows() != c.NCols() || len(b) != c.NCols() || len(out) != len(b) {
		panic(ErrShape)
	}
	copy(out, b)
	n := len(b)

	for i := n - 1; i >= 0; i-- {
		vals, rows := c.Col(i)
		diagIdx := -1
		for k, row := range rows {
			if row == i {
				diagIdx = k
				break
			}
			if row > i {
				break
			}
		}
		if diagIdx >= 0 {
			out[i] /= vals[diagIdx]
		}
		mul := out[i]
		for k, row := range rows {
			if row < i {
				out[row] -= vals[k] * mul
			}
		}
	}
}

// DenseLowerTriangularSolveArr is the batched counterpart of
// DenseLowerTriangularSolve: b and out hold n rows of width columns each,
// row i occupying b[i*width:(i+1)*width], letting a single sparse
// triangular sweep solve width right-hand sides at once. Go has no
// const-generic array length, so this is the natural rendering of the
// original's fixed-width-array batching: a flat row-major buffer with an
// explicit stride.
func DenseLowerTriangularSolveArr(c *Csc, b []F, out []F, width int, unitDiagonal bool) {
	if c.NRows() != c.NCols() || width <= 0 || len(b) != c.NCols()*width || len(out) != len(b) {
		panic(ErrShape)
	}
	copy(out, b)
	n := c.NCols()

	for i := 0; i < n; i++ {
		row := out[i*width : (i+1)*width]
		if !unitDiagonal {
			vals, rows := c.Col(i)
			for k, r := range rows {
				if r == i {
					for w := range row {
						row[w] /= vals[k]
					}
					break
				}
				if r > i {
					break
				}
			}
		}
		vals, rows := c.Col(i)
		for k, r := range rows {
			if r > i {
				target := out[r*width : (r+1)*width]
				v := vals[k]
				for w := range row {
					target[w] -= v * row[w]
				}
			}
		}
	}
}

// SparseLowerTriangularSolveSorted solves L*x = b where both the matrix
// and the right-hand side are sparse. bIdxs/bVals give the nonzero rows
// and values of b; outPat must be sorted ascending and must be a
// superset of the reachability set of bIdxs in the receiver's pattern
// (typically SparsityPattern.SparseLowerTriangularSolve followed by a
// sort). out is zeroed and then filled in the order outPat specifies,
// walking outPat and each column's stored entries jointly; any outPat
// position not present in bIdxs simply starts at zero, and any bIdxs
// entry absent from outPat is silently skipped (outPat is the caller's
// contract to supply a superset).
func (c *Csc) SparseLowerTriangularSolveSorted(bIdxs []int, bVals []F, outPat []int, out []F, assumeUnit bool) {
	if c.NRows() != c.NCols() || len(bIdxs) != len(bVals) || len(outPat) != len(out) {
		panic(ErrShape)
	}
	for i := range out {
		out[i] = 0
	}
	for k, bi := range bIdxs {
		pos := sort.SearchInts(outPat, bi)
		if pos < len(outPat) && outPat[pos] == bi {
			out[pos] = bVals[k]
		}
	}

	for i, row := range outPat {
		vals, rows := c.Col(row)
		k := 0
		if !assumeUnit {
			for k < len(rows) && rows[k] < row {
				k++
			}
			if k < len(rows) && rows[k] == row {
				out[i] /= vals[k]
				k++
			}
		}
		mul := out[i]
		for j := i + 1; j < len(outPat); j++ {
			nrow := outPat[j]
			for k < len(rows) && rows[k] < nrow {
				k++
			}
			if k < len(rows) && rows[k] == nrow {
				out[j] -= vals[k] * mul
			}
		}
	}
}

// DenseUpperTriangularSolveArr is the batched counterpart of
// DenseUpperTriangularSolve; see DenseLowerTriangularSolveArr for the
// row-major layout convention.
func DenseUpperTriangularSolveArr(c *Csc, b []F, out []F, width int) {
	if c.NRows() != c.NCols() || width <= 0 || len(b) != c.NCols()*width || len(out) != len(b) {
		panic(ErrShape)
	}
	copy(out, b)
	n := c.NCols()

	for i := n - 1; i >= 0; i-- {
		row := out[i*width : (i+1)*width]
		vals, rows := c.Col(i)
		diagIdx := -1
		for k, r := range rows {
			if r == i {
				diagIdx = k
				break
			}
			if r > i {
				break
			}
		}
		if diagIdx >= 0 {
			v := vals[diagIdx]
			for w := range row {
				row[w] /= v
			}
		}
		for k, r := range rows {
			if r < i {
				target := out[r*width : (r+1)*width]
				v := vals[k]
				for w := range row {
					target[w] -= v * row[w]
				}
			}
		}
	}
}
