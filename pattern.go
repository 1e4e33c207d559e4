package splu

// SparsityPattern is an immutable compressed sparse column (CSC) index
// structure: per-column offsets into a flat row-index array, plus the
// row indices themselves. Within each column's lane the row indices are
// strictly ascending and duplicate-free.
//
// Treating the pattern as the adjacency of a directed graph (vertices are
// columns 0..MajorDim, edge j -> i iff i is in Lane(j) and i >= j) gives
// the reachability queries the left-looking LU driver depends on.
type SparsityPattern struct {
	majorOffsets []int
	minorIndices []int
	minorDim     int
}

// NewSparsityPattern wraps already-complete offset/index slices. Callers
// that need to construct a pattern incrementally should use
// SparsityPatternBuilder instead.
func NewSparsityPattern(majorOffsets, minorIndices []int, minorDim int) *SparsityPattern {
	return &SparsityPattern{
		majorOffsets: majorOffsets,
		minorIndices: minorIndices,
		minorDim:     minorDim,
	}
}

// MajorDim returns the number of lanes (columns, for CSC) in the pattern.
func (p *SparsityPattern) MajorDim() int {
	return len(p.majorOffsets) - 1
}

// MinorDim returns the number of rows (for CSC).
func (p *SparsityPattern) MinorDim() int {
	return p.minorDim
}

// Nnz returns the number of stored entries.
func (p *SparsityPattern) Nnz() int {
	return len(p.minorIndices)
}

// Lane returns the sorted slice of minor indices stored in major lane i.
// Lane panics if i is out of range.
func (p *SparsityPattern) Lane(i int) []int {
	if uint(i) >= uint(p.MajorDim()) {
		panic(ErrIndexRange)
	}
	return p.minorIndices[p.majorOffsets[i]:p.majorOffsets[i+1]]
}

// Entries calls fn for every (major, minor) pair in storage order.
func (p *SparsityPattern) Entries(fn func(major, minor int)) {
	for i := 0; i < p.MajorDim(); i++ {
		for _, m := range p.Lane(i) {
			fn(i, m)
		}
	}
}

// Identity returns the sparsity pattern of the n x n identity matrix: n
// lanes, each containing the single minor index equal to its own major
// index.
func Identity(n int) *SparsityPattern {
	majorOffsets := make([]int, n+1)
	minorIndices := make([]int, n)
	for i := 0; i < n; i++ {
		majorOffsets[i] = i
		minorIndices[i] = i
	}
	majorOffsets[n] = n
	return &SparsityPattern{
		majorOffsets: majorOffsets,
		minorIndices: minorIndices,
		minorDim:     n,
	}
}

// SparseLowerTriangularSolve computes the symbolic sparsity pattern of x
// in L·x = b, where L's nonzero pattern is given by the receiver (treated
// as lower triangular, even if it holds entries above the diagonal) and
// bIdxs holds the nonzero major indices of b. out is cleared and then
// filled with the result in a valid topological order (parents before children) via
// depth-first traversal; it is not sorted by index. Every entry of bIdxs
// must be < MajorDim.
func (p *SparsityPattern) SparseLowerTriangularSolve(bIdxs []int, out *[]int) {
	*out = (*out)[:0]
	visited := make(map[int]bool, len(bIdxs))

	var reach func(j int)
	reach = func(j int) {
		if visited[j] {
			return
		}
		visited[j] = true
		*out = append(*out, j)
		for _, i := range p.Lane(j) {
			if i < j {
				continue
			}
			reach(i)
		}
	}

	for _, i := range bIdxs {
		reach(i)
	}
}

// SparseUpperTriangularSolve is the symmetric operation to
// SparseLowerTriangularSolve: the receiver is treated as upper triangular
// and traversal visits minor indices strictly less than the current
// lane's major, iterated in reverse.
func (p *SparsityPattern) SparseUpperTriangularSolve(bIdxs []int, out *[]int) {
	*out = (*out)[:0]
	visited := make(map[int]bool, len(bIdxs))

	var reach func(j int)
	reach = func(j int) {
		if visited[j] {
			return
		}
		visited[j] = true
		*out = append(*out, j)
		lane := p.Lane(j)
		for k := len(lane) - 1; k >= 0; k-- {
			i := lane[k]
			if i > j {
				continue
			}
			reach(i)
		}
	}

	for _, i := range bIdxs {
		reach(i)
	}
}

// reachLowerBool is the production iterative reachability search used by
// the left-looking LU driver: it marks membership in a pre-sized boolean
// array using an explicit stack, avoiding both recursion depth limits and
// the per-call visited map the recursive variant allocates. contains must be sized MajorDim and is reset to
// false on every call; stack is scratch space reused across calls.
func (p *SparsityPattern) reachLowerBool(bIdxs []int, contains []bool, stack *[]int) {
	for i := range contains {
		contains[i] = false
	}
	*stack = (*stack)[:0]

	for _, start := range bIdxs {
		*stack = append(*stack, start)
		for len(*stack) > 0 {
			j := (*stack)[len(*stack)-1]
			*stack = (*stack)[:len(*stack)-1]

			if contains[j] {
				continue
			}
			contains[j] = true

			for _, i := range p.Lane(j) {
				if i < j {
					continue
				}
				*stack = append(*stack, i)
			}
		}
	}
}

// reachUpperBool is the upper-triangular counterpart of reachLowerBool.
func (p *SparsityPattern) reachUpperBool(bIdxs []int, contains []bool, stack *[]int) {
	for i := range contains {
		contains[i] = false
	}
	*stack = (*stack)[:0]

	for _, start := range bIdxs {
		*stack = append(*stack, start)
		for len(*stack) > 0 {
			j := (*stack)[len(*stack)-1]
			*stack = (*stack)[:len(*stack)-1]

			if contains[j] {
				continue
			}
			contains[j] = true

			for _, i := range p.Lane(j) {
				if i > j {
					continue
				}
				*stack = append(*stack, i)
			}
		}
	}
}
