package splu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentityPattern(t *testing.T) {
	p := Identity(4)
	require.Equal(t, 4, p.MajorDim())
	require.Equal(t, 4, p.MinorDim())
	require.Equal(t, 4, p.Nnz())
	for i := 0; i < 4; i++ {
		require.Equal(t, []int{i}, p.Lane(i))
	}
}

func TestLanePanicsOutOfRange(t *testing.T) {
	p := Identity(3)
	require.PanicsWithValue(t, ErrIndexRange, func() { p.Lane(3) })
	require.PanicsWithValue(t, ErrIndexRange, func() { p.Lane(-1) })
}

func TestEntriesVisitsEveryStoredPair(t *testing.T) {
	// column 0: rows {0}; column 1: rows {}; column 2: rows {0, 2}
	p := NewSparsityPattern([]int{0, 1, 1, 3}, []int{0, 0, 2}, 3)

	var got [][2]int
	p.Entries(func(maj, min int) { got = append(got, [2]int{maj, min}) })

	require.Equal(t, [][2]int{{0, 0}, {2, 0}, {2, 2}}, got)
}

// buildLowerPattern builds the column pattern of a lower triangular matrix
// whose strictly-below-diagonal structure is given by edges (col, row)
// with row > col; the diagonal is implicit in every column.
func buildLowerPattern(t *testing.T, n int, edges [][2]int) *SparsityPattern {
	t.Helper()
	b := NewSparsityPatternBuilder(n, n)
	seen := map[[2]int]bool{}
	for i := 0; i < n; i++ {
		seen[[2]int{i, i}] = true
	}
	for _, e := range edges {
		seen[[2]int{e[0], e[1]}] = true
	}
	for col := 0; col < n; col++ {
		var rows []int
		for k := range seen {
			if k[0] == col {
				rows = append(rows, k[1])
			}
		}
		for i := 0; i < len(rows); i++ {
			for j := i + 1; j < len(rows); j++ {
				if rows[j] < rows[i] {
					rows[i], rows[j] = rows[j], rows[i]
				}
			}
		}
		for _, row := range rows {
			require.NoError(t, b.Insert(col, row))
		}
	}
	p := b.Build()
	return &p
}

func TestSparseLowerTriangularSolveReachability(t *testing.T) {
	// Column 0 -> {0,2}, column 1 -> {1}, column 2 -> {2,3}, column 3 -> {3}.
	// b is nonzero only at row 0: reachable set is {0, 2, 3}.
	p := buildLowerPattern(t, 4, [][2]int{{0, 2}, {2, 3}})

	var out []int
	p.SparseLowerTriangularSolve([]int{0}, &out)

	require.ElementsMatch(t, []int{0, 2, 3}, out)
	// Parent before child in the DFS order.
	require.Less(t, indexOf(out, 0), indexOf(out, 2))
	require.Less(t, indexOf(out, 2), indexOf(out, 3))
}

func TestReachLowerBoolMatchesRecursiveReach(t *testing.T) {
	p := buildLowerPattern(t, 5, [][2]int{{0, 1}, {1, 3}, {2, 3}, {3, 4}})

	var recursive []int
	p.SparseLowerTriangularSolve([]int{0, 2}, &recursive)

	contains := make([]bool, 5)
	var stack []int
	p.reachLowerBool([]int{0, 2}, contains, &stack)

	var iterative []int
	for i, has := range contains {
		if has {
			iterative = append(iterative, i)
		}
	}

	require.ElementsMatch(t, recursive, iterative)
}

func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
