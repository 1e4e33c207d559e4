package splu

// CsMatrix pairs a SparsityPattern with a parallel slice of values:
// values[k] is the numeric entry at (minorIndices[k], major-of-k). Every
// mutation that touches the pattern must keep values aligned with it.
type CsMatrix struct {
	pattern SparsityPattern
	values  []F
}

// Pattern returns the matrix's sparsity pattern.
func (m *CsMatrix) Pattern() *SparsityPattern {
	return &m.pattern
}

// Values returns the backing value slice in storage order.
func (m *CsMatrix) Values() []F {
	return m.values
}

// ValuesMut returns a mutable view of the backing value slice, allowing a
// caller to overwrite stored entries in place without altering the
// sparsity pattern.
func (m *CsMatrix) ValuesMut() []F {
	return m.values
}

// Lane returns the values and minor indices stored in major lane i.
func (m *CsMatrix) Lane(i int) ([]F, []int) {
	s := m.pattern.majorOffsets[i]
	e := m.pattern.majorOffsets[i+1]
	return m.values[s:e], m.pattern.minorIndices[s:e]
}

// LaneIter calls fn for every (minor, value) pair in lane i, in storage
// order.
func (m *CsMatrix) LaneIter(i int, fn func(minor int, v F)) {
	s := m.pattern.majorOffsets[i]
	e := m.pattern.majorOffsets[i+1]
	for k := s; k < e; k++ {
		fn(m.pattern.minorIndices[k], m.values[k])
	}
}

// IdentityMatrix returns the n x n identity matrix in CsMatrix form.
func IdentityMatrix(n int) CsMatrix {
	values := make([]F, n)
	for i := range values {
		values[i] = 1
	}
	return CsMatrix{pattern: *Identity(n), values: values}
}

// SwapMinor rewrites the minor-index array, swapping every occurrence of
// a with b, then restores per-lane sorted order with one forward and one
// reverse adjacent-swap pass per lane. This is sufficient because only
// the relabelled entries can be out of place: a lane holding one of a or
// b has that entry displaced in one direction, and a lane holding both
// has the larger label at the front of the span between them and the
// smaller at its back; the forward pass carries the larger one right and
// the reverse pass carries the smaller one left.
func (m *CsMatrix) SwapMinor(a, b int) {
	ind := m.pattern.minorIndices
	for k, v := range ind {
		switch v {
		case a:
			ind[k] = b
		case b:
			ind[k] = a
		}
	}

	for lane := 0; lane < m.pattern.MajorDim(); lane++ {
		s, e := m.pattern.majorOffsets[lane], m.pattern.majorOffsets[lane+1]
		bubbleSortLane(ind[s:e], m.values[s:e])
	}
}

// bubbleSortLane performs one forward and one reverse adjacent-swap pass
// over ind (keeping values aligned), sufficient to restore sortedness
// after SwapMinor's relabelling (see SwapMinor).
func bubbleSortLane(ind []int, values []F) {
	for k := 1; k < len(ind); k++ {
		if ind[k-1] > ind[k] {
			ind[k-1], ind[k] = ind[k], ind[k-1]
			values[k-1], values[k] = values[k], values[k-1]
		}
	}
	for k := len(ind) - 1; k > 0; k-- {
		if ind[k-1] > ind[k] {
			ind[k-1], ind[k] = ind[k], ind[k-1]
			values[k-1], values[k] = values[k], values[k-1]
		}
	}
}

// CsBuilder parallels SparsityPatternBuilder with a values slice whose
// length always equals the pattern's current Nnz.
type CsBuilder struct {
	sparsity *SparsityPatternBuilder
	values   []F
}

// NewCsBuilder constructs an empty CsBuilder of the given size.
func NewCsBuilder(majorDim, minorDim int) *CsBuilder {
	return &CsBuilder{
		sparsity: NewSparsityPatternBuilder(majorDim, minorDim),
	}
}

// csBuilderFromMat converts an existing CsMatrix into a builder so it can
// be appended to further (after an explicit revert).
func csBuilderFromMat(m CsMatrix) *CsBuilder {
	return &CsBuilder{
		sparsity: fromPattern(m.pattern),
		values:   m.values,
	}
}

// RevertToMajor backtracks the builder to major maj, discarding all
// entries ahead of it.
func (b *CsBuilder) RevertToMajor(maj int) bool {
	if !b.sparsity.RevertToMajor(maj) {
		return false
	}
	b.values = b.values[:b.sparsity.NumEntries()]
	return true
}

// Insert records a nonzero at (maj, min) with value val.
func (b *CsBuilder) Insert(maj, min int, val F) error {
	if err := b.sparsity.Insert(maj, min); err != nil {
		return err
	}
	b.values = append(b.values, val)
	return nil
}

// Build consumes the builder and returns the finished CsMatrix.
func (b *CsBuilder) Build() CsMatrix {
	return CsMatrix{pattern: b.sparsity.Build(), values: b.values}
}
