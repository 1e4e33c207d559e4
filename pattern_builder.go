package splu

// SparsityPatternBuilder constructs a SparsityPattern from a sequence of
// (major, minor) insertions that must arrive in ascending order: each
// insertion's major must be >= the current major, and when the major is
// unchanged the minor must be strictly greater than the last minor
// accepted in that major.
type SparsityPatternBuilder struct {
	buf      SparsityPattern
	majorDim int
}

// NewSparsityPatternBuilder constructs an empty builder targeting the
// given major/minor dimensions.
func NewSparsityPatternBuilder(majorDim, minorDim int) *SparsityPatternBuilder {
	return &SparsityPatternBuilder{
		buf: SparsityPattern{
			majorOffsets: []int{0},
			minorIndices: nil,
			minorDim:     minorDim,
		},
		majorDim: majorDim,
	}
}

// fromPattern allows rebuilding part of an already-complete pattern,
// treating it as a builder with every lane closed (its current major is
// MajorDim), so appending is possible only after RevertToMajor. Used to
// let the left-looking LU driver snapshot a builder into a queryable
// pattern and then resume appending after reverting.
func fromPattern(p SparsityPattern) *SparsityPatternBuilder {
	return &SparsityPatternBuilder{
		buf:      p,
		majorDim: p.MajorDim(),
	}
}

// NumEntries returns the number of minor indices inserted so far.
func (b *SparsityPatternBuilder) NumEntries() int {
	return len(b.buf.minorIndices)
}

// CurrentMajor returns the major lane currently being populated.
func (b *SparsityPatternBuilder) CurrentMajor() int {
	return len(b.buf.majorOffsets) - 1
}

// Insert records a nonzero at (maj, min). maj and min must each be within
// range (an out-of-range value is a programmer fault and panics); a
// maj/min pair that violates the required ascending order is reported as
// a *BuilderError instead, since out-of-order triplet ingestion is a
// recoverable condition a caller may want to inspect.
func (b *SparsityPatternBuilder) Insert(maj, min int) error {
	if uint(maj) >= uint(b.majorDim) {
		panic(ErrIndexRange)
	}
	if uint(min) >= uint(b.buf.minorDim) {
		panic(ErrIndexRange)
	}

	currMajor := b.buf.MajorDim()

	if maj < currMajor {
		return errMajorTooLow(currMajor)
	}
	if maj == currMajor && len(b.buf.minorIndices) > 0 &&
		b.buf.majorOffsets[len(b.buf.majorOffsets)-1] < len(b.buf.minorIndices) &&
		min <= b.buf.minorIndices[len(b.buf.minorIndices)-1] {
		return errMinorTooLow(min, b.buf.minorIndices[len(b.buf.minorIndices)-1])
	}

	for m := currMajor; m < maj; m++ {
		b.buf.majorOffsets = append(b.buf.majorOffsets, len(b.buf.minorIndices))
	}
	b.buf.minorIndices = append(b.buf.minorIndices, min)
	return nil
}

// InsertSum behaves like Insert, except that if (maj, min) duplicates the
// immediately preceding entry it reports the merge by returning merged ==
// true instead of inserting a new entry, so the caller can accumulate the
// value into the existing one. FromTriplets does not use it: it calls
// Insert, so duplicate triplets are rejected rather than summed.
func (b *SparsityPatternBuilder) InsertSum(maj, min int) (merged bool, err error) {
	n := len(b.buf.minorIndices)
	if maj == b.buf.MajorDim() && n > 0 &&
		b.buf.majorOffsets[len(b.buf.majorOffsets)-1] < n &&
		b.buf.minorIndices[n-1] == min {
		return true, nil
	}
	if err := b.Insert(maj, min); err != nil {
		return false, err
	}
	return false, nil
}

// Build closes any remaining majors up to the declared major dimension
// and returns the finished pattern.
func (b *SparsityPatternBuilder) Build() SparsityPattern {
	for len(b.buf.majorOffsets) <= b.majorDim {
		b.buf.majorOffsets = append(b.buf.majorOffsets, len(b.buf.minorIndices))
	}
	return b.buf
}

// RevertToMajor truncates the pattern to retain the first maj+1 offsets
// and only the minors belonging to major maj; any open higher major is
// discarded. It reports false (and does nothing) if maj is out of range
// for what has been built so far.
func (b *SparsityPatternBuilder) RevertToMajor(maj int) bool {
	if maj+1 >= len(b.buf.majorOffsets) {
		return false
	}
	last := b.buf.majorOffsets[maj+1]
	b.buf.majorOffsets = b.buf.majorOffsets[:maj+1]
	b.buf.minorIndices = b.buf.minorIndices[:last]
	return true
}
