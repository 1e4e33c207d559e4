package splu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilderRejectsMajorRegression(t *testing.T) {
	b := NewSparsityPatternBuilder(3, 3)
	require.NoError(t, b.Insert(1, 0))

	err := b.Insert(0, 0)
	require.Error(t, err)
	var be *BuilderError
	require.ErrorAs(t, err, &be)
	require.Equal(t, MajorTooLow, be.Kind)
}

func TestBuilderRejectsMinorRegression(t *testing.T) {
	b := NewSparsityPatternBuilder(2, 5)
	require.NoError(t, b.Insert(0, 2))

	err := b.Insert(0, 2)
	require.Error(t, err)
	var be *BuilderError
	require.ErrorAs(t, err, &be)
	require.Equal(t, MinorTooLow, be.Kind)

	err = b.Insert(0, 1)
	require.Error(t, err)
	require.ErrorAs(t, err, &be)
	require.Equal(t, MinorTooLow, be.Kind)
}

func TestBuilderInsertPanicsOutOfRange(t *testing.T) {
	b := NewSparsityPatternBuilder(2, 2)
	require.Panics(t, func() { _ = b.Insert(5, 0) })
	require.Panics(t, func() { _ = b.Insert(0, 5) })
}

func TestBuilderSkipsEmptyMajors(t *testing.T) {
	b := NewSparsityPatternBuilder(4, 4)
	require.NoError(t, b.Insert(0, 0))
	require.NoError(t, b.Insert(3, 1))
	p := b.Build()

	require.Equal(t, 4, p.MajorDim())
	require.Equal(t, []int{0}, p.Lane(0))
	require.Empty(t, p.Lane(1))
	require.Empty(t, p.Lane(2))
	require.Equal(t, []int{1}, p.Lane(3))
}

func TestInsertSumMergesDuplicateOfLastEntry(t *testing.T) {
	b := NewSparsityPatternBuilder(2, 3)
	merged, err := b.InsertSum(0, 1)
	require.NoError(t, err)
	require.False(t, merged)

	merged, err = b.InsertSum(0, 1)
	require.NoError(t, err)
	require.True(t, merged)
	require.Equal(t, 1, b.NumEntries())

	merged, err = b.InsertSum(0, 2)
	require.NoError(t, err)
	require.False(t, merged)
	require.Equal(t, 2, b.NumEntries())
}

func TestRevertToMajorTruncatesClosedMajor(t *testing.T) {
	b := NewSparsityPatternBuilder(3, 3)
	require.NoError(t, b.Insert(0, 0))
	require.NoError(t, b.Insert(1, 0))
	require.NoError(t, b.Insert(1, 2))
	require.NoError(t, b.Insert(2, 1))
	p := b.Build()

	resumed := fromPattern(p)
	ok := resumed.RevertToMajor(1)
	require.True(t, ok)
	require.Equal(t, 3, resumed.NumEntries())

	// Major 1 is reopened with its entries {0, 2} retained; only major 2's
	// entry was discarded. Inserting minor 0 again is rejected, since it
	// is not greater than the retained last minor 2.
	require.Error(t, resumed.Insert(1, 0))
	rebuilt := resumed.Build()
	require.Equal(t, []int{0}, rebuilt.Lane(0))
	require.ElementsMatch(t, []int{0, 2}, rebuilt.Lane(1))
	require.Empty(t, rebuilt.Lane(2))
}

func TestRevertToMajorRejectsStillOpenMajor(t *testing.T) {
	// Major 1 has not been closed by a later insertion or Build, so there
	// is no recorded offset to truncate against.
	b := NewSparsityPatternBuilder(3, 3)
	require.NoError(t, b.Insert(0, 0))
	require.NoError(t, b.Insert(1, 0))
	require.False(t, b.RevertToMajor(1))
}

func TestFromPatternResumesAppending(t *testing.T) {
	b := NewSparsityPatternBuilder(3, 3)
	require.NoError(t, b.Insert(0, 0))
	require.NoError(t, b.Insert(1, 1))
	require.NoError(t, b.Insert(2, 2))
	p := b.Build()

	resumed := fromPattern(p)
	require.True(t, resumed.RevertToMajor(1))
	// Major 1's original entry (minor 1) is retained; Insert(1, 2) appends
	// a second entry to the still-open major 1.
	require.NoError(t, resumed.Insert(1, 2))
	rebuilt := resumed.Build()

	require.Equal(t, []int{0}, rebuilt.Lane(0))
	require.Equal(t, []int{1, 2}, rebuilt.Lane(1))
	require.Empty(t, rebuilt.Lane(2))
}
