package splu

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

// approxEqualSlice asserts a and b agree within tol, element-wise, for any
// real floating-point scalar type -- generic over constraints.Float so the
// same helper serves both the f64 and f32 build-tagged variants of F.
func approxEqualSlice[T constraints.Float](t *testing.T, want, got []T, tol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDelta(t, float64(want[i]), float64(got[i]), tol)
	}
}
