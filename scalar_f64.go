//go:build !f32

package splu

// F is the scalar floating-point type used throughout the package. Build
// with the f32 tag to switch the whole module to single precision.
type F = float64
