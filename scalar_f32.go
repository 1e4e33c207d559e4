//go:build f32

package splu

// F is the scalar floating-point type used throughout the package. This
// build carries the f32 tag and so uses single precision.
type F = float32
