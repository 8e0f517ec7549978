// Package fastmath provides fast single-precision approximations and numeric
// helpers for real-time graphics and game code.
//
// These approximations trade a small, bounded amount of accuracy for speed.
// For applications requiring IEEE 754 precision, use the standard library
// math package or github.com/chewxy/math32 instead.
//
// # Accuracy Characteristics
//
// Sin/Cos: lookup in a 2^14-entry table sampled at bucket centres; error is
// at most about one bucket width (2π/2^14 ≈ 3.8e-4) and half that for
// non-negative angles away from the exact 0°/180° slots.
//
// Atan2: lookup in a 128x128 grid after folding into the first quadrant;
// absolute error below 0.01 rad.
//
// Floor/Ceil/Round: exact inside [-16384, MaxFloat32-16384] as long as the
// result fits in an int; unspecified outside that range.
//
// # Initialisation
//
// The tables are built once, on first use, behind a [sync.Once]. The build
// happens-before every read, so all functions are safe for concurrent use.
//
// # Build Tags
//
// Building with -tags fastmath replaces [Sqrt] with a fast approximation
// (<0.01% relative error).
package fastmath
