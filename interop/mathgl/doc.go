// Package mathgl converts between linmath values and the go-gl/mathgl mgl32
// types. Both libraries store matrices column-major, so conversions are
// plain copies.
package mathgl
