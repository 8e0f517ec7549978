package linmath

import "errors"

var (
	// ErrSingular is returned when a matrix with a zero determinant is inverted.
	ErrSingular = errors.New("linmath: singular matrix")

	// ErrEmpty is returned when averaging an empty set of matrices.
	ErrEmpty = errors.New("linmath: no matrices to average")

	// ErrWeightCount is returned when the number of weights differs from the
	// number of matrices.
	ErrWeightCount = errors.New("linmath: weight count does not match matrix count")
)
