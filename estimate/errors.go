package estimate

import "github.com/pkg/errors"

var (
	// ErrInvalidMaterialSelection is returned when a window material has no rate.
	ErrInvalidMaterialSelection = errors.New("invalid material selection")

	// ErrNonFiniteInput is returned when a room dimension is NaN or infinite.
	ErrNonFiniteInput = errors.New("non-finite input")

	// ErrQuantityOutOfRange is returned when a brick or tile count is too
	// large to be counted exactly.
	ErrQuantityOutOfRange = errors.New("quantity out of range")
)

// ErrorCode maps estimator errors to the stable codes used in API responses.
// It returns an empty string for errors that did not come from this package.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidMaterialSelection):
		return "invalid_material_selection"
	case errors.Is(err, ErrNonFiniteInput):
		return "non_finite_input"
	case errors.Is(err, ErrQuantityOutOfRange):
		return "quantity_out_of_range"
	}
	return ""
}
