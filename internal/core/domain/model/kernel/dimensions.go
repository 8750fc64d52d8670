package kernel

import (
	"errors"
	"fmt"

	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// DimensionMax is the largest accepted value for any single measurement.
const DimensionMax = 100000.0

var ErrDimensionsAreNotConstructed = errs.NewValueIsRequiredError(
	"dimensions must be created via NewDimensions")

// Dimensions holds the physical measurements of a package: width and length in
// centimetres and weight in kilograms. All three must be positive.
type Dimensions struct { //nolint:recvcheck //using for validation
	width  float64
	length float64
	weight float64
	guard  guard.ConstructorGuard
}

// NewDimensions validates every measurement and reports all failures at once.
func NewDimensions(width, length, weight float64) (Dimensions, error) {
	d := Dimensions{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		d.set("size_width", &d.width, width),
		d.set("size_length", &d.length, length),
		d.set("size_weight", &d.weight, weight),
	); err != nil {
		return Dimensions{}, err
	}

	return d, nil
}

func (d Dimensions) Width() float64 {
	return d.width
}

func (d Dimensions) Length() float64 {
	return d.length
}

func (d Dimensions) Weight() float64 {
	return d.weight
}

func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

func (d Dimensions) IsEqual(other Dimensions) bool {
	return d.width == other.width && d.length == other.length && d.weight == other.weight
}

func (d Dimensions) String() string {
	return fmt.Sprintf("Dimensions(%gx%g, %gkg)", d.width, d.length, d.weight)
}

func (d *Dimensions) set(name string, field *float64, value float64) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%g is not greater than 0", value))
	}
	if value > DimensionMax {
		return errs.NewValueIsOutOfRangeError(name, value, 0, DimensionMax)
	}
	*field = value
	return nil
}
