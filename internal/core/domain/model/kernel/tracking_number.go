package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// TrackingNumberMaxLength bounds the stored identifier length.
const TrackingNumberMaxLength = 64

// ErrTrackingNumberIsNotConstructed is returned when validating a zero-value TrackingNumber.
var ErrTrackingNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking number must be created via NewTrackingNumber")

var trackingNumberPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// TrackingNumber is the primary identity of a package. It is assigned once at creation
// and never regenerated; all history records and lookups key off it.
//
// Example:
//
//	tn, err := kernel.NewTrackingNumber("RU-000123")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(tn) // RU-000123
type TrackingNumber struct {
	value string
	guard guard.ConstructorGuard
}

// NewTrackingNumber trims surrounding whitespace and validates the identifier:
// non-empty, at most TrackingNumberMaxLength characters, letters, digits, '-' and '_' only.
func NewTrackingNumber(value string) (TrackingNumber, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return TrackingNumber{}, errs.NewValueIsRequiredError("tracking_number")
	}
	if len(value) > TrackingNumberMaxLength {
		return TrackingNumber{}, errs.NewValueIsOutOfRangeError(
			"tracking_number length", len(value), 1, TrackingNumberMaxLength)
	}
	if !trackingNumberPattern.MatchString(value) {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"tracking_number", fmt.Errorf("%q contains unsupported characters", value))
	}

	return TrackingNumber{value: value, guard: guard.NewConstructorGuard()}, nil
}

// MustTrackingNumber is NewTrackingNumber for literals known to be valid. It panics otherwise.
func MustTrackingNumber(value string) TrackingNumber {
	tn, err := NewTrackingNumber(value)
	if err != nil {
		panic(err)
	}
	return tn
}

func (t TrackingNumber) String() string {
	return t.value
}

// IsEqual compares two tracking numbers. Comparison is case sensitive.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}

func (t TrackingNumber) Validate() error {
	return t.guard.Validate(ErrTrackingNumberIsNotConstructed)
}
