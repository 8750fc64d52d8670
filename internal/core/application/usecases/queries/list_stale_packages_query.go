package queries

import (
	"errors"
	"fmt"
	"time"

	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrListStalePackagesQueryIsNotConstructed = errors.New(
		"ListStalePackagesQuery must be created via NewListStalePackagesQuery constructor",
	)
)

// ListStalePackagesQuery finds live packages created before a cutoff that still have
// no status history. It runs on behalf of the service itself, not a principal.
type ListStalePackagesQuery struct {
	createdBefore time.Time

	guard guard.ConstructorGuard
}

func NewListStalePackagesQuery(now time.Time, olderThan time.Duration) (ListStalePackagesQuery, error) {
	if olderThan <= 0 {
		return ListStalePackagesQuery{}, errs.NewValueIsInvalidErrorWithCause("olderThan", fmt.Errorf("%s is not positive", olderThan))
	}
	return ListStalePackagesQuery{
		createdBefore: now.Add(-olderThan),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q ListStalePackagesQuery) Validate() error {
	return q.guard.Validate(ErrListStalePackagesQueryIsNotConstructed)
}

func (q ListStalePackagesQuery) CreatedBefore() time.Time {
	return q.createdBefore
}

type ListStalePackagesQueryResponse struct {
	TrackingNumber string
	CreatedAt      time.Time
}
