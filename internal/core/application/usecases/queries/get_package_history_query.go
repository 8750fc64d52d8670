package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrGetPackageHistoryQueryIsNotConstructed = errors.New(
		"GetPackageHistoryQuery must be created via NewGetPackageHistoryQuery constructor",
	)
)

// GetPackageHistoryQuery reads the full status history of one package, oldest first.
// Records of equal recorded_at are ordered by id.
//
// Example:
//
//	query, err := NewGetPackageHistoryQuery(principal, "T1")
//	if err != nil {
//	    return err
//	}
//	entries, err := handler.Handle(ctx, query)
type GetPackageHistoryQuery struct {
	principal      access.Principal
	trackingNumber kernel.TrackingNumber

	guard guard.ConstructorGuard
}

func NewGetPackageHistoryQuery(principal access.Principal, trackingNumber string) (GetPackageHistoryQuery, error) {
	tn, err := kernel.NewTrackingNumber(trackingNumber)
	if err != nil {
		return GetPackageHistoryQuery{}, err
	}

	return GetPackageHistoryQuery{
		principal:      principal,
		trackingNumber: tn,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (q GetPackageHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageHistoryQueryIsNotConstructed)
}

func (q GetPackageHistoryQuery) Principal() access.Principal {
	return q.principal
}

func (q GetPackageHistoryQuery) TrackingNumber() kernel.TrackingNumber {
	return q.trackingNumber
}
