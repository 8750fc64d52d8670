// Package ports defines the contracts between the parcel domain and infrastructure:
// repositories, the unit of work and the token issuer.
package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// PackageRepository defines the persistence contract for package aggregates.
type PackageRepository interface {
	// Add persists a new package. It fails with ObjectAlreadyExistsError when the
	// tracking number is taken or was retired by an earlier hard delete.
	Add(ctx context.Context, aggregate *parcel.Package) error

	// Update persists changes to an existing package, including the deleted flag.
	Update(ctx context.Context, aggregate *parcel.Package) error

	// Get retrieves a package by tracking number. Soft-deleted packages are returned.
	Get(ctx context.Context, trackingNumber kernel.TrackingNumber) (*parcel.Package, error)

	// Delete removes the package row and retires its tracking number for good.
	// History records must be removed first.
	Delete(ctx context.Context, trackingNumber kernel.TrackingNumber) error
}
