// Package kernel provides the value objects shared by the parcel tracking domain.
//
// The package includes:
//   - TrackingNumber: the immutable primary identity of a package
//   - Dimensions: validated physical measurements of a package
//
// Both are immutable and guarded: their zero values fail Validate, so callers
// must go through the constructors.
package kernel
