// Package services provides domain services that apply business rules across
// several aggregates and read models of the parcel domain.
//
// The package includes:
//   - VisibilityFilter: scopes package listings and lookups to what a principal may see
package services
