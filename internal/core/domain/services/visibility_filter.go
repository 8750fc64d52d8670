package services

import (
	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/samber/lo"
)

// Criteria narrows a package listing. Empty fields do not filter.
type Criteria struct {
	// Search is compared for exact equality with the tracking number and with the
	// sender and receiver display names.
	Search string

	// TypeID keeps only packages of this type.
	TypeID *int64

	// StatusLabel keeps only packages whose current status has this label.
	StatusLabel string

	// IncludeDeleted adds soft-deleted packages. Only admins may set it.
	IncludeDeleted bool
}

// VisibilityFilter decides which packages a principal may see. It runs after
// retrieval and before anything is returned, so storage queries never encode
// visibility rules themselves.
//
// Business rules:
//   - The full listing is reserved to operators and admins
//   - Soft-deleted packages are hidden unless an admin asks for them
//   - "My packages" holds only packages the principal sends or receives
//   - Search and type filters are exact matches combined with AND
//
// Example usage:
//
//	filter := NewVisibilityFilter()
//	views, err := filter.Listing(principal, rows, Criteria{Search: "T1"})
//	if errors.Is(err, errs.ErrAccessDenied) {
//	    // principal is not an operator
//	}
type VisibilityFilter struct{}

func NewVisibilityFilter() VisibilityFilter {
	return VisibilityFilter{}
}

// AuthorizeListing checks that the principal may request the full listing with
// these criteria. Callers run it before fetching rows.
func (f VisibilityFilter) AuthorizeListing(p access.Principal, c Criteria) error {
	if err := p.Require(access.RoleOperator, "list packages"); err != nil {
		return err
	}
	if c.IncludeDeleted {
		return p.Require(access.RoleAdmin, "list deleted packages")
	}
	return nil
}

// Listing returns the full listing as seen by an operator or admin.
func (f VisibilityFilter) Listing(p access.Principal, views []parcel.View, c Criteria) ([]parcel.View, error) {
	if err := f.AuthorizeListing(p, c); err != nil {
		return nil, err
	}

	return lo.Filter(views, func(v parcel.View, _ int) bool {
		return (c.IncludeDeleted || !v.IsDeleted) && matches(v, c)
	}), nil
}

// Owned returns the packages the principal sends or receives. Deleted packages are
// never part of it, whatever the criteria say.
func (f VisibilityFilter) Owned(p access.Principal, views []parcel.View, c Criteria) ([]parcel.View, error) {
	if err := p.Require(access.RoleUser, "list own packages"); err != nil {
		return nil, err
	}

	return lo.Filter(views, func(v parcel.View, _ int) bool {
		return !v.IsDeleted && access.Owns(p, v) && matches(v, c)
	}), nil
}

// Inspect authorizes a direct lookup of one package or its history. Soft-deleted
// packages stay reachable this way.
func (f VisibilityFilter) Inspect(p access.Principal, o access.Owned) error {
	if err := p.Require(access.RoleUser, "view package"); err != nil {
		return err
	}
	if !access.CanView(p, o) {
		return errs.NewAccessDeniedError("view package", "principal is neither sender nor receiver")
	}
	return nil
}

func matches(v parcel.View, c Criteria) bool {
	if c.Search != "" && c.Search != v.TrackingNumber && c.Search != v.SenderName && c.Search != v.ReceiverName {
		return false
	}
	if c.TypeID != nil && *c.TypeID != v.TypeID {
		return false
	}
	if c.StatusLabel != "" && c.StatusLabel != v.StatusLabel() {
		return false
	}
	return true
}
