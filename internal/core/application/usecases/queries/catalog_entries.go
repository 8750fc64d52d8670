package queries

import (
	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/model/catalog"
)

// CatalogEntryResponse is a package type, package status or facility. Address is
// empty for the first two.
type CatalogEntryResponse struct {
	ID      int64
	Kind    catalog.Kind
	Name    string
	Address string
}

// catalogSelect returns the SELECT for kind and the role needed to read it.
// Facilities are operational data; types and statuses are public.
func catalogSelect(kind catalog.Kind) (string, access.Role, error) {
	switch kind {
	case catalog.KindPackageType:
		return "SELECT id, label AS name, '' AS address FROM package_types", access.RoleUnknown, nil
	case catalog.KindPackageStatus:
		return "SELECT id, label AS name, '' AS address FROM package_statuses", access.RoleUnknown, nil
	case catalog.KindFacility:
		return "SELECT id, name, address FROM facilities", access.RoleOperator, nil
	case catalog.KindUnknown:
	}
	return "", access.RoleUnknown, kind.Validate()
}

func authorizeCatalogRead(p access.Principal, kind catalog.Kind, required access.Role) error {
	if required == access.RoleUnknown {
		return nil
	}
	return p.Require(required, "read "+kind.String()+" catalog")
}

type catalogRow struct {
	ID      int64
	Name    string
	Address string
}

func (r catalogRow) toResponse(kind catalog.Kind) CatalogEntryResponse {
	return CatalogEntryResponse{ID: r.ID, Kind: kind, Name: r.Name, Address: r.Address}
}
