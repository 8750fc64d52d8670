// Package catalogrepo persists the reference tables: package types, package statuses
// and facilities. All three share one repository keyed by catalog.Kind.
package catalogrepo

import (
	"fmt"

	"parceltrack/internal/core/domain/model/catalog"
)

type PackageTypeDTO struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Label string `gorm:"size:100;not null;uniqueIndex"`
}

func (PackageTypeDTO) TableName() string {
	return "package_types"
}

type PackageStatusDTO struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Label string `gorm:"size:100;not null;uniqueIndex"`
}

func (PackageStatusDTO) TableName() string {
	return "package_statuses"
}

type FacilityDTO struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Name    string `gorm:"size:100;not null;uniqueIndex"`
	Address string `gorm:"not null"`
}

func (FacilityDTO) TableName() string {
	return "facilities"
}

// reference is a column of another table that points at catalog rows.
type reference struct {
	table  string
	column string
}

// table describes how one kind is stored.
type table struct {
	name       string
	nameColumn string
	model      func() any
	referrers  []reference
}

func tableFor(kind catalog.Kind) (table, error) {
	switch kind {
	case catalog.KindPackageType:
		return table{
			name:       PackageTypeDTO{}.TableName(),
			nameColumn: "label",
			model:      func() any { return &PackageTypeDTO{} },
			referrers:  []reference{{table: "packages", column: "type_id"}},
		}, nil
	case catalog.KindPackageStatus:
		return table{
			name:       PackageStatusDTO{}.TableName(),
			nameColumn: "label",
			model:      func() any { return &PackageStatusDTO{} },
			referrers:  []reference{{table: "status_history", column: "status_id"}},
		}, nil
	case catalog.KindFacility:
		return table{
			name:       FacilityDTO{}.TableName(),
			nameColumn: "name",
			model:      func() any { return &FacilityDTO{} },
			referrers:  []reference{{table: "status_history", column: "facility_id"}},
		}, nil
	case catalog.KindUnknown:
	}
	return table{}, kind.Validate()
}

// row is the common shape all three tables are read into.
type row struct {
	ID      int64
	Name    string
	Address string
}

func fromDomain(e *catalog.Entry) (any, error) {
	switch e.Kind() {
	case catalog.KindPackageType:
		return &PackageTypeDTO{ID: e.ID(), Label: e.Name()}, nil
	case catalog.KindPackageStatus:
		return &PackageStatusDTO{ID: e.ID(), Label: e.Name()}, nil
	case catalog.KindFacility:
		return &FacilityDTO{ID: e.ID(), Name: e.Name(), Address: e.Address()}, nil
	case catalog.KindUnknown:
	}
	return nil, fmt.Errorf("no table for %s", e.Kind())
}

func insertedID(dto any) int64 {
	switch d := dto.(type) {
	case *PackageTypeDTO:
		return d.ID
	case *PackageStatusDTO:
		return d.ID
	case *FacilityDTO:
		return d.ID
	}
	return 0
}

func toDomain(kind catalog.Kind, r row) (*catalog.Entry, error) {
	return catalog.RestoreEntry(r.ID, kind, r.Name, r.Address)
}
