package pgtest

import (
	"time"

	"parceltrack/internal/adapters/out/postgres/catalogrepo"
	"parceltrack/internal/adapters/out/postgres/historyrepo"
	"parceltrack/internal/adapters/out/postgres/packagerepo"
	"parceltrack/internal/adapters/out/postgres/userrepo"
	"parceltrack/internal/core/domain/model/access"

	"github.com/shopspring/decimal"
)

// Fixture rows are written straight through the DTOs so suites can arrange state
// without going through the code under test.

func (d *Database) AddUser(username, firstName, lastName string, role access.Role) (int64, error) {
	dto := userrepo.UserDTO{
		Username:     username,
		PasswordHash: "hash",
		FirstName:    firstName,
		LastName:     lastName,
		Address:      "1 Test Street",
		Role:         role.String(),
	}
	err := d.DB.Create(&dto).Error
	return dto.ID, err
}

func (d *Database) AddPackageType(label string) (int64, error) {
	dto := catalogrepo.PackageTypeDTO{Label: label}
	err := d.DB.Create(&dto).Error
	return dto.ID, err
}

func (d *Database) AddPackageStatus(label string) (int64, error) {
	dto := catalogrepo.PackageStatusDTO{Label: label}
	err := d.DB.Create(&dto).Error
	return dto.ID, err
}

func (d *Database) AddFacility(name, address string) (int64, error) {
	dto := catalogrepo.FacilityDTO{Name: name, Address: address}
	err := d.DB.Create(&dto).Error
	return dto.ID, err
}

// PackageRow describes a fixture package. Zero dimensions and cost get defaults.
type PackageRow struct {
	TrackingNumber string
	SenderID       int64
	ReceiverID     int64
	TypeID         int64
	CreatedAt      time.Time
	Deleted        bool
}

func (d *Database) AddPackage(row PackageRow) error {
	created := row.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	dto := packagerepo.PackageDTO{
		TrackingNumber: row.TrackingNumber,
		SenderID:       row.SenderID,
		ReceiverID:     row.ReceiverID,
		TypeID:         row.TypeID,
		Size:           packagerepo.SizeDTO{Width: 10, Length: 20, Weight: 1.5},
		Cost:           decimal.RequireFromString("300.00"),
		CreatedAt:      created,
		UpdatedAt:      created,
		IsDeleted:      row.Deleted,
	}
	return d.DB.Create(&dto).Error
}

func (d *Database) AddHistory(trackingNumber string, statusID, facilityID int64, at time.Time) (int64, error) {
	dto := historyrepo.StatusHistoryDTO{
		TrackingNumber: trackingNumber,
		StatusID:       statusID,
		FacilityID:     facilityID,
		RecordedAt:     at,
	}
	err := d.DB.Create(&dto).Error
	return dto.ID, err
}
