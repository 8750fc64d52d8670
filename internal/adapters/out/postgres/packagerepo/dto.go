// Package packagerepo persists the package aggregate and the list of tracking numbers
// retired by hard deletes.
package packagerepo

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/shopspring/decimal"
)

// Foreign keys of packages.
const (
	FKSender   = "fk_packages_sender"
	FKReceiver = "fk_packages_receiver"
	FKType     = "fk_packages_type"
)

// PackageDTO is the row of the packages table.
type PackageDTO struct {
	TrackingNumber string          `gorm:"primaryKey;size:64"`
	SenderID       int64           `gorm:"not null;index"`
	ReceiverID     int64           `gorm:"not null;index"`
	TypeID         int64           `gorm:"not null;index"`
	Size           SizeDTO         `gorm:"embedded;embeddedPrefix:size_"`
	Cost           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt      time.Time       `gorm:"autoCreateTime:false;not null"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime:false;not null"`
	IsDeleted      bool            `gorm:"not null;default:false;index"`
}

func (PackageDTO) TableName() string {
	return "packages"
}

// SizeDTO is embedded into the packages table as size_width, size_length and size_weight.
type SizeDTO struct {
	Width  float64 `gorm:"not null"`
	Length float64 `gorm:"not null"`
	Weight float64 `gorm:"not null"`
}

// RetiredTrackingNumberDTO records a tracking number whose package was hard-deleted.
// Such numbers are never handed out again.
type RetiredTrackingNumberDTO struct {
	TrackingNumber string    `gorm:"primaryKey;size:64"`
	RetiredAt      time.Time `gorm:"not null"`
}

func (RetiredTrackingNumberDTO) TableName() string {
	return "retired_tracking_numbers"
}

func fromDomain(p *parcel.Package) PackageDTO {
	return PackageDTO{
		TrackingNumber: p.TrackingNumber().String(),
		SenderID:       p.SenderID(),
		ReceiverID:     p.ReceiverID(),
		TypeID:         p.TypeID(),
		Size: SizeDTO{
			Width:  p.Dimensions().Width(),
			Length: p.Dimensions().Length(),
			Weight: p.Dimensions().Weight(),
		},
		Cost:      p.Cost(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
		IsDeleted: p.IsDeleted(),
	}
}

func toDomain(dto PackageDTO) (*parcel.Package, error) {
	tn, err := kernel.NewTrackingNumber(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	dims, err := kernel.NewDimensions(dto.Size.Width, dto.Size.Length, dto.Size.Weight)
	if err != nil {
		return nil, err
	}

	return parcel.RestorePackage(
		tn, dto.SenderID, dto.ReceiverID, dto.TypeID, dims, dto.Cost,
		dto.CreatedAt, dto.UpdatedAt, dto.IsDeleted,
	)
}
