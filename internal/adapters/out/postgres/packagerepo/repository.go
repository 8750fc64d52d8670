package packagerepo

import (
	"context"
	"errors"
	"time"

	"parceltrack/internal/adapters/out/postgres/pgerr"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPackageRepository implements ports.PackageRepository using GORM.
type GormPackageRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

func NewGormPackageRepository(db *gorm.DB, tracker aggregateTracker) *GormPackageRepository {
	return &GormPackageRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new package. Live and retired tracking numbers both count as taken.
func (r *GormPackageRepository) Add(ctx context.Context, aggregate *parcel.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	var retired int64
	if err := r.db.WithContext(ctx).Model(&RetiredTrackingNumberDTO{}).
		Where("tracking_number = ?", dto.TrackingNumber).
		Count(&retired).Error; err != nil {
		return err
	}
	if retired > 0 {
		return errs.NewObjectAlreadyExistsErrorWithCause(
			"tracking_number", dto.TrackingNumber, errors.New("tracking number was retired by a permanent delete"))
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsError("tracking_number", dto.TrackingNumber)
		}
		return referenceError(err, dto)
	}

	r.tracker.TrackAggregate(dto.TrackingNumber, aggregate)
	return nil
}

// Update writes every mutable column, including the deleted flag.
func (r *GormPackageRepository) Update(ctx context.Context, aggregate *parcel.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PackageDTO{}).
		Where("tracking_number = ?", dto.TrackingNumber).
		Select("*").
		Omit("tracking_number", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return referenceError(result.Error, dto)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("tracking_number", dto.TrackingNumber)
	}

	r.tracker.TrackAggregate(dto.TrackingNumber, aggregate)
	return nil
}

func (r *GormPackageRepository) Get(ctx context.Context, trackingNumber kernel.TrackingNumber) (*parcel.Package, error) {
	if err := trackingNumber.Validate(); err != nil {
		return nil, err
	}

	var dto PackageDTO
	err := r.db.WithContext(ctx).First(&dto, "tracking_number = ?", trackingNumber.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tracking_number", trackingNumber.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the package row and retires its tracking number. Run it in the same
// transaction that removed the package's history.
func (r *GormPackageRepository) Delete(ctx context.Context, trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	result := db.Where("tracking_number = ?", trackingNumber.String()).Delete(&PackageDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("tracking_number", trackingNumber.String())
	}

	retired := RetiredTrackingNumberDTO{
		TrackingNumber: trackingNumber.String(),
		RetiredAt:      time.Now().UTC(),
	}
	if err := db.Create(&retired).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(trackingNumber.String(), nil)
	return nil
}

// referenceError reports a foreign key violation as the user or package type that
// is missing.
func referenceError(err error, dto PackageDTO) error {
	if !pgerr.IsForeignKeyViolation(err) {
		return err
	}
	switch pgerr.Constraint(err) {
	case FKSender:
		return errs.NewObjectNotFoundError("sender_id", dto.SenderID)
	case FKReceiver:
		return errs.NewObjectNotFoundError("receiver_id", dto.ReceiverID)
	case FKType:
		return errs.NewObjectNotFoundError("type_id", dto.TypeID)
	}
	return errs.NewObjectNotFoundErrorWithCause("reference", dto.TrackingNumber, err)
}
