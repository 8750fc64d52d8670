package historyrepo

import (
	"context"
	"errors"
	"strconv"

	"parceltrack/internal/adapters/out/postgres/pgerr"
	"parceltrack/internal/core/domain/model/history"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormHistoryRepository implements ports.HistoryRepository using GORM.
type GormHistoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

func NewGormHistoryRepository(db *gorm.DB, tracker aggregateTracker) *GormHistoryRepository {
	return &GormHistoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the record and returns the id assigned by the sequence. The record
// passed in keeps id 0.
func (r *GormHistoryRepository) Add(ctx context.Context, record *history.Record) (int64, error) {
	if err := record.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(record)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, referenceError(err, dto)
	}

	r.tracker.TrackAggregate(trackingKey(dto.ID), record)
	return dto.ID, nil
}

func (r *GormHistoryRepository) Get(ctx context.Context, id int64) (*history.Record, error) {
	var dto StatusHistoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("history_id", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update rewrites the tracking number, status and facility of a record. recorded_at
// is never touched.
func (r *GormHistoryRepository) Update(ctx context.Context, record *history.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	result := r.db.WithContext(ctx).Model(&StatusHistoryDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"tracking_number": dto.TrackingNumber,
			"status_id":       dto.StatusID,
			"facility_id":     dto.FacilityID,
		})
	if result.Error != nil {
		return referenceError(result.Error, dto)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("history_id", dto.ID)
	}

	r.tracker.TrackAggregate(trackingKey(dto.ID), record)
	return nil
}

func (r *GormHistoryRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&StatusHistoryDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("history_id", id)
	}
	return nil
}

func (r *GormHistoryRepository) DeleteByTrackingNumber(
	ctx context.Context,
	trackingNumber kernel.TrackingNumber,
) (int64, error) {
	if err := trackingNumber.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).
		Where("tracking_number = ?", trackingNumber.String()).
		Delete(&StatusHistoryDTO{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// referenceError reports a foreign key violation as the referenced row that is
// missing, e.g. a package hard-deleted after the caller looked it up.
func referenceError(err error, dto StatusHistoryDTO) error {
	if !pgerr.IsForeignKeyViolation(err) {
		return err
	}
	switch pgerr.Constraint(err) {
	case FKPackage:
		return errs.NewObjectNotFoundError("tracking_number", dto.TrackingNumber)
	case FKStatus:
		return errs.NewObjectNotFoundError("status_id", dto.StatusID)
	case FKFacility:
		return errs.NewObjectNotFoundError("facility_id", dto.FacilityID)
	}
	return errs.NewObjectNotFoundErrorWithCause("reference", dto.TrackingNumber, err)
}

func trackingKey(id int64) string {
	return "history:" + strconv.FormatInt(id, 10)
}
