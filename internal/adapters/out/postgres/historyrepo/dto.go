// Package historyrepo persists status history records.
package historyrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/history"
	"parceltrack/internal/core/domain/model/kernel"
)

// Foreign keys of status_history. Deleting a package removes its history.
const (
	FKPackage  = "fk_status_history_package"
	FKStatus   = "fk_status_history_status"
	FKFacility = "fk_status_history_facility"
)

// StatusHistoryDTO is the row of the status_history table. The composite index serves
// both the current status lookup and the chronological listing of one package.
type StatusHistoryDTO struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	TrackingNumber string    `gorm:"size:64;not null;index:idx_status_history_timeline,priority:1"`
	StatusID       int64     `gorm:"not null;index"`
	FacilityID     int64     `gorm:"not null;index"`
	RecordedAt     time.Time `gorm:"not null;index:idx_status_history_timeline,priority:2"`
}

func (StatusHistoryDTO) TableName() string {
	return "status_history"
}

func fromDomain(r *history.Record) StatusHistoryDTO {
	return StatusHistoryDTO{
		ID:             r.ID(),
		TrackingNumber: r.TrackingNumber().String(),
		StatusID:       r.StatusID(),
		FacilityID:     r.FacilityID(),
		RecordedAt:     r.RecordedAt(),
	}
}

func toDomain(dto StatusHistoryDTO) (*history.Record, error) {
	tn, err := kernel.NewTrackingNumber(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}
	return history.RestoreRecord(dto.ID, tn, dto.StatusID, dto.FacilityID, dto.RecordedAt.UTC())
}
