package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/history"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// HistoryEntryResponse is one status history record with its status label and
// facility resolved.
type HistoryEntryResponse struct {
	ID              int64
	TrackingNumber  string
	StatusID        int64
	StatusLabel     string
	FacilityID      int64
	FacilityName    string
	FacilityAddress string
	RecordedAt      time.Time
}

const historyEntrySQL = `
	SELECT
		h.id,
		h.tracking_number,
		h.status_id,
		st.label,
		h.facility_id,
		f.name,
		f.address,
		h.recorded_at
	FROM status_history h
	JOIN package_statuses st ON st.id = h.status_id
	JOIN facilities f ON f.id = h.facility_id`

func fetchHistoryEntries(ctx context.Context, db *gorm.DB, tail string, args ...any) ([]HistoryEntryResponse, error) {
	rows, err := db.WithContext(ctx).Raw(historyEntrySQL+tail, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]HistoryEntryResponse, 0)
	for rows.Next() {
		var e HistoryEntryResponse
		err = rows.Scan(
			&e.ID,
			&e.TrackingNumber,
			&e.StatusID,
			&e.StatusLabel,
			&e.FacilityID,
			&e.FacilityName,
			&e.FacilityAddress,
			&e.RecordedAt,
		)
		if err != nil {
			return nil, err
		}
		e.RecordedAt = e.RecordedAt.UTC()
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// ledger orders fetched entries by the rules of package history: (recorded_at, id).
type ledger struct {
	records []*history.Record
	byID    map[int64]HistoryEntryResponse
}

func newLedger(entries []HistoryEntryResponse) (ledger, error) {
	l := ledger{
		records: make([]*history.Record, 0, len(entries)),
		byID:    make(map[int64]HistoryEntryResponse, len(entries)),
	}
	for _, e := range entries {
		tn, err := kernel.NewTrackingNumber(e.TrackingNumber)
		if err != nil {
			return ledger{}, err
		}
		r, err := history.RestoreRecord(e.ID, tn, e.StatusID, e.FacilityID, e.RecordedAt)
		if err != nil {
			return ledger{}, err
		}
		l.records = append(l.records, r)
		l.byID[e.ID] = e
	}
	return l, nil
}

func (l ledger) chronological() []HistoryEntryResponse {
	sorted := history.Chronological(l.records)
	entries := make([]HistoryEntryResponse, 0, len(sorted))
	for _, r := range sorted {
		entries = append(entries, l.byID[r.ID()])
	}
	return entries
}

func (l ledger) current() *HistoryEntryResponse {
	r := history.Current(l.records)
	if r == nil {
		return nil
	}
	e := l.byID[r.ID()]
	return &e
}

// packageOwners is the part of a package row needed to authorize history reads.
type packageOwners struct {
	senderID   int64
	receiverID int64
}

func (o packageOwners) OwnerIDs() (int64, int64) {
	return o.senderID, o.receiverID
}

// fetchPackageOwners finds a package whether or not it is soft-deleted. A package that
// never existed, or was hard-deleted, is not found.
func fetchPackageOwners(ctx context.Context, db *gorm.DB, trackingNumber string) (packageOwners, error) {
	var owners packageOwners
	err := db.WithContext(ctx).
		Raw("SELECT sender_id, receiver_id FROM packages WHERE tracking_number = ?", trackingNumber).
		Row().
		Scan(&owners.senderID, &owners.receiverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return packageOwners{}, errs.NewObjectNotFoundError("tracking_number", trackingNumber)
		}
		return packageOwners{}, err
	}
	return owners, nil
}
