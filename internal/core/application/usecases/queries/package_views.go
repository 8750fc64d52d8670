package queries

import (
	"context"
	"database/sql"
	"strings"

	"parceltrack/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// packageViewSQL joins each package with its type, the display names of both parties
// and its current status. The current status is the history row with the greatest
// (recorded_at, id), picked by a LATERAL subquery so the listing is one statement.
const packageViewSQL = `
	SELECT
		p.tracking_number,
		p.sender_id,
		s.first_name || ' ' || s.last_name,
		p.receiver_id,
		r.first_name || ' ' || r.last_name,
		p.type_id,
		t.label,
		p.size_width,
		p.size_length,
		p.size_weight,
		p.cost,
		p.created_at,
		p.updated_at,
		p.is_deleted,
		cs.id,
		cs.status_id,
		cs.status_label,
		cs.facility_id,
		cs.facility_name,
		cs.recorded_at
	FROM packages p
	JOIN users s ON s.id = p.sender_id
	JOIN users r ON r.id = p.receiver_id
	JOIN package_types t ON t.id = p.type_id
	LEFT JOIN LATERAL (
		SELECT
			h.id,
			h.status_id,
			st.label AS status_label,
			h.facility_id,
			f.name AS facility_name,
			h.recorded_at
		FROM status_history h
		JOIN package_statuses st ON st.id = h.status_id
		JOIN facilities f ON f.id = h.facility_id
		WHERE h.tracking_number = p.tracking_number
		ORDER BY h.recorded_at DESC, h.id DESC
		LIMIT 1
	) cs ON TRUE`

// viewFilter narrows the rows fetched from storage. Visibility rules are not
// expressed here; they are applied to the result by services.VisibilityFilter.
type viewFilter struct {
	IncludeDeleted bool
	OwnerID        int64
	TrackingNumber string
}

func (f viewFilter) where() (string, []any) {
	var conditions []string
	var args []any

	if !f.IncludeDeleted {
		conditions = append(conditions, "NOT p.is_deleted")
	}
	if f.OwnerID != 0 {
		conditions = append(conditions, "(p.sender_id = ? OR p.receiver_id = ?)")
		args = append(args, f.OwnerID, f.OwnerID)
	}
	if f.TrackingNumber != "" {
		conditions = append(conditions, "p.tracking_number = ?")
		args = append(args, f.TrackingNumber)
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func fetchPackageViews(ctx context.Context, db *gorm.DB, filter viewFilter) ([]parcel.View, error) {
	where, args := filter.where()
	query := packageViewSQL + where + " ORDER BY p.created_at DESC, p.tracking_number"

	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]parcel.View, 0)
	for rows.Next() {
		var v parcel.View
		var (
			recordID     sql.NullInt64
			statusID     sql.NullInt64
			statusLabel  sql.NullString
			facilityID   sql.NullInt64
			facilityName sql.NullString
			recordedAt   sql.NullTime
		)

		err = rows.Scan(
			&v.TrackingNumber,
			&v.SenderID,
			&v.SenderName,
			&v.ReceiverID,
			&v.ReceiverName,
			&v.TypeID,
			&v.TypeLabel,
			&v.Width,
			&v.Length,
			&v.Weight,
			&v.Cost,
			&v.CreatedAt,
			&v.UpdatedAt,
			&v.IsDeleted,
			&recordID,
			&statusID,
			&statusLabel,
			&facilityID,
			&facilityName,
			&recordedAt,
		)
		if err != nil {
			return nil, err
		}

		if recordID.Valid {
			v.Status = &parcel.CurrentStatus{
				RecordID:     recordID.Int64,
				StatusID:     statusID.Int64,
				StatusLabel:  statusLabel.String,
				FacilityID:   facilityID.Int64,
				FacilityName: facilityName.String,
				RecordedAt:   recordedAt.Time.UTC(),
			}
		}
		v.CreatedAt = v.CreatedAt.UTC()
		v.UpdatedAt = v.UpdatedAt.UTC()
		views = append(views, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
