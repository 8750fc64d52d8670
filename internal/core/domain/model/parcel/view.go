package parcel

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrentStatus is the latest status event of a package as shown in listings.
type CurrentStatus struct {
	RecordID     int64
	StatusID     int64
	StatusLabel  string
	FacilityID   int64
	FacilityName string
	RecordedAt   time.Time
}

// View is the joined read model of a package: the row itself, its type label, the
// display names of sender and receiver and the derived current status. Status is
// nil when the package has no history yet.
type View struct {
	TrackingNumber string
	SenderID       int64
	SenderName     string
	ReceiverID     int64
	ReceiverName   string
	TypeID         int64
	TypeLabel      string
	Width          float64
	Length         float64
	Weight         float64
	Cost           decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
	IsDeleted      bool
	Status         *CurrentStatus
}

func (v View) OwnerIDs() (int64, int64) {
	return v.SenderID, v.ReceiverID
}

// StatusLabel returns the label of the current status, or "" when there is none.
func (v View) StatusLabel() string {
	if v.Status == nil {
		return ""
	}
	return v.Status.StatusLabel
}
