package http

import (
	"time"

	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type CurrentStatus struct {
	RecordID     int64     `json:"record_id"`
	StatusID     int64     `json:"status_id"`
	Status       string    `json:"status"`
	FacilityID   int64     `json:"facility_id"`
	FacilityName string    `json:"facility_name"`
	RecordedAt   time.Time `json:"recorded_at"`
}

type Package struct {
	TrackingNumber string          `json:"tracking_number"`
	SenderID       int64           `json:"sender_id"`
	SenderName     string          `json:"sender_name"`
	ReceiverID     int64           `json:"receiver_id"`
	ReceiverName   string          `json:"receiver_name"`
	TypeID         int64           `json:"type_id"`
	PackageType    string          `json:"package_type"`
	SizeWidth      float64         `json:"size_width"`
	SizeLength     float64         `json:"size_length"`
	SizeWeight     float64         `json:"size_weight"`
	Cost           decimal.Decimal `json:"cost"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	IsDeleted      bool            `json:"is_deleted"`
	CurrentStatus  *CurrentStatus  `json:"current_status"`
}

// PackageList wraps listings the way clients of the service expect them.
type PackageList struct {
	Result []Package `json:"result"`
}

func toPackage(v parcel.View) Package {
	p := Package{
		TrackingNumber: v.TrackingNumber,
		SenderID:       v.SenderID,
		SenderName:     v.SenderName,
		ReceiverID:     v.ReceiverID,
		ReceiverName:   v.ReceiverName,
		TypeID:         v.TypeID,
		PackageType:    v.TypeLabel,
		SizeWidth:      v.Width,
		SizeLength:     v.Length,
		SizeWeight:     v.Weight,
		Cost:           v.Cost,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
		IsDeleted:      v.IsDeleted,
	}
	if s := v.Status; s != nil {
		p.CurrentStatus = &CurrentStatus{
			RecordID:     s.RecordID,
			StatusID:     s.StatusID,
			Status:       s.StatusLabel,
			FacilityID:   s.FacilityID,
			FacilityName: s.FacilityName,
			RecordedAt:   s.RecordedAt,
		}
	}
	return p
}

func toPackageList(views []parcel.View) PackageList {
	return PackageList{Result: lo.Map(views, func(v parcel.View, _ int) Package { return toPackage(v) })}
}

type HistoryEntry struct {
	ID              int64     `json:"id"`
	TrackingNumber  string    `json:"tracking_number"`
	StatusID        int64     `json:"status_id"`
	Status          string    `json:"status"`
	FacilityID      int64     `json:"facility_id"`
	FacilityName    string    `json:"facility_name"`
	FacilityAddress string    `json:"facility_address"`
	RecordedAt      time.Time `json:"recorded_at"`
}

func toHistoryEntry(e queries.HistoryEntryResponse) HistoryEntry {
	return HistoryEntry{
		ID:              e.ID,
		TrackingNumber:  e.TrackingNumber,
		StatusID:        e.StatusID,
		Status:          e.StatusLabel,
		FacilityID:      e.FacilityID,
		FacilityName:    e.FacilityName,
		FacilityAddress: e.FacilityAddress,
		RecordedAt:      e.RecordedAt,
	}
}

func toHistoryEntries(entries []queries.HistoryEntryResponse) []HistoryEntry {
	return lo.Map(entries, func(e queries.HistoryEntryResponse, _ int) HistoryEntry { return toHistoryEntry(e) })
}

type User struct {
	ID            int64  `json:"id"`
	Username      string `json:"username"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Address       string `json:"address"`
	Role          string `json:"role"`
	IsCurrentUser bool   `json:"is_current_user"`
}

func toUser(u queries.UserResponse) User {
	return User{
		ID:            u.ID,
		Username:      u.Username,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Address:       u.Address,
		Role:          u.Role.String(),
		IsCurrentUser: u.IsCurrentUser,
	}
}

type CatalogEntry struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

func toCatalogEntry(e queries.CatalogEntryResponse) CatalogEntry {
	return CatalogEntry{ID: e.ID, Name: e.Name, Address: e.Address}
}

type Token struct {
	Token string `json:"token"`
}

// Created acknowledges a create with the identifier of the new resource.
type Created struct {
	Message        string `json:"message"`
	ID             int64  `json:"id,omitempty"`
	TrackingNumber string `json:"tracking_number,omitempty"`
}

type Message struct {
	Message string `json:"message"`
}
