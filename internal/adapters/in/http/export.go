package http

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/catalog"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"
)

// Exports run the same queries as the JSON endpoints, so a caller can only
// download what they could list.

type packageCSVRow struct {
	TrackingNumber string `csv:"tracking_number"`
	SenderID       int64  `csv:"sender_id"`
	SenderName     string `csv:"sender_name"`
	ReceiverID     int64  `csv:"receiver_id"`
	ReceiverName   string `csv:"receiver_name"`
	TypeID         int64  `csv:"type_id"`
	PackageType    string `csv:"package_type"`
	Width          string `csv:"size_width"`
	Length         string `csv:"size_length"`
	Weight         string `csv:"size_weight"`
	Cost           string `csv:"cost"`
	CreatedAt      string `csv:"created_at"`
	UpdatedAt      string `csv:"updated_at"`
	IsDeleted      bool   `csv:"is_deleted"`
	LastStatusID   string `csv:"last_status_id"`
	LastStatus     string `csv:"last_status"`
	LastStatusDate string `csv:"last_status_date"`
}

type historyCSVRow struct {
	ID             int64  `csv:"id"`
	TrackingNumber string `csv:"tracking_number"`
	StatusID       int64  `csv:"status_id"`
	Status         string `csv:"status"`
	FacilityID     int64  `csv:"facility_id"`
	FacilityName   string `csv:"facility_name"`
	RecordedAt     string `csv:"recorded_at"`
}

// userCSVRow has no password column.
type userCSVRow struct {
	ID        int64  `csv:"id"`
	FirstName string `csv:"first_name"`
	LastName  string `csv:"last_name"`
	Username  string `csv:"username"`
	Address   string `csv:"address"`
	Role      string `csv:"role"`
}

type catalogCSVRow struct {
	ID   int64  `csv:"id"`
	Name string `csv:"name"`
}

type facilityCSVRow struct {
	ID      int64  `csv:"id"`
	Name    string `csv:"name"`
	Address string `csv:"address"`
}

// ExportPackages handles GET /api/export/packages.
func (s *Server) ExportPackages(c echo.Context) error {
	criteria, err := listCriteria(c)
	if err != nil {
		return err
	}
	views, err := s.handlers.ListPackages.Handle(c.Request().Context(), queries.NewListPackagesQuery(principal(c), criteria))
	if err != nil {
		return err
	}

	rows := make([]packageCSVRow, 0, len(views))
	for _, v := range views {
		rows = append(rows, packageRow(v))
	}
	return writeCSV(c, "packages", rows)
}

func packageRow(v parcel.View) packageCSVRow {
	row := packageCSVRow{
		TrackingNumber: v.TrackingNumber,
		SenderID:       v.SenderID,
		SenderName:     v.SenderName,
		ReceiverID:     v.ReceiverID,
		ReceiverName:   v.ReceiverName,
		TypeID:         v.TypeID,
		PackageType:    v.TypeLabel,
		Width:          formatFloat(v.Width),
		Length:         formatFloat(v.Length),
		Weight:         formatFloat(v.Weight),
		Cost:           v.Cost.StringFixed(2),
		CreatedAt:      formatTime(v.CreatedAt),
		UpdatedAt:      formatTime(v.UpdatedAt),
		IsDeleted:      v.IsDeleted,
	}
	if v.Status != nil {
		row.LastStatusID = strconv.FormatInt(v.Status.StatusID, 10)
		row.LastStatus = v.Status.StatusLabel
		row.LastStatusDate = formatTime(v.Status.RecordedAt)
	}
	return row
}

// ExportStatusHistory handles GET /api/export/status-history.
func (s *Server) ExportStatusHistory(c echo.Context) error {
	entries, err := s.handlers.ListStatusHistory.Handle(c.Request().Context(),
		queries.NewListStatusHistoryQuery(principal(c)))
	if err != nil {
		return err
	}

	rows := make([]historyCSVRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, historyCSVRow{
			ID:             e.ID,
			TrackingNumber: e.TrackingNumber,
			StatusID:       e.StatusID,
			Status:         e.StatusLabel,
			FacilityID:     e.FacilityID,
			FacilityName:   e.FacilityName,
			RecordedAt:     formatTime(e.RecordedAt),
		})
	}
	return writeCSV(c, "status_history", rows)
}

// ExportUsers handles GET /api/export/users.
func (s *Server) ExportUsers(c echo.Context) error {
	users, err := s.handlers.ListUsers.Handle(c.Request().Context(), queries.NewListUsersQuery(principal(c)))
	if err != nil {
		return err
	}

	rows := make([]userCSVRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, userCSVRow{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Username:  u.Username,
			Address:   u.Address,
			Role:      u.Role.String(),
		})
	}
	return writeCSV(c, "users", rows)
}

func (s *Server) exportCatalog(kind catalog.Kind) echo.HandlerFunc {
	return func(c echo.Context) error {
		query, err := queries.NewListCatalogQuery(principal(c), kind)
		if err != nil {
			return err
		}
		entries, err := s.handlers.ListCatalog.Handle(c.Request().Context(), query)
		if err != nil {
			return err
		}

		if kind.HasAddress() {
			rows := make([]facilityCSVRow, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, facilityCSVRow{ID: e.ID, Name: e.Name, Address: e.Address})
			}
			return writeCSV(c, exportName(kind), rows)
		}
		rows := make([]catalogCSVRow, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, catalogCSVRow{ID: e.ID, Name: e.Name})
		}
		return writeCSV(c, exportName(kind), rows)
	}
}

func exportName(kind catalog.Kind) string {
	switch kind {
	case catalog.KindPackageType:
		return "package_types"
	case catalog.KindPackageStatus:
		return "package_statuses"
	case catalog.KindFacility:
		return "facilities"
	case catalog.KindUnknown:
		fallthrough
	default:
		return "export"
	}
}

// writeCSV marshals rows before any header is sent, so a marshal failure still
// reaches the error handler as JSON. An empty export carries the header line only.
func writeCSV[T any](c echo.Context, name string, rows []T) error {
	var buf bytes.Buffer
	if err := gocsv.Marshal(rows, &buf); err != nil {
		return fmt.Errorf("failed to marshal %s export: %w", name, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name+".csv"))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
