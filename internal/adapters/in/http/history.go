package http

import (
	"net/http"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type statusRecordRequest struct {
	TrackingNumber string `json:"tracking_number" validate:"required,max=64"`
	StatusID       int64  `json:"status_id" validate:"required,gt=0"`
	FacilityID     int64  `json:"facility_id" validate:"required,gt=0"`
}

// GetPackageHistory handles GET /api/packages/:trackingNumber/history. Records
// come oldest first.
func (s *Server) GetPackageHistory(c echo.Context) error {
	tn, err := pathTrackingNumber(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetPackageHistoryQuery(principal(c), tn)
	if err != nil {
		return err
	}

	entries, err := s.handlers.GetPackageHistory.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHistoryEntries(entries))
}

// GetCurrentStatus handles GET /api/packages/:trackingNumber/current-status. A
// package without records answers 204.
func (s *Server) GetCurrentStatus(c echo.Context) error {
	tn, err := pathTrackingNumber(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetCurrentStatusQuery(principal(c), tn)
	if err != nil {
		return err
	}

	entry, err := s.handlers.GetCurrentStatus.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	if entry == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, toHistoryEntry(*entry))
}

// ListStatusHistory handles GET /api/status-history.
func (s *Server) ListStatusHistory(c echo.Context) error {
	entries, err := s.handlers.ListStatusHistory.Handle(c.Request().Context(),
		queries.NewListStatusHistoryQuery(principal(c)))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHistoryEntries(entries))
}

// AppendStatus handles POST /api/status-history. The record is stamped with the
// server clock.
func (s *Server) AppendStatus(c echo.Context) error {
	var req statusRecordRequest
	if err := s.bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAppendStatusCommand(principal(c), req.TrackingNumber, req.StatusID, req.FacilityID)
	if err != nil {
		return err
	}
	id, err := s.handlers.AppendStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, Created{Message: "Status history record added successfully", ID: id})
}

// CorrectStatusRecord handles PUT /api/status-history/:id.
func (s *Server) CorrectStatusRecord(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req statusRecordRequest
	if err := s.bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCorrectStatusRecordCommand(principal(c), id, req.TrackingNumber, req.StatusID, req.FacilityID)
	if err != nil {
		return err
	}
	if err := s.handlers.CorrectStatusRecord.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, Message{Message: "Status history record updated successfully"})
}

// DeleteStatusRecord handles DELETE /api/status-history/:id.
func (s *Server) DeleteStatusRecord(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteStatusRecordCommand(principal(c), id)
	if err != nil {
		return err
	}
	if err := s.handlers.DeleteStatusRecord.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, Message{Message: "Status history record deleted successfully"})
}
