package http

import (
	"errors"
	"net/http"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type createPackageRequest struct {
	TrackingNumber string          `json:"tracking_number" validate:"required,max=64"`
	SenderID       int64           `json:"sender_id" validate:"required,gt=0"`
	ReceiverID     int64           `json:"receiver_id" validate:"required,gt=0"`
	TypeID         int64           `json:"type_id" validate:"required,gt=0"`
	SizeWidth      float64         `json:"size_width" validate:"gt=0"`
	SizeLength     float64         `json:"size_length" validate:"gt=0"`
	SizeWeight     float64         `json:"size_weight" validate:"gt=0"`
	Cost           decimal.Decimal `json:"cost"`
}

// listCriteria reads the listing filters shared by the JSON and CSV endpoints.
func listCriteria(c echo.Context) (services.Criteria, error) {
	var (
		search         *string
		typeID         *int64
		includeDeleted *bool
	)
	if err := errors.Join(
		queryParam(c, "search", &search),
		queryParam(c, "type", &typeID),
		queryParam(c, "include_deleted", &includeDeleted),
	); err != nil {
		return services.Criteria{}, err
	}

	criteria := services.Criteria{TypeID: typeID}
	if search != nil {
		criteria.Search = *search
	}
	if includeDeleted != nil {
		criteria.IncludeDeleted = *includeDeleted
	}
	return criteria, nil
}

// ListPackages handles GET /api/packages - the operator listing.
func (s *Server) ListPackages(c echo.Context) error {
	criteria, err := listCriteria(c)
	if err != nil {
		return err
	}

	views, err := s.handlers.ListPackages.Handle(c.Request().Context(), queries.NewListPackagesQuery(principal(c), criteria))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPackageList(views))
}

// ListMyPackages handles GET /api/packages/my - packages the caller sends or receives.
func (s *Server) ListMyPackages(c echo.Context) error {
	var status *string
	if err := queryParam(c, "status", &status); err != nil {
		return err
	}
	var criteria services.Criteria
	if status != nil {
		criteria.StatusLabel = *status
	}

	views, err := s.handlers.ListMyPackages.Handle(c.Request().Context(), queries.NewListMyPackagesQuery(principal(c), criteria))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPackageList(views))
}

// GetPackage handles GET /api/packages/:trackingNumber.
func (s *Server) GetPackage(c echo.Context) error {
	tn, err := pathTrackingNumber(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetPackageQuery(principal(c), tn)
	if err != nil {
		return err
	}

	view, err := s.handlers.GetPackage.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPackage(view))
}

// CreatePackage handles POST /api/packages.
func (s *Server) CreatePackage(c echo.Context) error {
	var req createPackageRequest
	if err := s.bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreatePackageCommand(principal(c),
		req.TrackingNumber, req.SenderID, req.ReceiverID, req.TypeID,
		req.SizeWidth, req.SizeLength, req.SizeWeight, req.Cost)
	if err != nil {
		return err
	}
	if err := s.handlers.CreatePackage.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, Created{
		Message:        "Package created successfully",
		TrackingNumber: cmd.TrackingNumber().String(),
	})
}

// UpdatePackage handles PUT /api/packages/:trackingNumber. Only the keys present
// in the body change.
func (s *Server) UpdatePackage(c echo.Context) error {
	tn, err := pathTrackingNumber(c)
	if err != nil {
		return err
	}
	body, err := s.bindPatch(c, parcel.Updatable)
	if err != nil {
		return err
	}
	update, err := packageUpdate(body)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdatePackageCommand(principal(c), tn, update)
	if err != nil {
		return err
	}
	if err := s.handlers.UpdatePackage.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, Message{Message: "Package updated successfully"})
}

func packageUpdate(body patchBody) (parcel.Update, error) {
	var (
		u         parcel.Update
		fieldErrs []error
	)
	collect := func(err error) { fieldErrs = append(fieldErrs, err) }

	var err error
	u.SenderID, err = field[int64](body, "sender_id")
	collect(err)
	u.ReceiverID, err = field[int64](body, "receiver_id")
	collect(err)
	u.TypeID, err = field[int64](body, "type_id")
	collect(err)
	u.Width, err = field[float64](body, "size_width")
	collect(err)
	u.Length, err = field[float64](body, "size_length")
	collect(err)
	u.Weight, err = field[float64](body, "size_weight")
	collect(err)
	u.Cost, err = field[decimal.Decimal](body, "cost")
	collect(err)

	return u, errors.Join(fieldErrs...)
}

// SoftDeletePackage handles DELETE /api/packages/:trackingNumber.
func (s *Server) SoftDeletePackage(c echo.Context) error {
	return s.deletePackage(c, false)
}

// HardDeletePackage handles DELETE /api/packages/:trackingNumber/permanent. The
// package history goes with it.
func (s *Server) HardDeletePackage(c echo.Context) error {
	return s.deletePackage(c, true)
}

func (s *Server) deletePackage(c echo.Context, permanent bool) error {
	tn, err := pathTrackingNumber(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeletePackageCommand(principal(c), tn, permanent)
	if err != nil {
		return err
	}
	if err := s.handlers.DeletePackage.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, Message{Message: "Package deleted successfully"})
}
