package http

import (
	"net/http"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/catalog"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
)

var catalogPatchKeys = []string{"name", "address"}

// catalogRoutes maps each reference table to its path under /api.
func catalogRoutes() map[string]catalog.Kind {
	return map[string]catalog.Kind{
		"/package-types":    catalog.KindPackageType,
		"/package-statuses": catalog.KindPackageStatus,
		"/facilities":       catalog.KindFacility,
	}
}

type catalogEntryRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Address string `json:"address" validate:"max=255"`
}

func (s *Server) listCatalog(kind catalog.Kind) echo.HandlerFunc {
	return func(c echo.Context) error {
		query, err := queries.NewListCatalogQuery(principal(c), kind)
		if err != nil {
			return err
		}
		entries, err := s.handlers.ListCatalog.Handle(c.Request().Context(), query)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, lo.Map(entries, func(e queries.CatalogEntryResponse, _ int) CatalogEntry {
			return toCatalogEntry(e)
		}))
	}
}

func (s *Server) getCatalogEntry(kind catalog.Kind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}
		query, err := queries.NewGetCatalogEntryQuery(principal(c), kind, id)
		if err != nil {
			return err
		}
		entry, err := s.handlers.GetCatalogEntry.Handle(c.Request().Context(), query)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, toCatalogEntry(entry))
	}
}

func (s *Server) createCatalogEntry(kind catalog.Kind) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req catalogEntryRequest
		if err := s.bindBody(c, &req); err != nil {
			return err
		}
		cmd, err := commands.NewCreateCatalogEntryCommand(principal(c), kind, req.Name, req.Address)
		if err != nil {
			return err
		}
		id, err := s.handlers.CreateCatalogEntry.Handle(c.Request().Context(), cmd)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, Created{Message: kind.String() + " created successfully", ID: id})
	}
}

func (s *Server) updateCatalogEntry(kind catalog.Kind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}
		body, err := s.bindPatch(c, catalogPatchKeys)
		if err != nil {
			return err
		}
		name, err := field[string](body, "name")
		if err != nil {
			return err
		}
		address, err := field[string](body, "address")
		if err != nil {
			return err
		}

		cmd, err := commands.NewUpdateCatalogEntryCommand(principal(c), kind, id, name, address)
		if err != nil {
			return err
		}
		if err := s.handlers.UpdateCatalogEntry.Handle(c.Request().Context(), cmd); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, Message{Message: kind.String() + " updated successfully"})
	}
}

// deleteCatalogEntry answers 409 while packages or history records still use the entry.
func (s *Server) deleteCatalogEntry(kind catalog.Kind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}
		cmd, err := commands.NewDeleteCatalogEntryCommand(principal(c), kind, id)
		if err != nil {
			return err
		}
		if err := s.handlers.DeleteCatalogEntry.Handle(c.Request().Context(), cmd); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, Message{Message: kind.String() + " deleted successfully"})
	}
}
