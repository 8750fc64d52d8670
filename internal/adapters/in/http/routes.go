package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Register mounts the API on e. Every /api route passes through the token
// middleware; routes that need a principal get their gate from the use case.
func (s *Server) Register(e *echo.Echo) {
	e.HTTPErrorHandler = s.errorHandler
	e.Use(middleware.Recover())
	e.Use(requestID())
	e.Use(s.requestLogger())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api", s.authenticate)

	packages := api.Group("/packages")
	packages.GET("", s.ListPackages)
	packages.GET("/my", s.ListMyPackages)
	packages.POST("", s.CreatePackage)
	packages.GET("/:trackingNumber", s.GetPackage)
	packages.PUT("/:trackingNumber", s.UpdatePackage)
	packages.DELETE("/:trackingNumber", s.SoftDeletePackage)
	packages.DELETE("/:trackingNumber/permanent", s.HardDeletePackage)
	packages.GET("/:trackingNumber/history", s.GetPackageHistory)
	packages.GET("/:trackingNumber/current-status", s.GetCurrentStatus)

	history := api.Group("/status-history")
	history.GET("", s.ListStatusHistory)
	history.POST("", s.AppendStatus)
	history.PUT("/:id", s.CorrectStatusRecord)
	history.DELETE("/:id", s.DeleteStatusRecord)

	users := api.Group("/users")
	users.POST("/register", s.RegisterUser)
	users.POST("/login", s.Login)
	users.GET("/refreshToken", s.RefreshToken)
	users.GET("", s.ListUsers)
	users.GET("/:id", s.GetUser)
	users.PUT("/:id", s.UpdateUser)
	users.PATCH("/password/:id", s.ChangePassword)
	users.DELETE("/:id", s.DeleteUser)

	for path, kind := range catalogRoutes() {
		g := api.Group(path)
		g.GET("", s.listCatalog(kind))
		g.GET("/:id", s.getCatalogEntry(kind))
		g.POST("", s.createCatalogEntry(kind))
		g.PUT("/:id", s.updateCatalogEntry(kind))
		g.DELETE("/:id", s.deleteCatalogEntry(kind))
	}

	export := api.Group("/export")
	export.GET("/packages", s.ExportPackages)
	export.GET("/status-history", s.ExportStatusHistory)
	export.GET("/users", s.ExportUsers)
	for path, kind := range catalogRoutes() {
		export.GET(path, s.exportCatalog(kind))
	}
}
