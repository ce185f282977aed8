package server

import (
	"github.com/MamuzaD/cal-hacks/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api")

	// Search routes
	apiRoutes.GET("/search", routes.GetSearchHandler)
	apiRoutes.GET("/classify", routes.GetClassifyHandler)

	// Graph routes
	apiRoutes.GET("/graph", routes.GetGraphHandler)

	// Entity routes
	apiRoutes.GET("/person/:id", routes.GetPersonHandler)
	apiRoutes.GET("/company/:id", routes.GetCompanyHandler)
	apiRoutes.GET("/company/:id/logo", routes.GetCompanyLogoHandler)
}
