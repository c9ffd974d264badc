package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/sparkrides/internal/pkg/models"
	nrpkg "github.com/piresc/sparkrides/internal/pkg/newrelic"
	"github.com/piresc/sparkrides/services/rides"
	httpHandler "github.com/piresc/sparkrides/services/rides/handler/http"
)

// Handler combines all handlers for the rides service
type Handler struct {
	ridesHTTP *httpHandler.RidesHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	ridesUC rides.RideUC,
	cfg *models.Config,
) *Handler {
	return &Handler{
		ridesHTTP: httpHandler.NewRidesHandler(ridesUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/home", nrpkg.TraceHandler("Rides.GetDashboard", h.ridesHTTP.GetDashboard))
	api.GET("/rides", nrpkg.TraceHandler("Rides.SearchRides", h.ridesHTTP.SearchRides))
	api.GET("/rides/:id", nrpkg.TraceHandler("Rides.GetRide", h.ridesHTTP.GetRide))
	api.GET("/map", nrpkg.TraceHandler("Rides.GetRideMap", h.ridesHTTP.GetRideMap))
}
