package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/sparkrides/internal/pkg/logger"
	"github.com/piresc/sparkrides/internal/pkg/models"
	"github.com/piresc/sparkrides/internal/utils"
	"github.com/piresc/sparkrides/services/routes"
)

// ErrInvalidCoordinates is the error code returned for unparseable or out of
// range endpoints
const ErrInvalidCoordinates = "invalid_coordinates"

// RoadRouteResponse is the body of the road-route endpoint. Coordinates are
// [lat, lng] pairs, or null when no route is available.
type RoadRouteResponse struct {
	Coordinates models.RoutePath `json:"coordinates"`
	Error       string           `json:"error,omitempty"`
}

// RouteHandler handles HTTP requests for driving routes
type RouteHandler struct {
	routeUC routes.RouteUC
}

// NewRouteHandler creates a new route HTTP handler
func NewRouteHandler(routeUC routes.RouteUC) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
	}
}

// GetRoadRoute returns the driving path between two points
func (h *RouteHandler) GetRoadRoute(c echo.Context) error {
	origin, err := utils.ParseCoordinate(c.QueryParam("origin_lat"), c.QueryParam("origin_lng"))
	if err != nil {
		return h.invalidCoordinates(c, "origin", err)
	}
	destination, err := utils.ParseCoordinate(c.QueryParam("destination_lat"), c.QueryParam("destination_lng"))
	if err != nil {
		return h.invalidCoordinates(c, "destination", err)
	}

	path := h.routeUC.ResolveRoute(c.Request().Context(), origin, destination)
	return c.JSON(http.StatusOK, RoadRouteResponse{Coordinates: path})
}

func (h *RouteHandler) invalidCoordinates(c echo.Context, endpoint string, err error) error {
	logger.Debug("Rejected road-route request",
		logger.String("endpoint", endpoint),
		logger.Err(err))
	return c.JSON(http.StatusBadRequest, RoadRouteResponse{Error: ErrInvalidCoordinates})
}

// ClearCache drops every resolved route
func (h *RouteHandler) ClearCache(c echo.Context) error {
	n := h.routeUC.ClearCache()
	return c.JSON(http.StatusOK, map[string]int{"cleared": n})
}
