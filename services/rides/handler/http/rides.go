package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/sparkrides/internal/pkg/logger"
	"github.com/piresc/sparkrides/internal/pkg/models"
	nrpkg "github.com/piresc/sparkrides/internal/pkg/newrelic"
	"github.com/piresc/sparkrides/internal/utils"
	"github.com/piresc/sparkrides/services/rides"
)

// RidesHandler handles HTTP requests for ride operations
type RidesHandler struct {
	rideUC rides.RideUC
}

// NewRidesHandler creates a new ride HTTP handler
func NewRidesHandler(rideUC rides.RideUC) *RidesHandler {
	return &RidesHandler{
		rideUC: rideUC,
	}
}

// SearchRides lists rides matching the query string filters
func (h *RidesHandler) SearchRides(c echo.Context) error {
	search, err := parseRideSearch(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	ctx := c.Request().Context()
	result, err := h.rideUC.SearchRides(ctx, search)
	if err != nil {
		if errors.Is(err, rides.ErrInvalidSearch) {
			return utils.BadRequestResponse(c, err.Error())
		}
		nrpkg.NoticeTransactionError(ctx, err)
		logger.ErrorCtx(ctx, "Failed to search rides",
			logger.String("search", search.Search),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to search rides")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rides retrieved successfully", map[string]interface{}{
		"rides":       result,
		"match_count": len(result),
	})
}

// GetRide returns a single ride
func (h *RidesHandler) GetRide(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return utils.BadRequestResponse(c, "invalid ride id")
	}

	ctx := c.Request().Context()
	ride, err := h.rideUC.GetRide(ctx, id)
	if err != nil {
		if errors.Is(err, rides.ErrRideNotFound) {
			return utils.NotFoundResponse(c, "ride not found")
		}
		nrpkg.NoticeTransactionError(ctx, err)
		logger.ErrorCtx(ctx, "Failed to get ride",
			logger.Any("ride_id", id),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to get ride")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride retrieved successfully", ride)
}

// GetRideMap returns the plotted network of available rides
func (h *RidesHandler) GetRideMap(c echo.Context) error {
	ctx := c.Request().Context()
	rideMap, err := h.rideUC.BuildRideMap(ctx)
	if err != nil {
		nrpkg.NoticeTransactionError(ctx, err)
		logger.ErrorCtx(ctx, "Failed to build ride map", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to build ride map")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride map built successfully", rideMap)
}

// GetDashboard returns the home page summary
func (h *RidesHandler) GetDashboard(c echo.Context) error {
	ctx := c.Request().Context()
	dashboard, err := h.rideUC.GetDashboard(ctx)
	if err != nil {
		nrpkg.NoticeTransactionError(ctx, err)
		logger.ErrorCtx(ctx, "Failed to build dashboard", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to build dashboard")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

func parseRideSearch(c echo.Context) (models.RideSearch, error) {
	search := models.RideSearch{
		Search: c.QueryParam("search"),
	}

	if raw := strings.TrimSpace(c.QueryParam("travel_date")); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return search, errors.New("travel_date must be YYYY-MM-DD")
		}
		search.TravelDate = &date
	}

	if raw := strings.TrimSpace(c.QueryParam("minimum_seats")); raw != "" {
		seats, err := strconv.Atoi(raw)
		if err != nil {
			return search, errors.New("minimum_seats must be a whole number")
		}
		search.MinimumSeats = seats
	}

	switch strings.ToLower(strings.TrimSpace(c.QueryParam("passengers_only"))) {
	case "", "0", "false", "off":
	case "1", "true", "on":
		search.PassengersOnly = true
	default:
		return search, errors.New("passengers_only must be a boolean")
	}

	return search, nil
}
