package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/sparkrides/internal/pkg/models"
	"github.com/piresc/sparkrides/services/rides"
	"github.com/piresc/sparkrides/services/rides/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRidesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)

	assert.NotNil(t, handler)
	assert.Equal(t, mockRideUC, handler.rideUC)
}

func TestRidesHandler_SearchRides(t *testing.T) {
	travelDate := time.Date(2026, 11, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		query          string
		mockSetup      func(*mocks.MockRideUC)
		expectedStatus int
	}{
		{
			name:  "Success",
			query: "?search=zach&travel_date=2026-11-03&minimum_seats=2&passengers_only=on",
			mockSetup: func(mockUC *mocks.MockRideUC) {
				mockUC.EXPECT().
					SearchRides(gomock.Any(), models.RideSearch{
						Search:         "zach",
						TravelDate:     &travelDate,
						MinimumSeats:   2,
						PassengersOnly: true,
					}).
					Return([]*models.Ride{{ID: 1, FirstName: "Zach"}}, nil).
					Times(1)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "No filters",
			query: "",
			mockSetup: func(mockUC *mocks.MockRideUC) {
				mockUC.EXPECT().
					SearchRides(gomock.Any(), models.RideSearch{}).
					Return([]*models.Ride{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid travel date",
			query:          "?travel_date=03/11/2026",
			mockSetup:      func(mockUC *mocks.MockRideUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid minimum seats",
			query:          "?minimum_seats=two",
			mockSetup:      func(mockUC *mocks.MockRideUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid passengers flag",
			query:          "?passengers_only=maybe",
			mockSetup:      func(mockUC *mocks.MockRideUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "Rejected by use case",
			query: "?minimum_seats=-1",
			mockSetup: func(mockUC *mocks.MockRideUC) {
				mockUC.EXPECT().
					SearchRides(gomock.Any(), gomock.Any()).
					Return(nil, rides.ErrInvalidSearch)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "Repository failure",
			query: "?search=zach",
			mockSetup: func(mockUC *mocks.MockRideUC) {
				mockUC.EXPECT().
					SearchRides(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database unavailable"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRideUC := mocks.NewMockRideUC(ctrl)
			tt.mockSetup(mockRideUC)
			handler := NewRidesHandler(mockRideUC)

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/rides"+tt.query, nil), rec)

			err := handler.SearchRides(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestRidesHandler_SearchRides_Body(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	mockRideUC.EXPECT().
		SearchRides(gomock.Any(), gomock.Any()).
		Return([]*models.Ride{{ID: 1, FirstName: "Zach"}, {ID: 2, FirstName: "Maya"}}, nil)
	handler := NewRidesHandler(mockRideUC)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/rides?search=a", nil), rec)

	require.NoError(t, handler.SearchRides(c))

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Rides      []models.Ride `json:"rides"`
			MatchCount int           `json:"match_count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 2, body.Data.MatchCount)
	assert.Equal(t, "Maya", body.Data.Rides[1].FirstName)
}

func TestRidesHandler_GetRide(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		mockSetup      func(*mocks.MockRideUC)
		expectedStatus int
	}{
		{
			name: "Success",
			id:   "7",
			mockSetup: func(mockUC *mocks.MockRideUC) {
				mockUC.EXPECT().GetRide(gomock.Any(), int64(7)).Return(&models.Ride{ID: 7}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid id",
			id:             "abc",
			mockSetup:      func(mockUC *mocks.MockRideUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Not found",
			id:   "8",
			mockSetup: func(mockUC *mocks.MockRideUC) {
				mockUC.EXPECT().GetRide(gomock.Any(), int64(8)).Return(nil, rides.ErrRideNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "Repository failure",
			id:   "9",
			mockSetup: func(mockUC *mocks.MockRideUC) {
				mockUC.EXPECT().GetRide(gomock.Any(), int64(9)).Return(nil, errors.New("timeout"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRideUC := mocks.NewMockRideUC(ctrl)
			tt.mockSetup(mockRideUC)
			handler := NewRidesHandler(mockRideUC)

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			c.SetPath("/api/rides/:id")
			c.SetParamNames("id")
			c.SetParamValues(tt.id)

			err := handler.GetRide(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestRidesHandler_GetRideMap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	gomock.InOrder(
		mockRideUC.EXPECT().BuildRideMap(gomock.Any()).Return(&models.RideMap{NetworkRides: 4, NetworkSeats: 9}, nil),
		mockRideUC.EXPECT().BuildRideMap(gomock.Any()).Return(nil, errors.New("database unavailable")),
	)
	handler := NewRidesHandler(mockRideUC)
	e := echo.New()

	rec := httptest.NewRecorder()
	require.NoError(t, handler.GetRideMap(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/map", nil), rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"network_seats":9`)

	rec = httptest.NewRecorder()
	require.NoError(t, handler.GetRideMap(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/map", nil), rec)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRidesHandler_GetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dashboard := &models.Dashboard{
		FeaturedMatches: []models.FeaturedMatch{
			{Ride: &models.Ride{ID: 1, FirstName: "Zach"}, Compatibility: "96%"},
		},
		PopularDestinations: []models.Destination{{City: "San Jose", State: "CA", Total: 3}},
		Stats:               models.RideStats{TotalRides: 9, OpenRides: 2, OpenSeats: 14},
		UpcomingPreview:     []*models.Ride{},
	}

	mockRideUC := mocks.NewMockRideUC(ctrl)
	gomock.InOrder(
		mockRideUC.EXPECT().GetDashboard(gomock.Any()).Return(dashboard, nil),
		mockRideUC.EXPECT().GetDashboard(gomock.Any()).Return(nil, errors.New("database unavailable")),
	)
	handler := NewRidesHandler(mockRideUC)
	e := echo.New()

	rec := httptest.NewRecorder()
	require.NoError(t, handler.GetDashboard(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/home", nil), rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data models.Dashboard `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 14, body.Data.Stats.OpenSeats)
	require.Len(t, body.Data.FeaturedMatches, 1)
	assert.Equal(t, "96%", body.Data.FeaturedMatches[0].Compatibility)
	assert.Equal(t, "Zach", body.Data.FeaturedMatches[0].Ride.FirstName)

	rec = httptest.NewRecorder()
	require.NoError(t, handler.GetDashboard(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/home", nil), rec)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
