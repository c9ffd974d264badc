package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	return e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newTestContext()

	err := SuccessResponse(c, http.StatusOK, "Rides retrieved", map[string]interface{}{"count": 2})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "Rides retrieved", response.Message)
	assert.Equal(t, map[string]interface{}{"count": float64(2)}, response.Data)
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name       string
		respond    func(c echo.Context) error
		wantStatus int
		wantError  string
	}{
		{
			name:       "bad request",
			respond:    func(c echo.Context) error { return BadRequestResponse(c, "minimum_seats must be a number") },
			wantStatus: http.StatusBadRequest,
			wantError:  "minimum_seats must be a number",
		},
		{
			name:       "unauthorized default",
			respond:    func(c echo.Context) error { return UnauthorizedResponse(c, "") },
			wantStatus: http.StatusUnauthorized,
			wantError:  "Unauthorized",
		},
		{
			name:       "not found default",
			respond:    func(c echo.Context) error { return NotFoundResponse(c, "") },
			wantStatus: http.StatusNotFound,
			wantError:  "Not Found",
		},
		{
			name:       "internal default",
			respond:    func(c echo.Context) error { return InternalServerErrorResponse(c, "") },
			wantStatus: http.StatusInternalServerError,
			wantError:  "Internal Server Error",
		},
		{
			name:       "custom status",
			respond:    func(c echo.Context) error { return ErrorJSON(c, http.StatusTooManyRequests, "Rate limit exceeded") },
			wantStatus: http.StatusTooManyRequests,
			wantError:  "Rate limit exceeded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()
			require.NoError(t, tt.respond(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.False(t, response.Success)
			assert.Equal(t, tt.wantError, response.Error)
			assert.Equal(t, tt.wantStatus, response.Code)
		})
	}
}
