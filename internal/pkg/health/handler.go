package health

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	BuildTime   string    `json:"build_time"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// DefaultBuildInfo contains default build information
var DefaultBuildInfo = BuildInfo{
	Version:   "development",
	GitCommit: "unknown",
	BuildTime: "unknown",
	GoVersion: runtime.Version(),
}

// NewPingHandler creates a handler for the ping endpoint
func NewPingHandler(serviceName, version string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	buildInfo := DefaultBuildInfo
	buildInfo.ServiceName = serviceName
	buildInfo.Hostname = hostname
	if version != "" {
		buildInfo.Version = version
	}
	if gitCommit := os.Getenv("GIT_COMMIT"); gitCommit != "" {
		buildInfo.GitCommit = gitCommit
	}
	if buildTime := os.Getenv("BUILD_TIME"); buildTime != "" {
		buildInfo.BuildTime = buildTime
	}

	return func(c echo.Context) error {
		info := buildInfo
		info.ServerTime = time.Now()
		return c.JSON(http.StatusOK, info)
	}
}

// RegisterHealthEndpoints registers the liveness, readiness and dependency
// endpoints. healthService may be nil when the service has no dependencies.
func RegisterHealthEndpoints(e *echo.Echo, serviceName, version string, healthService *HealthService) {
	if healthService == nil {
		healthService = NewHealthService(nil)
	}

	e.GET("/ping", NewPingHandler(serviceName, version))

	ok := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}
	e.GET("/health", ok)
	e.GET("/healthz", ok)

	e.GET("/ready", func(c echo.Context) error {
		response := healthService.Check(c.Request().Context(), 3*time.Second)
		if response.Status != StatusHealthy {
			response.Service = serviceName
			return c.JSON(http.StatusServiceUnavailable, response)
		}
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/health/detailed", func(c echo.Context) error {
		response := healthService.Check(c.Request().Context(), 5*time.Second)
		response.Service = serviceName
		response.Version = version
		response.Details = healthService.Details()

		statusCode := http.StatusOK
		if response.Status != StatusHealthy {
			statusCode = http.StatusServiceUnavailable
		}
		return c.JSON(statusCode, response)
	})
}
