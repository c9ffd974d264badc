package health

import (
	"context"
	"sort"
	"time"

	"github.com/piresc/sparkrides/internal/pkg/logger"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// Pinger is satisfied by the PostgreSQL and Redis clients
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingChecker reports a dependency healthy when it answers Ping
type PingChecker struct {
	pinger Pinger
}

// NewPingChecker creates a checker for p
func NewPingChecker(p Pinger) *PingChecker {
	return &PingChecker{pinger: p}
}

// CheckHealth pings the dependency
func (p *PingChecker) CheckHealth(ctx context.Context) error {
	return p.pinger.Ping(ctx)
}

// CheckerFunc adapts a function to HealthChecker
type CheckerFunc func(ctx context.Context) error

// CheckHealth calls f
func (f CheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

type namedChecker struct {
	name    string
	checker HealthChecker
}

// InfoFunc reports state shown by the detailed endpoint. It never affects
// the health status.
type InfoFunc func() interface{}

type namedInfo struct {
	name string
	info InfoFunc
}

// HealthService manages health checks for multiple dependencies
type HealthService struct {
	checkers []namedChecker
	infos    []namedInfo
	logger   *logger.ZapLogger
}

// NewHealthService creates a new health service
func NewHealthService(l *logger.ZapLogger) *HealthService {
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &HealthService{logger: l}
}

// AddChecker registers a health checker for a dependency
func (h *HealthService) AddChecker(name string, checker HealthChecker) {
	h.checkers = append(h.checkers, namedChecker{name: name, checker: checker})
	sort.Slice(h.checkers, func(i, j int) bool { return h.checkers[i].name < h.checkers[j].name })
}

// AddInfo registers extra state reported under details
func (h *HealthService) AddInfo(name string, info InfoFunc) {
	h.infos = append(h.infos, namedInfo{name: name, info: info})
}

// Details collects every registered InfoFunc, or nil when there are none
func (h *HealthService) Details() map[string]interface{} {
	if len(h.infos) == 0 {
		return nil
	}
	details := make(map[string]interface{}, len(h.infos))
	for _, ni := range h.infos {
		details[ni.name] = ni.info()
	}
	return details
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service,omitempty"`
	Version      string                    `json:"version,omitempty"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
	Details      map[string]interface{}    `json:"details,omitempty"`
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Status  string `json:"status"`
	Latency string `json:"latency"`
	Error   string `json:"error,omitempty"`
}

// Check runs every registered checker, each bounded by timeout
func (h *HealthService) Check(ctx context.Context, timeout time.Duration) HealthResponse {
	response := HealthResponse{
		Status:       StatusHealthy,
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo, len(h.checkers)),
	}

	for _, nc := range h.checkers {
		checkCtx, cancel := context.WithTimeout(ctx, timeout)
		start := time.Now()
		err := nc.checker.CheckHealth(checkCtx)
		latency := time.Since(start)
		cancel()

		info := DependencyInfo{Status: StatusHealthy, Latency: latency.String()}
		if err != nil {
			h.logger.Error("Health check failed",
				logger.String("dependency", nc.name),
				logger.Err(err))
			info.Status = StatusUnhealthy
			info.Error = err.Error()
			response.Status = StatusUnhealthy
		}
		response.Dependencies[nc.name] = info
	}

	return response
}
