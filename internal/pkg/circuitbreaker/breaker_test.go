package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/piresc/sparkrides/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errProvider = errors.New("provider down")

func newTestBreaker(threshold uint32) (*CircuitBreaker, *time.Time) {
	cfg := DefaultConfig("provider.test")
	cfg.FailureThreshold = threshold
	cfg.Timeout = time.Minute
	cb := New(cfg, logger.NewNopLogger())

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	cb.now = func() time.Time { return now }
	cb.expiry = now.Add(cfg.Interval)
	return cb, &now
}

func fail(context.Context) error    { return errProvider }
func succeed(context.Context) error { return nil }

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb, _ := newTestBreaker(3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, cb.Execute(ctx, fail), errProvider)
	}
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(ctx, func(context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitBreakerOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	cb, now := newTestBreaker(1)
	ctx := context.Background()

	require.Error(t, cb.Execute(ctx, fail))
	require.Equal(t, StateOpen, cb.State())

	*now = now.Add(2 * time.Minute)
	require.NoError(t, cb.Execute(ctx, succeed))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb, now := newTestBreaker(1)
	ctx := context.Background()

	require.Error(t, cb.Execute(ctx, fail))
	*now = now.Add(2 * time.Minute)

	require.Error(t, cb.Execute(ctx, fail))
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_SuccessResetsConsecutiveFailures(t *testing.T) {
	cb, _ := newTestBreaker(2)
	ctx := context.Background()

	require.Error(t, cb.Execute(ctx, fail))
	require.NoError(t, cb.Execute(ctx, succeed))
	require.Error(t, cb.Execute(ctx, fail))

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, uint32(1), cb.Counts().ConsecutiveFailures)
}

func TestManager_OneBreakerPerName(t *testing.T) {
	var transitions []string
	m := NewManagerWithConfig(logger.NewNopLogger(), func(name string) Config {
		cfg := DefaultConfig(name)
		cfg.FailureThreshold = 1
		cfg.OnStateChange = func(name string, from, to State) {
			transitions = append(transitions, name+":"+to.String())
		}
		return cfg
	})
	ctx := context.Background()

	require.Error(t, m.Execute(ctx, "a.test", fail))
	require.NoError(t, m.Execute(ctx, "b.test", succeed))

	assert.Same(t, m.GetOrCreate("a.test"), m.GetOrCreate("a.test"))
	stats := m.GetStats()
	require.Len(t, stats, 2)
	assert.Equal(t, "OPEN", stats["a.test"].State)
	assert.Equal(t, "CLOSED", stats["b.test"].State)
	assert.Equal(t, []string{"a.test:OPEN"}, transitions)
}
