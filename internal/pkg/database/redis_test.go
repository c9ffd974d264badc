package database

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/piresc/sparkrides/internal/pkg/logger"
	"github.com/piresc/sparkrides/internal/pkg/models"
	"github.com/piresc/sparkrides/internal/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redisConfigFor(t *testing.T, mr *miniredis.Miniredis) models.RedisConfig {
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	return models.RedisConfig{Host: mr.Host(), Port: port, PoolSize: 2}
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(context.Background(), redisConfigFor(t, mr),
		retry.New(retry.DefaultConfig("redis"), logger.NewNopLogger()))
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Ping(context.Background()))
	require.NoError(t, client.GetClient().Set(context.Background(), "k", "v", 0).Err())
	got, err := mr.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestNewRedisClient_ConnectionError(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := redisConfigFor(t, mr)
	mr.Close()

	retryCfg := retry.DefaultConfig("redis")
	retryCfg.MaxRetries = 1
	retryCfg.BaseDelay = time.Millisecond

	client, err := NewRedisClient(context.Background(), cfg, retry.New(retryCfg, logger.NewNopLogger()))
	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}
