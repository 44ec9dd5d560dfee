//go:build integration

package redis

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/platform/config"
	"portfolio/pkg/testutil/containers"
)

func TestClientAgainstRedis(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	ctx := context.Background()

	client, err := New(ctx, config.RedisConfig{URL: rc.URL, PoolSize: 4})
	require.NoError(t, err)
	require.NotNil(t, client)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.Health(ctx))

	reg := prometheus.NewRegistry()
	require.NoError(t, client.RegisterPoolMetrics(reg))
	count, err := testutil.GatherAndCount(reg, "portfolio_redis_pool_total_conns")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
