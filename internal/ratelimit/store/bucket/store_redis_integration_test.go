//go:build integration

package bucket

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveygate/pkg/testutil/containers"
)

func TestRedisBucketStore(t *testing.T) {
	ctx := context.Background()
	rc := containers.NewRedisContainer(t)
	store := NewRedisBucketStore(rc.Client)
	fixed := time.Now().Truncate(time.Hour).Add(time.Hour).Add(10 * time.Second)
	store.now = func() time.Time { return fixed }

	for want := 1; want >= 0; want-- {
		res, err := store.Allow(ctx, "user:1:read", 2, time.Hour)
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, want, res.Remaining)
	}

	res, err := store.Allow(ctx, "user:1:read", 2, time.Hour)
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, fixed.Truncate(time.Hour).Add(time.Hour), res.ResetAt)
	assert.Positive(t, res.RetryAfter)

	keys, err := rc.Client.Keys(ctx, keyPrefix+"*").Result()
	require.NoError(t, err)
	require.Len(t, keys, 1)
	ttl, err := rc.Client.PTTL(ctx, keys[0]).Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)

	t.Run("next window starts fresh", func(t *testing.T) {
		store.now = func() time.Time { return fixed.Add(time.Hour) }
		res, err := store.Allow(ctx, "user:1:read", 2, time.Hour)
		require.NoError(t, err)
		assert.True(t, res.Allowed)
	})
}
