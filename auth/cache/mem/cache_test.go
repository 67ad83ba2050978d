package mem

import (
	"context"
	"errors"
	"testing"
	"time"

	"expensedesk/auth/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_SetGet(t *testing.T) {
	ctx := context.Background()
	c := New()

	err := c.Set(ctx, "account:bob@co.com:staff", []byte(`{"email":"bob@co.com"}`), time.Hour)
	require.NoError(t, err)

	got, err := c.Get(ctx, "account:bob@co.com:staff")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"email":"bob@co.com"}`), got)
}

func TestCache_Miss(t *testing.T) {
	c := New()

	_, err := c.Get(context.Background(), "account:nobody:staff")
	assert.True(t, errors.Is(err, cache.ErrMiss))
}

func TestCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c := New()
	now := time.Now()
	c.now = func() time.Time { return now }

	err := c.Set(ctx, "k", []byte("v"), time.Hour)
	require.NoError(t, err)

	_, err = c.Get(ctx, "k")
	require.NoError(t, err)

	now = now.Add(time.Hour + time.Second)
	_, err = c.Get(ctx, "k")
	assert.True(t, errors.Is(err, cache.ErrMiss))

	// expired entry is evicted, not just hidden
	c.mu.RLock()
	_, ok := c.entries["k"]
	c.mu.RUnlock()
	assert.False(t, ok)
}

func TestCache_Overwrite(t *testing.T) {
	ctx := context.Background()
	c := New()

	require.NoError(t, c.Set(ctx, "k", []byte("old"), time.Hour))
	require.NoError(t, c.Set(ctx, "k", []byte("new"), time.Hour))

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)
}
