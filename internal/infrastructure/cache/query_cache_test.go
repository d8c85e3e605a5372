package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestQueryCache_GetSet(t *testing.T) {
	c := NewQueryCache(time.Minute, time.Minute)

	_, ok := c.Get("profit-loss", "all||")
	assert.False(t, ok)

	c.Set("profit-loss", c.Generation("profit-loss"), "all||", []string{"a"})
	v, ok := c.Get("profit-loss", "all||")
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, v)

	_, ok = c.Get("balance-sheet", "all||")
	assert.False(t, ok)

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(2), stats.Misses)
	assert.Equal(t, 1, stats.Entries)
}

func TestQueryCache_InvalidateKind(t *testing.T) {
	c := NewQueryCache(time.Minute, time.Minute)
	c.Set("profit-loss", 0, "all||", 1)
	c.Set("cash-flow", 0, "all||", 2)

	c.Invalidate("profit-loss")

	_, ok := c.Get("profit-loss", "all||")
	assert.False(t, ok)
	v, ok := c.Get("cash-flow", "all||")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestQueryCache_StaleGenerationIsNeverServed(t *testing.T) {
	c := NewQueryCache(time.Minute, time.Minute)

	// a reader captures the generation, then an update invalidates
	gen := c.Generation("profit-loss")
	c.Invalidate("profit-loss")
	c.Set("profit-loss", gen, "all||", "stale")

	_, ok := c.Get("profit-loss", "all||")
	assert.False(t, ok)
}

func TestQueryCache_Expiry(t *testing.T) {
	c := NewQueryCache(10*time.Millisecond, time.Minute)
	c.Set("profit-loss", 0, "k", 1)
	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("profit-loss", "k")
	assert.False(t, ok)
}

func TestQueryCache_NilIsDisabled(t *testing.T) {
	var c *QueryCache
	c.Set("profit-loss", c.Generation("profit-loss"), "k", 1)
	_, ok := c.Get("profit-loss", "k")
	assert.False(t, ok)
	c.Invalidate("profit-loss")
	assert.Equal(t, Stats{}, c.Stats())
}

func TestQueryCache_LogsInvalidation(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := NewQueryCache(time.Minute, time.Minute, WithLogger(zap.New(core)))
	c.Set("profit-loss", 0, "a", 1)
	c.Set("profit-loss", 0, "b", 2)

	c.Invalidate("profit-loss")

	entries := logs.FilterMessage("query cache invalidated").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(2), entries[0].ContextMap()["removed"])
}
