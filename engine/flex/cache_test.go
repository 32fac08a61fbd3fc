package flex

import (
	"testing"

	"github.com/npillmayer/flexlayout/core/dimen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func measurement(w, h float32, wm, hm MeasureMode, cw, ch float32) CachedMeasurement {
	return CachedMeasurement{
		AvailableWidth:    w,
		AvailableHeight:   h,
		WidthMeasureMode:  wm,
		HeightMeasureMode: hm,
		ComputedWidth:     cw,
		ComputedHeight:    ch,
	}
}

func TestCacheFindAfterInsert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	var c MeasurementCache
	_, ok := c.Find(100, 50, MeasureModeExactly, MeasureModeAtMost)
	assert.False(t, ok, "empty cache must not find anything")
	e := measurement(100, 50, MeasureModeExactly, MeasureModeAtMost, 100, 20)
	c.Insert(e)
	found, ok := c.Find(100, 50, MeasureModeExactly, MeasureModeAtMost)
	require.True(t, ok)
	assert.True(t, found.Equals(e))
	assert.Equal(t, float32(20), found.ComputedHeight)
	_, ok = c.Find(100, 51, MeasureModeExactly, MeasureModeAtMost)
	assert.False(t, ok, "different height must not match")
	_, ok = c.Find(100, 50, MeasureModeAtMost, MeasureModeAtMost)
	assert.False(t, ok, "different mode must not match")
}

func TestCacheWildcard(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	var c MeasurementCache
	c.Insert(measurement(dimen.Undefined, 50, MeasureModeUndefined, MeasureModeExactly, 42, 50))
	found, ok := c.Find(123, 50, MeasureModeUndefined, MeasureModeExactly)
	require.True(t, ok, "undefined width in entry must match any width")
	assert.Equal(t, float32(42), found.ComputedWidth)
	_, ok = c.Find(dimen.Undefined, 50, MeasureModeUndefined, MeasureModeExactly)
	assert.True(t, ok)
	_, ok = c.Find(123, 60, MeasureModeUndefined, MeasureModeExactly)
	assert.False(t, ok, "wildcard on width must not affect height")
	//
	a := measurement(10, 10, MeasureModeExactly, MeasureModeExactly, 10, 10)
	b := measurement(dimen.Undefined, 10, MeasureModeExactly, MeasureModeExactly, 10, dimen.Undefined)
	assert.True(t, a.Equals(b))
	assert.True(t, b.Equals(a))
}

func TestCacheCapacity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	var c MeasurementCache
	for i := 0; i < 3*MaxCachedMeasurements; i++ {
		c.Insert(measurement(float32(i), 0, MeasureModeAtMost, MeasureModeExactly, float32(i), 0))
		assert.LessOrEqual(t, c.Len(), MaxCachedMeasurements)
	}
	assert.Equal(t, MaxCachedMeasurements, c.Len())
	entries := c.Entries()
	require.Len(t, entries, MaxCachedMeasurements)
	// oldest entries have been evicted first
	first := float32(3*MaxCachedMeasurements - MaxCachedMeasurements)
	assert.Equal(t, first, entries[0].AvailableWidth)
	assert.Equal(t, float32(3*MaxCachedMeasurements-1), entries[MaxCachedMeasurements-1].AvailableWidth)
	_, ok := c.Find(0, 0, MeasureModeAtMost, MeasureModeExactly)
	assert.False(t, ok)
	_, ok = c.Find(first, 0, MeasureModeAtMost, MeasureModeExactly)
	assert.True(t, ok)
	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Entries())
}

func TestCanUseCachedMeasurement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	config := NewConfig()
	last := measurement(dimen.Undefined, dimen.Undefined, MeasureModeUndefined, MeasureModeUndefined, 42, 17)
	assert.True(t, canUseCachedMeasurement(MeasureModeUndefined, dimen.Undefined,
		MeasureModeUndefined, dimen.Undefined, last, 0, 0, config), "identical constraints")
	assert.True(t, canUseCachedMeasurement(MeasureModeExactly, 42,
		MeasureModeExactly, 17, last, 0, 0, config), "exact size matches measured size")
	assert.True(t, canUseCachedMeasurement(MeasureModeAtMost, 100,
		MeasureModeUndefined, dimen.Undefined, last, 0, 0, config), "unconstrained result fits")
	assert.False(t, canUseCachedMeasurement(MeasureModeAtMost, 30,
		MeasureModeUndefined, dimen.Undefined, last, 0, 0, config), "result does not fit")
	//
	last = measurement(100, dimen.Undefined, MeasureModeAtMost, MeasureModeUndefined, 60, 17)
	assert.True(t, canUseCachedMeasurement(MeasureModeAtMost, 80,
		MeasureModeUndefined, dimen.Undefined, last, 0, 0, config), "stricter but still valid")
	assert.False(t, canUseCachedMeasurement(MeasureModeAtMost, 50,
		MeasureModeUndefined, dimen.Undefined, last, 0, 0, config), "stricter and too small")
	assert.False(t, canUseCachedMeasurement(MeasureModeAtMost, 80, MeasureModeUndefined, dimen.Undefined,
		NewCachedMeasurement(), 0, 0, config), "empty entry")
	assert.True(t, NewCachedMeasurement().isEmpty())
	assert.False(t, last.isEmpty())
}
