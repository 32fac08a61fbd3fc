package flex

import (
	"testing"

	"github.com/npillmayer/flexlayout/core/dimen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestCompactValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	assert.True(t, Undefined().IsUndefined())
	assert.True(t, CompactValue{}.IsUndefined(), "zero value must be undefined")
	assert.True(t, Point(dimen.Undefined).IsUndefined(), "NaN length must collapse to undefined")
	assert.True(t, Auto().IsDefined())
	assert.True(t, Auto().IsAuto())
	assert.Equal(t, UnitPercent, Percent(10).Unit())
	//
	assert.Equal(t, float32(12), Point(12).Resolve(dimen.Undefined))
	assert.Equal(t, float32(25), Percent(25).Resolve(100))
	assert.True(t, dimen.IsUndefined(Percent(25).Resolve(dimen.Undefined)))
	assert.True(t, dimen.IsUndefined(Auto().Resolve(100)))
	assert.Equal(t, float32(0), Auto().resolveMargin(100))
	//
	assert.True(t, Point(1).Equals(Point(1.00001)))
	assert.False(t, Point(1).Equals(Percent(1)))
	assert.True(t, Auto().Equals(Auto()))
	assert.False(t, Auto().Equals(Undefined()))
	assert.Equal(t, "50%", Percent(50).String())
}

func TestFloatOption(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	assert.True(t, NoFloat().IsNone())
	assert.True(t, SomeFloat(dimen.Undefined).IsNone())
	assert.Equal(t, float32(3), SomeFloat(3).Unwrap())
	assert.Equal(t, float32(7), NoFloat().OrElse(7))
	assert.True(t, dimen.IsUndefined(NoFloat().Unwrap()))
}

func TestEdgeValuesEquality(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	a := NewValues[[EdgeCount]CompactValue](Point(4))
	b := NewValues[[EdgeCount]CompactValue](Point(4))
	assert.Equal(t, EdgeCount, a.Len())
	assert.True(t, a.Equals(b))
	for e := 0; e < EdgeCount; e++ {
		c := b
		c.Set(e, Point(5))
		assert.False(t, a.Equals(c), "changing slot %d must break equality", e)
		c.Set(e, Point(4))
		assert.True(t, a.Equals(c), "restoring slot %d must restore equality", e)
	}
	var undefined EdgeValues
	assert.True(t, undefined.Get(int(EdgeTop)).IsUndefined())
	assert.False(t, undefined.Equals(a))
}

func TestStyleSanitize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	tree := NewTree(nil)
	n := tree.NewNode()
	tree.SetWidth(n, Point(-10))
	tree.SetPadding(n, EdgeLeft, Point(-3))
	tree.SetMargin(n, EdgeLeft, Point(-3))
	tree.SetFlexGrow(n, -1)
	tree.SetStyle(n, func(s *Style) { s.AspectRatio = SomeFloat(-2) })
	s := tree.Style(n)
	assert.Equal(t, Point(0), s.Dimensions.Get(int(DimensionWidth)))
	assert.Equal(t, Point(0), s.Padding.Get(int(EdgeLeft)))
	assert.Equal(t, Point(-3), s.Margin.Get(int(EdgeLeft)), "margins may be negative")
	assert.Equal(t, float32(0), s.FlexGrow.Unwrap())
	assert.True(t, s.AspectRatio.IsNone())
}

func TestDefaultStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	s := DefaultStyle(nil)
	assert.Equal(t, FlexDirectionColumn, s.FlexDirection)
	assert.Equal(t, AlignStretch, s.AlignItems)
	assert.Equal(t, "", s.String())
	web := NewConfig()
	web.UseWebDefaults = true
	s = DefaultStyle(web)
	assert.Equal(t, FlexDirectionRow, s.FlexDirection)
	assert.Equal(t, AlignStretch, s.AlignContent)
	assert.Contains(t, s.String(), "flex-direction: row")
}
