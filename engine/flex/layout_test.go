package flex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/npillmayer/flexlayout/core/dimen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedSize(w, h float32) MeasureFunc {
	return func(*Tree, NodeID, float32, MeasureMode, float32, MeasureMode) Size {
		return Size{Width: w, Height: h}
	}
}

func rect(x, y, w, h float32) dimen.Rect {
	return dimen.Rect{TopL: dimen.Point{X: x, Y: y}, Width: w, Height: h}
}

var approx = cmpopts.EquateApprox(0, 0.001)

func assertRect(t *testing.T, tree *Tree, n NodeID, want dimen.Rect, msg string) {
	t.Helper()
	if diff := cmp.Diff(want, tree.Layout(n).Rect(), approx); diff != "" {
		t.Errorf("%s: node %d layout mismatch (-want +got):\n%s", msg, n, diff)
	}
}

// rowOf creates a row container of the given size with count children.
// setup is called for every child.
func rowOf(tree *Tree, w, h CompactValue, count int, setup func(i int, child NodeID)) (NodeID, []NodeID) {
	root := tree.NewNode()
	tree.SetFlexDirection(root, FlexDirectionRow)
	tree.SetWidth(root, w)
	tree.SetHeight(root, h)
	children := make([]NodeID, count)
	for i := range children {
		children[i] = tree.NewNode()
		tree.AppendChild(root, children[i])
		if setup != nil {
			setup(i, children[i])
		}
	}
	return root, children
}

func TestLayoutGrowChildFillsRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	tree := NewTree(nil)
	root := tree.NewNode()
	tree.SetWidth(root, Point(100))
	tree.SetHeight(root, Point(100))
	child := tree.NewNode()
	tree.SetFlexGrow(child, 1)
	tree.AppendChild(root, child)
	tree.CalculateLayout(root, dimen.Undefined, dimen.Undefined, DirectionLTR)
	assertRect(t, tree, root, rect(0, 0, 100, 100), "root")
	assertRect(t, tree, child, rect(0, 0, 100, 100), "child")
	assert.True(t, tree.HasNewLayout(child))
}

func TestLayoutEqualGrowShares(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	tree := NewTree(nil)
	root, children := rowOf(tree, Point(300), Undefined(), 3, func(i int, c NodeID) {
		tree.SetFlexGrow(c, 1)
		tree.SetFlexBasis(c, Point(0))
	})
	tree.CalculateLayout(root, dimen.Undefined, dimen.Undefined, DirectionLTR)
	for i, c := range children {
		l := tree.Layout(c)
		assert.InDelta(t, 100, l.Width(), 0.001, "width of child %d", i)
		assert.InDelta(t, float32(100*i), l.Left(), 0.001, "x of child %d", i)
	}
}

func TestLayoutIntrinsicSizeFromMeasure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	tree := NewTree(nil)
	root := tree.NewNode()
	leaf := tree.NewNode()
	tree.SetMeasureFunc(leaf, fixedSize(42, 17))
	tree.AppendChild(root, leaf)
	tree.CalculateLayout(root, dimen.Undefined, dimen.Undefined, DirectionLTR)
	assert.InDelta(t, 42, tree.Layout(root).Width(), 0.001)
	assert.InDelta(t, 17, tree.Layout(root).Height(), 0.001)
	assertRect(t, tree, leaf, rect(0, 0, 42, 17), "leaf")
	var entry *CachedMeasurement
	for _, e := range tree.Cache(leaf).Entries() {
		if dimen.IsUndefined(e.AvailableWidth) {
			e := e
			entry = &e
			break
		}
	}
	require.NotNil(t, entry, "expected a cache entry for an unconstrained width")
	assert.InDelta(t, 42, entry.ComputedWidth, 0.001)
	assert.Equal(t, MeasureModeUndefined, entry.WidthMeasureMode)
}

func TestLayoutIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	tree := NewTree(nil)
	root, children := rowOf(tree, Point(250), Point(80), 3, func(i int, c NodeID) {
		tree.SetFlexGrow(c, float32(i+1))
		tree.SetMargin(c, EdgeAll, Point(3))
	})
	leaf := tree.NewNode()
	tree.SetMeasureFunc(leaf, fixedSize(30, 12))
	tree.AppendChild(children[1], leaf)
	snapshot := func() []Layout {
		var ls []Layout
		_ = tree.Walk(root, func(id NodeID, _ int) error {
			ls = append(ls, tree.Layout(id))
			return nil
		})
		return ls
	}
	tree.CalculateLayout(root, 500, 500, DirectionLTR)
	first := snapshot()
	tree.CalculateLayout(root, 500, 500, DirectionLTR)
	second := snapshot()
	require.Len(t, second, len(first))
	for i := range first {
		if diff := cmp.Diff(first[i].Rect(), second[i].Rect(), approx); diff != "" {
			t.Errorf("layout %d changed between passes:\n%s", i, diff)
		}
	}
}

func TestLayoutRTLMirrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	build := func() (*Tree, NodeID, []NodeID) {
		tree := NewTree(nil)
		root, children := rowOf(tree, Point(300), Point(50), 3, func(i int, c NodeID) {
			tree.SetWidth(c, Point(float32(40+20*i)))
		})
		tree.SetMargin(children[0], EdgeStart, Point(5))
		return tree, root, children
	}
	ltr, lroot, lchildren := build()
	ltr.CalculateLayout(lroot, dimen.Undefined, dimen.Undefined, DirectionLTR)
	rtl, rroot, rchildren := build()
	rtl.CalculateLayout(rroot, dimen.Undefined, dimen.Undefined, DirectionRTL)
	assert.Equal(t, DirectionRTL, rtl.Layout(rroot).Direction)
	for i := range lchildren {
		l, r := ltr.Layout(lchildren[i]), rtl.Layout(rchildren[i])
		assert.InDelta(t, l.Width(), r.Width(), 0.001, "width of child %d", i)
		assert.InDelta(t, 300-l.Left()-l.Width(), r.Left(), 0.001, "mirrored x of child %d", i)
		assert.InDelta(t, l.Top(), r.Top(), 0.001)
	}
	// start margin resolves to the right edge
	assert.InDelta(t, 5, rtl.Layout(rchildren[0]).MarginAt(EdgeRight), 0.001)
	assert.InDelta(t, 0, rtl.Layout(rchildren[0]).MarginAt(EdgeLeft), 0.001)
	assert.InDelta(t, 5, ltr.Layout(lchildren[0]).MarginAt(EdgeLeft), 0.001)
}

func TestLayoutMinMax(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	tree := NewTree(nil)
	root, children := rowOf(tree, Point(300), Point(50), 2, func(i int, c NodeID) {
		tree.SetFlexGrow(c, 1)
		tree.SetFlexBasis(c, Point(0))
	})
	tree.SetStyle(children[0], func(s *Style) { s.MaxDimensions.Set(int(DimensionWidth), Point(100)) })
	tree.CalculateLayout(root, dimen.Undefined, dimen.Undefined, DirectionLTR)
	assertRect(t, tree, children[0], rect(0, 0, 100, 50), "max-width child")
	assertRect(t, tree, children[1], rect(100, 0, 200, 50), "free child")
	//
	tree.SetStyle(children[0], func(s *Style) {
		s.MaxDimensions.Set(int(DimensionWidth), Undefined())
		s.MinDimensions.Set(int(DimensionWidth), Point(250))
		s.FlexGrow = SomeFloat(0)
	})
	tree.CalculateLayout(root, dimen.Undefined, dimen.Undefined, DirectionLTR)
	assertRect(t, tree, children[0], rect(0, 0, 250, 50), "min-width child")
	assertRect(t, tree, children[1], rect(250, 0, 50, 50), "remaining child")
}

func TestLayoutShrink(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	tree := NewTree(nil)
	root, children := rowOf(tree, Point(100), Point(20), 2, func(i int, c NodeID) {
		tree.SetFlexBasis(c, Point(100))
		tree.SetFlexShrink(c, 1)
	})
	tree.CalculateLayout(root, dimen.Undefined, dimen.Undefined, DirectionLTR)
	assertRect(t, tree, children[0], rect(0, 0, 50, 20), "first")
	assertRect(t, tree, children[1], rect(50, 0, 50, 20), "second")
	assert.False(t, tree.Layout(root).HadOverflow)
}

func TestLayoutOverflow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	tree := NewTree(nil)
	root, children := rowOf(tree, Point(100), Point(20), 2, func(i int, c NodeID) {
		tree.SetWidth(c, Point(80))
	})
	tree.CalculateLayout(root, dimen.Undefined, dimen.Undefined, DirectionLTR)
	assert.True(t, tree.Layout(root).HadOverflow)
	assertRect(t, tree, children[1], rect(80, 0, 80, 20), "overflowing child")
}

func TestLayoutJustifyContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	cases := []struct {
		justify Justify
		xs      [3]float32
	}{
		{JustifyFlexStart, [3]float32{0, 60, 120}},
		{JustifyCenter, [3]float32{60, 120, 180}},
		{JustifyFlexEnd, [3]float32{120, 180, 240}},
		{JustifySpaceBetween, [3]float32{0, 120, 240}},
		{JustifySpaceAround, [3]float32{20, 120, 220}},
		{JustifySpaceEvenly, [3]float32{30, 120, 210}},
	}
	for _, c := range cases {
		tree := NewTree(nil)
		root, children := rowOf(tree, Point(300), Point(100), 3, func(i int, child NodeID) {
			tree.SetWidth(child, Point(60))
		})
		tree.SetStyle(root, func(s *Style) { s.JustifyContent = c.justify })
		tree.CalculateLayout(root, dimen.Undefined, dimen.Undefined, DirectionLTR)
		for i, child := range children {
			assert.InDelta(t, c.xs[i], tree.Layout(child).Left(), 0.001, "%s: x of child %d", c.justify, i)
		}
	}
}

func TestLayoutAlignItems(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	cases := []struct {
		align Align
		want  dimen.Rect
	}{
		{AlignFlexStart, rect(0, 0, 50, 20)},
		{AlignCenter, rect(0, 40, 50, 20)},
		{AlignFlexEnd, rect(0, 80, 50, 20)},
		{AlignStretch, rect(0, 0, 50, 100)},
	}
	for _, c := range cases {
		tree := NewTree(nil)
		root, children := rowOf(tree, Point(300), Point(100), 1, func(i int, child NodeID) {
			tree.SetWidth(child, Point(50))
			if c.align != AlignStretch {
				tree.SetHeight(child, Point(20))
			}
		})
		tree.SetStyle(root, func(s *Style) { s.AlignItems = c.align })
		tree.CalculateLayout(root, dimen.Undefined, dimen.Undefined, DirectionLTR)
		assertRect(t, tree, children[0], c.want, c.align.String())
	}
}

func TestLayoutAlignSelfOverridesAlignItems(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	tree := NewTree(nil)
	root, children := rowOf(tree, Point(300), Point(100), 2, func(i int, child NodeID) {
		tree.SetWidth(child, Point(50))
		tree.SetHeight(child, Point(20))
	})
	tree.SetStyle(root, func(s *Style) { s.AlignItems = AlignCenter })
	tree.SetStyle(children[1], func(s *Style) { s.AlignSelf = AlignFlexEnd })
	tree.CalculateLayout(root, dimen.Undefined, dimen.Undefined, DirectionLTR)
	assertRect(t, tree, children[0], rect(0, 40, 50, 20), "centered")
	assertRect(t, tree, children[1], rect(50, 80, 50, 20), "flex-end")
}

func TestLayoutWrap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	tree := NewTree(nil)
	root, children := rowOf(tree, Point(100), Undefined(), 3, func(i int, child NodeID) {
		tree.SetWidth(child, Point(40))
		tree.SetHeight(child, Point(20))
	})
	tree.SetStyle(root, func(s *Style) { s.FlexWrap = WrapWrap })
	tree.CalculateLayout(root, dimen.Undefined, dimen.Undefined, DirectionLTR)
	assertRect(t, tree, children[0], rect(0, 0, 40, 20), "line 1, item 1")
	assertRect(t, tree, children[1], rect(40, 0, 40, 20), "line 1, item 2")
	assertRect(t, tree, children[2], rect(0, 20, 40, 20), "line 2, item 1")
	assert.InDelta(t, 40, tree.Layout(root).Height(), 0.001)
}

func TestLayoutPaddingAndBorder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	tree := NewTree(nil)
	root := tree.NewNode()
	tree.SetWidth(root, Point(100))
	tree.SetHeight(root, Point(100))
	tree.SetPadding(root, EdgeAll, Point(10))
	tree.SetBorder(root, EdgeLeft, 5)
	child := tree.NewNode()
	tree.SetFlexGrow(child, 1)
	tree.AppendChild(root, child)
	tree.CalculateLayout(root, dimen.Undefined, dimen.Undefined, DirectionLTR)
	assertRect(t, tree, child, rect(15, 10, 75, 80), "child within padding")
	l := tree.Layout(root)
	assert.InDelta(t, 5, l.BorderAt(EdgeLeft), 0.001)
	assert.InDelta(t, 10, l.PaddingAt(EdgeTop), 0.001)
	assert.True(t, dimen.IsUndefined(l.PaddingAt(EdgeAll)))
}

func TestLayoutAbsolute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	tree := NewTree(nil)
	root := tree.NewNode()
	tree.SetWidth(root, Point(200))
	tree.SetHeight(root, Point(200))
	leading, trailing := tree.NewNode(), tree.NewNode()
	for _, c := range []NodeID{leading, trailing} {
		tree.SetStyle(c, func(s *Style) { s.PositionType = PositionTypeAbsolute })
		tree.SetWidth(c, Point(50))
		tree.SetHeight(c, Point(30))
		tree.AppendChild(root, c)
	}
	tree.SetPosition(leading, EdgeLeft, Point(10))
	tree.SetPosition(leading, EdgeTop, Point(20))
	tree.SetPosition(trailing, EdgeRight, Point(10))
	tree.SetPosition(trailing, EdgeBottom, Point(10))
	tree.CalculateLayout(root, dimen.Undefined, dimen.Undefined, DirectionLTR)
	assertRect(t, tree, leading, rect(10, 20, 50, 30), "left/top")
	assertRect(t, tree, trailing, rect(140, 160, 50, 30), "right/bottom")
}

func TestLayoutDisplayNone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	tree := NewTree(nil)
	root, children := rowOf(tree, Point(300), Point(50), 3, func(i int, c NodeID) {
		tree.SetFlexGrow(c, 1)
	})
	tree.SetStyle(children[1], func(s *Style) { s.Display = DisplayNone })
	tree.CalculateLayout(root, dimen.Undefined, dimen.Undefined, DirectionLTR)
	assertRect(t, tree, children[0], rect(0, 0, 150, 50), "first")
	assertRect(t, tree, children[1], rect(0, 0, 0, 0), "hidden")
	assertRect(t, tree, children[2], rect(150, 0, 150, 50), "last")
}

func TestLayoutAspectRatio(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	tree := NewTree(nil)
	root := tree.NewNode()
	tree.SetWidth(root, Point(200))
	tree.SetHeight(root, Point(400))
	tree.SetStyle(root, func(s *Style) { s.AlignItems = AlignFlexStart })
	child := tree.NewNode()
	tree.SetWidth(child, Point(100))
	tree.SetStyle(child, func(s *Style) { s.AspectRatio = SomeFloat(2) })
	tree.AppendChild(root, child)
	tree.CalculateLayout(root, dimen.Undefined, dimen.Undefined, DirectionLTR)
	assertRect(t, tree, child, rect(0, 0, 100, 50), "aspect ratio 2")
}

func TestLayoutPercentages(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	tree := NewTree(nil)
	root, children := rowOf(tree, Point(200), Point(100), 1, func(i int, c NodeID) {
		tree.SetWidth(c, Percent(50))
		tree.SetHeight(c, Percent(50))
	})
	tree.CalculateLayout(root, dimen.Undefined, dimen.Undefined, DirectionLTR)
	assertRect(t, tree, children[0], rect(0, 0, 100, 50), "50% child")
}

func TestLayoutPixelRounding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	tree := NewTree(nil)
	root, children := rowOf(tree, Point(100), Point(10), 3, func(i int, c NodeID) {
		tree.SetFlexGrow(c, 1)
		tree.SetFlexBasis(c, Point(0))
	})
	tree.CalculateLayout(root, dimen.Undefined, dimen.Undefined, DirectionLTR)
	want := []dimen.Rect{rect(0, 0, 33, 10), rect(33, 0, 34, 10), rect(67, 0, 33, 10)}
	var total float32
	for i, c := range children {
		assertRect(t, tree, c, want[i], "rounded child")
		total += tree.Layout(c).Width()
	}
	assert.Equal(t, float32(100), total, "rounded widths must add up")
	//
	unrounded := NewConfig()
	unrounded.PointScaleFactor = 0
	tree = NewTree(unrounded)
	root, children = rowOf(tree, Point(100), Point(10), 3, func(i int, c NodeID) {
		tree.SetFlexGrow(c, 1)
		tree.SetFlexBasis(c, Point(0))
	})
	tree.CalculateLayout(root, dimen.Undefined, dimen.Undefined, DirectionLTR)
	assert.InDelta(t, 100.0/3, tree.Layout(children[1]).Width(), 0.001)
}

func TestLayoutBaseline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	tree := NewTree(nil)
	root, children := rowOf(tree, Point(200), Point(100), 2, func(i int, c NodeID) {
		tree.SetWidth(c, Point(50))
		tree.SetHeight(c, Point(float32(20+20*i)))
	})
	tree.SetStyle(root, func(s *Style) { s.AlignItems = AlignBaseline })
	tree.CalculateLayout(root, dimen.Undefined, dimen.Undefined, DirectionLTR)
	// without baseline functions, a box's baseline is its bottom edge
	assertRect(t, tree, children[0], rect(0, 20, 50, 20), "short box")
	assertRect(t, tree, children[1], rect(50, 0, 50, 40), "tall box")
}

func TestLayoutMeasureOnlyDirtyLeaves(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	tree := NewTree(nil)
	root, children := rowOf(tree, Point(300), Undefined(), 2, nil)
	calls := make([]int, len(children))
	for i, c := range children {
		i := i
		tree.SetMeasureFunc(c, func(*Tree, NodeID, float32, MeasureMode, float32, MeasureMode) Size {
			calls[i]++
			return Size{Width: 50, Height: 10}
		})
	}
	tree.CalculateLayout(root, dimen.Undefined, dimen.Undefined, DirectionLTR)
	require.Greater(t, calls[0], 0)
	require.Greater(t, calls[1], 0)
	before := append([]int(nil), calls...)
	tree.CalculateLayout(root, dimen.Undefined, dimen.Undefined, DirectionLTR)
	assert.Equal(t, before, calls, "unchanged tree must not be measured again")
	tree.MarkDirty(children[1])
	tree.CalculateLayout(root, dimen.Undefined, dimen.Undefined, DirectionLTR)
	assert.Equal(t, before[0], calls[0], "clean leaf must be served from its cache")
	assert.Greater(t, calls[1], before[1], "dirty leaf must be measured again")
}

func TestDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	tree := NewTree(nil)
	root, _ := rowOf(tree, Point(100), Point(10), 2, nil)
	tree.CalculateLayout(root, dimen.Undefined, dimen.Undefined, DirectionLTR)
	out := tree.Dump(root, DumpLayout|DumpStyle|DumpChildren)
	t.Logf("\n%s", out)
	assert.Contains(t, out, "flex-direction: row")
	assert.Contains(t, out, "width: 100; height: 10;")
	assert.Contains(t, out, "</node>")
	assert.NotContains(t, tree.Dump(root, DumpLayout), "</node>")
}

func TestLayoutIdempotentWithFractionalRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	tree := NewTree(nil)
	root, children := rowOf(tree, Point(100.4), Point(50.6), 1, func(_ int, c NodeID) {
		tree.SetFlexGrow(c, 1)
	})
	tree.CalculateLayout(root, dimen.Undefined, dimen.Undefined, DirectionLTR)
	assertRect(t, tree, root, rect(0, 0, 100, 51), "first pass, root")
	assertRect(t, tree, children[0], rect(0, 0, 100, 51), "first pass, child")
	tree.CalculateLayout(root, dimen.Undefined, dimen.Undefined, DirectionLTR)
	assertRect(t, tree, root, rect(0, 0, 100, 51), "second pass, root")
	assertRect(t, tree, children[0], rect(0, 0, 100, 51), "second pass, child")
}

func TestLayoutContext(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	tree := NewTree(nil)
	root := tree.NewNode()
	leaf := tree.NewNode()
	var seen []interface{}
	tree.SetMeasureFunc(leaf, func(t *Tree, _ NodeID, _ float32, _ MeasureMode, _ float32, _ MeasureMode) Size {
		seen = append(seen, t.LayoutContext())
		return Size{Width: 10, Height: 10}
	})
	tree.AppendChild(root, leaf)
	assert.Nil(t, tree.LayoutContext())
	tree.CalculateLayoutWithContext(root, 100, 100, DirectionLTR, "pass 1")
	require.NotEmpty(t, seen)
	for _, ctx := range seen {
		assert.Equal(t, "pass 1", ctx)
	}
	assert.Nil(t, tree.LayoutContext(), "context is cleared after the pass")
	tree.MarkDirty(leaf)
	seen = nil
	tree.CalculateLayout(root, 100, 100, DirectionLTR)
	require.NotEmpty(t, seen)
	assert.Nil(t, seen[0])
}
