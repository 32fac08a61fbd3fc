package measure

import (
	"testing"

	"github.com/npillmayer/flexlayout/core/dimen"
	"github.com/npillmayer/flexlayout/engine/flex"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/bidi"
)

func TestTextSingleLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.measure")
	defer teardown()
	//
	txt := NewText("aaa bbb ccc", 10, 20)
	size := txt.Measure(nil, 0, dimen.Undefined, flex.MeasureModeUndefined,
		dimen.Undefined, flex.MeasureModeUndefined)
	assert.Equal(t, flex.Size{Width: 110, Height: 20}, size)
	trailing := NewText("aaa  ", 10, 20)
	size = trailing.Measure(nil, 0, dimen.Undefined, flex.MeasureModeUndefined,
		dimen.Undefined, flex.MeasureModeUndefined)
	assert.Equal(t, float32(30), size.Width, "trailing whitespace does not count")
}

func TestTextWrap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.measure")
	defer teardown()
	//
	txt := NewText("aaa bbb ccc", 10, 20)
	tests := []struct {
		width  float32
		mode   flex.MeasureMode
		expect flex.Size
	}{
		{75, flex.MeasureModeAtMost, flex.Size{Width: 70, Height: 40}},
		{35, flex.MeasureModeAtMost, flex.Size{Width: 30, Height: 60}},
		{200, flex.MeasureModeAtMost, flex.Size{Width: 110, Height: 20}},
		{200, flex.MeasureModeExactly, flex.Size{Width: 200, Height: 20}},
		{10, flex.MeasureModeAtMost, flex.Size{Width: 10, Height: 60}},
	}
	for i, test := range tests {
		size := txt.Measure(nil, 0, test.width, test.mode, dimen.Undefined, flex.MeasureModeUndefined)
		assert.Equal(t, test.expect, size, "test #%d: %s %g", i, test.mode, test.width)
	}
	size := txt.Measure(nil, 0, 35, flex.MeasureModeAtMost, 50, flex.MeasureModeAtMost)
	assert.Equal(t, float32(50), size.Height)
	size = txt.Measure(nil, 0, 35, flex.MeasureModeAtMost, 5, flex.MeasureModeExactly)
	assert.Equal(t, float32(5), size.Height)
}

func TestTextEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.measure")
	defer teardown()
	//
	txt := NewText("", 10, 20)
	size := txt.Measure(nil, 0, 100, flex.MeasureModeAtMost, dimen.Undefined, flex.MeasureModeUndefined)
	assert.Equal(t, flex.Size{}, size)
	assert.Equal(t, bidi.Neutral, txt.Direction())
}

func TestTextWideCharacters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.measure")
	defer teardown()
	//
	txt := NewText("日本", 10, 20)
	size := txt.Measure(nil, 0, dimen.Undefined, flex.MeasureModeUndefined,
		dimen.Undefined, flex.MeasureModeUndefined)
	assert.Equal(t, float32(40), size.Width)
}

func TestTextDirection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.measure")
	defer teardown()
	//
	assert.Equal(t, bidi.LeftToRight, NewText("42 apples", 1, 1).Direction())
	assert.Equal(t, bidi.RightToLeft, NewText("42 שלום", 1, 1).Direction())
	assert.Equal(t, flex.DirectionRTL, flex.DirectionFromBidi(NewText("مرحبا", 1, 1).Direction()))
}

func TestTextInTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.measure")
	defer teardown()
	//
	tree := flex.NewTree(nil)
	root := tree.NewNode()
	tree.SetWidth(root, flex.Point(50))
	leaf := tree.NewNode()
	txt := NewText("aaa bbb ccc", 10, 20)
	txt.Attach(tree, leaf)
	tree.AppendChild(root, leaf)
	tree.CalculateLayout(root, dimen.Undefined, dimen.Undefined, flex.DirectionLTR)
	assert.Equal(t, float32(50), tree.Layout(leaf).Width())
	assert.Equal(t, float32(60), tree.Layout(leaf).Height())
	assert.Equal(t, float32(60), tree.Layout(root).Height())
	assert.Equal(t, flex.NodeTypeText, tree.NodeType(leaf))
	assert.Same(t, txt, tree.Context(leaf))
	assert.Equal(t, float32(16), txt.Baseline(tree, leaf, 50, 60))
}

func TestTextRecorder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.measure")
	defer teardown()
	//
	tree := flex.NewTree(nil)
	root := tree.NewNode()
	tree.SetWidth(root, flex.Point(50))
	leaf := tree.NewNode()
	NewText("aaa bbb ccc", 10, 20).Attach(tree, leaf)
	tree.AppendChild(root, leaf)
	rec := &Recorder{}
	tree.CalculateLayoutWithContext(root, dimen.Undefined, dimen.Undefined, flex.DirectionLTR, rec)
	require.NotEmpty(t, rec.Measurements)
	m, ok := rec.Last(leaf)
	require.True(t, ok)
	assert.Equal(t, 3, m.Lines)
	assert.Equal(t, float32(60), m.Size.Height)
	_, ok = rec.Last(root)
	assert.False(t, ok, "root has no text")
	assert.Nil(t, tree.LayoutContext())
	//
	count := len(rec.Measurements)
	tree.CalculateLayout(root, dimen.Undefined, dimen.Undefined, flex.DirectionLTR)
	assert.Len(t, rec.Measurements, count, "recorder is bound to a single pass")
}
