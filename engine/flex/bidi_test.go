package flex

import (
	"testing"

	"github.com/npillmayer/flexlayout/core/dimen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/unicode/bidi"
)

func TestTextDirection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	assert.Equal(t, DirectionLTR, TextDirection("Hello"))
	assert.Equal(t, DirectionRTL, TextDirection("שלום"))
	assert.Equal(t, DirectionRTL, TextDirection("123 مرحبا"), "digits are weak")
	assert.Equal(t, DirectionInherit, TextDirection("42 !"))
	assert.Equal(t, DirectionInherit, TextDirection(""))
	assert.Equal(t, DirectionRTL, DirectionFromBidi(bidi.RightToLeft))
	assert.Equal(t, DirectionInherit, DirectionFromBidi(bidi.Mixed))
	assert.Equal(t, DirectionRTL, TextDirection("\xff\xfeשלום"), "invalid UTF-8 is skipped")
	assert.Equal(t, bidi.Neutral, FirstStrong("1 \xd7"))
}

func TestLayoutDirectionFromText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.layout")
	defer teardown()
	//
	tree := NewTree(nil)
	root := tree.NewNode()
	tree.SetFlexDirection(root, FlexDirectionRow)
	tree.SetWidth(root, Point(100))
	child := tree.NewNode()
	tree.SetWidth(child, Point(30))
	tree.AppendChild(root, child)
	tree.CalculateLayout(root, dimen.Undefined, dimen.Undefined, TextDirection("עברית"))
	assert.InDelta(t, 70, tree.Layout(child).Left(), 0.001)
}
