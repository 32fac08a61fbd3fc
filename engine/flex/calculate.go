package flex

import (
	"math"

	"github.com/npillmayer/flexlayout/core/dimen"
)

// CalculateLayout lays out the subtree of root within the given available
// size. Either size may be dimen.Undefined, in which case the root is sized
// by its content. ownerDirection is the direction inherited by root if its
// style does not set one.
//
// After CalculateLayout returns, the results are available from
// Tree.Layout for every node of the subtree. Positions are relative to a
// node's owner. If the tree has not changed since the last call with the
// same arguments, the previous results are kept.
//
// CalculateLayout panics if root is not a node of the tree.
func (t *Tree) CalculateLayout(root NodeID, availableWidth, availableHeight float32, ownerDirection Direction) {
	t.CalculateLayoutWithContext(root, availableWidth, availableHeight, ownerDirection, nil)
}

// CalculateLayoutWithContext is CalculateLayout with host data for the pass.
// Measure and baseline functions called during the pass may retrieve ctx
// with Tree.LayoutContext.
//
// Cached measurements do not depend on ctx. If a different ctx changes the
// results of measure functions, mark the affected nodes dirty first.
func (t *Tree) CalculateLayoutWithContext(root NodeID, availableWidth, availableHeight float32,
	ownerDirection Direction, ctx interface{}) {
	//
	n := t.get(root)
	t.layoutContext = ctx
	defer func() { t.layoutContext = nil }()
	// visit every dirty node at least once; later visits within this pass
	// are skipped if the constraints do not change
	t.generation++
	n.resolveDimensions()
	width, widthMode := n.startWidth(availableWidth)
	height, heightMode := n.startHeight(availableWidth, availableHeight)
	tracer().Debugf("layout of node %d within %s×%s (%s)", root,
		dimen.Format(availableWidth), dimen.Format(availableHeight), ownerDirection)
	if t.layoutNodeInternal(n, width, height, ownerDirection, widthMode, heightMode,
		availableWidth, availableHeight, true, "initial") {
		t.setPosition(n, n.layout.Direction, availableWidth, availableHeight, availableWidth)
		t.roundToPixelGrid(n, t.config.PointScaleFactor, 0, 0)
		if t.config.PrintTree {
			tracer().Debugf("layout tree:\n%s", t.Dump(root, DumpLayout|DumpChildren|DumpStyle))
		}
		return
	}
	// the subtree is unchanged, but a cache hit has reset the root to its
	// unrounded size; rounding is idempotent on the rest of the subtree
	t.roundToPixelGrid(n, t.config.PointScaleFactor, 0, 0)
}

func (n *node) startWidth(ownerWidth float32) (float32, MeasureMode) {
	if n.isStyleDimDefined(FlexDirectionRow, ownerWidth) {
		width := n.resolvedDimensions[DimensionWidth].Resolve(ownerWidth)
		return width + n.marginForAxis(FlexDirectionRow, ownerWidth), MeasureModeExactly
	}
	if max := n.style.MaxDimensions.slots[DimensionWidth].Resolve(ownerWidth); max >= 0 {
		return max, MeasureModeAtMost
	}
	if dimen.IsUndefined(ownerWidth) {
		return ownerWidth, MeasureModeUndefined
	}
	return ownerWidth, MeasureModeExactly
}

func (n *node) startHeight(ownerWidth, ownerHeight float32) (float32, MeasureMode) {
	if n.isStyleDimDefined(FlexDirectionColumn, ownerHeight) {
		height := n.resolvedDimensions[DimensionHeight].Resolve(ownerHeight)
		return height + n.marginForAxis(FlexDirectionColumn, ownerWidth), MeasureModeExactly
	}
	if max := n.style.MaxDimensions.slots[DimensionHeight].Resolve(ownerHeight); max >= 0 {
		return max, MeasureModeAtMost
	}
	if dimen.IsUndefined(ownerHeight) {
		return ownerHeight, MeasureModeUndefined
	}
	return ownerHeight, MeasureModeExactly
}

// roundToPixelGrid snaps positions and sizes to the pixel grid. Edges are
// rounded in absolute coordinates, so that adjacent nodes neither overlap
// nor leave gaps. Sizes of text nodes are never rounded down, as this may
// truncate text.
func (t *Tree) roundToPixelGrid(n *node, scale, absoluteLeft, absoluteTop float32) {
	if scale == 0 {
		return
	}
	left, top := n.layout.Position[EdgeLeft], n.layout.Position[EdgeTop]
	width, height := n.layout.Dimensions[DimensionWidth], n.layout.Dimensions[DimensionHeight]
	absLeft, absTop := absoluteLeft+left, absoluteTop+top
	absRight, absBottom := absLeft+width, absTop+height

	text := n.nodeType == NodeTypeText
	n.layout.Position[EdgeLeft] = dimen.RoundToPixelGrid(left, scale, false, text)
	n.layout.Position[EdgeTop] = dimen.RoundToPixelGrid(top, scale, false, text)

	fracW, fracH := hasFraction(width*scale), hasFraction(height*scale)
	n.layout.Dimensions[DimensionWidth] =
		dimen.RoundToPixelGrid(absRight, scale, text && fracW, text && !fracW) -
			dimen.RoundToPixelGrid(absLeft, scale, false, text)
	n.layout.Dimensions[DimensionHeight] =
		dimen.RoundToPixelGrid(absBottom, scale, text && fracH, text && !fracH) -
			dimen.RoundToPixelGrid(absTop, scale, false, text)

	for _, c := range n.children {
		t.roundToPixelGrid(t.nodes[c], scale, absLeft, absTop)
	}
}

// hasFraction is true if v is not close to a whole number.
func hasFraction(v float32) bool {
	f := float32(math.Mod(float64(v), 1))
	return !dimen.Equal(f, 0) && !dimen.Equal(f, 1)
}
