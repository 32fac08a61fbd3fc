package flex

import (
	"fmt"

	"github.com/npillmayer/flexlayout/core/dimen"
)

// Layout is the result of laying out a node.
//
// Position holds the offsets of the node's margin box edges relative to
// its owner (left, top, right, bottom). Dimensions include padding and
// border but not margin. Margin, Border and Padding are indexed by
// EdgeLeft…EdgeEnd; start and end are resolved for the node's direction.
type Layout struct {
	Position    [4]float32
	Dimensions  [DimensionCount]float32
	Margin      [6]float32
	Border      [6]float32
	Padding     [6]float32
	Direction   Direction
	HadOverflow bool

	computedFlexBasis           float32
	computedFlexBasisGeneration uint32
	generationCount             uint32
	lastOwnerDirection          Direction
	measuredDimensions          [DimensionCount]float32
	cache                       MeasurementCache
	cachedLayout                CachedMeasurement
}

func newLayout() Layout {
	return Layout{
		Dimensions:         [DimensionCount]float32{dimen.Undefined, dimen.Undefined},
		lastOwnerDirection: directionUnset,
		computedFlexBasis:  dimen.Undefined,
		measuredDimensions: [DimensionCount]float32{dimen.Undefined, dimen.Undefined},
		cachedLayout:       NewCachedMeasurement(),
	}
}

// Left returns the x-offset of the node within its owner.
func (l Layout) Left() float32 { return l.Position[EdgeLeft] }

// Top returns the y-offset of the node within its owner.
func (l Layout) Top() float32 { return l.Position[EdgeTop] }

// Right returns the distance of the node's right edge from the right edge of its owner.
func (l Layout) Right() float32 { return l.Position[EdgeRight] }

// Bottom returns the distance of the node's bottom edge from the bottom edge of its owner.
func (l Layout) Bottom() float32 { return l.Position[EdgeBottom] }

// Width returns the border-box width.
func (l Layout) Width() float32 { return l.Dimensions[DimensionWidth] }

// Height returns the border-box height.
func (l Layout) Height() float32 { return l.Dimensions[DimensionHeight] }

// Rect returns the border box relative to the owner.
func (l Layout) Rect() dimen.Rect {
	return dimen.Rect{
		TopL:   dimen.Point{X: l.Left(), Y: l.Top()},
		Width:  l.Width(),
		Height: l.Height(),
	}
}

// MarginAt returns the resolved margin for a physical or logical edge.
// Shorthand edges (horizontal, vertical, all) return undefined.
func (l Layout) MarginAt(edge Edge) float32 {
	return l.resolvedEdge(&l.Margin, edge)
}

// BorderAt returns the resolved border width for an edge, see MarginAt.
func (l Layout) BorderAt(edge Edge) float32 {
	return l.resolvedEdge(&l.Border, edge)
}

// PaddingAt returns the resolved padding for an edge, see MarginAt.
func (l Layout) PaddingAt(edge Edge) float32 {
	return l.resolvedEdge(&l.Padding, edge)
}

func (l Layout) resolvedEdge(values *[6]float32, edge Edge) float32 {
	switch edge {
	case EdgeLeft:
		if l.Direction == DirectionRTL {
			return values[EdgeEnd]
		}
		return values[EdgeStart]
	case EdgeRight:
		if l.Direction == DirectionRTL {
			return values[EdgeStart]
		}
		return values[EdgeEnd]
	case EdgeTop, EdgeBottom, EdgeStart, EdgeEnd:
		return values[edge]
	}
	return dimen.Undefined
}

func (l Layout) String() string {
	return fmt.Sprintf("{x=%s y=%s w=%s h=%s}",
		dimen.Format(l.Left()), dimen.Format(l.Top()),
		dimen.Format(l.Width()), dimen.Format(l.Height()))
}
