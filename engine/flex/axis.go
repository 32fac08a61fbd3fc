package flex

import "github.com/npillmayer/flexlayout/core/dimen"

// Edges and dimension of an axis, indexed by FlexDirection.
var (
	leading  = [4]Edge{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight}
	trailing = [4]Edge{EdgeBottom, EdgeTop, EdgeRight, EdgeLeft}
	pos      = [4]Edge{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight}
	dim      = [4]Dimension{DimensionHeight, DimensionHeight, DimensionWidth, DimensionWidth}
)

func isRow(axis FlexDirection) bool {
	return axis == FlexDirectionRow || axis == FlexDirectionRowReverse
}

func isColumn(axis FlexDirection) bool {
	return axis == FlexDirectionColumn || axis == FlexDirectionColumnReverse
}

// resolveFlexDirection swaps row and row-reverse for right-to-left text.
func resolveFlexDirection(axis FlexDirection, direction Direction) FlexDirection {
	if direction == DirectionRTL {
		switch axis {
		case FlexDirectionRow:
			return FlexDirectionRowReverse
		case FlexDirectionRowReverse:
			return FlexDirectionRow
		}
	}
	return axis
}

func crossAxisOf(axis FlexDirection, direction Direction) FlexDirection {
	if isColumn(axis) {
		return resolveFlexDirection(FlexDirectionRow, direction)
	}
	return FlexDirectionColumn
}

// computedEdgeValue looks up the value of a physical or logical edge,
// falling back to the vertical or horizontal shorthand, then to 'all'.
// Start and end do not fall back to def.
func computedEdgeValue(edges *EdgeValues, edge Edge, def CompactValue) CompactValue {
	if v := edges.slots[edge]; v.IsDefined() {
		return v
	}
	if (edge == EdgeTop || edge == EdgeBottom) && edges.slots[EdgeVertical].IsDefined() {
		return edges.slots[EdgeVertical]
	}
	if (edge == EdgeLeft || edge == EdgeRight || edge == EdgeStart || edge == EdgeEnd) &&
		edges.slots[EdgeHorizontal].IsDefined() {
		return edges.slots[EdgeHorizontal]
	}
	if edges.slots[EdgeAll].IsDefined() {
		return edges.slots[EdgeAll]
	}
	if edge == EdgeStart || edge == EdgeEnd {
		return Undefined()
	}
	return def
}

// --- Margin, padding, border -------------------------------------------------

func (n *node) leadingMargin(axis FlexDirection, widthSize float32) float32 {
	if isRow(axis) && n.style.Margin.slots[EdgeStart].IsDefined() {
		return n.style.Margin.slots[EdgeStart].resolveMargin(widthSize)
	}
	return computedEdgeValue(&n.style.Margin, leading[axis], Point(0)).resolveMargin(widthSize)
}

func (n *node) trailingMargin(axis FlexDirection, widthSize float32) float32 {
	if isRow(axis) && n.style.Margin.slots[EdgeEnd].IsDefined() {
		return n.style.Margin.slots[EdgeEnd].resolveMargin(widthSize)
	}
	return computedEdgeValue(&n.style.Margin, trailing[axis], Point(0)).resolveMargin(widthSize)
}

func (n *node) marginForAxis(axis FlexDirection, widthSize float32) float32 {
	return n.leadingMargin(axis, widthSize) + n.trailingMargin(axis, widthSize)
}

func (n *node) leadingPadding(axis FlexDirection, widthSize float32) float32 {
	if start := n.style.Padding.slots[EdgeStart]; isRow(axis) && start.IsDefined() &&
		start.Resolve(widthSize) >= 0 {
		return start.Resolve(widthSize)
	}
	return dimen.Max(computedEdgeValue(&n.style.Padding, leading[axis], Point(0)).Resolve(widthSize), 0)
}

func (n *node) trailingPadding(axis FlexDirection, widthSize float32) float32 {
	if end := n.style.Padding.slots[EdgeEnd]; isRow(axis) && end.IsDefined() &&
		end.Resolve(widthSize) >= 0 {
		return end.Resolve(widthSize)
	}
	return dimen.Max(computedEdgeValue(&n.style.Padding, trailing[axis], Point(0)).Resolve(widthSize), 0)
}

// Borders are lengths only; percentages resolve to 0.
func (n *node) leadingBorder(axis FlexDirection) float32 {
	if start := n.style.Border.slots[EdgeStart]; isRow(axis) && start.IsDefined() &&
		start.Resolve(dimen.Undefined) >= 0 {
		return start.Resolve(dimen.Undefined)
	}
	return dimen.Max(computedEdgeValue(&n.style.Border, leading[axis], Point(0)).Resolve(dimen.Undefined), 0)
}

func (n *node) trailingBorder(axis FlexDirection) float32 {
	if end := n.style.Border.slots[EdgeEnd]; isRow(axis) && end.IsDefined() &&
		end.Resolve(dimen.Undefined) >= 0 {
		return end.Resolve(dimen.Undefined)
	}
	return dimen.Max(computedEdgeValue(&n.style.Border, trailing[axis], Point(0)).Resolve(dimen.Undefined), 0)
}

func (n *node) leadingPaddingAndBorder(axis FlexDirection, widthSize float32) float32 {
	return n.leadingPadding(axis, widthSize) + n.leadingBorder(axis)
}

func (n *node) trailingPaddingAndBorder(axis FlexDirection, widthSize float32) float32 {
	return n.trailingPadding(axis, widthSize) + n.trailingBorder(axis)
}

func (n *node) paddingAndBorderForAxis(axis FlexDirection, widthSize float32) float32 {
	return n.leadingPaddingAndBorder(axis, widthSize) + n.trailingPaddingAndBorder(axis, widthSize)
}

func (n *node) marginLeadingValue(axis FlexDirection) CompactValue {
	if isRow(axis) && n.style.Margin.slots[EdgeStart].IsDefined() {
		return n.style.Margin.slots[EdgeStart]
	}
	return n.style.Margin.slots[leading[axis]]
}

func (n *node) marginTrailingValue(axis FlexDirection) CompactValue {
	if isRow(axis) && n.style.Margin.slots[EdgeEnd].IsDefined() {
		return n.style.Margin.slots[EdgeEnd]
	}
	return n.style.Margin.slots[trailing[axis]]
}

// --- Positions ---------------------------------------------------------------

func (n *node) isLeadingPosDefined(axis FlexDirection) bool {
	return (isRow(axis) && computedEdgeValue(&n.style.Position, EdgeStart, Undefined()).IsDefined()) ||
		computedEdgeValue(&n.style.Position, leading[axis], Undefined()).IsDefined()
}

func (n *node) isTrailingPosDefined(axis FlexDirection) bool {
	return (isRow(axis) && computedEdgeValue(&n.style.Position, EdgeEnd, Undefined()).IsDefined()) ||
		computedEdgeValue(&n.style.Position, trailing[axis], Undefined()).IsDefined()
}

func (n *node) leadingPosition(axis FlexDirection, axisSize float32) float32 {
	if isRow(axis) {
		if p := computedEdgeValue(&n.style.Position, EdgeStart, Undefined()); p.IsDefined() {
			return p.Resolve(axisSize)
		}
	}
	p := computedEdgeValue(&n.style.Position, leading[axis], Undefined())
	if p.IsUndefined() {
		return 0
	}
	return p.Resolve(axisSize)
}

func (n *node) trailingPosition(axis FlexDirection, axisSize float32) float32 {
	if isRow(axis) {
		if p := computedEdgeValue(&n.style.Position, EdgeEnd, Undefined()); p.IsDefined() {
			return p.Resolve(axisSize)
		}
	}
	p := computedEdgeValue(&n.style.Position, trailing[axis], Undefined())
	if p.IsUndefined() {
		return 0
	}
	return p.Resolve(axisSize)
}

// relativePosition returns +leading or -trailing offset, leading winning
// if both are set.
func (n *node) relativePosition(axis FlexDirection, axisSize float32) float32 {
	if n.isLeadingPosDefined(axis) {
		return n.leadingPosition(axis, axisSize)
	}
	return -n.trailingPosition(axis, axisSize)
}

// --- Dimensions --------------------------------------------------------------

// resolveDimensions collapses min == max into a fixed dimension.
func (n *node) resolveDimensions() {
	for d := DimensionWidth; d <= DimensionHeight; d++ {
		max, min := n.style.MaxDimensions.slots[d], n.style.MinDimensions.slots[d]
		if max.IsDefined() && max.Equals(min) {
			n.resolvedDimensions[d] = max
		} else {
			n.resolvedDimensions[d] = n.style.Dimensions.slots[d]
		}
	}
}

func (n *node) isStyleDimDefined(axis FlexDirection, ownerSize float32) bool {
	v := n.resolvedDimensions[dim[axis]]
	switch v.unit {
	case UnitPoint:
		return v.value >= 0
	case UnitPercent:
		return v.value >= 0 && dimen.IsDefined(ownerSize)
	}
	return false
}

func (n *node) isLayoutDimDefined(axis FlexDirection) bool {
	v := n.layout.measuredDimensions[dim[axis]]
	return dimen.IsDefined(v) && v >= 0
}

func (n *node) dimWithMargin(axis FlexDirection, widthSize float32) float32 {
	return n.layout.measuredDimensions[dim[axis]] + n.marginForAxis(axis, widthSize)
}

func (n *node) boundAxisWithinMinAndMax(axis FlexDirection, value, axisSize float32) float32 {
	d := dim[axis]
	min := n.style.MinDimensions.slots[d].Resolve(axisSize)
	max := n.style.MaxDimensions.slots[d].Resolve(axisSize)
	bound := value
	if dimen.IsDefined(max) && max >= 0 && bound > max {
		bound = max
	}
	if dimen.IsDefined(min) && min >= 0 && bound < min {
		bound = min
	}
	return bound
}

// boundAxis is like boundAxisWithinMinAndMax, but never goes below the
// padding and border of the node.
func (n *node) boundAxis(axis FlexDirection, value, axisSize, widthSize float32) float32 {
	return dimen.Max(n.boundAxisWithinMinAndMax(axis, value, axisSize),
		n.paddingAndBorderForAxis(axis, widthSize))
}

// constrainMaxSizeForMode restricts size and mode by the node's max
// dimension on axis.
func (n *node) constrainMaxSizeForMode(axis FlexDirection, ownerAxisSize, ownerWidth float32,
	mode *MeasureMode, size *float32) {
	//
	maxSize := n.style.MaxDimensions.slots[dim[axis]].Resolve(ownerAxisSize) +
		n.marginForAxis(axis, ownerWidth)
	switch *mode {
	case MeasureModeExactly, MeasureModeAtMost:
		if dimen.IsDefined(maxSize) && *size >= maxSize {
			*size = maxSize
		}
	case MeasureModeUndefined:
		if dimen.IsDefined(maxSize) {
			*mode = MeasureModeAtMost
			*size = maxSize
		}
	}
}

// --- Flex factors and alignment ----------------------------------------------

func (t *Tree) resolveFlexGrow(n *node) float32 {
	if n.owner == NoNode {
		return 0
	}
	if !n.style.FlexGrow.IsNone() {
		return n.style.FlexGrow.value
	}
	if !n.style.Flex.IsNone() && n.style.Flex.value > 0 {
		return n.style.Flex.value
	}
	return defaultFlexGrow
}

func (t *Tree) resolveFlexShrink(n *node) float32 {
	if n.owner == NoNode {
		return 0
	}
	if !n.style.FlexShrink.IsNone() {
		return n.style.FlexShrink.value
	}
	if !t.config.UseWebDefaults && !n.style.Flex.IsNone() && n.style.Flex.value < 0 {
		return -n.style.Flex.value
	}
	if t.config.UseWebDefaults {
		return webDefaultFlexShrink
	}
	return defaultFlexShrink
}

func (t *Tree) resolveFlexBasis(n *node) CompactValue {
	if b := n.style.FlexBasis; b.unit != UnitAuto && b.unit != UnitUndefined {
		return b
	}
	if !n.style.Flex.IsNone() && n.style.Flex.value > 0 {
		if t.config.UseWebDefaults {
			return Auto()
		}
		return Point(0)
	}
	return Auto()
}

func (t *Tree) isFlex(n *node) bool {
	return n.style.PositionType == PositionTypeRelative &&
		(t.resolveFlexGrow(n) != 0 || t.resolveFlexShrink(n) != 0)
}

// alignItem returns the cross-axis alignment of child within n.
func alignItem(n, child *node) Align {
	align := child.style.AlignSelf
	if align == AlignAuto {
		align = n.style.AlignItems
	}
	if align == AlignBaseline && isColumn(n.style.FlexDirection) {
		return AlignFlexStart
	}
	return align
}

func (n *node) resolveDirection(ownerDirection Direction) Direction {
	if n.style.Direction == DirectionInherit {
		if ownerDirection > DirectionInherit {
			return ownerDirection
		}
		return DirectionLTR
	}
	return n.style.Direction
}
