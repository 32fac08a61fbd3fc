package flex

import (
	"github.com/npillmayer/flexlayout/core/dimen"
)

// setPosition sets the position of a node from its margins and relative
// offsets. Roots are always positioned left-to-right so that they never
// receive negative offsets.
func (t *Tree) setPosition(n *node, direction Direction, mainSize, crossSize, ownerWidth float32) {
	dir := DirectionLTR
	if n.owner != NoNode {
		dir = direction
	}
	mainAxis := resolveFlexDirection(n.style.FlexDirection, dir)
	crossAxis := crossAxisOf(mainAxis, dir)
	relMain := n.relativePosition(mainAxis, mainSize)
	relCross := n.relativePosition(crossAxis, crossSize)
	p := &n.layout.Position
	p[leading[mainAxis]] = n.leadingMargin(mainAxis, ownerWidth) + relMain
	p[trailing[mainAxis]] = n.trailingMargin(mainAxis, ownerWidth) + relMain
	p[leading[crossAxis]] = n.leadingMargin(crossAxis, ownerWidth) + relCross
	p[trailing[crossAxis]] = n.trailingMargin(crossAxis, ownerWidth) + relCross
}

func setChildTrailingPosition(n, child *node, axis FlexDirection) {
	size := child.layout.measuredDimensions[dim[axis]]
	child.layout.Position[trailing[axis]] =
		n.layout.measuredDimensions[dim[axis]] - size - child.layout.Position[pos[axis]]
}

// computeFlexBasisForChild determines the flex basis of a child, measuring
// the child if neither its flex-basis nor its main size is definite.
func (t *Tree) computeFlexBasisForChild(n, child *node, width float32, widthMode MeasureMode,
	height, ownerWidth, ownerHeight float32, heightMode MeasureMode, direction Direction) {
	//
	mainAxis := resolveFlexDirection(n.style.FlexDirection, direction)
	isMainAxisRow := isRow(mainAxis)
	mainAxisSize, mainAxisOwnerSize := height, ownerHeight
	if isMainAxisRow {
		mainAxisSize, mainAxisOwnerSize = width, ownerWidth
	}
	resolvedFlexBasis := t.resolveFlexBasis(child).Resolve(mainAxisOwnerSize)
	isRowStyleDimDefined := child.isStyleDimDefined(FlexDirectionRow, ownerWidth)
	isColumnStyleDimDefined := child.isStyleDimDefined(FlexDirectionColumn, ownerHeight)

	switch {
	case dimen.IsDefined(resolvedFlexBasis) && dimen.IsDefined(mainAxisSize):
		if dimen.IsUndefined(child.layout.computedFlexBasis) ||
			(t.config.IsExperimentalFeatureEnabled(ExperimentalFeatureWebFlexBasis) &&
				child.layout.computedFlexBasisGeneration != t.generation) {
			child.layout.computedFlexBasis = dimen.Max(resolvedFlexBasis,
				child.paddingAndBorderForAxis(mainAxis, ownerWidth))
		}
	case isMainAxisRow && isRowStyleDimDefined:
		// the width is definite, so use that as the flex basis
		child.layout.computedFlexBasis = dimen.Max(
			child.resolvedDimensions[DimensionWidth].Resolve(ownerWidth),
			child.paddingAndBorderForAxis(FlexDirectionRow, ownerWidth))
	case !isMainAxisRow && isColumnStyleDimDefined:
		child.layout.computedFlexBasis = dimen.Max(
			child.resolvedDimensions[DimensionHeight].Resolve(ownerHeight),
			child.paddingAndBorderForAxis(FlexDirectionColumn, ownerWidth))
	default:
		// compute the hypothetical main size, i.e. the clamped flex basis
		childWidth, childHeight := dimen.Undefined, dimen.Undefined
		childWidthMode, childHeightMode := MeasureModeUndefined, MeasureModeUndefined
		marginRow := child.marginForAxis(FlexDirectionRow, ownerWidth)
		marginColumn := child.marginForAxis(FlexDirectionColumn, ownerWidth)
		if isRowStyleDimDefined {
			childWidth = child.resolvedDimensions[DimensionWidth].Resolve(ownerWidth) + marginRow
			childWidthMode = MeasureModeExactly
		}
		if isColumnStyleDimDefined {
			childHeight = child.resolvedDimensions[DimensionHeight].Resolve(ownerHeight) + marginColumn
			childHeightMode = MeasureModeExactly
		}
		// browsers do not constrain the main axis of a scrolling container
		scroll := n.style.Overflow == OverflowScroll
		if !scroll || !isMainAxisRow {
			if dimen.IsUndefined(childWidth) && dimen.IsDefined(width) {
				childWidth = width
				childWidthMode = MeasureModeAtMost
			}
		}
		if !scroll || isMainAxisRow {
			if dimen.IsUndefined(childHeight) && dimen.IsDefined(height) {
				childHeight = height
				childHeightMode = MeasureModeAtMost
			}
		}
		// a stretched child without a cross size is measured with the
		// available cross size exactly
		if !isMainAxisRow && dimen.IsDefined(width) && !isRowStyleDimDefined &&
			widthMode == MeasureModeExactly && alignItem(n, child) == AlignStretch {
			childWidth = width
			childWidthMode = MeasureModeExactly
		}
		if isMainAxisRow && dimen.IsDefined(height) && !isColumnStyleDimDefined &&
			heightMode == MeasureModeExactly && alignItem(n, child) == AlignStretch {
			childHeight = height
			childHeightMode = MeasureModeExactly
		}
		if !child.style.AspectRatio.IsNone() {
			ratio := child.style.AspectRatio.value
			if !isMainAxisRow && childWidthMode == MeasureModeExactly {
				child.layout.computedFlexBasis = dimen.Max((childWidth-marginRow)/ratio,
					child.paddingAndBorderForAxis(FlexDirectionColumn, ownerWidth))
				return
			} else if isMainAxisRow && childHeightMode == MeasureModeExactly {
				child.layout.computedFlexBasis = dimen.Max((childHeight-marginColumn)*ratio,
					child.paddingAndBorderForAxis(FlexDirectionRow, ownerWidth))
				return
			}
		}
		child.constrainMaxSizeForMode(FlexDirectionRow, ownerWidth, ownerWidth, &childWidthMode, &childWidth)
		child.constrainMaxSizeForMode(FlexDirectionColumn, ownerHeight, ownerWidth, &childHeightMode, &childHeight)

		t.layoutNodeInternal(child, childWidth, childHeight, direction,
			childWidthMode, childHeightMode, ownerWidth, ownerHeight, false, "measure")

		child.layout.computedFlexBasis = dimen.Max(child.layout.measuredDimensions[dim[mainAxis]],
			child.paddingAndBorderForAxis(mainAxis, ownerWidth))
	}
	child.layout.computedFlexBasisGeneration = t.generation
}

// absoluteLayoutChild lays out an absolutely positioned child of n.
func (t *Tree) absoluteLayoutChild(n, child *node, width float32, widthMode MeasureMode,
	height float32, direction Direction) {
	//
	mainAxis := resolveFlexDirection(n.style.FlexDirection, direction)
	crossAxis := crossAxisOf(mainAxis, direction)
	isMainAxisRow := isRow(mainAxis)

	childWidth, childHeight := dimen.Undefined, dimen.Undefined
	marginRow := child.marginForAxis(FlexDirectionRow, width)
	marginColumn := child.marginForAxis(FlexDirectionColumn, width)

	if child.isStyleDimDefined(FlexDirectionRow, width) {
		childWidth = child.resolvedDimensions[DimensionWidth].Resolve(width) + marginRow
	} else if child.isLeadingPosDefined(FlexDirectionRow) && child.isTrailingPosDefined(FlexDirectionRow) {
		// no width, but left and right offsets
		childWidth = n.layout.measuredDimensions[DimensionWidth] -
			(n.leadingBorder(FlexDirectionRow) + n.trailingBorder(FlexDirectionRow)) -
			(child.leadingPosition(FlexDirectionRow, width) + child.trailingPosition(FlexDirectionRow, width))
		childWidth = child.boundAxis(FlexDirectionRow, childWidth, width, width)
	}
	if child.isStyleDimDefined(FlexDirectionColumn, height) {
		childHeight = child.resolvedDimensions[DimensionHeight].Resolve(height) + marginColumn
	} else if child.isLeadingPosDefined(FlexDirectionColumn) && child.isTrailingPosDefined(FlexDirectionColumn) {
		childHeight = n.layout.measuredDimensions[DimensionHeight] -
			(n.leadingBorder(FlexDirectionColumn) + n.trailingBorder(FlexDirectionColumn)) -
			(child.leadingPosition(FlexDirectionColumn, height) + child.trailingPosition(FlexDirectionColumn, height))
		childHeight = child.boundAxis(FlexDirectionColumn, childHeight, height, width)
	}

	// with exactly one dimension known, the aspect ratio gives the other one
	if dimen.IsUndefined(childWidth) != dimen.IsUndefined(childHeight) && !child.style.AspectRatio.IsNone() {
		ratio := child.style.AspectRatio.value
		if dimen.IsUndefined(childWidth) {
			childWidth = marginRow + dimen.Max((childHeight-marginColumn)*ratio,
				child.paddingAndBorderForAxis(FlexDirectionColumn, width))
		} else {
			childHeight = marginColumn + dimen.Max((childWidth-marginRow)/ratio,
				child.paddingAndBorderForAxis(FlexDirectionRow, width))
		}
	}

	// still missing a dimension: measure the content
	if dimen.IsUndefined(childWidth) || dimen.IsUndefined(childHeight) {
		childWidthMode, childHeightMode := MeasureModeExactly, MeasureModeExactly
		if dimen.IsUndefined(childWidth) {
			childWidthMode = MeasureModeUndefined
		}
		if dimen.IsUndefined(childHeight) {
			childHeightMode = MeasureModeUndefined
		}
		// let text within the absolute child wrap at the owner's width
		if !isMainAxisRow && dimen.IsUndefined(childWidth) && widthMode != MeasureModeUndefined && width > 0 {
			childWidth = width
			childWidthMode = MeasureModeAtMost
		}
		t.layoutNodeInternal(child, childWidth, childHeight, direction,
			childWidthMode, childHeightMode, childWidth, childHeight, false, "abs-measure")
		childWidth = child.layout.measuredDimensions[DimensionWidth] + child.marginForAxis(FlexDirectionRow, width)
		childHeight = child.layout.measuredDimensions[DimensionHeight] + child.marginForAxis(FlexDirectionColumn, width)
	}

	t.layoutNodeInternal(child, childWidth, childHeight, direction,
		MeasureModeExactly, MeasureModeExactly, childWidth, childHeight, true, "abs-layout")

	if child.isTrailingPosDefined(mainAxis) && !child.isLeadingPosDefined(mainAxis) {
		axisSize := height
		if isMainAxisRow {
			axisSize = width
		}
		child.layout.Position[leading[mainAxis]] = n.layout.measuredDimensions[dim[mainAxis]] -
			child.layout.measuredDimensions[dim[mainAxis]] -
			n.trailingBorder(mainAxis) -
			child.trailingMargin(mainAxis, width) -
			child.trailingPosition(mainAxis, axisSize)
	} else if !child.isLeadingPosDefined(mainAxis) && n.style.JustifyContent == JustifyCenter {
		child.layout.Position[leading[mainAxis]] = (n.layout.measuredDimensions[dim[mainAxis]] -
			child.layout.measuredDimensions[dim[mainAxis]]) / 2
	} else if !child.isLeadingPosDefined(mainAxis) && n.style.JustifyContent == JustifyFlexEnd {
		child.layout.Position[leading[mainAxis]] = n.layout.measuredDimensions[dim[mainAxis]] -
			child.layout.measuredDimensions[dim[mainAxis]]
	}

	if child.isTrailingPosDefined(crossAxis) && !child.isLeadingPosDefined(crossAxis) {
		axisSize := width
		if isMainAxisRow {
			axisSize = height
		}
		child.layout.Position[leading[crossAxis]] = n.layout.measuredDimensions[dim[crossAxis]] -
			child.layout.measuredDimensions[dim[crossAxis]] -
			n.trailingBorder(crossAxis) -
			child.trailingMargin(crossAxis, width) -
			child.trailingPosition(crossAxis, axisSize)
	} else if !child.isLeadingPosDefined(crossAxis) && alignItem(n, child) == AlignCenter {
		child.layout.Position[leading[crossAxis]] = (n.layout.measuredDimensions[dim[crossAxis]] -
			child.layout.measuredDimensions[dim[crossAxis]]) / 2
	} else if !child.isLeadingPosDefined(crossAxis) &&
		(alignItem(n, child) == AlignFlexEnd) != (n.style.FlexWrap == WrapWrapReverse) {
		child.layout.Position[leading[crossAxis]] = n.layout.measuredDimensions[dim[crossAxis]] -
			child.layout.measuredDimensions[dim[crossAxis]]
	}
}

// --- Leaf sizing ---------------------------------------------------------------

// measureNode sizes a node with a measure function.
func (t *Tree) measureNode(n *node, availableWidth, availableHeight float32,
	widthMode, heightMode MeasureMode, ownerWidth, ownerHeight float32) {
	//
	paddingAndBorderRow := n.paddingAndBorderForAxis(FlexDirectionRow, availableWidth)
	paddingAndBorderColumn := n.paddingAndBorderForAxis(FlexDirectionColumn, availableWidth)
	marginRow := n.marginForAxis(FlexDirectionRow, availableWidth)
	marginColumn := n.marginForAxis(FlexDirectionColumn, availableWidth)

	// never call measure with a negative size
	innerWidth := availableWidth
	if dimen.IsDefined(availableWidth) {
		innerWidth = dimen.Max(0, availableWidth-marginRow-paddingAndBorderRow)
	}
	innerHeight := availableHeight
	if dimen.IsDefined(availableHeight) {
		innerHeight = dimen.Max(0, availableHeight-marginColumn-paddingAndBorderColumn)
	}

	if widthMode == MeasureModeExactly && heightMode == MeasureModeExactly {
		n.layout.measuredDimensions[DimensionWidth] = n.boundAxis(FlexDirectionRow,
			availableWidth-marginRow, ownerWidth, ownerWidth)
		n.layout.measuredDimensions[DimensionHeight] = n.boundAxis(FlexDirectionColumn,
			availableHeight-marginColumn, ownerHeight, ownerWidth)
		return
	}
	id := n.id
	size := n.measure(t, id, innerWidth, widthMode, innerHeight, heightMode)
	if dimen.IsUndefined(size.Width) || dimen.IsUndefined(size.Height) {
		tracer().Errorf("measure function of node %d returned an undefined size", id)
	}
	size.Width = dimen.NonNegative(dimen.OrElse(size.Width, 0))
	size.Height = dimen.NonNegative(dimen.OrElse(size.Height, 0))
	tracer().Debugf("measured node %d: %s×%s %s/%s → %s×%s", id,
		dimen.Format(innerWidth), dimen.Format(innerHeight), widthMode, heightMode,
		dimen.Format(size.Width), dimen.Format(size.Height))

	width := availableWidth - marginRow
	if widthMode == MeasureModeUndefined || widthMode == MeasureModeAtMost {
		width = size.Width + paddingAndBorderRow
	}
	n.layout.measuredDimensions[DimensionWidth] = n.boundAxis(FlexDirectionRow, width,
		availableWidth, availableWidth)
	height := availableHeight - marginColumn
	if heightMode == MeasureModeUndefined || heightMode == MeasureModeAtMost {
		height = size.Height + paddingAndBorderColumn
	}
	n.layout.measuredDimensions[DimensionHeight] = n.boundAxis(FlexDirectionColumn, height,
		availableHeight, availableWidth)
}

// sizeEmptyContainer uses the available size if given, else the padding and
// border of the node.
func (n *node) sizeEmptyContainer(availableWidth, availableHeight float32,
	widthMode, heightMode MeasureMode, ownerWidth, ownerHeight float32) {
	//
	width := availableWidth - n.marginForAxis(FlexDirectionRow, ownerWidth)
	if widthMode == MeasureModeUndefined || widthMode == MeasureModeAtMost {
		width = n.paddingAndBorderForAxis(FlexDirectionRow, ownerWidth)
	}
	n.layout.measuredDimensions[DimensionWidth] = n.boundAxis(FlexDirectionRow, width, ownerWidth, ownerWidth)
	height := availableHeight - n.marginForAxis(FlexDirectionColumn, ownerWidth)
	if heightMode == MeasureModeUndefined || heightMode == MeasureModeAtMost {
		height = n.paddingAndBorderForAxis(FlexDirectionColumn, ownerWidth)
	}
	n.layout.measuredDimensions[DimensionHeight] = n.boundAxis(FlexDirectionColumn, height, ownerHeight, ownerWidth)
}

// sizeFixed sets the measured dimensions of a node if they follow from the
// constraints alone. It returns false if the node has to be laid out.
func (n *node) sizeFixed(availableWidth, availableHeight float32,
	widthMode, heightMode MeasureMode, ownerWidth, ownerHeight float32) bool {
	//
	if !((widthMode == MeasureModeAtMost && availableWidth <= 0) ||
		(heightMode == MeasureModeAtMost && availableHeight <= 0) ||
		(widthMode == MeasureModeExactly && heightMode == MeasureModeExactly)) {
		return false
	}
	width := availableWidth - n.marginForAxis(FlexDirectionRow, ownerWidth)
	if dimen.IsUndefined(availableWidth) || (widthMode == MeasureModeAtMost && availableWidth < 0) {
		width = 0
	}
	n.layout.measuredDimensions[DimensionWidth] = n.boundAxis(FlexDirectionRow, width, ownerWidth, ownerWidth)
	height := availableHeight - n.marginForAxis(FlexDirectionColumn, ownerWidth)
	if dimen.IsUndefined(availableHeight) || (heightMode == MeasureModeAtMost && availableHeight < 0) {
		height = 0
	}
	n.layout.measuredDimensions[DimensionHeight] = n.boundAxis(FlexDirectionColumn, height, ownerHeight, ownerWidth)
	return true
}

// zeroOutLayout collapses a hidden subtree.
func (t *Tree) zeroOutLayout(n *node) {
	n.layout.Dimensions = [DimensionCount]float32{}
	n.layout.Position = [4]float32{}
	n.layout.cachedLayout = CachedMeasurement{
		WidthMeasureMode:  MeasureModeExactly,
		HeightMeasureMode: MeasureModeExactly,
	}
	n.hasNewLayout = true
	for _, c := range n.children {
		t.zeroOutLayout(t.nodes[c])
	}
}
