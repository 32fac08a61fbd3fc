package flex

import "github.com/npillmayer/flexlayout/core/dimen"

// flexPass holds the state of laying out the children of a single flex
// container under one set of constraints.
//
// Measure modes map to the sizing modes of CSS:
//
//	MeasureModeUndefined: max-content
//	MeasureModeExactly:   fill-available
//	MeasureModeAtMost:    fit-content
//
// Deviations from CSS flexbox, as in Yoga: there is no default minimum
// main size for flex items (min-content is never computed), 'order',
// 'visibility', forced breaks and vertical writing modes are not supported,
// and min/max main sizes are resolved in two passes instead of iterating.
type flexPass struct {
	t             *Tree
	n             *node
	direction     Direction
	performLayout bool

	mainAxis, crossAxis FlexDirection
	isMainAxisRow       bool
	isWrap              bool

	availableWidth, availableHeight       float32
	ownerWidth, ownerHeight               float32
	mainAxisOwnerSize, crossAxisOwnerSize float32
	widthMode, heightMode                 MeasureMode
	mainMode, crossMode                   MeasureMode

	leadingPaddingAndBorderMain  float32
	trailingPaddingAndBorderMain float32
	leadingPaddingAndBorderCross float32
	paddingAndBorderAxisMain     float32
	paddingAndBorderAxisCross    float32
	marginAxisRow                float32
	marginAxisColumn             float32

	minInnerMainDim, maxInnerMainDim              float32
	availableInnerWidth, availableInnerHeight     float32
	availableInnerMainDim, availableInnerCrossDim float32

	flexBasisOverflows bool
	absoluteChildren   []*node

	lineCount         int
	totalLineCrossDim float32 // accumulated cross size of all lines so far
	maxLineMainDim    float32 // max main size of all lines
}

// flexLine is a line of flex items.
type flexLine struct {
	start, end                   int // child indices, end exclusive
	itemsOnLine                  int
	sizeConsumed                 float32
	sizeConsumedInclMin          float32
	totalFlexGrowFactors         float32
	totalFlexShrinkScaledFactors float32
	items                        []*node // relative children of the line
	remainingFreeSpace           float32
	leadingMainDim               float32
	betweenMainDim               float32
	mainDim, crossDim            float32
	containerCrossAxis           float32
}

// layoutImpl sizes a node and, if performLayout is set, positions its
// children. It sets the layout direction, the resolved margins, borders
// and paddings and the measured dimensions of the node, and the positions
// and line indices of its children.
//
// If an available size is undefined, its measure mode must be
// MeasureModeUndefined.
func (t *Tree) layoutImpl(n *node, availableWidth, availableHeight float32,
	ownerDirection Direction, widthMode, heightMode MeasureMode,
	ownerWidth, ownerHeight float32, performLayout bool) {
	//
	direction := n.resolveDirection(ownerDirection)
	n.layout.Direction = direction
	rowDir := resolveFlexDirection(FlexDirectionRow, direction)
	colDir := resolveFlexDirection(FlexDirectionColumn, direction)

	n.layout.Margin[EdgeStart] = n.leadingMargin(rowDir, ownerWidth)
	n.layout.Margin[EdgeEnd] = n.trailingMargin(rowDir, ownerWidth)
	n.layout.Margin[EdgeTop] = n.leadingMargin(colDir, ownerWidth)
	n.layout.Margin[EdgeBottom] = n.trailingMargin(colDir, ownerWidth)
	n.layout.Border[EdgeStart] = n.leadingBorder(rowDir)
	n.layout.Border[EdgeEnd] = n.trailingBorder(rowDir)
	n.layout.Border[EdgeTop] = n.leadingBorder(colDir)
	n.layout.Border[EdgeBottom] = n.trailingBorder(colDir)
	n.layout.Padding[EdgeStart] = n.leadingPadding(rowDir, ownerWidth)
	n.layout.Padding[EdgeEnd] = n.trailingPadding(rowDir, ownerWidth)
	n.layout.Padding[EdgeTop] = n.leadingPadding(colDir, ownerWidth)
	n.layout.Padding[EdgeBottom] = n.trailingPadding(colDir, ownerWidth)

	if n.measure != nil {
		t.measureNode(n, availableWidth, availableHeight, widthMode, heightMode, ownerWidth, ownerHeight)
		return
	}
	if len(n.children) == 0 {
		n.sizeEmptyContainer(availableWidth, availableHeight, widthMode, heightMode, ownerWidth, ownerHeight)
		return
	}
	// when only measuring, the size may already follow from the constraints
	if !performLayout && n.sizeFixed(availableWidth, availableHeight, widthMode, heightMode, ownerWidth, ownerHeight) {
		return
	}
	n.layout.HadOverflow = false

	p := t.newFlexPass(n, direction, availableWidth, availableHeight, widthMode, heightMode,
		ownerWidth, ownerHeight, performLayout)
	p.computeFlexBases()
	for start := 0; start < len(n.children); {
		line := p.collectLine(start)
		p.resolveFlexibleLengths(line)
		p.justifyMainAxis(line)
		if performLayout {
			p.alignCrossAxis(line)
		}
		p.totalLineCrossDim += line.crossDim
		p.maxLineMainDim = dimen.Max(p.maxLineMainDim, line.mainDim)
		p.lineCount++
		start = line.end
	}
	if performLayout && (p.lineCount > 1 || t.isBaselineLayout(n)) &&
		dimen.IsDefined(p.availableInnerCrossDim) {
		p.alignContent()
	}
	p.setFinalDimensions()
	if performLayout {
		if n.style.FlexWrap == WrapWrapReverse {
			p.reverseWrappedLines()
		}
		for _, child := range p.absoluteChildren {
			mode := p.crossMode
			if p.isMainAxisRow {
				mode = p.mainMode
			}
			t.absoluteLayoutChild(n, child, p.availableInnerWidth, mode, p.availableInnerHeight, direction)
		}
		p.setTrailingPositions()
	}
}

// newFlexPass computes the values needed for the rest of the algorithm,
// including the inner sizes available in main and cross direction.
func (t *Tree) newFlexPass(n *node, direction Direction, availableWidth, availableHeight float32,
	widthMode, heightMode MeasureMode, ownerWidth, ownerHeight float32, performLayout bool) *flexPass {
	//
	p := &flexPass{
		t:               t,
		n:               n,
		direction:       direction,
		performLayout:   performLayout,
		availableWidth:  availableWidth,
		availableHeight: availableHeight,
		ownerWidth:      ownerWidth,
		ownerHeight:     ownerHeight,
		widthMode:       widthMode,
		heightMode:      heightMode,
	}
	p.mainAxis = resolveFlexDirection(n.style.FlexDirection, direction)
	p.crossAxis = crossAxisOf(p.mainAxis, direction)
	p.isMainAxisRow = isRow(p.mainAxis)
	p.isWrap = n.style.FlexWrap != WrapNoWrap

	p.mainAxisOwnerSize, p.crossAxisOwnerSize = ownerHeight, ownerWidth
	p.mainMode, p.crossMode = heightMode, widthMode
	if p.isMainAxisRow {
		p.mainAxisOwnerSize, p.crossAxisOwnerSize = ownerWidth, ownerHeight
		p.mainMode, p.crossMode = widthMode, heightMode
	}
	p.leadingPaddingAndBorderMain = n.leadingPaddingAndBorder(p.mainAxis, ownerWidth)
	p.trailingPaddingAndBorderMain = n.trailingPaddingAndBorder(p.mainAxis, ownerWidth)
	p.leadingPaddingAndBorderCross = n.leadingPaddingAndBorder(p.crossAxis, ownerWidth)
	p.paddingAndBorderAxisMain = n.paddingAndBorderForAxis(p.mainAxis, ownerWidth)
	p.paddingAndBorderAxisCross = n.paddingAndBorderForAxis(p.crossAxis, ownerWidth)
	paddingAndBorderAxisRow, paddingAndBorderAxisColumn := p.paddingAndBorderAxisCross, p.paddingAndBorderAxisMain
	if p.isMainAxisRow {
		paddingAndBorderAxisRow, paddingAndBorderAxisColumn = p.paddingAndBorderAxisMain, p.paddingAndBorderAxisCross
	}
	p.marginAxisRow = n.marginForAxis(FlexDirectionRow, ownerWidth)
	p.marginAxisColumn = n.marginForAxis(FlexDirectionColumn, ownerWidth)

	minInnerWidth := n.style.MinDimensions.slots[DimensionWidth].Resolve(ownerWidth) -
		p.marginAxisRow - paddingAndBorderAxisRow
	maxInnerWidth := n.style.MaxDimensions.slots[DimensionWidth].Resolve(ownerWidth) -
		p.marginAxisRow - paddingAndBorderAxisRow
	minInnerHeight := n.style.MinDimensions.slots[DimensionHeight].Resolve(ownerHeight) -
		p.marginAxisColumn - paddingAndBorderAxisColumn
	maxInnerHeight := n.style.MaxDimensions.slots[DimensionHeight].Resolve(ownerHeight) -
		p.marginAxisColumn - paddingAndBorderAxisColumn
	p.minInnerMainDim, p.maxInnerMainDim = minInnerHeight, maxInnerHeight
	if p.isMainAxisRow {
		p.minInnerMainDim, p.maxInnerMainDim = minInnerWidth, maxInnerWidth
	}

	// max overrides the available size, min overrides both
	p.availableInnerWidth = availableWidth - p.marginAxisRow - paddingAndBorderAxisRow
	if dimen.IsDefined(p.availableInnerWidth) {
		p.availableInnerWidth = dimen.Max(dimen.Min(p.availableInnerWidth, maxInnerWidth), minInnerWidth)
	}
	p.availableInnerHeight = availableHeight - p.marginAxisColumn - paddingAndBorderAxisColumn
	if dimen.IsDefined(p.availableInnerHeight) {
		p.availableInnerHeight = dimen.Max(dimen.Min(p.availableInnerHeight, maxInnerHeight), minInnerHeight)
	}
	p.availableInnerMainDim, p.availableInnerCrossDim = p.availableInnerHeight, p.availableInnerWidth
	if p.isMainAxisRow {
		p.availableInnerMainDim, p.availableInnerCrossDim = p.availableInnerWidth, p.availableInnerHeight
	}
	return p
}

func (p *flexPass) child(i int) *node {
	return p.t.nodes[p.n.children[i]]
}

// computeFlexBases determines the flex basis of every in-flow child and
// collects the absolutely positioned children.
func (p *flexPass) computeFlexBases() {
	t, n := p.t, p.n
	// a single child which may grow and shrink gets a basis of 0 instead of
	// being measured and then flexed to fill the container
	var singleFlexChild *node
	if p.mainMode == MeasureModeExactly {
		for i := range n.children {
			child := p.child(i)
			if singleFlexChild != nil {
				if t.isFlex(child) {
					singleFlexChild = nil
					break
				}
			} else if t.resolveFlexGrow(child) > 0 && t.resolveFlexShrink(child) > 0 {
				singleFlexChild = child
			}
		}
	}
	var totalOuterFlexBasis float32
	for i := range n.children {
		child := p.child(i)
		if child.style.Display == DisplayNone {
			t.zeroOutLayout(child)
			child.hasNewLayout = true
			child.dirty = false
			continue
		}
		child.resolveDimensions()
		if p.performLayout {
			// initial position relative to the owner
			t.setPosition(child, child.resolveDirection(p.direction),
				p.availableInnerMainDim, p.availableInnerCrossDim, p.availableInnerWidth)
		}
		if child.style.PositionType == PositionTypeAbsolute {
			p.absoluteChildren = append(p.absoluteChildren, child)
			continue
		}
		if child == singleFlexChild {
			child.layout.computedFlexBasisGeneration = t.generation
			child.layout.computedFlexBasis = 0
		} else {
			t.computeFlexBasisForChild(n, child, p.availableInnerWidth, p.widthMode,
				p.availableInnerHeight, p.availableInnerWidth, p.availableInnerHeight,
				p.heightMode, p.direction)
		}
		totalOuterFlexBasis += child.layout.computedFlexBasis +
			child.marginForAxis(p.mainAxis, p.availableInnerWidth)
	}
	p.flexBasisOverflows = p.mainMode != MeasureModeUndefined &&
		totalOuterFlexBasis > p.availableInnerMainDim
	if p.isWrap && p.flexBasisOverflows && p.mainMode == MeasureModeAtMost {
		p.mainMode = MeasureModeExactly
	}
}

// collectLine adds children to a line, starting at index start, until the
// line is full or there are no children left.
func (p *flexPass) collectLine(start int) *flexLine {
	t, n := p.t, p.n
	line := &flexLine{start: start, end: start}
	for i := start; i < len(n.children); i++ {
		child := p.child(i)
		if child.style.Display == DisplayNone {
			line.end++
			continue
		}
		child.lineIndex = p.lineCount
		if child.style.PositionType != PositionTypeAbsolute {
			childMarginMain := child.marginForAxis(p.mainAxis, p.availableInnerWidth)
			basis := p.clampedFlexBasis(child)
			// in a multi-line container, an item which does not fit ends the line
			if line.sizeConsumedInclMin+basis+childMarginMain > p.availableInnerMainDim &&
				p.isWrap && line.itemsOnLine > 0 {
				break
			}
			line.sizeConsumedInclMin += basis + childMarginMain
			line.sizeConsumed += basis + childMarginMain
			line.itemsOnLine++
			if t.isFlex(child) {
				line.totalFlexGrowFactors += t.resolveFlexGrow(child)
				// shrink factors are scaled by the flex basis
				line.totalFlexShrinkScaledFactors += -t.resolveFlexShrink(child) * child.layout.computedFlexBasis
			}
			line.items = append(line.items, child)
		}
		line.end++
	}
	// total flex factors are floored to 1
	if line.totalFlexGrowFactors > 0 && line.totalFlexGrowFactors < 1 {
		line.totalFlexGrowFactors = 1
	}
	if line.totalFlexShrinkScaledFactors > 0 && line.totalFlexShrinkScaledFactors < 1 {
		line.totalFlexShrinkScaledFactors = 1
	}
	return line
}

// clampedFlexBasis returns the flex basis of child, bounded by its min and
// max main size.
func (p *flexPass) clampedFlexBasis(child *node) float32 {
	d := dim[p.mainAxis]
	max := child.style.MaxDimensions.slots[d].Resolve(p.mainAxisOwnerSize)
	min := child.style.MinDimensions.slots[d].Resolve(p.mainAxisOwnerSize)
	return dimen.Max(min, dimen.Min(max, child.layout.computedFlexBasis))
}

// flexedBasis is the starting size of child when flexing. Other than
// clampedFlexBasis, max wins over min.
func (p *flexPass) flexedBasis(child *node) float32 {
	d := dim[p.mainAxis]
	max := child.style.MaxDimensions.slots[d].Resolve(p.mainAxisOwnerSize)
	min := child.style.MinDimensions.slots[d].Resolve(p.mainAxisOwnerSize)
	return dimen.Min(max, dimen.Max(min, child.layout.computedFlexBasis))
}

// resolveFlexibleLengths distributes the free space of a line among its
// flexible items and lays out every item with its final main size.
func (p *flexPass) resolveFlexibleLengths(line *flexLine) {
	t, n := p.t, p.n
	// without an exact main size, the line size has to respect min and max
	if p.mainMode != MeasureModeExactly {
		switch {
		case dimen.IsDefined(p.minInnerMainDim) && line.sizeConsumed < p.minInnerMainDim:
			p.availableInnerMainDim = p.minInnerMainDim
		case dimen.IsDefined(p.maxInnerMainDim) && line.sizeConsumed > p.maxInnerMainDim:
			p.availableInnerMainDim = p.maxInnerMainDim
		case !t.config.UseLegacyStretchBehaviour &&
			(line.totalFlexGrowFactors == 0 || t.resolveFlexGrow(n) == 0):
			// nothing to flex, or the node itself cannot flex: the space
			// used is all the space needed
			p.availableInnerMainDim = line.sizeConsumed
		}
	}
	if dimen.IsDefined(p.availableInnerMainDim) {
		line.remainingFreeSpace = p.availableInnerMainDim - line.sizeConsumed
	} else if line.sizeConsumed < 0 {
		// sized by content, which allocates 0 for negative content
		line.remainingFreeSpace = -line.sizeConsumed
	}
	originalRemainingFreeSpace := line.remainingFreeSpace
	var deltaFreeSpace float32

	// if the cross size is known and no layout is wanted, flexing is not necessary
	canSkipFlex := !p.performLayout && p.crossMode == MeasureModeExactly
	if !canSkipFlex {
		// First pass: freeze the items whose min/max constraints trigger and
		// exclude them from the free space, so that the second pass gives
		// them the same size.
		var deltaFlexShrinkScaledFactors, deltaFlexGrowFactors float32
		for _, child := range line.items {
			childFlexBasis := p.flexedBasis(child)
			if line.remainingFreeSpace < 0 {
				flexShrinkScaledFactor := -t.resolveFlexShrink(child) * childFlexBasis
				if flexShrinkScaledFactor != 0 {
					baseMainSize := childFlexBasis +
						line.remainingFreeSpace/line.totalFlexShrinkScaledFactors*flexShrinkScaledFactor
					boundMainSize := child.boundAxis(p.mainAxis, baseMainSize,
						p.availableInnerMainDim, p.availableInnerWidth)
					if baseMainSize != boundMainSize {
						deltaFreeSpace -= boundMainSize - childFlexBasis
						deltaFlexShrinkScaledFactors -= flexShrinkScaledFactor
					}
				}
			} else if line.remainingFreeSpace > 0 {
				flexGrowFactor := t.resolveFlexGrow(child)
				if flexGrowFactor != 0 {
					baseMainSize := childFlexBasis +
						line.remainingFreeSpace/line.totalFlexGrowFactors*flexGrowFactor
					boundMainSize := child.boundAxis(p.mainAxis, baseMainSize,
						p.availableInnerMainDim, p.availableInnerWidth)
					if baseMainSize != boundMainSize {
						deltaFreeSpace -= boundMainSize - childFlexBasis
						deltaFlexGrowFactors -= flexGrowFactor
					}
				}
			}
		}
		line.totalFlexShrinkScaledFactors += deltaFlexShrinkScaledFactors
		line.totalFlexGrowFactors += deltaFlexGrowFactors
		line.remainingFreeSpace += deltaFreeSpace

		// Second pass: resolve the sizes of the flexible items.
		deltaFreeSpace = 0
		for _, child := range line.items {
			childFlexBasis := p.flexedBasis(child)
			updatedMainSize := childFlexBasis
			if line.remainingFreeSpace < 0 {
				flexShrinkScaledFactor := -t.resolveFlexShrink(child) * childFlexBasis
				if flexShrinkScaledFactor != 0 {
					var childSize float32
					if line.totalFlexShrinkScaledFactors == 0 {
						childSize = childFlexBasis + flexShrinkScaledFactor
					} else {
						childSize = childFlexBasis +
							(line.remainingFreeSpace/line.totalFlexShrinkScaledFactors)*flexShrinkScaledFactor
					}
					updatedMainSize = child.boundAxis(p.mainAxis, childSize,
						p.availableInnerMainDim, p.availableInnerWidth)
				}
			} else if line.remainingFreeSpace > 0 {
				if flexGrowFactor := t.resolveFlexGrow(child); flexGrowFactor != 0 {
					updatedMainSize = child.boundAxis(p.mainAxis,
						childFlexBasis+line.remainingFreeSpace/line.totalFlexGrowFactors*flexGrowFactor,
						p.availableInnerMainDim, p.availableInnerWidth)
				}
			}
			deltaFreeSpace -= updatedMainSize - childFlexBasis
			p.layoutFlexedChild(child, updatedMainSize)
		}
	}
	line.remainingFreeSpace = originalRemainingFreeSpace + deltaFreeSpace
	if line.remainingFreeSpace < 0 {
		n.layout.HadOverflow = true
	}
}

// layoutFlexedChild lays out a flex item with its resolved main size.
func (p *flexPass) layoutFlexedChild(child *node, mainSize float32) {
	t, n := p.t, p.n
	marginMain := child.marginForAxis(p.mainAxis, p.availableInnerWidth)
	marginCross := child.marginForAxis(p.crossAxis, p.availableInnerWidth)
	childMainSize := mainSize + marginMain
	childMainMode := MeasureModeExactly
	var childCrossSize float32
	var childCrossMode MeasureMode

	switch {
	case dimen.IsDefined(p.availableInnerCrossDim) &&
		!child.isStyleDimDefined(p.crossAxis, p.availableInnerCrossDim) &&
		p.crossMode == MeasureModeExactly &&
		!(p.isWrap && p.flexBasisOverflows) &&
		alignItem(n, child) == AlignStretch:
		childCrossSize = p.availableInnerCrossDim
		childCrossMode = MeasureModeExactly
	case !child.isStyleDimDefined(p.crossAxis, p.availableInnerCrossDim):
		childCrossSize = p.availableInnerCrossDim
		childCrossMode = MeasureModeAtMost
		if dimen.IsUndefined(childCrossSize) {
			childCrossMode = MeasureModeUndefined
		}
	default:
		resolved := child.resolvedDimensions[dim[p.crossAxis]]
		childCrossSize = resolved.Resolve(p.availableInnerCrossDim) + marginCross
		isLoosePercentage := resolved.unit == UnitPercent && p.crossMode != MeasureModeExactly
		childCrossMode = MeasureModeExactly
		if dimen.IsUndefined(childCrossSize) || isLoosePercentage {
			childCrossMode = MeasureModeUndefined
		}
	}

	if !child.style.AspectRatio.IsNone() {
		ratio := child.style.AspectRatio.value
		v := (childMainSize - marginMain) * ratio
		if p.isMainAxisRow {
			v = (childMainSize - marginMain) / ratio
		}
		childCrossSize = dimen.Max(v, child.paddingAndBorderForAxis(p.crossAxis, p.availableInnerWidth))
		childCrossMode = MeasureModeExactly
		// the owner's size constraint wins over flexing
		if t.isFlex(child) {
			childCrossSize = dimen.Min(childCrossSize-marginCross, p.availableInnerCrossDim)
			if p.isMainAxisRow {
				childMainSize = marginMain + childCrossSize*ratio
			} else {
				childMainSize = marginMain + childCrossSize/ratio
			}
		}
		childCrossSize += marginCross
	}

	child.constrainMaxSizeForMode(p.mainAxis, p.availableInnerMainDim, p.availableInnerWidth,
		&childMainMode, &childMainSize)
	child.constrainMaxSizeForMode(p.crossAxis, p.availableInnerCrossDim, p.availableInnerWidth,
		&childCrossMode, &childCrossSize)

	requiresStretchLayout := !child.isStyleDimDefined(p.crossAxis, p.availableInnerCrossDim) &&
		alignItem(n, child) == AlignStretch

	childWidth, childHeight := childCrossSize, childMainSize
	childWidthMode, childHeightMode := childCrossMode, childMainMode
	if p.isMainAxisRow {
		childWidth, childHeight = childMainSize, childCrossSize
		childWidthMode, childHeightMode = childMainMode, childCrossMode
	}
	t.layoutNodeInternal(child, childWidth, childHeight, p.direction,
		childWidthMode, childHeightMode, p.availableInnerWidth, p.availableInnerHeight,
		p.performLayout && !requiresStretchLayout, "flex")
	if child.layout.HadOverflow {
		n.layout.HadOverflow = true
	}
}

// justifyMainAxis positions the items of a line along the main axis and
// determines the cross size of the line.
func (p *flexPass) justifyMainAxis(line *flexLine) {
	n := p.n
	canSkipFlex := !p.performLayout && p.crossMode == MeasureModeExactly

	// with fit-content sizing, only a min main size leaves free space
	if p.mainMode == MeasureModeAtMost && line.remainingFreeSpace > 0 {
		minMain := n.style.MinDimensions.slots[dim[p.mainAxis]]
		if minMain.IsDefined() && minMain.Resolve(p.mainAxisOwnerSize) >= 0 {
			line.remainingFreeSpace = dimen.Max(0,
				minMain.Resolve(p.mainAxisOwnerSize)-(p.availableInnerMainDim-line.remainingFreeSpace))
		} else {
			line.remainingFreeSpace = 0
		}
	}

	autoMargins := 0
	for i := line.start; i < line.end; i++ {
		child := p.child(i)
		if child.style.Display == DisplayNone || child.style.PositionType != PositionTypeRelative {
			continue
		}
		if child.marginLeadingValue(p.mainAxis).IsAuto() {
			autoMargins++
		}
		if child.marginTrailingValue(p.mainAxis).IsAuto() {
			autoMargins++
		}
	}
	// auto margins take all the free space, leaving nothing to justify
	if autoMargins == 0 && line.itemsOnLine > 0 {
		free := line.remainingFreeSpace
		items := float32(line.itemsOnLine)
		switch n.style.JustifyContent {
		case JustifyCenter:
			line.leadingMainDim = free / 2
		case JustifyFlexEnd:
			line.leadingMainDim = free
		case JustifySpaceBetween:
			if line.itemsOnLine > 1 {
				line.betweenMainDim = dimen.Max(free, 0) / (items - 1)
			}
		case JustifySpaceAround:
			// space at the edges is half of the space between items
			line.betweenMainDim = free / items
			line.leadingMainDim = line.betweenMainDim / 2
		case JustifySpaceEvenly:
			line.betweenMainDim = free / (items + 1)
			line.leadingMainDim = line.betweenMainDim
		}
	}

	mainDim := p.leadingPaddingAndBorderMain + line.leadingMainDim
	var crossDim float32
	for i := line.start; i < line.end; i++ {
		child := p.child(i)
		if child.style.Display == DisplayNone {
			continue
		}
		if child.style.PositionType == PositionTypeAbsolute && child.isLeadingPosDefined(p.mainAxis) {
			if p.performLayout {
				// an absolute child with a leading offset goes where it says
				child.layout.Position[pos[p.mainAxis]] =
					child.leadingPosition(p.mainAxis, p.availableInnerMainDim) +
						n.leadingBorder(p.mainAxis) +
						child.leadingMargin(p.mainAxis, p.availableInnerWidth)
			}
			continue
		}
		if child.style.PositionType == PositionTypeAbsolute {
			if p.performLayout {
				child.layout.Position[pos[p.mainAxis]] += n.leadingBorder(p.mainAxis) + line.leadingMainDim
			}
			continue
		}
		if child.marginLeadingValue(p.mainAxis).IsAuto() {
			mainDim += line.remainingFreeSpace / float32(autoMargins)
		}
		if p.performLayout {
			child.layout.Position[pos[p.mainAxis]] += mainDim
		}
		if child.marginTrailingValue(p.mainAxis).IsAuto() {
			mainDim += line.remainingFreeSpace / float32(autoMargins)
		}
		if canSkipFlex {
			// measured dimensions are not available without the flex step
			mainDim += line.betweenMainDim + child.marginForAxis(p.mainAxis, p.availableInnerWidth) +
				child.layout.computedFlexBasis
			crossDim = p.availableInnerCrossDim
		} else {
			mainDim += line.betweenMainDim + child.dimWithMargin(p.mainAxis, p.availableInnerWidth)
			crossDim = dimen.Max(crossDim, child.dimWithMargin(p.crossAxis, p.availableInnerWidth))
		}
	}
	line.mainDim = mainDim + p.trailingPaddingAndBorderMain
	line.containerCrossAxis = p.containerCrossSize(crossDim)

	if !p.isWrap && p.crossMode == MeasureModeExactly {
		// a single line takes the cross size of the container
		crossDim = p.availableInnerCrossDim
	}
	line.crossDim = n.boundAxis(p.crossAxis, crossDim+p.paddingAndBorderAxisCross,
		p.crossAxisOwnerSize, p.ownerWidth) - p.paddingAndBorderAxisCross
}

// containerCrossSize is the inner cross size of the container. Without a
// definite cross size it follows from the largest item of the line.
func (p *flexPass) containerCrossSize(itemCrossDim float32) float32 {
	if p.crossMode == MeasureModeUndefined || p.crossMode == MeasureModeAtMost {
		return p.n.boundAxis(p.crossAxis, itemCrossDim+p.paddingAndBorderAxisCross,
			p.crossAxisOwnerSize, p.ownerWidth) - p.paddingAndBorderAxisCross
	}
	return p.availableInnerCrossDim
}

// alignCrossAxis positions the items of a line along the cross axis,
// stretching items if necessary.
func (p *flexPass) alignCrossAxis(line *flexLine) {
	n := p.n
	for i := line.start; i < line.end; i++ {
		child := p.child(i)
		if child.style.Display == DisplayNone {
			continue
		}
		if child.style.PositionType == PositionTypeAbsolute {
			// offsets given for an absolute child override the computed position
			crossPos := dimen.Undefined
			if child.isLeadingPosDefined(p.crossAxis) {
				crossPos = child.leadingPosition(p.crossAxis, p.availableInnerCrossDim) +
					n.leadingBorder(p.crossAxis) +
					child.leadingMargin(p.crossAxis, p.availableInnerWidth)
			}
			if dimen.IsUndefined(crossPos) {
				crossPos = n.leadingBorder(p.crossAxis) + child.leadingMargin(p.crossAxis, p.availableInnerWidth)
			}
			child.layout.Position[pos[p.crossAxis]] = crossPos
			continue
		}
		leadingCrossDim := p.leadingPaddingAndBorderCross
		align := alignItem(n, child)
		if align == AlignStretch &&
			!child.marginLeadingValue(p.crossAxis).IsAuto() &&
			!child.marginTrailingValue(p.crossAxis).IsAuto() {
			// lay out again, forcing the cross size of the line, unless the
			// child has a definite cross size
			if !child.isStyleDimDefined(p.crossAxis, p.availableInnerCrossDim) {
				p.stretchChild(child, line.crossDim)
			}
		} else {
			remainingCrossDim := line.containerCrossAxis - child.dimWithMargin(p.crossAxis, p.availableInnerWidth)
			leadingAuto := child.marginLeadingValue(p.crossAxis).IsAuto()
			trailingAuto := child.marginTrailingValue(p.crossAxis).IsAuto()
			switch {
			case leadingAuto && trailingAuto:
				leadingCrossDim += dimen.Max(0, remainingCrossDim/2)
			case trailingAuto:
			case leadingAuto:
				leadingCrossDim += dimen.Max(0, remainingCrossDim)
			case align == AlignFlexStart:
			case align == AlignCenter:
				leadingCrossDim += remainingCrossDim / 2
			default:
				leadingCrossDim += remainingCrossDim
			}
		}
		child.layout.Position[pos[p.crossAxis]] += p.totalLineCrossDim + leadingCrossDim
	}
}

// stretchChild lays out a stretched item with the cross size of its line.
func (p *flexPass) stretchChild(child *node, crossDim float32) {
	childMainSize := child.layout.measuredDimensions[dim[p.mainAxis]]
	childCrossSize := crossDim
	if !child.style.AspectRatio.IsNone() {
		ratio := child.style.AspectRatio.value
		childCrossSize = child.marginForAxis(p.crossAxis, p.availableInnerWidth)
		if p.isMainAxisRow {
			childCrossSize += childMainSize / ratio
		} else {
			childCrossSize += childMainSize * ratio
		}
	}
	childMainSize += child.marginForAxis(p.mainAxis, p.availableInnerWidth)
	childMainMode, childCrossMode := MeasureModeExactly, MeasureModeExactly
	child.constrainMaxSizeForMode(p.mainAxis, p.availableInnerMainDim, p.availableInnerWidth,
		&childMainMode, &childMainSize)
	child.constrainMaxSizeForMode(p.crossAxis, p.availableInnerCrossDim, p.availableInnerWidth,
		&childCrossMode, &childCrossSize)
	childWidth, childHeight := childCrossSize, childMainSize
	if p.isMainAxisRow {
		childWidth, childHeight = childMainSize, childCrossSize
	}
	childWidthMode, childHeightMode := MeasureModeExactly, MeasureModeExactly
	if dimen.IsUndefined(childWidth) {
		childWidthMode = MeasureModeUndefined
	}
	if dimen.IsUndefined(childHeight) {
		childHeightMode = MeasureModeUndefined
	}
	p.t.layoutNodeInternal(child, childWidth, childHeight, p.direction,
		childWidthMode, childHeightMode, p.availableInnerWidth, p.availableInnerHeight, true, "stretch")
}

// alignContent distributes the lines of a multi-line container along the
// cross axis and aligns items within their lines, including baselines.
func (p *flexPass) alignContent() {
	t, n := p.t, p.n
	remaining := p.availableInnerCrossDim - p.totalLineCrossDim
	fits := p.availableInnerCrossDim > p.totalLineCrossDim
	lines := float32(p.lineCount)
	var crossDimLead float32
	currentLead := p.leadingPaddingAndBorderCross
	switch n.style.AlignContent {
	case AlignFlexEnd:
		currentLead += remaining
	case AlignCenter:
		currentLead += remaining / 2
	case AlignStretch:
		if fits {
			crossDimLead = remaining / lines
		}
	case AlignSpaceAround:
		if fits {
			currentLead += remaining / (2 * lines)
			if p.lineCount > 1 {
				crossDimLead = remaining / lines
			}
		} else {
			currentLead += remaining / 2
		}
	case AlignSpaceBetween:
		if fits && p.lineCount > 1 {
			crossDimLead = remaining / (lines - 1)
		}
	}

	endIndex := 0
	for l := 0; l < p.lineCount; l++ {
		startIndex := endIndex
		// the height of the line and its end index
		var lineHeight, maxAscent, maxDescent float32
		i := startIndex
		for ; i < len(n.children); i++ {
			child := p.child(i)
			if child.style.Display == DisplayNone || child.style.PositionType != PositionTypeRelative {
				continue
			}
			if child.lineIndex != l {
				break
			}
			if child.isLayoutDimDefined(p.crossAxis) {
				lineHeight = dimen.Max(lineHeight, child.layout.measuredDimensions[dim[p.crossAxis]]+
					child.marginForAxis(p.crossAxis, p.availableInnerWidth))
			}
			if alignItem(n, child) == AlignBaseline {
				ascent := t.baselineOf(child) + child.leadingMargin(FlexDirectionColumn, p.availableInnerWidth)
				descent := child.layout.measuredDimensions[DimensionHeight] +
					child.marginForAxis(FlexDirectionColumn, p.availableInnerWidth) - ascent
				maxAscent = dimen.Max(maxAscent, ascent)
				maxDescent = dimen.Max(maxDescent, descent)
				lineHeight = dimen.Max(lineHeight, maxAscent+maxDescent)
			}
		}
		endIndex = i
		lineHeight += crossDimLead

		for i := startIndex; i < endIndex; i++ {
			child := p.child(i)
			if child.style.Display == DisplayNone || child.style.PositionType != PositionTypeRelative {
				continue
			}
			switch alignItem(n, child) {
			case AlignFlexStart:
				child.layout.Position[pos[p.crossAxis]] =
					currentLead + child.leadingMargin(p.crossAxis, p.availableInnerWidth)
			case AlignFlexEnd:
				child.layout.Position[pos[p.crossAxis]] = currentLead + lineHeight -
					child.trailingMargin(p.crossAxis, p.availableInnerWidth) -
					child.layout.measuredDimensions[dim[p.crossAxis]]
			case AlignCenter:
				childHeight := child.layout.measuredDimensions[dim[p.crossAxis]]
				child.layout.Position[pos[p.crossAxis]] = currentLead + (lineHeight-childHeight)/2
			case AlignStretch:
				child.layout.Position[pos[p.crossAxis]] =
					currentLead + child.leadingMargin(p.crossAxis, p.availableInnerWidth)
				// the child has been measured with the owner's cross size only,
				// re-measure it with the line height
				if !child.isStyleDimDefined(p.crossAxis, p.availableInnerCrossDim) {
					p.stretchToLine(child, lineHeight)
				}
			case AlignBaseline:
				child.layout.Position[EdgeTop] = currentLead + maxAscent - t.baselineOf(child) +
					child.leadingPosition(FlexDirectionColumn, p.availableInnerCrossDim)
			}
		}
		currentLead += lineHeight
	}
}

func (p *flexPass) stretchToLine(child *node, lineHeight float32) {
	childWidth, childHeight := lineHeight, lineHeight
	if p.isMainAxisRow {
		childWidth = child.layout.measuredDimensions[DimensionWidth] +
			child.marginForAxis(p.mainAxis, p.availableInnerWidth)
	} else {
		childHeight = child.layout.measuredDimensions[DimensionHeight] +
			child.marginForAxis(p.crossAxis, p.availableInnerWidth)
	}
	if dimen.Equal(childWidth, child.layout.measuredDimensions[DimensionWidth]) &&
		dimen.Equal(childHeight, child.layout.measuredDimensions[DimensionHeight]) {
		return
	}
	p.t.layoutNodeInternal(child, childWidth, childHeight, p.direction,
		MeasureModeExactly, MeasureModeExactly, p.availableInnerWidth, p.availableInnerHeight,
		true, "multiline-stretch")
}

// setFinalDimensions computes the measured dimensions of the container.
// Without a definite size, the size follows from the lines.
func (p *flexPass) setFinalDimensions() {
	n := p.n
	n.layout.measuredDimensions[DimensionWidth] = n.boundAxis(FlexDirectionRow,
		p.availableWidth-p.marginAxisRow, p.ownerWidth, p.ownerWidth)
	n.layout.measuredDimensions[DimensionHeight] = n.boundAxis(FlexDirectionColumn,
		p.availableHeight-p.marginAxisColumn, p.ownerHeight, p.ownerWidth)

	scroll := n.style.Overflow == OverflowScroll
	mainDim, crossDim := dim[p.mainAxis], dim[p.crossAxis]
	if p.mainMode == MeasureModeUndefined || (!scroll && p.mainMode == MeasureModeAtMost) {
		n.layout.measuredDimensions[mainDim] = n.boundAxis(p.mainAxis, p.maxLineMainDim,
			p.mainAxisOwnerSize, p.ownerWidth)
	} else if p.mainMode == MeasureModeAtMost && scroll {
		n.layout.measuredDimensions[mainDim] = dimen.Max(
			dimen.Min(p.availableInnerMainDim+p.paddingAndBorderAxisMain,
				n.boundAxisWithinMinAndMax(p.mainAxis, p.maxLineMainDim, p.mainAxisOwnerSize)),
			p.paddingAndBorderAxisMain)
	}
	if p.crossMode == MeasureModeUndefined || (!scroll && p.crossMode == MeasureModeAtMost) {
		n.layout.measuredDimensions[crossDim] = n.boundAxis(p.crossAxis,
			p.totalLineCrossDim+p.paddingAndBorderAxisCross, p.crossAxisOwnerSize, p.ownerWidth)
	} else if p.crossMode == MeasureModeAtMost && scroll {
		n.layout.measuredDimensions[crossDim] = dimen.Max(
			dimen.Min(p.availableInnerCrossDim+p.paddingAndBorderAxisCross,
				n.boundAxisWithinMinAndMax(p.crossAxis, p.totalLineCrossDim+p.paddingAndBorderAxisCross,
					p.crossAxisOwnerSize)),
			p.paddingAndBorderAxisCross)
	}
}

// reverseWrappedLines mirrors the cross positions for wrap-reverse, as
// lines have been laid out in normal direction.
func (p *flexPass) reverseWrappedLines() {
	n := p.n
	for i := range n.children {
		child := p.child(i)
		if child.style.PositionType == PositionTypeRelative {
			child.layout.Position[pos[p.crossAxis]] = n.layout.measuredDimensions[dim[p.crossAxis]] -
				child.layout.Position[pos[p.crossAxis]] -
				child.layout.measuredDimensions[dim[p.crossAxis]]
		}
	}
}

// setTrailingPositions sets the trailing positions of children for
// reversed axes.
func (p *flexPass) setTrailingPositions() {
	needsMain := p.mainAxis == FlexDirectionRowReverse || p.mainAxis == FlexDirectionColumnReverse
	needsCross := p.crossAxis == FlexDirectionRowReverse || p.crossAxis == FlexDirectionColumnReverse
	if !needsMain && !needsCross {
		return
	}
	for i := range p.n.children {
		child := p.child(i)
		if child.style.Display == DisplayNone {
			continue
		}
		if needsMain {
			setChildTrailingPosition(p.n, child, p.mainAxis)
		}
		if needsCross {
			setChildTrailingPosition(p.n, child, p.crossAxis)
		}
	}
}
