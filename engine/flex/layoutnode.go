package flex

import (
	"strings"

	"github.com/npillmayer/flexlayout/core/dimen"
)

// layoutNodeInternal wraps layoutImpl. It skips laying out a node if the
// result is already known from one of the node's caches.
//
// Layout results and measurements are cached separately: a layout pass
// changes positions and sizes of the whole subtree, and each node is laid
// out at most once per pass, while it may be measured many times to resolve
// flexible sizes. Nodes with a measure function are treated specially, as
// they are the most expensive to measure.
//
// It returns true if layoutImpl has been called.
func (t *Tree) layoutNodeInternal(n *node, availableWidth, availableHeight float32,
	ownerDirection Direction, widthMode, heightMode MeasureMode,
	ownerWidth, ownerHeight float32, performLayout bool, reason string) bool {
	//
	layout := &n.layout
	t.depth++
	defer func() { t.depth-- }()

	needToVisit := (n.dirty && layout.generationCount != t.generation) ||
		layout.lastOwnerDirection != ownerDirection
	if needToVisit {
		layout.cache.Clear()
		layout.cachedLayout = NewCachedMeasurement()
	}

	var cached CachedMeasurement
	var found bool
	switch {
	case n.measure != nil:
		marginRow := n.marginForAxis(FlexDirectionRow, ownerWidth)
		marginColumn := n.marginForAxis(FlexDirectionColumn, ownerWidth)
		compatible := func(m CachedMeasurement) bool {
			return canUseCachedMeasurement(widthMode, availableWidth, heightMode, availableHeight,
				m, marginRow, marginColumn, t.config)
		}
		if compatible(layout.cachedLayout) {
			cached, found = layout.cachedLayout, true
		} else {
			cached, found = layout.cache.Search(compatible)
		}
	case performLayout:
		if dimen.Equal(layout.cachedLayout.AvailableWidth, availableWidth) &&
			dimen.Equal(layout.cachedLayout.AvailableHeight, availableHeight) &&
			layout.cachedLayout.WidthMeasureMode == widthMode &&
			layout.cachedLayout.HeightMeasureMode == heightMode {
			cached, found = layout.cachedLayout, true
		}
	default:
		cached, found = layout.cache.Find(availableWidth, availableHeight, widthMode, heightMode)
	}

	if !needToVisit && found {
		layout.measuredDimensions[DimensionWidth] = cached.ComputedWidth
		layout.measuredDimensions[DimensionHeight] = cached.ComputedHeight
		if t.config.PrintTree {
			tracer().Debugf("%s%d.{[skipped] wm=%s hm=%s aw=%s ah=%s => d=(%s,%s) %s",
				indent(t.depth), t.depth, widthMode, heightMode,
				dimen.Format(availableWidth), dimen.Format(availableHeight),
				dimen.Format(cached.ComputedWidth), dimen.Format(cached.ComputedHeight), reason)
		}
	} else {
		if t.config.PrintTree {
			tracer().Debugf("%s%d.{%s node %d wm=%s hm=%s aw=%s ah=%s %s",
				indent(t.depth), t.depth, visitMark(needToVisit), n.id, widthMode, heightMode,
				dimen.Format(availableWidth), dimen.Format(availableHeight), reason)
		}
		t.layoutImpl(n, availableWidth, availableHeight, ownerDirection, widthMode, heightMode,
			ownerWidth, ownerHeight, performLayout)
		if t.config.PrintTree {
			tracer().Debugf("%s%d.}%s node %d wm=%s hm=%s d=(%s,%s) %s",
				indent(t.depth), t.depth, visitMark(needToVisit), n.id, widthMode, heightMode,
				dimen.Format(layout.measuredDimensions[DimensionWidth]),
				dimen.Format(layout.measuredDimensions[DimensionHeight]), reason)
		}
		layout.lastOwnerDirection = ownerDirection
		if !found {
			entry := CachedMeasurement{
				AvailableWidth:    availableWidth,
				AvailableHeight:   availableHeight,
				WidthMeasureMode:  widthMode,
				HeightMeasureMode: heightMode,
				ComputedWidth:     layout.measuredDimensions[DimensionWidth],
				ComputedHeight:    layout.measuredDimensions[DimensionHeight],
			}
			if performLayout {
				layout.cachedLayout = entry
			} else {
				if layout.cache.Len() == MaxCachedMeasurements && t.config.PrintTree {
					tracer().Debugf("measurement cache of node %d is full", n.id)
				}
				layout.cache.Insert(entry)
			}
		}
	}

	if performLayout {
		layout.Dimensions = layout.measuredDimensions
		n.hasNewLayout = true
		n.dirty = false
	}
	layout.generationCount = t.generation
	return needToVisit || !found
}

func indent(depth int) string {
	return strings.Repeat(" ", depth)
}

func visitMark(needToVisit bool) string {
	if needToVisit {
		return "*"
	}
	return ""
}

// canUseCachedMeasurement checks if a measurement taken under the
// constraints recorded in last is valid for new constraints. Apart from
// identical constraints, this is the case if
//
//   - the new size is exact and equals the size measured before,
//   - the old size was unconstrained and the result fits into the new
//     maximum, or
//   - the new maximum is stricter than the old one, but the result still
//     fits.
func canUseCachedMeasurement(widthMode MeasureMode, width float32, heightMode MeasureMode, height float32,
	last CachedMeasurement, marginRow, marginColumn float32, config *Config) bool {
	//
	if last.isEmpty() {
		return false
	}
	effWidth, effHeight := width, height
	effLastWidth, effLastHeight := last.AvailableWidth, last.AvailableHeight
	if config != nil && config.PointScaleFactor != 0 {
		scale := config.PointScaleFactor
		effWidth = dimen.RoundToPixelGrid(width, scale, false, false)
		effHeight = dimen.RoundToPixelGrid(height, scale, false, false)
		effLastWidth = dimen.RoundToPixelGrid(last.AvailableWidth, scale, false, false)
		effLastHeight = dimen.RoundToPixelGrid(last.AvailableHeight, scale, false, false)
	}
	sameWidth := last.WidthMeasureMode == widthMode && dimen.Equal(effLastWidth, effWidth)
	sameHeight := last.HeightMeasureMode == heightMode && dimen.Equal(effLastHeight, effHeight)

	widthOK := sameWidth ||
		sizeIsExactAndMatchesOldMeasuredSize(widthMode, width-marginRow, last.ComputedWidth) ||
		oldSizeIsUnspecifiedAndStillFits(widthMode, width-marginRow,
			last.WidthMeasureMode, last.ComputedWidth) ||
		newSizeIsStricterAndStillValid(widthMode, width-marginRow,
			last.WidthMeasureMode, last.AvailableWidth, last.ComputedWidth)
	heightOK := sameHeight ||
		sizeIsExactAndMatchesOldMeasuredSize(heightMode, height-marginColumn, last.ComputedHeight) ||
		oldSizeIsUnspecifiedAndStillFits(heightMode, height-marginColumn,
			last.HeightMeasureMode, last.ComputedHeight) ||
		newSizeIsStricterAndStillValid(heightMode, height-marginColumn,
			last.HeightMeasureMode, last.AvailableHeight, last.ComputedHeight)
	return widthOK && heightOK
}

func sizeIsExactAndMatchesOldMeasuredSize(mode MeasureMode, size, lastComputedSize float32) bool {
	return mode == MeasureModeExactly && dimen.Equal(size, lastComputedSize)
}

func oldSizeIsUnspecifiedAndStillFits(mode MeasureMode, size float32, lastMode MeasureMode,
	lastComputedSize float32) bool {
	return mode == MeasureModeAtMost && lastMode == MeasureModeUndefined &&
		(size >= lastComputedSize || dimen.Equal(size, lastComputedSize))
}

func newSizeIsStricterAndStillValid(mode MeasureMode, size float32, lastMode MeasureMode,
	lastSize, lastComputedSize float32) bool {
	return lastMode == MeasureModeAtMost && mode == MeasureModeAtMost &&
		lastSize > size && (lastComputedSize <= size || dimen.Equal(size, lastComputedSize))
}

// --- Baselines -----------------------------------------------------------------

// baselineOf returns the distance from the top of a node to its baseline.
// Without a baseline function, the baseline is the one of the first child
// on the first line which participates in baseline alignment, or else of
// the first child. A node without children uses its height.
func (t *Tree) baselineOf(n *node) float32 {
	if n.baseline != nil {
		b := n.baseline(t, n.id, n.layout.measuredDimensions[DimensionWidth],
			n.layout.measuredDimensions[DimensionHeight])
		if dimen.IsUndefined(b) {
			tracer().Errorf("baseline function of node %d returned an undefined value", n.id)
			return n.layout.measuredDimensions[DimensionHeight]
		}
		return b
	}
	var baselineChild *node
	for _, c := range n.children {
		child := t.nodes[c]
		if child.lineIndex > 0 {
			break
		}
		if child.style.PositionType == PositionTypeAbsolute {
			continue
		}
		if alignItem(n, child) == AlignBaseline {
			baselineChild = child
			break
		}
		if baselineChild == nil {
			baselineChild = child
		}
	}
	if baselineChild == nil {
		return n.layout.measuredDimensions[DimensionHeight]
	}
	return t.baselineOf(baselineChild) + baselineChild.layout.Position[EdgeTop]
}

// isBaselineLayout is true for row containers with items aligned to
// their baselines.
func (t *Tree) isBaselineLayout(n *node) bool {
	if isColumn(n.style.FlexDirection) {
		return false
	}
	if n.style.AlignItems == AlignBaseline {
		return true
	}
	for _, c := range n.children {
		child := t.nodes[c]
		if child.style.PositionType == PositionTypeRelative && child.style.AlignSelf == AlignBaseline {
			return true
		}
	}
	return false
}
