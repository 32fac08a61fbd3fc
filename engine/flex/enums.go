package flex

// Align is the type for align-items, align-self and align-content.
type Align int8

// Alignment values.
const (
	AlignAuto Align = iota
	AlignFlexStart
	AlignCenter
	AlignFlexEnd
	AlignStretch
	AlignBaseline
	AlignSpaceBetween
	AlignSpaceAround
)

func (a Align) String() string {
	switch a {
	case AlignAuto:
		return "auto"
	case AlignFlexStart:
		return "flex-start"
	case AlignCenter:
		return "center"
	case AlignFlexEnd:
		return "flex-end"
	case AlignStretch:
		return "stretch"
	case AlignBaseline:
		return "baseline"
	case AlignSpaceBetween:
		return "space-between"
	case AlignSpaceAround:
		return "space-around"
	}
	return "unknown"
}

// Dimension is an index for width or height.
type Dimension int8

// Dimensions
const (
	DimensionWidth Dimension = iota
	DimensionHeight
)

// DimensionCount is the number of dimensions.
const DimensionCount = 2

func (d Dimension) String() string {
	switch d {
	case DimensionWidth:
		return "width"
	case DimensionHeight:
		return "height"
	}
	return "unknown"
}

// Direction is the inline direction of a node.
type Direction int8

// Directions. DirectionInherit takes the direction of the owner.
const (
	DirectionInherit Direction = iota
	DirectionLTR
	DirectionRTL
)

// directionUnset marks a layout which has never been computed.
const directionUnset Direction = -1

func (d Direction) String() string {
	switch d {
	case DirectionInherit:
		return "inherit"
	case DirectionLTR:
		return "ltr"
	case DirectionRTL:
		return "rtl"
	}
	return "unknown"
}

// Display switches a node on or off.
type Display int8

// Display values
const (
	DisplayFlex Display = iota
	DisplayNone
)

func (d Display) String() string {
	if d == DisplayNone {
		return "none"
	}
	return "flex"
}

// Edge selects one side of a box. Start and End are resolved with
// respect to the node's direction; Horizontal, Vertical and All set more
// than one side at once.
type Edge int8

// Edges
const (
	EdgeLeft Edge = iota
	EdgeTop
	EdgeRight
	EdgeBottom
	EdgeStart
	EdgeEnd
	EdgeHorizontal
	EdgeVertical
	EdgeAll
)

// EdgeCount is the number of edges a style may set.
const EdgeCount = 9

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeStart:
		return "start"
	case EdgeEnd:
		return "end"
	case EdgeHorizontal:
		return "horizontal"
	case EdgeVertical:
		return "vertical"
	case EdgeAll:
		return "all"
	}
	return "unknown"
}

// ExperimentalFeature selects layout behaviour not enabled by default.
type ExperimentalFeature int8

// Experimental features
const (
	// WebFlexBasis recomputes the flex basis of children in every layout pass.
	ExperimentalFeatureWebFlexBasis ExperimentalFeature = iota
	experimentalFeatureCount
)

// FlexDirection is the direction of the main axis.
type FlexDirection int8

// Flex directions
const (
	FlexDirectionColumn FlexDirection = iota
	FlexDirectionColumnReverse
	FlexDirectionRow
	FlexDirectionRowReverse
)

func (f FlexDirection) String() string {
	switch f {
	case FlexDirectionColumn:
		return "column"
	case FlexDirectionColumnReverse:
		return "column-reverse"
	case FlexDirectionRow:
		return "row"
	case FlexDirectionRowReverse:
		return "row-reverse"
	}
	return "unknown"
}

// Justify is the type for justify-content.
type Justify int8

// Justification values
const (
	JustifyFlexStart Justify = iota
	JustifyCenter
	JustifyFlexEnd
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

func (j Justify) String() string {
	switch j {
	case JustifyFlexStart:
		return "flex-start"
	case JustifyCenter:
		return "center"
	case JustifyFlexEnd:
		return "flex-end"
	case JustifySpaceBetween:
		return "space-between"
	case JustifySpaceAround:
		return "space-around"
	case JustifySpaceEvenly:
		return "space-evenly"
	}
	return "unknown"
}

// MeasureMode is the kind of constraint given for a dimension.
//
//	MeasureModeUndefined: no constraint, size to content (max-content)
//	MeasureModeExactly:   the size is given (fill-available)
//	MeasureModeAtMost:    the size is an upper bound (fit-content)
type MeasureMode int8

// Measure modes
const (
	MeasureModeUndefined MeasureMode = iota
	MeasureModeExactly
	MeasureModeAtMost
)

// measureModeUnset marks a cache entry which holds no measurement.
const measureModeUnset MeasureMode = -1

func (m MeasureMode) String() string {
	switch m {
	case MeasureModeUndefined:
		return "undefined"
	case MeasureModeExactly:
		return "exactly"
	case MeasureModeAtMost:
		return "at-most"
	case measureModeUnset:
		return "unset"
	}
	return "unknown"
}

// NodeType distinguishes text nodes, which are rounded differently.
type NodeType int8

// Node types
const (
	NodeTypeDefault NodeType = iota
	NodeTypeText
)

// Overflow is the type for overflow.
type Overflow int8

// Overflow values
const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
)

func (o Overflow) String() string {
	switch o {
	case OverflowVisible:
		return "visible"
	case OverflowHidden:
		return "hidden"
	case OverflowScroll:
		return "scroll"
	}
	return "unknown"
}

// PositionType is the type for position.
type PositionType int8

// Position types
const (
	PositionTypeRelative PositionType = iota
	PositionTypeAbsolute
)

func (p PositionType) String() string {
	if p == PositionTypeAbsolute {
		return "absolute"
	}
	return "relative"
}

// Wrap is the type for flex-wrap.
type Wrap int8

// Wrap values
const (
	WrapNoWrap Wrap = iota
	WrapWrap
	WrapWrapReverse
)

func (w Wrap) String() string {
	switch w {
	case WrapNoWrap:
		return "nowrap"
	case WrapWrap:
		return "wrap"
	case WrapWrapReverse:
		return "wrap-reverse"
	}
	return "unknown"
}
