package flex

import (
	"fmt"
	"strings"
)

// Style holds the flexbox properties of a node. Values are used values,
// i.e. there is no cascade or inheritance; 'inherit' exists only for
// Direction.
type Style struct {
	Direction      Direction
	FlexDirection  FlexDirection
	JustifyContent Justify
	AlignContent   Align
	AlignItems     Align
	AlignSelf      Align
	PositionType   PositionType
	FlexWrap       Wrap
	Overflow       Overflow
	Display        Display
	Flex           FloatOption
	FlexGrow       FloatOption
	FlexShrink     FloatOption
	FlexBasis      CompactValue
	Margin         EdgeValues
	Position       EdgeValues
	Padding        EdgeValues
	Border         EdgeValues
	Dimensions     DimensionValues
	MinDimensions  DimensionValues
	MaxDimensions  DimensionValues
	// AspectRatio is width/height. Not part of CSS flexbox.
	AspectRatio FloatOption
}

// Default values for flex factors.
const (
	defaultFlexGrow      float32 = 0
	defaultFlexShrink    float32 = 0
	webDefaultFlexShrink float32 = 1
)

// DefaultStyle returns the style a new node starts with. Web defaults in
// config switch the main axis to row and align-content to stretch.
func DefaultStyle(config *Config) Style {
	s := Style{
		Direction:      DirectionInherit,
		FlexDirection:  FlexDirectionColumn,
		JustifyContent: JustifyFlexStart,
		AlignContent:   AlignFlexStart,
		AlignItems:     AlignStretch,
		AlignSelf:      AlignAuto,
		PositionType:   PositionTypeRelative,
		FlexWrap:       WrapNoWrap,
		Overflow:       OverflowVisible,
		Display:        DisplayFlex,
		FlexBasis:      Auto(),
		Dimensions:     NewValues[[DimensionCount]CompactValue](Auto()),
	}
	if config != nil && config.UseWebDefaults {
		s.FlexDirection = FlexDirectionRow
		s.AlignContent = AlignStretch
	}
	return s
}

// sanitize clamps values which make no sense to valid ones: negative
// sizes, paddings and borders become zero. Margins and offsets may be
// negative.
func (s *Style) sanitize() {
	clampValues(s.Dimensions.slots[:])
	clampValues(s.MinDimensions.slots[:])
	clampValues(s.MaxDimensions.slots[:])
	clampValues(s.Padding.slots[:])
	clampValues(s.Border.slots[:])
	if s.FlexBasis.unit != UnitAuto && s.FlexBasis.unit != UnitUndefined && s.FlexBasis.value < 0 {
		s.FlexBasis.value = 0
	}
	if !s.FlexGrow.IsNone() && s.FlexGrow.value < 0 {
		s.FlexGrow.value = 0
	}
	if !s.FlexShrink.IsNone() && s.FlexShrink.value < 0 {
		s.FlexShrink.value = 0
	}
	if !s.AspectRatio.IsNone() && s.AspectRatio.value <= 0 {
		s.AspectRatio = NoFloat()
	}
}

func clampValues(slots []CompactValue) {
	for i := range slots {
		if (slots[i].unit == UnitPoint || slots[i].unit == UnitPercent) && slots[i].value < 0 {
			slots[i].value = 0
		}
	}
}

// String lists the properties of s which differ from the default style.
func (s Style) String() string {
	d := DefaultStyle(nil)
	var b strings.Builder
	prop := func(name string, v interface{}) {
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %v", name, v)
	}
	if s.Direction != d.Direction {
		prop("direction", s.Direction)
	}
	if s.FlexDirection != d.FlexDirection {
		prop("flex-direction", s.FlexDirection)
	}
	if s.JustifyContent != d.JustifyContent {
		prop("justify-content", s.JustifyContent)
	}
	if s.AlignContent != d.AlignContent {
		prop("align-content", s.AlignContent)
	}
	if s.AlignItems != d.AlignItems {
		prop("align-items", s.AlignItems)
	}
	if s.AlignSelf != d.AlignSelf {
		prop("align-self", s.AlignSelf)
	}
	if s.PositionType != d.PositionType {
		prop("position", s.PositionType)
	}
	if s.FlexWrap != d.FlexWrap {
		prop("flex-wrap", s.FlexWrap)
	}
	if s.Overflow != d.Overflow {
		prop("overflow", s.Overflow)
	}
	if s.Display != d.Display {
		prop("display", s.Display)
	}
	if !s.Flex.IsNone() {
		prop("flex", s.Flex)
	}
	if !s.FlexGrow.IsNone() {
		prop("flex-grow", s.FlexGrow)
	}
	if !s.FlexShrink.IsNone() {
		prop("flex-shrink", s.FlexShrink)
	}
	if !s.FlexBasis.Equals(d.FlexBasis) {
		prop("flex-basis", s.FlexBasis)
	}
	edges := func(name string, v EdgeValues) {
		for e := EdgeLeft; e < EdgeCount; e++ {
			if c := edgeValue(&v, e); c.IsDefined() {
				prop(name+"-"+e.String(), c)
			}
		}
	}
	edges("margin", s.Margin)
	edges("position", s.Position)
	edges("padding", s.Padding)
	edges("border", s.Border)
	dims := func(prefix string, v, def DimensionValues) {
		for dim := DimensionWidth; dim < DimensionCount; dim++ {
			if c := dimValue(&v, dim); !c.Equals(dimValue(&def, dim)) {
				prop(prefix+dim.String(), c)
			}
		}
	}
	dims("", s.Dimensions, d.Dimensions)
	dims("min-", s.MinDimensions, d.MinDimensions)
	dims("max-", s.MaxDimensions, d.MaxDimensions)
	if !s.AspectRatio.IsNone() {
		prop("aspect-ratio", s.AspectRatio)
	}
	return b.String()
}
