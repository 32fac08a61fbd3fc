package fixture

import (
	"strconv"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/flexlayout/core"
	"github.com/npillmayer/flexlayout/core/dimen"
	"github.com/npillmayer/flexlayout/engine/flex"
)

// applyStyle parses an inline style declaration and sets the corresponding
// style properties of node n.
func applyStyle(t *flex.Tree, n flex.NodeID, style string) error {
	if strings.TrimSpace(style) == "" {
		return nil
	}
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		return core.WrapError(err, core.ESYNTAX, "cannot parse style %q", style)
	}
	for _, decl := range decls {
		prop := strings.ToLower(strings.TrimSpace(decl.Property))
		value := strings.ToLower(strings.TrimSpace(decl.Value))
		if err := applyProperty(t, n, prop, value); err != nil {
			return err
		}
	}
	return nil
}

var sideEdges = map[string]flex.Edge{
	"left":       flex.EdgeLeft,
	"top":        flex.EdgeTop,
	"right":      flex.EdgeRight,
	"bottom":     flex.EdgeBottom,
	"start":      flex.EdgeStart,
	"end":        flex.EdgeEnd,
	"horizontal": flex.EdgeHorizontal,
	"vertical":   flex.EdgeVertical,
}

var keywords = map[string]map[string]int{
	"flex-direction": {
		"column": int(flex.FlexDirectionColumn), "column-reverse": int(flex.FlexDirectionColumnReverse),
		"row": int(flex.FlexDirectionRow), "row-reverse": int(flex.FlexDirectionRowReverse),
	},
	"flex-wrap": {
		"nowrap": int(flex.WrapNoWrap), "wrap": int(flex.WrapWrap), "wrap-reverse": int(flex.WrapWrapReverse),
	},
	"justify-content": {
		"flex-start": int(flex.JustifyFlexStart), "center": int(flex.JustifyCenter),
		"flex-end": int(flex.JustifyFlexEnd), "space-between": int(flex.JustifySpaceBetween),
		"space-around": int(flex.JustifySpaceAround), "space-evenly": int(flex.JustifySpaceEvenly),
	},
	"align": {
		"auto": int(flex.AlignAuto), "flex-start": int(flex.AlignFlexStart), "center": int(flex.AlignCenter),
		"flex-end": int(flex.AlignFlexEnd), "stretch": int(flex.AlignStretch), "baseline": int(flex.AlignBaseline),
		"space-between": int(flex.AlignSpaceBetween), "space-around": int(flex.AlignSpaceAround),
	},
	"position": {
		"relative": int(flex.PositionTypeRelative), "static": int(flex.PositionTypeRelative),
		"absolute": int(flex.PositionTypeAbsolute),
	},
	"direction": {
		"inherit": int(flex.DirectionInherit), "ltr": int(flex.DirectionLTR), "rtl": int(flex.DirectionRTL),
	},
	"display": {
		"flex": int(flex.DisplayFlex), "none": int(flex.DisplayNone),
	},
	"overflow": {
		"visible": int(flex.OverflowVisible), "hidden": int(flex.OverflowHidden), "scroll": int(flex.OverflowScroll),
	},
}

func keyword(class, prop, value string) (int, error) {
	k, ok := keywords[class][value]
	if !ok {
		return 0, core.Error(core.ESYNTAX, "illegal value %q for property %s", value, prop)
	}
	return k, nil
}

func applyProperty(t *flex.Tree, n flex.NodeID, prop, value string) (err error) {
	tracer().Debugf("node %d: %s = %s", n, prop, value)
	var k int
	switch prop {
	case "width", "height", "min-width", "min-height", "max-width", "max-height":
		return applyDimension(t, n, prop, value)
	case "flex":
		return applyFlex(t, n, value)
	case "flex-grow", "flex-shrink":
		f, err := number(prop, value)
		if err != nil {
			return err
		}
		if prop == "flex-grow" {
			t.SetFlexGrow(n, f)
		} else {
			t.SetFlexShrink(n, f)
		}
	case "flex-basis":
		v, err := length(prop, value)
		if err != nil {
			return err
		}
		t.SetFlexBasis(n, v)
	case "flex-direction":
		if k, err = keyword(prop, prop, value); err == nil {
			t.SetFlexDirection(n, flex.FlexDirection(k))
		}
	case "flex-wrap":
		if k, err = keyword(prop, prop, value); err == nil {
			t.SetStyle(n, func(s *flex.Style) { s.FlexWrap = flex.Wrap(k) })
		}
	case "justify-content":
		if k, err = keyword(prop, prop, value); err == nil {
			t.SetStyle(n, func(s *flex.Style) { s.JustifyContent = flex.Justify(k) })
		}
	case "align-items", "align-self", "align-content":
		if k, err = keyword("align", prop, value); err == nil {
			t.SetStyle(n, func(s *flex.Style) {
				switch prop {
				case "align-items":
					s.AlignItems = flex.Align(k)
				case "align-self":
					s.AlignSelf = flex.Align(k)
				default:
					s.AlignContent = flex.Align(k)
				}
			})
		}
	case "position":
		if k, err = keyword(prop, prop, value); err == nil {
			t.SetStyle(n, func(s *flex.Style) { s.PositionType = flex.PositionType(k) })
		}
	case "direction":
		if k, err = keyword(prop, prop, value); err == nil {
			t.SetDirection(n, flex.Direction(k))
		}
	case "display":
		if k, err = keyword(prop, prop, value); err == nil {
			t.SetStyle(n, func(s *flex.Style) { s.Display = flex.Display(k) })
		}
	case "overflow":
		if k, err = keyword(prop, prop, value); err == nil {
			t.SetStyle(n, func(s *flex.Style) { s.Overflow = flex.Overflow(k) })
		}
	case "aspect-ratio":
		return applyAspectRatio(t, n, value)
	case "left", "top", "right", "bottom", "start", "end":
		v, err := length(prop, value)
		if err != nil {
			return err
		}
		t.SetPosition(n, sideEdges[prop], v)
	case "margin", "padding", "border-width":
		return applyEdgeShorthand(t, n, prop, value)
	default:
		return applyEdgeProperty(t, n, prop, value)
	}
	return err
}

// applyEdgeProperty handles margin-left, padding-start, border-top-width
// and the like.
func applyEdgeProperty(t *flex.Tree, n flex.NodeID, prop, value string) error {
	var class, side string
	switch {
	case strings.HasPrefix(prop, "margin-"):
		class, side = "margin", strings.TrimPrefix(prop, "margin-")
	case strings.HasPrefix(prop, "padding-"):
		class, side = "padding", strings.TrimPrefix(prop, "padding-")
	case strings.HasPrefix(prop, "border-") && strings.HasSuffix(prop, "-width"):
		class, side = "border-width", strings.TrimSuffix(strings.TrimPrefix(prop, "border-"), "-width")
	}
	edge, ok := sideEdges[side]
	if !ok {
		tracer().Infof("ignoring unsupported property %s", prop)
		return nil
	}
	return setEdge(t, n, class, prop, edge, value)
}

// applyEdgeShorthand handles the CSS box shorthand with 1 to 4 values.
func applyEdgeShorthand(t *flex.Tree, n flex.NodeID, prop, value string) error {
	values := strings.Fields(value)
	var edges []flex.Edge
	switch len(values) {
	case 1:
		edges = []flex.Edge{flex.EdgeAll}
	case 2:
		edges = []flex.Edge{flex.EdgeVertical, flex.EdgeHorizontal}
	case 3:
		edges = []flex.Edge{flex.EdgeTop, flex.EdgeHorizontal, flex.EdgeBottom}
	case 4:
		edges = []flex.Edge{flex.EdgeTop, flex.EdgeRight, flex.EdgeBottom, flex.EdgeLeft}
	default:
		return core.Error(core.ESYNTAX, "illegal value %q for property %s", value, prop)
	}
	for i, edge := range edges {
		if err := setEdge(t, n, prop, prop, edge, values[i]); err != nil {
			return err
		}
	}
	return nil
}

func setEdge(t *flex.Tree, n flex.NodeID, class, prop string, edge flex.Edge, value string) error {
	if class == "border-width" {
		v, err := length(prop, value)
		if err != nil {
			return err
		}
		if v.Unit() != flex.UnitPoint {
			return core.Error(core.ESYNTAX, "illegal value %q for property %s", value, prop)
		}
		t.SetBorder(n, edge, v.Value())
		return nil
	}
	v, err := length(prop, value)
	if err != nil {
		return err
	}
	if class == "margin" {
		t.SetMargin(n, edge, v)
	} else {
		t.SetPadding(n, edge, v)
	}
	return nil
}

func applyDimension(t *flex.Tree, n flex.NodeID, prop, value string) error {
	v, err := length(prop, value)
	if err != nil {
		return err
	}
	t.SetStyle(n, func(s *flex.Style) {
		switch prop {
		case "width":
			s.Dimensions.Set(int(flex.DimensionWidth), v)
		case "height":
			s.Dimensions.Set(int(flex.DimensionHeight), v)
		case "min-width":
			s.MinDimensions.Set(int(flex.DimensionWidth), v)
		case "min-height":
			s.MinDimensions.Set(int(flex.DimensionHeight), v)
		case "max-width":
			s.MaxDimensions.Set(int(flex.DimensionWidth), v)
		case "max-height":
			s.MaxDimensions.Set(int(flex.DimensionHeight), v)
		}
	})
	return nil
}

// applyFlex handles the flex shorthand. A single number sets the flex
// factor; otherwise grow, shrink and an optional basis are given.
func applyFlex(t *flex.Tree, n flex.NodeID, value string) error {
	values := strings.Fields(value)
	switch {
	case value == "none":
		t.SetStyle(n, func(s *flex.Style) { s.Flex = flex.SomeFloat(0) })
		return nil
	case value == "auto":
		values = []string{"1", "1", "auto"}
	case len(values) == 1:
		f, err := number("flex", value)
		if err != nil {
			return err
		}
		t.SetStyle(n, func(s *flex.Style) { s.Flex = flex.SomeFloat(f) })
		return nil
	case len(values) > 3:
		return core.Error(core.ESYNTAX, "illegal value %q for property flex", value)
	}
	grow, err := number("flex", values[0])
	if err != nil {
		return err
	}
	shrink, err := number("flex", values[1])
	if err != nil {
		return err
	}
	basis := flex.Auto()
	if len(values) == 3 {
		if basis, err = length("flex", values[2]); err != nil {
			return err
		}
	}
	t.SetFlexGrow(n, grow)
	t.SetFlexShrink(n, shrink)
	t.SetFlexBasis(n, basis)
	return nil
}

// applyAspectRatio accepts a number or a ratio "w / h".
func applyAspectRatio(t *flex.Tree, n flex.NodeID, value string) error {
	ratio := dimen.Undefined
	if w, h, ok := strings.Cut(value, "/"); ok {
		fw, err := number("aspect-ratio", strings.TrimSpace(w))
		if err != nil {
			return err
		}
		fh, err := number("aspect-ratio", strings.TrimSpace(h))
		if err != nil {
			return err
		}
		if fh != 0 {
			ratio = fw / fh
		}
	} else if value != "auto" {
		f, err := number("aspect-ratio", value)
		if err != nil {
			return err
		}
		ratio = f
	}
	t.SetStyle(n, func(s *flex.Style) { s.AspectRatio = flex.SomeFloat(ratio) })
	return nil
}

func number(prop, value string) (float32, error) {
	f, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return 0, core.WrapError(err, core.ESYNTAX, "illegal value %q for property %s", value, prop)
	}
	return float32(f), nil
}

// length parses a CSS length, a percentage, or 'auto'.
func length(prop, value string) (flex.CompactValue, error) {
	switch value {
	case "auto":
		return flex.Auto(), nil
	case "", "undefined", "initial":
		return flex.Undefined(), nil
	}
	d, isPercent, err := dimen.ParseDimen(value)
	if err != nil {
		return flex.Undefined(), core.WrapError(err, core.ESYNTAX, "illegal value %q for property %s", value, prop)
	}
	if isPercent {
		return flex.Percent(d), nil
	}
	return flex.Point(d), nil
}
