package flex

import (
	"fmt"

	"github.com/npillmayer/flexlayout/core/dimen"
)

// Unit is the tag of a CompactValue.
type Unit int8

// Units. The zero value is UnitUndefined.
const (
	UnitUndefined Unit = iota
	UnitPoint
	UnitPercent
	UnitAuto
)

func (u Unit) String() string {
	switch u {
	case UnitUndefined:
		return "undefined"
	case UnitPoint:
		return "point"
	case UnitPercent:
		return "percent"
	case UnitAuto:
		return "auto"
	}
	return "unknown"
}

// CompactValue is a style value: a length in points, a percentage of the
// owner's size, the marker 'auto', or no value at all.
//
// CompactValue is an immutable value type. Its zero value is undefined.
// A CompactValue never carries NaN; constructing a length or a percentage
// from NaN results in an undefined value.
type CompactValue struct {
	value float32
	unit  Unit
}

// Point creates a length value.
func Point(v float32) CompactValue {
	if dimen.IsUndefined(v) {
		return CompactValue{}
	}
	return CompactValue{value: v, unit: UnitPoint}
}

// Percent creates a percentage value. Percent(50) is 50%.
func Percent(v float32) CompactValue {
	if dimen.IsUndefined(v) {
		return CompactValue{}
	}
	return CompactValue{value: v, unit: UnitPercent}
}

// Auto creates the value 'auto'.
func Auto() CompactValue {
	return CompactValue{unit: UnitAuto}
}

// Undefined creates a value which is not set.
func Undefined() CompactValue {
	return CompactValue{}
}

// Unit returns the tag of c.
func (c CompactValue) Unit() Unit {
	return c.unit
}

// Value returns the numeric payload of c, or NaN for undefined and auto.
func (c CompactValue) Value() float32 {
	if c.unit == UnitPoint || c.unit == UnitPercent {
		return c.value
	}
	return dimen.Undefined
}

// IsUndefined is true if c is not set.
func (c CompactValue) IsUndefined() bool {
	return c.unit == UnitUndefined
}

// IsDefined is true if c is set, including 'auto'.
func (c CompactValue) IsDefined() bool {
	return c.unit != UnitUndefined
}

// IsAuto is true if c is 'auto'.
func (c CompactValue) IsAuto() bool {
	return c.unit == UnitAuto
}

// Equals compares tags and, for lengths and percentages, values.
func (c CompactValue) Equals(other CompactValue) bool {
	if c.unit != other.unit {
		return false
	}
	if c.unit == UnitUndefined || c.unit == UnitAuto {
		return true
	}
	return dimen.Equal(c.value, other.value)
}

// Resolve returns the value in points. Percentages are taken from
// ownerSize; if ownerSize is undefined, so is the result. Undefined and
// 'auto' resolve to undefined.
func (c CompactValue) Resolve(ownerSize float32) float32 {
	switch c.unit {
	case UnitPoint:
		return c.value
	case UnitPercent:
		return c.value * ownerSize / 100
	}
	return dimen.Undefined
}

// resolveMargin is like Resolve, but auto margins count as zero.
func (c CompactValue) resolveMargin(ownerSize float32) float32 {
	if c.unit == UnitAuto {
		return 0
	}
	return c.Resolve(ownerSize)
}

func (c CompactValue) String() string {
	switch c.unit {
	case UnitPoint:
		return dimen.Format(c.value) + "pt"
	case UnitPercent:
		return dimen.Format(c.value) + "%"
	case UnitAuto:
		return "auto"
	}
	return "undefined"
}

// GoString is used with %#v.
func (c CompactValue) GoString() string {
	return fmt.Sprintf("CompactValue{%s}", c.String())
}

// --- Optional floats -------------------------------------------------------

// FloatOption is an optional float32, used for style properties which are
// plain numbers (flex, flex-grow, flex-shrink, aspect-ratio).
type FloatOption struct {
	value float32
	set   bool
}

// SomeFloat creates an option with value v. NaN results in an unset option.
func SomeFloat(v float32) FloatOption {
	if dimen.IsUndefined(v) {
		return FloatOption{}
	}
	return FloatOption{value: v, set: true}
}

// NoFloat creates an unset option.
func NoFloat() FloatOption {
	return FloatOption{}
}

// IsNone is true if o is unset.
func (o FloatOption) IsNone() bool {
	return !o.set
}

// Unwrap returns the value of o, or NaN if unset.
func (o FloatOption) Unwrap() float32 {
	if !o.set {
		return dimen.Undefined
	}
	return o.value
}

// OrElse returns the value of o, or d if unset.
func (o FloatOption) OrElse(d float32) float32 {
	if !o.set {
		return d
	}
	return o.value
}

func (o FloatOption) String() string {
	if !o.set {
		return "none"
	}
	return dimen.Format(o.value)
}
