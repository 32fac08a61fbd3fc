// Package dimen implements dimensions, units and the float arithmetic
// layout code relies on.
//
// Layout sizes are float32 values in CSS pixels. A size may be undefined,
// which is represented in-band by NaN. Undefined sizes propagate: Max and
// Min prefer the defined operand, Equal treats two undefined values as
// equal, and every other combination has to be guarded with IsUndefined.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Undefined is the in-band marker for a size without a value.
var Undefined = float32(math.NaN())

// Epsilon is the tolerance for comparing sizes.
const Epsilon = 0.0001

// Scale factors from CSS units to CSS pixels.
const (
	PX float32 = 1
	IN float32 = 96
	PT float32 = IN / 72 // printers point, CSS flavour
	BP float32 = IN / 72 // big point (PDF) = 1/72 inch
	PC float32 = 12 * PT
	CM float32 = IN / 2.54
	MM float32 = CM / 10
)

// IsUndefined is true if f carries no value.
func IsUndefined(f float32) bool {
	return math.IsNaN(float64(f))
}

// IsDefined is true if f carries a value.
func IsDefined(f float32) bool {
	return !math.IsNaN(float64(f))
}

// Equal compares two sizes with a tolerance of Epsilon.
// Two undefined sizes are equal, an undefined size never equals a defined one.
func Equal(a, b float32) bool {
	if IsUndefined(a) {
		return IsUndefined(b)
	}
	if IsUndefined(b) {
		return false
	}
	return math.Abs(float64(a-b)) < Epsilon
}

// Max returns the greater of two sizes. If one of them is undefined, the
// other one is returned.
func Max(a, b float32) float32 {
	if IsUndefined(a) {
		return b
	}
	if IsUndefined(b) {
		return a
	}
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two sizes. If one of them is undefined, the
// other one is returned.
func Min(a, b float32) float32 {
	if IsUndefined(a) {
		return b
	}
	if IsUndefined(b) {
		return a
	}
	if a < b {
		return a
	}
	return b
}

// OrElse returns f, or d if f is undefined.
func OrElse(f, d float32) float32 {
	if IsUndefined(f) {
		return d
	}
	return f
}

// NonNegative clamps f to zero from below. Undefined stays undefined.
func NonNegative(f float32) float32 {
	if f < 0 {
		return 0
	}
	return f
}

// Format returns a compact textual form of a size, "undef" for undefined sizes.
func Format(f float32) string {
	if IsUndefined(f) {
		return "undef"
	}
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

// RoundToPixelGrid snaps a value to the grid given by scale, where scale is
// the number of physical pixels per layout pixel. forceCeil and forceFloor
// override rounding to nearest.
func RoundToPixelGrid(value, scale float32, forceCeil, forceFloor bool) float32 {
	scaled := float64(value * scale)
	fraction := math.Mod(scaled, 1.0)
	if fraction < 0 {
		fraction++
	}
	if Equal(float32(fraction), 0) {
		scaled -= fraction // first we check if the value is already rounded
	} else if Equal(float32(fraction), 1) {
		scaled = scaled - fraction + 1
	} else if forceCeil {
		scaled = scaled - fraction + 1 // next we check if we need to use forced rounding
	} else if forceFloor {
		scaled -= fraction
	} else {
		// finally we just round the value
		f := float32(0)
		if fraction > 0.5 || Equal(float32(fraction), 0.5) {
			f = 1
		}
		scaled = scaled - fraction + float64(f)
	}
	if math.IsNaN(scaled) || math.IsNaN(float64(scale)) {
		return Undefined
	}
	return float32(scaled) / scale
}

// ---------------------------------------------------------------------------

// Point is a point in layout coordinates.
type Point struct {
	X, Y float32
}

// Origin is origin
var Origin = Point{0, 0}

// Shift a point along a vector.
func (p *Point) Shift(vector Point) *Point {
	p.X += vector.X
	p.Y += vector.Y
	return p
}

// Rect is a rectangle in layout coordinates.
type Rect struct {
	TopL          Point
	Width, Height float32
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float32 {
	return r.TopL.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float32 {
	return r.TopL.Y + r.Height
}

// Contains reports whether p lies within r (right and bottom edges excluded).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.TopL.X && p.X < r.Right() && p.Y >= r.TopL.Y && p.Y < r.Bottom()
}

func (r Rect) String() string {
	return fmt.Sprintf("(%s,%s)+(%s×%s)", Format(r.TopL.X), Format(r.TopL.Y),
		Format(r.Width), Format(r.Height))
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+))(%|[a-zA-Z]{2})?$`)

// ErrDimenFormat is returned by ParseDimen for malformed input.
var ErrDimenFormat = errors.New("format error parsing dimension")

// ParseDimen parses a string to return a dimension in CSS pixels. Syntax is CSS Unit.
// If a percentage value is given (`80%`), the second return value will be true
// and the value is the plain percentage.
// Unitless numbers are taken as pixels.
func ParseDimen(s string) (float32, bool, error) {
	d := dimenPattern.FindStringSubmatch(s)
	if len(d) < 2 {
		return 0, false, ErrDimenFormat
	}
	scale := PX
	ispcnt := false
	if len(d) > 2 {
		switch d[2] {
		case "px", "PX", "":
			scale = PX
		case "pt", "PT":
			scale = PT
		case "bp", "BP":
			scale = BP
		case "pc", "PC":
			scale = PC
		case "mm", "MM":
			scale = MM
		case "cm", "CM":
			scale = CM
		case "in", "IN":
			scale = IN
		case "%":
			scale, ispcnt = 1, true
		default:
			return 0, false, ErrDimenFormat
		}
	}
	n, err := strconv.ParseFloat(d[1], 32)
	if err != nil {
		return 0, false, ErrDimenFormat
	}
	return float32(n) * scale, ispcnt, nil
}
