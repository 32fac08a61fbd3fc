package flex

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/bidi"
)

// DirectionFromBidi maps the direction of a bidi paragraph to a layout
// direction. Mixed and neutral paragraphs inherit.
func DirectionFromBidi(d bidi.Direction) Direction {
	switch d {
	case bidi.LeftToRight:
		return DirectionLTR
	case bidi.RightToLeft:
		return DirectionRTL
	}
	return DirectionInherit
}

// TextDirection returns the direction of the first strong character of s,
// as used for paragraph direction detection (rules P2 and P3 of UAX #9).
// It returns DirectionInherit if s contains no strong character.
func TextDirection(s string) Direction {
	return DirectionFromBidi(FirstStrong(s))
}

// FirstStrong returns the bidi class direction of the first strong
// character of s, or bidi.Neutral if there is none. Invalid UTF-8 is
// skipped.
func FirstStrong(s string) bidi.Direction {
	for len(s) > 0 {
		p, size := bidi.LookupString(s)
		if size == 0 {
			_, size = utf8.DecodeRuneInString(s)
		}
		switch p.Class() {
		case bidi.L:
			return bidi.LeftToRight
		case bidi.R, bidi.AL:
			return bidi.RightToLeft
		}
		s = s[size:]
	}
	return bidi.Neutral
}
