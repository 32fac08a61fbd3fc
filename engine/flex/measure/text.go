package measure

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/npillmayer/flexlayout/core/dimen"
	"github.com/npillmayer/flexlayout/engine/flex"
	"github.com/npillmayer/uax"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"
)

// baselineRatio is the position of the baseline relative to the line height.
const baselineRatio = 0.8

// fragment is a run of text which must not be broken, followed by optional
// whitespace. breakAfter is set if a line may be wrapped after the fragment.
type fragment struct {
	width      float32
	space      float32
	breakAfter bool
}

func (f fragment) String() string {
	return fmt.Sprintf("[%s+%s|%v]", dimen.Format(f.width), dimen.Format(f.space), f.breakAfter)
}

// Text is a prepared monospace text. Its Measure and Baseline methods may be
// attached to a leaf node of a flex tree.
//
// Text is immutable after creation and may be shared between nodes.
type Text struct {
	text       string
	em         float32
	lineHeight float32
	fragments  []fragment
	direction  bidi.Direction
}

// NewText prepares s for measuring. em is the width of a narrow grapheme,
// lineHeight the height of a single line of text.
func NewText(s string, em, lineHeight float32) *Text {
	grapheme.SetupGraphemeClasses()
	t := &Text{
		text:       norm.NFC.String(s),
		em:         dimen.NonNegative(em),
		lineHeight: dimen.NonNegative(lineHeight),
	}
	t.fragments = t.segment()
	t.direction = flex.FirstStrong(t.text)
	tracer().Debugf("text %q has fragments %v", t.text, t.fragments)
	return t
}

// String returns the (normalized) text.
func (t *Text) String() string {
	return t.text
}

// Direction is the direction of the first strongly directional character of
// the text, or bidi.Neutral if there is none.
func (t *Text) Direction() bidi.Direction {
	return t.direction
}

// Attach makes t the content of leaf node n.
func (t *Text) Attach(tree *flex.Tree, n flex.NodeID) {
	tree.SetMeasureFunc(n, t.Measure)
	tree.SetBaselineFunc(n, t.Baseline)
	tree.SetNodeType(n, flex.NodeTypeText)
	tree.SetContext(n, t)
}

// Measure is a flex.MeasureFunc. Without a width constraint the text is set
// on a single line; otherwise lines are filled greedily up to width. If the
// layout context of tree is a *Recorder, the measurement is recorded.
func (t *Text) Measure(tree *flex.Tree, n flex.NodeID, width float32, widthMode flex.MeasureMode,
	height float32, heightMode flex.MeasureMode) flex.Size {
	//
	maxWidth := dimen.Undefined
	if widthMode != flex.MeasureModeUndefined {
		maxWidth = width
	}
	lines, w := t.wrap(maxWidth)
	switch widthMode {
	case flex.MeasureModeExactly:
		w = width
	case flex.MeasureModeAtMost:
		w = dimen.Min(w, width)
	}
	h := float32(lines) * t.lineHeight
	switch heightMode {
	case flex.MeasureModeExactly:
		h = height
	case flex.MeasureModeAtMost:
		h = dimen.Min(h, height)
	}
	tracer().Debugf("measure %q under %s %s: %d lines, %s×%s", t.text, widthMode,
		dimen.Format(width), lines, dimen.Format(w), dimen.Format(h))
	size := flex.Size{Width: w, Height: h}
	if rec := recorderOf(tree); rec != nil {
		rec.record(n, lines, size)
	}
	return size
}

// Baseline is a flex.BaselineFunc. The baseline is measured from the top of
// the first line.
func (t *Text) Baseline(tree *flex.Tree, n flex.NodeID, width, height float32) float32 {
	return baselineRatio * t.lineHeight
}

// wrap fills lines of at most maxWidth. A fragment wider than maxWidth gets
// a line of its own. If maxWidth is undefined, all fragments are set on a
// single line. wrap returns the number of lines and the width of the widest
// line, not counting trailing whitespace.
func (t *Text) wrap(maxWidth float32) (lines int, widest float32) {
	if len(t.fragments) == 0 {
		return 0, 0
	}
	lines = 1
	var x, lineWidth float32
	empty := true
	for _, f := range t.fragments {
		if !empty && dimen.IsDefined(maxWidth) && x+f.width > maxWidth+dimen.Epsilon {
			widest = dimen.Max(widest, lineWidth)
			lines++
			x = 0
		}
		lineWidth = x + f.width
		x = lineWidth + f.space
		empty = false
	}
	widest = dimen.Max(widest, lineWidth)
	return lines, widest
}

// segment splits the text into unbreakable fragments. We use a
// uax14.LineWrap as the primary breaker and a segment.SimpleWordBreaker to
// separate spans of whitespace.
func (t *Text) segment() []fragment {
	var fragments []fragment
	seg := segment.NewSegmenter(uax14.NewLineWrap(), segment.NewSimpleWordBreaker())
	seg.Init(strings.NewReader(t.text))
	var current fragment
	open := false
	for seg.Next() {
		p1, p2 := seg.Penalties()
		s := seg.Text()
		tracer().Debugf("segment %q with penalties %d|%d", s, p1, p2)
		word := strings.TrimRightFunc(s, unicode.IsSpace)
		if word != "" {
			if current.space > 0 { // e.g., a no-break space glues words together
				current.width += current.space
				current.space = 0
			}
			current.width += t.advance(word)
		}
		current.space += t.advance(s[len(word):])
		open = true
		if p1 < uax.InfinitePenalty { // line wrap opportunity
			current.breakAfter = true
			fragments = append(fragments, current)
			current, open = fragment{}, false
		}
	}
	if open {
		fragments = append(fragments, current)
	}
	return fragments
}

// advance is the width of s, summed over its grapheme clusters.
func (t *Text) advance(s string) float32 {
	if s == "" {
		return 0
	}
	gstr := grapheme.StringFromString(s)
	var w float32
	for i := 0; i < gstr.Len(); i++ {
		w += float32(uax11.Width([]byte(gstr.Nth(i)), uax11.LatinContext)) * t.em
	}
	return w
}
