package measure

import "github.com/npillmayer/flexlayout/engine/flex"

// Measurement is a single call of Text.Measure during a layout pass.
type Measurement struct {
	Node  flex.NodeID
	Lines int
	Size  flex.Size
}

// Recorder collects the measurements of texts. Pass it as the context of
// flex.Tree.CalculateLayoutWithContext:
//
//	rec := &measure.Recorder{}
//	tree.CalculateLayoutWithContext(root, w, h, flex.DirectionLTR, rec)
//
// Measurements answered from a node's cache are not recorded.
type Recorder struct {
	Measurements []Measurement
}

func (r *Recorder) record(n flex.NodeID, lines int, size flex.Size) {
	r.Measurements = append(r.Measurements, Measurement{Node: n, Lines: lines, Size: size})
}

// Last returns the latest measurement of node n.
func (r *Recorder) Last(n flex.NodeID) (Measurement, bool) {
	for i := len(r.Measurements) - 1; i >= 0; i-- {
		if r.Measurements[i].Node == n {
			return r.Measurements[i], true
		}
	}
	return Measurement{}, false
}

// recorderOf returns the recorder of the current layout pass of tree, if any.
func recorderOf(tree *flex.Tree) *Recorder {
	if tree == nil {
		return nil
	}
	rec, _ := tree.LayoutContext().(*Recorder)
	return rec
}
