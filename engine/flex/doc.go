/*
Package flex implements a flexbox layout engine.

A layout tree is a Tree of nodes, each carrying a Style. Nodes are
addressed by NodeID, an index into the tree's node arena; a node knows
its owner by index only, so there are no pointer cycles between parents
and children. Mutating a node's style or its children marks the node and
all of its ancestors dirty.

CalculateLayout takes a root node and the space available to it and
computes position and size of every node in the subtree, following the
CSS flexbox algorithm in the variant popularized by Facebook's Yoga:

	t := flex.NewTree(nil)
	root := t.NewNode()
	t.SetWidth(root, flex.Point(300))
	t.SetHeight(root, flex.Point(100))
	t.SetFlexDirection(root, flex.FlexDirectionRow)
	for i := 0; i < 3; i++ {
		child := t.NewNode()
		t.SetFlexGrow(child, 1)
		t.SetFlexBasis(child, flex.Point(0))
		t.AppendChild(root, child)
	}
	t.CalculateLayout(root, dimen.Undefined, dimen.Undefined, flex.DirectionLTR)
	// every child is now 100 wide

Leaf content (text, images) is sized by a MeasureFunc attached to a node.
Results of measuring are kept in a small per-node MeasurementCache, as the
algorithm asks for the size of the same node under the same or compatible
constraints many times during a single layout pass.

Sizes are float32 values in pixels. An unknown size is represented by NaN,
see package dimen.

Trees are not safe for concurrent use. Independent trees may be laid out
in parallel.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package flex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flex.layout'.
func tracer() tracing.Trace {
	return tracing.Select("flex.layout")
}
