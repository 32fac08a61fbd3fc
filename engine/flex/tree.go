package flex

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/flexlayout/core"
	"github.com/npillmayer/flexlayout/core/dimen"
)

// NodeID addresses a node within a Tree.
type NodeID int32

// NoNode is the NodeID of a missing node, e.g. the owner of a root.
const NoNode NodeID = -1

// Size is a width and a height.
type Size struct {
	Width  float32
	Height float32
}

// MeasureFunc computes the content size of a leaf node under the given
// constraints. width and height are inner sizes (without padding and
// border); they are undefined if the corresponding mode is
// MeasureModeUndefined.
type MeasureFunc func(t *Tree, n NodeID, width float32, widthMode MeasureMode,
	height float32, heightMode MeasureMode) Size

// BaselineFunc returns the distance from the top of a node to its baseline.
type BaselineFunc func(t *Tree, n NodeID, width, height float32) float32

type node struct {
	id                 NodeID
	style              Style
	layout             Layout
	owner              NodeID
	children           []NodeID
	measure            MeasureFunc
	baseline           BaselineFunc
	nodeType           NodeType
	context            interface{}
	dirty              bool
	hasNewLayout       bool
	lineIndex          int
	resolvedDimensions [DimensionCount]CompactValue
	inUse              bool
}

// Tree is an arena of layout nodes. Nodes refer to their owner and their
// children by NodeID only.
//
// A Tree is not safe for concurrent use.
type Tree struct {
	config        *Config
	nodes         []*node
	free          []NodeID
	generation    uint32      // incremented for every layout pass
	depth         int         // nesting of layoutNodeInternal, for tracing
	layoutContext interface{} // set during CalculateLayoutWithContext
}

// NewTree creates an empty tree. If config is nil, NewConfig() is used.
func NewTree(config *Config) *Tree {
	if config == nil {
		config = NewConfig()
	}
	return &Tree{config: config}
}

// Config returns the configuration shared by all nodes of t.
func (t *Tree) Config() *Config {
	return t.config
}

// NewNode creates a detached node with default style.
func (t *Tree) NewNode() NodeID {
	var id NodeID
	if l := len(t.free); l > 0 {
		id = t.free[l-1]
		t.free = t.free[:l-1]
	} else {
		id = NodeID(len(t.nodes))
		t.nodes = append(t.nodes, &node{})
	}
	t.nodes[id].init(t.config)
	t.nodes[id].id = id
	return id
}

func (n *node) init(config *Config) {
	*n = node{
		style:              DefaultStyle(config),
		layout:             newLayout(),
		owner:              NoNode,
		hasNewLayout:       true,
		resolvedDimensions: [DimensionCount]CompactValue{Undefined(), Undefined()},
		inUse:              true,
	}
}

// get returns the node for id, panicking for unknown or freed ids.
func (t *Tree) get(id NodeID) *node {
	if id < 0 || int(id) >= len(t.nodes) || !t.nodes[id].inUse {
		panic(core.Error(core.EINVALID, "no node with id %d in tree", id))
	}
	return t.nodes[id]
}

// Contains is true if id denotes a live node of t.
func (t *Tree) Contains(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes) && t.nodes[id].inUse
}

// Free detaches a node from its owner and from its children and recycles
// its slot. The children become roots.
func (t *Tree) Free(id NodeID) {
	n := t.get(id)
	if n.owner != NoNode {
		t.RemoveChild(n.owner, id)
	}
	for _, c := range n.children {
		t.nodes[c].owner = NoNode
	}
	*n = node{}
	t.free = append(t.free, id)
}

// FreeRecursive frees a node and its complete subtree.
func (t *Tree) FreeRecursive(id NodeID) {
	root := t.get(id)
	if root.owner != NoNode {
		t.RemoveChild(root.owner, id)
	}
	stack := arraystack.New()
	stack.Push(id)
	for !stack.Empty() {
		top, _ := stack.Pop()
		nid := top.(NodeID)
		for _, c := range t.nodes[nid].children {
			stack.Push(c)
		}
		*t.nodes[nid] = node{}
		t.free = append(t.free, nid)
	}
}

// Reset restores the default style and an empty layout for a node. The
// node must neither have an owner nor children.
func (t *Tree) Reset(id NodeID) {
	n := t.get(id)
	if len(n.children) > 0 {
		panic(core.Error(core.EINVALID, "cannot reset node %d which still has children attached", id))
	}
	if n.owner != NoNode {
		panic(core.Error(core.EINVALID, "cannot reset node %d still attached to an owner", id))
	}
	n.init(t.config)
	n.id = id
}

// --- Children --------------------------------------------------------------

// InsertChild inserts child into the child list of owner at position index.
// child must be a root and must not be an ancestor of owner; owner must not
// have a measure function.
func (t *Tree) InsertChild(owner, child NodeID, index int) {
	o, c := t.get(owner), t.get(child)
	if c.owner != NoNode {
		panic(core.Error(core.EINVALID, "child %d already has an owner, it must be removed first", child))
	}
	if o.measure != nil {
		panic(core.Error(core.EINVALID, "cannot add child: node %d has a measure function", owner))
	}
	for a := owner; a != NoNode; a = t.nodes[a].owner {
		if a == child {
			panic(core.Error(core.ECYCLE, "cannot insert node %d into its own subtree", child))
		}
	}
	if index < 0 || index > len(o.children) {
		panic(core.Error(core.EINVALID, "child index %d out of range [0…%d]", index, len(o.children)))
	}
	o.children = append(o.children, NoNode)
	copy(o.children[index+1:], o.children[index:])
	o.children[index] = child
	c.owner = owner
	t.markDirty(owner)
}

// AppendChild adds child as the last child of owner.
func (t *Tree) AppendChild(owner, child NodeID) {
	t.InsertChild(owner, child, len(t.get(owner).children))
}

// RemoveChild detaches child from owner. The layout of child is no
// longer valid afterwards. Removing a node which is not a child of owner
// does nothing.
func (t *Tree) RemoveChild(owner, child NodeID) {
	o := t.get(owner)
	for i, c := range o.children {
		if c == child {
			copy(o.children[i:], o.children[i+1:])
			o.children = o.children[:len(o.children)-1]
			cn := t.nodes[child]
			cn.layout = newLayout()
			cn.owner = NoNode
			t.markDirty(owner)
			return
		}
	}
}

// RemoveAllChildren detaches all children of owner.
func (t *Tree) RemoveAllChildren(owner NodeID) {
	o := t.get(owner)
	if len(o.children) == 0 {
		return
	}
	for _, c := range o.children {
		cn := t.nodes[c]
		cn.layout = newLayout()
		cn.owner = NoNode
	}
	o.children = o.children[:0]
	t.markDirty(owner)
}

// Owner returns the owner of a node, or NoNode for a root.
func (t *Tree) Owner(id NodeID) NodeID {
	return t.get(id).owner
}

// Child returns the i-th child of a node, or NoNode if out of range.
func (t *Tree) Child(id NodeID, i int) NodeID {
	n := t.get(id)
	if i < 0 || i >= len(n.children) {
		return NoNode
	}
	return n.children[i]
}

// ChildCount returns the number of children of a node.
func (t *Tree) ChildCount(id NodeID) int {
	return len(t.get(id).children)
}

// Children returns a copy of the child list of a node.
func (t *Tree) Children(id NodeID) []NodeID {
	n := t.get(id)
	children := make([]NodeID, len(n.children))
	copy(children, n.children)
	return children
}

// Walk visits the subtree rooted at root in pre-order. Returning a non-nil
// error from f stops the walk; the error is returned.
func (t *Tree) Walk(root NodeID, f func(id NodeID, depth int) error) error {
	type visit struct {
		id    NodeID
		depth int
	}
	t.get(root)
	stack := arraystack.New()
	stack.Push(visit{root, 0})
	for !stack.Empty() {
		top, _ := stack.Pop()
		v := top.(visit)
		if err := f(v.id, v.depth); err != nil {
			return err
		}
		children := t.nodes[v.id].children
		for i := len(children) - 1; i >= 0; i-- {
			stack.Push(visit{children[i], v.depth + 1})
		}
	}
	return nil
}

// --- Style -----------------------------------------------------------------

// Style returns a copy of the style of a node.
func (t *Tree) Style(id NodeID) Style {
	return t.get(id).style
}

// SetStyle lets f change the style of a node. Invalid values are clamped
// afterwards. The node is marked dirty if its style changed.
func (t *Tree) SetStyle(id NodeID, f func(*Style)) {
	n := t.get(id)
	s := n.style
	f(&s)
	s.sanitize()
	if s != n.style {
		n.style = s
		t.markDirty(id)
	}
}

// SetWidth sets the width of a node.
func (t *Tree) SetWidth(id NodeID, v CompactValue) {
	t.SetStyle(id, func(s *Style) { s.Dimensions.Set(int(DimensionWidth), v) })
}

// SetHeight sets the height of a node.
func (t *Tree) SetHeight(id NodeID, v CompactValue) {
	t.SetStyle(id, func(s *Style) { s.Dimensions.Set(int(DimensionHeight), v) })
}

// SetFlexGrow sets flex-grow.
func (t *Tree) SetFlexGrow(id NodeID, grow float32) {
	t.SetStyle(id, func(s *Style) { s.FlexGrow = SomeFloat(grow) })
}

// SetFlexShrink sets flex-shrink.
func (t *Tree) SetFlexShrink(id NodeID, shrink float32) {
	t.SetStyle(id, func(s *Style) { s.FlexShrink = SomeFloat(shrink) })
}

// SetFlexBasis sets flex-basis.
func (t *Tree) SetFlexBasis(id NodeID, v CompactValue) {
	t.SetStyle(id, func(s *Style) { s.FlexBasis = v })
}

// SetFlexDirection sets the direction of the main axis.
func (t *Tree) SetFlexDirection(id NodeID, d FlexDirection) {
	t.SetStyle(id, func(s *Style) { s.FlexDirection = d })
}

// SetDirection sets the inline direction.
func (t *Tree) SetDirection(id NodeID, d Direction) {
	t.SetStyle(id, func(s *Style) { s.Direction = d })
}

// SetMargin sets the margin of an edge.
func (t *Tree) SetMargin(id NodeID, edge Edge, v CompactValue) {
	t.SetStyle(id, func(s *Style) { s.Margin.Set(int(edge), v) })
}

// SetPadding sets the padding of an edge.
func (t *Tree) SetPadding(id NodeID, edge Edge, v CompactValue) {
	t.SetStyle(id, func(s *Style) { s.Padding.Set(int(edge), v) })
}

// SetBorder sets the border width of an edge.
func (t *Tree) SetBorder(id NodeID, edge Edge, width float32) {
	t.SetStyle(id, func(s *Style) { s.Border.Set(int(edge), Point(width)) })
}

// SetPosition sets the offset of an edge.
func (t *Tree) SetPosition(id NodeID, edge Edge, v CompactValue) {
	t.SetStyle(id, func(s *Style) { s.Position.Set(int(edge), v) })
}

// --- Callbacks and host data -----------------------------------------------

// SetMeasureFunc sets or, with nil, removes the measure function of a
// node. A node with a measure function is a text node and may not have
// children.
func (t *Tree) SetMeasureFunc(id NodeID, measure MeasureFunc) {
	n := t.get(id)
	if measure == nil {
		n.measure = nil
		n.nodeType = NodeTypeDefault
	} else {
		if len(n.children) > 0 {
			panic(core.Error(core.EINVALID, "cannot set measure function: node %d has children", id))
		}
		n.measure = measure
		n.nodeType = NodeTypeText
	}
	t.markDirty(id)
}

// HasMeasureFunc is true if a node has a measure function.
func (t *Tree) HasMeasureFunc(id NodeID) bool {
	return t.get(id).measure != nil
}

// SetBaselineFunc sets or removes the baseline function of a node.
func (t *Tree) SetBaselineFunc(id NodeID, baseline BaselineFunc) {
	t.get(id).baseline = baseline
}

// SetNodeType sets the type of a node.
func (t *Tree) SetNodeType(id NodeID, nodeType NodeType) {
	t.get(id).nodeType = nodeType
}

// NodeType returns the type of a node.
func (t *Tree) NodeType(id NodeID) NodeType {
	return t.get(id).nodeType
}

// SetContext attaches host data to a node.
func (t *Tree) SetContext(id NodeID, context interface{}) {
	t.get(id).context = context
}

// Context returns the host data of a node.
func (t *Tree) Context(id NodeID) interface{} {
	return t.get(id).context
}

// LayoutContext returns the host data passed to CalculateLayoutWithContext.
// It is nil outside of a layout pass.
func (t *Tree) LayoutContext() interface{} {
	return t.layoutContext
}

// --- Dirty state and results -----------------------------------------------

// MarkDirty invalidates the layout of a node with a measure function,
// e.g. after its content changed. Other nodes become dirty by changing
// their style or children.
func (t *Tree) MarkDirty(id NodeID) {
	if t.get(id).measure == nil {
		panic(core.Error(core.EINVALID,
			"only leaf nodes with measure functions should be marked dirty manually (node %d)", id))
	}
	t.markDirty(id)
}

// markDirty invalidates a node and all of its ancestors, walking up the
// owner chain until an already dirty node is found.
func (t *Tree) markDirty(id NodeID) {
	for id != NoNode {
		n := t.nodes[id]
		if n.dirty {
			return
		}
		n.dirty = true
		n.layout.computedFlexBasis = dimen.Undefined
		n.layout.cache.Clear()
		n.layout.cachedLayout = NewCachedMeasurement()
		id = n.owner
	}
}

// IsDirty is true if a node needs to be laid out again.
func (t *Tree) IsDirty(id NodeID) bool {
	return t.get(id).dirty
}

// HasNewLayout is true if the layout of a node changed since the last call
// to MarkLayoutSeen.
func (t *Tree) HasNewLayout(id NodeID) bool {
	return t.get(id).hasNewLayout
}

// MarkLayoutSeen clears the HasNewLayout flag of a node.
func (t *Tree) MarkLayoutSeen(id NodeID) {
	t.get(id).hasNewLayout = false
}

// Layout returns the layout results of a node.
func (t *Tree) Layout(id NodeID) Layout {
	return t.get(id).layout
}

// Cache returns the measurement cache of a node.
func (t *Tree) Cache(id NodeID) *MeasurementCache {
	return &t.get(id).layout.cache
}
