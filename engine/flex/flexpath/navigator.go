package flexpath

import (
	"errors"

	"github.com/antchfx/xpath"
	"github.com/npillmayer/flexlayout/core"
	"github.com/npillmayer/flexlayout/core/dimen"
	"github.com/npillmayer/flexlayout/engine/flex"
)

// DefaultElementName is the local name of every node, if not changed with
// WithElementName.
const DefaultElementName = "node"

// IDFunc returns the id of a node, if it has one.
type IDFunc func(flex.NodeID) (string, bool)

// Option configures a NodeNavigator.
type Option func(*NodeNavigator)

// WithIDs lets nodes have an attribute 'id'.
func WithIDs(ids IDFunc) Option {
	return func(nav *NodeNavigator) {
		nav.ids = ids
	}
}

// WithElementName sets the local name of nodes.
func WithElementName(name string) Option {
	return func(nav *NodeNavigator) {
		nav.name = name
	}
}

// NodeNavigator is an xpath.NodeNavigator for the subtree of a flex.Tree.
// Above the subtree's root there is a virtual document node.
type NodeNavigator struct {
	tree    *flex.Tree
	root    flex.NodeID
	current flex.NodeID // flex.NoNode for the document node
	attr    int         // attributes index
	ids     IDFunc
	name    string
}

var layoutAttributes = []string{"left", "top", "width", "height", "direction"}

// NewNavigator creates a new xpath.NodeNavigator for the subtree of t
// starting at root.
func NewNavigator(t *flex.Tree, root flex.NodeID, opts ...Option) *NodeNavigator {
	nav := &NodeNavigator{
		tree:    t,
		root:    root,
		current: flex.NoNode,
		attr:    -1,
		name:    DefaultElementName,
	}
	for _, opt := range opts {
		opt(nav)
	}
	return nav
}

// CurrentNode returns the node a navigator is positioned at.
func CurrentNode(nav xpath.NodeNavigator) (flex.NodeID, error) {
	mynav, ok := nav.(*NodeNavigator)
	if !ok {
		return flex.NoNode, errors.New("navigator is not of type flexpath.NodeNavigator")
	}
	return mynav.current, nil
}

// attributes returns the attribute names of the current node.
func (nav *NodeNavigator) attributes() []string {
	if nav.ids != nil {
		if _, ok := nav.ids(nav.current); ok {
			return append([]string{"id"}, layoutAttributes...)
		}
	}
	return layoutAttributes
}

func (nav *NodeNavigator) attribute(key string) string {
	if key == "id" {
		id, _ := nav.ids(nav.current)
		return id
	}
	l := nav.tree.Layout(nav.current)
	switch key {
	case "left":
		return dimen.Format(l.Left())
	case "top":
		return dimen.Format(l.Top())
	case "width":
		return dimen.Format(l.Width())
	case "height":
		return dimen.Format(l.Height())
	case "direction":
		return l.Direction.String()
	}
	return ""
}

func (nav *NodeNavigator) NodeType() xpath.NodeType {
	if nav.current == flex.NoNode {
		return xpath.RootNode
	}
	if nav.attr != -1 {
		return xpath.AttributeNode
	}
	return xpath.ElementNode
}

func (nav *NodeNavigator) LocalName() string {
	if nav.current == flex.NoNode {
		return ""
	}
	if nav.attr != -1 {
		return nav.attributes()[nav.attr]
	}
	return nav.name
}

func (*NodeNavigator) Prefix() string {
	return ""
}

// Value is the value of the current attribute, or the id of the current
// node.
func (nav *NodeNavigator) Value() string {
	if nav.current == flex.NoNode {
		return ""
	}
	if nav.attr != -1 {
		return nav.attribute(nav.attributes()[nav.attr])
	}
	if nav.ids != nil {
		id, _ := nav.ids(nav.current)
		return id
	}
	return ""
}

func (nav *NodeNavigator) Copy() xpath.NodeNavigator {
	n := *nav
	return &n
}

func (nav *NodeNavigator) MoveToRoot() {
	nav.current = flex.NoNode
	nav.attr = -1
}

func (nav *NodeNavigator) MoveToParent() bool {
	switch {
	case nav.attr != -1:
		nav.attr = -1 // move from attributes to element
	case nav.current == flex.NoNode:
		return false
	case nav.current == nav.root:
		nav.current = flex.NoNode
	default:
		nav.current = nav.tree.Owner(nav.current)
	}
	return true
}

func (nav *NodeNavigator) MoveToNextAttribute() bool {
	if nav.current == flex.NoNode || nav.attr >= len(nav.attributes())-1 {
		return false
	}
	nav.attr++
	return true
}

func (nav *NodeNavigator) MoveToChild() bool {
	if nav.attr != -1 {
		return false
	}
	if nav.current == flex.NoNode {
		nav.current = nav.root
		return true
	}
	if nav.tree.ChildCount(nav.current) == 0 {
		return false
	}
	nav.current = nav.tree.Child(nav.current, 0)
	return true
}

// siblings returns the children of the current node's owner and the index
// of the current node among them. The root has no siblings.
func (nav *NodeNavigator) siblings() ([]flex.NodeID, int) {
	if nav.current == flex.NoNode || nav.current == nav.root {
		return nil, -1
	}
	children := nav.tree.Children(nav.tree.Owner(nav.current))
	for i, ch := range children {
		if ch == nav.current {
			return children, i
		}
	}
	tracer().Errorf("node %d is not a child of its owner", nav.current)
	return nil, -1
}

func (nav *NodeNavigator) MoveToFirst() bool {
	if nav.attr != -1 {
		return false
	}
	children, i := nav.siblings()
	if i <= 0 {
		return false
	}
	nav.current = children[0]
	return true
}

func (nav *NodeNavigator) MoveToNext() bool {
	if nav.attr != -1 {
		return false
	}
	children, i := nav.siblings()
	if i < 0 || i == len(children)-1 { // was last child of owner
		return false
	}
	nav.current = children[i+1]
	return true
}

func (nav *NodeNavigator) MoveToPrevious() bool {
	if nav.attr != -1 {
		return false
	}
	children, i := nav.siblings()
	if i <= 0 {
		return false
	}
	nav.current = children[i-1]
	return true
}

func (nav *NodeNavigator) MoveTo(other xpath.NodeNavigator) bool {
	n, ok := other.(*NodeNavigator)
	if !ok || n.tree != nav.tree || n.root != nav.root {
		return false
	}
	nav.current = n.current
	nav.attr = n.attr
	return true
}

func (nav *NodeNavigator) String() string {
	return nav.Value()
}

var _ xpath.NodeNavigator = &NodeNavigator{}

// --- Queries ---------------------------------------------------------------

// Select returns the nodes of the subtree at root selected by an XPath
// expression, in document order. Selected attributes contribute the node
// they belong to.
func Select(t *flex.Tree, root flex.NodeID, expr string, opts ...Option) ([]flex.NodeID, error) {
	e, err := compile(expr)
	if err != nil {
		return nil, err
	}
	var result []flex.NodeID
	seen := make(map[flex.NodeID]bool)
	iter := e.Select(NewNavigator(t, root, opts...))
	for iter.MoveNext() {
		n, err := CurrentNode(iter.Current())
		if err != nil {
			return result, core.WrapError(err, core.EINTERNAL, "xpath query %q", expr)
		}
		if n == flex.NoNode || seen[n] {
			continue
		}
		seen[n] = true
		result = append(result, n)
	}
	tracer().Debugf("xpath %q selects %d nodes", expr, len(result))
	return result, nil
}

// Evaluate evaluates an XPath expression with a scalar result, e.g.,
// "count(//node)" or "sum(//node/@width)".
func Evaluate(t *flex.Tree, root flex.NodeID, expr string, opts ...Option) (interface{}, error) {
	e, err := compile(expr)
	if err != nil {
		return nil, err
	}
	return e.Evaluate(NewNavigator(t, root, opts...)), nil
}

func compile(expr string) (*xpath.Expr, error) {
	e, err := xpath.Compile(expr)
	if err != nil {
		return nil, core.WrapError(err, core.ESYNTAX, "cannot compile xpath expression %q", expr)
	}
	return e, nil
}
