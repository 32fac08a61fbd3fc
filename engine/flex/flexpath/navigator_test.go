package flexpath

import (
	"testing"

	"github.com/antchfx/xpath"
	"github.com/npillmayer/flexlayout/core"
	"github.com/npillmayer/flexlayout/core/dimen"
	"github.com/npillmayer/flexlayout/engine/flex"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildRow creates a 300×100 row with three equally growing children
// a, b and c.
func buildRow() (*flex.Tree, flex.NodeID, map[string]flex.NodeID, IDFunc) {
	tree := flex.NewTree(nil)
	root := tree.NewNode()
	tree.SetFlexDirection(root, flex.FlexDirectionRow)
	tree.SetWidth(root, flex.Point(300))
	tree.SetHeight(root, flex.Point(100))
	nodes := map[string]flex.NodeID{"root": root}
	names := map[flex.NodeID]string{root: "root"}
	for _, id := range []string{"a", "b", "c"} {
		child := tree.NewNode()
		tree.SetFlexGrow(child, 1)
		tree.SetFlexBasis(child, flex.Point(0))
		tree.AppendChild(root, child)
		nodes[id] = child
		names[child] = id
	}
	tree.CalculateLayout(root, dimen.Undefined, dimen.Undefined, flex.DirectionLTR)
	ids := func(n flex.NodeID) (string, bool) {
		id, ok := names[n]
		return id, ok
	}
	return tree, root, nodes, ids
}

func TestNavigatorMoves(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.flexpath")
	defer teardown()
	//
	tree, root, nodes, ids := buildRow()
	nav := NewNavigator(tree, root, WithIDs(ids))
	assert.Equal(t, xpath.RootNode, nav.NodeType())
	assert.False(t, nav.MoveToParent())
	require.True(t, nav.MoveToChild())
	assert.Equal(t, xpath.ElementNode, nav.NodeType())
	assert.Equal(t, "node", nav.LocalName())
	assert.Equal(t, "root", nav.Value())
	assert.False(t, nav.MoveToNext(), "root has no siblings")
	require.True(t, nav.MoveToChild())
	assert.Equal(t, "a", nav.Value())
	assert.False(t, nav.MoveToPrevious())
	assert.False(t, nav.MoveToFirst(), "already first child")
	require.True(t, nav.MoveToNext())
	require.True(t, nav.MoveToNext())
	assert.Equal(t, "c", nav.Value())
	assert.False(t, nav.MoveToNext())
	saved := nav.Copy()
	require.True(t, nav.MoveToFirst())
	assert.Equal(t, "a", nav.Value())
	require.True(t, nav.MoveTo(saved))
	n, err := CurrentNode(nav)
	require.NoError(t, err)
	assert.Equal(t, nodes["c"], n)
	//
	var attrs []string
	for nav.MoveToNextAttribute() {
		assert.Equal(t, xpath.AttributeNode, nav.NodeType())
		attrs = append(attrs, nav.LocalName()+"="+nav.Value())
	}
	assert.Equal(t, []string{"id=c", "left=200", "top=0", "width=100", "height=100",
		"direction=ltr"}, attrs)
	assert.False(t, nav.MoveToChild())
	require.True(t, nav.MoveToParent())
	assert.Equal(t, xpath.ElementNode, nav.NodeType())
	require.True(t, nav.MoveToParent())
	assert.Equal(t, "root", nav.Value())
	nav.MoveToRoot()
	assert.Equal(t, xpath.RootNode, nav.NodeType())
	assert.False(t, nav.MoveTo(NewNavigator(flex.NewTree(nil), root)))
}

func TestSelect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.flexpath")
	defer teardown()
	//
	tree, root, nodes, ids := buildRow()
	tests := []struct {
		expr   string
		expect []string
	}{
		{"//node", []string{"root", "a", "b", "c"}},
		{"//node[@width = 100]", []string{"a", "b", "c"}},
		{"//node[@left >= 100]", []string{"b", "c"}},
		{"/node/node[2]", []string{"b"}},
		{"//node[@id='b']/following-sibling::node", []string{"c"}},
		{"//node[@id='a']/..", []string{"root"}},
		{"//node/@top", []string{"root", "a", "b", "c"}},
		{"//node[@width > 1000]", nil},
	}
	for _, test := range tests {
		selected, err := Select(tree, root, test.expr, WithIDs(ids))
		require.NoError(t, err, test.expr)
		var expect []flex.NodeID
		for _, id := range test.expect {
			expect = append(expect, nodes[id])
		}
		assert.ElementsMatch(t, expect, selected, test.expr)
	}
	preceding, err := Select(tree, root, "//node[@id='c']/preceding-sibling::node", WithIDs(ids))
	require.NoError(t, err)
	assert.ElementsMatch(t, []flex.NodeID{nodes["a"], nodes["b"]}, preceding)
}

func TestSelectWithoutIDs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.flexpath")
	defer teardown()
	//
	tree, root, nodes, _ := buildRow()
	selected, err := Select(tree, root, "//div[@height = 100]", WithElementName("div"))
	require.NoError(t, err)
	assert.Len(t, selected, 4)
	selected, err = Select(tree, root, "//node[@id]")
	require.NoError(t, err)
	assert.Empty(t, selected)
	selected, err = Select(tree, nodes["b"], "//node")
	require.NoError(t, err)
	assert.Equal(t, []flex.NodeID{nodes["b"]}, selected, "queries are restricted to the subtree")
}

func TestEvaluate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flex.flexpath")
	defer teardown()
	//
	tree, root, _, ids := buildRow()
	count, err := Evaluate(tree, root, "count(//node)")
	require.NoError(t, err)
	assert.Equal(t, float64(4), count)
	sum, err := Evaluate(tree, root, "sum(/node/node/@width)", WithIDs(ids))
	require.NoError(t, err)
	assert.Equal(t, float64(300), sum)
	_, err = Select(tree, root, "//node[")
	assert.Equal(t, core.ESYNTAX, core.Code(err))
	_, err = Evaluate(tree, root, "count(")
	assert.Equal(t, core.ESYNTAX, core.Code(err))
}
