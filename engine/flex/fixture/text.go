package fixture

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cords"
	"golang.org/x/net/html"
)

// innerText creates a text cord for the textual content of an element and
// all its descendents, one leaf per text node.
func innerText(e *html.Node) cords.Cord {
	b := cords.NewBuilder()
	collectText(e, b)
	return b.Cord()
}

func collectText(n *html.Node, b *cords.CordBuilder) {
	if n.Type == html.TextNode && n.Data != "" {
		parent := n.Parent
		for parent != nil && parent.Type != html.ElementNode {
			parent = parent.Parent
		}
		leaf := textLeaf{element: parent, content: n.Data}
		tracer().Debugf("text leaf %s", leaf.dbgString())
		b.Append(leaf)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// textLeaf is the leaf type of cords created by innerText.
type textLeaf struct {
	element *html.Node
	content string
}

// Weight of a leaf is its string length in bytes.
func (l textLeaf) Weight() uint64 {
	return uint64(len(l.content))
}

func (l textLeaf) String() string {
	return l.content
}

// Split splits a leaf at position i, resulting in 2 new leafs.
func (l textLeaf) Split(i uint64) (cords.Leaf, cords.Leaf) {
	return textLeaf{element: l.element, content: l.content[:i]},
		textLeaf{element: l.element, content: l.content[i:]}
}

// Substring returns a string segment of the leaf's text fragment.
func (l textLeaf) Substring(i, j uint64) []byte {
	return []byte(l.content)[i:j]
}

var _ cords.Leaf = textLeaf{}

func (l textLeaf) dbgString() string {
	name := "?"
	if l.element != nil {
		name = l.element.Data
	}
	return fmt.Sprintf("{<%s> \"%s\"}", name, strings.ReplaceAll(l.content, "\n", "_"))
}
