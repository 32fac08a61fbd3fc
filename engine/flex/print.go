package flex

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/flexlayout/core/dimen"
)

// DumpOptions select what Dump outputs for a node.
type DumpOptions uint8

// Flags for Dump.
const (
	DumpLayout   DumpOptions = 1 << iota // position and size
	DumpStyle                            // non-default style properties
	DumpChildren                         // descend into children
)

// Dump returns a textual representation of the subtree of root, one node
// per line, children indented below their owner.
func (t *Tree) Dump(root NodeID, options DumpOptions) string {
	var b strings.Builder
	t.dump(&b, root, options, 0)
	return b.String()
}

// Print writes the output of Dump to w.
func (t *Tree) Print(w io.Writer, root NodeID, options DumpOptions) error {
	_, err := io.WriteString(w, t.Dump(root, options))
	return err
}

func (t *Tree) dump(b *strings.Builder, id NodeID, options DumpOptions, level int) {
	n := t.get(id)
	b.WriteString(strings.Repeat("  ", level))
	fmt.Fprintf(b, "<node %d", id)
	if options&DumpLayout != 0 {
		l := n.layout
		fmt.Fprintf(b, " layout=\"width: %s; height: %s; top: %s; left: %s;\"",
			dimen.Format(l.Width()), dimen.Format(l.Height()),
			dimen.Format(l.Top()), dimen.Format(l.Left()))
	}
	if options&DumpStyle != 0 {
		if s := n.style.String(); s != "" {
			fmt.Fprintf(b, " style=\"%s\"", s)
		}
	}
	if n.measure != nil {
		b.WriteString(" has-measure=\"true\"")
	}
	if options&DumpChildren == 0 || len(n.children) == 0 {
		b.WriteString(" />\n")
		return
	}
	b.WriteString(">\n")
	for _, c := range n.children {
		t.dump(b, c, options, level+1)
	}
	b.WriteString(strings.Repeat("  ", level))
	b.WriteString("</node>\n")
}
