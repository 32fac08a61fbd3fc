package fixture

import (
	"io"
	"sort"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/cords"
	"github.com/npillmayer/flexlayout/core"
	"github.com/npillmayer/flexlayout/engine/flex"
	"github.com/npillmayer/flexlayout/engine/flex/measure"
	"golang.org/x/net/html"
)

// Metrics are the monospace font metrics text leaves are measured with.
type Metrics struct {
	Em         float32
	LineHeight float32
}

// DefaultMetrics are used by Parse.
var DefaultMetrics = Metrics{Em: 10, LineHeight: 20}

// Fixture is a flex layout tree built from an HTML document.
type Fixture struct {
	Tree  *flex.Tree
	Root  flex.NodeID
	ids   map[string]flex.NodeID
	names map[flex.NodeID]string
	texts map[flex.NodeID]cords.Cord
}

var (
	rootSelector = cascadia.MustCompile("body > div")
	leafSelector = cascadia.MustCompile("div:not(:has(div))")
)

// Parse reads an HTML document and builds a layout tree in t from it.
// If t is nil, a new tree with default configuration is created.
func Parse(r io.Reader, t *flex.Tree) (*Fixture, error) {
	return ParseWithMetrics(r, t, DefaultMetrics)
}

// ParseWithMetrics is like Parse, but text leaves are measured with the
// given metrics.
func ParseWithMetrics(r io.Reader, t *flex.Tree, metrics Metrics) (*Fixture, error) {
	if t == nil {
		t = flex.NewTree(nil)
	}
	doc, err := html.Parse(r)
	if err != nil {
		return nil, core.WrapError(err, core.ESYNTAX, "cannot parse fixture document")
	}
	root := rootSelector.MatchFirst(doc)
	if root == nil {
		return nil, core.Error(core.EMISSING, "fixture document has no root div")
	}
	f := &Fixture{
		Tree:  t,
		ids:   make(map[string]flex.NodeID),
		names: make(map[flex.NodeID]string),
		texts: make(map[flex.NodeID]cords.Cord),
	}
	b := builder{fixture: f, metrics: metrics}
	if f.Root, err = b.build(root); err != nil {
		t.FreeRecursive(f.Root)
		return nil, err
	}
	tracer().Infof("fixture with %d named nodes, root = %d", len(f.ids), f.Root)
	return f, nil
}

// ByID returns the node created for the element with the given id attribute.
func (f *Fixture) ByID(id string) (flex.NodeID, bool) {
	n, ok := f.ids[id]
	return n, ok
}

// IDOf returns the id attribute of the element node n was created for.
func (f *Fixture) IDOf(n flex.NodeID) (string, bool) {
	id, ok := f.names[n]
	return id, ok
}

// IDs returns all element ids, sorted.
func (f *Fixture) IDs() []string {
	ids := make([]string, 0, len(f.ids))
	for id := range f.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Text returns the text content of a text leaf, or "" for other nodes.
func (f *Fixture) Text(n flex.NodeID) string {
	if text, ok := f.texts[n]; ok {
		return text.String()
	}
	return ""
}

// --- Building --------------------------------------------------------------

type builder struct {
	fixture *Fixture
	metrics Metrics
}

func (b builder) build(e *html.Node) (flex.NodeID, error) {
	f := b.fixture
	n := f.Tree.NewNode()
	id := attr(e, "id")
	if id != "" {
		f.ids[id] = n
		f.names[n] = id
	}
	if err := applyStyle(f.Tree, n, attr(e, "style")); err != nil {
		if id != "" {
			return n, core.WrapError(err, core.Code(err), "in style of element #%s", id)
		}
		return n, err
	}
	if leafSelector.Match(e) {
		text := innerText(e)
		if s := strings.Join(strings.Fields(text.String()), " "); s != "" {
			measure.NewText(s, b.metrics.Em, b.metrics.LineHeight).Attach(f.Tree, n)
			f.texts[n] = text
		}
		return n, nil
	}
	for c := e.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "div" {
			continue
		}
		child, err := b.build(c)
		if err != nil {
			f.Tree.FreeRecursive(child)
			return n, err
		}
		f.Tree.AppendChild(n, child)
	}
	return n, nil
}

func attr(e *html.Node, key string) string {
	for _, a := range e.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
