package flexdebug

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/flexlayout/engine/flex"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

// Helper structs
type gnode struct {
	Name   string
	Label  string
	Layout string
	Style  string
	IsText bool
	Hidden bool
}

type gedge struct {
	N1, N2 string
}

// ToGraphViz creates a graphical representation of a layout tree.
// It produces a DOT file format suitable as input for Graphviz, given a Writer.
func ToGraphViz(t *flex.Tree, root flex.NodeID, w io.Writer, opts ...Option) error {
	o := makeOptions(opts)
	header := template.Must(template.New("layoutTree").Parse(graphHeadTmpl))
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("node").Funcs(
		template.FuncMap{
			"quote": dotQuote,
		}).Parse(nodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(edgeTmpl))
	if err := header.Execute(w, gparams); err != nil {
		return err
	}
	err := t.Walk(root, func(n flex.NodeID, depth int) error {
		style := t.Style(n)
		gn := gnode{
			Name:   nodeName(n),
			Label:  o.label(n),
			Layout: t.Layout(n).Rect().String(),
			Style:  style.String(),
			IsText: t.HasMeasureFunc(n),
			Hidden: style.Display == flex.DisplayNone,
		}
		if err := gparams.NodeTmpl.Execute(w, gn); err != nil {
			return err
		}
		if n == root {
			return nil
		}
		return gparams.EdgeTmpl.Execute(w, gedge{N1: nodeName(t.Owner(n)), N2: gn.Name})
	})
	if err != nil {
		tracer().Errorf("cannot write layout tree: %v", err)
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

func nodeName(n flex.NodeID) string {
	return fmt.Sprintf("node%05d", n)
}

// dotQuote quotes a label, placing every style declaration on a line of
// its own.
func dotQuote(s string) string {
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "; ", "\\l")
	return "\"" + s + "\""
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "TB"];
  graph [fontname = "{{ .Fontname }}" fontsize=12] ;
   node [fontname = "{{ .Fontname }}" fontsize=12] ;
   edge [fontname = "{{ .Fontname }}" fontsize=12] ;
`

const nodeTmpl = `{{ if .IsText }}
{{ .Name }}	[ label={{ quote (printf "%s  %s\n%s" .Label .Layout .Style) }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else if .Hidden }}
{{ .Name }}	[ label={{ quote (printf "%s  %s\n%s" .Label .Layout .Style) }} shape=box style=dashed ] ;
{{ else }}
{{ .Name }}	[ label={{ quote (printf "%s  %s\n%s" .Label .Layout .Style) }} shape=box style=filled fillcolor=lightblue3 ] ;
{{ end }}`

const edgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`
