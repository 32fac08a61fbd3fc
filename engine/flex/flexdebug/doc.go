/*
Package flexdebug helps debugging flex layouts.

ToGraphViz writes the structure of a layout tree in DOT format, suitable
as input for Graphviz. RenderPNG draws the border boxes of a laid-out tree
into an image.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package flexdebug

import (
	"fmt"

	"github.com/npillmayer/flexlayout/engine/flex"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flex.debug'.
func tracer() tracing.Trace {
	return tracing.Select("flex.debug")
}

// LabelFunc returns a label for a node, if it has one.
type LabelFunc func(flex.NodeID) (string, bool)

// Option configures the output of ToGraphViz and RenderPNG.
type Option func(*options)

type options struct {
	labels LabelFunc
}

// WithLabels names nodes by labels. Nodes without a label are named by
// their NodeID.
func WithLabels(labels LabelFunc) Option {
	return func(o *options) {
		o.labels = labels
	}
}

func makeOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) label(n flex.NodeID) string {
	if o.labels != nil {
		if l, ok := o.labels(n); ok {
			return l
		}
	}
	return fmt.Sprintf("#%d", n)
}
