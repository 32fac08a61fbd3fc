/*
Package measure provides measure functions for text leaves of a flex layout tree.

Text is measured as monospace text: every grapheme cluster is one em wide,
or two em for East Asian wide characters (UAX#11). Lines are wrapped at
line-break opportunities found by a UAX#14 line wrapper.

	txt := measure.NewText("Hello World", 8, 12)
	leaf := tree.NewNode()
	txt.Attach(tree, leaf)

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package measure

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flex.measure'.
func tracer() tracing.Trace {
	return tracing.Select("flex.measure")
}
