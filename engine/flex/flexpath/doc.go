/*
Package flexpath implements an xpath.NodeNavigator for flex layout trees.

We use this library for XPath queries:

	github.com/antchfx/xpath

Every node of a flex.Tree is an element (named "node" by default), the
children of a node are its child elements. Nodes carry the attributes

	id         element id, if an id function is given (see WithIDs)
	left, top  position relative to the owner
	width, height
	direction  resolved direction, "ltr" or "rtl"

Layout attributes reflect the most recent call to CalculateLayout. A query
may therefore select nodes by geometry:

	ids, err := flexpath.Select(tree, root, "//node[@width > 50]")

For a description of the various methods of interface xpath.NodeNavigator
please refer to the documentation of antchfx/xpath. It is not replicated here.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package flexpath

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flex.flexpath'.
func tracer() tracing.Trace {
	return tracing.Select("flex.flexpath")
}
