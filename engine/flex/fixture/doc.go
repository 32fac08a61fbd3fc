/*
Package fixture builds flex layout trees from HTML documents.

A fixture is an HTML document of nested div elements, styled by inline
CSS, similar to the fixtures used to generate tests for Yoga:

	<html><body>
	<div id="root" style="width: 100px; height: 100px; flex-direction: row">
	  <div id="a" style="flex-grow: 1"></div>
	  <div id="b" style="width: 20px">Hello</div>
	</div>
	</body></html>

The first div under body becomes the root node. Every div element maps to
one node of a flex.Tree. A leaf div with text content is measured as
monospace text (see package measure).

Only properties meaningful for flexbox layout are recognized. Unknown
properties are ignored (and traced).

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fixture

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flex.fixture'.
func tracer() tracing.Trace {
	return tracing.Select("flex.fixture")
}
