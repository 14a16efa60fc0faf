/*
Package selector implements a builder for CSS selector strings.

A selector chain is assembled from typed parts (element, id, class,
attribute, pseudo-class and pseudo-element), which have to be applied in
the relative order CSS prescribes for a compound selector. Element and
pseudo-element parts may occur at most once per chain; the other kinds
may repeat. Part values are treated as opaque text: the builder
concatenates fragments, it does not parse or validate CSS syntax.

Chains are started with the package-level part functions and extended
with the equally named methods:

	sel, err := selector.Element("div").ID("main")
	sel, err = sel.Class("container")
	s, err := sel.Render()          // "div#main.container"

Two finished selectors can be joined with a combinator:

	comb := selector.Combine(a, "+", b)

Combination captures both operands' current text, so a composite is
immutable from creation and can only be combined further or rendered.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssel.selector'.
func tracer() tracing.Trace {
	return tracing.Select("cssel.selector")
}
