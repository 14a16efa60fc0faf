/*
Package seldbg implements helpers to debug combined selectors.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seldbg

import (
	"fmt"

	"github.com/npillmayer/cssel/selector"
	tp "github.com/xlab/treeprint"
)

// Dump returns an ASCII rendering of the combinator tree of a selector.
// Composites become branches labelled with their combinator token,
// selector chains become leaves labelled with their current text.
//
// A plain chain (no combinators) renders as a single leaf.
func Dump(sel selector.Selector) string {
	tree := tp.New()
	dump(sel, tree)
	return tree.String()
}

func dump(sel selector.Selector, branch tp.Tree) {
	if comp, ok := sel.(*selector.Composite); ok {
		b := branch.AddBranch(fmt.Sprintf("combinator %q", comp.Combinator()))
		dump(comp.Left(), b)
		dump(comp.Right(), b)
		return
	}
	branch.AddNode(sel.String())
}
