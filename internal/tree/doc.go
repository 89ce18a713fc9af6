// Package tree provides the expression tree behind kquery's where-clause
// builder.
//
// ARCHITECTURE:
//
// A query condition is a composite of two node kinds:
//
//	Group ── children: [Leaf | Group]...
//	Leaf  ── one formatted predicate, e.g. `age > 10`
//
// Conjunctions (and/or) live on the node, not on the predicate. A node's
// conjunction says how it joins the sibling emitted before it inside the
// parent Group.
//
// SEALED INTERFACE:
//
// Node is sealed with a marker method. Only Leaf and Group implement it,
// so renderers can switch exhaustively:
//
//	switch n := node.(type) {
//	case *Leaf:
//	    // predicate text
//	case *Group:
//	    // nested children
//	}
//
// RENDERING:
//
// Render walks the tree once. Children are always asked to parenthesize
// themselves; a Leaf ignores the request. Children that render empty are
// skipped, and the conjunction of the first emitted child is dropped even
// when earlier declared children were skipped. A Group with nothing to
// emit renders "" (never "()").
//
//	Group{Leaf(huga < 1), and Group{Leaf(piga < 1), or Leaf(fuga < 1)}}
//
// renders as:
//
//	huga < 1 and (piga < 1 or fuga < 1)
//
// OWNERSHIP:
//
// A Group owns its children. Callers grafting a Group from another tree
// should Clone it first so the two trees never share nodes.
package tree
