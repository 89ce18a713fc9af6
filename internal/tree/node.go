package tree

import "strings"

// Conjunction joins a node to the sibling emitted before it.
type Conjunction int

const (
	// None marks a node at position 0 or one never inserted into a Group.
	None Conjunction = iota
	// And joins with the "and" keyword.
	And
	// Or joins with the "or" keyword.
	Or
)

// String returns the query-language keyword for the conjunction.
// None renders as the empty string.
func (c Conjunction) String() string {
	switch c {
	case And:
		return "and"
	case Or:
		return "or"
	default:
		return ""
	}
}

// Node is a sealed interface over Leaf and Group.
//
// Render returns the node's query text. wrapInParens asks the node to
// surround itself with parentheses; only a non-empty Group honours it.
type Node interface {
	Render(wrapInParens bool) string
	Conjunction() Conjunction

	setConjunction(c Conjunction) // Marker method - seals interface to this package
}

// Leaf wraps one fully formatted predicate such as `name = "hoge"`.
// The text is fixed at construction.
type Leaf struct {
	text string
	conj Conjunction
}

// NewLeaf creates a Leaf holding the given predicate text.
func NewLeaf(text string) *Leaf {
	return &Leaf{text: text}
}

// Render returns the predicate text. A leaf is never parenthesized.
func (l *Leaf) Render(bool) string {
	return l.text
}

// Conjunction returns how the leaf joins its preceding sibling.
func (l *Leaf) Conjunction() Conjunction {
	return l.conj
}

func (l *Leaf) setConjunction(c Conjunction) {
	l.conj = c
}

// Group is an ordered sequence of child nodes. Insertion order is kept.
// The zero value is an empty group ready to use.
type Group struct {
	children []Node
	conj     Conjunction
}

// NewGroup creates an empty Group.
func NewGroup() *Group {
	return &Group{}
}

// Append tags n with conj and adds it as the last child.
// The group takes ownership of n.
func (g *Group) Append(conj Conjunction, n Node) {
	n.setConjunction(conj)
	g.children = append(g.children, n)
}

// IsEmpty reports whether the group has no children at all.
// A group holding only empty groups is not empty, though it renders "".
func (g *Group) IsEmpty() bool {
	return len(g.children) == 0
}

// Conjunction returns how the group joins its preceding sibling.
func (g *Group) Conjunction() Conjunction {
	return g.conj
}

func (g *Group) setConjunction(c Conjunction) {
	g.conj = c
}

// Render serializes the group.
//
// Children render with parentheses requested. Empty renderings (and a bare
// "()") are skipped. The first emitted child carries no conjunction, which
// is decided by emission order rather than child index.
func (g *Group) Render(wrapInParens bool) string {
	var sb strings.Builder
	for _, child := range g.children {
		sub := child.Render(true)
		if sub == "" || sub == "()" {
			continue
		}
		if sb.Len() == 0 {
			sb.WriteString(sub)
			continue
		}
		sb.WriteString(" ")
		sb.WriteString(child.Conjunction().String())
		sb.WriteString(" ")
		sb.WriteString(sub)
	}

	if sb.Len() == 0 {
		return ""
	}
	if wrapInParens {
		return "(" + sb.String() + ")"
	}
	return sb.String()
}

// Clone returns a deep copy of n. The copy shares no nodes with n.
func Clone(n Node) Node {
	switch node := n.(type) {
	case *Leaf:
		return &Leaf{text: node.text, conj: node.conj}
	case *Group:
		return node.Clone()
	default:
		return nil
	}
}

// Clone returns a deep copy of the group and its whole subtree.
func (g *Group) Clone() *Group {
	out := &Group{conj: g.conj}
	if len(g.children) > 0 {
		out.children = make([]Node, len(g.children))
		for i, child := range g.children {
			out.children[i] = Clone(child)
		}
	}
	return out
}
