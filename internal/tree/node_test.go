package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// group builds a Group from alternating (conj, node) pairs for test brevity.
func group(pairs ...any) *Group {
	g := NewGroup()
	for i := 0; i < len(pairs); i += 2 {
		g.Append(pairs[i].(Conjunction), pairs[i+1].(Node))
	}
	return g
}

func TestConjunction_String(t *testing.T) {
	assert.Equal(t, "", None.String())
	assert.Equal(t, "and", And.String())
	assert.Equal(t, "or", Or.String())
}

func TestLeaf_RenderIgnoresParens(t *testing.T) {
	leaf := NewLeaf(`name = "hoge"`)

	assert.Equal(t, `name = "hoge"`, leaf.Render(false))
	assert.Equal(t, `name = "hoge"`, leaf.Render(true))
	assert.Equal(t, None, leaf.Conjunction())
}

func TestGroup_Render(t *testing.T) {
	testCases := []struct {
		name     string
		group    *Group
		wrap     bool
		expected string
	}{
		{
			name:     "empty group",
			group:    NewGroup(),
			expected: "",
		},
		{
			name:     "empty group with parens requested",
			group:    NewGroup(),
			wrap:     true,
			expected: "",
		},
		{
			name:     "single leaf",
			group:    group(And, NewLeaf("x < 1")),
			expected: "x < 1",
		},
		{
			name:     "single leaf wrapped",
			group:    group(And, NewLeaf("x < 1")),
			wrap:     true,
			expected: "(x < 1)",
		},
		{
			name:     "first conjunction never emitted",
			group:    group(Or, NewLeaf("a = 1"), And, NewLeaf("b = 2")),
			expected: "a = 1 and b = 2",
		},
		{
			name:     "mixed conjunctions",
			group:    group(And, NewLeaf("a = 1"), Or, NewLeaf("b = 2"), And, NewLeaf("c = 3")),
			expected: "a = 1 or b = 2 and c = 3",
		},
		{
			name: "nested group is parenthesized",
			group: group(
				And, NewLeaf("huga < 1"),
				And, group(And, NewLeaf("piga < 1"), Or, NewLeaf("fuga < 1")),
			),
			expected: "huga < 1 and (piga < 1 or fuga < 1)",
		},
		{
			name: "two nested groups",
			group: group(
				And, group(And, NewLeaf("a < 1"), And, NewLeaf("b < 1")),
				Or, group(And, NewLeaf("c < 1"), And, NewLeaf("d < 1")),
			),
			expected: "(a < 1 and b < 1) or (c < 1 and d < 1)",
		},
		{
			name: "leading empty group drops next conjunction",
			group: group(
				And, NewGroup(),
				Or, NewLeaf("x < 10"),
				And, NewLeaf("y < 10"),
			),
			expected: "x < 10 and y < 10",
		},
		{
			name: "empty group in the middle",
			group: group(
				And, NewLeaf("a = 1"),
				Or, NewGroup(),
				And, NewLeaf("b = 2"),
			),
			expected: "a = 1 and b = 2",
		},
		{
			name:     "group of empty groups",
			group:    group(And, NewGroup(), And, group(And, NewGroup()), Or, NewGroup()),
			wrap:     true,
			expected: "",
		},
		{
			name:     "leaf rendering bare parens is skipped",
			group:    group(And, NewLeaf("()"), Or, NewLeaf("a = 1")),
			expected: "a = 1",
		},
		{
			name: "deep nesting",
			group: group(
				And, group(
					And, group(
						And, group(And, NewLeaf("a < 10"), And, NewLeaf("x < 100")),
						And, NewLeaf("b < 30"),
					),
					And, NewLeaf("c < 20"),
				),
				And, NewLeaf("d < 10"),
			),
			expected: "(((a < 10 and x < 100) and b < 30) and c < 20) and d < 10",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.group.Render(tc.wrap))
		})
	}
}

func TestGroup_RenderIsIdempotent(t *testing.T) {
	g := group(
		And, NewLeaf("a = 1"),
		Or, group(And, NewLeaf("b = 2"), And, NewGroup()),
	)

	first := g.Render(false)
	second := g.Render(false)

	assert.Equal(t, first, second)
	assert.Equal(t, "a = 1 or (b = 2)", first)
}

func TestGroup_ConjunctionCount(t *testing.T) {
	g := group(
		And, NewLeaf("a = 1"),
		Or, NewGroup(),
		Or, NewLeaf("b = 2"),
		And, group(And, NewLeaf("c = 3")),
		And, NewLeaf("d = 4"),
	)

	out := g.Render(false)
	words := strings.Fields(out)
	conjs := 0
	for _, w := range words {
		if w == "and" || w == "or" {
			conjs++
		}
	}

	// four emitted children, the empty group is skipped
	assert.Equal(t, 3, conjs, "rendered: %s", out)
}

func TestGroup_IsEmpty(t *testing.T) {
	g := NewGroup()
	assert.True(t, g.IsEmpty())

	g.Append(And, NewGroup())
	assert.False(t, g.IsEmpty(), "group holding an empty group is not empty")
	assert.Equal(t, "", g.Render(false))
}

func TestGroup_AppendStampsConjunction(t *testing.T) {
	inner := NewGroup()
	inner.Append(And, NewLeaf("x = 1"))
	require.Equal(t, None, inner.Conjunction())

	outer := NewGroup()
	outer.Append(Or, inner)

	assert.Equal(t, Or, inner.Conjunction())
	require.Len(t, outer.children, 1)
	assert.Same(t, inner, outer.children[0])
}

func TestClone_IsDeep(t *testing.T) {
	inner := group(And, NewLeaf("a = 1"), Or, NewLeaf("b = 2"))
	orig := group(And, NewLeaf("x = 0"), And, inner)

	clone := orig.Clone()
	require.Equal(t, orig.Render(false), clone.Render(false))

	// mutating the original must not leak into the clone
	inner.Append(And, NewLeaf("c = 3"))
	orig.Append(Or, NewLeaf("y = 9"))

	assert.Equal(t, "x = 0 and (a = 1 or b = 2)", clone.Render(false))
	assert.Equal(t, "x = 0 and (a = 1 or b = 2 and c = 3) or y = 9", orig.Render(false))
}

func TestClone_KeepsConjunctions(t *testing.T) {
	leaf := NewLeaf("a = 1")
	g := NewGroup()
	g.Append(Or, leaf)

	cloned := Clone(leaf)
	assert.Equal(t, Or, cloned.Conjunction())
	assert.NotSame(t, leaf, cloned)
	assert.Nil(t, Clone(nil))
}
