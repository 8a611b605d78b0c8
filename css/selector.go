package css

import "strings"

// NodeKind identifies the kind of a single selector component.
type NodeKind int

const (
	KindTag       NodeKind = iota // element name, e.g. "p"
	KindClass                     // class without the dot, e.g. "epigraph"
	KindID                        // id without the hash, e.g. "main"
	KindAttribute                 // raw attribute selector including brackets
	KindUniversal                 // "*"
	KindCombinator                // ">", "+", "~" or "||"
	KindSpace                     // literal whitespace run (descendant combinator)
	KindComment                   // raw comment including markers
	KindPseudo                    // pseudo class or element including colons, e.g. ":hover", "::before"
	KindFunction                  // functional pseudo, e.g. ":not", ":local"; argument in Arg
	KindRaw                       // anything else, passed through verbatim
)

// Node is one component of a parsed selector. Nodes are treated as immutable
// values; rewriting produces new nodes instead of mutating in place.
type Node struct {
	Kind  NodeKind
	Value string
	Arg   List // function argument branches, nil for non-function nodes
}

// Selector is one comma-branch of a selector list.
type Selector struct {
	Nodes []Node
}

// List is an ordered selector list; order of branches is document order.
type List []Selector

// String returns the CSS text of a single node.
func (n Node) String() string {
	switch n.Kind {
	case KindClass:
		return "." + n.Value
	case KindID:
		return "#" + n.Value
	case KindFunction:
		return n.Value + "(" + n.Arg.String() + ")"
	default:
		return n.Value
	}
}

// String returns the CSS text of one comma-branch.
func (s Selector) String() string {
	var sb strings.Builder
	for _, n := range s.Nodes {
		sb.WriteString(n.String())
	}
	return sb.String()
}

// String returns the CSS text of the whole selector list. Whitespace around
// commas is preserved by explicit space nodes inside the branches.
func (l List) String() string {
	parts := make([]string, 0, len(l))
	for _, s := range l {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, ",")
}
