package scope

import (
	"strings"

	"cssmod/css"
)

// Kind classifies a selector node for scope resolution.
type Kind int

const (
	KindElement Kind = iota
	KindClass
	KindID
	KindAttribute
	KindUniversal
	KindCombinator
	KindSpacing
	KindComment
	KindBroadLocal   // ":local" keyword, applies to the rest of the branch
	KindBroadGlobal  // ":global" keyword, applies to the rest of the branch
	KindNarrowLocal  // ":local(...)", applies to its argument only
	KindNarrowGlobal // ":global(...)", applies to its argument only
	KindFunction     // any other functional pseudo, e.g. ":not(...)"
	KindPseudo       // any other plain pseudo class or element
	KindOther
)

// Classify maps a parsed selector node onto the scope-relevant kind set.
// Pure classification: it never looks at context and never mutates the node.
func Classify(n css.Node) Kind {
	switch n.Kind {
	case css.KindTag:
		return KindElement
	case css.KindClass:
		return KindClass
	case css.KindID:
		return KindID
	case css.KindAttribute:
		return KindAttribute
	case css.KindUniversal:
		return KindUniversal
	case css.KindCombinator:
		return KindCombinator
	case css.KindSpace:
		return KindSpacing
	case css.KindComment:
		return KindComment
	case css.KindPseudo:
		switch strings.ToLower(n.Value) {
		case ":local":
			return KindBroadLocal
		case ":global":
			return KindBroadGlobal
		}
		return KindPseudo
	case css.KindFunction:
		switch strings.ToLower(n.Value) {
		case ":local":
			return KindNarrowLocal
		case ":global":
			return KindNarrowGlobal
		}
		return KindFunction
	default:
		return KindOther
	}
}

// IsScopable reports whether nodes of this kind are subject to renaming.
// Only classes and ids are ever wrapped; elements, attributes and the
// universal selector pass through untouched under every mode.
func IsScopable(k Kind) bool {
	return k == KindClass || k == KindID
}
