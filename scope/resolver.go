package scope

import (
	"cssmod/css"
)

// Resolved is the outcome of resolving one comma-branch.
type Resolved struct {
	Selector     css.Selector // rewritten node sequence
	ScopedNodes  int          // class/id nodes wrapped in a :local marker
	UsedOverride bool         // an explicit :local/:global construct was seen
}

// Resolve rewrites one selector branch under the given default mode: local
// classes and ids are wrapped in :local(...) markers, explicit overrides are
// applied and consumed, everything else passes through unchanged. Structural
// violations (illegal nesting, missing whitespace around a broad override)
// abort resolution with a typed error.
func Resolve(sel css.Selector, mode Mode) (Resolved, error) {
	var r Resolved
	out, err := resolveNodes(sel.Nodes, NewContext(mode), &r)
	if err != nil {
		return Resolved{}, err
	}
	r.Selector = css.Selector{Nodes: out}
	return r, nil
}

// resolveNodes walks one node sequence left to right. The context is passed
// by value; broad overrides replace it for the remaining siblings, narrow
// overrides and functional pseudos recurse with a derived context and the
// caller's context stays untouched.
func resolveNodes(nodes []css.Node, ctx Context, r *Resolved) ([]css.Node, error) {
	out := make([]css.Node, 0, len(nodes))

	for i := 0; i < len(nodes); i++ {
		n := nodes[i]

		switch k := Classify(n); k {
		case KindClass, KindID:
			if ctx.Mode() == ModeLocal {
				out = append(out, localMarker(n))
				r.ScopedNodes++
			} else {
				out = append(out, n)
			}

		case KindBroadLocal, KindBroadGlobal:
			r.UsedOverride = true
			if err := checkBroadSpacing(nodes, i, n.Value); err != nil {
				return nil, err
			}
			next, err := ctx.Enter(modeOf(k), overrideBroad, n.Value)
			if err != nil {
				return nil, err
			}
			ctx = next
			// the keyword is consumed together with one adjacent space
			if i+1 < len(nodes) && nodes[i+1].Kind == css.KindSpace {
				i++
			} else if last := len(out) - 1; last >= 0 && out[last].Kind == css.KindSpace {
				out = out[:last]
			}

		case KindNarrowLocal, KindNarrowGlobal:
			r.UsedOverride = true
			child, err := ctx.Enter(modeOf(k), overrideNarrow, n.Value+"(...)")
			if err != nil {
				return nil, err
			}
			// the marker itself is consumed; its argument is resolved under
			// the override's mode, which re-wraps local content and leaves
			// global content bare (already-resolved input stays untouched)
			for bi, branch := range n.Arg {
				if bi > 0 {
					out = append(out, css.Node{Kind: css.KindRaw, Value: ","})
				}
				resolved, err := resolveNodes(branch.Nodes, child, r)
				if err != nil {
					return nil, err
				}
				out = append(out, resolved...)
			}

		case KindFunction:
			// mode carries into the argument of :not and friends
			arg := make(css.List, 0, len(n.Arg))
			for _, branch := range n.Arg {
				resolved, err := resolveNodes(branch.Nodes, ctx, r)
				if err != nil {
					return nil, err
				}
				arg = append(arg, css.Selector{Nodes: resolved})
			}
			out = append(out, css.Node{Kind: css.KindFunction, Value: n.Value, Arg: arg})

		default:
			out = append(out, n)
		}
	}

	return out, nil
}

// modeOf returns the mode an override kind switches to.
func modeOf(k Kind) Mode {
	if k == KindBroadLocal || k == KindNarrowLocal {
		return ModeLocal
	}
	return ModeGlobal
}

// localMarker wraps a single class/id node in an explicit :local(...) marker.
// Compound selectors get one marker per simple selector, never one marker
// spanning the compound.
func localMarker(n css.Node) css.Node {
	return css.Node{
		Kind:  css.KindFunction,
		Value: ":local",
		Arg:   css.List{{Nodes: []css.Node{n}}},
	}
}

// checkBroadSpacing validates that a broad :local/:global keyword is
// separated by whitespace from adjacent simple selectors. Branch boundaries
// and combinators count as separation.
func checkBroadSpacing(nodes []css.Node, i int, keyword string) error {
	if i > 0 {
		if k := nodes[i-1].Kind; k != css.KindSpace && k != css.KindCombinator {
			return &SpacingError{Keyword: keyword, Side: "before"}
		}
	}
	if i+1 < len(nodes) {
		if k := nodes[i+1].Kind; k != css.KindSpace && k != css.KindCombinator {
			return &SpacingError{Keyword: keyword, Side: "after"}
		}
	}
	return nil
}
