package scope

import "fmt"

// SpacingError reports a broad :local/:global keyword that is not separated
// from an adjacent simple selector by whitespace.
type SpacingError struct {
	Keyword string // keyword as written, e.g. ":global"
	Side    string // "before" or "after"
}

func (e *SpacingError) Error() string {
	return fmt.Sprintf("missing whitespace %s %s", e.Side, e.Keyword)
}

// NestedScopeError reports an explicit scope override placed inside a narrow
// :local(...)/:global(...) block. No combination of overrides may nest there.
type NestedScopeError struct {
	Inner string // offending construct, e.g. ":local(...)"
	Outer string // enclosing construct, e.g. ":global(...)"
}

func (e *NestedScopeError) Error() string {
	return fmt.Sprintf("%s is not allowed inside of %s", e.Inner, e.Outer)
}

// InconsistentSelectorError reports a selector list mixing fully global
// branches with branches that became local purely by the configured default.
type InconsistentSelectorError struct {
	Selector string // literal selector text of the rule
}

func (e *InconsistentSelectorError) Error() string {
	return fmt.Sprintf("inconsistent global/local result in selector %q (all branches of a rule must resolve to the same mode)", e.Selector)
}

// NotPureError reports a branch without any locally scoped class or id while
// pure mode is in effect.
type NotPureError struct {
	Selector string // literal text of the offending branch
}

func (e *NotPureError) Error() string {
	return fmt.Sprintf("selector %q is not pure (pure selectors must contain at least one local class or id)", e.Selector)
}
