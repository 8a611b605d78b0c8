package scope

// overrideKind records how the active context was established.
type overrideKind int

const (
	overrideNone   overrideKind = iota // configured default
	overrideNarrow                     // :local(...)/:global(...)
	overrideBroad                      // :local/:global keyword
)

// Context carries the active scoping mode during a selector walk. Contexts
// are plain values: Enter derives a child context and the caller keeps the
// parent, so leaving a construct's span is just dropping the child.
type Context struct {
	mode      Mode
	kind      overrideKind
	container string // construct that established this context, for error text
}

// NewContext seeds a context from the configured default mode. Pure mode
// resolves like local; purity is validated after resolution.
func NewContext(mode Mode) Context {
	if mode == ModePure {
		mode = ModeLocal
	}
	return Context{mode: mode}
}

// Mode returns the active mode.
func (c Context) Mode() Mode {
	return c.mode
}

// Enter derives a context for an explicit override construct. A narrow
// :local(...)/:global(...) may not contain another override of either kind,
// narrow or broad.
func (c Context) Enter(mode Mode, kind overrideKind, construct string) (Context, error) {
	if c.kind == overrideNarrow {
		return c, &NestedScopeError{Inner: construct, Outer: c.container}
	}
	return Context{mode: mode, kind: kind, container: construct}, nil
}
