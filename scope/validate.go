package scope

import "strings"

// CheckConsistency rejects a resolved selector list that mixes branches which
// are fully global with branches that became local purely by the configured
// default. Branches carrying explicit overrides are each taken at face value,
// so lists where every branch is annotated are accepted even when the
// resulting scopes differ.
func CheckConsistency(branches []Resolved, mode Mode, selector string) error {
	var fullyGlobal, implicitLocal bool
	for _, b := range branches {
		switch {
		case b.ScopedNodes == 0 && (b.UsedOverride || mode == ModeGlobal):
			fullyGlobal = true
		case b.ScopedNodes > 0 && !b.UsedOverride:
			implicitLocal = true
		}
	}
	if fullyGlobal && implicitLocal {
		return &InconsistentSelectorError{Selector: strings.TrimSpace(selector)}
	}
	return nil
}

// CheckPurity validates that a resolved branch contains at least one locally
// scoped class or id. The original branch text is used for error reporting.
func CheckPurity(r Resolved, original string) error {
	if r.ScopedNodes == 0 {
		return &NotPureError{Selector: strings.TrimSpace(original)}
	}
	return nil
}
