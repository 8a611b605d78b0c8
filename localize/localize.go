// Package localize rewrites the selectors of a parsed stylesheet so that
// every locally scoped class and id is wrapped in an explicit :local(...)
// marker, ready for a renaming/export pass.
package localize

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"cssmod/css"
	"cssmod/scope"
)

// keyframesPattern matches @keyframes and its vendor-prefixed variants.
var keyframesPattern = regexp.MustCompile(`(?i)keyframes$`)

// importPattern matches the reserved :import("path") pseudo rule form.
var importPattern = regexp.MustCompile(`^:import\(.+\)$`)

// Transformer rewrites selectors of a parsed stylesheet in place.
type Transformer struct {
	mode scope.Mode
	log  *zap.Logger
}

// NewTransformer creates a transformer for the given default mode.
func NewTransformer(mode scope.Mode, log *zap.Logger) *Transformer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Transformer{mode: mode, log: log.Named("localize")}
}

// Transform rewrites every eligible rule selector in the stylesheet. The
// first structural error aborts the transform and the stylesheet must then
// be discarded: there is no partial output.
func (t *Transformer) Transform(sheet *css.Stylesheet) error {
	return t.transformItems(sheet.Items, false)
}

func (t *Transformer) transformItems(items []css.Item, inKeyframes bool) error {
	for i := range items {
		item := &items[i]
		switch {
		case item.Rule != nil:
			if inKeyframes {
				// keyframe preludes are animation offsets, not selectors
				continue
			}
			if err := t.transformRule(item.Rule); err != nil {
				return err
			}
		case item.AtRule != nil:
			kf := inKeyframes || keyframesPattern.MatchString(item.AtRule.Name)
			if err := t.transformItems(item.AtRule.Items, kf); err != nil {
				return err
			}
		}
	}
	return nil
}

// transformRule resolves one rule's selector list and writes the rewritten
// text back. Bodyless rules and the reserved :import/:export pseudo rules
// pass through untouched.
func (t *Transformer) transformRule(rule *css.Rule) error {
	if !rule.HasBody {
		return nil
	}
	if isReservedSelector(rule.Selectors) {
		return nil
	}

	list, err := css.ParseSelectorList(rule.Selectors)
	if err != nil {
		return fmt.Errorf("unable to parse selector %q: %w", rule.Selectors, err)
	}

	resolved := make([]scope.Resolved, 0, len(list))
	out := make(css.List, 0, len(list))
	for _, sel := range list {
		r, err := scope.Resolve(sel, t.mode)
		if err != nil {
			return err
		}
		resolved = append(resolved, r)
		out = append(out, r.Selector)
	}

	if err := scope.CheckConsistency(resolved, t.mode, rule.Selectors); err != nil {
		return err
	}
	if t.mode == scope.ModePure {
		for i, r := range resolved {
			if err := scope.CheckPurity(r, list[i].String()); err != nil {
				return err
			}
		}
	}

	rewritten := out.String()
	if rewritten != rule.Selectors {
		t.log.Debug("Rewrote selector", zap.String("from", rule.Selectors), zap.String("to", rewritten))
	}
	rule.Selectors = rewritten
	return nil
}

// isReservedSelector recognizes the ICSS pseudo rules that carry import and
// export tables rather than style declarations.
func isReservedSelector(selector string) bool {
	s := strings.TrimSpace(selector)
	return s == ":export" || importPattern.MatchString(s)
}
