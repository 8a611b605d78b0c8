package localize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/maruel/natural"

	"cssmod/css"
	"cssmod/naming"
)

// Exports maps original local names to their generated scoped names.
type Exports map[string]string

// Names returns the exported local names in natural order.
func (e Exports) Names() []string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))
	return names
}

// MarshalJSON emits the table as a JSON object with keys in natural order,
// so batch runs produce stable diffable output.
func (e Exports) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range e.Names() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e[name])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeExports stores the export table next to the rewritten stylesheet.
func writeExports(path string, exports Exports) error {
	data, err := json.MarshalIndent(exports, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// Apply replaces every :local(...) marker in the stylesheet with the scoped
// name produced by the generator and returns the resulting export table.
// The same local name always maps to the same scoped name within one
// stylesheet.
func Apply(sheet *css.Stylesheet, gen *naming.Generator) (Exports, error) {
	exports := make(Exports)
	if err := applyItems(sheet.Items, gen, exports); err != nil {
		return nil, err
	}
	return exports, nil
}

func applyItems(items []css.Item, gen *naming.Generator, exports Exports) error {
	for i := range items {
		item := &items[i]
		switch {
		case item.Rule != nil:
			if err := applyRule(item.Rule, gen, exports); err != nil {
				return err
			}
		case item.AtRule != nil:
			if err := applyItems(item.AtRule.Items, gen, exports); err != nil {
				return err
			}
		}
	}
	return nil
}

func applyRule(rule *css.Rule, gen *naming.Generator, exports Exports) error {
	if !rule.HasBody || !strings.Contains(rule.Selectors, ":local(") {
		return nil
	}
	list, err := css.ParseSelectorList(rule.Selectors)
	if err != nil {
		return fmt.Errorf("unable to parse selector %q: %w", rule.Selectors, err)
	}
	for bi := range list {
		nodes, err := applyNodes(list[bi].Nodes, gen, exports)
		if err != nil {
			return err
		}
		list[bi].Nodes = nodes
	}
	rule.Selectors = list.String()
	return nil
}

// applyNodes unwraps single class or id markers, renaming their argument.
// Markers inside functional pseudo arguments, :not(:local(.foo)) and the
// like, are unwrapped recursively. Anything else inside a marker is left
// as is.
func applyNodes(nodes []css.Node, gen *naming.Generator, exports Exports) ([]css.Node, error) {
	out := make([]css.Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Kind == css.KindFunction && strings.EqualFold(n.Value, ":local") &&
			len(n.Arg) == 1 && len(n.Arg[0].Nodes) == 1 {

			inner := n.Arg[0].Nodes[0]
			if inner.Kind == css.KindClass || inner.Kind == css.KindID {
				scoped, err := gen.Name(inner.Value)
				if err != nil {
					return nil, err
				}
				exports[inner.Value] = scoped
				inner.Value = scoped
				out = append(out, inner)
				continue
			}
		}
		if n.Kind == css.KindFunction {
			for bi := range n.Arg {
				nodes, err := applyNodes(n.Arg[bi].Nodes, gen, exports)
				if err != nil {
					return nil, err
				}
				n.Arg[bi].Nodes = nodes
			}
		}
		out = append(out, n)
	}
	return out, nil
}
