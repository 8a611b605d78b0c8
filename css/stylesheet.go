package css

import (
	"io"
	"strings"
)

// Declaration is a single "property: value" pair with the raw value text
// preserved for round-tripping.
type Declaration struct {
	Property string
	Value    string
	Custom   bool // custom property (--name), value kept completely verbatim
}

// Rule is a qualified rule: raw selector text plus its declaration block.
// HasBody is false for a rule constructed without a block; such rules are
// emitted as-is and never rewritten. The selector span records where the
// prelude sits in the source so a rewritten selector can be spliced back in.
type Rule struct {
	Selectors    string
	Declarations []Declaration
	HasBody      bool

	selStart, selEnd int
}

// AtRule is an at-rule with optional nested content. @media and @keyframes
// carry nested Items, @font-face carries Declarations, @import and @charset
// carry neither.
type AtRule struct {
	Name         string // including "@"
	Prelude      string
	Items        []Item
	Declarations []Declaration
	HasBody      bool
}

// Item is a single item of a stylesheet or at-rule body.
// Exactly one of Rule, AtRule or Comment is set.
type Item struct {
	Rule    *Rule
	AtRule  *AtRule
	Comment *string

	start, end int // source span of the item, including leading trivia
}

// Stylesheet is a parsed CSS document: ordered top-level items plus warnings
// collected while parsing. The original source text is retained so emission
// can reproduce it byte for byte everywhere a selector was not rewritten.
type Stylesheet struct {
	Items    []Item
	Warnings []string

	src  []byte
	tail int // offset where the last parsed item ended
}

// countingWriter keeps WriteTo bookkeeping out of the emit logic.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (cw *countingWriter) write(b []byte) {
	if cw.err != nil || len(b) == 0 {
		return
	}
	n, err := cw.w.Write(b)
	cw.n += int64(n)
	cw.err = err
}

// WriteTo writes the stylesheet to w, implementing io.WriterTo. Everything is
// emitted from the original source text, with the current selector text of
// each rule spliced over its prelude span. A document whose selectors were
// never changed comes out byte-identical to the input.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	s.writeItems(cw, s.Items)
	cw.write(s.src[s.tail:])
	return cw.n, cw.err
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

func (s *Stylesheet) writeItems(cw *countingWriter, items []Item) {
	for _, item := range items {
		switch {
		case item.Rule != nil:
			cw.write(s.src[item.start:item.Rule.selStart])
			cw.write([]byte(item.Rule.Selectors))
			cw.write(s.src[item.Rule.selEnd:item.end])
		case item.AtRule != nil && len(item.AtRule.Items) > 0:
			// splice nested rules, keeping the header and closing brace verbatim
			children := item.AtRule.Items
			cw.write(s.src[item.start:children[0].start])
			s.writeItems(cw, children)
			cw.write(s.src[children[len(children)-1].end:item.end])
		default:
			cw.write(s.src[item.start:item.end])
		}
	}
}
