package css

import (
	"bytes"
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses CSS documents into a Stylesheet tree.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS document parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses CSS text into a Stylesheet.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{
		Items:    make([]Item, 0),
		Warnings: make([]string, 0),
		src:      data,
	}

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	input := parse.NewInput(bytes.NewReader(data))
	d := &docParser{
		p:     css.NewParser(input, false),
		src:   data,
		log:   p.log,
		sheet: sheet,
	}

	sheet.Items = d.parseItems()
	sheet.tail = d.last
	if err := d.p.Err(); err != nil && err.Error() != "EOF" {
		p.log.Debug("CSS parse error", zap.Error(err))
		sheet.Warnings = append(sheet.Warnings, "parse error: "+err.Error())
	}
	return sheet
}

// docParser carries the per-document parse state. The grammar stream strips
// prelude whitespace from its token values, so selector text is taken from
// the raw input instead: last tracks the source offset where the previous
// item ended, and each item records the span it covers.
type docParser struct {
	p     *css.Parser
	src   []byte
	last  int
	log   *zap.Logger
	sheet *Stylesheet
}

// parseItems consumes grammar events until end of input and returns the
// top-level items found.
func (d *docParser) parseItems() []Item {
	var items []Item

	for {
		gt, _, data := d.p.Next()

		switch gt {
		case css.ErrorGrammar:
			return items

		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			// stray block terminator at the top level; its text stays in the
			// following item's leading trivia
			d.log.Debug("Unexpected block end at top level")

		case css.CommentGrammar:
			items = append(items, d.commentItem(data))

		case css.AtRuleGrammar:
			items = append(items, d.atRuleItem(data))

		case css.QualifiedRuleGrammar:
			// a comma-terminated selector segment; the prelude span keeps
			// growing until the ruleset itself begins

		case css.BeginAtRuleGrammar:
			items = append(items, d.beginAtRuleItem(data))

		case css.BeginRulesetGrammar:
			items = append(items, d.rulesetItem())

		case css.TokenGrammar, css.CustomPropertyGrammar, css.DeclarationGrammar:
			// declarations outside a block carry no rules, note and continue
			d.sheet.Warnings = append(d.sheet.Warnings, "unexpected content outside of a block: "+string(data))
		}
	}
}

// parseAtRuleBody collects everything up to the matching end of the at-rule:
// nested rules (for @media, @keyframes and the like) and declarations (for
// @font-face and the like).
func (d *docParser) parseAtRuleBody() ([]Item, []Declaration) {
	var (
		items []Item
		decls []Declaration
	)

	for {
		gt, _, data := d.p.Next()

		switch gt {
		case css.ErrorGrammar, css.EndAtRuleGrammar:
			return items, decls

		case css.CommentGrammar:
			items = append(items, d.commentItem(data))

		case css.AtRuleGrammar:
			items = append(items, d.atRuleItem(data))

		case css.QualifiedRuleGrammar:
			// prelude continues, see parseItems

		case css.BeginAtRuleGrammar:
			items = append(items, d.beginAtRuleItem(data))

		case css.BeginRulesetGrammar:
			items = append(items, d.rulesetItem())

		case css.DeclarationGrammar:
			decls = append(decls, Declaration{
				Property: string(data),
				Value:    declarationText(d.p.Values()),
			})

		case css.CustomPropertyGrammar:
			decls = append(decls, Declaration{
				Property: string(data),
				Value:    tokensText(d.p.Values()),
				Custom:   true,
			})
		}
	}
}

// parseDeclarations collects declarations until the ruleset ends.
func (d *docParser) parseDeclarations() []Declaration {
	var decls []Declaration

	for {
		gt, _, data := d.p.Next()

		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return decls

		case css.DeclarationGrammar:
			decls = append(decls, Declaration{
				Property: string(data),
				Value:    declarationText(d.p.Values()),
			})

		case css.CustomPropertyGrammar:
			decls = append(decls, Declaration{
				Property: string(data),
				Value:    tokensText(d.p.Values()),
				Custom:   true,
			})

		case css.CommentGrammar:
			// comments between declarations stay in the rule's source span
			d.log.Debug("Comment inside declaration block", zap.ByteString("comment", data))
		}
	}
}

func (d *docParser) commentItem(data []byte) Item {
	comment := string(data)
	end := d.p.Offset()
	item := Item{Comment: &comment, start: d.last, end: end}
	d.last = end
	return item
}

func (d *docParser) atRuleItem(data []byte) Item {
	end := d.p.Offset()
	item := Item{
		AtRule: &AtRule{
			Name:    string(data),
			Prelude: tokensText(d.p.Values()),
		},
		start: d.last,
		end:   end,
	}
	d.last = end
	return item
}

func (d *docParser) beginAtRuleItem(data []byte) Item {
	start := d.last
	at := &AtRule{
		Name:    string(data),
		Prelude: tokensText(d.p.Values()),
		HasBody: true,
	}
	d.last = d.p.Offset() // past "{", nested item spans start here
	at.Items, at.Declarations = d.parseAtRuleBody()
	end := d.p.Offset()
	d.last = end
	return Item{AtRule: at, start: start, end: end}
}

// rulesetItem captures the selector prelude verbatim from the source. The
// grammar event ends just past the opening brace; everything between the end
// of the previous item and that brace, with outer whitespace trimmed, is the
// selector list exactly as written.
func (d *docParser) rulesetItem() Item {
	start := d.last
	off := d.p.Offset() // past "{"

	raw := d.src[start : off-1]
	lead := len(raw) - len(bytes.TrimLeftFunc(raw, unicode.IsSpace))
	trimmed := bytes.TrimSpace(raw)

	rule := &Rule{
		Selectors: string(trimmed),
		HasBody:   true,
		selStart:  start + lead,
		selEnd:    start + lead + len(trimmed),
	}
	rule.Declarations = d.parseDeclarations()

	end := d.p.Offset()
	d.last = end
	return Item{Rule: rule, start: start, end: end}
}

// tokensText concatenates token data verbatim and trims outer whitespace.
func tokensText(values []css.Token) string {
	var sb strings.Builder
	for _, v := range values {
		sb.Write(v.Data)
	}
	return strings.TrimSpace(sb.String())
}

// declarationText rebuilds a declaration value, collapsing whitespace runs to
// single spaces.
func declarationText(values []css.Token) string {
	var sb strings.Builder
	for _, v := range values {
		if v.TokenType == css.WhitespaceToken {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			continue
		}
		sb.Write(v.Data)
	}
	return strings.TrimRight(sb.String(), " ")
}
