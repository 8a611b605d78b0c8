package css

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// token is a single lexed selector token.
type token struct {
	tt   css.TokenType
	data string
}

// ParseSelectorList tokenizes selector text and groups the tokens into a
// selector list. Spacing and comments are kept as explicit nodes so that text
// which is not rewritten round-trips unchanged.
func ParseSelectorList(text string) (List, error) {
	tokens, err := lexSelector(text)
	if err != nil {
		return nil, err
	}
	list, _ := parseBranches(tokens, 0, false)
	return list, nil
}

// lexSelector runs the CSS tokenizer over selector text.
func lexSelector(text string) ([]token, error) {
	l := css.NewLexer(parse.NewInput(bytes.NewReader([]byte(text))))

	var tokens []token
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			if err := l.Err(); err != nil && err != io.EOF {
				return nil, fmt.Errorf("unable to tokenize selector %q: %w", text, err)
			}
			return tokens, nil
		}
		tokens = append(tokens, token{tt: tt, data: string(data)})
	}
}

// parseBranches consumes tokens starting at pos and returns parsed branches
// together with the position one past the consumed range. When inFunction is
// set, parsing stops at the matching right parenthesis.
func parseBranches(tokens []token, pos int, inFunction bool) (List, int) {
	var (
		list    List
		current Selector
	)

	flush := func() {
		list = append(list, current)
		current = Selector{}
	}

	for pos < len(tokens) {
		t := tokens[pos]

		switch t.tt {
		case css.RightParenthesisToken:
			if inFunction {
				flush()
				return list, pos + 1
			}
			current.Nodes = append(current.Nodes, Node{Kind: KindRaw, Value: t.data})
			pos++

		case css.CommaToken:
			flush()
			pos++

		case css.WhitespaceToken:
			current.Nodes = append(current.Nodes, Node{Kind: KindSpace, Value: t.data})
			pos++

		case css.CommentToken:
			current.Nodes = append(current.Nodes, Node{Kind: KindComment, Value: t.data})
			pos++

		case css.IdentToken:
			current.Nodes = append(current.Nodes, Node{Kind: KindTag, Value: t.data})
			pos++

		case css.HashToken:
			current.Nodes = append(current.Nodes, Node{Kind: KindID, Value: strings.TrimPrefix(t.data, "#")})
			pos++

		case css.LeftBracketToken:
			var node Node
			node, pos = parseAttribute(tokens, pos)
			current.Nodes = append(current.Nodes, node)

		case css.ColonToken:
			var node Node
			node, pos = parsePseudo(tokens, pos)
			current.Nodes = append(current.Nodes, node)

		case css.ColumnToken:
			current.Nodes = append(current.Nodes, Node{Kind: KindCombinator, Value: t.data})
			pos++

		case css.DelimToken:
			switch t.data {
			case ".":
				if pos+1 < len(tokens) && tokens[pos+1].tt == css.IdentToken {
					current.Nodes = append(current.Nodes, Node{Kind: KindClass, Value: tokens[pos+1].data})
					pos += 2
					continue
				}
				current.Nodes = append(current.Nodes, Node{Kind: KindRaw, Value: t.data})
				pos++
			case "*":
				current.Nodes = append(current.Nodes, Node{Kind: KindUniversal, Value: t.data})
				pos++
			case ">", "+", "~":
				current.Nodes = append(current.Nodes, Node{Kind: KindCombinator, Value: t.data})
				pos++
			default:
				current.Nodes = append(current.Nodes, Node{Kind: KindRaw, Value: t.data})
				pos++
			}

		case css.FunctionToken:
			// function without a leading colon is not a selector construct,
			// keep it (and its argument) verbatim
			var node Node
			node, pos = parseRawFunction(tokens, pos)
			current.Nodes = append(current.Nodes, node)

		default:
			current.Nodes = append(current.Nodes, Node{Kind: KindRaw, Value: t.data})
			pos++
		}
	}

	flush()
	return list, pos
}

// parseAttribute consumes "[" ... "]" verbatim.
func parseAttribute(tokens []token, pos int) (Node, int) {
	var sb strings.Builder
	for pos < len(tokens) {
		t := tokens[pos]
		sb.WriteString(t.data)
		pos++
		if t.tt == css.RightBracketToken {
			break
		}
	}
	return Node{Kind: KindAttribute, Value: sb.String()}, pos
}

// parsePseudo consumes a pseudo class, pseudo element or functional pseudo
// starting at a colon token.
func parsePseudo(tokens []token, pos int) (Node, int) {
	colons := ":"
	pos++
	if pos < len(tokens) && tokens[pos].tt == css.ColonToken {
		colons = "::"
		pos++
	}
	if pos < len(tokens) {
		switch t := tokens[pos]; t.tt {
		case css.IdentToken:
			return Node{Kind: KindPseudo, Value: colons + t.data}, pos + 1
		case css.FunctionToken:
			name := colons + strings.TrimSuffix(t.data, "(")
			arg, next := parseBranches(tokens, pos+1, true)
			return Node{Kind: KindFunction, Value: name, Arg: arg}, next
		}
	}
	// dangling colon
	return Node{Kind: KindRaw, Value: colons}, pos
}

// parseRawFunction consumes a non-pseudo function call verbatim, tracking
// parenthesis depth.
func parseRawFunction(tokens []token, pos int) (Node, int) {
	var sb strings.Builder
	depth := 0
	for pos < len(tokens) {
		t := tokens[pos]
		sb.WriteString(t.data)
		pos++
		switch t.tt {
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
			if depth == 0 {
				return Node{Kind: KindRaw, Value: sb.String()}, pos
			}
		}
	}
	return Node{Kind: KindRaw, Value: sb.String()}, pos
}
