package gojsonpath

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle"
	"github.com/alecthomas/participle/lexer"
)

var parserOptions = []participle.Option{
	participle.Lexer(lexer.Must(lexer.Regexp(`(\s+)` +
		`|(?P<Keyword>(null|true|false)\b)` +
		`|(?P<Ident>[a-zA-Z_][a-zA-Z0-9_]*)` +
		`|(?P<Recurse>\.\.)` +
		`|(?P<CompareOp>([=!]=|[<>]=?))` +
		`|(?P<Number>(-?\d+\.\d+([eE][-+]?\d+)?|-?\d+[eE][-+]?\d+))` +
		`|(?P<Int>-?\d+)` +
		`|(?P<String>"([^"\\]*|\\.)*"|'([^'\\]*|\\.)*')` +
		"|(?P<Punct>[!-/:-@\\[-\\]^-`{-~])",
	))),
	participle.UseLookahead(2),
}

var parser = participle.MustBuild(&Query{}, parserOptions...)

// Parse parses a query.
func Parse(src string) (*Query, error) {
	var query Query
	if err := parser.ParseString(src, &query); err != nil {
		return nil, &ParseError{src, err}
	}
	return &query, nil
}

// unquoteString unquotes both forms the lexer accepts. The single quoted
// form is rewritten to the double quoted form first, keeping escape pairs
// intact.
func unquoteString(s string) (string, error) {
	if s[0] == '\'' {
		var sb strings.Builder
		sb.WriteByte('"')
		for i := 1; i < len(s)-1; i++ {
			switch c := s[i]; c {
			case '\\':
				if i++; i < len(s)-1 {
					if c = s[i]; c == '\'' {
						sb.WriteByte(c)
					} else {
						sb.WriteByte('\\')
						sb.WriteByte(c)
					}
				}
			case '"':
				sb.WriteString(`\"`)
			default:
				sb.WriteByte(c)
			}
		}
		sb.WriteByte('"')
		s = sb.String()
	}
	return strconv.Unquote(s)
}
