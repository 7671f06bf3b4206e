package gojsonpath

import (
	"strconv"
	"strings"
)

// Query represents a parsed JSONPath query.
type Query struct {
	Root  string  `@("$" | "@")`
	Parts []*Part `@@*`
}

// Run the query against a document.
func (e *Query) Run(v any) ([]any, error) {
	path, err := Compile(e)
	if err != nil {
		return nil, err
	}
	return path.Run(v), nil
}

func (e *Query) String() string {
	var s strings.Builder
	e.writeTo(&s)
	return s.String()
}

func (e *Query) writeTo(s *strings.Builder) {
	s.WriteString(e.Root)
	for _, p := range e.Parts {
		p.writeTo(s)
	}
}

// Part ...
type Part struct {
	Recurse  *string    `  Recurse @Ident`
	Wildcard bool       `| "." @"*"`
	Key      *string    `| "." @Ident`
	Union    []*Element `| "[" @@ ("," @@)* "]"`
}

func (e *Part) String() string {
	var s strings.Builder
	e.writeTo(&s)
	return s.String()
}

func (e *Part) writeTo(s *strings.Builder) {
	switch {
	case e.Recurse != nil:
		s.WriteString("..")
		s.WriteString(*e.Recurse)
	case e.Wildcard:
		s.WriteString(".*")
	case e.Key != nil:
		s.WriteByte('.')
		s.WriteString(*e.Key)
	default:
		s.WriteByte('[')
		for i, el := range e.Union {
			if i > 0 {
				s.WriteByte(',')
			}
			el.writeTo(s)
		}
		s.WriteByte(']')
	}
}

// Element ...
type Element struct {
	Wildcard bool    `  @"*"`
	Filter   *Filter `| "?" "(" @@ ")"`
	Slice    *Slice  `| @@`
	Str      *String `| @String`
	Index    *int    `| @Int`
}

func (e *Element) String() string {
	var s strings.Builder
	e.writeTo(&s)
	return s.String()
}

func (e *Element) writeTo(s *strings.Builder) {
	switch {
	case e.Wildcard:
		s.WriteByte('*')
	case e.Filter != nil:
		s.WriteString("?(")
		e.Filter.writeTo(s)
		s.WriteByte(')')
	case e.Slice != nil:
		e.Slice.writeTo(s)
	case e.Str != nil:
		s.WriteString(strconv.Quote(string(*e.Str)))
	case e.Index != nil:
		s.WriteString(strconv.Itoa(*e.Index))
	}
}

// Slice ...
type Slice struct {
	First *int `@Int? ":"`
	Last  *int `@Int?`
	Step  *int `(":" @Int)?`
}

func (e *Slice) String() string {
	var s strings.Builder
	e.writeTo(&s)
	return s.String()
}

func (e *Slice) writeTo(s *strings.Builder) {
	if e.First != nil {
		s.WriteString(strconv.Itoa(*e.First))
	}
	s.WriteByte(':')
	if e.Last != nil {
		s.WriteString(strconv.Itoa(*e.Last))
	}
	if e.Step != nil {
		s.WriteByte(':')
		s.WriteString(strconv.Itoa(*e.Step))
	}
}

// Filter represents a comparison applied to each child of the current item.
type Filter struct {
	Query *Query   `@@`
	Op    Operator `@CompareOp`
	Value *Literal `@@`
}

func (e *Filter) String() string {
	var s strings.Builder
	e.writeTo(&s)
	return s.String()
}

func (e *Filter) writeTo(s *strings.Builder) {
	e.Query.writeTo(s)
	s.WriteByte(' ')
	s.WriteString(e.Op.String())
	s.WriteByte(' ')
	e.Value.writeTo(s)
}

// Literal ...
type Literal struct {
	Null  bool    `  @"null"`
	True  bool    `| @"true"`
	False bool    `| @"false"`
	Str   *String `| @String`
	Num   *string `| @(Number | Int)`
}

func (e *Literal) String() string {
	var s strings.Builder
	e.writeTo(&s)
	return s.String()
}

func (e *Literal) writeTo(s *strings.Builder) {
	switch {
	case e.Null:
		s.WriteString("null")
	case e.True:
		s.WriteString("true")
	case e.False:
		s.WriteString("false")
	case e.Str != nil:
		s.WriteString(strconv.Quote(string(*e.Str)))
	case e.Num != nil:
		s.WriteString(*e.Num)
	}
}

// String represents a quoted string. Both single and double quoted forms
// are accepted; escape sequences follow the double quoted form.
type String string

// Capture implements participle.Capture.
func (s *String) Capture(tokens []string) error {
	str, err := unquoteString(tokens[0])
	if err != nil {
		return err
	}
	*s = String(str)
	return nil
}
