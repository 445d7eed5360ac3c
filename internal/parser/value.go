package parser

import (
	"angle/internal/ast"
	"angle/internal/token"
)

type ValueParser struct{}

func (ValueParser) Parse(s *Stream) (ast.Node, error) {
	n, err := parseValue(s)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (ValueParser) String() string { return "Value" }

func parseValue(s *Stream) (*ast.Value, error) {
	tok, err := expect(s, token.Value)
	if err != nil {
		return nil, err
	}
	return &ast.Value{Position: tok.Span, Value: unquote(tok.Text)}, nil
}

// unquote снимает ровно одну открывающую и одну закрывающую кавычку.
func unquote(text string) string {
	if len(text) > 0 && text[0] == '"' {
		text = text[1:]
	}
	if len(text) > 0 && text[len(text)-1] == '"' {
		text = text[:len(text)-1]
	}
	return text
}
