package parser

import (
	"angle/internal/ast"
	"angle/internal/token"
)

type IdentifierParser struct{}

func (IdentifierParser) Parse(s *Stream) (ast.Node, error) {
	n, err := parseIdentifier(s)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (IdentifierParser) String() string { return "Identifier" }

func parseIdentifier(s *Stream) (*ast.Identifier, error) {
	tok, err := expect(s, token.Identifier)
	if err != nil {
		return nil, err
	}
	return &ast.Identifier{Position: tok.Span, Value: tok.Text}, nil
}
