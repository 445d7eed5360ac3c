package parser

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"angle/internal/ast"
	"angle/internal/token"
)

type AttributeParser struct{}

func (AttributeParser) String() string { return "Attribute" }

// Parse разбирает `key`, `key="value"`.
// Если значение после приведения к нижнему регистру — "true" или "false",
// строится Boolean, ключом которого становится текст значения, а не имя.
func (AttributeParser) Parse(s *Stream) (ast.Node, error) {
	key, err := parseIdentifier(s)
	if err != nil {
		return nil, err
	}
	if next, ok := s.Peek(); !ok || !next.Is(token.Equals) {
		return ast.NewBoolean(key.Value, true, key.Position), nil
	}
	s.Consume() // '='

	val, err := parseValue(s)
	if err != nil {
		return nil, err
	}
	text := cases.Lower(language.Und).String(val.Value)
	sp := key.Position.Merge(val.Position)

	if set, ok := parseBool(text); ok {
		return ast.NewBoolean(text, set, sp), nil
	}
	return ast.NewKeyValue(key.Value, text, sp), nil
}

func parseBool(s string) (value, ok bool) {
	switch s {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}
