package parser

import "angle/internal/ast"

// Parseable проверяет наличие очередной логической единицы и строит её узел.
// При успехе потребляет ровно свои токены; при ошибке оставляет
// потреблённым всё, что успело проверить.
type Parseable interface {
	Parse(s *Stream) (ast.Node, error)
}

var parsers = map[ast.Kind]Parseable{
	ast.KindIdentifier: IdentifierParser{},
	ast.KindValue:      ValueParser{},
	ast.KindAttribute:  AttributeParser{},
}

// ParserFor возвращает единственную реализацию Parseable для вида узла.
func ParserFor(k ast.Kind) (Parseable, bool) {
	p, ok := parsers[k]
	return p, ok
}
