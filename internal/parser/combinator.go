package parser

import (
	"fmt"

	"angle/internal/ast"
	"angle/internal/token"
)

// Combinator разбирает поток слева направо ровно один раз.
// При ошибке узлы не возвращаются (nil), потреблённые токены не восстанавливаются.
type Combinator interface {
	TryParse(s *Stream) ([]ast.Node, error)
}

// Consumer потребляет один токен вида Kind и ничего не строит.
type Consumer struct {
	Kind token.Kind
}

func (c Consumer) TryParse(s *Stream) ([]ast.Node, error) {
	if _, err := expect(s, c.Kind); err != nil {
		return nil, err
	}
	return []ast.Node{}, nil
}

func (c Consumer) String() string { return c.Kind.String() }

// Yielder строит один узел через Parseable.
type Yielder struct {
	Parser Parseable
}

func (y Yielder) TryParse(s *Stream) ([]ast.Node, error) {
	node, err := y.Parser.Parse(s)
	if err != nil {
		return nil, err
	}
	return []ast.Node{node}, nil
}

func (y Yielder) String() string { return fmt.Sprintf("%v", y.Parser) }

// Sequence выполняет Left, затем Right, и склеивает их узлы.
type Sequence struct {
	Left, Right Combinator
}

func (q Sequence) TryParse(s *Stream) ([]ast.Node, error) {
	left, err := q.Left.TryParse(s)
	if err != nil {
		return nil, err
	}
	right, err := q.Right.TryParse(s)
	if err != nil {
		return nil, err
	}
	out := make([]ast.Node, 0, len(left)+len(right))
	out = append(out, left...)
	return append(out, right...), nil
}

func (q Sequence) String() string { return fmt.Sprintf("(%v >> %v)", q.Left, q.Right) }

// Then builds Sequence{left, right}.
func Then(left, right Combinator) Sequence {
	return Sequence{Left: left, Right: right}
}

// Chain сворачивает комбинаторы влево: Chain(a, b, c) == (a >> b) >> c.
// Пустой список или nil элемент — ошибка программиста.
func Chain(cs ...Combinator) Combinator {
	if len(cs) == 0 {
		panic("parser: Chain of no combinators")
	}
	acc := cs[0]
	for i, c := range cs {
		if c == nil {
			panic(fmt.Sprintf("parser: nil combinator at index %d", i))
		}
		if i > 0 {
			acc = Then(acc, c)
		}
	}
	return acc
}

// Готовые комбинаторы.
var (
	LAngle Combinator = Consumer{Kind: token.LAngle}
	RAngle Combinator = Consumer{Kind: token.RAngle}
	Equals Combinator = Consumer{Kind: token.Equals}
	Slash  Combinator = Consumer{Kind: token.Slash}
	Number Combinator = Consumer{Kind: token.Number}

	Ident Combinator = Yielder{Parser: IdentifierParser{}}
	Val   Combinator = Yielder{Parser: ValueParser{}}
	Attr  Combinator = Yielder{Parser: AttributeParser{}}
)
