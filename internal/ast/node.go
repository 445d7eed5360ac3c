package ast

import "angle/internal/source"

type Kind uint8

const (
	KindInvalid Kind = iota
	KindIdentifier
	KindValue
	KindAttribute
)

func (k Kind) String() string {
	switch k {
	case KindIdentifier:
		return "Identifier"
	case KindValue:
		return "Value"
	case KindAttribute:
		return "Attribute"
	}
	return "Invalid"
}

// Node — построенный узел. Узлы не ссылаются на поток токенов.
type Node interface {
	Kind() Kind
	Span() source.Span
	node()
}

// Identifier копирует текст и позицию токена Identifier.
type Identifier struct {
	Position source.Span
	Value    string
}

func (*Identifier) Kind() Kind          { return KindIdentifier }
func (n *Identifier) Span() source.Span { return n.Position }
func (*Identifier) node()               {}

// Value хранит текст без обрамляющих кавычек; Position покрывает кавычки.
type Value struct {
	Position source.Span
	Value    string
}

func (*Value) Kind() Kind          { return KindValue }
func (n *Value) Span() source.Span { return n.Position }
func (*Value) node()               {}
