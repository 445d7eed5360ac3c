package ast

import (
	"fmt"

	"angle/internal/source"
)

type AttrForm uint8

const (
	AttrKeyValue AttrForm = iota
	AttrBoolean
)

func (f AttrForm) String() string {
	if f == AttrBoolean {
		return "Boolean"
	}
	return "KeyValue"
}

// Attribute — `key`, `key="value"` или `key="true|false"`.
// Для AttrKeyValue заполнено Value, для AttrBoolean — Set.
type Attribute struct {
	Form     AttrForm
	Key      string
	Value    string
	Set      bool
	Position source.Span
}

// NewKeyValue создаёт атрибут вида key="value".
func NewKeyValue(key, value string, sp source.Span) *Attribute {
	return &Attribute{Form: AttrKeyValue, Key: key, Value: value, Position: sp}
}

// NewBoolean создаёт логический атрибут.
func NewBoolean(key string, set bool, sp source.Span) *Attribute {
	return &Attribute{Form: AttrBoolean, Key: key, Set: set, Position: sp}
}

func (*Attribute) Kind() Kind          { return KindAttribute }
func (n *Attribute) Span() source.Span { return n.Position }
func (*Attribute) node()               {}

func (n *Attribute) String() string {
	if n.Form == AttrBoolean {
		return fmt.Sprintf("Boolean{%s=%t}", n.Key, n.Set)
	}
	return fmt.Sprintf("KeyValue{%s=%q}", n.Key, n.Value)
}
