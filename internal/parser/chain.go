package parser

import (
	"fmt"
	"strings"
)

// DefaultChain — `< name attr = "value" >`.
const DefaultChain = "langle ident ident equals value rangle"

var primitives = map[string]Combinator{
	"langle": LAngle,
	"rangle": RAngle,
	"equals": Equals,
	"slash":  Slash,
	"number": Number,
	"ident":  Ident,
	"value":  Val,
	"attr":   Attr,
}

// ParseChain строит Chain из имён примитивов, разделённых пробелами или запятыми.
func ParseChain(spec string) (Combinator, error) {
	names := strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(names) == 0 {
		return nil, fmt.Errorf("empty combinator chain")
	}
	cs := make([]Combinator, 0, len(names))
	for _, name := range names {
		c, ok := primitives[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown combinator %q (known: %s)", name, strings.Join(PrimitiveNames(), ", "))
		}
		cs = append(cs, c)
	}
	return Chain(cs...), nil
}

// PrimitiveNames возвращает имена в порядке объявления видов токенов.
func PrimitiveNames() []string {
	return []string{"langle", "rangle", "equals", "slash", "number", "ident", "value", "attr"}
}
