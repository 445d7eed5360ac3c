package token

import (
	"angle/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// Is reports whether the token has kind k, ignoring its payload.
// t.Is(k) == k.Matches(t) for every t and k.
func (t Token) Is(k Kind) bool {
	return k.Matches(t)
}

// IsTerminal reports whether the token is one of the single-character kinds.
func (t Token) IsTerminal() bool {
	_, ok := t.Kind.Terminal()
	return ok
}

// IsLiteral reports whether the token carries a Number or Value payload.
func (t Token) IsLiteral() bool {
	return t.Kind == Number || t.Kind == Value
}
