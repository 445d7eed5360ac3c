package token

import "angle/internal/source"

// TriviaKind classifies skipped input between tokens.
type TriviaKind uint8

const (
	// TriviaSpace is a run of horizontal whitespace.
	TriviaSpace TriviaKind = iota
	// TriviaNewline is a run of line breaks.
	TriviaNewline
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	default:
		return "Trivia(?)"
	}
}

// Trivia is whitespace the lexer skipped before a token.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
