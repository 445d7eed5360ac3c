package lexer

import (
	"fmt"

	"angle/internal/diag"
	"angle/internal/source"
)

// Error is the first lexical failure of a file.
type Error struct {
	Code diag.Code
	Span source.Span
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Code.ID(), e.Span, e.Msg)
}
