package parser

import (
	"errors"
	"fmt"

	"angle/internal/token"
)

// ErrEOF — токен был нужен, но поток исчерпан.
var ErrEOF = errors.New("unexpected end of input")

// MismatchError — токен есть, но другого вида. Токен при этом уже потреблён.
type MismatchError struct {
	Expected token.Kind
	Actual   token.Token
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("expected %s, found %s %q at %s", e.Expected, e.Actual.Kind, e.Actual.Text, e.Actual.Span)
}

// expect потребляет токен и проверяет его вид.
func expect(s *Stream, k token.Kind) (token.Token, error) {
	tok, ok := s.Consume()
	if !ok {
		return token.Token{}, ErrEOF
	}
	if !k.Matches(tok) {
		return tok, &MismatchError{Expected: k, Actual: tok}
	}
	return tok, nil
}
