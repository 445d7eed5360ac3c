package parser

import (
	"testing"

	"angle/internal/lexer"
	"angle/internal/source"
	"angle/internal/token"
)

// tok строит токен с позицией [start, start+len(text)).
func tok(k token.Kind, text string, start uint32) token.Token {
	return token.Token{
		Kind: k,
		Span: source.Span{File: 0, Start: start, End: start + uint32(len(text))},
		Text: text,
	}
}

func span(start, end uint32) source.Span {
	return source.Span{File: 0, Start: start, End: end}
}

// lexStream лексирует input и оборачивает результат в Stream.
func lexStream(t *testing.T, input string) *Stream {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.ang", []byte(input)))
	tokens, err := lexer.Lex(file, lexer.Options{})
	if err != nil {
		t.Fatalf("Lex(%q): %v", input, err)
	}
	return NewStream(tokens)
}
