package lexer

import (
	"angle/internal/source"
	"angle/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // 1 элементный буфер для токена
	hold   []token.Trivia // накопленные leading trivia
	first  *Error         // первая лексическая ошибка
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Lex materializes every token of file. The EOF marker is not included.
// Lexing continues past errors so the reporter sees all of them; the returned
// error is the first one.
func Lex(file *source.File, opts Options) ([]token.Token, error) {
	lx := New(file, opts)
	var tokens []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		tokens = append(tokens, tok)
	}
	if lx.first != nil {
		return nil, lx.first
	}
	return tokens, nil
}

// Next возвращает следующий значимый токен с уже собранным Leading.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	// Leading из hold не приклеиваем к EOF
	if lx.cursor.EOF() {
		lx.hold = nil
		return token.Token{
			Kind: token.EOF,
			Span: lx.EmptySpan(),
		}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	if k, ok := token.LookupTerminal(ch); ok {
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		sp, text := lx.cursor.Take(start)
		tok = token.Token{Kind: k, Span: sp, Text: text}
	} else {
		switch {
		case ch == '"':
			tok = lx.scanValue()
		case ch == '\'':
			tok = lx.scanUnknown()
		default:
			tok = lx.scanWord()
		}
	}

	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	if lx.look != nil {
		return *lx.look
	}
	t := lx.Next()
	lx.look = &t
	return t
}

// EmptySpan is a zero-length span at the current offset.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
