package parser

import (
	"angle/internal/source"
	"angle/internal/token"
)

// Stream — неизменяемая последовательность токенов и изменяемый курсор.
// Курсор двигается только через Consume (и SetPosition снаружи).
// Stream не потокобезопасен: каждой горутине нужен свой (см. Fork).
type Stream struct {
	tokens []token.Token
	pos    int
	end    source.Span // позиция конца ввода, если токенов нет
}

func NewStream(tokens []token.Token) *Stream {
	return &Stream{tokens: tokens}
}

// Peek возвращает текущий токен, не двигая курсор.
func (s *Stream) Peek() (token.Token, bool) {
	if s.pos < 0 || s.pos >= len(s.tokens) {
		return token.Token{}, false
	}
	return s.tokens[s.pos], true
}

// Consume возвращает текущий токен и всегда сдвигает курсор на единицу,
// в том числе за конец последовательности.
func (s *Stream) Consume() (token.Token, bool) {
	tok, ok := s.Peek()
	s.pos++
	return tok, ok
}

func (s *Stream) Position() int { return s.pos }

// SetPosition перезаписывает курсор; слой комбинаторов его не вызывает.
func (s *Stream) SetPosition(n int) { s.pos = n }

func (s *Stream) Len() int { return len(s.tokens) }

func (s *Stream) Exhausted() bool { return s.pos >= len(s.tokens) }

// Fork создаёт независимый курсор в той же позиции над общим срезом токенов.
func (s *Stream) Fork() *Stream {
	return &Stream{tokens: s.tokens, pos: s.pos, end: s.end}
}

// WithEnd задаёт позицию конца ввода для диагностики пустого потока.
func (s *Stream) WithEnd(sp source.Span) *Stream {
	s.end = sp
	return s
}

// last возвращает последний потреблённый токен, если он есть.
func (s *Stream) last() (token.Token, bool) {
	i := min(s.pos, len(s.tokens)) - 1
	if i < 0 {
		return token.Token{}, false
	}
	return s.tokens[i], true
}
