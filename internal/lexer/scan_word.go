package lexer

import (
	"angle/internal/diag"
	"angle/internal/token"
)

// scanWord сканирует максимальную серию символов идентификатора.
// Number и Identifier перекрываются: побеждает самое длинное совпадение,
// при равной длине — более раннее объявление (Number). Поэтому серия — Number,
// только если она целиком подходит под [1-9][0-9]*.
func (lx *Lexer) scanWord() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		r, _ := lx.peekRune()
		if !isWordRune(r) {
			break
		}
		lx.bumpRune()
	}
	sp, text := lx.cursor.Take(start)

	kind := token.Identifier
	if isNumber(text) {
		kind = token.Number
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}

// scanValue сканирует "..." без escape-последовательностей; перевод строки внутри допустим.
func (lx *Lexer) scanValue() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Eat('"')
	for !lx.cursor.EOF() {
		if lx.cursor.Eat('"') {
			sp, text := lx.cursor.Take(start)
			return token.Token{Kind: token.Value, Span: sp, Text: text}
		}
		lx.cursor.Bump()
	}
	sp, text := lx.cursor.Take(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated value literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: text}
}

// scanUnknown съедает одну руну, с которой не начинается ни один токен.
func (lx *Lexer) scanUnknown() token.Token {
	start := lx.cursor.Mark()
	lx.bumpRune()
	sp, text := lx.cursor.Take(start)
	lx.errLex(diag.LexUnknownChar, sp, "unexpected character "+quoteRune(text))
	return token.Token{Kind: token.Invalid, Span: sp, Text: text}
}
