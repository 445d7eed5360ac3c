package lexer

import (
	"angle/internal/token"
)

// collectLeadingTrivia собирает подряд идущие пробельные символы перед значимым токеном.
// - '\n' и '\r' коалесцируются в один TriviaNewline
// - любые другие пробельные руны (Unicode White_Space) — в один TriviaSpace
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		r, _ := lx.peekRune()

		var kind token.TriviaKind
		switch {
		case isNewlineRune(r):
			kind = token.TriviaNewline
			for !lx.cursor.EOF() {
				if r2, _ := lx.peekRune(); !isNewlineRune(r2) {
					break
				}
				lx.bumpRune()
			}
		case isSpaceRune(r):
			kind = token.TriviaSpace
			for !lx.cursor.EOF() {
				if r2, _ := lx.peekRune(); !isSpaceRune(r2) || isNewlineRune(r2) {
					break
				}
				lx.bumpRune()
			}
		default:
			// нет больше trivia
			return
		}

		sp, text := lx.cursor.Take(start)
		lx.hold = append(lx.hold, token.Trivia{Kind: kind, Span: sp, Text: text})
	}
}
