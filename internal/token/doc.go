// Package token defines the lexical token kinds of angle markup and the Token value.
// Invariants:
//   - Every kind is declared once, in the kinds table of kind.go; names, terminal
//     literals and the Token/Kind equality are derived from that table.
//   - Token.Text is the exact source slice; Value tokens keep their quotes.
//   - Token.Span matches Text exactly (Start..End).
//   - Whitespace never appears as a token; it is attached to the next token as
//     leading Trivia.
//   - Invalid and EOF are lexer markers and never reach a parser.Stream.
package token
