package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"angle/internal/source"
	"angle/internal/token"
)

// TokenOutput — сериализуемое представление токена.
type TokenOutput struct {
	Kind    string   `json:"kind" msgpack:"kind"`
	Text    string   `json:"text,omitempty" msgpack:"text,omitempty"`
	File    uint32   `json:"file" msgpack:"file"`
	Start   uint32   `json:"start" msgpack:"start"`
	End     uint32   `json:"end" msgpack:"end"`
	Leading []string `json:"leading,omitempty" msgpack:"leading,omitempty"`
}

// TokenOutputs переводит токены в сериализуемый вид.
func TokenOutputs(tokens []token.Token) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		var leading []string
		for _, trivia := range tok.Leading {
			leading = append(leading, trivia.Kind.String())
		}
		out = append(out, TokenOutput{
			Kind:    tok.Kind.String(),
			Text:    tok.Text,
			File:    uint32(tok.Span.File),
			Start:   tok.Span.Start,
			End:     tok.Span.End,
			Leading: leading,
		})
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		var sb strings.Builder
		fmt.Fprintf(&sb, "%3d: %-12s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(&sb, " %q", tok.Text)
		}
		fmt.Fprintf(&sb, " at %s", source.FormatRange(startPos, endPos))
		if len(tok.Leading) > 0 {
			kinds := make([]string, 0, len(tok.Leading))
			for _, trivia := range tok.Leading {
				kinds = append(kinds, trivia.Kind.String())
			}
			fmt.Fprintf(&sb, " (leading: %s)", strings.Join(kinds, ", "))
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(TokenOutputs(tokens))
}

// FormatTokensMsgpack пишет токены одним msgpack-массивом.
func FormatTokensMsgpack(w io.Writer, tokens []token.Token) error {
	return msgpack.NewEncoder(w).Encode(TokenOutputs(tokens))
}
