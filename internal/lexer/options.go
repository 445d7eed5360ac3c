package lexer

import (
	"angle/internal/diag"
	"angle/internal/source"
)

type Options struct {
	Reporter diag.Reporter // nil: ошибки только возвращаются из Lex
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.first == nil {
		lx.first = &Error{Code: code, Span: sp, Msg: msg}
	}
	if lx.opts.Reporter != nil {
		diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
	}
}
