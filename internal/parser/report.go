package parser

import (
	"errors"
	"fmt"

	"angle/internal/diag"
	"angle/internal/source"
)

// Report переводит ошибку разбора в диагностику.
// Для ErrEOF позиция — конец последнего потреблённого токена.
func Report(r diag.Reporter, err error, s *Stream) {
	if r == nil || err == nil {
		return
	}
	var mm *MismatchError
	switch {
	case errors.As(err, &mm):
		diag.ReportError(r, diag.SynUnexpectedToken, mm.Actual.Span,
			fmt.Sprintf("unexpected %s %q", mm.Actual.Kind, mm.Actual.Text)).
			WithNote(mm.Actual.Span, fmt.Sprintf("expected %s", mm.Expected)).
			Emit()
	case errors.Is(err, ErrEOF):
		var sp source.Span
		if s != nil {
			sp = s.end
			if last, ok := s.last(); ok {
				sp = last.Span.ZeroideToEnd()
			}
		}
		diag.ReportError(r, diag.SynUnexpectedEOF, sp, "unexpected end of input").Emit()
	default:
		diag.ReportError(r, diag.UnknownCode, source.Span{}, err.Error()).Emit()
	}
}
