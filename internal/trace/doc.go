// Package trace записывает события работы angle: границы команд, проходов
// (load, lex, parse) и отдельных файлов.
//
// Включается флагами CLI:
//
//	angle parse --trace=- --trace-level=detail page.ang
//
// Уровни: off, error, phase (driver + pass), detail (+ file), debug (всё).
//
// Tracer передаётся через context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "lex", parentID)
//	defer span.End("")
package trace
