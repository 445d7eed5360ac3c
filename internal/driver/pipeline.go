package driver

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"fortio.org/safecast"

	"angle/internal/ast"
	"angle/internal/diag"
	"angle/internal/lexer"
	"angle/internal/observ"
	"angle/internal/parser"
	"angle/internal/source"
	"angle/internal/token"
	"angle/internal/trace"
)

// lexFile лексирует файл, сначала заглядывая в кэш. Кэшируются только
// успешные результаты: ошибкам нужны диагностики.
func lexFile(ctx context.Context, file *source.File, bag *diag.Bag, cache *TokenCache, timer *observ.Timer) ([]token.Token, error) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopePass, "lex", trace.ParentSpan(ctx))
	idx := timer.Begin("lex")

	if tokens, ok := cache.Load(file); ok {
		span.WithExtra("tokens", strconv.Itoa(len(tokens))).End("cache hit")
		timer.End(idx, "cache hit")
		return tokens, nil
	}

	tokens, err := lexer.Lex(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	if err != nil {
		span.End(err.Error())
		timer.End(idx, "failed")
		return nil, err
	}
	if storeErr := cache.Store(file, tokens); storeErr != nil {
		trace.Point(tracer, trace.ScopePass, "cache", storeErr.Error(), span.ID())
	}
	span.WithExtra("tokens", strconv.Itoa(len(tokens))).End("")
	timer.End(idx, fmt.Sprintf("%d tokens", len(tokens)))
	return tokens, nil
}

// parseTokens прогоняет chain по токенам; ошибка разбора уходит в bag.
func parseTokens(ctx context.Context, file *source.File, tokens []token.Token, chain parser.Combinator, bag *diag.Bag, timer *observ.Timer) ([]ast.Node, error) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopePass, "parse", trace.ParentSpan(ctx))
	idx := timer.Begin("parse")

	stream := parser.NewStream(tokens).WithEnd(endOfFile(file))
	nodes, err := chain.TryParse(stream)
	span.WithExtra("consumed", strconv.Itoa(min(stream.Position(), stream.Len())))
	if err != nil {
		parser.Report(diag.BagReporter{Bag: bag}, err, stream)
		trace.Point(tracer, trace.ScopeNode, "parse error", err.Error(), span.ID())
		span.End(err.Error())
		timer.End(idx, "failed")
		return nil, err
	}
	if !stream.Exhausted() {
		// цепочка не обязана покрывать весь файл
		trace.Point(tracer, trace.ScopeNode, "trailing tokens", strconv.Itoa(stream.Len()-stream.Position()), span.ID())
	}
	span.WithExtra("nodes", strconv.Itoa(len(nodes))).End("")
	timer.End(idx, fmt.Sprintf("%d nodes", len(nodes)))
	return nodes, nil
}

func endOfFile(file *source.File) source.Span {
	sp := source.Span{File: file.ID}
	if n, ok := contentLen(file); ok {
		sp.Start, sp.End = n, n
	}
	return sp
}

// reportLoadError кладёт IO4001 для файла, который не удалось прочитать.
func reportLoadError(bag *diag.Bag, path string, err error) {
	diag.ReportError(diag.BagReporter{Bag: bag}, diag.IOLoadFileError, source.Span{},
		fmt.Sprintf("failed to load %s: %v", path, unwrapPathError(err))).Emit()
}

func unwrapPathError(err error) error {
	if inner := errors.Unwrap(err); inner != nil {
		return inner
	}
	return err
}

func contentLen(file *source.File) (uint32, bool) {
	n, err := safecast.Conv[uint32](len(file.Content))
	return n, err == nil
}
