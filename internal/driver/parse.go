package driver

import (
	"context"

	"angle/internal/ast"
	"angle/internal/diag"
	"angle/internal/observ"
	"angle/internal/parser"
	"angle/internal/source"
	"angle/internal/token"
	"angle/internal/trace"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Nodes   []ast.Node
	Err     error // lexer.Error, parser.ErrEOF или *parser.MismatchError
	Bag     *diag.Bag
	Timing  observ.Report
}

// OK сообщает, что chain отработал без ошибок.
func (r *ParseResult) OK() bool { return r != nil && r.Err == nil }

// Parse загружает файл, лексирует его и прогоняет chain.
// Go-ошибка возвращается только при сбое чтения файла.
func Parse(ctx context.Context, path string, chain parser.Combinator, opts Options) (*ParseResult, error) {
	tracer := trace.FromContext(ctx)
	root := trace.Begin(tracer, trace.ScopeDriver, "parse", trace.ParentSpan(ctx))
	defer root.End("")
	ctx = trace.WithSpan(ctx, root)

	timer := observ.NewTimer()
	fs := source.NewFileSet()
	file, err := loadFile(ctx, fs, path, timer)
	if err != nil {
		return nil, err
	}

	res := parseLoaded(ctx, fs, file, chain, opts, timer)
	if opts.Timings {
		appendTimingDiagnostic(res.Bag, "parse", path, res.Timing)
	}
	return res, nil
}

// parseLoaded: lex + parse уже загруженного файла.
func parseLoaded(ctx context.Context, fs *source.FileSet, file *source.File, chain parser.Combinator, opts Options, timer *observ.Timer) *ParseResult {
	bag := diag.NewBag(opts.MaxDiagnostics)
	res := &ParseResult{FileSet: fs, File: file, Bag: bag}

	emit(opts.Progress, Event{File: file.Path, Stage: StageLex, Status: StatusWorking})
	tokens, err := lexFile(ctx, file, bag, opts.Cache, timer)
	if err != nil {
		res.Err = err
		res.Timing = timer.Report()
		return res
	}
	res.Tokens = tokens

	emit(opts.Progress, Event{File: file.Path, Stage: StageParse, Status: StatusWorking})
	res.Nodes, res.Err = parseTokens(ctx, file, tokens, chain, bag, timer)
	res.Timing = timer.Report()
	return res
}
