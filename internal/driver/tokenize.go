package driver

import (
	"context"

	"angle/internal/diag"
	"angle/internal/observ"
	"angle/internal/source"
	"angle/internal/token"
	"angle/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Err     error // первая лексическая ошибка, подробности в Bag
	Bag     *diag.Bag
	Timing  observ.Report
}

// Tokenize загружает файл и лексирует его. Ошибка возвращается только для
// проблем чтения; лексические ошибки попадают в Bag.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	tracer := trace.FromContext(ctx)
	root := trace.Begin(tracer, trace.ScopeDriver, "tokenize", trace.ParentSpan(ctx))
	defer root.End("")
	ctx = trace.WithSpan(ctx, root)

	timer := observ.NewTimer()
	fs := source.NewFileSet()
	bag := diag.NewBag(opts.MaxDiagnostics)

	file, err := loadFile(ctx, fs, path, timer)
	if err != nil {
		return nil, err
	}

	tokens, lexErr := lexFile(ctx, file, bag, opts.Cache, timer)
	res := &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Err:     lexErr,
		Bag:     bag,
		Timing:  timer.Report(),
	}
	if opts.Timings {
		appendTimingDiagnostic(bag, "tokenize", path, res.Timing)
	}
	return res, nil
}

func loadFile(ctx context.Context, fs *source.FileSet, path string, timer *observ.Timer) (*source.File, error) {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "load", trace.ParentSpan(ctx))
	idx := timer.Begin("load")
	id, err := fs.Load(path)
	if err != nil {
		span.End(err.Error())
		timer.End(idx, "failed")
		return nil, err
	}
	file := fs.Get(id)
	span.WithExtra("path", path).End("")
	timer.End(idx, "")
	return file, nil
}
