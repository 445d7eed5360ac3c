package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"angle/internal/diag"
	"angle/internal/observ"
	"angle/internal/parser"
	"angle/internal/source"
	"angle/internal/trace"
)

// SourceExt — расширение файлов, которые собираются из каталогов.
const SourceExt = ".ang"

// FileResult pairs an input path with its ParseResult.
type FileResult struct {
	Path string
	*ParseResult
}

// ExpandPaths раскрывает каталоги в отсортированные списки *.ang файлов.
// Обычные файлы остаются как есть и в исходном порядке.
func ExpandPaths(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			out = append(out, p)
			continue
		}
		files, err := listSourceFiles(p)
		if err != nil {
			return nil, err
		}
		out = append(out, files...)
	}
	return out, nil
}

func listSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ParseFiles разбирает файлы параллельно одним и тем же chain.
// Файлы загружаются последовательно в общий FileSet, затем каждый файл
// получает собственный Stream в своей горутине. Результаты идут в порядке paths.
// Файл, который не удалось прочитать, получает IO4001 в своём Bag.
func ParseFiles(ctx context.Context, paths []string, chain parser.Combinator, opts Options) (*source.FileSet, []FileResult, error) {
	tracer := trace.FromContext(ctx)
	root := trace.Begin(tracer, trace.ScopeDriver, "parse-files", trace.ParentSpan(ctx))
	defer root.End("")
	ctx = trace.WithSpan(ctx, root)

	fileSet := source.NewFileSet()
	results := make([]FileResult, len(paths))
	files := make([]*source.File, len(paths))

	loadTimer := observ.NewTimer()
	for i, path := range paths {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
		file, err := loadFile(ctx, fileSet, path, loadTimer)
		if err != nil {
			bag := diag.NewBag(opts.MaxDiagnostics)
			reportLoadError(bag, path, err)
			results[i] = FileResult{Path: path, ParseResult: &ParseResult{FileSet: fileSet, Err: err, Bag: bag}}
			emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: err})
			continue
		}
		files[i] = file
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(paths))))

	for i, path := range paths {
		if files[i] == nil {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			started := time.Now()
			fileSpan := trace.Begin(tracer, trace.ScopeFile, "file:"+path, root.ID())
			fctx := trace.WithSpan(gctx, fileSpan)

			res := parseLoaded(fctx, fileSet, files[i], chain, opts, observ.NewTimer())
			if opts.Timings {
				appendTimingDiagnostic(res.Bag, "file", path, res.Timing)
			}
			results[i] = FileResult{Path: path, ParseResult: res}

			status := StatusDone
			if res.Err != nil {
				status = StatusError
			}
			fileSpan.End(string(status))
			emit(opts.Progress, Event{File: path, Stage: StageParse, Status: status, Err: res.Err, Elapsed: time.Since(started)})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
