package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"angle/internal/diag"
	"angle/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//	   |
//	 3 | <строка>
//	   |     ^~~~
//
// затем Notes в том же формате.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		writeHeader(w, p, fs, opts.PathMode, d.Primary, p.severity(d.Severity).Sprint(d.Severity.String())+" "+p.code.Sprint(d.Code.ID()), d.Message)
		writeSnippet(w, p, fs, d.Primary, p.severity(d.Severity))
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			writeHeader(w, p, fs, opts.PathMode, n.Span, p.note.Sprint("note"), n.Msg)
			if n.Span != d.Primary {
				writeSnippet(w, p, fs, n.Span, p.note)
			}
		}
	}
}

type palette struct {
	err, warn, info, note, code, gutter, path *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		note:   color.New(color.FgGreen),
		code:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		path:   color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.code, p.gutter, p.path} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

func hasFile(fs *source.FileSet, sp source.Span) bool {
	return fs != nil && int(sp.File) < fs.Len()
}

func writeHeader(w io.Writer, p palette, fs *source.FileSet, mode PathMode, sp source.Span, label, msg string) {
	if !hasFile(fs, sp) {
		fmt.Fprintf(w, "%s: %s\n", label, msg)
		return
	}
	f := fs.Get(sp.File)
	start, _ := fs.Resolve(sp)
	path := displayPath(fs, f, mode)
	fmt.Fprintf(w, "%s: %s: %s\n", p.path.Sprintf("%s:%s", path, start), label, msg)
}

func writeSnippet(w io.Writer, p palette, fs *source.FileSet, sp source.Span, mark *color.Color) {
	if !hasFile(fs, sp) {
		return
	}
	f := fs.Get(sp.File)
	start, end := fs.Resolve(sp)
	line := f.GetLine(start.Line)

	lineNo := fmt.Sprintf("%d", start.Line)
	pad := strings.Repeat(" ", len(lineNo))
	fmt.Fprintf(w, "%s %s\n", pad, p.gutter.Sprint("|"))
	fmt.Fprintf(w, "%s %s %s\n", p.gutter.Sprint(lineNo), p.gutter.Sprint("|"), line)
	fmt.Fprintf(w, "%s %s %s\n", pad, p.gutter.Sprint("|"), mark.Sprint(underline(line, start, end)))
}

// underline строит `   ^~~~` под фрагментом строки с учётом ширины символов.
// Многострочный span подчёркивается до конца первой строки.
func underline(line string, start, end source.LineCol) string {
	from := clampCol(line, start.Col)
	to := len(line)
	if end.Line == start.Line {
		to = clampCol(line, end.Col)
	}
	indent := runewidth.StringWidth(line[:from])
	width := 1
	if to > from {
		width = max(runewidth.StringWidth(line[from:to]), 1)
	}
	return strings.Repeat(" ", indent) + "^" + strings.Repeat("~", width-1)
}

func clampCol(line string, col uint32) int {
	off := int(col) - 1
	if off < 0 {
		return 0
	}
	return min(off, len(line))
}

func displayPath(fs *source.FileSet, f *source.File, mode PathMode) string {
	base := ""
	if mode == PathModeRelative {
		base = fs.BaseDir()
	}
	return f.FormatPath(mode.String(), base)
}
