package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vmihailenco/msgpack/v5"

	"angle/internal/ast"
	"angle/internal/source"
)

// NodeOutput — сериализуемое представление узла.
type NodeOutput struct {
	Kind  string `json:"kind" msgpack:"kind"`
	Form  string `json:"form,omitempty" msgpack:"form,omitempty"`
	Key   string `json:"key,omitempty" msgpack:"key,omitempty"`
	Value string `json:"value,omitempty" msgpack:"value,omitempty"`
	Set   *bool  `json:"set,omitempty" msgpack:"set,omitempty"`
	Start uint32 `json:"start" msgpack:"start"`
	End   uint32 `json:"end" msgpack:"end"`
}

// FileNodes is the parse outcome of one file.
type FileNodes struct {
	Path  string       `json:"path" msgpack:"path"`
	OK    bool         `json:"ok" msgpack:"ok"`
	Error string       `json:"error,omitempty" msgpack:"error,omitempty"`
	Nodes []NodeOutput `json:"nodes" msgpack:"nodes"`
}

// NodeOutputs переводит узлы в сериализуемый вид.
func NodeOutputs(nodes []ast.Node) []NodeOutput {
	out := make([]NodeOutput, 0, len(nodes))
	for _, n := range nodes {
		o := NodeOutput{Kind: n.Kind().String(), Start: n.Span().Start, End: n.Span().End}
		switch n := n.(type) {
		case *ast.Identifier:
			o.Value = n.Value
		case *ast.Value:
			o.Value = n.Value
		case *ast.Attribute:
			o.Form = n.Form.String()
			o.Key = n.Key
			if n.Form == ast.AttrBoolean {
				set := n.Set
				o.Set = &set
			} else {
				o.Value = n.Value
			}
		}
		out = append(out, o)
	}
	return out
}

// FormatNodesPretty печатает узлы файла деревом; пустой header не выводится:
//
//	page.ang
//	├─ Identifier "foo" 1:2-1:5
//	└─ Value "yes" 1:11-1:16
func FormatNodesPretty(w io.Writer, header string, nodes []ast.Node, fs *source.FileSet, colored bool) error {
	st := newTreeStyles(colored)
	var sb strings.Builder
	if header != "" {
		sb.WriteString(st.header.Render(header))
		sb.WriteByte('\n')
	}
	for i, n := range nodes {
		branch := "├─ "
		if i == len(nodes)-1 {
			branch = "└─ "
		}
		sb.WriteString(st.branch.Render(branch))
		sb.WriteString(st.kind.Render(n.Kind().String()))
		sb.WriteByte(' ')
		sb.WriteString(nodeLabel(n))
		if fs != nil && int(n.Span().File) < fs.Len() {
			start, end := fs.Resolve(n.Span())
			sb.WriteString(st.span.Render(" " + source.FormatRange(start, end)))
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func nodeLabel(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Identifier:
		return fmt.Sprintf("%q", n.Value)
	case *ast.Value:
		return fmt.Sprintf("%q", n.Value)
	case *ast.Attribute:
		return n.String()
	}
	return ""
}

type treeStyles struct {
	header, branch, kind, span lipgloss.Style
}

func newTreeStyles(colored bool) treeStyles {
	if !colored {
		plain := lipgloss.NewStyle()
		return treeStyles{header: plain, branch: plain, kind: plain, span: plain}
	}
	return treeStyles{
		header: lipgloss.NewStyle().Bold(true),
		branch: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		kind:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		span:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// FormatNodesJSON выводит результаты разбора файлов в JSON.
func FormatNodesJSON(w io.Writer, files []FileNodes) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(files)
}

// FormatNodesMsgpack выводит результаты разбора файлов в msgpack.
func FormatNodesMsgpack(w io.Writer, files []FileNodes) error {
	return msgpack.NewEncoder(w).Encode(files)
}
