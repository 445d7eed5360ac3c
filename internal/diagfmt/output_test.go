package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vmihailenco/msgpack/v5"

	"angle/internal/ast"
	"angle/internal/lexer"
	"angle/internal/source"
)

func sampleNodes() []ast.Node {
	return []ast.Node{
		&ast.Identifier{Position: source.Span{Start: 1, End: 4}, Value: "foo"},
		ast.NewKeyValue("test", "yes", source.Span{Start: 5, End: 15}),
		ast.NewBoolean("hidden", true, source.Span{Start: 16, End: 22}),
	}
}

func TestNodeOutputs(t *testing.T) {
	yes := true
	want := []NodeOutput{
		{Kind: "Identifier", Value: "foo", Start: 1, End: 4},
		{Kind: "Attribute", Form: "KeyValue", Key: "test", Value: "yes", Start: 5, End: 15},
		{Kind: "Attribute", Form: "Boolean", Key: "hidden", Set: &yes, Start: 16, End: 22},
	}
	if diff := cmp.Diff(want, NodeOutputs(sampleNodes())); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestFormatNodes(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("page.ang", []byte(`<foo test="yes" hidden>`))

	var buf bytes.Buffer
	if err := FormatNodesPretty(&buf, "page.ang", sampleNodes(), fs, false); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"page.ang",
		`├─ Identifier "foo" 1:2-1:5`,
		`├─ Attribute KeyValue{test="yes"} 1:6-1:16`,
		`└─ Attribute Boolean{hidden=true} 1:17-1:23`,
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	files := []FileNodes{{Path: "page.ang", OK: true, Nodes: NodeOutputs(sampleNodes())}}
	buf.Reset()
	if err := FormatNodesJSON(&buf, files); err != nil {
		t.Fatal(err)
	}
	var fromJSON []FileNodes
	if err := json.Unmarshal(buf.Bytes(), &fromJSON); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(files, fromJSON); diff != "" {
		t.Fatalf("json (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := FormatNodesMsgpack(&buf, files); err != nil {
		t.Fatal(err)
	}
	var fromMsgpack []FileNodes
	if err := msgpack.Unmarshal(buf.Bytes(), &fromMsgpack); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(files, fromMsgpack); diff != "" {
		t.Fatalf("msgpack (-want +got):\n%s", diff)
	}
}

func TestFormatTokens(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t.ang", []byte("<a b=\"1\">")))
	tokens, err := lexer.Lex(file, lexer.Options{})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, tokens, fs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got:\n%s", buf.String())
	}
	if lines[2] != `  3: Identifier   "b" at 1:4-1:5 (leading: Space)` {
		t.Errorf("line 3 = %q", lines[2])
	}

	buf.Reset()
	if err := FormatTokensMsgpack(&buf, tokens); err != nil {
		t.Fatal(err)
	}
	var decoded []TokenOutput
	if err := msgpack.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(TokenOutputs(tokens), decoded); diff != "" {
		t.Fatalf("msgpack (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := FormatTokensJSON(&buf, tokens); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"kind": "Value"`) || !strings.Contains(buf.String(), `"text": "\"1\""`) {
		t.Errorf("json output:\n%s", buf.String())
	}
}
