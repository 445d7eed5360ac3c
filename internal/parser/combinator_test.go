package parser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"angle/internal/ast"
	"angle/internal/token"
)

func TestConsumer_MatchesOnlyItsKind(t *testing.T) {
	samples := []token.Token{
		tok(token.LAngle, "<", 0),
		tok(token.RAngle, ">", 0),
		tok(token.Equals, "=", 0),
		tok(token.Slash, "/", 0),
		tok(token.Number, "12", 0),
		tok(token.Identifier, "foo", 0),
		tok(token.Value, `"x"`, 0),
	}
	for _, k := range token.Kinds() {
		for _, sample := range samples {
			s := NewStream([]token.Token{sample})
			nodes, err := Consumer{Kind: k}.TryParse(s)
			if k == sample.Kind {
				if err != nil || nodes == nil || len(nodes) != 0 {
					t.Errorf("Consumer{%s} on %s: got %v, %v; want empty success", k, sample.Kind, nodes, err)
				}
			} else {
				var mm *MismatchError
				if !errors.As(err, &mm) {
					t.Fatalf("Consumer{%s} on %s: got %v, want mismatch", k, sample.Kind, err)
				}
				if mm.Expected != k || mm.Actual.Kind != sample.Kind {
					t.Errorf("mismatch = %+v", mm)
				}
				if nodes != nil {
					t.Errorf("nodes must be nil on failure")
				}
			}
			if s.Position() != 1 {
				t.Errorf("Consumer{%s} on %s: token must be consumed, pos = %d", k, sample.Kind, s.Position())
			}
		}
	}
}

func TestEOFTakesPrecedence(t *testing.T) {
	all := []Combinator{
		LAngle, RAngle, Equals, Slash, Number, Ident, Val, Attr,
		Chain(LAngle, Ident),
		Chain(Attr, RAngle),
	}
	for _, c := range all {
		s := NewStream([]token.Token{tok(token.Identifier, "x", 0)})
		s.Consume()
		if _, err := c.TryParse(s); !errors.Is(err, ErrEOF) {
			t.Errorf("%v on exhausted stream: got %v, want ErrEOF", c, err)
		}
		if _, err := c.TryParse(NewStream(nil)); !errors.Is(err, ErrEOF) {
			t.Errorf("%v on empty stream: got %v, want ErrEOF", c, err)
		}
	}
}

func TestSequence_StopsAtFirstFailure(t *testing.T) {
	s := NewStream([]token.Token{
		tok(token.Identifier, "a", 0),
		tok(token.Identifier, "b", 2),
		tok(token.Identifier, "c", 4),
	})
	nodes, err := Chain(Ident, LAngle, Ident).TryParse(s)
	if nodes != nil {
		t.Fatalf("no partial nodes expected, got %v", nodes)
	}
	var mm *MismatchError
	if !errors.As(err, &mm) || mm.Expected != token.LAngle || mm.Actual.Text != "b" {
		t.Fatalf("err = %v", err)
	}
	// "a" и "b" потреблены, "c" нет
	if s.Position() != 2 {
		t.Fatalf("Position() = %d, want 2", s.Position())
	}
}

func TestSequence_Associativity(t *testing.T) {
	input := `<foo test="yes" >`
	combos := []Combinator{LAngle, Ident, Attr, RAngle}
	for i := range combos {
		for j := range combos {
			for k := range combos {
				a, b, c := combos[i], combos[j], combos[k]

				left := lexStream(t, input)
				right := lexStream(t, input)
				ln, lerr := Then(Then(a, b), c).TryParse(left)
				rn, rerr := Then(a, Then(b, c)).TryParse(right)

				if (lerr == nil) != (rerr == nil) {
					t.Fatalf("(%v>>%v)>>%v: errors differ: %v vs %v", a, b, c, lerr, rerr)
				}
				if lerr != nil {
					continue
				}
				if diff := cmp.Diff(ln, rn); diff != "" {
					t.Errorf("(%v>>%v)>>%v: nodes differ (-left +right):\n%s", a, b, c, diff)
				}
				if left.Position() != right.Position() {
					t.Errorf("positions differ: %d vs %d", left.Position(), right.Position())
				}
			}
		}
	}
}

func TestChain_IsLeftAssociative(t *testing.T) {
	got := Chain(LAngle, Ident, RAngle)
	want := Then(Then(LAngle, Ident), RAngle)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Chain shape (-want +got):\n%s", diff)
	}
	if Chain(Ident) != Ident {
		t.Fatal("Chain of one combinator must be the combinator itself")
	}
}

func TestChain_PanicsOnMisuse(t *testing.T) {
	for name, args := range map[string][]Combinator{
		"empty": nil,
		"nil":   {LAngle, nil},
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
			}()
			Chain(args...)
		})
	}
}

func TestCombinators_AreReusable(t *testing.T) {
	chain := Chain(LAngle, Ident, RAngle)
	for range 3 {
		nodes, err := chain.TryParse(lexStream(t, "<a>"))
		if err != nil {
			t.Fatal(err)
		}
		want := []ast.Node{&ast.Identifier{Position: span(1, 2), Value: "a"}}
		if diff := cmp.Diff(want, nodes); diff != "" {
			t.Fatalf("(-want +got):\n%s", diff)
		}
	}
}

func TestEndToEnd_Success(t *testing.T) {
	chain := Chain(LAngle, Ident, Ident, Equals, Val, RAngle)
	s := lexStream(t, `<foo test="yes">`)
	nodes, err := chain.TryParse(s)
	if err != nil {
		t.Fatalf("TryParse: %v", err)
	}
	want := []ast.Node{
		&ast.Identifier{Position: span(1, 4), Value: "foo"},
		&ast.Identifier{Position: span(5, 9), Value: "test"},
		&ast.Value{Position: span(10, 15), Value: "yes"},
	}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Fatalf("nodes (-want +got):\n%s", diff)
	}
	if !s.Exhausted() {
		t.Fatal("stream must be exhausted")
	}
}

func TestEndToEnd_Failure(t *testing.T) {
	chain := Chain(LAngle, Ident, RAngle)
	nodes, err := chain.TryParse(lexStream(t, "<foo"))
	if !errors.Is(err, ErrEOF) {
		t.Fatalf("err = %v, want ErrEOF", err)
	}
	if nodes != nil {
		t.Fatalf("nodes = %v, want nil", nodes)
	}
}
