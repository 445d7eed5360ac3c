package parser

import (
	"errors"
	"testing"

	"angle/internal/diag"
	"angle/internal/source"
	"angle/internal/token"
)

func TestReport_Mismatch(t *testing.T) {
	bag := diag.NewBag(10)
	s := NewStream([]token.Token{tok(token.Identifier, "foo", 0)})
	_, err := RAngle.TryParse(s)
	Report(diag.BagReporter{Bag: bag}, err, s)

	if bag.Len() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", bag.Len())
	}
	d := bag.Items()[0]
	if d.Code != diag.SynUnexpectedToken || d.Severity != diag.SevError {
		t.Errorf("diagnostic = %+v", d)
	}
	if d.Primary != span(0, 3) {
		t.Errorf("primary = %s", d.Primary)
	}
	if len(d.Notes) != 1 || d.Notes[0].Msg != "expected RAngle" {
		t.Errorf("notes = %+v", d.Notes)
	}
}

func TestReport_EOFPointsAfterLastToken(t *testing.T) {
	bag := diag.NewBag(10)
	s := lexStream(t, "<foo")
	_, err := Chain(LAngle, Ident, RAngle).TryParse(s)
	if !errors.Is(err, ErrEOF) {
		t.Fatalf("err = %v", err)
	}
	Report(diag.BagReporter{Bag: bag}, err, s)
	d := bag.Items()[0]
	if d.Code != diag.SynUnexpectedEOF {
		t.Errorf("code = %s", d.Code.ID())
	}
	if d.Primary != span(4, 4) {
		t.Errorf("primary = %s, want empty span at 4", d.Primary)
	}
}

func TestReport_EOFOnEmptyStreamUsesEnd(t *testing.T) {
	bag := diag.NewBag(10)
	end := source.Span{File: 3, Start: 7, End: 7}
	s := NewStream(nil).WithEnd(end)
	_, err := Ident.TryParse(s)
	Report(diag.BagReporter{Bag: bag}, err, s)
	if got := bag.Items()[0].Primary; got != end {
		t.Errorf("primary = %s, want %s", got, end)
	}
}

func TestReport_NilIsNoop(t *testing.T) {
	bag := diag.NewBag(10)
	Report(diag.BagReporter{Bag: bag}, nil, nil)
	Report(nil, ErrEOF, nil)
	if bag.Len() != 0 {
		t.Fatal("nothing must be reported")
	}
}
