// Package testkit holds invariant checks shared by tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"angle/internal/ast"
	"angle/internal/source"
	"angle/internal/token"
)

// CheckTokenInvariants runs a minimal set of span invariants on lexer output:
// 1) every token span is non-empty, points at sf and lies within its content
// 2) tokens are strictly ordered and do not overlap
// 3) token text equals the covered source bytes
func CheckTokenInvariants(tokens []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	var prevEnd uint32
	for i, tok := range tokens {
		sp := tok.Span
		if sp.End <= sp.Start {
			return fmt.Errorf("token %d (%s) has empty span %v", i, tok.Kind, sp)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("token %d span file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End > lenContent {
			return fmt.Errorf("token %d span end beyond content: %d > %d", i, sp.End, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d span %v overlaps previous end %d", i, sp, prevEnd)
		}
		if got := string(sf.Content[sp.Start:sp.End]); got != tok.Text {
			return fmt.Errorf("token %d text %q does not match source %q", i, tok.Text, got)
		}
		prevEnd = sp.End
	}
	return nil
}

// CheckNodeInvariants checks that every node span starts at a token start,
// ends at a token end, and that nodes do not overlap and appear in token order.
func CheckNodeInvariants(nodes []ast.Node, tokens []token.Token) error {
	starts := make(map[uint32]struct{}, len(tokens))
	ends := make(map[uint32]struct{}, len(tokens))
	for _, tok := range tokens {
		starts[tok.Span.Start] = struct{}{}
		ends[tok.Span.End] = struct{}{}
	}
	var prevEnd uint32
	for i, n := range nodes {
		if n == nil {
			return fmt.Errorf("node %d is nil", i)
		}
		sp := n.Span()
		if _, ok := starts[sp.Start]; !ok {
			return fmt.Errorf("node %d (%s) span %v does not start at a token", i, n.Kind(), sp)
		}
		if _, ok := ends[sp.End]; !ok {
			return fmt.Errorf("node %d (%s) span %v does not end at a token", i, n.Kind(), sp)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("node %d (%s) span %v overlaps previous end %d", i, n.Kind(), sp, prevEnd)
		}
		prevEnd = sp.End
	}
	return nil
}
