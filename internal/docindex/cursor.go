// Package docindex maintains the searchable member index for a parsed file:
// a binary-searchable span index mapping cursor lines to enclosing
// callables, a change-coalescing debouncer with an identity guard, and the
// session that ties provider, assembler, and index together.
package docindex

import "github.com/docsight/docsight/internal/javadoc"

// Span is one callable's line extent with its member identity.
type Span struct {
	StartLine int
	EndLine   int
	ID        string
}

// CursorIndex answers "which callable encloses line q" in O(log n). It is
// built from the FileDoc's callable list, which the assembler guarantees is
// sorted ascending by start line; the index is immutable once built and
// replaced wholesale alongside its FileDoc.
type CursorIndex struct {
	spans []Span
}

// NewCursorIndex builds the index from a file's callable members.
func NewCursorIndex(methods []javadoc.MemberDoc) *CursorIndex {
	spans := make([]Span, 0, len(methods))
	for _, m := range methods {
		spans = append(spans, Span{StartLine: m.StartLine, EndLine: m.EndLine, ID: m.ID})
	}
	return &CursorIndex{spans: spans}
}

// Lookup returns the span containing line q, or ok=false when q falls in a
// gap between declarations. The search finds the rightmost span whose start
// is at or before q, then verifies containment, so gap lines are never
// attributed to the preceding declaration.
func (x *CursorIndex) Lookup(q int) (Span, bool) {
	lo, hi := 0, len(x.spans)-1
	found := -1

	for lo <= hi {
		mid := (lo + hi) / 2
		if x.spans[mid].StartLine <= q {
			found = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	if found < 0 || x.spans[found].EndLine < q {
		return Span{}, false
	}
	return x.spans[found], true
}

// Len reports the number of indexed spans.
func (x *CursorIndex) Len() int {
	return len(x.spans)
}
