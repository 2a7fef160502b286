package docindex

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsight/docsight/internal/javadoc"
)

// Test Plan for the cursor index:
// - Lines inside a span resolve to that span, including both boundaries
// - Lines in the gap between spans resolve to nothing
// - Lines before the first span and after the last span resolve to nothing
// - An empty index never matches
// - Randomized non-overlapping spans agree with a linear scan

func indexFromSpans(spans []Span) *CursorIndex {
	members := make([]javadoc.MemberDoc, 0, len(spans))
	for _, s := range spans {
		members = append(members, javadoc.MemberDoc{
			ID:        s.ID,
			StartLine: s.StartLine,
			EndLine:   s.EndLine,
		})
	}
	return NewCursorIndex(members)
}

func TestCursorIndex_Lookup(t *testing.T) {
	t.Parallel()

	idx := indexFromSpans([]Span{
		{StartLine: 10, EndLine: 20, ID: "alpha_10"},
		{StartLine: 25, EndLine: 25, ID: "beta_25"},
		{StartLine: 40, EndLine: 55, ID: "gamma_40"},
	})

	tests := []struct {
		name   string
		line   int
		wantID string
		wantOK bool
	}{
		{"before first span", 5, "", false},
		{"first line of span", 10, "alpha_10", true},
		{"interior line", 15, "alpha_10", true},
		{"last line of span", 20, "alpha_10", true},
		{"gap between spans", 22, "", false},
		{"single-line span", 25, "beta_25", true},
		{"gap before last span", 30, "", false},
		{"last span interior", 50, "gamma_40", true},
		{"past the last span", 60, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			span, ok := idx.Lookup(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, span.ID)
		})
	}
}

func TestCursorIndex_Empty(t *testing.T) {
	t.Parallel()

	idx := NewCursorIndex(nil)
	_, ok := idx.Lookup(1)
	assert.False(t, ok)
	assert.Equal(t, 0, idx.Len())
}

func TestCursorIndex_MatchesLinearScan(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))

	// Build sorted, non-overlapping spans with random gaps.
	var spans []Span
	line := 1
	for i := 0; i < 50; i++ {
		line += rng.Intn(5) // gap, possibly zero
		start := line
		end := start + rng.Intn(30)
		spans = append(spans, Span{
			StartLine: start,
			EndLine:   end,
			ID:        fmt.Sprintf("m%d_%d", i, start),
		})
		line = end + 1
	}

	idx := indexFromSpans(spans)
	require.Equal(t, len(spans), idx.Len())

	for q := 0; q <= line+10; q++ {
		wantID := ""
		wantOK := false
		for _, s := range spans {
			if s.StartLine <= q && q <= s.EndLine {
				wantID = s.ID
				wantOK = true
				break
			}
		}

		span, ok := idx.Lookup(q)
		require.Equal(t, wantOK, ok, "line %d", q)
		require.Equal(t, wantID, span.ID, "line %d", q)
	}
}
