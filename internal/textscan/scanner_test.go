package textscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for ScanLine:
// - Plain code passes through with brace counting
// - Line comments truncate the remainder
// - Block comments open and close within a line
// - Block comment state carries across lines
// - String and char literal contents are removed, including braces
// - Escape sequences suppress the following character
// - Unterminated literals do not leak state into the next line

func TestScanLine_PlainCode(t *testing.T) {
	t.Parallel()

	r := ScanLine("public void run() {", State{})
	assert.Equal(t, "public void run() {", r.Code)
	assert.Equal(t, 1, r.BraceDelta)
	assert.Equal(t, State{}, r.State)
}

func TestScanLine_LineComment(t *testing.T) {
	t.Parallel()

	r := ScanLine("int x = 1; // trailing {{{", State{})
	assert.Equal(t, "int x = 1; ", r.Code)
	assert.Equal(t, 0, r.BraceDelta)
}

func TestScanLine_BlockCommentWithinLine(t *testing.T) {
	t.Parallel()

	r := ScanLine("a /* { ignored } */ b {", State{})
	assert.Equal(t, "a  b {", r.Code)
	assert.Equal(t, 1, r.BraceDelta)
	assert.False(t, r.State.InBlockComment)
}

func TestScanLine_BlockCommentCarryOver(t *testing.T) {
	t.Parallel()

	r := ScanLine("foo(); /* begins here", State{})
	assert.Equal(t, "foo(); ", r.Code)
	assert.True(t, r.State.InBlockComment)

	r = ScanLine("still inside } {", r.State)
	assert.Equal(t, "", r.Code)
	assert.Equal(t, 0, r.BraceDelta)
	assert.True(t, r.State.InBlockComment)

	r = ScanLine("done */ bar();", r.State)
	assert.Equal(t, " bar();", r.Code)
	assert.False(t, r.State.InBlockComment)
}

func TestScanLine_StringLiteralBraces(t *testing.T) {
	t.Parallel()

	r := ScanLine(`call("{\"nested\"}") + '}';`, State{})
	assert.Equal(t, "call() + ;", r.Code)
	assert.Equal(t, 0, r.BraceDelta)
}

func TestScanLine_EscapedQuoteStaysInString(t *testing.T) {
	t.Parallel()

	r := ScanLine(`s = "a\"b{"; t = 1;`, State{})
	assert.Equal(t, "s = ; t = 1;", r.Code)
	assert.Equal(t, 0, r.BraceDelta)
}

func TestScanLine_UnterminatedStringResets(t *testing.T) {
	t.Parallel()

	r := ScanLine(`s = "never closed`, State{})
	assert.False(t, r.State.InString)
	assert.False(t, r.State.InChar)
}
