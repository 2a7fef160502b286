package javadoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for signature extraction:
// - Single-line signatures stop at the closing paren
// - Multi-line parameter lists are joined and whitespace-normalized
// - Nested parens in default-value expressions do not terminate early
// - A ')' inside a comment or string literal does not close the list
// - A block comment spanning lines inside the list is projected away
// - A never-closing list returns the accumulated text within the line limit
// - Access qualifier derivation covers all four levels

func TestExtractSignature_SingleLine(t *testing.T) {
	t.Parallel()

	lines := []string{"    public User findById(Long id) {"}
	got := ExtractSignature(lines, 1)
	assert.Equal(t, "public User findById(Long id)", got)
}

func TestExtractSignature_MultiLine(t *testing.T) {
	t.Parallel()

	lines := strings.Split(`    public List<User> findAll(Map<String, Integer> filters,
                              boolean strict) {
        return null;
    }`, "\n")

	got := ExtractSignature(lines, 1)
	assert.Equal(t, "public List<User> findAll(Map<String, Integer> filters, boolean strict)", got)
}

func TestExtractSignature_NestedParens(t *testing.T) {
	t.Parallel()

	lines := []string{"void f(@Check(range(0, 10)) int x) {"}
	got := ExtractSignature(lines, 1)
	assert.Equal(t, "void f(@Check(range(0, 10)) int x)", got)
}

func TestExtractSignature_ParenInsideComment(t *testing.T) {
	t.Parallel()

	lines := []string{"public void f(int a /* ) */, int b) {"}
	got := ExtractSignature(lines, 1)
	assert.Equal(t, "public void f(int a , int b)", got)
}

func TestExtractSignature_ParenInsideStringLiteral(t *testing.T) {
	t.Parallel()

	lines := []string{`void g(@Tag(")") String s, int k) {`}
	got := ExtractSignature(lines, 1)
	assert.Equal(t, "void g(@Tag() String s, int k)", got)
}

func TestExtractSignature_BlockCommentAcrossLines(t *testing.T) {
	t.Parallel()

	lines := []string{
		"void h(int a, /* trailing",
		"   note ) */ int b) {",
	}
	got := ExtractSignature(lines, 1)
	assert.Equal(t, "void h(int a, int b)", got)
}

func TestExtractSignature_NeverCloses(t *testing.T) {
	t.Parallel()

	lines := []string{"public void broken(int a,", "int b"}
	got := ExtractSignature(lines, 1)
	assert.Equal(t, "public void broken(int a, int b", got)
}

func TestExtractSignature_OutOfRange(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", ExtractSignature([]string{"x"}, 5))
	assert.Equal(t, "", ExtractSignature([]string{"x"}, 0))
}

func TestAccessQualifier(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "public", AccessQualifier("public void run()"))
	assert.Equal(t, "protected", AccessQualifier("protected int x"))
	assert.Equal(t, "private", AccessQualifier("private static final int MAX = 3"))
	assert.Equal(t, "default", AccessQualifier("void packageLocal()"))
}
