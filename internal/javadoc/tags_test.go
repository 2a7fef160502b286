package javadoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for tag parsing:
// - Comment cleaning strips delimiters and leading asterisks
// - Description is everything before the first tag marker
// - Param tags resolve types from the signature; unmatched names get "unknown"
// - Return tags carry the recovered type and are suppressed for void
// - throws and exception feed the same list; dotted types are kept whole
// - Scalar tags keep the last occurrence; see accumulates
// - Parameter/return type recovery handles generics, annotations, and
//   method-level type parameters

func TestCleanComment(t *testing.T) {
	t.Parallel()

	raw := "/**\n * Finds users.\n *\n * @param id the id\n */"
	want := "Finds users.\n\n@param id the id"
	assert.Equal(t, want, CleanComment(raw))
}

func TestParseTags_EndToEnd(t *testing.T) {
	t.Parallel()

	signature := "public List<User> findAll(Map<String,Integer> filters, boolean strict)"
	body := CleanComment("/** Finds users.\n * @param filters criteria\n * @param strict exact match\n * @return matches\n */")

	desc, table := ParseTags(body, signature)

	assert.Equal(t, "Finds users.", desc)

	require.Len(t, table.Params, 2)
	assert.Equal(t, ParamTag{Name: "filters", Type: "Map<String,Integer>", Description: "criteria"}, table.Params[0])
	assert.Equal(t, ParamTag{Name: "strict", Type: "boolean", Description: "exact match"}, table.Params[1])

	require.NotNil(t, table.Returns)
	assert.Equal(t, ReturnTag{Type: "List<User>", Description: "matches"}, *table.Returns)
}

func TestParseTags_NoTagRegion(t *testing.T) {
	t.Parallel()

	desc, table := ParseTags("Just a description.", "public void run()")
	assert.Equal(t, "Just a description.", desc)
	assert.True(t, table.IsEmpty())
}

func TestParseTags_UnknownParamSentinel(t *testing.T) {
	t.Parallel()

	_, table := ParseTags("@param ghost not in the signature", "public void run(int real)")
	require.Len(t, table.Params, 1)
	assert.Equal(t, TypeUnknown, table.Params[0].Type)
	assert.Equal(t, "ghost", table.Params[0].Name)
}

func TestParseTags_ReturnSuppressedForVoid(t *testing.T) {
	t.Parallel()

	_, table := ParseTags("@return nothing really", "public void deleteById(Long id)")
	assert.Nil(t, table.Returns)
}

func TestParseTags_ThrowsAndException(t *testing.T) {
	t.Parallel()

	body := "@throws IllegalArgumentException when id is null\n@exception com.example.DuplicateUserException when it already exists"
	_, table := ParseTags(body, "public User save(User user)")

	require.Len(t, table.Throws, 2)
	assert.Equal(t, ThrowsTag{Type: "IllegalArgumentException", Description: "when id is null"}, table.Throws[0])
	assert.Equal(t, ThrowsTag{Type: "com.example.DuplicateUserException", Description: "when it already exists"}, table.Throws[1])
}

func TestParseTags_ScalarsKeepLastSeeAccumulates(t *testing.T) {
	t.Parallel()

	body := "@since 1.0\n@since 1.1\n@author alice\n@see User\n@see UserDTO"
	_, table := ParseTags(body, "public User save(User user)")

	assert.Equal(t, "1.1", table.Since)
	assert.Equal(t, "alice", table.Author)
	assert.Equal(t, []string{"User", "UserDTO"}, table.See)
}

func TestParamTypes(t *testing.T) {
	t.Parallel()

	types := ParamTypes("void f(@NotNull final Map<String, List<User>> data, int count, String... names)")
	assert.Equal(t, "Map<String, List<User>>", types["data"])
	assert.Equal(t, "int", types["count"])
	assert.Equal(t, "String...", types["names"])
}

func TestParamTypes_AnnotationArgumentsSkipped(t *testing.T) {
	t.Parallel()

	types := ParamTypes(`@Deprecated(since="1") public int f(long id, String name)`)
	assert.Equal(t, "long", types["id"])
	assert.Equal(t, "String", types["name"])
	assert.NotContains(t, types, "since=\"1\"")
}

func TestParamTypes_CommentProjectedSignature(t *testing.T) {
	t.Parallel()

	// A reconstructed signature whose parameter list held an inline comment.
	lines := []string{"public void f(int a /* ) */, int b) {"}
	types := ParamTypes(ExtractSignature(lines, 1))
	assert.Equal(t, "int", types["a"])
	assert.Equal(t, "int", types["b"])
}

func TestParamTypes_EmptyList(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ParamTypes("void f()"))
	assert.Empty(t, ParamTypes("not a signature"))
}

func TestReturnType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		signature string
		want      string
	}{
		{"simple", "public User findById(Long id)", "User"},
		{"generic", "public List<User> findAll()", "List<User>"},
		{"void", "public void deleteById(Long id)", TypeVoid},
		{"constructor", "public UserService(String name)", TypeVoid},
		{"method type params", "public <T extends Comparable<T>> T max(List<T> items)", "T"},
		{"array", "static int[] counts()", "int[]"},
		{"annotation with arguments", `@Deprecated(since="1") public int f()`, "int"},
		{"annotation without arguments", "@Override public String toString()", "String"},
		{"no parens", "gibberish", TypeVoid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReturnType(tt.signature))
		})
	}
}
