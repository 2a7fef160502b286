package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsight/docsight/internal/javadoc"
)

// Test Plan for the snapshot store:
// - Put then Get round-trips a FileDoc, including tags and authorship
// - Get with a different content version is a miss
// - Get for an unknown path is a miss
// - Put replaces the previous snapshot for the same file
// - Delete removes the snapshot and cascades to members

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "docs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleDoc() *javadoc.FileDoc {
	return &javadoc.FileDoc{
		FilePath:     "src/Widget.java",
		ClassName:    "Widget",
		ClassComment: "A widget.",
		PackageName:  "com.example",
		Methods: []javadoc.MemberDoc{
			{
				ID:          "run_10",
				Name:        "run",
				Signature:   "public void run(int count)",
				StartLine:   10,
				EndLine:     14,
				HasComment:  true,
				Description: "Runs the widget.",
				Tags: javadoc.TagTable{
					Params: []javadoc.ParamTag{{Name: "count", Type: "int", Description: "how many times"}},
					Throws: []javadoc.ThrowsTag{{Type: "IllegalStateException", Description: "when stopped"}},
					Since:  "1.2",
				},
				QualifyingPath: "Widget",
				Access:         "public",
			},
		},
		Fields: []javadoc.MemberDoc{
			{
				ID:             "size_5",
				Name:           "size",
				Signature:      "private int size",
				StartLine:      5,
				HasComment:     false,
				QualifyingPath: "Widget",
				Access:         "private",
			},
		},
		EnumConstants: []javadoc.MemberDoc{},
		Authorship: &javadoc.Authorship{
			Author:         "ana",
			LastModifier:   "ben",
			LastModifyDate: "2026-08-01",
		},
	}
}

func TestStore_PutGetRoundTrip(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	doc := sampleDoc()
	require.NoError(t, s.Put(doc, 42, "pass-1"))

	got, ok, err := s.Get(doc.FilePath, 42)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, doc.ClassName, got.ClassName)
	assert.Equal(t, doc.ClassComment, got.ClassComment)
	assert.Equal(t, doc.PackageName, got.PackageName)
	require.NotNil(t, got.Authorship)
	assert.Equal(t, *doc.Authorship, *got.Authorship)

	require.Len(t, got.Methods, 1)
	assert.Equal(t, doc.Methods[0], got.Methods[0])

	require.Len(t, got.Fields, 1)
	assert.Equal(t, doc.Fields[0], got.Fields[0])
	assert.Zero(t, got.Fields[0].EndLine, "field end line stays unset")

	assert.Empty(t, got.EnumConstants)
}

func TestStore_VersionMismatchIsMiss(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	require.NoError(t, s.Put(sampleDoc(), 42, "pass-1"))

	_, ok, err := s.Get("src/Widget.java", 43)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_UnknownPathIsMiss(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	_, ok, err := s.Get("src/Nothing.java", 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_PutReplacesSnapshot(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	require.NoError(t, s.Put(sampleDoc(), 1, "pass-1"))

	updated := sampleDoc()
	updated.ClassComment = "An updated widget."
	updated.Methods = nil
	require.NoError(t, s.Put(updated, 2, "pass-2"))

	// The old version is gone.
	_, ok, err := s.Get(updated.FilePath, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	got, ok, err := s.Get(updated.FilePath, 2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "An updated widget.", got.ClassComment)
	assert.Empty(t, got.Methods, "members from the replaced snapshot must not survive")
	assert.Len(t, got.Fields, 1)
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	doc := sampleDoc()
	require.NoError(t, s.Put(doc, 1, "pass-1"))
	require.NoError(t, s.Delete(doc.FilePath))

	_, ok, err := s.Get(doc.FilePath, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting again is harmless.
	require.NoError(t, s.Delete(doc.FilePath))
}
