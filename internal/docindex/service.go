package docindex

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/docsight/docsight/internal/javadoc"
	"github.com/docsight/docsight/internal/outline"
	"github.com/docsight/docsight/internal/store"
)

// Service answers documentation queries for arbitrary files on disk. It
// layers two caches under one parse entry point: the in-memory outline cache
// and the optional SQLite snapshot store, both keyed by the file's content
// version (its mtime). Cursor indexes are cached per file on the same
// version key, so repeated lookups cost one binary search, not a rebuild.
type Service struct {
	provider *outline.CachingProvider
	blame    AuthorshipFunc
	store    *store.Store

	mu      sync.Mutex
	indexes map[string]versionedIndex
}

// versionedIndex pairs a cursor index with the content version of the
// FileDoc it was built from.
type versionedIndex struct {
	version int64
	index   *CursorIndex
}

// NewService wires a service. blame and snapshots may be nil, disabling
// authorship and persistence respectively.
func NewService(provider *outline.CachingProvider, blame AuthorshipFunc, snapshots *store.Store) *Service {
	return &Service{
		provider: provider,
		blame:    blame,
		store:    snapshots,
		indexes:  make(map[string]versionedIndex),
	}
}

// FileDocs parses path (or serves it from a snapshot) and returns the
// complete documentation model.
func (s *Service) FileDocs(ctx context.Context, path string) (*javadoc.FileDoc, error) {
	doc, _, err := s.fileDocs(ctx, path)
	return doc, err
}

// fileDocs resolves the documentation model together with the content
// version it was built against.
func (s *Service) fileDocs(ctx context.Context, path string) (*javadoc.FileDoc, int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	version := info.ModTime().UnixNano()

	if s.store != nil {
		if doc, ok, err := s.store.Get(path, version); err != nil {
			log.Printf("Warning: snapshot lookup for %s failed: %v", path, err)
		} else if ok {
			return doc, version, nil
		}
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	o, err := s.provider.OutlineAt(ctx, path, version, source)
	if err != nil {
		return nil, 0, err
	}

	var auth *javadoc.Authorship
	if s.blame != nil {
		auth = s.blame(ctx, path)
	}

	passID := uuid.NewString()
	doc, diags := javadoc.Assemble(path, source, o, auth)
	for _, d := range diags {
		log.Printf("Warning: parse pass %s dropped member %q (line %d): %s", passID, d.MemberName, d.StartLine, d.Message)
	}

	if s.store != nil {
		if err := s.store.Put(doc, version, passID); err != nil {
			log.Printf("Warning: failed to persist snapshot for %s: %v", path, err)
		}
	}

	return doc, version, nil
}

// SymbolAt returns the callable enclosing line in path, ok=false when the
// line falls between declarations.
func (s *Service) SymbolAt(ctx context.Context, path string, line int) (javadoc.MemberDoc, bool, error) {
	doc, version, err := s.fileDocs(ctx, path)
	if err != nil {
		return javadoc.MemberDoc{}, false, err
	}

	span, ok := s.indexFor(path, version, doc).Lookup(line)
	if !ok {
		return javadoc.MemberDoc{}, false, nil
	}
	for _, m := range doc.Methods {
		if m.ID == span.ID {
			return m, true, nil
		}
	}
	return javadoc.MemberDoc{}, false, nil
}

// indexFor returns the cursor index for the document version, rebuilding it
// only when the version changed since the last build.
func (s *Service) indexFor(path string, version int64, doc *javadoc.FileDoc) *CursorIndex {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.indexes[path]; ok && entry.version == version {
		return entry.index
	}

	index := NewCursorIndex(doc.Methods)
	s.indexes[path] = versionedIndex{version: version, index: index}
	return index
}

// Purge drops cached state for a closed document.
func (s *Service) Purge(path string) {
	s.provider.Purge(path)

	s.mu.Lock()
	delete(s.indexes, path)
	s.mu.Unlock()
}
