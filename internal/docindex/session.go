package docindex

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/docsight/docsight/internal/javadoc"
	"github.com/docsight/docsight/internal/outline"
)

// AuthorshipFunc resolves the optional authorship summary for a file. A nil
// return means the feature is unavailable; implementations must not error.
type AuthorshipFunc func(ctx context.Context, path string) *javadoc.Authorship

// SymbolHit is delivered to the cursor subscriber when the enclosing
// declaration changes. ID is empty when the cursor is between declarations.
type SymbolHit struct {
	ID   string
	Line int
}

// Session owns the documentation state for one open document: the current
// FileDoc, its cursor index, and the debounced cursor-change pipeline.
// Refresh replaces the document wholesale; a completed pass whose version
// has been superseded is discarded rather than overwriting newer state.
type Session struct {
	provider *outline.CachingProvider
	blame    AuthorshipFunc

	mu      sync.RWMutex
	path    string
	version int64
	doc     *javadoc.FileDoc
	index   *CursorIndex

	cursorDebouncer *Debouncer[int]
	cursorGuard     *IdentityGuard[SymbolHit]
}

// NewSession creates a session for one document. onSymbol, when non-nil,
// receives debounced, deduplicated enclosing-declaration changes as the
// cursor moves; quiet is the debounce interval.
func NewSession(provider *outline.CachingProvider, blame AuthorshipFunc, quiet time.Duration, onSymbol func(SymbolHit)) *Session {
	s := &Session{
		provider: provider,
		blame:    blame,
		index:    NewCursorIndex(nil),
	}

	if onSymbol != nil {
		s.cursorGuard = NewIdentityGuard(func(h SymbolHit) string { return h.ID }, onSymbol)
		s.cursorDebouncer = NewDebouncer(quiet, func(line int) {
			hit := SymbolHit{Line: line}
			if span, ok := s.Lookup(line); ok {
				hit.ID = span.ID
			}
			s.cursorGuard.Deliver(hit)
		})
	}
	return s
}

// Refresh runs a full parse pass for the given document version and installs
// the result. When a newer version was installed while this pass ran, the
// stale result is dropped and the current document is returned unchanged.
func (s *Session) Refresh(ctx context.Context, path string, version int64, source []byte) (*javadoc.FileDoc, error) {
	passID := uuid.NewString()

	o, err := s.provider.OutlineAt(ctx, path, version, source)
	if err != nil {
		// Keep the previous FileDoc; the provider failing is the only case
		// where a pass produces nothing.
		return s.Current(), err
	}

	var auth *javadoc.Authorship
	if s.blame != nil {
		auth = s.blame(ctx, path)
	}

	doc, diags := javadoc.Assemble(path, source, o, auth)
	for _, d := range diags {
		log.Printf("Warning: parse pass %s dropped member %q (line %d): %s", passID, d.MemberName, d.StartLine, d.Message)
	}

	s.mu.Lock()
	if s.path == path && version < s.version {
		current := s.doc
		s.mu.Unlock()
		log.Printf("Warning: parse pass %s for %s is stale (version %d < %d), discarding", passID, path, version, s.version)
		return current, nil
	}
	s.path = path
	s.version = version
	s.doc = doc
	s.index = NewCursorIndex(doc.Methods)
	s.mu.Unlock()

	if s.cursorGuard != nil {
		s.cursorGuard.Reset()
	}
	return doc, nil
}

// Current returns the installed FileDoc, nil before the first successful
// pass.
func (s *Session) Current() *javadoc.FileDoc {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

// Lookup maps a line to the enclosing callable span.
func (s *Session) Lookup(line int) (Span, bool) {
	s.mu.RLock()
	index := s.index
	s.mu.RUnlock()
	return index.Lookup(line)
}

// MemberByID finds a member in the current document by its identity.
func (s *Session) MemberByID(id string) (javadoc.MemberDoc, bool) {
	doc := s.Current()
	if doc == nil {
		return javadoc.MemberDoc{}, false
	}
	for _, list := range [][]javadoc.MemberDoc{doc.Methods, doc.Fields, doc.EnumConstants} {
		for _, m := range list {
			if m.ID == id {
				return m, true
			}
		}
	}
	return javadoc.MemberDoc{}, false
}

// CursorMoved reports a cursor position; the enclosing-declaration change is
// delivered to the subscriber after the quiet interval, once per identity.
func (s *Session) CursorMoved(line int) {
	if s.cursorDebouncer != nil {
		s.cursorDebouncer.Call(line)
	}
}

// Close cancels pending deliveries and purges the provider cache entry for
// this document.
func (s *Session) Close() {
	if s.cursorDebouncer != nil {
		s.cursorDebouncer.Cancel()
	}

	s.mu.RLock()
	path := s.path
	s.mu.RUnlock()
	if path != "" {
		s.provider.Purge(path)
	}
}
