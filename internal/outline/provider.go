package outline

import "context"

// Outline is the structural view of one source file supplied by a Provider.
type Outline struct {
	// PackageName is the declared package, "" when absent.
	PackageName string

	// Roots are the top-level declarations in source order. An empty forest
	// means "no documentation available", not an error.
	Roots []*Node
}

// Provider produces the declaration outline for a document. Implementations
// must treat unparseable input as an empty outline rather than an error;
// errors are reserved for infrastructure failures (I/O, resource limits).
type Provider interface {
	Outline(ctx context.Context, path string, source []byte) (*Outline, error)
}
