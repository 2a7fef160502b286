// Package javadoc extracts structured documentation from Javadoc block
// comments: comment-to-declaration association, multi-line signature
// reconstruction, tag table parsing with signature-derived type recovery,
// and assembly of the whole-file documentation model.
package javadoc

import "strconv"

// Type sentinels. Tag parsing never fails: a parameter whose name cannot be
// matched against the signature gets TypeUnknown, and a callable whose
// return type cannot be recovered gets TypeVoid.
const (
	TypeUnknown = "unknown"
	TypeVoid    = "void"
)

// ParamTag is one @param entry joined with its signature-derived type.
type ParamTag struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// ReturnTag is the @return/@returns entry. It is never produced for a
// void callable.
type ReturnTag struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// ThrowsTag is one @throws/@exception entry.
type ThrowsTag struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// TagTable holds the parsed tag section of one comment. The zero value is
// the empty-table sentinel used for members without a comment.
type TagTable struct {
	Params     []ParamTag  `json:"params,omitempty"`
	Returns    *ReturnTag  `json:"returns,omitempty"`
	Throws     []ThrowsTag `json:"throws,omitempty"`
	Since      string      `json:"since,omitempty"`
	Author     string      `json:"author,omitempty"`
	Deprecated string      `json:"deprecated,omitempty"`
	See        []string    `json:"see,omitempty"`
}

// IsEmpty reports whether the table carries no tags at all.
func (t *TagTable) IsEmpty() bool {
	return len(t.Params) == 0 && t.Returns == nil && len(t.Throws) == 0 &&
		t.Since == "" && t.Author == "" && t.Deprecated == "" && len(t.See) == 0
}

// MemberDoc is the documentation record for one callable, field, or enum
// constant. Instances are immutable after assembly.
type MemberDoc struct {
	// ID is name + "_" + startLine. Declarations sharing a line (a
	// multi-declarator field) still differ by name, so IDs are unique within
	// a file and stable until the declaration moves.
	ID string `json:"id"`

	Name      string `json:"name"`
	Signature string `json:"signature"`
	StartLine int    `json:"startLine"`

	// EndLine is populated for callables only; fields and enum constants
	// carry just their start line.
	EndLine int `json:"endLine,omitempty"`

	HasComment  bool     `json:"hasComment"`
	Description string   `json:"description"`
	Tags        TagTable `json:"tags"`

	// QualifyingPath is the dot-joined chain of enclosing container names
	// ("Unknown" when it could not be determined).
	QualifyingPath string `json:"qualifyingPath"`

	// Access is the textual access qualifier: public, protected, private,
	// or default.
	Access string `json:"access"`
}

// MemberID derives the identity of a member from its name and start line.
func MemberID(name string, startLine int) string {
	return name + "_" + strconv.Itoa(startLine)
}

// Authorship is the optional version-control summary for a file.
type Authorship struct {
	Author         string `json:"author,omitempty"`
	LastModifier   string `json:"lastModifier,omitempty"`
	LastModifyDate string `json:"lastModifyDate,omitempty"`
}

// FileDoc is the aggregate documentation model for one source file. A parse
// pass produces a complete FileDoc; the previous one is replaced wholesale,
// never patched.
type FileDoc struct {
	ClassName    string `json:"className"`
	ClassComment string `json:"classComment"`
	PackageName  string `json:"packageName"`
	FilePath     string `json:"filePath"`

	// Per-category member lists, each sorted ascending by start line. The
	// cursor index depends on this ordering.
	Methods       []MemberDoc `json:"methods"`
	Fields        []MemberDoc `json:"fields"`
	EnumConstants []MemberDoc `json:"enumConstants"`

	Authorship *Authorship `json:"authorship,omitempty"`
}

// Diagnostic records a member that was dropped because its parse panicked.
// Diagnostics are reported to the caller, not to the end consumer.
type Diagnostic struct {
	MemberName string
	StartLine  int
	Message    string
}
