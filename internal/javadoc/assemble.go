package javadoc

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/docsight/docsight/internal/outline"
	"github.com/docsight/docsight/internal/textscan"
)

// Assemble builds the whole-file documentation model from the source text
// and its declaration outline. Every member is parsed independently behind a
// panic guard: a malformed member is dropped and recorded as a diagnostic
// instead of aborting the pass. The returned FileDoc's member lists are
// sorted ascending by start line.
func Assemble(filePath string, source []byte, o *outline.Outline, auth *Authorship) (*FileDoc, []Diagnostic) {
	lines := strings.Split(string(source), "\n")

	doc := &FileDoc{
		PackageName:   o.PackageName,
		FilePath:      filePath,
		Methods:       []MemberDoc{},
		Fields:        []MemberDoc{},
		EnumConstants: []MemberDoc{},
		Authorship:    auth,
	}

	// The primary container provides the class-level comment that member
	// association is disambiguated against.
	if class := primaryContainer(o.Roots); class != nil {
		doc.ClassName = class.Name
		doc.ClassComment = AssociatedComment(lines, class.EffectiveSelection().StartLine)
	}

	members := outline.Flatten(o.Roots)
	var diags []Diagnostic

	for _, m := range members.Callables {
		md, err := buildMember(lines, m, doc.ClassComment, true)
		if err != nil {
			diags = append(diags, *err)
			continue
		}
		doc.Methods = append(doc.Methods, md)
	}
	for _, m := range members.Fields {
		md, err := buildMember(lines, m, doc.ClassComment, false)
		if err != nil {
			diags = append(diags, *err)
			continue
		}
		doc.Fields = append(doc.Fields, md)
	}
	for _, m := range members.EnumConstants {
		md, err := buildMember(lines, m, doc.ClassComment, false)
		if err != nil {
			diags = append(diags, *err)
			continue
		}
		doc.EnumConstants = append(doc.EnumConstants, md)
	}

	sortByStartLine(doc.Methods)
	sortByStartLine(doc.Fields)
	sortByStartLine(doc.EnumConstants)

	return doc, diags
}

// buildMember parses one flattened member into its MemberDoc. The returned
// Diagnostic is non-nil only when parsing panicked.
func buildMember(lines []string, m outline.FlattenedMember, classComment string, callable bool) (md MemberDoc, diag *Diagnostic) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Warning: dropping member %q at line %d: %v", m.Node.Name, m.Node.Range.StartLine, r)
			diag = &Diagnostic{
				MemberName: m.Node.Name,
				StartLine:  m.Node.Range.StartLine,
				Message:    fmt.Sprint(r),
			}
		}
	}()

	startLine := m.Node.EffectiveSelection().StartLine

	var signature string
	if callable {
		signature = ExtractSignature(lines, startLine)
	} else {
		signature = fieldSignature(lines, startLine, m.Node.Detail)
	}

	comment := AssociatedMemberComment(lines, startLine, classComment)

	md = MemberDoc{
		ID:             MemberID(m.Node.Name, startLine),
		Name:           m.Node.Name,
		Signature:      signature,
		StartLine:      startLine,
		HasComment:     comment != "",
		Tags:           TagTable{},
		QualifyingPath: m.QualifyingPath,
		Access:         AccessQualifier(signature),
	}
	if callable {
		md.EndLine = m.Node.Range.EndLine
	}

	if comment != "" {
		md.Description, md.Tags = ParseTags(CleanComment(comment), signature)
	}
	return md, nil
}

// fieldSignature produces the display signature for a field or enum
// constant: the provider detail when present, else the declaration's own
// line with whitespace collapsed and any trailing initializer punctuation
// kept as written.
func fieldSignature(lines []string, startLine int, detail string) string {
	if detail != "" {
		return detail
	}
	if startLine < 1 || startLine > len(lines) {
		return ""
	}
	return textscan.CollapseWhitespace(strings.TrimSuffix(strings.TrimSpace(lines[startLine-1]), ";"))
}

// primaryContainer returns the first top-level container of the outline.
func primaryContainer(roots []*outline.Node) *outline.Node {
	for _, r := range roots {
		if r != nil && r.Kind == outline.KindContainer {
			return r
		}
	}
	return nil
}

// sortByStartLine orders members ascending by start line. Declarations can
// share a line (a multi-declarator field like "int a, b;"), so ties break on
// name to keep assembly deterministic.
func sortByStartLine(members []MemberDoc) {
	sort.Slice(members, func(i, j int) bool {
		if members[i].StartLine != members[j].StartLine {
			return members[i].StartLine < members[j].StartLine
		}
		return members[i].Name < members[j].Name
	})
}
