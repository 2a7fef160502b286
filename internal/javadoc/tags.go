package javadoc

import (
	"regexp"
	"strings"

	"github.com/docsight/docsight/internal/textscan"
)

// tagKeyword matches the recognized tag keywords at a tag boundary. "returns"
// must be tried before "return" so the longer keyword wins.
var tagKeyword = regexp.MustCompile(`@(param|returns?|throws|exception|since|author|deprecated|see)\b`)

// firstTagMarker locates the start of the tag region: the first '@' followed
// by a word. Everything before it is the free-text description.
var firstTagMarker = regexp.MustCompile(`@\w+`)

// CleanComment strips the comment delimiters and the per-line leading '*'
// markers from a raw "/** ... */" block.
func CleanComment(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "/**")
	s = strings.TrimSuffix(s, "*/")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "*")
		lines[i] = strings.TrimPrefix(line, " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// ParseTags splits a cleaned comment body into the free-text description and
// a TagTable, resolving parameter and return types against the reconstructed
// signature. Parsing never fails; unmatched lookups degrade to sentinels.
func ParseTags(body, signature string) (description string, table TagTable) {
	loc := firstTagMarker.FindStringIndex(body)
	if loc == nil {
		return strings.TrimSpace(body), TagTable{}
	}

	description = strings.TrimSpace(body[:loc[0]])
	tagRegion := body[loc[0]:]

	paramTypes := ParamTypes(signature)
	returnType := ReturnType(signature)

	matches := tagKeyword.FindAllStringSubmatchIndex(tagRegion, -1)
	for i, m := range matches {
		keyword := tagRegion[m[2]:m[3]]
		end := len(tagRegion)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		content := textscan.CollapseWhitespace(tagRegion[m[1]:end])

		switch keyword {
		case "param":
			name, desc := splitFirstWord(content)
			if name == "" {
				continue
			}
			typ, ok := paramTypes[name]
			if !ok {
				typ = TypeUnknown
			}
			table.Params = append(table.Params, ParamTag{Name: name, Type: typ, Description: desc})

		case "return", "returns":
			// A @return on a void callable is dropped, not surfaced.
			if returnType == TypeVoid {
				continue
			}
			table.Returns = &ReturnTag{Type: returnType, Description: content}

		case "throws", "exception":
			typ, desc := splitFirstWord(content)
			if typ == "" {
				continue
			}
			table.Throws = append(table.Throws, ThrowsTag{Type: typ, Description: desc})

		case "since":
			table.Since = content
		case "author":
			table.Author = content
		case "deprecated":
			table.Deprecated = content
		case "see":
			table.See = append(table.See, content)
		}
	}

	return description, table
}

// ParamTypes parses the signature's parameter list into a name-to-type map.
// Leading annotations are stripped first so an annotation's own argument
// list (e.g. "@Deprecated(since=...)") is never mistaken for the parameter
// list. The list is bounded by depth-matched parentheses and split on
// top-level commas so multi-argument generics stay intact.
func ParamTypes(signature string) map[string]string {
	types := make(map[string]string)

	inner, ok := textscan.MatchedParen(textscan.SkipAnnotations(signature))
	if !ok || strings.TrimSpace(inner) == "" {
		return types
	}

	for _, segment := range textscan.SplitTopLevel(inner, ',') {
		segment = textscan.SkipAnnotations(segment)
		typ, name := textscan.TypeAndName(segment)
		if name == "" {
			continue
		}
		if typ == "" {
			typ = TypeUnknown
		}
		types[name] = typ
	}
	return types
}

// ReturnType recovers the textual return type from a signature: strip
// leading annotations and modifiers, strip a method-level generic
// type-parameter block when one precedes the return type, and take the text
// before the declaration's "name(" as the type. Falls back to the last
// space-separated top-level token, then to the void sentinel.
func ReturnType(signature string) string {
	// Annotations go first: an annotation argument list would otherwise
	// supply the first '(' and truncate the head inside it.
	sig := textscan.SkipAnnotations(strings.TrimSpace(signature))

	open := strings.IndexByte(sig, '(')
	if open < 0 {
		return TypeVoid
	}

	head := stripTypeParams(strings.TrimSpace(sig[:open]))

	// Drop the trailing declaration name.
	idx := lastTopLevelSpace(head)
	if idx < 0 {
		// "name(" alone: a constructor or an unqualified declaration, both
		// of which produce no value.
		return TypeVoid
	}

	typ := strings.TrimSpace(head[:idx])
	if isTypeLike(typ) {
		return typ
	}

	// Fallback: the single token immediately preceding the name.
	if i := lastTopLevelSpace(typ); i >= 0 {
		if last := strings.TrimSpace(typ[i+1:]); isTypeLike(last) {
			return last
		}
	}
	return TypeVoid
}

// stripTypeParams removes a leading "<...>" generic type-parameter block when
// the text after its closing '>' still looks like "type name" — i.e. the
// block belongs to the method, not to the return type.
func stripTypeParams(head string) string {
	head = strings.TrimSpace(head)
	if !strings.HasPrefix(head, "<") {
		return head
	}

	depth := 0
	for i := 0; i < len(head); i++ {
		switch head[i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth == 0 {
				rest := strings.TrimSpace(head[i+1:])
				if looksLikeTypeAndName(rest) {
					return rest
				}
				return head
			}
		}
	}
	return head
}

// looksLikeTypeAndName reports whether s has the "word word" shape of a
// return type followed by a declaration name.
func looksLikeTypeAndName(s string) bool {
	return lastTopLevelSpace(s) > 0
}

// lastTopLevelSpace returns the index of the last space not nested inside
// angle brackets, or -1.
func lastTopLevelSpace(s string) int {
	depth := 0
	last := -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			depth--
		case ' ':
			if depth == 0 {
				last = i
			}
		}
	}
	return last
}

// isTypeLike accepts the textual shape of a Java type: identifier characters,
// dots, generics, arrays, varargs, and wildcard punctuation, with balanced
// angle brackets.
func isTypeLike(s string) bool {
	if s == "" {
		return false
	}
	depth := 0
	for _, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				return false
			}
		case '[', ']', '.', ',', '?', '&', ' ', '_', '$':
		default:
			if !isWordRune(r) {
				return false
			}
		}
	}
	return depth == 0
}

func isWordRune(r rune) bool {
	return r == '_' || r == '$' ||
		('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9') ||
		r > 127
}

// splitFirstWord splits tag content into its first word and the remainder.
// The first word may be dotted (e.g. a qualified exception type).
func splitFirstWord(content string) (word, rest string) {
	content = strings.TrimSpace(content)
	idx := strings.IndexAny(content, " \t")
	if idx < 0 {
		return content, ""
	}
	return content[:idx], strings.TrimSpace(content[idx:])
}
