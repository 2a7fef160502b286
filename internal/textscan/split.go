package textscan

import (
	"strings"
	"unicode"
)

// javaModifiers are the leading keywords stripped from a parameter segment
// before the type/name split.
var javaModifiers = map[string]bool{
	"final":        true,
	"public":       true,
	"protected":    true,
	"private":      true,
	"static":       true,
	"abstract":     true,
	"synchronized": true,
	"native":       true,
	"transient":    true,
	"volatile":     true,
	"strictfp":     true,
	"default":      true,
}

// MatchedParen returns the substring between the first top-level '(' and its
// matching ')'. Nested parentheses are skipped by depth counting. ok is false
// when no opening parenthesis exists or it never closes.
func MatchedParen(s string) (inner string, ok bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return "", false
	}

	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return s[open+1 : i], true
			}
		}
	}
	return "", false
}

// SplitTopLevel splits s on sep occurrences that are not nested inside angle
// brackets or parentheses. A generic argument list like
// "Map<String, List<User>>" therefore stays one segment.
func SplitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '(':
			depth++
		case '>', ')':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// SkipAnnotations strips leading annotations (@Name or @Name(...) with a
// depth-matched argument list) and leading modifier keywords from a parameter
// segment, repeating until neither pattern matches.
func SkipAnnotations(s string) string {
	for {
		s = strings.TrimLeft(s, " \t")

		if strings.HasPrefix(s, "@") {
			i := 1
			for i < len(s) && (isIdentByte(s[i]) || s[i] == '.') {
				i++
			}
			if i == 1 {
				// A lone '@' is not an annotation; stop rather than loop.
				return s
			}
			// Optional argument list.
			if i < len(s) && s[i] == '(' {
				depth := 0
				for i < len(s) {
					if s[i] == '(' {
						depth++
					} else if s[i] == ')' {
						depth--
						if depth == 0 {
							i++
							break
						}
					}
					i++
				}
			}
			s = s[i:]
			continue
		}

		word := leadingWord(s)
		if word != "" && javaModifiers[word] {
			s = s[len(word):]
			continue
		}

		return s
	}
}

// TypeAndName splits a cleaned parameter segment at its last space: the text
// before is the type, the text after is the parameter name. Segments without
// a space yield an empty type.
func TypeAndName(segment string) (typ, name string) {
	segment = strings.TrimSpace(segment)
	idx := strings.LastIndexByte(segment, ' ')
	if idx < 0 {
		return "", segment
	}
	return strings.TrimSpace(segment[:idx]), strings.TrimSpace(segment[idx+1:])
}

// CollapseWhitespace replaces every run of whitespace with a single space and
// trims the ends.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func leadingWord(s string) string {
	for i := 0; i < len(s); i++ {
		if !isIdentByte(s[i]) {
			return s[:i]
		}
	}
	return s
}

func isIdentByte(b byte) bool {
	return b == '_' || b == '$' ||
		unicode.IsLetter(rune(b)) || unicode.IsDigit(rune(b))
}
