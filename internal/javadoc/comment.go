package javadoc

import (
	"regexp"
	"strings"

	"github.com/docsight/docsight/internal/textscan"
)

// annotationLine matches a line that begins a decorator annotation, e.g.
// "@Override" or "@SuppressWarnings(" with the argument list possibly
// continuing on following lines.
var annotationLine = regexp.MustCompile(`^\s*@[A-Za-z_$][\w$]*`)

// AssociatedComment walks upward from the line above targetLine looking for
// the documentation block that belongs to the declaration there. Blank lines
// and annotation lines (including multi-line annotation argument lists) are
// skipped. The first remaining line must end with "*/"; anything else means
// the declaration has no comment. Returns the full block text including the
// "/**" and "*/" delimiters, or "" when there is none. lines are the file's
// lines and targetLine is 1-indexed.
func AssociatedComment(lines []string, targetLine int) string {
	i := targetLine - 2 // index of the line above the declaration
	if i >= len(lines) {
		i = len(lines) - 1
	}

	// Skip blanks and annotations upward.
	for i >= 0 {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			i--
			continue
		}
		if isAnnotationEnd(lines, &i) {
			continue
		}
		break
	}
	if i < 0 {
		return ""
	}

	closing := strings.TrimSpace(lines[i])
	if !strings.HasSuffix(closing, "*/") {
		// The nearest real line is code, so no comment is associated.
		return ""
	}

	// Found the closer; search upward for the matching opener.
	end := i
	for j := i; j >= 0; j-- {
		line := strings.TrimSpace(lines[j])
		if j < i && strings.HasSuffix(line, "*/") {
			// A second independent closer cannot belong to this block.
			return ""
		}
		if strings.HasPrefix(line, "/**") {
			return strings.Join(lines[j:end+1], "\n")
		}
	}
	return ""
}

// AssociatedMemberComment resolves a member-level comment and additionally
// guards against the container-comment collision: when a synthesized member
// is reported on the container's own declaration line, the upward walk finds
// the container's comment. A byte-identical match with the container comment
// is therefore discarded.
func AssociatedMemberComment(lines []string, targetLine int, containerComment string) string {
	comment := AssociatedComment(lines, targetLine)
	if comment != "" && comment == containerComment {
		return ""
	}
	return comment
}

// isAnnotationEnd checks whether lines[*i] terminates an annotation. Walking
// upward we meet a multi-line annotation at its last line, so this scans
// further up until the annotation's opening "@Name(" is found with its
// parenthesis depth fully closed, then moves *i past it. Returns false and
// leaves *i unchanged when the line is not part of an annotation.
func isAnnotationEnd(lines []string, i *int) bool {
	line := strings.TrimSpace(lines[*i])

	if annotationLine.MatchString(line) {
		// Single-line annotation, possibly with a balanced argument list.
		if parenBalance(line) == 0 {
			*i--
			return true
		}
		// "@Name(" opening an argument list that closes further down. That
		// can only happen when we started inside the list; treat as code.
		return false
	}

	// The line might be the tail of a multi-line annotation argument list:
	// scan upward accumulating parenthesis balance until an annotation
	// opener would close the list.
	balance := 0
	for j := *i; j >= 0; j-- {
		cur := strings.TrimSpace(lines[j])
		balance += parenBalance(cur)
		if annotationLine.MatchString(cur) {
			if balance == 0 {
				*i = j - 1
				return true
			}
			return false
		}
		// Any terminator other than annotation punctuation means this was
		// not an annotation tail.
		if cur == "" || strings.HasSuffix(cur, ";") || strings.HasSuffix(cur, "{") || strings.HasSuffix(cur, "}") || strings.HasSuffix(cur, "*/") {
			return false
		}
	}
	return false
}

// parenBalance counts '(' minus ')' in the line's code positions, so
// parentheses inside comments or string literals do not skew the balance.
func parenBalance(s string) int {
	code := textscan.ScanLine(s, textscan.State{}).Code
	depth := 0
	for i := 0; i < len(code); i++ {
		switch code[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
	}
	return depth
}
