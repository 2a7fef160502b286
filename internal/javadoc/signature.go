package javadoc

import (
	"strings"

	"github.com/docsight/docsight/internal/textscan"
)

// signatureLineLimit bounds the forward scan when a parameter list never
// closes. Generous enough for heavily annotated multi-line parameter lists.
const signatureLineLimit = 40

// ExtractSignature reconstructs the single-line signature of a callable
// declared at startLine (1-indexed). Each line is projected to its code-only
// form first, so a ')' hidden in a comment or string literal never closes
// the parameter list. It accumulates the projected lines while tracking
// parenthesis depth from the first '(' and stops once the list closes,
// collapsing all whitespace runs to single spaces. When the list never
// closes within the line limit, whatever accumulated is returned the same
// way. Best effort: the result is not guaranteed to be valid Java.
func ExtractSignature(lines []string, startLine int) string {
	if startLine < 1 || startLine > len(lines) {
		return ""
	}

	var b strings.Builder
	depth := 0
	opened := false
	st := textscan.State{}

	for i := startLine - 1; i < len(lines) && i < startLine-1+signatureLineLimit; i++ {
		res := textscan.ScanLine(lines[i], st)
		st = res.State
		for j := 0; j < len(res.Code); j++ {
			c := res.Code[j]
			switch c {
			case '(':
				opened = true
				depth++
			case ')':
				depth--
			}
			b.WriteByte(c)
			if opened && depth == 0 {
				return textscan.CollapseWhitespace(b.String())
			}
		}
		b.WriteByte(' ')
	}

	return textscan.CollapseWhitespace(b.String())
}

// AccessQualifier derives the textual access level from a signature.
func AccessQualifier(signature string) string {
	fields := strings.Fields(signature)
	for _, f := range fields {
		switch f {
		case "public", "protected", "private":
			return f
		}
	}
	return "default"
}
