// Package textscan provides low-level, delimiter-aware text scanning used by
// the javadoc and outline packages. It never parses Java; it only projects
// lines to their code-only form and splits text while respecting nested
// parentheses, angle brackets, string literals, and comments.
package textscan

// State carries scanner context from one line to the next.
type State struct {
	InBlockComment bool
	InString       bool
	InChar         bool
}

// Result is the outcome of scanning a single line.
type Result struct {
	// Code is the line with comments and string/char literal contents removed.
	Code string

	// BraceDelta is the count of unmatched '{' minus unmatched '}' on this line,
	// counted only in code positions.
	BraceDelta int

	// State is the carry-over context for the next line.
	State State
}

// ScanLine computes the code-only projection of a single line given the
// carry-over state from the previous line. It is a total function: every
// input produces a result and no input can fail.
func ScanLine(line string, st State) Result {
	var code []byte
	delta := 0

	i := 0
	n := len(line)
	for i < n {
		c := line[i]

		switch {
		case st.InBlockComment:
			if c == '*' && i+1 < n && line[i+1] == '/' {
				st.InBlockComment = false
				i += 2
				continue
			}
			i++

		case st.InString:
			if c == '\\' {
				// Escape suppresses the next character.
				i += 2
				continue
			}
			if c == '"' {
				st.InString = false
			}
			i++

		case st.InChar:
			if c == '\\' {
				i += 2
				continue
			}
			if c == '\'' {
				st.InChar = false
			}
			i++

		default:
			// In code.
			if c == '/' && i+1 < n {
				if line[i+1] == '/' {
					// Line comment truncates the rest of the line.
					i = n
					continue
				}
				if line[i+1] == '*' {
					st.InBlockComment = true
					i += 2
					continue
				}
			}
			if c == '"' {
				st.InString = true
				i++
				continue
			}
			if c == '\'' {
				st.InChar = true
				i++
				continue
			}
			if c == '{' {
				delta++
			} else if c == '}' {
				delta--
			}
			code = append(code, c)
			i++
		}
	}

	// An unterminated string or char literal does not survive the line break.
	st.InString = false
	st.InChar = false

	return Result{Code: string(code), BraceDelta: delta, State: st}
}
