// Package git resolves optional authorship metadata for source files by
// shelling out to the git CLI. Every failure mode (not a repository, git
// unavailable, untracked file) degrades to "no authorship" rather than
// surfacing an error.
package git

import (
	"os/exec"
	"path/filepath"
	"strings"
)

// Summary is the authorship triple for one file.
type Summary struct {
	Author         string
	LastModifier   string
	LastModifyDate string
}

// Operations defines the interface for git authorship lookups.
// This allows mocking git commands in tests.
type Operations interface {
	// IsRepository reports whether dir is inside a git worktree.
	IsRepository(dir string) bool

	// FileSummary returns the authorship triple for a file: the author of
	// its first commit plus the author and date of its last commit.
	// Returns nil when the information is unavailable.
	FileSummary(path string) *Summary
}

// gitOps is the real implementation using exec.Command.
type gitOps struct{}

// NewOperations returns the default git operations implementation.
func NewOperations() Operations {
	return &gitOps{}
}

func (g *gitOps) IsRepository(dir string) bool {
	cmd := exec.Command("git", "rev-parse", "--is-inside-work-tree")
	cmd.Dir = dir
	output, err := cmd.Output()
	return err == nil && strings.TrimSpace(string(output)) == "true"
}

func (g *gitOps) FileSummary(path string) *Summary {
	dir := filepath.Dir(path)
	if !g.IsRepository(dir) {
		return nil
	}

	// Last commit touching the file: modifier and date.
	cmd := exec.Command("git", "log", "-1", "--format=%an\t%ad", "--date=short", "--", path)
	cmd.Dir = dir
	output, err := cmd.Output()
	last := strings.TrimSpace(string(output))
	if err != nil || last == "" {
		// Untracked or outside history.
		return nil
	}

	summary := &Summary{}
	if parts := strings.SplitN(last, "\t", 2); len(parts) == 2 {
		summary.LastModifier = parts[0]
		summary.LastModifyDate = parts[1]
	}

	// First commit touching the file: original author. Failure here keeps
	// the last-change half of the summary.
	cmd = exec.Command("git", "log", "--reverse", "--format=%an", "--", path)
	cmd.Dir = dir
	if output, err := cmd.Output(); err == nil {
		authors := strings.Split(strings.TrimSpace(string(output)), "\n")
		if len(authors) > 0 && authors[0] != "" {
			summary.Author = authors[0]
		}
	}
	if summary.Author == "" {
		summary.Author = summary.LastModifier
	}

	return summary
}
