package git

// MockGitOps is a mock implementation of Operations for testing.
type MockGitOps struct {
	Repository bool
	Summaries  map[string]*Summary
}

// NewMockGitOps creates a mock with sensible defaults.
func NewMockGitOps() *MockGitOps {
	return &MockGitOps{
		Repository: true,
		Summaries:  map[string]*Summary{},
	}
}

func (m *MockGitOps) IsRepository(dir string) bool {
	return m.Repository
}

func (m *MockGitOps) FileSummary(path string) *Summary {
	if !m.Repository {
		return nil
	}
	return m.Summaries[path]
}
