package testutil

import (
	"os"
	"strings"
)

// MockFileSystem is an in-memory test double for ReadFile-based file systems.
type MockFileSystem struct {
	Files map[string]string
}

// ReadFile returns the stored content or os.ErrNotExist.
func (m *MockFileSystem) ReadFile(name string) ([]byte, error) {
	content, ok := m.Files[name]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrNotExist}
	}
	return []byte(content), nil
}

// ContainsDetail checks if any detail string contains the given substring.
func ContainsDetail(details []string, substr string) bool {
	for _, d := range details {
		if strings.Contains(d, substr) {
			return true
		}
	}
	return false
}
