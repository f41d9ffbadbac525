// Package solutions manages the per-problem markdown write-ups and the
// external-editor capture of solution code.
package solutions

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Dir is the solutions root where write-ups live, one markdown file per
// problem.
type Dir struct {
	root string
}

// NewDir returns a Dir rooted at the given path. The directory is created
// lazily on first write.
func NewDir(root string) Dir {
	return Dir{root: root}
}

// Root returns the solutions root path.
func (d Dir) Root() string { return d.root }

// PathFor returns the write-up path for a problem name: a lowercased,
// underscore-slugged filename under the root.
func (d Dir) PathFor(problemName string) string {
	slug := strings.ToLower(strings.ReplaceAll(problemName, " ", "_"))
	return filepath.Join(d.root, slug+".md")
}

// Write renders and writes the write-up for a problem. When path is empty a
// fresh path is derived from the problem name. The written path is
// returned.
func (d Dir) Write(path, problemName, approach, challenges, code string) (string, error) {
	if path == "" {
		path = d.PathFor(problemName)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create solutions directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(Render(problemName, approach, challenges, code)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write solution file: %w", err)
	}
	return path, nil
}

// Read returns the contents of a write-up file.
func (d Dir) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read solution file: %w", err)
	}
	return string(data), nil
}

// Render produces the markdown document for one solved problem.
func Render(problemName, approach, challenges, code string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", problemName)
	fmt.Fprintf(&b, "## Approach\n\n%s\n\n", approach)
	fmt.Fprintf(&b, "## Challenges\n\n%s\n\n", challenges)
	fmt.Fprintf(&b, "## Solution\n\n```\n%s\n```\n", code)
	return b.String()
}

// CaptureEditor opens the user's editor on a temp file seeded with initial
// content and returns what was saved, trimmed. The call blocks until the
// editor exits.
func CaptureEditor(editor, initial string) (string, error) {
	tmp, err := os.CreateTemp("", "solution-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	name := tmp.Name()
	defer os.Remove(name)

	if initial != "" {
		if _, err := tmp.WriteString(initial); err != nil {
			tmp.Close()
			return "", fmt.Errorf("failed to seed temp file: %w", err)
		}
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	cmd := exec.Command(editor, name)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor %s failed: %w", editor, err)
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read captured solution: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
