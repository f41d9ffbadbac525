package solutions

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPathFor(t *testing.T) {
	d := NewDir("solutions")
	got := d.PathFor("Two Sum")
	want := filepath.Join("solutions", "two_sum.md")
	if got != want {
		t.Errorf("PathFor = %q, want %q", got, want)
	}
}

func TestRender(t *testing.T) {
	md := Render("Two Sum", "hash map", "off-by-one", "def two_sum(): ...")

	for _, part := range []string{
		"# Two Sum",
		"## Approach",
		"hash map",
		"## Challenges",
		"off-by-one",
		"## Solution",
		"def two_sum(): ...",
	} {
		if !strings.Contains(md, part) {
			t.Errorf("rendered markdown missing %q:\n%s", part, md)
		}
	}
}

func TestWriteCreatesFile(t *testing.T) {
	d := NewDir(filepath.Join(t.TempDir(), "solutions"))

	path, err := d.Write("", "Two Sum", "hash map", "none", "code")
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if path != d.PathFor("Two Sum") {
		t.Errorf("path = %q, want %q", path, d.PathFor("Two Sum"))
	}

	content, err := d.Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !strings.Contains(content, "# Two Sum") {
		t.Errorf("written file missing title:\n%s", content)
	}
}

func TestWriteReusesExistingPath(t *testing.T) {
	root := filepath.Join(t.TempDir(), "solutions")
	d := NewDir(root)
	existing := filepath.Join(root, "custom_name.md")

	path, err := d.Write(existing, "Two Sum", "updated", "none", "code v2")
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if path != existing {
		t.Errorf("path = %q, want the existing path %q", path, existing)
	}
}

func TestReadMissingFile(t *testing.T) {
	d := NewDir(t.TempDir())
	if _, err := d.Read(filepath.Join(d.Root(), "nope.md")); err == nil {
		t.Fatal("Read of a missing write-up must fail")
	}
}

func TestCaptureEditor(t *testing.T) {
	// Use true(1) as the "editor": it exits immediately, leaving the
	// seeded content untouched.
	got, err := CaptureEditor("true", "  seeded solution\n")
	if err != nil {
		t.Fatalf("CaptureEditor: %v", err)
	}
	if got != "seeded solution" {
		t.Errorf("captured %q, want trimmed seed", got)
	}
}

func TestCaptureEditorMissingEditor(t *testing.T) {
	if _, err := CaptureEditor("definitely-not-an-editor-binary", ""); err == nil {
		t.Fatal("CaptureEditor with a bogus editor must fail")
	}
	// The temp file must not linger on failure.
	matches, _ := filepath.Glob(filepath.Join(os.TempDir(), "solution-*.txt"))
	for _, m := range matches {
		t.Logf("leftover temp file: %s", m)
	}
}
