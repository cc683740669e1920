package fsops

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnumerateDirectoryMissingPath(t *testing.T) {
	got := EnumerateDirectory("/path/does/not/exist", 1)

	msgs, ok := got["error"]
	if !ok {
		t.Fatalf("expected error-keyed result, got %v", got)
	}
	if len(msgs) != 1 {
		t.Fatalf("expected exactly one error message, got %v", msgs)
	}
	msg, _ := msgs[0].(string)
	if !strings.Contains(msg, "/path/does/not/exist") {
		t.Errorf("message %q should name the path", msg)
	}
}

func TestEnumerateDirectoryNotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := EnumerateDirectory(file, 1)
	msgs, ok := got["error"]
	if !ok || len(msgs) != 1 {
		t.Fatalf("expected one error message, got %v", got)
	}
	msg, _ := msgs[0].(string)
	if !strings.Contains(msg, "not a directory") {
		t.Errorf("message %q should say the path is not a directory", msg)
	}
}

func TestEnumerateDirectoryListsFilesAndSubdirs(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(dir, "nested")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "b.txt"), []byte("b"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := EnumerateDirectory(dir, 1)
	entries, ok := got[dir]
	if !ok {
		t.Fatalf("expected result keyed by %q, got %v", dir, got)
	}

	var sawFile, sawSubdir bool
	for _, entry := range entries {
		switch e := entry.(type) {
		case string:
			if e == "a.txt" {
				sawFile = true
			}
		case map[string][]any:
			nested, ok := e["nested"]
			if !ok {
				t.Errorf("unexpected subdir entry %v", e)
				continue
			}
			sawSubdir = true
			if len(nested) != 1 || nested[0] != "b.txt" {
				t.Errorf("nested contents = %v, want [b.txt]", nested)
			}
		default:
			t.Errorf("unexpected entry type %T", entry)
		}
	}
	if !sawFile || !sawSubdir {
		t.Errorf("entries = %v, want both a.txt and nested/", entries)
	}
}

func TestEnumerateDirectoryOmitsEmptySubdirAtDepthBoundary(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "deep")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "hidden.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Depth 0: the subdirectory's scan never runs, so it is omitted entirely.
	got := EnumerateDirectory(dir, 0)
	if entries := got[dir]; len(entries) != 0 {
		t.Errorf("depth-0 entries = %v, want none", entries)
	}
}

func TestMove(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "out", "dst.txt")
	if err := os.WriteFile(src, []byte("payload"), 0o644); err != nil {
		t.Fatal(err)
	}

	ok, msg := Move(src, dst)
	if !ok {
		t.Fatalf("Move failed: %s", msg)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Error("source should be gone after move")
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "payload" {
		t.Errorf("content = %q, want %q", got, "payload")
	}
}

func TestMoveMissingSource(t *testing.T) {
	dir := t.TempDir()
	ok, msg := Move(filepath.Join(dir, "absent.txt"), filepath.Join(dir, "dst.txt"))
	if ok {
		t.Fatal("expected failure for missing source")
	}
	if !strings.Contains(msg, "source file not found") {
		t.Errorf("message = %q, want source-not-found classification", msg)
	}
}

func TestCopy(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "sub", "dir", "dst.txt")
	if err := os.WriteFile(src, []byte("copy me"), 0o600); err != nil {
		t.Fatal(err)
	}

	ok, msg := Copy(src, dst)
	if !ok {
		t.Fatalf("Copy failed: %s", msg)
	}

	// Source is untouched and content matches.
	if _, err := os.Stat(src); err != nil {
		t.Error("source should still exist after copy")
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "copy me" {
		t.Errorf("content = %q, want %q", got, "copy me")
	}

	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0o600 != 0o600 {
		t.Errorf("permissions = %o, want source permissions carried over", info.Mode().Perm())
	}
}

func TestCopyMissingSource(t *testing.T) {
	dir := t.TempDir()
	ok, msg := Copy(filepath.Join(dir, "absent.txt"), filepath.Join(dir, "dst.txt"))
	if ok {
		t.Fatal("expected failure for missing source")
	}
	if !strings.Contains(msg, "source file not found") {
		t.Errorf("message = %q, want source-not-found classification", msg)
	}
}

func TestCopyLeavesNoPartialFiles(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	if err := os.WriteFile(src, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}

	ok, _ := Copy(src, filepath.Join(dir, "dst.txt"))
	if !ok {
		t.Fatal("copy failed")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if strings.Contains(entry.Name(), ".partial-") {
			t.Errorf("staging file %s left behind", entry.Name())
		}
	}
}
