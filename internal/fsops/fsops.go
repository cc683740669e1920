// Package fsops groups the filesystem helpers: bounded recursive directory
// enumeration and move/copy operations that report classified results
// instead of returning errors.
package fsops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// EnumerateDirectory lists the contents of path, recursing into
// subdirectories up to levels deep. The result maps the given path to its
// entries: file names as strings, subdirectories as single-key nested maps.
// Subdirectories whose recursive scan comes back empty are omitted, which
// also drops directories sitting at the depth boundary. Entries unreadable
// due to permissions are skipped silently.
//
// A missing path or a non-directory path yields a result keyed by "error"
// holding a single message naming the path.
func EnumerateDirectory(path string, levels int) map[string][]any {
	info, err := os.Stat(path)
	if err != nil {
		return map[string][]any{"error": {fmt.Sprintf("directory does not exist: %s", path)}}
	}
	if !info.IsDir() {
		return map[string][]any{"error": {fmt.Sprintf("path is not a directory: %s", path)}}
	}
	return map[string][]any{path: scanDirectory(path, levels)}
}

func scanDirectory(dir string, depth int) []any {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var contents []any
	for _, entry := range entries {
		if !entry.IsDir() {
			contents = append(contents, entry.Name())
			continue
		}
		if depth <= 0 {
			continue
		}
		if sub := scanDirectory(filepath.Join(dir, entry.Name()), depth-1); len(sub) > 0 {
			contents = append(contents, map[string][]any{entry.Name(): sub})
		}
	}
	return contents
}

// Move relocates src to dst, creating missing destination directories.
// Returns a success flag and a message classifying any failure as source
// not found, directory creation failure, or an underlying OS error.
func Move(src, dst string) (bool, string) {
	if ok, msg := prepare(src, dst); !ok {
		return false, msg
	}

	if err := os.Rename(src, dst); err == nil {
		return true, "file moved successfully"
	}

	// Rename fails across filesystems; fall back to copy then remove.
	if err := stagedCopy(src, dst); err != nil {
		return false, fmt.Sprintf("failed to move file: %v", err)
	}
	if err := os.Remove(src); err != nil {
		return false, fmt.Sprintf("failed to move file: remove source: %v", err)
	}
	return true, "file moved successfully"
}

// Copy duplicates src at dst, creating missing destination directories.
// Same result shape as Move.
func Copy(src, dst string) (bool, string) {
	if ok, msg := prepare(src, dst); !ok {
		return false, msg
	}
	if err := stagedCopy(src, dst); err != nil {
		return false, fmt.Sprintf("failed to copy file: %v", err)
	}
	return true, "file copied successfully"
}

// prepare validates the source and ensures the destination directory exists.
func prepare(src, dst string) (bool, string) {
	if _, err := os.Stat(src); err != nil {
		return false, fmt.Sprintf("source file not found: %s", src)
	}
	if dir := filepath.Dir(dst); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, fmt.Sprintf("failed to create destination directory %s: %v", dir, err)
		}
	}
	return true, ""
}

// stagedCopy streams src into a uniquely named temp file next to dst and
// renames it into place, so a failed copy never leaves a truncated dst.
// Source permissions carry over.
func stagedCopy(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp := dst + ".partial-" + uuid.NewString()[:8]
	out, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, dst); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
