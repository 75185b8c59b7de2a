package pathutil

import (
	"path/filepath"
	"strings"
)

// NormalizePath converts Windows-style separators to the current platform's separator
// and cleans the resulting path.
func NormalizePath(p string) string {
	if p == "" {
		return ""
	}

	// Replace Windows separators and collapse redundant separators/segments.
	replaced := strings.ReplaceAll(p, "\\", "/")
	return filepath.Clean(filepath.FromSlash(replaced))
}

// Stem returns the final element of path without its extension.
// "Start Menu/Word.lnk" becomes "Word"; "a.b.lnk" becomes "a.b".
func Stem(path string) string {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// HasExt reports whether path ends in ext, ignoring case.
func HasExt(path, ext string) bool {
	return ext != "" && strings.EqualFold(filepath.Ext(path), ext)
}

// Depth counts the path elements of target below root. Paths outside root
// report -1.
func Depth(root, target string) int {
	rel, err := filepath.Rel(root, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return -1
	}
	if rel == "." {
		return 0
	}
	return len(strings.Split(filepath.ToSlash(rel), "/"))
}
