package shortcut

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/Paintersrp/winapps/internal/constants"
	"github.com/Paintersrp/winapps/internal/pathutil"
)

// Locator walks shortcut roots collecting files that carry the link extension.
type Locator struct {
	// Ext is the extension a file needs to be collected, compared case-insensitively.
	Ext string
	// MaxDepth stops descent below this many levels under a root.
	MaxDepth int
	// MaxNodes stops a root's walk after visiting this many entries.
	MaxNodes int

	logger *log.Logger
}

// NewLocator returns a Locator using the default extension and walk bounds.
func NewLocator(logger *log.Logger) *Locator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Locator{
		Ext:      constants.LinkExt,
		MaxDepth: constants.MaxWalkDepth,
		MaxNodes: constants.MaxWalkNodes,
		logger:   logger,
	}
}

// Locate walks every root depth-first and returns the shortcut paths found,
// sorted and without duplicates. Unreadable roots, directories and entries
// are skipped; they never abort the walk.
func (l *Locator) Locate(roots ...string) []string {
	var found []string
	for _, root := range roots {
		if root == "" {
			continue
		}
		found = l.walk(root, found)
	}
	slices.Sort(found)
	return slices.Compact(found)
}

func (l *Locator) walk(root string, found []string) []string {
	// A linked root is followed once; links below it are not.
	base, err := filepath.EvalSymlinks(root)
	if err != nil {
		l.logger.Debug("skipping unreadable root", "root", root, "err", err)
		return found
	}

	visited := 0
	err = filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			l.logger.Debug("skipping unreadable entry", "path", path, "err", err)
			return nil
		}

		visited++
		if l.MaxNodes > 0 && visited > l.MaxNodes {
			l.logger.Warn("walk stopped at node limit", "root", root, "limit", l.MaxNodes)
			return fs.SkipAll
		}

		if d.IsDir() {
			if l.MaxDepth > 0 && pathutil.Depth(base, path) > l.MaxDepth {
				l.logger.Debug("skipping directory below depth limit", "path", path)
				return filepath.SkipDir
			}
			return nil
		}

		if !pathutil.HasExt(path, l.Ext) {
			return nil
		}

		if l.isRegularFile(path, d) {
			found = append(found, underRoot(root, base, path))
		}
		return nil
	})
	if err != nil {
		l.logger.Debug("walk ended early", "root", root, "err", err)
	}
	return found
}

// underRoot reports path relative to the root the caller named rather than
// the root's resolved target.
func underRoot(root, base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return filepath.Join(root, rel)
}

// isRegularFile accepts regular files and symlinks that resolve to one.
// Symlinked directories are never followed.
func (l *Locator) isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		l.logger.Debug("skipping dangling link", "path", path, "err", err)
		return false
	}
	return info.Mode().IsRegular()
}
