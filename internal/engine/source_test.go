package engine

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paintersrp/winapps/internal/packages"
	"github.com/Paintersrp/winapps/internal/search"
	"github.com/Paintersrp/winapps/internal/shortcut"
)

func TestShortcutCandidate(t *testing.T) {
	path := filepath.Join("menu", "Tools", "Word.lnk")

	c, failure := shortcutCandidate(path)

	require.Nil(t, failure)
	assert.Equal(t, "Word", c.Title)
	assert.Equal(t, path, c.Context)
	assert.Equal(t, "pth:"+path, c.Action)
	assert.Equal(t, "Word.lnk", c.FileName)
	assert.Equal(t, search.OriginShortcut, c.Origin)
}

func TestShortcutCandidateMetadataFailures(t *testing.T) {
	_, failure := shortcutCandidate(filepath.Join("menu", "bad\xff.lnk"))
	require.NotNil(t, failure)
	assert.Equal(t, FailureMetadata, failure.Kind)
	assert.Equal(t, "failed to get path", failure.Title)

	_, failure = shortcutCandidate(filepath.Join("menu", ".lnk"))
	require.NotNil(t, failure)
	assert.Equal(t, "failed to get file_stem", failure.Title)
}

func TestShortcutSourceReportsMetadataFailuresPerItem(t *testing.T) {
	root := t.TempDir()
	touch(t, root, ".lnk", "Word.lnk")
	src := &ShortcutSource{
		Locator: shortcut.NewLocator(nil),
		Roots: shortcut.Roots{Machine: root, Lookup: func(string) (string, bool) {
			return root, true
		}},
	}

	batch := src.Discover("")

	require.Len(t, batch.Candidates, 1)
	assert.Equal(t, "Word", batch.Candidates[0].Title)
	require.Len(t, batch.Failures, 1)
	assert.Equal(t, "start menu", batch.Failures[0].Source)
}

func TestEnumerationFailureKinds(t *testing.T) {
	f := enumerationFailure("packages", packages.ErrNotElevated)
	assert.Equal(t, FailurePrivilege, f.Kind)
	assert.True(t, errors.Is(f, packages.ErrNotElevated))
	assert.Equal(t, search.MatchResult{Title: "no administrator rights", Context: "try running as administrator"}, f.Placeholder().MatchResult)

	boom := errors.New("powershell missing")
	f = enumerationFailure("packages", boom)
	assert.Equal(t, FailureEnumeration, f.Kind)
	assert.Equal(t, "failed to get packages from PackageManager", f.Title)
	assert.Equal(t, "powershell missing", f.Placeholder().Context)
	assert.Contains(t, f.Error(), "packages")
}
