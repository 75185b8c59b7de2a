package engine

import (
	"errors"
	"fmt"
	"path/filepath"
	"unicode/utf8"

	"github.com/Paintersrp/winapps/internal/constants"
	"github.com/Paintersrp/winapps/internal/packages"
	"github.com/Paintersrp/winapps/internal/pathutil"
	"github.com/Paintersrp/winapps/internal/search"
	"github.com/Paintersrp/winapps/internal/shortcut"
)

// Batch is what one source produced for one search.
type Batch struct {
	Candidates []search.Candidate
	Failures   []Failure
}

// Source is one way of discovering applications.
type Source interface {
	// Name identifies the source in logs.
	Name() string
	// Toggle is the configuration key enabling the source. Sources default on.
	Toggle() string
	// Discover collects candidates for a lowercased query. The query is a
	// hint; the aggregator applies the authoritative filter.
	Discover(query string) Batch
}

// ShortcutSource discovers start menu shortcuts.
type ShortcutSource struct {
	Locator *shortcut.Locator
	Roots   shortcut.Roots
}

func (s *ShortcutSource) Name() string   { return "start menu" }
func (s *ShortcutSource) Toggle() string { return constants.IncludeShortcutApps }

func (s *ShortcutSource) Discover(query string) Batch {
	var batch Batch

	roots := s.Roots.Static()
	user, err := s.Roots.User()
	if err != nil {
		batch.Failures = append(batch.Failures, Failure{
			Kind:   FailureEnvironment,
			Source: s.Name(),
			Title:  "failed to insert start menu apps",
			Err:    err,
		})
	} else {
		roots = append(roots, user)
	}

	for _, path := range s.Locator.Locate(roots...) {
		candidate, failure := shortcutCandidate(path)
		if failure != nil {
			failure.Source = s.Name()
			batch.Failures = append(batch.Failures, *failure)
			continue
		}
		if !search.MatchesTitle(query, candidate.Title) {
			continue
		}
		batch.Candidates = append(batch.Candidates, candidate)
	}

	return batch
}

var errUndecodable = errors.New("path is not valid UTF-8")

func shortcutCandidate(path string) (search.Candidate, *Failure) {
	if !utf8.ValidString(path) {
		return search.Candidate{}, &Failure{
			Kind:  FailureMetadata,
			Title: "failed to get path",
			Err:   fmt.Errorf("%w: %q", errUndecodable, path),
		}
	}

	title := pathutil.Stem(path)
	if title == "" {
		return search.Candidate{}, &Failure{
			Kind:  FailureMetadata,
			Title: "failed to get file_stem",
			Err:   fmt.Errorf("no file stem in %q", path),
		}
	}

	return search.Candidate{
		MatchResult: search.MatchResult{
			Title:   title,
			Context: path,
			Action:  search.PathAction(path),
		},
		Origin:   search.OriginShortcut,
		FileName: filepath.Base(path),
	}, nil
}

// PackageSource discovers packaged applications.
type PackageSource struct {
	Enumerator packages.Enumerator
}

func (s *PackageSource) Name() string   { return "packages" }
func (s *PackageSource) Toggle() string { return constants.IncludePackagedApps }

func (s *PackageSource) Discover(query string) Batch {
	var batch Batch

	listing, err := s.Enumerator.Enumerate(func(name string) bool {
		return search.MatchesTitle(query, name)
	})
	if err != nil {
		batch.Failures = append(batch.Failures, enumerationFailure(s.Name(), err))
		return batch
	}

	for _, fe := range listing.Failures {
		batch.Failures = append(batch.Failures, Failure{
			Kind:   FailureMetadata,
			Source: s.Name(),
			Title:  fmt.Sprintf("failed to get %s from package", fe.Field),
			Err:    fe,
		})
	}

	for _, p := range listing.Packages {
		batch.Candidates = append(batch.Candidates, search.Candidate{
			MatchResult: search.MatchResult{
				Title:   p.Name,
				Context: p.Description,
				Action:  search.PackageAction(p.Name),
			},
			Origin: search.OriginPackage,
		})
	}

	return batch
}

func enumerationFailure(source string, err error) Failure {
	if errors.Is(err, packages.ErrNotElevated) {
		return Failure{
			Kind:   FailurePrivilege,
			Source: source,
			Title:  "no administrator rights",
			Detail: "try running as administrator",
			Err:    err,
		}
	}
	return Failure{
		Kind:   FailureEnumeration,
		Source: source,
		Title:  "failed to get packages from PackageManager",
		Err:    err,
	}
}
