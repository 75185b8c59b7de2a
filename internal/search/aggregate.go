package search

import (
	"sort"
	"strings"

	"github.com/Paintersrp/winapps/internal/constants"
)

// Aggregate filters, sorts and deduplicates candidates for an already
// lowercased query.
//
// Shortcuts whose file name contains "uninstall" are dropped regardless of
// the query. Remaining non-placeholder candidates must contain query in their
// title, case-insensitively; an empty query keeps everything. The result is
// ordered by title using byte comparison, stable with respect to input
// order, and consecutive entries with an identical title collapse onto the
// first one.
func Aggregate(query string, candidates []Candidate) []MatchResult {
	kept := make([]MatchResult, 0, len(candidates))
	for _, c := range candidates {
		if !retain(query, c) {
			continue
		}
		kept = append(kept, c.MatchResult)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Title < kept[j].Title
	})

	return dedupByTitle(kept)
}

func retain(query string, c Candidate) bool {
	switch c.Origin {
	case OriginPlaceholder:
		return true
	case OriginShortcut:
		if IsUninstaller(c.FileName) {
			return false
		}
	}
	return MatchesTitle(query, c.Title)
}

// MatchesTitle reports whether title contains the lowercased query.
func MatchesTitle(query, title string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(title), query)
}

// IsUninstaller reports whether a shortcut file name looks like an uninstaller.
func IsUninstaller(fileName string) bool {
	return strings.Contains(strings.ToLower(fileName), constants.UninstallMarker)
}

func dedupByTitle(results []MatchResult) []MatchResult {
	if len(results) < 2 {
		return results
	}
	out := results[:1]
	for _, r := range results[1:] {
		if r.Title == out[len(out)-1].Title {
			continue
		}
		out = append(out, r)
	}
	return out
}
