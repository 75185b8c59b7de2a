package fzf

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/Paintersrp/winapps/internal/search"
)

var (
	ErrNoSelection = errors.New("no application selected")
	ErrNoMatch     = errors.New("no application matches")
	ErrAmbiguous   = errors.New("several applications match")
)

// Searcher is the part of the engine the finder drives.
type Searcher interface {
	Search(query string) []search.MatchResult
	Execute(result search.MatchResult) error
}

// FindFunc matches fuzzyfinder.Find.
type FindFunc func(slice interface{}, itemFunc func(i int) string, opts ...fuzzyfinder.Option) (int, error)

// FuzzyFinder encapsulates the fuzzy finder functionality
type FuzzyFinder struct {
	engine Searcher
	Header string
	Out    io.Writer
	Find   FindFunc
	// Interactive gates Choose; nil means the terminal check.
	Interactive func() bool
	results     []search.MatchResult
}

func NewFuzzyFinder(engine Searcher, header string) *FuzzyFinder {
	return &FuzzyFinder{
		engine:      engine,
		Header:      header,
		Out:         os.Stdout,
		Find:        fuzzyfinder.Find,
		Interactive: Interactive,
	}
}

// Run lets the user pick among every result, starting from query, and
// launches the pick when execute is set.
func (f *FuzzyFinder) Run(query string, execute bool) (search.MatchResult, error) {
	result, err := f.pick(query)
	if err != nil {
		f.handleFuzzySelectError(err)
		return search.MatchResult{}, err
	}

	if execute {
		if err := f.engine.Execute(result); err != nil {
			return result, err
		}
	}
	return result, nil
}

// Pick shows only the given results.
func (f *FuzzyFinder) Pick(results []search.MatchResult, query string) (search.MatchResult, error) {
	f.results = results
	idx, err := f.fuzzySelect(query)
	if err != nil {
		return search.MatchResult{}, err
	}
	return f.selected(idx)
}

// Choose narrows results to one: the only match, the first when first is
// set, or the user's pick on a terminal.
func (f *FuzzyFinder) Choose(results []search.MatchResult, first bool) (search.MatchResult, error) {
	switch {
	case len(results) == 0:
		return search.MatchResult{}, ErrNoMatch
	case len(results) == 1, first:
		return results[0], nil
	}

	interactive := f.Interactive
	if interactive == nil {
		interactive = Interactive
	}
	if !interactive() {
		return search.MatchResult{}, fmt.Errorf("%w: %d results, narrow the query or pass --first", ErrAmbiguous, len(results))
	}

	return f.Pick(results, "")
}

func (f *FuzzyFinder) pick(query string) (search.MatchResult, error) {
	return f.Pick(f.engine.Search(""), query)
}

func (f *FuzzyFinder) selected(idx int) (search.MatchResult, error) {
	if idx < 0 || idx >= len(f.results) {
		return search.MatchResult{}, ErrNoSelection
	}
	return f.results[idx], nil
}

func (f *FuzzyFinder) fuzzySelect(query string) (int, error) {
	if len(f.results) == 0 {
		return -1, ErrNoSelection
	}

	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.preview),
	}

	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}

	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	find := f.Find
	if find == nil {
		find = fuzzyfinder.Find
	}

	return find(f.results, func(i int) string {
		return f.results[i].Title
	}, options...)
}

func (f *FuzzyFinder) preview(i, w, h int) string {
	if i < 0 || i >= len(f.results) {
		return ""
	}
	return Preview(f.results[i])
}

// Preview is the text shown beside the highlighted result.
func Preview(r search.MatchResult) string {
	var b strings.Builder
	b.WriteString(r.Title)
	b.WriteString("\n\n")
	if r.Context != "" {
		b.WriteString(r.Context)
		b.WriteString("\n\n")
	}
	if r.Action != "" {
		b.WriteString("action: ")
		b.WriteString(r.Action)
	}
	return b.String()
}

// Aborted reports whether err only means nothing was picked.
func Aborted(err error) bool {
	return errors.Is(err, fuzzyfinder.ErrAbort) || errors.Is(err, ErrNoSelection)
}

// handleFuzzySelectError prints appropriate messages for fuzzy select errors
func (f *FuzzyFinder) handleFuzzySelectError(err error) {
	out := f.Out
	if out == nil {
		out = os.Stdout
	}
	if Aborted(err) {
		fmt.Fprintln(out, "No application selected")
		return
	}
	fmt.Fprintln(out, "Error selecting application:", err)
}
