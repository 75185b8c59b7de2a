// Package engine runs searches across discovery sources and dispatches the
// launch of a previously returned result.
package engine

import (
	"io"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/Paintersrp/winapps/internal/constants"
	"github.com/Paintersrp/winapps/internal/launch"
	"github.com/Paintersrp/winapps/internal/packages"
	"github.com/Paintersrp/winapps/internal/search"
	"github.com/Paintersrp/winapps/internal/shortcut"
)

// Engine is safe for concurrent use. Its only shared state is the
// configuration, which is swapped whole and read once per call.
type Engine struct {
	sources    []Source
	dispatcher *launch.Dispatcher
	schema     search.Configuration
	config     atomic.Pointer[search.Configuration]
	logger     *log.Logger
}

// New builds an engine over sources, in the order their results should be
// collected. The configuration starts at the schema defaults.
func New(logger *log.Logger, dispatcher *launch.Dispatcher, sources ...Source) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	schema := search.Configuration{constants.ReturnErrorMessages: false}
	for _, src := range sources {
		schema[src.Toggle()] = true
	}

	e := &Engine{
		sources:    sources,
		dispatcher: dispatcher,
		schema:     schema,
		logger:     logger,
	}
	defaults := schema.Clone()
	e.config.Store(&defaults)
	return e
}

// Options selects the platform collaborators for Default.
type Options struct {
	Capability packages.Capability
	Roots      shortcut.Roots
	Enumerator packages.Enumerator
	Opener     launch.Opener
	Apps       launch.AppLauncher
}

// Default wires the standard sources. The packaged-app source and the
// packaged-app launch kind exist only when the platform has a package registry.
func Default(logger *log.Logger, opts Options) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var sources []Source
	apps := opts.Apps
	if opts.Capability.Supported {
		enumerator := opts.Enumerator
		if enumerator == nil {
			enumerator = packages.NewAppxEnumerator()
		}
		sources = append(sources, &PackageSource{Enumerator: enumerator})
		if apps == nil {
			apps = launch.NewStartAppsLauncher()
		}
	} else {
		apps = nil
	}

	sources = append(sources, &ShortcutSource{
		Locator: shortcut.NewLocator(logger),
		Roots:   opts.Roots,
	})

	opener := opts.Opener
	if opener == nil {
		opener = launch.NewSystemOpener()
	}

	return New(logger, launch.NewDispatcher(logger, opener, apps), sources...)
}

// Search returns the applications matching query, sorted by title with
// duplicate titles removed. It never fails: problems are logged and, when
// return_error_messages is set, added as placeholder results.
func (e *Engine) Search(query string) []search.MatchResult {
	query = strings.ToLower(query)
	cfg := *e.config.Load()
	showErrors := cfg.Bool(constants.ReturnErrorMessages, false)

	var candidates []search.Candidate
	for _, src := range e.sources {
		if !cfg.Bool(src.Toggle(), true) {
			continue
		}

		batch := src.Discover(query)
		candidates = append(candidates, batch.Candidates...)

		for _, f := range batch.Failures {
			e.logger.Error(f.Title, "source", f.Source, "kind", string(f.Kind), "err", f.Err)
			if showErrors {
				candidates = append(candidates, f.Placeholder())
			}
		}
	}

	return search.Aggregate(query, candidates)
}

// Execute launches a result previously returned by Search.
func (e *Engine) Execute(result search.MatchResult) error {
	return e.ExecuteAction(result.Action)
}

// ExecuteAction launches a stored action descriptor.
func (e *Engine) ExecuteAction(action string) error {
	return e.dispatcher.Dispatch(action)
}

// ConfigSchema returns the recognised toggles with their defaults.
func (e *Engine) ConfigSchema() search.Configuration {
	return e.schema.Clone()
}

// Config returns a copy of the configuration in effect.
func (e *Engine) Config() search.Configuration {
	return e.config.Load().Clone()
}

// ApplyConfig replaces the configuration wholesale. Keys left out read as
// their defaults; nothing is merged with the previous configuration.
func (e *Engine) ApplyConfig(cfg search.Configuration) {
	next := cfg.Clone()
	e.config.Store(&next)
}
